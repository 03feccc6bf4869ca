package ast

import "github.com/sol-lang/go-sol/token"

// Pair is one item of a punctuated sequence together with the separator
// that follows it, if any.
type Pair[T any] struct {
	item T
	sep  *token.Ref
}

func NewPair[T any](item T, sep *token.Ref) Pair[T] {
	return Pair[T]{item: item, sep: sep}
}

func (p Pair[T]) Item() T {
	return p.item
}

// Separator returns the separator following the item, or nil when the
// item is last and the sequence has no trailing separator.
func (p Pair[T]) Separator() *token.Ref {
	return p.sep
}

// Punctuated is an ordered sequence of items interleaved with separator
// tokens, such as the `foo: number, bar: string` inside a table type. A
// trailing separator, when present in the source, is the separator of the
// last pair.
//
// Like nodes, Punctuated values are immutable: Push and PushPair return
// new sequences.
type Punctuated[T any] struct {
	pairs []Pair[T]
}

func NewPunctuated[T any]() Punctuated[T] {
	return Punctuated[T]{}
}

func (p Punctuated[T]) Len() int {
	return len(p.pairs)
}

func (p Punctuated[T]) At(i int) T {
	return p.pairs[i].item
}

// Pairs returns a copy of the item/separator pairs.
func (p Punctuated[T]) Pairs() []Pair[T] {
	res := make([]Pair[T], len(p.pairs))
	copy(res, p.pairs)
	return res
}

// Items returns the items without their separators.
func (p Punctuated[T]) Items() []T {
	res := make([]T, len(p.pairs))
	for i := range p.pairs {
		res[i] = p.pairs[i].item
	}
	return res
}

// Trailing returns the trailing separator, or nil when the sequence is
// empty or ends on an item.
func (p Punctuated[T]) Trailing() *token.Ref {
	if len(p.pairs) == 0 {
		return nil
	}
	return p.pairs[len(p.pairs)-1].sep
}

// Push returns a copy with item appended. If the previous last item had
// no separator, a default ", " separator is synthesized for it.
func (p Punctuated[T]) Push(item T) Punctuated[T] {
	pairs := make([]Pair[T], len(p.pairs), len(p.pairs)+1)
	copy(pairs, p.pairs)
	if n := len(pairs); n > 0 && pairs[n-1].sep == nil {
		sep := token.Symbol(", ")
		pairs[n-1].sep = &sep
	}
	pairs = append(pairs, Pair[T]{item: item})
	return Punctuated[T]{pairs: pairs}
}

// PushPair returns a copy with the given item and separator appended.
func (p Punctuated[T]) PushPair(item T, sep *token.Ref) Punctuated[T] {
	pairs := make([]Pair[T], len(p.pairs), len(p.pairs)+1)
	copy(pairs, p.pairs)
	pairs = append(pairs, Pair[T]{item: item, sep: sep})
	return Punctuated[T]{pairs: pairs}
}
