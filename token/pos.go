package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc indexes the newlines of a source document so that byte offsets
// can be mapped to line/column pairs on demand.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// LineCol maps a byte offset to a 1-based line/column pair.
func (p *PosDoc) LineCol(off int) (int, int) {
	di := sort.Search(len(p.n), func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 1, off + 1
	}
	return di + 1, off - p.n[di-1]
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

func (d *PosDoc) End() *Pos {
	return &Pos{
		I: len(d.d),
		D: d,
	}
}

// Pos is a byte offset into a document, with line/column derived lazily
// from the document's newline index.
type Pos struct {
	I int
	D *PosDoc
}

// LineCol returns the position's 1-based line and column.
func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	var sample string
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	} else {
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
