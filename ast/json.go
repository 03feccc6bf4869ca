package ast

import (
	"encoding/json"
	"fmt"

	"github.com/sol-lang/go-sol/token"
)

// The structured-data form mirrors each node kind by name under a "kind"
// tag and each field by name. It is lifetime-free: decoding always
// produces an owned tree. See encode.EncodeJSON / encode.DecodeJSON for
// the usual entry points.

// MarshalNode returns the tagged JSON form of n.
func MarshalNode(n Node) ([]byte, error) {
	return json.Marshal(nodeToJSON(n))
}

// UnmarshalNode decodes the tagged JSON form back into a node. The
// resulting tree is owned: its token text is independent of any source
// buffer.
func UnmarshalNode(d []byte) (Node, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(d, &raw); err != nil {
		return nil, err
	}
	return nodeFromJSON(raw)
}

func nodeToJSON(n Node) map[string]any {
	switch v := n.(type) {
	case ArrayType:
		return map[string]any{
			"kind": "array", "braces": spanToJSON(v.braces),
			"element": nodeToJSON(v.elem),
		}
	case BasicType:
		return map[string]any{"kind": "basic", "token": v.tok}
	case CallbackType:
		return map[string]any{
			"kind": "callback", "parentheses": spanToJSON(v.parens),
			"arguments": punctToJSON(v.args, nodeItem[TypeInfo]),
			"arrow":     v.arrow, "return": nodeToJSON(v.ret),
		}
	case GenericType:
		return map[string]any{
			"kind": "generic", "base": v.base, "arrows": spanToJSON(v.arrows),
			"parameters": punctToJSON(v.params, nodeItem[TypeInfo]),
		}
	case IntersectionType:
		return map[string]any{
			"kind": "intersection", "left": nodeToJSON(v.left),
			"ampersand": v.amp, "right": nodeToJSON(v.right),
		}
	case ModuleType:
		return map[string]any{
			"kind": "module", "module": v.module, "dot": v.dot,
			"index": nodeToJSON(v.index),
		}
	case OptionalType:
		return map[string]any{
			"kind": "optional", "base": nodeToJSON(v.base), "question": v.question,
		}
	case TableType:
		return map[string]any{
			"kind": "table", "braces": spanToJSON(v.braces),
			"fields": punctToJSON(v.fields, nodeItem[TypeField]),
		}
	case TypeofType:
		return map[string]any{
			"kind": "typeof", "typeof": v.typeofTok,
			"parentheses": spanToJSON(v.parens), "inner": nodeToJSON(v.expr),
		}
	case TupleType:
		return map[string]any{
			"kind": "tuple", "parentheses": spanToJSON(v.parens),
			"types": punctToJSON(v.types, nodeItem[TypeInfo]),
		}
	case UnionType:
		return map[string]any{
			"kind": "union", "left": nodeToJSON(v.left),
			"pipe": v.pipe, "right": nodeToJSON(v.right),
		}
	case VariadicType:
		return map[string]any{
			"kind": "variadic", "ellipsis": v.ellipsis, "type": nodeToJSON(v.typ),
		}

	case TypeField:
		return map[string]any{
			"kind": "type_field", "key": nodeToJSON(v.key),
			"colon": v.colon, "value": nodeToJSON(v.value),
		}
	case NameKey:
		return map[string]any{"kind": "name_key", "token": v.tok}
	case IndexSignatureKey:
		return map[string]any{
			"kind": "index_signature_key", "brackets": spanToJSON(v.brackets),
			"inner": nodeToJSON(v.inner),
		}
	case TypeAssertion:
		return map[string]any{
			"kind": "type_assertion", "op": v.op, "cast_to": nodeToJSON(v.castTo),
		}
	case TypeDeclaration:
		m := map[string]any{
			"kind": "type_declaration", "type": v.typeTok, "name": v.name,
			"equal": v.eq, "declare_as": nodeToJSON(v.declareAs),
		}
		if v.generics != nil {
			m["generics"] = nodeToJSON(*v.generics)
		}
		return m
	case GenericDeclaration:
		return map[string]any{
			"kind": "generic_declaration", "arrows": spanToJSON(v.arrows),
			"names": punctToJSON(v.names, refItem),
		}
	case TypeSpecifier:
		return map[string]any{
			"kind": "type_specifier", "colon": v.colon, "type": nodeToJSON(v.typ),
		}
	case ExportedTypeDeclaration:
		return map[string]any{
			"kind": "exported_type_declaration", "export": v.export,
			"declaration": nodeToJSON(v.decl),
		}

	case CompoundAssignment:
		return map[string]any{
			"kind": "compound_assignment", "lhs": nodeToJSON(v.lhs),
			"op": v.op.tok, "rhs": nodeToJSON(v.rhs),
		}

	case NameExpr:
		return map[string]any{"kind": "name_expr", "token": v.tok}
	case DotExpr:
		return map[string]any{
			"kind": "dot_expr", "base": nodeToJSON(v.base),
			"dot": v.dot, "name": v.name,
		}
	case NumberExpr:
		return map[string]any{"kind": "number_expr", "token": v.tok}
	case StringExpr:
		return map[string]any{"kind": "string_expr", "token": v.tok}
	}
	panic(fmt.Sprintf("ast: unknown node kind %T", n))
}

func nodeItem[T Node](t T) any {
	return nodeToJSON(t)
}

func refItem(r token.Ref) any {
	return r
}

func spanToJSON(c ContainedSpan) map[string]any {
	return map[string]any{"open": c.open, "close": c.close}
}

func punctToJSON[T any](p Punctuated[T], item func(T) any) []map[string]any {
	res := make([]map[string]any, len(p.pairs))
	for i := range p.pairs {
		m := map[string]any{"item": item(p.pairs[i].item)}
		if p.pairs[i].sep != nil {
			m["sep"] = *p.pairs[i].sep
		}
		res[i] = m
	}
	return res
}

func nodeFromJSON(raw map[string]json.RawMessage) (Node, error) {
	var kind string
	if err := json.Unmarshal(raw["kind"], &kind); err != nil {
		return nil, fmt.Errorf("missing node kind: %w", err)
	}
	d := &decoder{raw: raw, kind: kind}
	var n Node
	switch kind {
	case "array":
		n = ArrayType{braces: d.span("braces"), elem: d.typeInfo("element")}
	case "basic":
		n = BasicType{tok: d.ref("token")}
	case "callback":
		n = CallbackType{
			parens: d.span("parentheses"), args: d.types("arguments"),
			arrow: d.ref("arrow"), ret: d.typeInfo("return"),
		}
	case "generic":
		n = GenericType{
			base: d.ref("base"), arrows: d.span("arrows"),
			params: d.types("parameters"),
		}
	case "intersection":
		n = IntersectionType{
			left: d.typeInfo("left"), amp: d.ref("ampersand"),
			right: d.typeInfo("right"),
		}
	case "module":
		n = ModuleType{module: d.ref("module"), dot: d.ref("dot"), index: d.indexed("index")}
	case "optional":
		n = OptionalType{base: d.typeInfo("base"), question: d.ref("question")}
	case "table":
		n = TableType{braces: d.span("braces"), fields: d.fields("fields")}
	case "typeof":
		n = TypeofType{
			typeofTok: d.ref("typeof"), parens: d.span("parentheses"),
			expr: d.expr("inner"),
		}
	case "tuple":
		n = TupleType{parens: d.span("parentheses"), types: d.types("types")}
	case "union":
		n = UnionType{left: d.typeInfo("left"), pipe: d.ref("pipe"), right: d.typeInfo("right")}
	case "variadic":
		n = VariadicType{ellipsis: d.ref("ellipsis"), typ: d.typeInfo("type")}

	case "type_field":
		n = TypeField{key: d.fieldKey("key"), colon: d.ref("colon"), value: d.typeInfo("value")}
	case "name_key":
		n = NameKey{tok: d.ref("token")}
	case "index_signature_key":
		n = IndexSignatureKey{brackets: d.span("brackets"), inner: d.typeInfo("inner")}
	case "type_assertion":
		n = TypeAssertion{op: d.ref("op"), castTo: d.typeInfo("cast_to")}
	case "type_declaration":
		decl := TypeDeclaration{
			typeTok: d.ref("type"), name: d.ref("name"),
			eq: d.ref("equal"), declareAs: d.typeInfo("declare_as"),
		}
		if _, ok := raw["generics"]; ok {
			g := d.generics("generics")
			decl.generics = &g
		}
		n = decl
	case "generic_declaration":
		n = GenericDeclaration{arrows: d.span("arrows"), names: d.names("names")}
	case "type_specifier":
		n = TypeSpecifier{colon: d.ref("colon"), typ: d.typeInfo("type")}
	case "exported_type_declaration":
		n = ExportedTypeDeclaration{export: d.ref("export"), decl: d.declaration("declaration")}

	case "compound_assignment":
		op, err := CompoundOpFromToken(d.ref("op"))
		if err != nil {
			return nil, err
		}
		n = CompoundAssignment{lhs: d.variable("lhs"), op: op, rhs: d.expr("rhs")}

	case "name_expr":
		n = NameExpr{tok: d.ref("token")}
	case "dot_expr":
		n = DotExpr{base: d.variable("base"), dot: d.ref("dot"), name: d.ref("name")}
	case "number_expr":
		n = NumberExpr{tok: d.ref("token")}
	case "string_expr":
		n = StringExpr{tok: d.ref("token")}
	default:
		return nil, fmt.Errorf("unknown node kind %q", kind)
	}
	if d.err != nil {
		return nil, d.err
	}
	return n, nil
}

// decoder accumulates the first field decoding error so the per-kind
// cases above can stay declarative.
type decoder struct {
	raw  map[string]json.RawMessage
	kind string
	err  error
}

func (d *decoder) fail(field string, err error) {
	if d.err == nil {
		d.err = fmt.Errorf("%s.%s: %w", d.kind, field, err)
	}
}

func (d *decoder) field(name string) (json.RawMessage, bool) {
	msg, ok := d.raw[name]
	if !ok {
		d.fail(name, fmt.Errorf("missing field"))
	}
	return msg, ok
}

func (d *decoder) ref(name string) token.Ref {
	var r token.Ref
	msg, ok := d.field(name)
	if !ok {
		return r
	}
	if err := json.Unmarshal(msg, &r); err != nil {
		d.fail(name, err)
	}
	return r
}

func (d *decoder) node(name string) Node {
	msg, ok := d.field(name)
	if !ok {
		return nil
	}
	return d.nodeFrom(name, msg)
}

func (d *decoder) nodeFrom(name string, msg json.RawMessage) Node {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(msg, &raw); err != nil {
		d.fail(name, err)
		return nil
	}
	n, err := nodeFromJSON(raw)
	if err != nil {
		d.fail(name, err)
		return nil
	}
	return n
}

func (d *decoder) span(name string) ContainedSpan {
	var tmp struct {
		Open  token.Ref `json:"open"`
		Close token.Ref `json:"close"`
	}
	msg, ok := d.field(name)
	if !ok {
		return ContainedSpan{}
	}
	if err := json.Unmarshal(msg, &tmp); err != nil {
		d.fail(name, err)
	}
	return ContainedSpan{open: tmp.Open, close: tmp.Close}
}

func (d *decoder) typeInfo(name string) TypeInfo {
	return asSlot[TypeInfo](d, name, d.node(name), "a type")
}

func (d *decoder) indexed(name string) IndexedTypeInfo {
	return asSlot[IndexedTypeInfo](d, name, d.node(name), "a basic or generic type")
}

func (d *decoder) fieldKey(name string) TypeFieldKey {
	return asSlot[TypeFieldKey](d, name, d.node(name), "a field key")
}

func (d *decoder) expr(name string) Expr {
	return asSlot[Expr](d, name, d.node(name), "an expression")
}

func (d *decoder) variable(name string) Var {
	return asSlot[Var](d, name, d.node(name), "an assignable target")
}

func (d *decoder) declaration(name string) TypeDeclaration {
	return asSlot[TypeDeclaration](d, name, d.node(name), "a type declaration")
}

func (d *decoder) generics(name string) GenericDeclaration {
	return asSlot[GenericDeclaration](d, name, d.node(name), "a generic declaration")
}

func asSlot[T Node](d *decoder, name string, n Node, want string) T {
	var zero T
	if n == nil {
		return zero
	}
	v, ok := n.(T)
	if !ok {
		d.fail(name, fmt.Errorf("%T is not %s", n, want))
		return zero
	}
	return v
}

type pairJSON struct {
	Item json.RawMessage `json:"item"`
	Sep  *token.Ref      `json:"sep"`
}

func decodePairs[T any](d *decoder, name string, item func(json.RawMessage) (T, bool)) Punctuated[T] {
	msg, ok := d.field(name)
	if !ok {
		return Punctuated[T]{}
	}
	var raw []pairJSON
	if err := json.Unmarshal(msg, &raw); err != nil {
		d.fail(name, err)
		return Punctuated[T]{}
	}
	pairs := make([]Pair[T], 0, len(raw))
	for i := range raw {
		it, ok := item(raw[i].Item)
		if !ok {
			return Punctuated[T]{}
		}
		pairs = append(pairs, Pair[T]{item: it, sep: raw[i].Sep})
	}
	return Punctuated[T]{pairs: pairs}
}

func (d *decoder) types(name string) Punctuated[TypeInfo] {
	return decodePairs(d, name, func(msg json.RawMessage) (TypeInfo, bool) {
		t, ok := d.nodeFrom(name, msg).(TypeInfo)
		if !ok {
			d.fail(name, fmt.Errorf("punctuated item is not a type"))
		}
		return t, ok
	})
}

func (d *decoder) fields(name string) Punctuated[TypeField] {
	return decodePairs(d, name, func(msg json.RawMessage) (TypeField, bool) {
		t, ok := d.nodeFrom(name, msg).(TypeField)
		if !ok {
			d.fail(name, fmt.Errorf("punctuated item is not a type field"))
		}
		return t, ok
	})
}

func (d *decoder) names(name string) Punctuated[token.Ref] {
	return decodePairs(d, name, func(msg json.RawMessage) (token.Ref, bool) {
		var r token.Ref
		if err := json.Unmarshal(msg, &r); err != nil {
			d.fail(name, err)
			return r, false
		}
		return r, true
	})
}
