package models

import "strconv"

// Value is a single parsed JSON value. It is a sealed union: String,
// Number, Bool, Null, Array and Object are the only implementations.
// Values are immutable once produced by the parser.
type Value interface {
	isValue()
}

// String is a JSON string.
type String string

// Number carries the original source literal of a JSON number, not a
// parsed float. "1e37" stays "1e37"; re-formatting would lose the
// representation the author wrote.
type Number string

// Bool is a JSON boolean.
type Bool bool

// Null is the JSON null value.
type Null struct{}

// Array is an ordered sequence of values.
type Array []Value

// Object is an ordered list of key/value members. A slice of members,
// rather than a map, so that source insertion order survives parsing.
type Object []Member

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Null) isValue()   {}
func (Array) isValue()  {}
func (Object) isValue() {}

// JSONText renders a value as compact JSON. Used when an array element
// is itself a composite and has to collapse to a single text constant.
func JSONText(v Value) string {
	return string(appendJSON(nil, v))
}

func appendJSON(dst []byte, v Value) []byte {
	switch val := v.(type) {
	case String:
		return strconv.AppendQuote(dst, string(val))
	case Number:
		return append(dst, val...)
	case Bool:
		return strconv.AppendBool(dst, bool(val))
	case Null:
		return append(dst, "null"...)
	case Array:
		dst = append(dst, '[')
		for i, elem := range val {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendJSON(dst, elem)
		}
		return append(dst, ']')
	case Object:
		dst = append(dst, '{')
		for i, m := range val {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = strconv.AppendQuote(dst, m.Key)
			dst = append(dst, ':')
			dst = appendJSON(dst, m.Value)
		}
		return append(dst, '}')
	default:
		return dst
	}
}

// DefaultRootName is the name an unnamed root namespace renders under.
const DefaultRootName = "lang"

// Rendered is the classified, text-rendered form of a constant value:
// either a single scalar text or a fixed-size sequence of texts.
type Rendered interface {
	isRendered()
}

// ScalarText is the rendered form of a single scalar value.
type ScalarText string

// ArrayText is the rendered form of an array value, one text per
// element, in source order.
type ArrayText []string

func (ScalarText) isRendered() {}
func (ArrayText) isRendered()  {}

// Entry is one item of a namespace: either a constant or a nested
// namespace.
type Entry interface {
	isEntry()
}

// ConstantEntry is a single named declaration to emit.
type ConstantEntry struct {
	Identifier string
	Value      Rendered
}

// Namespace is a hierarchical grouping of constants, corresponding to a
// JSON object. Entries keep source document order; the order is what
// makes generation reproducible byte for byte.
type Namespace struct {
	Name    string
	Entries []Entry
}

func (*ConstantEntry) isEntry() {}
func (*Namespace) isEntry()     {}
