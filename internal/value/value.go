// Package value defines the JSON value tree shared by the parser and
// the encoder. A tree is built once by a parse, rooted at a single
// Value, and is immutable afterwards unless the caller mutates it.
package value

import "sort"

// Kind identifies which variant a Value holds.
type Kind string

const (
	ObjectKind Kind = "object"
	ArrayKind  Kind = "array"
	StringKind Kind = "string"
	NumberKind Kind = "number"
	BoolKind   Kind = "bool"
	NullKind   Kind = "null"
)

// Value is a single JSON value: exactly one of Object, Array, String,
// Number, Bool, or Null. The set is closed. A nil Value is the
// indeterminate state and never appears in a parsed tree; consumers
// dispatch with a type switch over the six variants.
type Value interface {
	Kind() Kind
	isValue()
}

// Object is a JSON object. Keys are unique; enumeration via Keys is in
// lexicographic order regardless of the order keys appeared in the
// source text.
type Object map[string]Value

// Array is a JSON array in source order.
type Array []Value

// String is a JSON string with escape sequences already decoded.
type String string

// Number is a JSON number. Integer and floating-point literals are not
// distinguished; both are stored as a float64.
type Number float64

// Bool is a JSON true or false literal.
type Bool bool

// Null is the JSON null literal.
type Null struct{}

func (Object) Kind() Kind { return ObjectKind }
func (Array) Kind() Kind  { return ArrayKind }
func (String) Kind() Kind { return StringKind }
func (Number) Kind() Kind { return NumberKind }
func (Bool) Kind() Kind   { return BoolKind }
func (Null) Kind() Kind   { return NullKind }

func (Object) isValue() {}
func (Array) isValue()  {}
func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Null) isValue()   {}

// Insert stores v under key only when the key is absent and reports
// whether it stored. The first occurrence of a duplicate key wins;
// later duplicates are dropped.
func (o Object) Insert(key string, v Value) bool {
	if _, ok := o[key]; ok {
		return false
	}
	o[key] = v
	return true
}

// Keys returns the object's keys in lexicographic order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports deep structural equality: both values hold the same
// variant and their payloads match recursively.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Object:
		bv, ok := b.(Object)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			w, present := bv[k]
			if !present || !Equal(v, w) {
				return false
			}
		}
		return true
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Null:
		_, ok := b.(Null)
		return ok
	default:
		// Only a nil (indeterminate) Value lands here.
		return a == nil && b == nil
	}
}

// TransformKeys returns a copy of v with every object key rewritten by
// fn, recursing through nested objects and arrays. When two source keys
// collide after rewriting, the first key in lexicographic source order
// wins, matching the parser's duplicate policy. Other variants are
// returned as-is.
func TransformKeys(v Value, fn func(string) string) Value {
	switch tv := v.(type) {
	case Object:
		out := make(Object, len(tv))
		for _, k := range tv.Keys() {
			out.Insert(fn(k), TransformKeys(tv[k], fn))
		}
		return out
	case Array:
		out := make(Array, len(tv))
		for i, el := range tv {
			out[i] = TransformKeys(el, fn)
		}
		return out
	default:
		return v
	}
}
