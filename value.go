package stacklang

import (
	"fmt"
	"math"
	"regexp"
)

// Value is anything that can live on the parameter, return, or control
// stack. The concrete types below are the whole of spec §3's sum type;
// Value itself carries no behavior beyond identifying its members, the
// same small-named-type idiom the teacher uses for its own error
// hierarchy (haltError, progError, storError, ...) rather than a single
// do-everything interface.
type Value interface {
	// Tag names the variant, e.g. "number" or "array".
	Tag() string
}

// Number is a double precision float, the engine's only numeric type.
type Number float64

// Tag implements Value.
func (Number) Tag() string { return "number" }

// Boolean is a JS-like true/false value.
type Boolean bool

// Tag implements Value.
func (Boolean) Tag() string { return "boolean" }

// String is a sequence of bytes; the engine does not interpret encoding.
type String string

// Tag implements Value.
func (String) Tag() string { return "string" }

// Regexp wraps a compiled regular expression, as produced by re/ and
// consumed by match/ and match.
type Regexp struct{ *regexp.Regexp }

// Tag implements Value.
func (Regexp) Tag() string { return "regexp" }

// Null is the distinct falsy "no value" marker (JS null).
type Null struct{}

// Tag implements Value.
func (Null) Tag() string { return "null" }

// Undefined is the distinct falsy "absent value" marker (JS undefined).
type Undefined struct{}

// Tag implements Value.
func (Undefined) Tag() string { return "undefined" }

// Array is an owned, mutable, ordered sequence of Value. Pointer identity
// is significant: assigning an *Array shares it, clone copies it.
type Array struct {
	Items []Value
}

// Tag implements Value.
func (*Array) Tag() string { return "array" }

// NewArray returns a fresh, empty array.
func NewArray() *Array { return &Array{} }

// Clone returns a new Array holding a shallow copy of the items.
func (a *Array) Clone() *Array {
	items := make([]Value, len(a.Items))
	copy(items, a.Items)
	return &Array{Items: items}
}

// Object is an opaque host handle: a DOM node, a host function, whatever
// the HostBridge implementation hands back. The core never looks inside
// it; equality is whatever the underlying Go value's == does.
type Object struct{ Handle interface{} }

// Tag implements Value.
func (Object) Tag() string { return "object" }

// DictEntryRef is a reference to a dictionary entry. No core primitive
// pushes one; tick and wordToFunc: push a Callable instead.
type DictEntryRef struct{ Entry *DictEntry }

// Tag implements Value.
func (DictEntryRef) Tag() string { return "dict-entry" }

// CompiledCell addresses a single position inside a dictionary entry's
// compiled sequence, as produced by here.
type CompiledCell struct {
	Entry *DictEntry
	Index int
}

// Tag implements Value.
func (CompiledCell) Tag() string { return "compiled-cell" }

// Callable is a primitive implementation: a Go function taking the
// Context. It is also a Value so that tick and wordToFunc: can push one.
type Callable func(ctx *Context)

// Tag implements Value.
func (Callable) Tag() string { return "callable" }

// Truthy implements spec §3's JS-like truthiness rules.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Null, Undefined:
		return false
	case Boolean:
		return bool(v)
	case Number:
		f := float64(v)
		return f != 0 && !math.IsNaN(f)
	case String:
		return v != ""
	default:
		return true
	}
}

// Equal implements loose (==) and strict (===) equality. Loose equality
// differs from strict only in treating Null and Undefined as equal to
// each other; values of different types are never equal, so there is no
// JS-style coercion (Number(1) and String("1") compare unequal).
// NaN is never equal to itself, under either flavor, matching JS.
func Equal(a, b Value, strict bool) bool {
	if an, ok := a.(Number); ok {
		if bn, ok := b.(Number); ok {
			return float64(an) == float64(bn)
		}
	}
	if _, aNull := a.(Null); aNull {
		if _, bNull := b.(Null); bNull {
			return true
		}
		if !strict {
			_, bUndef := b.(Undefined)
			return bUndef
		}
		return false
	}
	if _, aUndef := a.(Undefined); aUndef {
		if _, bUndef := b.(Undefined); bUndef {
			return true
		}
		if !strict {
			_, bNull := b.(Null)
			return bNull
		}
		return false
	}
	if strict {
		if fmt.Sprintf("%T", a) != fmt.Sprintf("%T", b) {
			return false
		}
	}
	switch a := a.(type) {
	case Boolean:
		if b, ok := b.(Boolean); ok {
			return a == b
		}
	case String:
		if b, ok := b.(String); ok {
			return a == b
		}
	case *Array:
		b, ok := b.(*Array)
		return ok && a == b
	case Object:
		b, ok := b.(Object)
		return ok && a.Handle == b.Handle
	case DictEntryRef:
		b, ok := b.(DictEntryRef)
		return ok && a.Entry == b.Entry
	case CompiledCell:
		b, ok := b.(CompiledCell)
		return ok && a.Entry == b.Entry && a.Index == b.Index
	}
	return false
}
