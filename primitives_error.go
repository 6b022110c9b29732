package stacklang

import "fmt"

// registerErrorPrimitives implements spec §7's UserThrow: in-language
// code raises an arbitrary error the same way a primitive panics with a
// typed one, propagating out through Query exactly like any other.
func registerErrorPrimitives(dict *Dictionary) {
	dict.Define("throwNewError", throwNewErrorPrimitive, false)
}

// throwNewErrorPrimitive is "throwNewError": pop a message and panic
// with UserThrowError. A String pops through verbatim; any other Value
// is formatted the same way dumper.go formats stack contents.
func throwNewErrorPrimitive(ctx *Context) {
	v := ctx.Stack.Pop()
	if s, ok := v.(String); ok {
		panic(UserThrowError{Message: string(s)})
	}
	panic(UserThrowError{Message: fmt.Sprintf("%v", v)})
}
