package stacklang

import "math"

// registerArithPrimitives implements spec §4's arithmetic, comparison,
// and boolean primitives. All binary numeric ops follow Forth's stack
// convention: "a b op" computes a op b.
func registerArithPrimitives(dict *Dictionary) {
	dict.Define("+", arithPrimitive("+", func(a, b float64) float64 { return a + b }), false)
	dict.Define("-", arithPrimitive("-", func(a, b float64) float64 { return a - b }), false)
	dict.Define("*", arithPrimitive("*", func(a, b float64) float64 { return a * b }), false)
	dict.Define("/", arithPrimitive("/", func(a, b float64) float64 { return a / b }), false)
	dict.Define("mod", arithPrimitive("mod", math.Mod), false)
	dict.Define("neg", negPrimitive, false)

	dict.Define("=", eqPrimitive(false), false)
	dict.Define("==", eqPrimitive(false), false)
	dict.Define("!=", neqPrimitive(false), false)
	dict.Define("===", eqPrimitive(true), false)
	dict.Define("!==", neqPrimitive(true), false)

	dict.Define("<", cmpPrimitive("<", func(a, b float64) bool { return a < b }), false)
	dict.Define(">", cmpPrimitive(">", func(a, b float64) bool { return a > b }), false)
	dict.Define("<=", cmpPrimitive("<=", func(a, b float64) bool { return a <= b }), false)
	dict.Define(">=", cmpPrimitive(">=", func(a, b float64) bool { return a >= b }), false)

	dict.Define("and", andPrimitive, false)
	dict.Define("or", orPrimitive, false)
	dict.Define("not", notPrimitive, false)
}

// NotNumberError is raised by an arithmetic or comparison primitive
// whose operand is not a Number.
type NotNumberError struct {
	Word string
	Got  Value
}

func (e NotNumberError) Error() string {
	return "arith/" + e.Word + ": not a number"
}

func popNumber(ctx *Context, word string) Number {
	v := ctx.Stack.Pop()
	n, ok := v.(Number)
	if !ok {
		panic(NotNumberError{Word: word, Got: v})
	}
	return n
}

func arithPrimitive(word string, op func(a, b float64) float64) Callable {
	return func(ctx *Context) {
		b := popNumber(ctx, word)
		a := popNumber(ctx, word)
		ctx.Stack.Push(Number(op(float64(a), float64(b))))
	}
}

func negPrimitive(ctx *Context) {
	a := popNumber(ctx, "neg")
	ctx.Stack.Push(Number(-a))
}

func cmpPrimitive(word string, op func(a, b float64) bool) Callable {
	return func(ctx *Context) {
		b := popNumber(ctx, word)
		a := popNumber(ctx, word)
		ctx.Stack.Push(Boolean(op(float64(a), float64(b))))
	}
}

func eqPrimitive(strict bool) Callable {
	return func(ctx *Context) {
		b := ctx.Stack.Pop()
		a := ctx.Stack.Pop()
		ctx.Stack.Push(Boolean(Equal(a, b, strict)))
	}
}

func neqPrimitive(strict bool) Callable {
	return func(ctx *Context) {
		b := ctx.Stack.Pop()
		a := ctx.Stack.Pop()
		ctx.Stack.Push(Boolean(!Equal(a, b, strict)))
	}
}

func andPrimitive(ctx *Context) {
	b := ctx.Stack.Pop()
	a := ctx.Stack.Pop()
	ctx.Stack.Push(Boolean(Truthy(a) && Truthy(b)))
}

func orPrimitive(ctx *Context) {
	b := ctx.Stack.Pop()
	a := ctx.Stack.Pop()
	ctx.Stack.Push(Boolean(Truthy(a) || Truthy(b)))
}

func notPrimitive(ctx *Context) {
	a := ctx.Stack.Pop()
	ctx.Stack.Push(Boolean(!Truthy(a)))
}
