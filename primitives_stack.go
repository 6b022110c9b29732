package stacklang

// registerStackPrimitives implements spec §4.8's non-bracket stack and
// array manipulation words, plus the control-stack transfer primitives
// each/endeach and I build on.
func registerStackPrimitives(dict *Dictionary) {
	dict.Define("dup", dupPrimitive, false)
	dict.Define("drop", dropPrimitive, false)
	dict.Define("swap", swapPrimitive, false)
	dict.Define("over", overPrimitive, false)
	dict.Define("rot", rotPrimitive, false)
	dict.Define("-rot", negRotPrimitive, false)
	dict.Define("push", arrayPushPrimitive, false)
	dict.Define("pop", arrayPopPrimitive, false)
	dict.Define("first", firstPrimitive, false)
	dict.Define("nth", nthPrimitive, false)
	dict.Define("clone", clonePrimitive, false)
	dict.Define("collect", collectPrimitive, false)
	dict.Define("spread", spreadPrimitive, false)
	dict.Define(">control", toControlPrimitive, false)
	dict.Define("control>", fromControlPrimitive, false)
	dict.Define("I", controlIPrimitive, false)
}

func dupPrimitive(ctx *Context) {
	v, ok := ctx.Stack.Peek()
	if !ok {
		panic(StackUnderflowError{Word: "dup"})
	}
	ctx.Stack.Push(v)
}

func dropPrimitive(ctx *Context) { ctx.Stack.Pop() }

func swapPrimitive(ctx *Context) {
	b := ctx.Stack.Pop()
	a := ctx.Stack.Pop()
	ctx.Stack.Push(b)
	ctx.Stack.Push(a)
}

func overPrimitive(ctx *Context) {
	b := ctx.Stack.Pop()
	a := ctx.Stack.Pop()
	ctx.Stack.Push(a)
	ctx.Stack.Push(b)
	ctx.Stack.Push(a)
}

func rotPrimitive(ctx *Context) {
	c := ctx.Stack.Pop()
	b := ctx.Stack.Pop()
	a := ctx.Stack.Pop()
	ctx.Stack.Push(b)
	ctx.Stack.Push(c)
	ctx.Stack.Push(a)
}

func negRotPrimitive(ctx *Context) {
	c := ctx.Stack.Pop()
	b := ctx.Stack.Pop()
	a := ctx.Stack.Pop()
	ctx.Stack.Push(c)
	ctx.Stack.Push(a)
	ctx.Stack.Push(b)
}

// arrayPushPrimitive is "push": (array value -- array), appends value.
func arrayPushPrimitive(ctx *Context) {
	v := ctx.Stack.Pop()
	av := ctx.Stack.Pop()
	arr, ok := av.(*Array)
	if !ok {
		panic(NotArrayError{Word: "push", Got: av})
	}
	arr.Items = append(arr.Items, v)
	ctx.Stack.Push(arr)
}

// arrayPopPrimitive is "pop": (array -- array value), removing the last
// item; Undefined if the array was already empty.
func arrayPopPrimitive(ctx *Context) {
	av := ctx.Stack.Pop()
	arr, ok := av.(*Array)
	if !ok {
		panic(NotArrayError{Word: "pop", Got: av})
	}
	var v Value = Undefined{}
	if n := len(arr.Items); n > 0 {
		v = arr.Items[n-1]
		arr.Items = arr.Items[:n-1]
	}
	ctx.Stack.Push(arr)
	ctx.Stack.Push(v)
}

// firstPrimitive is "first": (array -- value), the array itself is consumed.
func firstPrimitive(ctx *Context) {
	av := ctx.Stack.Pop()
	arr, ok := av.(*Array)
	if !ok {
		panic(NotArrayError{Word: "first", Got: av})
	}
	if len(arr.Items) == 0 {
		ctx.Stack.Push(Undefined{})
		return
	}
	ctx.Stack.Push(arr.Items[0])
}

// nthPrimitive is "nth": (array index -- value), the array is consumed.
func nthPrimitive(ctx *Context) {
	iv := ctx.Stack.Pop()
	av := ctx.Stack.Pop()
	arr, ok := av.(*Array)
	if !ok {
		panic(NotArrayError{Word: "nth", Got: av})
	}
	n, ok := iv.(Number)
	if !ok {
		panic(NotArrayError{Word: "nth", Got: iv})
	}
	i := int(n)
	if i < 0 || i >= len(arr.Items) {
		ctx.Stack.Push(Undefined{})
		return
	}
	ctx.Stack.Push(arr.Items[i])
}

// clonePrimitive is "clone": (array -- newArray), a shallow copy.
func clonePrimitive(ctx *Context) {
	v := ctx.Stack.Pop()
	arr, ok := v.(*Array)
	if !ok {
		panic(CloneNonArrayError{Got: v})
	}
	ctx.Stack.Push(arr.Clone())
}

// collectPrimitive is "collect": (vN..v1 n -- array), popping n followed
// by n values and collecting them into a new array in original order.
func collectPrimitive(ctx *Context) {
	nv := ctx.Stack.Pop()
	n, ok := nv.(Number)
	if !ok {
		panic(NotArrayError{Word: "collect", Got: nv})
	}
	count := int(n)
	items := make([]Value, count)
	for i := count - 1; i >= 0; i-- {
		items[i] = ctx.Stack.Pop()
	}
	ctx.Stack.Push(&Array{Items: items})
}

// spreadPrimitive is "spread": (array -- v1..vN), pushing items in order.
func spreadPrimitive(ctx *Context) {
	v := ctx.Stack.Pop()
	arr, ok := v.(*Array)
	if !ok {
		panic(NotArrayError{Word: "spread", Got: v})
	}
	for _, item := range arr.Items {
		ctx.Stack.Push(item)
	}
}

func toControlPrimitive(ctx *Context)   { ctx.PushControl(ctx.Stack.Pop()) }
func fromControlPrimitive(ctx *Context) { ctx.Stack.Push(ctx.Control.Pop()) }

// controlIPrimitive is "I": peek the top of the control stack, leaving
// it, and push a copy — the current each-loop element.
func controlIPrimitive(ctx *Context) {
	v, ok := ctx.Control.Peek()
	if !ok {
		panic(StackUnderflowError{Word: "I"})
	}
	ctx.Stack.Push(v)
}
