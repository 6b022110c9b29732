package stacklang

// registerAggregatePrimitives implements spec §4.8: fresh-array/object
// literals, the bracketed array-literal compiler, and each/endeach.
func registerAggregatePrimitives(dict *Dictionary) {
	dict.Define("[]", emptyArrayPrimitive, false)
	dict.Define("{}", emptyObjectPrimitive, false)
	dict.Define("[", openBracketPrimitive, true)
	dict.Define("]", closeBracketPrimitive, true)
	dict.Define("each", eachPrimitive, true)
	dict.Define("endeach", endeachPrimitive, true)
}

func emptyArrayPrimitive(ctx *Context)  { ctx.Stack.Push(NewArray()) }
func emptyObjectPrimitive(ctx *Context) { ctx.Stack.Push(ctx.Host.NewObject()) }

// openBracketPrimitive is "[" (spec §4.8): open an anonymous compilation
// target, the same mechanism : uses, but without naming or linking it
// into the dictionary chain. Its primitive is never meant to run — it
// exists only to be compiled into by ] — so it gets the stand-in
// uncallablePlaceholder rather than colon's DOCOL frame-pusher.
func openBracketPrimitive(ctx *Context) {
	anon := ctx.Dict.Define("", uncallablePlaceholder, false)
	ctx.Compiling.Push(anon)
}

// uncallablePlaceholder is installed on entries that exist only as a
// scratch compilation target (spec §7's UncallableCalled): invoking one
// directly, rather than compiling into it and reading its Compiled
// sequence back out, is a programming error.
func uncallablePlaceholder(ctx *Context) {
	panic(UncallableCalledError{Why: "anonymous array-literal compilation target has no primitive of its own"})
}

// closeBracketPrimitive is "]" (spec §4.8): pop the anonymous target and
// append its compiled sequence, as a single literal Array value, into
// the enclosing target. Numbers and nested arrays reduce to exactly
// those values, because the compiler appends bare values for them; a
// call cell contributes its Callable, so a ' string appears as the lit
// Callable followed by the string.
func closeBracketPrimitive(ctx *Context) {
	anon := ctx.Compiling.Pop()
	items := make([]Value, anon.Len())
	for i := range items {
		if cell := anon.At(i); cell.IsCall() {
			items[i] = cell.Call
		} else {
			items[i] = cell.Literal
		}
	}
	compileHere(ctx, LitItem(&Array{Items: items}))
}

// eachPrimitive is "each" (spec §4.8): compile the guard+clone+setup
// primitive, then reserve and compile a placeholder header cell,
// recording its CompiledCell address on the parameter stack for endeach.
func eachPrimitive(ctx *Context) {
	compileHere(ctx, CallItem(eachSetupAndPrime))
	entry := ctx.Compiling.Top()
	ctx.Stack.Push(CompiledCell{Entry: entry, Index: entry.Len()})
	compileHere(ctx, LitItem(Null{}))
}

// endeachPrimitive is "endeach" (spec §4.8): pop the header CompiledCell
// each left on the parameter stack and compile the loop tail, which
// knows how to branch back to just past that header.
func endeachPrimitive(ctx *Context) {
	markerV := ctx.Stack.Pop()
	marker, ok := markerV.(CompiledCell)
	entry := ctx.Compiling.Top()
	if !ok || marker.Entry != entry {
		panic(BadStackFrameError{A: markerV})
	}
	headerIndex := marker.Index
	compileHere(ctx, CallItem(func(c *Context) {
		eachTail(c, headerIndex)
	}))
}

// eachSetupAndPrime implements spec §4.8 steps 1-5: fail EachNeedsArray
// if TOS is not an array, clone it (so mutating the caller's array
// during iteration has no effect), push (array, index=0) onto the
// control stack, prime the first element, and skip the header cell that
// each compiled immediately after this primitive's own cell.
func eachSetupAndPrime(ctx *Context) {
	v := ctx.Stack.Pop()
	arr, ok := v.(*Array)
	if !ok {
		panic(EachNeedsArrayError{Got: v})
	}
	clone := arr.Clone()
	ctx.PushControl(clone)
	ctx.PushControl(Number(0))
	primeElement(ctx, clone, 0)

	frame, ok := ctx.Return.Top()
	if !ok {
		panic(ReturnStackUnderflowError{})
	}
	frame.I++
}

func primeElement(ctx *Context, arr *Array, idx int) {
	var el Value = Undefined{}
	if idx < len(arr.Items) {
		el = arr.Items[idx]
	}
	ctx.PushControl(el)
}

// eachTail implements spec §4.8 step 7: pop element+index+array, advance
// the index, and either re-prime and branch back to headerIndex (so the
// next innerNext step lands on the loop body's first cell) or fall
// through if the clone is exhausted.
func eachTail(ctx *Context, headerIndex int) {
	ctx.Control.Pop()
	idxV := ctx.Control.Pop()
	arrV := ctx.Control.Pop()
	idx := int(idxV.(Number)) + 1
	arr := arrV.(*Array)

	if idx >= len(arr.Items) {
		return
	}

	ctx.PushControl(arr)
	ctx.PushControl(Number(idx))
	primeElement(ctx, arr, idx)

	frame, ok := ctx.Return.Top()
	if !ok {
		panic(ReturnStackUnderflowError{})
	}
	frame.I = headerIndex
}
