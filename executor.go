package stacklang

// step is spec §4.4's query main loop, run once per Query iteration:
// drain the return stack via innerNext, or else ask the compiler for
// one more token.
func step(ctx *Context) {
	if ctx.Return.Len() > 0 {
		innerNext(ctx)
		return
	}
	interpret(ctx)
}

// innerNext implements spec §4.4's inner-next: advance the top frame,
// exit if it has run off the end of its entry's compiled body, else
// execute or push the next cell.
func innerNext(ctx *Context) {
	frame, ok := ctx.Return.Top()
	if !ok {
		return
	}
	frame.I++

	if frame.I >= frame.Entry.Len() {
		ctx.logPrefixed("exit %v", frame.Entry.Name)
		exitPrimitive(ctx)
		return
	}

	cell := frame.Entry.At(frame.I)
	if cell.IsCall() {
		ctx.logDepth++
		cell.Call(ctx)
		ctx.logDepth--
		return
	}
	ctx.Stack.Push(cell.Literal)
}

// runExecute is EXECUTE (spec §4.4): push a frame for the top of the
// compilation stack, the mechanism that starts threaded execution of
// everything compiled so far, and that wordToFunc: reuses to materialize
// a callable Value.
func runExecute(ctx *Context) {
	ctx.Return.Push(Frame{Entry: ctx.Compiling.Top(), I: -1})
}
