package stacklang

import "math"

// registerControlPrimitives implements spec §4.6's branch family plus
// the exit/EXECUTE machinery spec §4.4/§4.5 describe as primitives.
func registerControlPrimitives(dict *Dictionary) {
	dict.Define("branch", branchPrimitive, false)
	dict.Define("0branch", zeroBranchPrimitive, false)
	dict.Define("falsyBranch", falsyBranchPrimitive, false)
	dict.Define("here", herePrimitive, false)
	dict.Define("-stackFrame", stackFramePrimitive, false)
	dict.Define("exit", exitPrimitive, false)
	dict.Define("EXECUTE", runExecute, true)
	dict.Define("quit", quitPrimitive, false)
}

// branchOffset reads the compiled cell immediately following the
// current frame's position, which the compiler placed there as a
// literal signed offset, and applies it relative to frame.I.
func branchOffset(ctx *Context, frame *Frame) int {
	cell := frame.Entry.At(frame.I + 1)
	n, ok := cell.Literal.(Number)
	if !ok || math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
		panic(BadBranchError{Got: cell.Literal})
	}
	return int(n)
}

func branchPrimitive(ctx *Context) {
	frame, ok := ctx.Return.Top()
	if !ok {
		panic(ReturnStackUnderflowError{})
	}
	frame.I += branchOffset(ctx, frame)
}

func zeroBranchPrimitive(ctx *Context) {
	v := ctx.Stack.Pop()
	n, ok := v.(Number)
	if !ok {
		panic(BadStackForZeroBranchError{Got: v})
	}
	frame, ok := ctx.Return.Top()
	if !ok {
		panic(ReturnStackUnderflowError{})
	}
	if float64(n) == 0 {
		frame.I += branchOffset(ctx, frame)
	} else {
		frame.I++
	}
}

func falsyBranchPrimitive(ctx *Context) {
	v := ctx.Stack.Pop()
	frame, ok := ctx.Return.Top()
	if !ok {
		panic(ReturnStackUnderflowError{})
	}
	if !Truthy(v) {
		frame.I += branchOffset(ctx, frame)
	} else {
		frame.I++
	}
}

func herePrimitive(ctx *Context) {
	entry := ctx.Compiling.Top()
	ctx.Stack.Push(CompiledCell{Entry: entry, Index: entry.Len()})
}

func stackFramePrimitive(ctx *Context) {
	bv := ctx.Stack.Pop()
	av := ctx.Stack.Pop()
	a, aok := av.(CompiledCell)
	b, bok := bv.(CompiledCell)
	if !aok || !bok || a.Entry != b.Entry {
		panic(BadStackFrameError{A: av, B: bv})
	}
	ctx.Stack.Push(Number(a.Index - b.Index))
}

func exitPrimitive(ctx *Context) {
	ctx.Return.Pop()
}

// quitPrimitive implements spec §9's documented Open Question decision:
// truncate the return stack to length 1 (not empty it entirely, as
// classical Forth's QUIT does), then re-enter interpret.
func quitPrimitive(ctx *Context) {
	ctx.Return.Truncate(1)
	interpret(ctx)
}
