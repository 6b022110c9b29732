package stacklang

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(t *testing.T) (*Context, *Dictionary) {
	t.Helper()
	dict := NewCoreDictionary()
	return NewContextWithDictionary(dict), dict
}

func TestBranchJumpsByOffset(t *testing.T) {
	ctx, dict := newRunner(t)
	entry := dict.Define("jumper", nil, false)
	entry.Compile(CallItem(dict.CoreWord("branch"))) // index 0
	entry.Compile(LitItem(Number(3)))                // index 1: offset
	entry.Compile(LitItem(Number(111)))              // index 2: skipped
	entry.Compile(LitItem(Number(222)))              // index 3: landing-1
	entry.Compile(LitItem(Number(333)))              // index 4: landed on next innerNext

	ctx.Return.Push(Frame{Entry: entry, I: -1})
	innerNext(ctx) // runs branch: I(-1)+1=0 fetch branch cell, I += 3 -> 3
	innerNext(ctx) // I++ -> 4, push cell 4
	assert.Equal(t, []Value{Number(333)}, ctx.Stack.Items())
}

func TestZeroBranchTakenWhenZero(t *testing.T) {
	ctx, dict := newRunner(t)
	entry := dict.Define("z", nil, false)
	entry.Compile(CallItem(dict.CoreWord("0branch")))
	entry.Compile(LitItem(Number(2)))
	entry.Compile(LitItem(Number(999)))

	ctx.Stack.Push(Number(0))
	ctx.Return.Push(Frame{Entry: entry, I: -1})
	innerNext(ctx)
	frame, _ := ctx.Return.Top()
	assert.Equal(t, 2, frame.I)
}

func TestZeroBranchNotTakenWhenNonzero(t *testing.T) {
	ctx, dict := newRunner(t)
	entry := dict.Define("z", nil, false)
	entry.Compile(CallItem(dict.CoreWord("0branch")))
	entry.Compile(LitItem(Number(2)))

	ctx.Stack.Push(Number(5))
	ctx.Return.Push(Frame{Entry: entry, I: -1})
	innerNext(ctx)
	frame, _ := ctx.Return.Top()
	assert.Equal(t, 1, frame.I)
}

func TestFalsyBranchUsesTruthiness(t *testing.T) {
	ctx, dict := newRunner(t)
	entry := dict.Define("f", nil, false)
	entry.Compile(CallItem(dict.CoreWord("falsyBranch")))
	entry.Compile(LitItem(Number(5)))

	ctx.Stack.Push(Null{})
	ctx.Return.Push(Frame{Entry: entry, I: -1})
	innerNext(ctx)
	frame, _ := ctx.Return.Top()
	assert.Equal(t, 5, frame.I)
}

func TestHerePushesCompiledCellAtCurrentLength(t *testing.T) {
	ctx, dict := newRunner(t)
	entry := dict.Define("w", nil, false)
	ctx.Compiling.Push(entry)
	entry.Compile(LitItem(Number(1)))

	dict.CoreWord("here")(ctx)
	cell := ctx.Stack.Pop().(CompiledCell)
	assert.Same(t, entry, cell.Entry)
	assert.Equal(t, 1, cell.Index)
}

func TestStackFrameSubtractsIndices(t *testing.T) {
	ctx, dict := newRunner(t)
	entry := dict.Define("w", nil, false)
	ctx.Stack.Push(CompiledCell{Entry: entry, Index: 5})
	ctx.Stack.Push(CompiledCell{Entry: entry, Index: 2})
	dict.CoreWord("-stackFrame")(ctx)
	assert.Equal(t, Number(3), ctx.Stack.Pop())
}

func TestStackFrameMismatchedEntriesPanics(t *testing.T) {
	ctx, dict := newRunner(t)
	a := dict.Define("a", nil, false)
	b := dict.Define("b", nil, false)
	ctx.Stack.Push(CompiledCell{Entry: a, Index: 0})
	ctx.Stack.Push(CompiledCell{Entry: b, Index: 0})
	assert.Panics(t, func() { dict.CoreWord("-stackFrame")(ctx) })
}

func TestBadBranchOnNonNumberOffset(t *testing.T) {
	ctx, dict := newRunner(t)
	entry := dict.Define("bad", nil, false)
	entry.Compile(CallItem(dict.CoreWord("branch")))
	entry.Compile(LitItem(String("not a number")))
	ctx.Return.Push(Frame{Entry: entry, I: -1})
	assert.PanicsWithValue(t, BadBranchError{Got: String("not a number")}, func() { innerNext(ctx) })
}

func TestBadBranchOnNonFiniteOffset(t *testing.T) {
	ctx, dict := newRunner(t)
	entry := dict.Define("bad", nil, false)
	entry.Compile(CallItem(dict.CoreWord("branch")))
	entry.Compile(LitItem(Number(math.Inf(1))))
	ctx.Return.Push(Frame{Entry: entry, I: -1})
	assert.PanicsWithValue(t, BadBranchError{Got: Number(math.Inf(1))}, func() { innerNext(ctx) })
}

func TestQuitTruncatesReturnStackToOne(t *testing.T) {
	ctx, _ := newRunner(t)
	ctx.ExecuteAtEnd = false
	ctx.Return.Push(Frame{})
	ctx.Return.Push(Frame{})
	ctx.Return.Push(Frame{})
	ctx.Input = NewCursor("", "test")
	quitPrimitive(ctx)
	assert.Equal(t, 1, ctx.Return.Len())
	assert.True(t, ctx.Halted)
}

func TestExitPopsReturnFrame(t *testing.T) {
	ctx, dict := newRunner(t)
	entry := dict.Define("e", nil, false)
	ctx.Return.Push(Frame{Entry: entry})
	dict.CoreWord("exit")(ctx)
	assert.Equal(t, 0, ctx.Return.Len())
}

func TestEndToEndScenariosUseSharedDict(t *testing.T) {
	// sanity check that NewCoreDictionary can back more than one Context.
	dict := NewCoreDictionary()
	a := NewContextWithDictionary(dict, WithInput(": greeting 1 ;", "a"))
	require.NoError(t, Query(a))
	b := NewContextWithDictionary(dict, WithInput("greeting", "b"))
	require.NoError(t, Query(b))
	assert.Equal(t, []Value{Number(1)}, b.Stack.Items())
}
