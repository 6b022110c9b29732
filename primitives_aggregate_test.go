package stacklang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyArrayAndObject(t *testing.T) {
	ctx, _ := newRunner(t)
	emptyArrayPrimitive(ctx)
	arr := ctx.Stack.Pop().(*Array)
	assert.Empty(t, arr.Items)

	emptyObjectPrimitive(ctx)
	_, ok := ctx.Stack.Pop().(Object)
	assert.True(t, ok)
}

func TestBracketArrayLiteralCompilesFlatValues(t *testing.T) {
	ctx, dict := newRunner(t)
	entry := dict.Define("w", nil, false)
	ctx.Compiling.Push(entry)

	openBracketPrimitive(ctx)
	anon := ctx.Compiling.Top()
	anon.Compile(LitItem(Number(3)))
	anon.Compile(LitItem(Number(5)))
	anon.Compile(LitItem(Number(7)))
	closeBracketPrimitive(ctx)

	require.Equal(t, 1, entry.Len())
	arr := entry.At(0).Literal.(*Array)
	assert.Equal(t, []Value{Number(3), Number(5), Number(7)}, arr.Items)
	assert.Same(t, entry, ctx.Compiling.Top())
}

func TestEachEndeachDriveControlStackIteration(t *testing.T) {
	ctx, dict := newRunner(t)
	entry := dict.Define("addall", nil, false)
	ctx.Compiling.Push(entry)

	eachPrimitive(ctx)
	marker := ctx.Stack.Pop().(CompiledCell)
	assert.Same(t, entry, marker.Entry)

	entry.Compile(CallItem(controlIPrimitive))
	entry.Compile(CallItem(dict.CoreWord("+")))

	ctx.Stack.Push(marker)
	endeachPrimitive(ctx)
	ctx.Compiling.Pop()

	ctx.Stack.Push(Number(0))
	ctx.Stack.Push(&Array{Items: []Value{Number(3), Number(5), Number(7)}})

	ctx.Return.Push(Frame{Entry: entry, I: -1})
	for ctx.Return.Len() > 0 {
		innerNext(ctx)
	}
	assert.Equal(t, []Value{Number(15)}, ctx.Stack.Items())
	assert.Equal(t, 0, ctx.Control.Len())
}

func TestEachNeedsArrayPanicsOnNonArray(t *testing.T) {
	ctx, dict := newRunner(t)
	entry := dict.Define("w", nil, false)
	ctx.Return.Push(Frame{Entry: entry, I: -1})
	ctx.Stack.Push(Number(5))
	assert.Panics(t, func() { eachSetupAndPrime(ctx) })
}

func TestEndeachMismatchedEntryPanics(t *testing.T) {
	ctx, dict := newRunner(t)
	a := dict.Define("a", nil, false)
	b := dict.Define("b", nil, false)
	ctx.Compiling.Push(b)
	ctx.Stack.Push(CompiledCell{Entry: a, Index: 0})
	assert.Panics(t, func() { endeachPrimitive(ctx) })
}

func TestUncallablePlaceholderPanicsIfInvokedDirectly(t *testing.T) {
	ctx, _ := newRunner(t)
	openBracketPrimitive(ctx)
	anon := ctx.Compiling.Pop()
	assert.PanicsWithValue(t,
		UncallableCalledError{Why: "anonymous array-literal compilation target has no primitive of its own"},
		func() { anon.Primitive(ctx) },
	)
}

func TestEachRespectsControlStackLimit(t *testing.T) {
	dict := NewCoreDictionary()
	ctx := NewContextWithDictionary(dict, WithControlStackLimit(2))
	entry := dict.Define("w", nil, false)
	ctx.Return.Push(Frame{Entry: entry, I: -1})
	ctx.Stack.Push(&Array{Items: []Value{Number(1), Number(2)}})
	assert.PanicsWithValue(t, ControlStackLimitError{Limit: 2}, func() { eachSetupAndPrime(ctx) })
}
