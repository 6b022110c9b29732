package stacklang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackShuffleWords(t *testing.T) {
	ctx, _ := newRunner(t)

	push := func(vs ...Value) {
		for _, v := range vs {
			ctx.Stack.Push(v)
		}
	}
	drain := func() []Value {
		out := ctx.Stack.Items()
		ctx.Stack = Stack{}
		return out
	}

	push(Number(1))
	dupPrimitive(ctx)
	assert.Equal(t, []Value{Number(1), Number(1)}, drain())

	push(Number(1), Number(2))
	swapPrimitive(ctx)
	assert.Equal(t, []Value{Number(2), Number(1)}, drain())

	push(Number(1), Number(2))
	overPrimitive(ctx)
	assert.Equal(t, []Value{Number(1), Number(2), Number(1)}, drain())

	push(Number(1), Number(2), Number(3))
	rotPrimitive(ctx)
	assert.Equal(t, []Value{Number(2), Number(3), Number(1)}, drain())

	push(Number(111), Number(222), Number(333))
	negRotPrimitive(ctx)
	assert.Equal(t, []Value{Number(333), Number(111), Number(222)}, drain())

	push(Number(1))
	dropPrimitive(ctx)
	assert.Equal(t, []Value{}, drain())
}

func TestArrayPushPop(t *testing.T) {
	ctx, _ := newRunner(t)
	ctx.Stack.Push(NewArray())
	ctx.Stack.Push(Number(7))
	arrayPushPrimitive(ctx)
	arr := ctx.Stack.Pop().(*Array)
	assert.Equal(t, []Value{Number(7)}, arr.Items)

	ctx.Stack.Push(arr)
	arrayPopPrimitive(ctx)
	popped := ctx.Stack.Pop()
	assert.Equal(t, Number(7), popped)
	arr2 := ctx.Stack.Pop().(*Array)
	assert.Empty(t, arr2.Items)
}

func TestArrayPopOnEmptyPushesUndefined(t *testing.T) {
	ctx, _ := newRunner(t)
	ctx.Stack.Push(NewArray())
	arrayPopPrimitive(ctx)
	assert.Equal(t, Undefined{}, ctx.Stack.Pop())
}

func TestFirstAndNth(t *testing.T) {
	ctx, _ := newRunner(t)
	ctx.Stack.Push(&Array{Items: []Value{Number(10), Number(20), Number(30)}})
	firstPrimitive(ctx)
	assert.Equal(t, Number(10), ctx.Stack.Pop())

	ctx.Stack.Push(&Array{Items: []Value{Number(10), Number(20), Number(30)}})
	ctx.Stack.Push(Number(1))
	nthPrimitive(ctx)
	assert.Equal(t, Number(20), ctx.Stack.Pop())

	ctx.Stack.Push(&Array{Items: []Value{Number(10)}})
	ctx.Stack.Push(Number(5))
	nthPrimitive(ctx)
	assert.Equal(t, Undefined{}, ctx.Stack.Pop())
}

func TestClonePanicsOnNonArray(t *testing.T) {
	ctx, _ := newRunner(t)
	ctx.Stack.Push(Number(5))
	assert.PanicsWithValue(t, CloneNonArrayError{Got: Number(5)}, func() { clonePrimitive(ctx) })
}

func TestCollectAndSpread(t *testing.T) {
	ctx, _ := newRunner(t)
	ctx.Stack.Push(Number(1))
	ctx.Stack.Push(Number(2))
	ctx.Stack.Push(Number(3))
	ctx.Stack.Push(Number(3)) // count
	collectPrimitive(ctx)
	arr := ctx.Stack.Pop().(*Array)
	assert.Equal(t, []Value{Number(1), Number(2), Number(3)}, arr.Items)

	ctx.Stack.Push(arr)
	spreadPrimitive(ctx)
	assert.Equal(t, []Value{Number(1), Number(2), Number(3)}, ctx.Stack.Items())
}

func TestControlTransferAndI(t *testing.T) {
	ctx, _ := newRunner(t)
	ctx.Stack.Push(Number(42))
	toControlPrimitive(ctx)
	assert.Equal(t, 1, ctx.Control.Len())
	assert.Equal(t, 0, ctx.Stack.Len())

	controlIPrimitive(ctx)
	assert.Equal(t, Number(42), ctx.Stack.Pop())
	assert.Equal(t, 1, ctx.Control.Len()) // I peeks, does not consume

	fromControlPrimitive(ctx)
	assert.Equal(t, Number(42), ctx.Stack.Pop())
	assert.Equal(t, 0, ctx.Control.Len())
}
