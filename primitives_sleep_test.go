package stacklang

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduler lets tests control exactly when a sleep's resume fires,
// instead of waiting on a real timer.
type fakeScheduler struct {
	mu      sync.Mutex
	pending []func()
}

func (f *fakeScheduler) After(_ time.Duration, resume func()) {
	f.mu.Lock()
	f.pending = append(f.pending, resume)
	f.mu.Unlock()
}

func (f *fakeScheduler) fireAll() {
	f.mu.Lock()
	pending := f.pending
	f.pending = nil
	f.mu.Unlock()
	for _, resume := range pending {
		resume()
	}
}

func TestSleepPausesAndResumes(t *testing.T) {
	sched := &fakeScheduler{}
	ctx := NewContext(WithInput("1 sleep 2", "test"), WithScheduler(sched))

	require.NoError(t, Query(ctx))
	assert.True(t, ctx.Paused)
	assert.False(t, ctx.Halted)
	assert.Equal(t, []Value{}, ctx.Stack.Items())

	sched.fireAll()
	assert.False(t, ctx.Paused)
	assert.True(t, ctx.Halted)
	assert.Equal(t, []Value{Number(2)}, ctx.Stack.Items())
}

func TestSleepPanicsOnNonNumberDuration(t *testing.T) {
	sched := &fakeScheduler{}
	ctx := NewContext(WithInput(`' x' sleep`, "test"), WithScheduler(sched))
	err := Query(ctx)
	assert.Error(t, err)
}
