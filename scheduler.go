package stacklang

import "time"

// Scheduler is the host collaborator spec §4.9 asks for: something that
// can re-invoke Query(ctx) after a delay, releasing the calling
// goroutine in between. The DOM/event collaborator would implement this
// over the browser's setTimeout; Go embeddings get a real timer by
// default via timerScheduler.
type Scheduler interface {
	// After arranges for resume to be called no sooner than d from now.
	After(d time.Duration, resume func())
}

// timerScheduler is the default Scheduler, backed by time.AfterFunc.
type timerScheduler struct{}

// NewTimerScheduler returns the engine's standalone default Scheduler.
func NewTimerScheduler() Scheduler { return timerScheduler{} }

func (timerScheduler) After(d time.Duration, resume func()) {
	time.AfterFunc(d, resume)
}
