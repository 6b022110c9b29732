package stacklang

import "time"

// registerSleepPrimitives implements spec §4.9: sleep pops a millisecond
// count, pauses the engine, and asks the Scheduler to resume it later.
func registerSleepPrimitives(dict *Dictionary) {
	dict.Define("sleep", sleepPrimitive, false)
}

// sleepPrimitive is "sleep". Setting Paused releases the current Query
// call (queryLoop's condition goes false); the Scheduler's callback
// clears Paused and re-enters Query, continuing the threaded execution
// exactly where it left off.
func sleepPrimitive(ctx *Context) {
	ms := popNumber(ctx, "sleep")
	ctx.Paused = true
	ctx.Scheduler.After(time.Duration(ms)*time.Millisecond, func() {
		ctx.Paused = false
		Query(ctx)
	})
}
