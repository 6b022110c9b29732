/*
Package stacklang implements the core of a small, embeddable,
concatenative stack-based language in the Forth tradition.

Programs are streams of whitespace-separated words operating on a
shared parameter stack. Following Jonesforth's "always be compiling"
model, every input word is compiled into an internal threaded
representation before it runs; executing that representation produces
the observable behavior. A short bootstrap source, compiled once at
Dictionary construction time, builds structured control flow
(if/else/endif, begin/until/again/repeat) out of a handful of branch
primitives — the same "grow the language in the language" strategy a
Forth kernel uses to build up from a minimal primitive set.

A Context owns one thread of execution: its own parameter, return, and
control stacks, and an input Cursor. Multiple Contexts may share a
single Dictionary, so that a word defined through one Context is
visible to another — the engine's only form of concurrency, and it is
entirely cooperative: a Context only ever yields at sleep or at the
caller's own choice not to re-enter Query.

The engine has no built-in notion of a DOM, an event loop, or a host
object model; it only knows about the HostBridge and Scheduler
interfaces declared in this package. An embedder supplies its own
implementations to connect property access, function application, and
timers to whatever host environment it is running in.
*/
package stacklang
