package stacklang

import (
	"errors"
	"io"

	"github.com/nsavage/stacklang/internal/flushio"
	"github.com/nsavage/stacklang/internal/panicerr"
)

// traceWriter is the flushable writer backing Context.Trace, following
// the teacher's ioCore.out convention. The debug words (.s, .dict, dump)
// flush it after each write; halting does not flush it.
type traceWriter = flushio.WriteFlusher

// ContextOption configures a Context at construction time, the same
// functional-options shape as the teacher's VMOption/options.go.
type ContextOption interface{ apply(ctx *Context) }

type optionFunc func(ctx *Context)

func (f optionFunc) apply(ctx *Context) { f(ctx) }

// WithInput sets the source text to compile/run, named for diagnostics.
func WithInput(text, name string) ContextOption {
	return optionFunc(func(ctx *Context) { ctx.Input = NewCursor(text, name) })
}

// WithHost sets the HostBridge implementation (spec §4.10). Defaults to
// NewMapHost() if never set.
func WithHost(h HostBridge) ContextOption {
	return optionFunc(func(ctx *Context) { ctx.Host = h })
}

// WithScheduler sets the Scheduler implementation used by sleep (spec
// §4.9). Defaults to NewTimerScheduler() if never set.
func WithScheduler(s Scheduler) ContextOption {
	return optionFunc(func(ctx *Context) { ctx.Scheduler = s })
}

// WithLogf installs a trace-logging hook, mirroring the teacher's
// WithLogf/-trace flag.
func WithLogf(logfn func(mess string, args ...interface{})) ContextOption {
	return optionFunc(func(ctx *Context) { ctx.logf = logfn })
}

// WithTrace directs the engine's own diagnostic writes (dumper output,
// .s/.dict) to ws, flushed after each such write. Passing more than one writer fans every write out to all of
// them (e.g. stdout for a human plus a buffer for a test to inspect).
func WithTrace(ws ...io.Writer) ContextOption {
	return optionFunc(func(ctx *Context) {
		switch len(ws) {
		case 0:
			ctx.Trace = nil
		case 1:
			ctx.Trace = flushio.NewWriteFlusher(ws[0])
		default:
			wfs := make([]flushio.WriteFlusher, len(ws))
			for i, w := range ws {
				wfs[i] = flushio.NewWriteFlusher(w)
			}
			ctx.Trace = flushio.WriteFlushers(wfs...)
		}
	})
}

// WithExecuteAtEnd controls whether end-of-input triggers EXECUTE (spec
// §4.3 step 1). Defaults to true; event-handler re-entry and
// wordToFunc: turn it off via this same option.
func WithExecuteAtEnd(b bool) ContextOption {
	return optionFunc(func(ctx *Context) { ctx.ExecuteAtEnd = b })
}

// WithControlStackLimit bounds the control stack depth each/endeach may
// grow to before failing loudly instead of silently exhausting memory.
// Zero (the default) means unlimited.
func WithControlStackLimit(n int) ContextOption {
	return optionFunc(func(ctx *Context) { ctx.ControlStackLimit = n })
}

// NewContext returns a Context over a fresh core dictionary, in the
// neutral state described by spec §3's Lifecycle:
// ready to be filled with input and driven by Query.
func NewContext(opts ...ContextOption) *Context {
	dict := NewCoreDictionary()
	return NewContextWithDictionary(dict, opts...)
}

// NewContextWithDictionary returns a Context sharing the given
// Dictionary, per spec §5: multiple Contexts may coexist, sharing the
// global dictionary and latest pointer but nothing else.
func NewContextWithDictionary(dict *Dictionary, opts ...ContextOption) *Context {
	ctx := &Context{
		Dict:         dict,
		Compiling:    NewCompilationStack(dict),
		Host:         NewMapHost(),
		Scheduler:    NewTimerScheduler(),
		ExecuteAtEnd: true,
	}
	for _, opt := range opts {
		opt.apply(ctx)
	}
	return ctx
}

// Define registers a primitive in ctx's dictionary (spec §6's define).
func (ctx *Context) Define(name string, primitive Callable, immediate bool) *DictEntry {
	return ctx.Dict.Define(name, primitive, immediate)
}

// FindDictionaryEntry looks up name in ctx's dictionary (spec §6).
func (ctx *Context) FindDictionaryEntry(name string) *DictEntry {
	return ctx.Dict.Find(name)
}

// CoreWordImpl returns a stable handle to a builtin primitive by name
// (spec §6's core_word_impl), bypassing any user shadowing.
func (ctx *Context) CoreWordImpl(name string) Callable {
	return ctx.Dict.CoreWord(name)
}

// Query runs the executor loop (spec §4.4) until ctx is halted or
// paused, recovering any primitive panic into a returned error exactly
// as the teacher's VM.Run recovers vm.halt via panicerr.Recover. A clean
// stop (ctx.halt, reached when queryLoop's condition goes false on its
// own) never panics, so it surfaces here as a nil error; only a genuine
// primitive panic unwraps to a non-nil one.
func Query(ctx *Context) error {
	err := panicerr.Recover("Query", func() error {
		queryLoop(ctx)
		return nil
	})
	if err == nil {
		return nil
	}
	if panicerr.IsPanic(err) {
		if cause := errors.Unwrap(err); cause != nil {
			return cause
		}
	}
	return err
}

func queryLoop(ctx *Context) {
	for !ctx.Halted && !ctx.Paused {
		step(ctx)
	}
}
