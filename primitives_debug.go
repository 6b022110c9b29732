package stacklang

// registerDebugPrimitives implements the debug/introspection words
// spec.md's C7 table names without spelling out (".s", ".dict", "dump"),
// grounded on the teacher's dumper.go: in-language words here instead of
// a CLI-only dumper, since an embeddable core needs introspection from
// inside the language too.
func registerDebugPrimitives(dict *Dictionary) {
	dict.Define(".s", dotSPrimitive, false)
	dict.Define(".dict", dotDictPrimitive, false)
	dict.Define("dump", dumpPrimitive, false)
}

func (ctx *Context) traceOrDiscard() (dumper, bool) {
	if ctx.Trace == nil {
		return dumper{}, false
	}
	return dumper{ctx: ctx, out: ctx.Trace}, true
}

func dotSPrimitive(ctx *Context) {
	if d, ok := ctx.traceOrDiscard(); ok {
		d.dumpStack()
		ctx.Trace.Flush()
	}
}

func dotDictPrimitive(ctx *Context) {
	if d, ok := ctx.traceOrDiscard(); ok {
		d.dumpDict()
		ctx.Trace.Flush()
	}
}

func dumpPrimitive(ctx *Context) {
	if d, ok := ctx.traceOrDiscard(); ok {
		d.dumpAll()
		ctx.Trace.Flush()
	}
}
