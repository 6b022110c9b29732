package stacklang

import "strconv"

// interpret is spec §4.3's "interpret one token" step. It is itself a
// core word (registered under the name "interpret") so that both the
// executor's empty-return-stack branch and any primitive needing to
// force reading one more token (mirroring the teacher's vm.read being
// both a core word and an internally-called helper) go through the same
// path.
func interpret(ctx *Context) {
	if ctx.Input.AtEnd() {
		if ctx.ExecuteAtEnd && !ctx.didExecuteAtEnd {
			ctx.didExecuteAtEnd = true
			ctx.Compiling.TruncateToBase()
			ctx.Dict.CoreWord("EXECUTE")(ctx)
			return
		}
		ctx.halt()
		return
	}

	token := ctx.Input.ConsumeWord()
	if token == "" {
		return
	}

	if entry := ctx.Dict.Find(token); entry != nil {
		compileOrRun(ctx, entry)
		return
	}

	if lit, ok := parseLiteral(token); ok {
		compileHere(ctx, LitItem(lit))
		return
	}

	panic(UnknownWordError{Token: token})
}

// compileOrRun implements spec §4.3 steps 4-5: run an immediate word's
// primitive now, or append a non-immediate word's primitive to the
// current compilation target.
func compileOrRun(ctx *Context, entry *DictEntry) {
	if entry.Immediate {
		entry.Primitive(ctx)
		return
	}
	compileHere(ctx, CallItem(entry.Primitive))
}

// compileHere appends item to the current compilation target, the
// building block every immediate defining/parsing word uses.
func compileHere(ctx *Context, item CompiledItem) int {
	return ctx.Compiling.Top().Compile(item)
}

// parseLiteral implements spec §4.3 step 6: signed integer, signed
// float, true, false, or undefined.
func parseLiteral(token string) (Value, bool) {
	switch token {
	case "true":
		return Boolean(true), true
	case "false":
		return Boolean(false), true
	case "undefined":
		return Undefined{}, true
	}
	if n, err := strconv.ParseFloat(token, 64); err == nil {
		return Number(n), true
	}
	return nil, false
}
