package stacklang

// registerDefinePrimitives implements spec §4.5: word definition,
// immediate marking, postpone, and the tick/lit/, inline-literal family.
func registerDefinePrimitives(dict *Dictionary) {
	dict.Define(":", colonPrimitive, true)
	dict.Define(";", semicolonPrimitive, true)
	dict.Define("immediate", markImmediatePrimitive, true)
	dict.Define("postpone", postponePrimitive, true)
	dict.Define("tick", tickPrimitive, false)
	dict.Define("lit", litPrimitive, false)
	dict.Define(",", commaPrimitive, false)
	dict.Define("compileNow:", compileNowPrimitive, true)
}

// colonPrimitive is ":" (spec §4.5): read the name, define an entry
// whose primitive is the classic DOCOL (push a fresh frame for itself),
// and open it as the new compilation target.
func colonPrimitive(ctx *Context) {
	name := ctx.Input.ConsumeWord()
	entry := ctx.Dict.Define(name, nil, false)
	entry.Primitive = func(c *Context) {
		c.Return.Push(Frame{Entry: entry, I: -1})
	}
	ctx.Compiling.Push(entry)
}

// semicolonPrimitive is ";" (spec §4.5): close the current definition.
// No explicit exit is compiled; the executor's end-of-body detection in
// innerNext calls exit automatically.
func semicolonPrimitive(ctx *Context) {
	ctx.Compiling.Pop()
}

func markImmediatePrimitive(ctx *Context) {
	ctx.Compiling.Top().Immediate = true
}

// postponePrimitive is "postpone" (spec §4.5). For an immediate target,
// compile its primitive as a call, deferring its immediate action from
// now (compile time of the enclosing definition) until that enclosing
// definition itself runs. For a non-immediate target, compile a helper
// that, when that helper runs, compiles the target's primitive into
// whatever is then the current compilation target — deferring the
// target's compilation by one level, matching ANS Forth POSTPONE.
func postponePrimitive(ctx *Context) {
	name := ctx.Input.ConsumeWord()
	target := ctx.Dict.Find(name)
	if target == nil {
		panic(UnknownWordError{Token: name})
	}
	if target.Immediate {
		compileHere(ctx, CallItem(target.Primitive))
		return
	}
	compileHere(ctx, CallItem(func(c *Context) {
		compileHere(c, CallItem(target.Primitive))
	}))
}

// tickPrimitive and litPrimitive both implement spec §4.5's "read the
// compiled cell at the current executing frame's position and push it;
// advance the frame" mechanism: the cell immediately following the
// tick/lit call in the SAME entry holds an inline reference placed
// there by the compiler (a Callable for tick, any other Value for lit),
// which is fetched rather than invoked.
func tickPrimitive(ctx *Context) { inlineFetch(ctx) }
func litPrimitive(ctx *Context)  { inlineFetch(ctx) }

func inlineFetch(ctx *Context) {
	frame, ok := ctx.Return.Top()
	if !ok {
		panic(ReturnStackUnderflowError{})
	}
	cell := frame.Entry.At(frame.I + 1)
	frame.I++
	if cell.IsCall() {
		ctx.Stack.Push(cell.Call)
		return
	}
	ctx.Stack.Push(cell.Literal)
}

// commaPrimitive is "," (spec §4.5): pop a value, append it to the
// current compilation target.
func commaPrimitive(ctx *Context) {
	v := ctx.Stack.Pop()
	compileHere(ctx, LitItem(v))
}

// compileNowPrimitive is "compileNow:" (spec §4.5): read the next word;
// if it parses as a literal primitive, append the raw value (not a
// lit pair) to the current target.
func compileNowPrimitive(ctx *Context) {
	token := ctx.Input.ConsumeWord()
	lit, ok := parseLiteral(token)
	if !ok {
		panic(CompileNowNotPrimitiveError{Token: token})
	}
	compileHere(ctx, LitItem(lit))
}
