package stacklang

// registerHostPrimitives implements spec §4.10: the dynamic
// property-access and host-apply words layered on HostBridge.
func registerHostPrimitives(dict *Dictionary) {
	dict.Define("C", contextSelfPrimitive, false)
	dict.Define("globalThis", globalThisPrimitive, false)
	dict.Define(".", dotGetPrimitive, true)
	dict.Define(".!", dotSetPrimitive, true)
	dict.Define("jsApply", jsApplyPrimitive, false)
	dict.Define(".apply:", applyColonPrimitive, true)
	dict.Define("wordToFunc:", wordToFuncColonPrimitive, true)
}

// contextSelfPrimitive is "C": push the Context itself as a host object.
func contextSelfPrimitive(ctx *Context) {
	ctx.Stack.Push(Object{Handle: ctx})
}

func globalThisPrimitive(ctx *Context) {
	ctx.Stack.Push(ctx.Host.Global())
}

// dotGetPrimitive is "." (spec §4.10): advance past a space, read a
// property name, and compile a helper that pops obj and pushes
// obj[name].
func dotGetPrimitive(ctx *Context) {
	name := readHostWord(ctx)
	compileHere(ctx, CallItem(func(c *Context) {
		obj := c.Stack.Pop()
		c.Stack.Push(c.Host.GetProp(obj, name))
	}))
}

// dotSetPrimitive is ".!" (spec §4.10): advance past a space, read a
// property name, and compile a helper that pops obj, then a value, and
// assigns obj[name] = value.
func dotSetPrimitive(ctx *Context) {
	name := readHostWord(ctx)
	compileHere(ctx, CallItem(func(c *Context) {
		obj := c.Stack.Pop()
		v := c.Stack.Pop()
		c.Host.SetProp(obj, name, v)
	}))
}

func readHostWord(ctx *Context) string {
	ctx.Input.SkipOneSpace()
	return ctx.Input.ConsumeWord()
}

// jsApplyPrimitive is "jsApply": pop fn, then argsArray, and push
// fn.apply(undefined, argsArray).
func jsApplyPrimitive(ctx *Context) {
	fn := ctx.Stack.Pop()
	argsV := ctx.Stack.Pop()
	args, ok := argsV.(*Array)
	if !ok {
		panic(NotArrayError{Word: "jsApply", Got: argsV})
	}
	ctx.Stack.Push(ctx.Host.Apply(fn, args.Items))
}

// applyColonPrimitive is ".apply: NAME" (spec §4.10): compile a helper
// that pops obj, then argsArray, and invokes obj.NAME(args...).
func applyColonPrimitive(ctx *Context) {
	name := ctx.Input.ConsumeWord()
	compileHere(ctx, CallItem(func(c *Context) {
		obj := c.Stack.Pop()
		argsV := c.Stack.Pop()
		args, ok := argsV.(*Array)
		if !ok {
			panic(NotArrayError{Word: ".apply:", Got: argsV})
		}
		c.Stack.Push(c.Host.ApplyMethod(obj, name, args.Items))
	}))
}

// wordToFuncColonPrimitive is "wordToFunc: NAME" (spec §4.10): read
// NAME, find its entry, and compile lit followed by a host Callable, so
// that running the compiled code pushes the Callable; when invoked, it
// drives a fresh Context seeded directly on the return stack (bypassing
// interpret/EXECUTE entirely, per ExecuteAtEnd=false) and returns the
// top of its parameter stack, if any.
func wordToFuncColonPrimitive(ctx *Context) {
	name := ctx.Input.ConsumeWord()
	entry := ctx.Dict.Find(name)
	if entry == nil {
		panic(UnknownWordError{Token: name})
	}
	dict := ctx.Dict
	fn := Callable(func(c *Context) {
		fresh := NewContextWithDictionary(dict, WithExecuteAtEnd(false), WithHost(c.Host), WithScheduler(c.Scheduler))
		for _, arg := range c.Stack.Items() {
			fresh.Stack.Push(arg)
		}
		c.Stack = Stack{}
		fresh.Return.Push(Frame{Entry: entry, I: -1})
		if err := Query(fresh); err != nil {
			panic(err)
		}
		if v, ok := fresh.Stack.Peek(); ok {
			c.Stack.Push(v)
			return
		}
		c.Stack.Push(Undefined{})
	})
	compileHere(ctx, CallItem(litPrimitive))
	compileHere(ctx, LitItem(fn))
}
