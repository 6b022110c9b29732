package stacklang

// registerVarPrimitives implements spec §4.7: var:, const:, and the
// shared !/@ getter/setter mechanism. Both var: and const: reuse
// CompiledCell as their "getter/setter" token — the very same type here
// (ahead/endif in the boot file) already uses to patch branch offsets,
// so ! and @ need no variable-specific case at all.
func registerVarPrimitives(dict *Dictionary) {
	dict.Define("var:", varColonPrimitive, true)
	dict.Define("const:", constColonPrimitive, true)
	dict.Define("!", storePrimitive, false)
	dict.Define("@", fetchPrimitive, false)
}

// varColonPrimitive is "var:" (spec §4.7): read NAME, define an entry
// whose primitive pushes a CompiledCell addressing its own slot 0 — a
// getter/setter bound to a private slot of that entry. The slot itself
// is left unallocated until the first !.
func varColonPrimitive(ctx *Context) {
	name := ctx.Input.ConsumeWord()
	entry := ctx.Dict.Define(name, nil, false)
	entry.Primitive = func(c *Context) {
		c.Stack.Push(CompiledCell{Entry: entry, Index: 0})
	}
}

// constColonPrimitive is "const:" (spec §4.7): read NAME, define an
// entry whose primitive pushes its captured value directly (no token),
// and compile into the CURRENT target a helper that, when that helper
// runs, pops the value and captures it into the constant's slot. For a
// top-level const:, the capture happens once EXECUTE runs at end of
// input; inside a definition, it happens when that definition runs.
func constColonPrimitive(ctx *Context) {
	name := ctx.Input.ConsumeWord()
	entry := ctx.Dict.Define(name, nil, false)
	entry.Primitive = func(c *Context) {
		item := entry.At(0)
		v := item.Literal
		if v == nil {
			v = Undefined{}
		}
		c.Stack.Push(v)
	}
	compileHere(ctx, CallItem(func(c *Context) {
		v := c.Stack.Pop()
		entry.Compiled.Stor(0, LitItem(v))
	}))
}

// storePrimitive is "!" (spec §4.7): pop a settable token, then pop a
// value, and write the value into the token's slot.
func storePrimitive(ctx *Context) {
	tok := ctx.Stack.Pop()
	v := ctx.Stack.Pop()
	cell, ok := tok.(CompiledCell)
	if !ok {
		panic(NotSettableError{Got: tok})
	}
	cell.Entry.Compiled.Stor(uint(cell.Index), LitItem(v))
}

// fetchPrimitive is "@" (spec §4.7): pop a settable token and push the
// value currently stored in its slot (Undefined if never written).
func fetchPrimitive(ctx *Context) {
	tok := ctx.Stack.Pop()
	cell, ok := tok.(CompiledCell)
	if !ok {
		panic(NotSettableError{Got: tok})
	}
	item := cell.Entry.At(cell.Index)
	v := item.Literal
	if v == nil {
		v = Undefined{}
	}
	ctx.Stack.Push(v)
}
