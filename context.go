package stacklang

// Stack is a simple LIFO of Value, used for the parameter and control
// stacks (spec §3). It panics with a typed error on underflow rather
// than returning an ok bool, matching the teacher's vm.pop()-panics-via-
// halt() convention: primitives are expected to let these propagate up
// through Query's recover, not handle them locally.
type Stack struct {
	items []Value
}

// Push pushes a value.
func (s *Stack) Push(v Value) { s.items = append(s.items, v) }

// Pop pops the top value, panicking with StackUnderflowError if empty.
func (s *Stack) Pop() Value {
	if len(s.items) == 0 {
		panic(StackUnderflowError{})
	}
	i := len(s.items) - 1
	v := s.items[i]
	s.items = s.items[:i]
	return v
}

// Peek returns the top value without popping, and whether the stack was non-empty.
func (s *Stack) Peek() (Value, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of items on the stack.
func (s *Stack) Len() int { return len(s.items) }

// Items returns the stack's contents bottom-to-top, for dumps and tests.
// The returned slice is a copy; mutating it does not affect the stack.
func (s *Stack) Items() []Value {
	out := make([]Value, len(s.items))
	copy(out, s.items)
	return out
}

// Frame is a single return-stack entry: the dictionary entry currently
// threading through, and the next cell index to execute (spec §3).
type Frame struct {
	Entry *DictEntry
	I     int
}

// ReturnStack is a LIFO of Frame, recording in-progress threaded execution.
type ReturnStack struct {
	frames []Frame
}

// Push pushes a frame.
func (r *ReturnStack) Push(f Frame) { r.frames = append(r.frames, f) }

// Pop pops the top frame, panicking with ReturnStackUnderflowError if empty.
func (r *ReturnStack) Pop() Frame {
	if len(r.frames) == 0 {
		panic(ReturnStackUnderflowError{})
	}
	i := len(r.frames) - 1
	f := r.frames[i]
	r.frames = r.frames[:i]
	return f
}

// Top returns a pointer to the top frame, for in-place advancement by
// the executor's inner-next step, and whether the stack was non-empty.
func (r *ReturnStack) Top() (*Frame, bool) {
	if len(r.frames) == 0 {
		return nil, false
	}
	return &r.frames[len(r.frames)-1], true
}

// Len returns the current return-stack depth.
func (r *ReturnStack) Len() int { return len(r.frames) }

// Truncate truncates the return stack to at most n frames, the
// mechanism quit (spec §9) uses to "reset" to depth 1.
func (r *ReturnStack) Truncate(n int) {
	if n < len(r.frames) {
		r.frames = r.frames[:n]
	}
}

// CompilationStack is a LIFO of *DictEntry: the stack of currently-open
// compilation targets (spec §3, §4.3). It is initialized with a single
// anonymous base entry representing "the top level".
type CompilationStack struct {
	entries []*DictEntry
}

// NewCompilationStack returns a stack seeded with one anonymous base entry.
func NewCompilationStack(dict *Dictionary) *CompilationStack {
	base := dict.Define("", nil, false)
	return &CompilationStack{entries: []*DictEntry{base}}
}

// Push pushes a new compilation target (: and [ do this).
func (c *CompilationStack) Push(e *DictEntry) { c.entries = append(c.entries, e) }

// Pop pops the current compilation target, panicking with
// CompilationStackUnderflowError if only the base entry remains.
func (c *CompilationStack) Pop() *DictEntry {
	if len(c.entries) <= 1 {
		panic(CompilationStackUnderflowError{})
	}
	i := len(c.entries) - 1
	e := c.entries[i]
	c.entries = c.entries[:i]
	return e
}

// Top returns the current compilation target: the top of the stack.
func (c *CompilationStack) Top() *DictEntry { return c.entries[len(c.entries)-1] }

// Base returns the bottom, always-present anonymous top-level entry.
func (c *CompilationStack) Base() *DictEntry { return c.entries[0] }

// TruncateToBase pops every open compilation target back to Base, as
// interpret does at end-of-input before running EXECUTE.
func (c *CompilationStack) TruncateToBase() { c.entries = c.entries[:1] }

// Context owns everything a single threaded-code run needs (spec §3):
// the four stacks, the input cursor, halted/paused state, and the host
// binding. Multiple Contexts may share one Dictionary (spec §5); nothing
// else is shared.
type Context struct {
	Dict *Dictionary

	Stack      Stack
	Return     ReturnStack
	Control    Stack
	Compiling  *CompilationStack
	Input      Cursor
	Host       HostBridge
	Scheduler  Scheduler
	Trace      traceWriter
	ControlStackLimit int

	Halted bool
	Paused bool

	haltedCh chan struct{}

	// ExecuteAtEnd, when true, causes interpret to logically append an
	// EXECUTE primitive at end-of-input and run the base compilation
	// target (spec §4.3 step 1). wordToFunc: and event-handler re-entry
	// both seed a fresh Context with this false, driving execution purely
	// from a pre-seeded return stack instead.
	ExecuteAtEnd     bool
	didExecuteAtEnd  bool

	// Me is the per-invocation host receiver bound for this Context
	// (spec §3's "me"), e.g. the DOM node that fired an event.
	Me Value

	logf      func(mess string, args ...interface{})
	logDepth  int
}

func (ctx *Context) logPrefixed(mess string, args ...interface{}) {
	if ctx.logf == nil {
		return
	}
	prefix := ""
	for i := 0; i < ctx.logDepth; i++ {
		prefix += "  "
	}
	ctx.logf(prefix+mess, args...)
}

// HaltedSignal returns a channel that is closed once Halted transitions
// to true (spec §3's halted_promise).
func (ctx *Context) HaltedSignal() <-chan struct{} {
	if ctx.haltedCh == nil {
		ctx.haltedCh = make(chan struct{})
	}
	return ctx.haltedCh
}

func (ctx *Context) halt() {
	if ctx.Halted {
		return
	}
	ctx.Halted = true
	if ctx.haltedCh != nil {
		close(ctx.haltedCh)
	} else {
		ch := make(chan struct{})
		close(ch)
		ctx.haltedCh = ch
	}
}

// PushControl pushes onto the control stack, enforcing ControlStackLimit
// (spec §4.8's each/endeach and >control are the only growers of this
// stack). A zero limit means unlimited, matching WithControlStackLimit's
// default.
func (ctx *Context) PushControl(v Value) {
	if ctx.ControlStackLimit > 0 && ctx.Control.Len() >= ctx.ControlStackLimit {
		panic(ControlStackLimitError{Limit: ctx.ControlStackLimit})
	}
	ctx.Control.Push(v)
}
