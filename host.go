package stacklang

// HostBridge is the trait spec §4.10/§6 asks the core to expose rather
// than implement: dynamic property access, host-function apply, a
// global-object accessor, and host-object construction. A DOM/event
// collaborator, or any other embedding, supplies its own implementation;
// the core only ever calls through this interface.
type HostBridge interface {
	// GetProp reads obj[name] and returns the result as a Value.
	GetProp(obj Value, name string) Value
	// SetProp assigns obj[name] = val.
	SetProp(obj Value, name string, val Value)
	// Apply calls fn with args, as fn.apply(undefined, args) would in JS.
	Apply(fn Value, args []Value) Value
	// ApplyMethod calls obj.name(args...).
	ApplyMethod(obj Value, name string, args []Value) Value
	// Global returns the host's global object (globalThis).
	Global() Value
	// NewObject returns a fresh, empty opaque host object ({}).
	NewObject() Value
}

// mapHost is the default HostBridge: a plain map-backed object model,
// sufficient for embedding and testing the core without a real DOM. It
// is documented as a convenience, not as the DOM/event collaborator
// itself, which spec §1 keeps out of scope.
type mapHost struct {
	global *hostObject
}

// NewMapHost returns a HostBridge backed by plain Go maps and funcs,
// the engine's standalone default.
func NewMapHost() HostBridge {
	return &mapHost{global: newHostObject()}
}

type hostObject struct {
	props map[string]Value
}

func newHostObject() *hostObject { return &hostObject{props: make(map[string]Value)} }

func (h *mapHost) GetProp(obj Value, name string) Value {
	if ho, ok := asHostObject(obj); ok {
		if v, found := ho.props[name]; found {
			return v
		}
	}
	return Undefined{}
}

func (h *mapHost) SetProp(obj Value, name string, val Value) {
	if ho, ok := asHostObject(obj); ok {
		ho.props[name] = val
	}
}

func (h *mapHost) Apply(fn Value, args []Value) Value {
	if callable, ok := fn.(Callable); ok {
		// host functions are modeled as Callables over a scratch Context
		// seeded with args already on the parameter stack, mirroring how
		// wordToFunc: materializes a callable Value for the host side.
		scratch := NewContext(WithHost(h))
		for _, a := range args {
			scratch.Stack.Push(a)
		}
		callable(scratch)
		if v, ok := scratch.Stack.Peek(); ok {
			return v
		}
		return Undefined{}
	}
	return Undefined{}
}

func (h *mapHost) ApplyMethod(obj Value, name string, args []Value) Value {
	return h.Apply(h.GetProp(obj, name), args)
}

func (h *mapHost) Global() Value { return Object{Handle: h.global} }

func (h *mapHost) NewObject() Value { return Object{Handle: newHostObject()} }

func asHostObject(v Value) (*hostObject, bool) {
	obj, ok := v.(Object)
	if !ok {
		return nil, false
	}
	ho, ok := obj.Handle.(*hostObject)
	return ho, ok
}
