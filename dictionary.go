package stacklang

import (
	"fmt"

	"github.com/nsavage/stacklang/internal/mem"
)

// CompiledItem is one cell of a dictionary entry's compiled sequence:
// either a Callable to invoke, or a literal Value to push verbatim
// (spec §4.3's "appending a raw Value ... is equivalent to pushing that
// Value when executed").
type CompiledItem struct {
	Call    Callable
	Literal Value
}

// IsCall reports whether this cell holds a Callable to invoke, as
// opposed to a literal Value to push.
func (item CompiledItem) IsCall() bool { return item.Call != nil }

// CallItem wraps a Callable as a CompiledItem.
func CallItem(c Callable) CompiledItem { return CompiledItem{Call: c} }

// LitItem wraps a literal Value as a CompiledItem.
func LitItem(v Value) CompiledItem { return CompiledItem{Literal: v} }

// DictEntry is spec §3's DictionaryEntry: name, previous-link, immediate
// flag, primitive implementation, and a compiled sequence backed by the
// arena in internal/mem (spec §9's "simple arena with indices" option),
// so that every CompiledCell ever handed out stays valid as long as the
// entry itself is reachable.
type DictEntry struct {
	Name      string
	Previous  *DictEntry
	Immediate bool
	Primitive Callable
	Compiled  mem.Cells[CompiledItem]
}

// Len returns the number of compiled cells in this entry's body.
func (e *DictEntry) Len() int { return int(e.Compiled.Size()) }

// At loads the compiled cell at index i. Out-of-range reads return a
// zero CompiledItem (an empty literal-nil cell), matching the arena's
// implicit-zero-value semantics for unallocated addresses.
func (e *DictEntry) At(i int) CompiledItem {
	item, _ := e.Compiled.Load(uint(i))
	return item
}

// Compile appends an item to this entry's compiled sequence and returns
// the index it was appended at (what here captures as a CompiledCell).
func (e *DictEntry) Compile(item CompiledItem) int {
	return int(e.Compiled.Append(item))
}

// Dictionary is the append-only chain of named entries plus the
// core-word table used so core words can call each other reliably even
// after user code shadows a name (spec §4.2's core_word).
type Dictionary struct {
	latest *DictEntry
	core   map[string]Callable
	// coreDefining is true only while the engine is registering its own
	// builtin primitives; once cleared, Define treats a duplicate core
	// name as a bug in embedding code, not a late-binding user shadow.
	coreDefining bool
}

// NewDictionary returns an empty dictionary, ready to have Define called
// on it to register the primitive word set.
func NewDictionary() *Dictionary {
	return &Dictionary{core: make(map[string]Callable)}
}

// Latest returns the most recently defined named entry, or nil.
func (d *Dictionary) Latest() *DictEntry { return d.latest }

// BeginCoreDefinitions marks the dictionary as registering builtins;
// Define will additionally record named, non-immediate or immediate
// primitives into the stable core-word table and panic on collision.
func (d *Dictionary) BeginCoreDefinitions() { d.coreDefining = true }

// EndCoreDefinitions closes registration of the stable core-word table.
func (d *Dictionary) EndCoreDefinitions() { d.coreDefining = false }

// Define creates a new entry with previous = latest (spec §4.2). If name
// is non-empty, latest is updated and, while core-word-definition phase
// is active, the entry's primitive is also registered in the core-word
// table (a duplicate core name is a programmer error and panics). If
// name is empty, the returned entry is anonymous: reachable only
// through references held on stacks, never through Find.
func (d *Dictionary) Define(name string, primitive Callable, immediate bool) *DictEntry {
	entry := &DictEntry{
		Name:      name,
		Previous:  d.latest,
		Immediate: immediate,
		Primitive: primitive,
	}
	if name != "" {
		d.latest = entry
		if d.coreDefining {
			if _, exists := d.core[name]; exists {
				panic(fmt.Sprintf("duplicate core word: %q", name))
			}
			d.core[name] = primitive
		}
	}
	return entry
}

// Find performs spec §4.2's linear backward search from latest: later
// definitions shadow earlier ones of the same name.
func (d *Dictionary) Find(name string) *DictEntry {
	for e := d.latest; e != nil; e = e.Previous {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// CoreWord looks up a core primitive by name without traversing the user
// dictionary, so that a core word's own implementation can rely on
// calling another core word even after user code has shadowed it.
func (d *Dictionary) CoreWord(name string) Callable {
	return d.core[name]
}
