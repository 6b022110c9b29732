package stacklang

import "fmt"

// NewCoreDictionary builds a fresh Dictionary with every builtin
// primitive registered and the boot source (spec §4.6) compiled into
// it, ready to back one or more Contexts (spec §5's shared-dictionary
// model). This is the one place that enumerates every primitives_*.go
// registration function, mirroring the teacher's core.go init sequence.
func NewCoreDictionary() *Dictionary {
	dict := NewDictionary()

	dict.BeginCoreDefinitions()
	dict.Define("interpret", interpret, false)
	registerControlPrimitives(dict)
	registerDefinePrimitives(dict)
	registerVarPrimitives(dict)
	registerParsePrimitives(dict)
	registerStackPrimitives(dict)
	registerArithPrimitives(dict)
	registerAggregatePrimitives(dict)
	registerSleepPrimitives(dict)
	registerHostPrimitives(dict)
	registerDebugPrimitives(dict)
	registerErrorPrimitives(dict)
	dict.EndCoreDefinitions()

	boot := NewContextWithDictionary(dict, WithInput(bootSource, "boot"))
	if err := Query(boot); err != nil {
		panic(fmt.Sprintf("stacklang: boot source failed to compile: %v", err))
	}

	return dict
}
