package stacklang

import (
	"fmt"
	"io"
)

// dumper formats a Context's stacks and dictionary for .s/.dict/dump,
// grounded on the teacher's vmDumper — ours walks typed Values and a
// linked DictEntry chain rather than raw addressed memory, but keeps the
// same "one labeled section per Fprintf block" shape.
type dumper struct {
	ctx *Context
	out io.Writer
}

func (d dumper) dumpStack() {
	fmt.Fprintf(d.out, "stack: %v\n", d.ctx.Stack.Items())
}

func (d dumper) dumpControl() {
	fmt.Fprintf(d.out, "control: %v\n", d.ctx.Control.Items())
}

func (d dumper) dumpDict() {
	fmt.Fprintf(d.out, "dict:")
	for e := d.ctx.Dict.Latest(); e != nil; e = e.Previous {
		if e.Name == "" {
			continue
		}
		if e.Immediate {
			fmt.Fprintf(d.out, " %v*", e.Name)
		} else {
			fmt.Fprintf(d.out, " %v", e.Name)
		}
	}
	fmt.Fprintln(d.out)
}

func (d dumper) dumpAll() {
	fmt.Fprintf(d.out, "# Context Dump\n")
	d.dumpStack()
	d.dumpControl()
	d.dumpDict()
}
