package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/nsavage/stacklang"
)

func main() {
	ctx := context.Background()

	var path string
	var timeout time.Duration
	var trace bool
	flag.StringVar(&path, "f", "", "path to a source file to run (default: stdin)")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.Parse()

	var src []byte
	var err error
	name := "stdin"
	if path != "" {
		src, err = os.ReadFile(path)
		name = path
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}

	opts := []stacklang.ContextOption{
		stacklang.WithInput(string(src), name),
		stacklang.WithTrace(os.Stdout),
	}
	if trace {
		opts = append(opts, stacklang.WithLogf(log.Printf))
	}
	lctx := stacklang.NewContext(opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
		go func() {
			<-ctx.Done()
			if ctx.Err() == context.DeadlineExceeded {
				os.Exit(1)
			}
		}()
	}

	if err := stacklang.Query(lctx); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
	<-lctx.HaltedSignal()
}
