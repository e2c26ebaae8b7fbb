package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-python/gpython/py"
	"github.com/go-python/gpython/repl"
	"github.com/go-python/gpython/repl/cli"
	"github.com/plan-systems/klog"

	_ "github.com/fine-structures/cubemesh/pymesh"
	_ "github.com/go-python/gpython/stdlib"
)

// runREPL runs startup (if the file exists) into the REPL's module, then hands the terminal to the REPL.
func runREPL(ctx py.Context, startup string) error {
	replCtx := repl.New(ctx)

	if startup != "" {
		if _, err := os.Stat(startup); err == nil {
			klog.V(1).Infof("running REPL startup %q", startup)
			if _, err = py.RunFile(ctx, startup, py.CompileOpts{}, replCtx.Module); err != nil {
				return err
			}
		}
	}
	cli.RunREPL(replCtx)
	return nil
}

func runScript(ctx py.Context, pathname string) error {
	startTime := time.Now()
	fmt.Printf("<<<>>>   executing '%s'   <<<>>>\n", pathname)

	if _, err := py.RunFile(ctx, pathname, py.CompileOpts{}, nil); err != nil {
		return err
	}
	fmt.Printf("<<<>>>   execution complete: %v   <<<>>>\n", time.Since(startTime))
	return nil
}

// go_gpython runs the given script, or the REPL if pathname is empty.  Catalogs opened by the script
// are closed when the context closes.
func go_gpython(pathname, startup string) {
	ctx := py.NewContext(py.DefaultContextOpts())

	var err error
	if pathname == "" {
		err = runREPL(ctx, startup)
	} else {
		err = runScript(ctx, pathname)
	}

	ctx.Close()
	<-ctx.Done()

	if err != nil {
		py.TracebackDump(err)
		klog.Flush()
		klog.Fatal(err)
	}
}
