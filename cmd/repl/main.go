package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/term"

	luaobject "github.com/lualink/lua-object"
	"github.com/lualink/lua-object/engine"
)

func main() {
	var (
		expr        = flag.String("e", "", "Chunk of source to evaluate")
		script      = flag.String("script", "", "Path to a script file to run")
		interactive = flag.Bool("i", false, "Interactive inspector with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
		noStdlib    = flag.Bool("no-stdlib", false, "Skip opening the standard libraries")
	)
	flag.Parse()

	if *verbose {
		if log, err := zap.NewDevelopment(); err == nil {
			engine.SetLogger(log)
		}
	}

	if *expr == "" && *script == "" && !*interactive {
		fmt.Fprintln(os.Stderr, "Usage: repl -e <code>")
		fmt.Fprintln(os.Stderr, "       repl -script <file.lua>")
		fmt.Fprintln(os.Stderr, "       repl -i  (interactive inspector)")
		os.Exit(1)
	}

	cfg := &engine.Config{DisableStdlib: *noStdlib}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, *script, *expr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *engine.Config, script, expr string) error {
	rt := engine.New(cfg)
	defer rt.Close()

	if script != "" {
		data, err := os.ReadFile(script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		h, err := rt.Eval(string(data))
		if err != nil {
			return err
		}
		if !rt.IsNil(h) {
			fmt.Println(describe(rt, h))
		}
	}

	if expr != "" {
		h, err := rt.Eval(expr)
		if err != nil {
			return err
		}
		fmt.Println(describe(rt, h))
	}

	return nil
}

// describe renders a value with its class for inspector output.
func describe(rt *engine.Runtime, h engine.Handle) string {
	kind := rt.KindOf(h)

	var value string
	switch kind {
	case luaobject.KindNil:
		value = "nil"
	case luaobject.KindBoolean:
		value = strconv.FormatBool(rt.BooleanValue(h))
	case luaobject.KindNumber:
		value = strconv.FormatFloat(rt.NumberValue(h), 'g', -1, 64)
	case luaobject.KindString:
		value = strconv.Quote(rt.StringValue(h))
	case luaobject.KindTable:
		if name := rt.ClassName(h); name != "" {
			value = "class " + name
		} else {
			value = fmt.Sprintf("table(#%d)", rt.TableLength(h))
		}
	default:
		value = kind.String()
	}

	return fmt.Sprintf("%s  [%s]", value, rt.ClassName(rt.ClassOf(h)))
}
