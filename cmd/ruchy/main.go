// Package main is the entry point for the Ruchy command-line driver.
// It provides three modes of operation: REPL (default), file
// execution, and transpilation to Rust — grounded on
// `_examples/akashmaji946-go-mix/main/main.go`'s flag-dispatch shape,
// retargeted to spec.md §6's exit-code contract: 0 success, 1 parse
// error, 2 evaluation error, 3 bound breach.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/akashmaji946/ruchy/interp"
	"github.com/akashmaji946/ruchy/parser"
	"github.com/akashmaji946/ruchy/repl"
	"github.com/akashmaji946/ruchy/transpiler"
	"github.com/akashmaji946/ruchy/value"
)

const (
	exitOK          = 0
	exitParseError  = 1
	exitEvalError   = 2
	exitBoundBreach = 3
)

var (
	version = "v0.1.0"
	author  = "ruchy contributors"
	license = "MIT"
	prompt  = "ruchy >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
 ____            _
|  _ \ _   _  ___| |__  _   _
| |_) | | | |/ __| '_ \| | | |
|  _ <| |_| | (__| | | | |_| |
|_| \_\\__,_|\___|_| |_|\__, |
                        |___/
`
)

var (
	redColor   = color.New(color.FgRed)
	cyanColor  = color.New(color.FgCyan)
	greenColor = color.New(color.FgGreen)
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if len(args) == 0 {
		r := repl.New(banner, version, author, line, license, prompt, logger)
		r.Start(os.Stdin, os.Stdout)
		return exitOK
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
		return exitOK
	case "--version", "-v":
		showVersion()
		return exitOK
	case "--transpile":
		if len(args) < 2 {
			redColor.Fprintln(os.Stderr, "[USAGE ERROR] --transpile requires a file path")
			return exitParseError
		}
		return runTranspile(args[1])
	default:
		return runFile(args[0], logger)
	}
}

func showHelp() {
	cyanColor.Println("Ruchy - a transpiled, garbage-collected systems scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  ruchy                      Start interactive REPL mode")
	fmt.Println("  ruchy <path-to-file>       Run a Ruchy source file")
	fmt.Println("  ruchy --transpile <file>   Transpile a Ruchy file to Rust source")
	fmt.Println("  ruchy --help               Display this help message")
	fmt.Println("  ruchy --version            Display version information")
}

func showVersion() {
	cyanColor.Printf("Ruchy %s\n", version)
	cyanColor.Printf("License: %s\n", license)
	cyanColor.Printf("Author : %s\n", author)
}

// runFile reads, parses, and evaluates a source file, returning the
// spec.md §6 exit code for the outcome (0/1/2/3).
func runFile(fileName string, logger *zap.Logger) int {
	src, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		return exitEvalError
	}

	expr, errs := parser.Parse(string(src))
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", e.String())
		}
		return exitParseError
	}
	if expr == nil {
		redColor.Fprintln(os.Stderr, "[PARSE ERROR] empty input produced no expression")
		return exitParseError
	}

	it := interp.New()
	it.SetWriter(os.Stdout)
	bounds := interp.DefaultBounds()
	bounds.Deadline = time.Now().Add(30 * time.Second)
	it.SetBounds(bounds)

	result, evalErr := it.Eval(expr)
	if evalErr != nil {
		if ierr, ok := evalErr.(*interp.Error); ok && (ierr.Kind == interp.KindTimeout || ierr.Kind == interp.KindMemoryLimit) {
			redColor.Fprintf(os.Stderr, "[BOUND BREACH] %s\n", evalErr.Error())
			logger.Warn("bound breach", zap.String("file", fileName), zap.Error(evalErr))
			return exitBoundBreach
		}
		redColor.Fprintf(os.Stderr, "[EVAL ERROR] %s\n", evalErr.Error())
		return exitEvalError
	}

	if _, isUnit := result.(*value.Unit); !isUnit && result != nil {
		fmt.Println(result.String())
	}
	return exitOK
}

// runTranspile lowers a source file to Rust and prints it to stdout.
func runTranspile(fileName string) int {
	src, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		return exitEvalError
	}

	expr, errs := parser.Parse(string(src))
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", e.String())
		}
		return exitParseError
	}

	ts, err := transpiler.Transpile(expr)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[TRANSPILE ERROR] %v\n", err)
		return exitEvalError
	}

	greenColor.Fprintln(os.Stderr, "// transpiled from "+fileName)
	fmt.Println(ts.String())
	return exitOK
}
