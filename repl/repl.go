// Package repl implements the Read-Eval-Print Loop for the Ruchy
// interpreter. Grounded directly on
// `_examples/akashmaji946-go-mix/repl/repl.go`'s `Repl` struct,
// `PrintBannerInfo`, and `executeWithRecovery` shape — same
// chzyer/readline + fatih/color stack, same banner/prompt fields,
// retargeted to this module's parser/interp pipeline.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/akashmaji946/ruchy/interp"
	"github.com/akashmaji946/ruchy/parser"
	"github.com/akashmaji946/ruchy/value"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is the interactive session configuration, mirroring the
// teacher's Repl struct field-for-field.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	Logger *zap.Logger // nil disables session-lifecycle logging
}

// New creates a Repl instance ready for Start.
func New(banner, version, author, line, license, prompt string, logger *zap.Logger) *Repl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt, Logger: logger}
}

// PrintBannerInfo prints the startup banner, same layout as the
// teacher's REPL.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Ruchy!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	cyanColor.Fprintf(writer, "%s\n", "Last three results are bound to _, _1 and _2")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main REPL loop until '.exit', EOF, or a readline
// error. Each evaluation binds its result into the environment under
// `_` (most recent), `_1` (one before), `_2` (two before) — spec.md
// §3's REPL history-slot note, absent from the teacher's own REPL.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)
	r.Logger.Info("repl session started")
	defer r.Logger.Info("repl session stopped")

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := interp.New()
	it.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, it)
	}
}

// executeWithRecovery parses and evaluates one line, recovering from
// any interpreter panic so a single bad line never kills the session —
// same strategy as the teacher's executeWithRecovery.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, it *interp.Interp) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	expr, errs := parser.Parse(line)
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(writer, "%s\n", e.String())
		}
		return
	}
	if expr == nil {
		redColor.Fprintf(writer, "[PARSE ERROR] empty input produced no expression\n")
		return
	}

	result, err := it.Eval(expr)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}

	shiftHistory(it, result)
	if _, isUnit := result.(*value.Unit); !isUnit {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}

// shiftHistory rotates the `_`/`_1`/`_2` bindings, oldest dropped.
func shiftHistory(it *interp.Interp, latest value.Value) {
	if v, ok := it.Env.Get("_1"); ok {
		it.Env.Bind("_2", v)
	}
	if v, ok := it.Env.Get("_"); ok {
		it.Env.Bind("_1", v)
	}
	it.Env.Bind("_", latest)
}
