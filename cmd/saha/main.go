// Command saha runs a single Saha source file: it tokenizes, parses,
// resolves every declaration into the global symbol table, and invokes
// that file's main() function (spec §6 External Interfaces).
//
// Usage: saha <path-to-source-file>
//
// Exit code 0 on success; non-zero on any parse or runtime failure, with
// the error name, message, and source position written to standard
// error (spec §7), in the teacher's own "<Name> at <pos>: <message>"
// report format (funvibe-funxy/cmd/funxy/main.go's panic-recovery and
// error-reporting shape, scaled down to this CLI's single-file, single
// entrypoint contract instead of the teacher's multi-subcommand/dual
// backend one).
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/Mechachleopteryx/saha/internal/ast"
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/evaluator"
	"github.com/Mechachleopteryx/saha/internal/lexer"
	"github.com/Mechachleopteryx/saha/internal/pipeline"
	"github.com/Mechachleopteryx/saha/internal/position"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// runNothing stands in for a full AST-walking evaluator, which is out of
// scope for this rewrite (spec §1 treats it as an external
// collaborator). main() is still dispatched through the real
// Callable.Call path so argument validation and return type enforcement
// (spec §4.5) run exactly as they would under a real evaluator; only the
// body's statements are left unexecuted.
func runNothing(_ *ast.Ast, _ map[string]typesystem.Value) (typesystem.Value, *diagnostics.RuntimeError) {
	return typesystem.VoidValue, nil
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: saha <path-to-source-file>")
		os.Exit(1)
	}
	filePath := os.Args[1]

	src, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		report(filePath, diagnostics.NewStartupError(diagnostics.ErrS001, filePath))
	} else if err != nil {
		report(filePath, diagnostics.NewStartupError(diagnostics.ErrS002, filePath, err.Error()))
	}

	tokens := lexer.Tokenize(filePath, string(src))

	st, rep := pipeline.Run(filePath, tokens, evaluator.Func(runNothing))
	if rep != nil {
		report(filePath, rep)
	}

	entrypoint, ok := st.Function("main")
	if !ok {
		report(filePath, diagnostics.NewRuntimeErrorf(position.New(filePath, 0, 0), "no `main` function declared in %s", filePath))
	}

	_, rtErr := entrypoint.Call(map[string]typesystem.Value{}, nil, nil, position.New(filePath, 0, 0))
	if rtErr != nil {
		report(filePath, rtErr)
	}
}

// report writes rep's name, position, and message to standard error in
// the teacher's "<Name> at <pos>: <message>" shape and exits non-zero.
// Output is colorized when standard error is an interactive terminal
// (funvibe-funxy's own go-isatty gated terminal styling, adapted here
// from stdout coloring to diagnostic-stream coloring).
func report(filePath string, rep diagnostics.Reportable) {
	pos := rep.Position()
	if pos.IsUnknown() {
		pos = position.New(filePath, 0, 0)
	}
	line := fmt.Sprintf("%s at %s: %s", rep.Name(), diagnostics.FormatPosition(pos), rep.Message())
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		line = "\x1b[31m" + line + "\x1b[0m"
	}
	fmt.Fprintln(os.Stderr, line)
	os.Exit(1)
}
