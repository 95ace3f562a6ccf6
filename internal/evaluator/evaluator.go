// Package evaluator defines the single contract the dispatch layer needs
// from the AST-walking evaluator (spec §1, §4.5). The evaluator itself —
// a full tree-walker over internal/ast — is out of scope for this
// specification and is treated as an external collaborator; this package
// only fixes the interface UserFunction.Call invokes.
package evaluator

import (
	"github.com/Mechachleopteryx/saha/internal/ast"
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// Evaluator runs a parsed function/method body against a fully validated,
// name-keyed argument map and produces a Value or a RuntimeError. Argument
// validation (spec §4.5) has already happened by the time Eval is called;
// the evaluator never sees raw, unvalidated call-site arguments.
type Evaluator interface {
	Eval(body *ast.Ast, args map[string]typesystem.Value) (typesystem.Value, *diagnostics.RuntimeError)
}

// Func adapts a plain function to the Evaluator interface, the way the
// corpus adapts bare function values to its builtin registries.
type Func func(body *ast.Ast, args map[string]typesystem.Value) (typesystem.Value, *diagnostics.RuntimeError)

func (f Func) Eval(body *ast.Ast, args map[string]typesystem.Value) (typesystem.Value, *diagnostics.RuntimeError) {
	return f(body, args)
}
