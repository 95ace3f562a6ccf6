package pipeline_test

import (
	"testing"

	"github.com/Mechachleopteryx/saha/internal/ast"
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/evaluator"
	"github.com/Mechachleopteryx/saha/internal/lexer"
	"github.com/Mechachleopteryx/saha/internal/pipeline"
	"github.com/Mechachleopteryx/saha/internal/position"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

func noopEval(_ *ast.Ast, _ map[string]typesystem.Value) (typesystem.Value, *diagnostics.RuntimeError) {
	return typesystem.VoidValue, nil
}

func run(t *testing.T, src string) (*pipeline.PipelineContext, diagnostics.Reportable) {
	t.Helper()
	tokens := lexer.Tokenize("test.saha", src)
	st, rep := pipeline.Run("test.saha", tokens, evaluator.Func(noopEval))
	ctx := &pipeline.PipelineContext{Symbol: st}
	return ctx, rep
}

func TestPipelineConstAndFunctionDeclaration(t *testing.T) {
	src := `
const Greeting = "hi";

function add(a'int, b'int): int {
	return a + b;
}
`
	ctx, rep := run(t, src)
	if rep != nil {
		t.Fatalf("unexpected error: %s: %s", rep.Name(), rep.Message())
	}

	c, ok := ctx.Symbol.Constant("Greeting")
	if !ok {
		t.Fatal("constant Greeting not found")
	}
	if c.Str != "hi" {
		t.Fatalf("Greeting = %q, want %q", c.Str, "hi")
	}

	fn, ok := ctx.Symbol.Function("add")
	if !ok {
		t.Fatal("function add not found")
	}
	if !fn.ReturnType().Equals(typesystem.TInt) {
		t.Fatalf("add return type = %s, want int", fn.ReturnType())
	}
	if len(fn.Parameters()) != 2 {
		t.Fatalf("add has %d parameters, want 2", len(fn.Parameters()))
	}
}

func TestPipelineClassImplementingBehaviorSucceeds(t *testing.T) {
	src := `
behavior Greeter {
	function greet(): str;
}

class Person implements Greeter {
	pub name'str = "anon";

	function greet(): str {
		return "hi";
	}
}
`
	ctx, rep := run(t, src)
	if rep != nil {
		t.Fatalf("unexpected error: %s: %s", rep.Name(), rep.Message())
	}

	class, ok := ctx.Symbol.Class("Person")
	if !ok {
		t.Fatal("class Person not found")
	}
	if _, ok := class.Methods["greet"]; !ok {
		t.Fatal("Person has no greet method registered")
	}

	v, err := ctx.Symbol.CreateObjectInstance("Person", map[string]typesystem.Value{}, nil, nil, position.Unknown)
	if err != nil {
		t.Fatalf("CreateObjectInstance(Person) failed: %v", err)
	}
	inst, ok := ctx.Symbol.Instance(v.Obj)
	if !ok {
		t.Fatal("created Person instance missing from store")
	}
	if inst.FullyQualifiedName != "Person" {
		t.Fatalf("instance class = %q, want Person", inst.FullyQualifiedName)
	}
}

func TestPipelineClassMissingBehaviorMethodFails(t *testing.T) {
	src := `
behavior Greeter {
	function greet(): str;
}

class Silent implements Greeter {
}
`
	_, rep := run(t, src)
	if rep == nil {
		t.Fatal("expected a ParseError for missing behavior method, got nil")
	}
	if rep.Name() != "ParseError" {
		t.Fatalf("got error kind %s, want ParseError", rep.Name())
	}
}

func TestPipelineUndefinedBehaviorFails(t *testing.T) {
	src := `
class Lonely implements Nobody {
}
`
	_, rep := run(t, src)
	if rep == nil {
		t.Fatal("expected a ParseError for undefined behavior, got nil")
	}
}

func TestPipelineDuplicateFunctionNameFails(t *testing.T) {
	src := `
function twice(a'int): int {
	return a + a;
}

function twice(a'int): int {
	return a + a;
}
`
	_, rep := run(t, src)
	if rep == nil {
		t.Fatal("expected a duplicate-declaration error, got nil")
	}
}

func TestPipelineUnexpectedTokenAtDeclarationLevelFails(t *testing.T) {
	src := `42;`
	_, rep := run(t, src)
	if rep == nil {
		t.Fatal("expected an unexpected-token ParseError, got nil")
	}
	if rep.Name() != "ParseError" {
		t.Fatalf("got error kind %s, want ParseError", rep.Name())
	}
}
