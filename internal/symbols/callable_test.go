package symbols_test

import (
	"testing"

	"github.com/Mechachleopteryx/saha/internal/ast"
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/evaluator"
	"github.com/Mechachleopteryx/saha/internal/position"
	"github.com/Mechachleopteryx/saha/internal/symbols"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// identityFunc builds f(x'int) { return x; } as a UserFunction whose body
// evaluation is stubbed to hand back whatever validated argument it
// receives, isolating ValidateArgs/enforceReturnType from a real
// evaluator (spec §1: the evaluator is this rewrite's out-of-scope
// external collaborator).
func identityFunc() *symbols.UserFunction {
	return &symbols.UserFunction{
		FnName:  "f",
		Params:  map[string]symbols.FunctionParameter{"x": {Name: "x", Type: typesystem.TInt}},
		RetType: typesystem.TInt,
		Eval: evaluator.Func(func(_ *ast.Ast, args map[string]typesystem.Value) (typesystem.Value, *diagnostics.RuntimeError) {
			return args["x"], nil
		}),
	}
}

// TestCallSingleArgumentWithoutParameterName covers spec §8 scenario 1:
// a single-declared-parameter callable accepts one unnamed positional
// argument under the "" key and rewrites it to the parameter's name
// before the body runs.
func TestCallSingleArgumentWithoutParameterName(t *testing.T) {
	f := identityFunc()
	result, err := f.Call(map[string]typesystem.Value{"": typesystem.NewInt(42)}, nil, nil, position.Unknown)
	if err != nil {
		t.Fatalf("Call(f(42)) failed: %s", err.Message())
	}
	if result.Int != 42 {
		t.Fatalf("Call(f(42)) = %d, want 42", result.Int)
	}
}

// TestCallTypeMismatchReportsExactMessage covers spec §8 scenario 2: the
// same f called with a str argument fails validation with the spec's
// literal error text.
func TestCallTypeMismatchReportsExactMessage(t *testing.T) {
	f := identityFunc()
	_, err := f.Call(map[string]typesystem.Value{"": typesystem.NewStr("hello")}, nil, nil, position.Unknown)
	if err == nil {
		t.Fatal("Call(f(\"hello\")) succeeded, want a type-mismatch error")
	}
	if err.Code() != diagnostics.ErrR002 {
		t.Fatalf("error code = %s, want %s", err.Code(), diagnostics.ErrR002)
	}
	const want = "Invalid argument, `x` is expected to be a `int`, found `str` instead"
	if err.Message() != want {
		t.Fatalf("error message = %q, want %q", err.Message(), want)
	}
}

// TestCallReturnTypeConformanceOverObject covers spec §8 scenario 5: a
// function declaring return type Bar, returning an instance whose
// implements list contains Bar, succeeds; the same function returning an
// instance that does not implement Bar fails with a return-type
// mismatch.
func TestCallReturnTypeConformanceOverObject(t *testing.T) {
	st := symbols.NewSymbolTable()
	if err := st.AddClass(&symbols.ClassDefinition{
		FullyQualifiedName: "Foo",
		Implements:         []string{"Bar"},
		Properties:         map[string]symbols.PropertyDefinition{},
	}); err != nil {
		t.Fatalf("AddClass(Foo) failed: %v", err)
	}
	if err := st.AddClass(&symbols.ClassDefinition{
		FullyQualifiedName: "Baz",
		Properties:         map[string]symbols.PropertyDefinition{},
	}); err != nil {
		t.Fatalf("AddClass(Baz) failed: %v", err)
	}

	foo, err := st.CreateObjectInstance("Foo", nil, nil, nil, position.Unknown)
	if err != nil {
		t.Fatalf("CreateObjectInstance(Foo) failed: %v", err)
	}
	if _, ok := foo.Kind.(typesystem.Obj); !ok {
		t.Fatalf("CreateObjectInstance(Foo).Kind = %T, want typesystem.Obj", foo.Kind)
	}

	baz, err := st.CreateObjectInstance("Baz", nil, nil, nil, position.Unknown)
	if err != nil {
		t.Fatalf("CreateObjectInstance(Baz) failed: %v", err)
	}

	returning := func(v typesystem.Value) *symbols.UserFunction {
		return &symbols.UserFunction{
			FnName:  "make",
			Params:  map[string]symbols.FunctionParameter{},
			RetType: typesystem.NewName("Bar"),
			Lookup:  st,
			Eval: evaluator.Func(func(_ *ast.Ast, _ map[string]typesystem.Value) (typesystem.Value, *diagnostics.RuntimeError) {
				return v, nil
			}),
		}
	}

	if _, err := returning(foo).Call(map[string]typesystem.Value{}, nil, nil, position.Unknown); err != nil {
		t.Fatalf("returning a Bar-implementing instance failed: %s", err.Message())
	}

	_, err = returning(baz).Call(map[string]typesystem.Value{}, nil, nil, position.Unknown)
	if err == nil {
		t.Fatal("returning a non-Bar instance succeeded, want a return-type mismatch")
	}
	if err.Code() != diagnostics.ErrR003 {
		t.Fatalf("error code = %s, want %s", err.Code(), diagnostics.ErrR003)
	}
}
