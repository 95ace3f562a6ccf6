package parser_test

import (
	"testing"

	"github.com/Mechachleopteryx/saha/internal/ast"
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/lexer"
	"github.com/Mechachleopteryx/saha/internal/parser"
)

// parseBody lexes and parses src as one function body (the AST pass's
// unit of work), failing the test on any ParseError.
func parseBody(t *testing.T, src string) *ast.Ast {
	t.Helper()
	tokens := lexer.Tokenize("test.saha", src)
	body, err := parser.NewAstParser(tokens).ParseBody()
	if err != nil {
		t.Fatalf("ParseBody(%q) failed: %s: %s", src, err.Name(), err.Message())
	}
	return body
}

// expectBodyError asserts that parsing src's body fails with the given
// error code.
func expectBodyError(t *testing.T, src string, code diagnostics.Code) {
	t.Helper()
	tokens := lexer.Tokenize("test.saha", src)
	_, err := parser.NewAstParser(tokens).ParseBody()
	if err == nil {
		t.Fatalf("ParseBody(%q) succeeded, want error %s", src, code)
	}
	if err.Code() != code {
		t.Fatalf("ParseBody(%q) code = %s, want %s (message: %s)", src, err.Code(), code, err.Message())
	}
}

func TestParseBodyEmptyYieldsZeroStatements(t *testing.T) {
	body := parseBody(t, "")
	if len(body.Entrypoint.Statements) != 0 {
		t.Fatalf("got %d statements, want 0", len(body.Entrypoint.Statements))
	}
}

func TestParseBodyVarDeclaration(t *testing.T) {
	body := parseBody(t, `var x'int = 5;`)
	if len(body.Entrypoint.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(body.Entrypoint.Statements))
	}
	decl, ok := body.Entrypoint.Statements[0].(*ast.VarDeclaration)
	if !ok {
		t.Fatalf("statement is %T, want *ast.VarDeclaration", body.Entrypoint.Statements[0])
	}
	if decl.Name.Name != "x" {
		t.Fatalf("var name = %q, want x", decl.Name.Name)
	}
	lit, ok := decl.Initializer.(*ast.LiteralValue)
	if !ok {
		t.Fatalf("initializer is %T, want *ast.LiteralValue", decl.Initializer)
	}
	if lit.Value.Int != 5 {
		t.Fatalf("initializer = %d, want 5", lit.Value.Int)
	}
}

func TestParseBodyVarDeclarationWithoutInitializer(t *testing.T) {
	body := parseBody(t, `var x'int;`)
	decl := body.Entrypoint.Statements[0].(*ast.VarDeclaration)
	if decl.Initializer != nil {
		t.Fatalf("expected nil initializer, got %#v", decl.Initializer)
	}
}

func TestParseBodyArithmeticPrecedence(t *testing.T) {
	// Precedence climbing (parseExpression's outer loop folds each
	// same-or-lower-precedence operator onto the accumulated left operand)
	// groups `1 + 1 + 2 * 3 - 1` as `(((1+1)+(2*3))-1)`: `*` binds tighter
	// than `+`/`-`, and the two equal-precedence `+`/`-` fold
	// left-to-right, matching ordinary left-associative evaluation
	// (spec §8's invariant that `+` is "left-associative and weaker than
	// `*`").
	body := parseBody(t, `return 1 + 1 + 2 * 3 - 1;`)
	ret := body.Entrypoint.Statements[0].(*ast.Return)

	outer, ok := ret.Value.(*ast.BinaryOperation)
	if !ok {
		t.Fatalf("top expression is %T, want *ast.BinaryOperation", ret.Value)
	}
	if outer.Op.Kind != ast.Sub {
		t.Fatalf("outermost op = %v, want Sub", outer.Op.Kind)
	}

	leftInner, ok := outer.Left.(*ast.BinaryOperation)
	if !ok || leftInner.Op.Kind != ast.Add {
		t.Fatalf("left of outer is %#v, want ((1+1)+(2*3))", outer.Left)
	}

	leftLeftInner, ok := leftInner.Left.(*ast.BinaryOperation)
	if !ok || leftLeftInner.Op.Kind != ast.Add {
		t.Fatalf("left of left-inner is %#v, want (1+1)", leftInner.Left)
	}

	mulExpr, ok := leftInner.Right.(*ast.BinaryOperation)
	if !ok || mulExpr.Op.Kind != ast.Mul {
		t.Fatalf("right of left-inner is %#v, want (2*3)", leftInner.Right)
	}
}

func TestParseBodyParenthesesOverridePrecedence(t *testing.T) {
	body := parseBody(t, `return (1 + 2) * 3;`)
	ret := body.Entrypoint.Statements[0].(*ast.Return)
	outer := ret.Value.(*ast.BinaryOperation)
	if outer.Op.Kind != ast.Mul {
		t.Fatalf("outermost op = %v, want Mul", outer.Op.Kind)
	}
	if _, ok := outer.Left.(*ast.BinaryOperation); !ok {
		t.Fatalf("left of outer is %#v, want a parenthesized BinaryOperation", outer.Left)
	}
}

// TestParseBodyObjectAccessChain covers the bare-Name access chain,
// which parseIdentPath resolves entirely on its own (spec §4.3's
// "root (('->'|'::') segment)*" grammar): `foo->bar->baz` never reaches
// parseObjectAccess, since parsePrimary's Name case defers the whole
// chain to parseIdentPath before parseExpression gets a chance to see
// another access token.
func TestParseBodyObjectAccessChain(t *testing.T) {
	body := parseBody(t, `foo->bar->baz;`)
	stmt := body.Entrypoint.Statements[0].(*ast.ExpressionStatement)
	path, ok := stmt.Expr.(*ast.IdentPath)
	if !ok {
		t.Fatalf("expr is %T, want *ast.IdentPath", stmt.Expr)
	}
	if path.Root.Name != "foo" {
		t.Fatalf("root = %q, want foo", path.Root.Name)
	}
	if len(path.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(path.Segments))
	}
	for _, seg := range path.Segments {
		if seg.Access != ast.Instance {
			t.Fatalf("segment access = %v, want Instance", seg.Access)
		}
	}
	if path.Segments[0].Name.Name != "bar" || path.Segments[1].Name.Name != "baz" {
		t.Fatalf("segments = %+v, want [bar baz]", path.Segments)
	}
}

// TestParseBodyStaticAccess covers the same bare-path resolution for
// `::`, with a trailing call: parseIdentPath consumes the whole
// `Counter::reset` chain, and parsePrimary wraps the result in a
// FunctionCall once it sees the following `(`.
func TestParseBodyStaticAccess(t *testing.T) {
	body := parseBody(t, `Counter::reset();`)
	stmt := body.Entrypoint.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expr.(*ast.FunctionCall)
	if !ok {
		t.Fatalf("expr is %T, want *ast.FunctionCall", stmt.Expr)
	}
	path, ok := call.Callee.(*ast.IdentPath)
	if !ok {
		t.Fatalf("callee is %T, want *ast.IdentPath", call.Callee)
	}
	if len(path.Segments) != 1 || path.Segments[0].Access != ast.Static {
		t.Fatalf("segments = %+v, want one Static segment", path.Segments)
	}
	if path.Segments[0].Name.Name != "reset" {
		t.Fatalf("segment name = %q, want reset", path.Segments[0].Name.Name)
	}
}

// TestParseBodyObjectAccessOnParenthesizedExpression covers the actual
// parseObjectAccess path: parsePrimary's ParensOpen branch returns the
// parenthesized inner expression without resolving any access chain
// itself, so the `->` after the closing paren is only then picked up by
// parseExpression's own access check.
func TestParseBodyObjectAccessOnParenthesizedExpression(t *testing.T) {
	body := parseBody(t, `(foo)->bar;`)
	stmt := body.Entrypoint.Statements[0].(*ast.ExpressionStatement)
	access, ok := stmt.Expr.(*ast.ObjectAccess)
	if !ok {
		t.Fatalf("expr is %T, want *ast.ObjectAccess", stmt.Expr)
	}
	if access.Kind != ast.Instance {
		t.Fatalf("access kind = %v, want Instance", access.Kind)
	}
	left, ok := access.Left.(*ast.IdentPath)
	if !ok || left.Root.Name != "foo" {
		t.Fatalf("left = %#v, want IdentPath(foo)", access.Left)
	}
}

func TestParseBodySimpleIdentPathWithoutAccess(t *testing.T) {
	body := parseBody(t, `x;`)
	stmt := body.Entrypoint.Statements[0].(*ast.ExpressionStatement)
	if _, ok := stmt.Expr.(*ast.IdentPath); !ok {
		t.Fatalf("expr is %T, want *ast.IdentPath", stmt.Expr)
	}
}

func TestParseBodyNamedAndPositionalCallArguments(t *testing.T) {
	body := parseBody(t, `greet(name = "world");`)
	stmt := body.Entrypoint.Statements[0].(*ast.ExpressionStatement)
	call := stmt.Expr.(*ast.FunctionCall)
	if len(call.Args.Args) != 1 {
		t.Fatalf("got %d args, want 1", len(call.Args.Args))
	}
	if call.Args.Args[0].Name != "name" {
		t.Fatalf("arg name = %q, want %q", call.Args.Args[0].Name, "name")
	}

	body2 := parseBody(t, `greet("world");`)
	stmt2 := body2.Entrypoint.Statements[0].(*ast.ExpressionStatement)
	call2 := stmt2.Expr.(*ast.FunctionCall)
	if call2.Args.Args[0].Name != "" {
		t.Fatalf("positional arg name = %q, want empty", call2.Args.Args[0].Name)
	}
}

func TestParseBodyNewInstanceWithTypeArgs(t *testing.T) {
	body := parseBody(t, `var l'List<int> = new List<int>();`)
	decl := body.Entrypoint.Statements[0].(*ast.VarDeclaration)
	newInst, ok := decl.Initializer.(*ast.NewInstance)
	if !ok {
		t.Fatalf("initializer is %T, want *ast.NewInstance", decl.Initializer)
	}
	if newInst.ClassName.Name != "List" {
		t.Fatalf("class name = %q, want List", newInst.ClassName.Name)
	}
	if len(newInst.TypeArgs) != 1 {
		t.Fatalf("got %d type args, want 1", len(newInst.TypeArgs))
	}
}

func TestParseBodyPipeOperation(t *testing.T) {
	body := parseBody(t, `return a |> b;`)
	ret := body.Entrypoint.Statements[0].(*ast.Return)
	if _, ok := ret.Value.(*ast.PipeOperation); !ok {
		t.Fatalf("value is %T, want *ast.PipeOperation", ret.Value)
	}
}

func TestParseBodyIfElseifElse(t *testing.T) {
	body := parseBody(t, `
if (a) { return 1; }
elseif (b) { return 2; }
else { return 3; }
`)
	ifStmt := body.Entrypoint.Statements[0].(*ast.If)
	if len(ifStmt.Elifs) != 1 {
		t.Fatalf("got %d elifs, want 1", len(ifStmt.Elifs))
	}
	if ifStmt.Else == nil {
		t.Fatal("expected an else block")
	}
}

func TestParseBodyLoopAndForAndBreakContinue(t *testing.T) {
	body := parseBody(t, `
loop {
	break;
}
for (k, v) in items {
	continue;
}
`)
	if len(body.Entrypoint.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(body.Entrypoint.Statements))
	}
	loopStmt, ok := body.Entrypoint.Statements[0].(*ast.Loop)
	if !ok {
		t.Fatalf("first statement is %T, want *ast.Loop", body.Entrypoint.Statements[0])
	}
	if _, ok := loopStmt.Body.Statements[0].(*ast.Break); !ok {
		t.Fatalf("loop body statement is %T, want *ast.Break", loopStmt.Body.Statements[0])
	}
	forStmt, ok := body.Entrypoint.Statements[1].(*ast.For)
	if !ok {
		t.Fatalf("second statement is %T, want *ast.For", body.Entrypoint.Statements[1])
	}
	if forStmt.KeyIdent.Name != "k" || forStmt.ValIdent.Name != "v" {
		t.Fatalf("for loop vars = (%s, %s), want (k, v)", forStmt.KeyIdent.Name, forStmt.ValIdent.Name)
	}
}

func TestParseBodyAssignment(t *testing.T) {
	body := parseBody(t, `x = 5;`)
	stmt := body.Entrypoint.Statements[0].(*ast.ExpressionStatement)
	assign, ok := stmt.Expr.(*ast.Assignment)
	if !ok {
		t.Fatalf("expr is %T, want *ast.Assignment", stmt.Expr)
	}
	if _, ok := assign.Target.(*ast.IdentPath); !ok {
		t.Fatalf("assignment target is %T, want *ast.IdentPath", assign.Target)
	}
}

func TestParseBodyUnaryOperations(t *testing.T) {
	body := parseBody(t, `return -1;`)
	ret := body.Entrypoint.Statements[0].(*ast.Return)
	unary, ok := ret.Value.(*ast.UnaryOperation)
	if !ok {
		t.Fatalf("value is %T, want *ast.UnaryOperation", ret.Value)
	}
	if unary.Op.Kind != ast.Minus {
		t.Fatalf("unary op = %v, want Minus", unary.Op.Kind)
	}
}

func TestParseBodyListAndDictLiterals(t *testing.T) {
	body := parseBody(t, `var l'List<int> = [1, 2, 3];`)
	decl := body.Entrypoint.Statements[0].(*ast.VarDeclaration)
	list, ok := decl.Initializer.(*ast.ListDeclaration)
	if !ok {
		t.Fatalf("initializer is %T, want *ast.ListDeclaration", decl.Initializer)
	}
	if len(list.Elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(list.Elements))
	}

	body2 := parseBody(t, `var d'Dict<int> = {"a": 1, "b": 2};`)
	decl2 := body2.Entrypoint.Statements[0].(*ast.VarDeclaration)
	dict, ok := decl2.Initializer.(*ast.DictDeclaration)
	if !ok {
		t.Fatalf("initializer is %T, want *ast.DictDeclaration", decl2.Initializer)
	}
	if len(dict.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(dict.Entries))
	}
}

func TestParseBodyUnexpectedTokenReportsP001(t *testing.T) {
	expectBodyError(t, `var = 5;`, diagnostics.ErrP001)
}

func TestParseBodyUnterminatedParenReportsP001(t *testing.T) {
	expectBodyError(t, `return (1 + 2;`, diagnostics.ErrP001)
}

func TestParseBodyMissingSemicolonReportsP001(t *testing.T) {
	expectBodyError(t, `var x'int = 5`, diagnostics.ErrP001)
}

func TestParseDeclarationsConstAndFunction(t *testing.T) {
	src := `
const A = 1;
function f(): int { return 0; }
`
	tokens := lexer.Tokenize("test.saha", src)
	table, err := parser.NewRootParser(tokens).ParseDeclarations()
	if err != nil {
		t.Fatalf("ParseDeclarations failed: %s", err.Message())
	}
	if _, ok := table.Constants["A"]; !ok {
		t.Fatal("constant A not found in declaration table")
	}
	if _, ok := table.Functions["f"]; !ok {
		t.Fatal("function f not found in declaration table")
	}
}
