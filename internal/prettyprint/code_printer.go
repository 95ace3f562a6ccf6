// Package prettyprint implements a canonical-form source printer for
// Saha's AST (spec §8's round-trip law: tokenize(pretty-print(ast)) must
// re-lex to an equivalent token stream). Modeled on the corpus's
// internal/prettyprinter.CodePrinter: one Visit* method per node kind,
// walked through the AST's own Accept(Visitor) double dispatch, building
// output into a bytes.Buffer with an explicit indent level instead of a
// general-purpose layout engine.
package prettyprint

import (
	"bytes"
	"strconv"

	"github.com/Mechachleopteryx/saha/internal/ast"
)

// binOpPrecedence mirrors internal/token's operator precedence table so
// the printer only parenthesizes a sub-expression when its natural
// grouping would otherwise change under re-parsing.
var binOpPrecedence = map[ast.BinOpKind]int{
	ast.Or:  1,
	ast.And: 2,
	ast.Eq:  3, ast.Neq: 3,
	ast.Lt: 4, ast.Gt: 4, ast.Lte: 4, ast.Gte: 4,
	ast.Add: 5, ast.Sub: 5,
	ast.Mul: 6, ast.Div: 6,
}

// CodePrinter walks an Ast and renders it back into Saha source text.
type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

// New returns a CodePrinter ready to print an Ast's entrypoint block.
func New() *CodePrinter {
	return &CodePrinter{}
}

// Print renders a.Entrypoint and returns the resulting source text. The
// entrypoint is a body's implicit root block (spec §4.3: no curly
// bounds), so its statements are printed bare rather than through
// VisitBlock, which wraps nested if/loop/for bodies in braces.
func Print(a *ast.Ast) string {
	p := New()
	p.printStatements(a.Entrypoint.Statements)
	return p.String()
}

func (p *CodePrinter) printStatements(statements []ast.Statement) {
	for i, stmt := range statements {
		if i > 0 {
			p.write("\n")
		}
		p.writeIndent()
		stmt.Accept(p)
	}
}

func (p *CodePrinter) String() string { return p.buf.String() }

func (p *CodePrinter) write(s string) { p.buf.WriteString(s) }

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
}

// printExpr renders expr, wrapping it in parentheses when its own
// precedence is lower than parentPrec — the only case a round trip
// would otherwise regroup it differently.
func (p *CodePrinter) printExpr(expr ast.Expression, parentPrec int) {
	bin, ok := expr.(*ast.BinaryOperation)
	if !ok {
		expr.Accept(p)
		return
	}
	prec := binOpPrecedence[bin.Op.Kind]
	needParens := prec < parentPrec
	if needParens {
		p.write("(")
	}
	p.printExpr(bin.Left, prec)
	p.write(" " + bin.Op.Kind.String() + " ")
	p.printExpr(bin.Right, prec+1)
	if needParens {
		p.write(")")
	}
}

func (p *CodePrinter) VisitBlock(b *ast.Block) {
	p.write("{\n")
	p.indent++
	p.printStatements(b.Statements)
	if len(b.Statements) > 0 {
		p.write("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitIdentifier(i *ast.Identifier) {
	p.write(i.Name)
	if len(i.TypeParams) > 0 {
		p.write("<")
		for idx, t := range i.TypeParams {
			if idx > 0 {
				p.write(", ")
			}
			p.write(t.String())
		}
		p.write(">")
	}
}

func (p *CodePrinter) VisitVarDeclaration(s *ast.VarDeclaration) {
	p.write("var ")
	p.write(s.Name.Name)
	p.write("'")
	p.write(s.Type.String())
	if s.Initializer != nil {
		p.write(" = ")
		p.printExpr(s.Initializer, 0)
	}
	p.write(";")
}

func (p *CodePrinter) VisitExpressionStatement(s *ast.ExpressionStatement) {
	p.printExpr(s.Expr, 0)
	p.write(";")
}

func (p *CodePrinter) VisitIf(s *ast.If) {
	p.write("if (")
	p.printExpr(s.Cond, 0)
	p.write(") ")
	s.Then.Accept(p)
	for _, elif := range s.Elifs {
		p.write(" elseif (")
		p.printExpr(elif.Cond, 0)
		p.write(") ")
		elif.Then.Accept(p)
	}
	if s.Else != nil {
		p.write(" else ")
		s.Else.Accept(p)
	}
}

func (p *CodePrinter) VisitLoop(s *ast.Loop) {
	p.write("loop ")
	s.Body.Accept(p)
}

func (p *CodePrinter) VisitFor(s *ast.For) {
	p.write("for (")
	p.write(s.KeyIdent.Name)
	p.write(", ")
	p.write(s.ValIdent.Name)
	p.write(") in ")
	p.printExpr(s.Iterable, 0)
	p.write(" ")
	s.Body.Accept(p)
}

func (p *CodePrinter) VisitReturn(s *ast.Return) {
	p.write("return")
	if s.Value != nil {
		p.write(" ")
		p.printExpr(s.Value, 0)
	}
	p.write(";")
}

func (p *CodePrinter) VisitBreak(_ *ast.Break) { p.write("break;") }

func (p *CodePrinter) VisitContinue(_ *ast.Continue) { p.write("continue;") }

func (p *CodePrinter) VisitLiteralValue(e *ast.LiteralValue) {
	v := e.Value
	switch {
	case v.Kind == nil:
		p.write("<void>")
	default:
		switch v.Kind.String() {
		case "str":
			p.write(strconv.Quote(v.Str))
		case "int":
			p.write(strconv.FormatInt(v.Int, 10))
		case "float":
			p.write(strconv.FormatFloat(v.Float, 'g', -1, 64))
		case "bool":
			p.write(strconv.FormatBool(v.Bool))
		default:
			p.write(v.String())
		}
	}
}

func (p *CodePrinter) VisitIdentPath(e *ast.IdentPath) {
	e.Root.Accept(p)
	for _, seg := range e.Segments {
		p.write(seg.Access.String())
		seg.Name.Accept(p)
	}
}

func (p *CodePrinter) VisitListDeclaration(e *ast.ListDeclaration) {
	p.write("[")
	for i, el := range e.Elements {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(el, 0)
	}
	p.write("]")
}

func (p *CodePrinter) VisitDictDeclaration(e *ast.DictDeclaration) {
	p.write("{")
	for i, entry := range e.Entries {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(entry.Key, 0)
		p.write(": ")
		p.printExpr(entry.Value, 0)
	}
	p.write("}")
}

func (p *CodePrinter) VisitAssignment(e *ast.Assignment) {
	e.Target.Accept(p)
	p.write(" = ")
	p.printExpr(e.Value, 0)
}

func (p *CodePrinter) VisitPipeOperation(e *ast.PipeOperation) {
	p.printExpr(e.Left, 0)
	p.write(" |> ")
	p.printExpr(e.Right, 0)
}

func (p *CodePrinter) VisitBinaryOperation(e *ast.BinaryOperation) {
	p.printExpr(e, 0)
}

func (p *CodePrinter) VisitUnaryOperation(e *ast.UnaryOperation) {
	p.write(e.Op.Kind.String())
	e.Operand.Accept(p)
}

func (p *CodePrinter) VisitCallableArg(e *ast.CallableArg) {
	if e.Name != "" {
		p.write(e.Name)
		p.write(" = ")
	}
	p.printExpr(e.Value, 0)
}

func (p *CodePrinter) VisitCallableArgs(e *ast.CallableArgs) {
	for i, arg := range e.Args {
		if i > 0 {
			p.write(", ")
		}
		arg.Accept(p)
	}
}

func (p *CodePrinter) VisitFunctionCall(e *ast.FunctionCall) {
	e.Callee.Accept(p)
	p.write("(")
	e.Args.Accept(p)
	p.write(")")
}

func (p *CodePrinter) VisitObjectAccess(e *ast.ObjectAccess) {
	e.Left.Accept(p)
	p.write(e.Kind.String())
	e.Right.Accept(p)
}

func (p *CodePrinter) VisitNewInstance(e *ast.NewInstance) {
	p.write("new ")
	e.ClassName.Accept(p)
	if len(e.TypeArgs) > 0 {
		p.write("<")
		for i, t := range e.TypeArgs {
			if i > 0 {
				p.write(", ")
			}
			p.write(t.String())
		}
		p.write(">")
	}
	p.write("(")
	e.Args.Accept(p)
	p.write(")")
}
