package parser_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Mechachleopteryx/saha/internal/ast"
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/lexer"
	"github.com/Mechachleopteryx/saha/internal/parser"
)

// goldenCase is one declarative row of a testdata/*.yaml golden table:
// a source snippet plus the shape ParseBody must produce for it, or the
// diagnostics.Code it must fail with.
type goldenCase struct {
	Name      string           `yaml:"name"`
	Source    string           `yaml:"source"`
	WantStmt  string           `yaml:"want_statement"`
	WantExpr  string           `yaml:"want_expr"`
	WantOp    string           `yaml:"want_op"`
	WantPipe  bool             `yaml:"want_pipe"`
	WantError diagnostics.Code `yaml:"want_error"`
}

type goldenFixture struct {
	Cases []goldenCase `yaml:"cases"`
}

// exprOf unwraps the single expression carried by the statement kinds
// the golden tables exercise (*ast.Return's Value, *ast.ExpressionStatement's
// Expr, *ast.VarDeclaration's Initializer), or nil for statements with no
// single expression to check.
func exprOf(stmt ast.Statement) ast.Expression {
	switch s := stmt.(type) {
	case *ast.Return:
		return s.Value
	case *ast.ExpressionStatement:
		return s.Expr
	case *ast.VarDeclaration:
		return s.Initializer
	default:
		return nil
	}
}

// TestParserGoldenFixtures runs every declarative case under
// testdata/*.yaml through ParseBody, checking the outer statement's (and,
// where given, its inner expression's) shape against the fixture's
// expectations. The yaml.v3-decoded tables replace a hand-rolled Go
// literal per case (spec §4.3/§8 coverage: precedence, access chains,
// control flow, and ErrP001 malformed-body diagnostics).
func TestParserGoldenFixtures(t *testing.T) {
	files, err := filepath.Glob("testdata/*.yaml")
	if err != nil {
		t.Fatalf("glob testdata/*.yaml: %s", err)
	}
	if len(files) == 0 {
		t.Fatal("no golden fixtures found under testdata/")
	}

	for _, file := range files {
		file := file
		t.Run(filepath.Base(file), func(t *testing.T) {
			data, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("reading %s: %s", file, err)
			}
			var fixture goldenFixture
			if err := yaml.Unmarshal(data, &fixture); err != nil {
				t.Fatalf("parsing %s: %s", file, err)
			}

			for _, c := range fixture.Cases {
				c := c
				t.Run(c.Name, func(t *testing.T) {
					tokens := lexer.Tokenize("golden.saha", c.Source)
					body, parseErr := parser.NewAstParser(tokens).ParseBody()

					if c.WantError != "" {
						if parseErr == nil {
							t.Fatalf("ParseBody(%q) succeeded, want error %s", c.Source, c.WantError)
						}
						if parseErr.Code() != c.WantError {
							t.Fatalf("ParseBody(%q) code = %s, want %s", c.Source, parseErr.Code(), c.WantError)
						}
						return
					}
					if parseErr != nil {
						t.Fatalf("ParseBody(%q) failed: %s", c.Source, parseErr.Message())
					}

					if len(body.Entrypoint.Statements) == 0 {
						t.Fatalf("ParseBody(%q) produced no statements", c.Source)
					}
					stmt := body.Entrypoint.Statements[0]

					if c.WantStmt != "" {
						if got := fmt.Sprintf("%T", stmt); got != c.WantStmt {
							t.Fatalf("statement type = %s, want %s", got, c.WantStmt)
						}
					}

					expr := exprOf(stmt)

					if c.WantExpr != "" {
						if got := fmt.Sprintf("%T", expr); got != c.WantExpr {
							t.Fatalf("expression type = %s, want %s", got, c.WantExpr)
						}
					}

					if c.WantOp != "" {
						bin, ok := expr.(*ast.BinaryOperation)
						if !ok {
							t.Fatalf("expression is %T, want *ast.BinaryOperation", expr)
						}
						if got := bin.Op.Kind.String(); got != c.WantOp {
							t.Fatalf("outermost operator = %q, want %q", got, c.WantOp)
						}
					}

					if c.WantPipe {
						if _, ok := expr.(*ast.PipeOperation); !ok {
							t.Fatalf("expression is %T, want *ast.PipeOperation", expr)
						}
					}
				})
			}
		})
	}
}
