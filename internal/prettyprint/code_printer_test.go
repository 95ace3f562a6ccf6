package prettyprint_test

import (
	"testing"

	"github.com/Mechachleopteryx/saha/internal/lexer"
	"github.com/Mechachleopteryx/saha/internal/parser"
	"github.com/Mechachleopteryx/saha/internal/prettyprint"
)

// assertRoundTrips checks spec §8's round-trip law (tokenize(pretty-print(ast))
// must re-parse to an equivalent ast): src's parsed body is printed,
// re-tokenized, and re-parsed, then printed again. Pretty-printing must
// be a fixed point of that cycle — printing the same AST shape twice
// must produce identical text — even though the original and printed
// source text themselves may differ (whitespace, literal spellings like
// "1.50" vs "1.5", added disambiguating parentheses).
func assertRoundTrips(t *testing.T, src string) {
	t.Helper()
	tokens := lexer.Tokenize("test.saha", src)
	body, err := parser.NewAstParser(tokens).ParseBody()
	if err != nil {
		t.Fatalf("ParseBody(%q) failed: %s", src, err.Message())
	}

	printed := prettyprint.Print(body)

	reTokens := lexer.Tokenize("test.saha", printed)
	reparsed, err := parser.NewAstParser(reTokens).ParseBody()
	if err != nil {
		t.Fatalf("re-parsing pretty-printed output failed: %s\nprinted:\n%s", err.Message(), printed)
	}

	reprinted := prettyprint.Print(reparsed)
	if printed != reprinted {
		t.Fatalf("pretty-print is not a fixed point:\nfirst:\n%s\nsecond:\n%s", printed, reprinted)
	}
}

func TestPrintVarDeclaration(t *testing.T) {
	assertRoundTrips(t, `var x'int = 5;`)
}

func TestPrintArithmeticPreservesGrouping(t *testing.T) {
	assertRoundTrips(t, `return 1 + 1 + 2 * 3 - 1;`)
}

func TestPrintParenthesizedExpressionPreservesGrouping(t *testing.T) {
	assertRoundTrips(t, `return (1 + 2) * 3;`)
}

func TestPrintObjectAccessChain(t *testing.T) {
	assertRoundTrips(t, `foo->bar->baz;`)
}

func TestPrintIfElseifElse(t *testing.T) {
	assertRoundTrips(t, `
if (a) {
    return 1;
} elseif (b) {
    return 2;
} else {
    return 3;
}
`)
}

func TestPrintLoopAndFor(t *testing.T) {
	assertRoundTrips(t, `
loop {
    break;
}
for (k, v) in items {
    continue;
}
`)
}

func TestPrintListAndDictLiterals(t *testing.T) {
	assertRoundTrips(t, `var l'List<int> = [1, 2, 3];`)
	assertRoundTrips(t, `var d'Dict<int> = {"a": 1, "b": 2};`)
}

func TestPrintFunctionCallWithNamedArgument(t *testing.T) {
	assertRoundTrips(t, `greet(name = "world");`)
}

func TestPrintPipeOperation(t *testing.T) {
	assertRoundTrips(t, `return a |> b;`)
}

func TestPrintNewInstanceWithTypeArgs(t *testing.T) {
	assertRoundTrips(t, `var l'List<int> = new List<int>();`)
}
