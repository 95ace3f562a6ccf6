// Package parser implements Saha's two-phase parse (spec §4.2, §4.3): a
// root/declaration pass that produces a ParseTable with unparsed body token
// slices, and an AST pass that turns one body's token slice into an
// internal/ast.Ast. Both passes are ported from original_source's
// AstParser/RootParser control flow (bail on first ParseError, peek-based
// lookahead) rather than the accumulate-many-errors style some Go
// parsers use — spec §7 treats ParseError as something that bubbles
// unchanged to the process boundary, not something to collect.
package parser

import (
	"github.com/Mechachleopteryx/saha/internal/ast"
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/token"
)

// tokenCursor is the two-token-lookahead reader both the declaration pass
// and the AST pass build on: cur is the last consumed token, peek is the
// next token, not yet consumed. Grounded on original_source/
// ast_parser.rs's AstParser.{ctok, ntok}/consume_next.
type tokenCursor struct {
	tokens []token.Token
	idx    int
	cur    token.Token
	peek   token.Token
}

func newTokenCursor(tokens []token.Token) *tokenCursor {
	c := &tokenCursor{tokens: tokens}
	if len(tokens) > 0 {
		c.peek = tokens[0]
	} else {
		c.peek = token.Token{Kind: token.Eob}
	}
	return c
}

// advance shifts peek into cur and loads the next token into peek.
func (c *tokenCursor) advance() {
	c.cur = c.peek
	c.idx++
	if c.idx < len(c.tokens) {
		c.peek = c.tokens[c.idx]
	} else {
		c.peek = token.Token{Kind: token.Eob, Position: c.cur.Position}
	}
}

// peekSecond looks one token past peek, without consuming anything. Used
// only to disambiguate a named call argument (`name = value`) from a
// positional one starting with a bare identifier expression.
func (c *tokenCursor) peekSecond() token.Token {
	if c.idx+1 < len(c.tokens) {
		return c.tokens[c.idx+1]
	}
	return token.Token{Kind: token.Eob, Position: c.peek.Position}
}

// expect verifies peek's kind is one of want, then consumes it into cur.
// Mirrors consume_next's "match discriminant, then shift" contract.
func (c *tokenCursor) expect(want ...token.Kind) (token.Token, *diagnostics.ParseError) {
	for _, k := range want {
		if c.peek.Kind == k {
			c.advance()
			return c.cur, nil
		}
	}
	names := make([]string, len(want))
	for i, k := range want {
		names[i] = string(k)
	}
	return token.Token{}, diagnostics.NewUnexpectedTokenError(c.peek.Position, string(c.peek.Kind), names)
}

// AstParser parses one declared body's token slice into an Ast
// (spec §4.3).
type AstParser struct {
	*tokenCursor
}

// NewAstParser constructs a body parser over tokens. tokens need not be
// terminated by an explicit Eob; ParseBody reads past the end as Eob.
func NewAstParser(tokens []token.Token) *AstParser {
	return &AstParser{tokenCursor: newTokenCursor(tokens)}
}

// ParseBody runs the AST pass, producing an Ast whose entrypoint is the
// body's root block (spec §4.3, §8: an empty token stream yields an Ast
// with zero statements).
func (p *AstParser) ParseBody() (*ast.Ast, *diagnostics.ParseError) {
	block, err := p.parseBlock(true)
	if err != nil {
		return nil, err
	}
	return &ast.Ast{Entrypoint: block}, nil
}
