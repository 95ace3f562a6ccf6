package parser

import (
	"github.com/Mechachleopteryx/saha/internal/ast"
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/token"
)

// parseBlock parses a curly-brace-delimited block, or — when isRoot is
// true — a body's implicit root block with no curly bounds (spec §4.3).
func (p *AstParser) parseBlock(isRoot bool) (*ast.Block, *diagnostics.ParseError) {
	blockPos := p.peek.Position

	if !isRoot {
		if _, err := p.expect(token.CurlyOpen); err != nil {
			return nil, err
		}
		blockPos = p.cur.Position
	}

	statements, err := p.parseStatements()
	if err != nil {
		return nil, err
	}

	if !isRoot {
		if _, err := p.expect(token.CurlyClose); err != nil {
			return nil, err
		}
	}

	return &ast.Block{Position: blockPos, Statements: statements}, nil
}

// startsEosStatement reports whether a statement starting with peek kind k
// ends in `;`
// (spec §4.3: "Statements that end in `;` are: var, return, break,
// continue, bare expressions, and parenthesized expressions used as
// statements").
func startsEosStatement(k token.Kind) bool {
	switch k {
	case token.Name, token.KwVar, token.KwContinue, token.KwBreak, token.KwReturn, token.ParensOpen:
		return true
	default:
		return false
	}
}

func (p *AstParser) parseStatements() ([]ast.Statement, *diagnostics.ParseError) {
	var statements []ast.Statement

	for {
		endsInEos := startsEosStatement(p.peek.Kind)

		var stmt ast.Statement
		var err *diagnostics.ParseError

		switch p.peek.Kind {
		case token.Eob, token.CurlyClose:
			return statements, nil
		case token.KwVar:
			stmt, err = p.parseVarDeclaration()
		case token.KwIf:
			stmt, err = p.parseIfStatement()
		case token.KwLoop:
			stmt, err = p.parseLoopStatement()
		case token.KwFor:
			stmt, err = p.parseForStatement()
		case token.KwReturn:
			stmt, err = p.parseReturnStatement()
		case token.KwBreak:
			stmt, err = p.parseBreakStatement()
		case token.KwContinue:
			stmt, err = p.parseContinueStatement()
		default:
			stmt, err = p.parseExpressionStatement()
		}
		if err != nil {
			return nil, err
		}

		if endsInEos {
			if _, err := p.expect(token.EndStatement); err != nil {
				return nil, err
			}
		}

		statements = append(statements, stmt)
	}
}

func (p *AstParser) parseVarDeclaration() (ast.Statement, *diagnostics.ParseError) {
	if _, err := p.expect(token.KwVar); err != nil {
		return nil, err
	}
	stmtPos := p.cur.Position

	nameTok, err := p.expect(token.Name)
	if err != nil {
		return nil, err
	}
	ident := &ast.Identifier{Position: nameTok.Position, Name: nameTok.NameValue()}

	if _, err := p.expect(token.Tick); err != nil {
		return nil, err
	}

	varType, err := p.parseTypeDeclaration(true)
	if err != nil {
		return nil, err
	}

	if p.peek.Kind == token.EndStatement {
		return &ast.VarDeclaration{Position: stmtPos, Name: ident, Type: varType}, nil
	}

	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}

	value, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	return &ast.VarDeclaration{Position: stmtPos, Name: ident, Type: varType, Initializer: value}, nil
}

func (p *AstParser) parseExpressionStatement() (ast.Statement, *diagnostics.ParseError) {
	stmtPos := p.peek.Position
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Position: stmtPos, Expr: expr}, nil
}

func (p *AstParser) parseBreakStatement() (ast.Statement, *diagnostics.ParseError) {
	if _, err := p.expect(token.KwBreak); err != nil {
		return nil, err
	}
	return &ast.Break{Position: p.cur.Position}, nil
}

func (p *AstParser) parseContinueStatement() (ast.Statement, *diagnostics.ParseError) {
	if _, err := p.expect(token.KwContinue); err != nil {
		return nil, err
	}
	return &ast.Continue{Position: p.cur.Position}, nil
}

func (p *AstParser) parseReturnStatement() (ast.Statement, *diagnostics.ParseError) {
	if _, err := p.expect(token.KwReturn); err != nil {
		return nil, err
	}
	retPos := p.cur.Position

	if p.peek.Kind == token.EndStatement {
		return &ast.Return{Position: retPos}, nil
	}

	value, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	return &ast.Return{Position: retPos, Value: value}, nil
}

func (p *AstParser) parseIfStatement() (ast.Statement, *diagnostics.ParseError) {
	if _, err := p.expect(token.KwIf); err != nil {
		return nil, err
	}
	ifPos := p.cur.Position

	if _, err := p.expect(token.ParensOpen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ParensClose); err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock(false)
	if err != nil {
		return nil, err
	}

	var elifs []*ast.If
	for p.peek.Kind == token.KwElseif {
		if _, err := p.expect(token.KwElseif); err != nil {
			return nil, err
		}
		elifPos := p.cur.Position

		if _, err := p.expect(token.ParensOpen); err != nil {
			return nil, err
		}
		elifCond, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ParensClose); err != nil {
			return nil, err
		}
		elifBlock, err := p.parseBlock(false)
		if err != nil {
			return nil, err
		}

		elifs = append(elifs, &ast.If{Position: elifPos, Cond: elifCond, Then: elifBlock})
	}

	var elseBlock *ast.Block
	if p.peek.Kind == token.KwElse {
		if _, err := p.expect(token.KwElse); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseBlock(false)
		if err != nil {
			return nil, err
		}
	}

	return &ast.If{Position: ifPos, Cond: cond, Then: thenBlock, Elifs: elifs, Else: elseBlock}, nil
}

func (p *AstParser) parseLoopStatement() (ast.Statement, *diagnostics.ParseError) {
	if _, err := p.expect(token.KwLoop); err != nil {
		return nil, err
	}
	loopPos := p.cur.Position

	body, err := p.parseBlock(false)
	if err != nil {
		return nil, err
	}
	return &ast.Loop{Position: loopPos, Body: body}, nil
}

func (p *AstParser) parseForStatement() (ast.Statement, *diagnostics.ParseError) {
	if _, err := p.expect(token.KwFor); err != nil {
		return nil, err
	}
	forPos := p.cur.Position

	if _, err := p.expect(token.ParensOpen); err != nil {
		return nil, err
	}

	kTok, err := p.expect(token.Name)
	if err != nil {
		return nil, err
	}
	kIdent := &ast.Identifier{Position: kTok.Position, Name: kTok.NameValue()}

	if _, err := p.expect(token.Comma); err != nil {
		return nil, err
	}

	vTok, err := p.expect(token.Name)
	if err != nil {
		return nil, err
	}
	vIdent := &ast.Identifier{Position: vTok.Position, Name: vTok.NameValue()}

	if _, err := p.expect(token.ParensClose); err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KwIn); err != nil {
		return nil, err
	}

	iterable, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock(false)
	if err != nil {
		return nil, err
	}

	return &ast.For{Position: forPos, KeyIdent: kIdent, ValIdent: vIdent, Iterable: iterable, Body: body}, nil
}
