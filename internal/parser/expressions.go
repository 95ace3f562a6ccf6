package parser

import (
	"github.com/Mechachleopteryx/saha/internal/ast"
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/token"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// parseExpression is the precedence-climbing entry point (spec §4.3):
// parse a primary, resolve any object-access chain immediately (it binds
// tighter than every operator), then keep consuming binary/pipe operators
// whose precedence is at least minPrecedence.
func (p *AstParser) parseExpression(minPrecedence int) (ast.Expression, *diagnostics.ParseError) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	if p.peek.IsAccessToken() {
		return p.parseObjectAccess(left)
	}

	for p.peek.Precedence() >= minPrecedence && p.peek.Precedence() >= 0 {
		if p.peek.Kind == token.Pipe {
			left, err = p.parsePipeOperation(left)
		} else {
			left, err = p.parseBinaryOperation(left)
		}
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *AstParser) parsePrimary() (ast.Expression, *diagnostics.ParseError) {
	if _, err := p.expect(
		token.ParensOpen, token.BraceOpen, token.CurlyOpen, token.KwNew,
		token.OpSub, token.UnOpNot,
		token.Name, token.StringValue, token.IntegerValue, token.FloatValue, token.BooleanValue,
	); err != nil {
		return nil, err
	}

	switch p.cur.Kind {
	case token.ParensOpen:
		expr, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ParensClose); err != nil {
			return nil, err
		}
		return expr, nil

	case token.BraceOpen:
		return p.parseListDeclaration()

	case token.CurlyOpen:
		return p.parseDictDeclaration()

	case token.UnOpNot, token.OpSub:
		return p.parseUnaryOperation()

	case token.StringValue, token.IntegerValue, token.FloatValue, token.BooleanValue:
		return p.parseLiteralValue()

	case token.KwNew:
		return p.parseNewInstance()

	case token.Name:
		identPath, err := p.parseIdentPath()
		if err != nil {
			return nil, err
		}
		switch p.peek.Kind {
		case token.ParensOpen:
			return p.parseFunctionCall(identPath)
		case token.Assign:
			return p.parseAssignment(identPath)
		default:
			return identPath, nil
		}
	}

	return nil, diagnostics.NewUnexpectedTokenError(p.cur.Position, string(p.cur.Kind), []string{"primary expression"})
}

func (p *AstParser) parseListDeclaration() (ast.Expression, *diagnostics.ParseError) {
	listPos := p.cur.Position
	var elements []ast.Expression

	for {
		elem, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)

		if p.peek.Kind == token.Comma {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, err
			}
			continue
		}
		break
	}

	if _, err := p.expect(token.BraceClose); err != nil {
		return nil, err
	}

	return &ast.ListDeclaration{Position: listPos, Elements: elements}, nil
}

func (p *AstParser) parseDictDeclaration() (ast.Expression, *diagnostics.ParseError) {
	dictPos := p.cur.Position
	var entries []ast.DictEntry

	for {
		key, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		value, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.DictEntry{Key: key, Value: value})

		if p.peek.Kind == token.Comma {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, err
			}
			continue
		}
		break
	}

	if _, err := p.expect(token.CurlyClose); err != nil {
		return nil, err
	}

	return &ast.DictDeclaration{Position: dictPos, Entries: entries}, nil
}

func (p *AstParser) parseUnaryOperation() (ast.Expression, *diagnostics.ParseError) {
	var kind ast.UnaryOpKind
	switch p.cur.Kind {
	case token.UnOpNot:
		kind = ast.Not
	case token.OpSub:
		kind = ast.Minus
	}
	op := ast.UnaryOp{Position: p.cur.Position, Kind: kind}

	operand, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	return &ast.UnaryOperation{Position: op.Position, Op: op, Operand: operand}, nil
}

func (p *AstParser) parseLiteralValue() (ast.Expression, *diagnostics.ParseError) {
	pos := p.cur.Position
	var val typesystem.Value
	switch p.cur.Kind {
	case token.StringValue:
		val = typesystem.NewStr(p.cur.StringValueOf())
	case token.IntegerValue:
		val = typesystem.NewInt(p.cur.IntValue())
	case token.FloatValue:
		val = typesystem.NewFloat(p.cur.FloatValue())
	case token.BooleanValue:
		val = typesystem.NewBool(p.cur.BoolValue())
	}
	return &ast.LiteralValue{Position: pos, Value: val}, nil
}

// parseIdentPath parses a chain of simple name segments joined by `->`/`::`
// (spec §4.3, §6: "root[<T,...>] (('->'|'::') segment[<T,...>])*"), the
// Name-token entry point of parsePrimary.
func (p *AstParser) parseIdentPath() (*ast.IdentPath, *diagnostics.ParseError) {
	rootTok := p.cur
	rootTypeParams, err := p.maybeParseTypeArgsAtCallSite()
	if err != nil {
		return nil, err
	}
	root := &ast.Identifier{Position: rootTok.Position, Name: rootTok.NameValue(), TypeParams: rootTypeParams}

	path := &ast.IdentPath{Position: rootTok.Position, Root: root}

	for p.peek.IsAccessToken() {
		accessTok, err := p.expect(token.ObjectAccess, token.StaticAccess)
		if err != nil {
			return nil, err
		}
		kind := ast.Instance
		if accessTok.Kind == token.StaticAccess {
			kind = ast.Static
		}

		nameTok, err := p.expect(token.Name)
		if err != nil {
			return nil, err
		}
		segTypeParams, err := p.maybeParseTypeArgsAtCallSite()
		if err != nil {
			return nil, err
		}

		path.Segments = append(path.Segments, ast.PathSegment{
			Access: kind,
			Name:   &ast.Identifier{Position: nameTok.Position, Name: nameTok.NameValue(), TypeParams: segTypeParams},
		})
	}

	return path, nil
}

// maybeParseTypeArgsAtCallSite parses an optional `<T, ...>` suffix on an
// identifier path segment, used for generic static access like
// `List<int>::empty()`. Call-site type arguments never resolve to
// TypeParam (parseParamTypes = false), matching `new`'s type arguments.
func (p *AstParser) maybeParseTypeArgsAtCallSite() ([]typesystem.Type, *diagnostics.ParseError) {
	if p.peek.Kind != token.OpLt {
		return nil, nil
	}
	return p.parseTypeArgsList()
}

func (p *AstParser) parseObjectAccess(left ast.Expression) (ast.Expression, *diagnostics.ParseError) {
	accessTok, err := p.expect(token.ObjectAccess, token.StaticAccess)
	if err != nil {
		return nil, err
	}
	kind := ast.Instance
	if accessTok.Kind == token.StaticAccess {
		kind = ast.Static
	}

	right, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	return &ast.ObjectAccess{Position: accessTok.Position, Left: left, Kind: kind, Right: right}, nil
}

func (p *AstParser) parseAssignment(target ast.Expression) (ast.Expression, *diagnostics.ParseError) {
	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Position: target.GetPosition(), Target: target, Value: value}, nil
}

var binOpKinds = map[token.Kind]ast.BinOpKind{
	token.OpAdd: ast.Add, token.OpSub: ast.Sub, token.OpMul: ast.Mul, token.OpDiv: ast.Div,
	token.OpGt: ast.Gt, token.OpGte: ast.Gte, token.OpLt: ast.Lt, token.OpLte: ast.Lte,
	token.OpEq: ast.Eq, token.OpNeq: ast.Neq, token.OpAnd: ast.And, token.OpOr: ast.Or,
}

// parseBinaryOperation consumes one binary operator and its right-hand
// side at operator-precedence + 1, then lets the caller's loop in
// parseExpression continue folding at the same minimum — standard
// precedence climbing, producing a left-associative fold across operators
// of equal precedence (spec §4.3, §8: `1 + 1 + 2 * 3 - 1` groups as
// `(((1+1)+(2*3))-1)`, since `*` binds tighter than the left-to-right
// `+`/`-` chain).
func (p *AstParser) parseBinaryOperation(left ast.Expression) (ast.Expression, *diagnostics.ParseError) {
	opTok := p.peek
	kind, ok := binOpKinds[opTok.Kind]
	if !ok {
		return nil, diagnostics.NewUnexpectedTokenError(opTok.Position, string(opTok.Kind), []string{"binary operator"})
	}
	p.advance()

	right, err := p.parseExpression(opTok.Precedence() + 1)
	if err != nil {
		return nil, err
	}

	op := ast.BinOp{Position: opTok.Position, Kind: kind, IsLeftAssoc: true}
	return &ast.BinaryOperation{Position: left.GetPosition(), Left: left, Op: op, Right: right}, nil
}

// parsePipeOperation parses `lhs |> rhs` into its own ast.PipeOperation
// node, left as-is for the evaluator to desugar into a call with lhs as
// rhs's sole positional argument (DESIGN.md open-question resolution:
// pipe binds below ||, above assignment).
func (p *AstParser) parsePipeOperation(left ast.Expression) (ast.Expression, *diagnostics.ParseError) {
	pipeTok := p.peek
	p.advance()

	right, err := p.parseExpression(pipeTok.Precedence() + 1)
	if err != nil {
		return nil, err
	}

	return &ast.PipeOperation{Position: left.GetPosition(), Left: left, Right: right}, nil
}
