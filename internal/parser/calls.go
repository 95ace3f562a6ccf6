package parser

import (
	"github.com/Mechachleopteryx/saha/internal/ast"
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/token"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// parseFunctionCall parses the `(args)` suffix of a call whose callee has
// already been parsed (an IdentPath or any other primary expression),
// grounded on original_source's parse_function_call.
func (p *AstParser) parseFunctionCall(callee ast.Expression) (ast.Expression, *diagnostics.ParseError) {
	if _, err := p.expect(token.ParensOpen); err != nil {
		return nil, err
	}
	callPos := p.cur.Position

	args, err := p.parseCallableArgs(true)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.ParensClose); err != nil {
		return nil, err
	}

	return &ast.FunctionCall{Position: callPos, Callee: callee, Args: args}, nil
}

// parseCallableArgs parses a comma-separated argument list up to (but not
// consuming) the closing paren. When allowUnnamedSingleParam is true, a
// lone positional argument with no trailing comma closes the list early —
// the single-unnamed-parameter call shorthand (spec §4.5).
func (p *AstParser) parseCallableArgs(allowUnnamedSingleParam bool) (*ast.CallableArgs, *diagnostics.ParseError) {
	argsPos := p.cur.Position
	args := &ast.CallableArgs{Position: argsPos}

	for {
		if p.peek.Kind == token.ParensClose {
			break
		}
		if p.peek.Kind == token.Comma {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, err
			}
			continue
		}

		isNamed, arg, err := p.parseCallableArg()
		if err != nil {
			return nil, err
		}
		args.Args = append(args.Args, arg)

		if allowUnnamedSingleParam && !isNamed {
			break
		}
	}

	return args, nil
}

// parseCallableArg parses one `[name =] value` argument. A bare Name
// token immediately followed by `=` is a named argument; anything else is
// a positional value expression (spec §4.5's "" key for positional args).
func (p *AstParser) parseCallableArg() (bool, *ast.CallableArg, *diagnostics.ParseError) {
	isNamedArg := p.peek.Kind == token.Name && p.peekSecond().Kind == token.Assign

	argName := ""
	argPos := p.peek.Position

	if isNamedArg {
		nameTok, err := p.expect(token.Name)
		if err != nil {
			return false, nil, err
		}
		argName = nameTok.NameValue()
		argPos = nameTok.Position

		if _, err := p.expect(token.Assign); err != nil {
			return false, nil, err
		}
	}

	value, err := p.parseExpression(0)
	if err != nil {
		return false, nil, err
	}

	return isNamedArg, &ast.CallableArg{Position: argPos, Name: argName, Value: value}, nil
}

// parseNewInstance parses `new Name[<T,...>](args)` (spec §3, §4.7).
func (p *AstParser) parseNewInstance() (ast.Expression, *diagnostics.ParseError) {
	newupPos := p.cur.Position

	nameTok, err := p.expect(token.Name)
	if err != nil {
		return nil, err
	}
	className := &ast.Identifier{Position: nameTok.Position, Name: nameTok.NameValue()}

	var typeArgs []typesystem.Type
	if p.peek.Kind == token.OpLt {
		typeArgs, err = p.parseTypeArgsList()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.ParensOpen); err != nil {
		return nil, err
	}

	args, err := p.parseCallableArgs(false)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.ParensClose); err != nil {
		return nil, err
	}

	return &ast.NewInstance{Position: newupPos, ClassName: className, Args: args, TypeArgs: typeArgs}, nil
}
