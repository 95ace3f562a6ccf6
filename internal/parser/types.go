package parser

import (
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/token"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// parseTypeDeclaration parses `TYPE = 'str' | 'int' | 'float' | 'bool' |
// Name [ '<' TYPE (',' TYPE)* '>' ]` (spec §4.3). When parseParamTypes is
// true and the name is a single uppercase letter, it resolves to a
// TypeParam instead of a zero-arg Name — the flag original_source calls
// parse_param_types, true inside declarations where type parameters are
// in scope, false at `new` call-site type arguments.
func (p *AstParser) parseTypeDeclaration(parseParamTypes bool) (typesystem.Type, *diagnostics.ParseError) {
	tok, err := p.expect(token.Name, token.TypeString, token.TypeInteger, token.TypeFloat, token.TypeBoolean)
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case token.TypeBoolean:
		return typesystem.TBool, nil
	case token.TypeString:
		return typesystem.TStr, nil
	case token.TypeInteger:
		return typesystem.TInt, nil
	case token.TypeFloat:
		return typesystem.TFloat, nil
	}

	name := tok.NameValue()

	if parseParamTypes && typesystem.IsValidTypeParamName(name) {
		return typesystem.NewTypeParam(name), nil
	}

	if p.peek.Kind != token.OpLt {
		return typesystem.NewName(name), nil
	}

	if _, err := p.expect(token.OpLt); err != nil {
		return nil, err
	}

	var typeParams []typesystem.Type
	for {
		t, err := p.parseTypeDeclaration(parseParamTypes)
		if err != nil {
			return nil, err
		}
		typeParams = append(typeParams, t)

		if p.peek.Kind == token.Comma {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, err
			}
			continue
		}
		break
	}

	if _, err := p.expect(token.OpGt); err != nil {
		return nil, err
	}

	return typesystem.NewName(name, typeParams...), nil
}

// parseTypeArgsList parses a call-site `<T, ...>` type argument list, used
// by identifier path segments (e.g. `List<int>::empty()`) and `new`
// expressions. Call-site type arguments are concrete types, never
// TypeParam (original_source's parse_ident_path/parse_new_instance both
// call the generic-parsing path with parse_param_types = false).
func (p *AstParser) parseTypeArgsList() ([]typesystem.Type, *diagnostics.ParseError) {
	if _, err := p.expect(token.OpLt); err != nil {
		return nil, err
	}

	var typeArgs []typesystem.Type
	for {
		t, err := p.parseTypeDeclaration(false)
		if err != nil {
			return nil, err
		}
		typeArgs = append(typeArgs, t)

		if p.peek.Kind == token.Comma {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, err
			}
			continue
		}
		break
	}

	if _, err := p.expect(token.OpGt); err != nil {
		return nil, err
	}

	return typeArgs, nil
}
