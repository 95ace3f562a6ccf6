package parser

import (
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/symbols"
	"github.com/Mechachleopteryx/saha/internal/token"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// RootParser runs the declaration pass (spec §4.2): it walks the
// top-level grammar — constants, free functions, behaviors, classes —
// and produces a ParseTable, capturing every method/function body as a
// raw, unparsed token slice for the AST parser to pick up later.
// original_source/parser/src/lib.rs names this phase's counterpart
// root_parser, whose source file was not retained in this pack (only
// lib.rs's call site into it survives); RootParser's grammar is this
// rewrite's own declaration-syntax design over the token/keyword set
// spec §6 fixes, documented in DESIGN.md.
type RootParser struct {
	*tokenCursor
	table *ParseTable
}

// NewRootParser constructs a declaration-pass parser over a whole file's
// token stream.
func NewRootParser(tokens []token.Token) *RootParser {
	return &RootParser{tokenCursor: newTokenCursor(tokens), table: NewParseTable()}
}

// ParseDeclarations runs the declaration pass to completion and returns
// the resulting ParseTable.
func (p *RootParser) ParseDeclarations() (*ParseTable, *diagnostics.ParseError) {
	for p.peek.Kind != token.Eob {
		var err *diagnostics.ParseError
		switch p.peek.Kind {
		case token.KwConst:
			err = p.parseConstDeclaration()
		case token.KwFunction:
			err = p.parseFunctionDeclaration()
		case token.KwBehavior:
			err = p.parseBehaviorDeclaration()
		case token.KwClass:
			err = p.parseClassDeclaration()
		default:
			_, err = p.expect(token.KwConst, token.KwFunction, token.KwBehavior, token.KwClass)
		}
		if err != nil {
			return nil, err
		}
	}
	return p.table, nil
}

func (p *RootParser) parseConstDeclaration() *diagnostics.ParseError {
	if _, err := p.expect(token.KwConst); err != nil {
		return err
	}

	nameTok, err := p.expect(token.Name)
	if err != nil {
		return err
	}

	if _, err := p.expect(token.Assign); err != nil {
		return err
	}

	val, err := p.parseDeclaredLiteral()
	if err != nil {
		return err
	}

	if _, err := p.expect(token.EndStatement); err != nil {
		return err
	}

	p.table.Constants[nameTok.NameValue()] = val
	return nil
}

// parseDeclaredLiteral parses a bare literal value used at declaration
// time (const initializers, property defaults) — the declaration pass
// never runs the AST expression parser over these, since the body parser
// does not exist yet at root-parse time.
func (p *RootParser) parseDeclaredLiteral() (typesystem.Value, *diagnostics.ParseError) {
	tok, err := p.expect(token.StringValue, token.IntegerValue, token.FloatValue, token.BooleanValue)
	if err != nil {
		return typesystem.Value{}, err
	}
	switch tok.Kind {
	case token.StringValue:
		return typesystem.NewStr(tok.StringValueOf()), nil
	case token.IntegerValue:
		return typesystem.NewInt(tok.IntValue()), nil
	case token.FloatValue:
		return typesystem.NewFloat(tok.FloatValue()), nil
	default:
		return typesystem.NewBool(tok.BoolValue()), nil
	}
}

// parseTypeDeclaration parses a type annotation at declaration level,
// sharing the AST parser's type grammar over this parser's own cursor.
func (p *RootParser) parseTypeDeclaration(parseParamTypes bool) (typesystem.Type, *diagnostics.ParseError) {
	return (&AstParser{tokenCursor: p.tokenCursor}).parseTypeDeclaration(parseParamTypes)
}

// parseParamList parses `( PARAM (',' PARAM)* )`, PARAM = `NAME ' TYPE
// [ '=' LITERAL ]`, consistent with var declaration's `NAME ' TYPE`
// syntax (spec §4.3).
func (p *RootParser) parseParamList() (map[string]symbols.FunctionParameter, []string, *diagnostics.ParseError) {
	if _, err := p.expect(token.ParensOpen); err != nil {
		return nil, nil, err
	}

	params := make(map[string]symbols.FunctionParameter)
	var order []string

	for p.peek.Kind != token.ParensClose {
		nameTok, err := p.expect(token.Name)
		if err != nil {
			return nil, nil, err
		}
		if _, err := p.expect(token.Tick); err != nil {
			return nil, nil, err
		}
		paramType, err := p.parseTypeDeclaration(true)
		if err != nil {
			return nil, nil, err
		}

		def := typesystem.VoidValue
		if p.peek.Kind == token.Assign {
			if _, err := p.expect(token.Assign); err != nil {
				return nil, nil, err
			}
			def, err = p.parseDeclaredLiteral()
			if err != nil {
				return nil, nil, err
			}
		}

		params[nameTok.NameValue()] = symbols.FunctionParameter{Name: nameTok.NameValue(), Type: paramType, Default: def}
		order = append(order, nameTok.NameValue())

		if p.peek.Kind == token.Comma {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, nil, err
			}
		}
	}

	if _, err := p.expect(token.ParensClose); err != nil {
		return nil, nil, err
	}

	return params, order, nil
}

// parseOptionalReturnType parses an optional `: TYPE` suffix, defaulting
// to Void when absent.
func (p *RootParser) parseOptionalReturnType() (typesystem.Type, *diagnostics.ParseError) {
	if p.peek.Kind != token.Colon {
		return typesystem.TVoid, nil
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	return p.parseTypeDeclaration(true)
}

// captureBodyTokens consumes a balanced `{ ... }` block and returns the
// token slice strictly inside the braces, not including either brace
// (spec §4.2: "their delimited token slices are captured verbatim").
func (p *RootParser) captureBodyTokens() ([]token.Token, *diagnostics.ParseError) {
	if _, err := p.expect(token.CurlyOpen); err != nil {
		return nil, err
	}

	start := p.idx
	depth := 1
	for depth > 0 {
		if p.peek.Kind == token.Eob {
			return nil, diagnostics.NewUnexpectedTokenError(p.peek.Position, string(token.Eob), []string{string(token.CurlyClose)})
		}
		if p.peek.Kind == token.CurlyOpen {
			depth++
		}
		if p.peek.Kind == token.CurlyClose {
			depth--
			if depth == 0 {
				break
			}
		}
		p.advance()
	}
	end := p.idx

	if _, err := p.expect(token.CurlyClose); err != nil {
		return nil, err
	}

	return p.tokens[start:end], nil
}

func (p *RootParser) parseFunctionDeclaration() *diagnostics.ParseError {
	return p.parseFunctionDeclarationInto(p.table.Functions, symbols.Public, false)
}

// parseFunctionDeclarationInto parses `function NAME(PARAMS) [: TYPE]
// { BODY }` and inserts it under dest, keyed by source name — used for
// both free functions and class methods, which share this grammar.
func (p *RootParser) parseFunctionDeclarationInto(dest map[string]*FunctionDecl, vis symbols.Visibility, static bool) *diagnostics.ParseError {
	if _, err := p.expect(token.KwFunction); err != nil {
		return err
	}
	fnPos := p.cur.Position

	nameTok, err := p.expect(token.Name)
	if err != nil {
		return err
	}

	params, order, err := p.parseParamList()
	if err != nil {
		return err
	}

	retType, err := p.parseOptionalReturnType()
	if err != nil {
		return err
	}

	body, err := p.captureBodyTokens()
	if err != nil {
		return err
	}

	if _, exists := dest[nameTok.NameValue()]; exists {
		return diagnostics.NewParseError(nameTok.Position, diagnostics.ErrR005, nameTok.NameValue())
	}

	dest[nameTok.NameValue()] = &FunctionDecl{
		SourceName: nameTok.NameValue(),
		Name:       nameTok.NameValue(),
		Params:     params,
		ParamOrder: order,
		ReturnType: retType,
		BodyTokens: body,
		Visibility: vis,
		IsStatic:   static,
		Position:   fnPos,
	}
	return nil
}

// parseBehaviorDeclaration parses `behavior NAME { function NAME(PARAMS)
// [: TYPE] ; ... }` — a behavior's methods are signatures only, no body
// (spec §3: "a set of method signatures").
func (p *RootParser) parseBehaviorDeclaration() *diagnostics.ParseError {
	if _, err := p.expect(token.KwBehavior); err != nil {
		return err
	}
	behPos := p.cur.Position

	nameTok, err := p.expect(token.Name)
	if err != nil {
		return err
	}

	if _, err := p.expect(token.CurlyOpen); err != nil {
		return err
	}

	methods := make(map[string]symbols.MethodSignature)
	for p.peek.Kind != token.CurlyClose {
		if _, err := p.expect(token.KwFunction); err != nil {
			return err
		}
		mNameTok, err := p.expect(token.Name)
		if err != nil {
			return err
		}
		params, order, err := p.parseParamList()
		if err != nil {
			return err
		}
		retType, err := p.parseOptionalReturnType()
		if err != nil {
			return err
		}
		if _, err := p.expect(token.EndStatement); err != nil {
			return err
		}

		paramTypes := make(map[string]typesystem.Type, len(params))
		for n, prm := range params {
			paramTypes[n] = prm.Type
		}
		methods[mNameTok.NameValue()] = symbols.MethodSignature{ParamOrder: order, Params: paramTypes, ReturnType: retType}
	}

	if _, err := p.expect(token.CurlyClose); err != nil {
		return err
	}

	p.table.Behaviors[nameTok.NameValue()] = &symbols.BehaviorDefinition{
		Name: nameTok.NameValue(), Position: behPos, Methods: methods,
	}
	return nil
}

// parseClassDeclaration parses `class NAME [implements B1, B2, ...] {
// MEMBER* }`, where each member is a property (`[pub] [static] NAME '
// TYPE [ = LITERAL ] ;`) or method (`[pub] [static] function ...`)
// (spec §3, §4.2).
func (p *RootParser) parseClassDeclaration() *diagnostics.ParseError {
	if _, err := p.expect(token.KwClass); err != nil {
		return err
	}
	classPos := p.cur.Position

	nameTok, err := p.expect(token.Name)
	if err != nil {
		return err
	}

	var implements []string
	if p.peek.Kind == token.KwImplements {
		if _, err := p.expect(token.KwImplements); err != nil {
			return err
		}
		for {
			bNameTok, err := p.expect(token.Name)
			if err != nil {
				return err
			}
			implements = append(implements, bNameTok.NameValue())
			if p.peek.Kind != token.Comma {
				break
			}
			if _, err := p.expect(token.Comma); err != nil {
				return err
			}
		}
	}

	if _, err := p.expect(token.CurlyOpen); err != nil {
		return err
	}

	properties := make(map[string]symbols.PropertyDefinition)
	methods := make(map[string]*FunctionDecl)

	for p.peek.Kind != token.CurlyClose {
		vis := symbols.Private
		if p.peek.Kind == token.KwPub {
			if _, err := p.expect(token.KwPub); err != nil {
				return err
			}
			vis = symbols.Public
		}

		static := false
		if p.peek.Kind == token.KwStatic {
			if _, err := p.expect(token.KwStatic); err != nil {
				return err
			}
			static = true
		}

		if p.peek.Kind == token.KwFunction {
			if err := p.parseFunctionDeclarationInto(methods, vis, static); err != nil {
				return err
			}
			continue
		}

		propNameTok, err := p.expect(token.Name)
		if err != nil {
			return err
		}
		if _, err := p.expect(token.Tick); err != nil {
			return err
		}
		propType, err := p.parseTypeDeclaration(true)
		if err != nil {
			return err
		}

		def := typesystem.VoidValue
		if p.peek.Kind == token.Assign {
			if _, err := p.expect(token.Assign); err != nil {
				return err
			}
			def, err = p.parseDeclaredLiteral()
			if err != nil {
				return err
			}
		}
		if _, err := p.expect(token.EndStatement); err != nil {
			return err
		}

		properties[propNameTok.NameValue()] = symbols.PropertyDefinition{
			Name: propNameTok.NameValue(), Type: propType, Default: def, IsStatic: static, Visibility: vis,
		}
	}

	if _, err := p.expect(token.CurlyClose); err != nil {
		return err
	}

	typeParams := collectTypeParamNames(properties, methods)

	p.table.Classes[nameTok.NameValue()] = &ClassDecl{
		SourceName: nameTok.NameValue(),
		Name:       nameTok.NameValue(),
		Implements: implements,
		TypeParams: typeParams,
		Properties: properties,
		Methods:    methods,
		Position:   classPos,
	}
	return nil
}

// collectTypeParamNames scans a class's property and parameter/return
// types for TypeParam occurrences, producing the class's declared
// generic-parameter set (spec §3, §9: "TypeParam(c) carries a single
// character").
func collectTypeParamNames(properties map[string]symbols.PropertyDefinition, methods map[string]*FunctionDecl) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(t typesystem.Type) {
		if tp, ok := t.(typesystem.TypeParam); ok {
			name := string(tp.Char)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	for _, prop := range properties {
		add(prop.Type)
	}
	for _, m := range methods {
		for _, prm := range m.Params {
			add(prm.Type)
		}
		add(m.ReturnType)
	}
	return names
}
