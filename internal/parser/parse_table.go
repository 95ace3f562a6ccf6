package parser

import (
	"github.com/Mechachleopteryx/saha/internal/position"
	"github.com/Mechachleopteryx/saha/internal/symbols"
	"github.com/Mechachleopteryx/saha/internal/token"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// ParseTable is the declaration pass's product (spec §4.2, §9): every
// top-level name bound to its declaration, with method and function
// bodies preserved as unparsed token slices rather than ASTs. Deferring
// body parsing keeps forward references free — a function can call
// another declared later in the same file.
type ParseTable struct {
	Constants map[string]typesystem.Value
	Functions map[string]*FunctionDecl
	Behaviors map[string]*symbols.BehaviorDefinition
	Classes   map[string]*ClassDecl
}

// NewParseTable returns an empty table ready for a RootParser to fill.
func NewParseTable() *ParseTable {
	return &ParseTable{
		Constants: make(map[string]typesystem.Value),
		Functions: make(map[string]*FunctionDecl),
		Behaviors: make(map[string]*symbols.BehaviorDefinition),
		Classes:   make(map[string]*ClassDecl),
	}
}

// FunctionDecl is a declared function or method whose body has not yet
// been parsed into an AST (spec §4.2: "record source name, canonical
// name, parameter definitions, return type, body-token slice, visibility,
// static flag").
type FunctionDecl struct {
	SourceName string
	Name       string
	Params     map[string]symbols.FunctionParameter
	ParamOrder []string
	ReturnType typesystem.Type
	BodyTokens []token.Token
	Visibility symbols.Visibility
	IsStatic   bool
	Position   position.FilePosition
}

// Signature reduces a FunctionDecl to the structural shape behavior
// conformance checking compares against (spec §4.7).
func (f *FunctionDecl) Signature() symbols.MethodSignature {
	params := make(map[string]typesystem.Type, len(f.Params))
	for name, p := range f.Params {
		params[name] = p.Type
	}
	return symbols.MethodSignature{ParamOrder: f.ParamOrder, Params: params, ReturnType: f.ReturnType}
}

// ClassDecl is a declared class whose method bodies have not yet been
// parsed into ASTs (spec §4.2, §3).
type ClassDecl struct {
	SourceName string
	Name       string
	Implements []string
	TypeParams []string
	Properties map[string]symbols.PropertyDefinition
	Methods    map[string]*FunctionDecl
	Position   position.FilePosition
}
