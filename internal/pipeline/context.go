package pipeline

import (
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/evaluator"
	"github.com/Mechachleopteryx/saha/internal/parser"
	"github.com/Mechachleopteryx/saha/internal/symbols"
	"github.com/Mechachleopteryx/saha/internal/token"
)

// PipelineContext carries state between stages: the input token stream,
// the file path it came from (for diagnostics), the declaration table
// once the root parser has run, the symbol table every stage populates,
// and the first error any stage records.
type PipelineContext struct {
	FilePath string
	Tokens   []token.Token

	Table  *parser.ParseTable
	Symbol *symbols.SymbolTable
	Eval   evaluator.Evaluator

	Err diagnostics.Reportable
}

// NewContext builds a fresh context for one source file's token stream.
// The caller supplies the evaluator (an external collaborator per
// spec §1) and the symbol table every stage writes into.
func NewContext(filePath string, tokens []token.Token, st *symbols.SymbolTable, eval evaluator.Evaluator) *PipelineContext {
	return &PipelineContext{FilePath: filePath, Tokens: tokens, Symbol: st, Eval: eval}
}

// DeclarationStage runs the root/declaration parser (spec §4.2), storing
// the resulting ParseTable on the context.
type DeclarationStage struct{}

func (DeclarationStage) Process(ctx *PipelineContext) *PipelineContext {
	table, err := parser.NewRootParser(ctx.Tokens).ParseDeclarations()
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Table = table
	return ctx
}

// PopulateStage parses every declared body and installs constants,
// functions, behaviors, and classes into the symbol table (spec §4.2's
// final data-flow step).
type PopulateStage struct{}

func (PopulateStage) Process(ctx *PipelineContext) *PipelineContext {
	symbols.RegisterCoreCollections(ctx.Symbol)

	if err := parser.PopulateSymbolTable(ctx.Table, ctx.Symbol, ctx.Eval); err != nil {
		ctx.Err = err
		return ctx
	}
	return ctx
}

// Run builds and executes the standard Saha pipeline (declaration pass,
// then population) over one file's tokens, returning the populated
// symbol table or the first error encountered.
func Run(filePath string, tokens []token.Token, eval evaluator.Evaluator) (*symbols.SymbolTable, diagnostics.Reportable) {
	st := symbols.NewSymbolTable()
	ctx := NewContext(filePath, tokens, st, eval)

	p := New(DeclarationStage{}, PopulateStage{})
	ctx = p.Run(ctx)

	if ctx.Err != nil {
		return nil, ctx.Err
	}
	return ctx.Symbol, nil
}
