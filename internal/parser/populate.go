package parser

import (
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/evaluator"
	"github.com/Mechachleopteryx/saha/internal/symbols"
)

// asParseError lifts a RuntimeError produced by a symbol-table insertion
// (e.g. a duplicate name) into a ParseError, since every failure during
// declaration-table population is reported as a grammar/declaration-table
// violation (spec §4.2), not a runtime failure.
func asParseError(err *diagnostics.RuntimeError) *diagnostics.ParseError {
	if err == nil {
		return nil
	}
	return diagnostics.NewParseErrorf(err.Position(), err.Code(), err.Message())
}

// PopulateSymbolTable walks a ParseTable and fills a SymbolTable with its
// constants, functions, behaviors, and classes — parsing each declared
// body's token slice into an AST along the way (spec §4.2's "data flow:
// ... declaration table ... AST parser (per body) → symbol table
// population"). Grounded on original_source/parser/src/lib.rs's
// populate_constants/populate_functions/populate_behaviors/
// populate_classes/populate_global_symbol_table, in that exact order.
func PopulateSymbolTable(table *ParseTable, st *symbols.SymbolTable, eval evaluator.Evaluator) *diagnostics.ParseError {
	st.SetConstants(table.Constants)

	for _, fn := range table.Functions {
		callable, err := buildUserFunction(fn, st, eval)
		if err != nil {
			return err
		}
		if rtErr := st.AddFunction(callable.Name(), callable); rtErr != nil {
			return asParseError(rtErr)
		}
	}

	for _, beh := range table.Behaviors {
		if rtErr := st.AddBehavior(beh); rtErr != nil {
			return asParseError(rtErr)
		}
	}

	for _, class := range table.Classes {
		if err := populateClass(class, table, st, eval); err != nil {
			return err
		}
	}

	return nil
}

// buildUserFunction runs the AST parser over fn's body tokens and wraps
// the result as a symbols.UserFunction ready for symbol-table insertion.
// st satisfies symbols' unexported instanceLookup interface, used by
// return-type enforcement to resolve Obj-kinded results (spec §4.5).
func buildUserFunction(fn *FunctionDecl, st *symbols.SymbolTable, eval evaluator.Evaluator) (*symbols.UserFunction, *diagnostics.ParseError) {
	body, err := NewAstParser(fn.BodyTokens).ParseBody()
	if err != nil {
		return nil, err
	}

	return &symbols.UserFunction{
		SrcName: fn.SourceName,
		FnName:  fn.Name,
		Params:  fn.Params,
		RetType: fn.ReturnType,
		Body:    body,
		Vis:     fn.Visibility,
		Static:  fn.IsStatic,
		Eval:    eval,
		Lookup:  st,
	}, nil
}

// populateClass validates the class's behavior conformance, parses every
// method body, and registers the class and its methods with st
// (spec §4.7's class-validation algorithm and create_object_instance
// dispatch contract).
func populateClass(class *ClassDecl, table *ParseTable, st *symbols.SymbolTable, eval evaluator.Evaluator) *diagnostics.ParseError {
	if err := validateClassImplements(class, table.Behaviors); err != nil {
		return err
	}

	methods := make(map[string]symbols.Callable, len(class.Methods))
	for name, m := range class.Methods {
		callable, err := buildUserFunction(m, st, eval)
		if err != nil {
			return err
		}
		methods[name] = callable
	}

	def := &symbols.ClassDefinition{
		SourceName:         class.SourceName,
		FullyQualifiedName: class.Name,
		Position:           class.Position,
		Properties:         class.Properties,
		Implements:         class.Implements,
		TypeParams:         class.TypeParams,
		Methods:            methods,
	}

	if rtErr := st.AddClass(def); rtErr != nil {
		return asParseError(rtErr)
	}

	for name, m := range methods {
		if rtErr := st.AddMethod(class.Name, name, m); rtErr != nil {
			return asParseError(rtErr)
		}
	}

	return nil
}

// validateClassImplements checks that every behavior a class declares in
// its implements list exists, that every one of its method signatures is
// present on the class, and that the class's signature matches
// structurally (spec §4.7). Grounded on
// original_source/parser/src/lib.rs's validate_class_implements.
func validateClassImplements(class *ClassDecl, behaviors map[string]*symbols.BehaviorDefinition) *diagnostics.ParseError {
	for _, behName := range class.Implements {
		beh, ok := behaviors[behName]
		if !ok {
			return diagnostics.NewParseError(class.Position, diagnostics.ErrP002, behName)
		}

		for methodName, sig := range beh.Methods {
			classMethod, found := class.Methods[methodName]
			if !found {
				return diagnostics.NewParseError(class.Position, diagnostics.ErrP004, methodName, behName)
			}
			if !classMethod.Signature().Equals(sig) {
				return diagnostics.NewParseError(class.Position, diagnostics.ErrP004, methodName, behName)
			}
		}
	}
	return nil
}
