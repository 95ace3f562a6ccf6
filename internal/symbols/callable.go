// Package symbols implements the process-wide symbol table and instance
// store (spec §4.4), plus the callable dispatch and argument-validation
// protocol (spec §4.5) the evaluator uses to run user or core
// functions/methods with type-checked arguments and return values.
package symbols

import (
	"github.com/Mechachleopteryx/saha/internal/ast"
	"github.com/Mechachleopteryx/saha/internal/config"
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/evaluator"
	"github.com/Mechachleopteryx/saha/internal/instref"
	"github.com/Mechachleopteryx/saha/internal/position"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// Visibility is a callable or property's exposure: public members are
// reachable from outside the declaring class, private ones are not.
type Visibility int

const (
	Public Visibility = iota
	Private
)

// FunctionParameter is a single declared parameter (spec §3). A
// parameter without a default has Default.Kind = Void — callers must not
// construct a parameter whose semantic default is literally Void
// (spec §9 design note).
type FunctionParameter struct {
	Name    string
	Type    typesystem.Type
	Default typesystem.Value
}

// HasDefault reports whether p supplies a value when its argument is
// omitted at a call site.
func (p FunctionParameter) HasDefault() bool {
	return !p.Default.IsVoid()
}

// Callable is the sealed-sum dispatch interface every function and method
// implements: a trait-object callable modeled as a closed Go interface
// with two concrete variants, UserFunction and CoreFunction
// (spec §4.5, §9 design note — "pattern matching instead of downcasting").
type Callable interface {
	// Call validates args, runs the body, enforces the return type, and
	// returns the resulting Value or a RuntimeError.
	Call(args map[string]typesystem.Value, returnTypeOverride typesystem.Type, typeBindings map[byte]typesystem.Type, callPos position.FilePosition) (typesystem.Value, *diagnostics.RuntimeError)

	Parameters() map[string]FunctionParameter
	ReturnType() typesystem.Type
	// Name is the canonical, globally-unique name this callable is keyed
	// under in the symbol table.
	Name() string
	// SourceName is the name as it appears in source, which may differ
	// from Name for generated/qualified entries.
	SourceName() string
	IsStatic() bool
	IsPublic() bool
}

// instanceLookup is the minimal view dispatch needs into the symbol
// table's instance store: resolving an Obj-kinded return value to its
// implemented-behavior/class-name set (spec §4.5).
type instanceLookup interface {
	InstanceIdentity(ref instref.InstRef) (implements []string, fqClassName string, namedType typesystem.Type, ok bool)
}

// CoreFunction is a callable whose body is host-native Go, not user
// source (spec §4.5, §9 — "CoreFunction holds a function pointer").
type CoreFunction struct {
	FnName     string
	Params     map[string]FunctionParameter
	RetType    typesystem.Type
	Fn         func(args map[string]typesystem.Value) (typesystem.Value, *diagnostics.RuntimeError)
	Public     bool
	Static     bool
	Lookup     instanceLookup
}

func (c *CoreFunction) Parameters() map[string]FunctionParameter { return c.Params }
func (c *CoreFunction) ReturnType() typesystem.Type              { return c.RetType }
func (c *CoreFunction) Name() string                             { return c.FnName }
func (c *CoreFunction) SourceName() string                       { return c.FnName }
func (c *CoreFunction) IsStatic() bool                            { return c.Static }
func (c *CoreFunction) IsPublic() bool                            { return c.Public }

func (c *CoreFunction) Call(args map[string]typesystem.Value, returnTypeOverride typesystem.Type, typeBindings map[byte]typesystem.Type, callPos position.FilePosition) (typesystem.Value, *diagnostics.RuntimeError) {
	validated, err := ValidateArgs(c.Params, args, c.Name(), callPos)
	if err != nil {
		return typesystem.Value{}, err
	}

	result, err := c.Fn(validated)
	if err != nil {
		return typesystem.Value{}, err
	}

	retType := c.RetType
	if returnTypeOverride != nil {
		retType = returnTypeOverride
	}

	return result, enforceReturnType(c.Name(), result, retType, c.Lookup, callPos)
}

// UserFunction is a callable whose body is a parsed Saha AST, run through
// the evaluator contract (spec §4.5).
type UserFunction struct {
	SrcName    string
	FnName     string
	Params     map[string]FunctionParameter
	RetType    typesystem.Type
	Body       *ast.Ast
	Vis        Visibility
	Static     bool
	Eval       evaluator.Evaluator
	Lookup     instanceLookup
}

func (f *UserFunction) Parameters() map[string]FunctionParameter { return f.Params }
func (f *UserFunction) ReturnType() typesystem.Type              { return f.RetType }
func (f *UserFunction) Name() string                             { return f.FnName }
func (f *UserFunction) SourceName() string                       { return f.SrcName }
func (f *UserFunction) IsStatic() bool                            { return f.Static }
func (f *UserFunction) IsPublic() bool                            { return f.Vis == Public }

func (f *UserFunction) Call(args map[string]typesystem.Value, returnTypeOverride typesystem.Type, typeBindings map[byte]typesystem.Type, callPos position.FilePosition) (typesystem.Value, *diagnostics.RuntimeError) {
	validated, err := ValidateArgs(f.Params, args, f.Name(), callPos)
	if err != nil {
		return typesystem.Value{}, err
	}

	result, evalErr := f.Eval.Eval(f.Body, validated)
	if evalErr != nil {
		return typesystem.Value{}, evalErr
	}

	retType := f.RetType
	if returnTypeOverride != nil {
		retType = returnTypeOverride
	}

	return result, enforceReturnType(f.Name(), result, retType, f.Lookup, callPos)
}

// ValidateArgs applies spec §4.5's argument-validation protocol before a
// callable's body runs, producing a fully-named argument mapping
// (spec §3 invariant: "Parameter validation always produces a fully-named
// argument mapping before the callable body sees it").
//
// Rules, in order:
//  1. A callable with a single declared parameter (ignoring `self`)
//     accepts one positional argument under the "" key and rewrites it to
//     the parameter's name.
//  2. Otherwise every declared parameter must have either a matching
//     named argument or a non-Void default.
//  3. Any type mismatch between a supplied argument and its declared
//     parameter type fails validation.
func ValidateArgs(params map[string]FunctionParameter, args map[string]typesystem.Value, callableName string, callPos position.FilePosition) (map[string]typesystem.Value, *diagnostics.RuntimeError) {
	effectiveParamCount := len(params)
	if _, hasSelf := params[config.SelfParamName]; hasSelf {
		effectiveParamCount--
	}

	if effectiveParamCount == 1 {
		return validateSingleParamArgs(params, args, callPos)
	}

	out := make(map[string]typesystem.Value, len(args))
	for name, v := range args {
		out[name] = v
	}

	for name, param := range params {
		arg, present := out[name]
		if !present {
			if !param.HasDefault() {
				return nil, diagnostics.NewRuntimeError(callPos, diagnostics.ErrR001, name)
			}
			out[name] = param.Default
			continue
		}

		if !typesEqualForArg(param.Type, arg.Kind) {
			return nil, diagnostics.NewRuntimeError(callPos, diagnostics.ErrR002, name, param.Type.String(), arg.Kind.String())
		}
	}

	return out, nil
}

func validateSingleParamArgs(params map[string]FunctionParameter, args map[string]typesystem.Value, callPos position.FilePosition) (map[string]typesystem.Value, *diagnostics.RuntimeError) {
	// validationArgs excludes `self` — with self present the arg count
	// would otherwise vary run to run depending on map iteration order.
	validationArgs := make(map[string]typesystem.Value, len(args))
	for name, v := range args {
		validationArgs[name] = v
	}
	delete(validationArgs, config.SelfParamName)

	var paramName string
	var param FunctionParameter
	for name, p := range params {
		if name == config.SelfParamName {
			continue
		}
		paramName, param = name, p
		break
	}

	if len(validationArgs) == 0 {
		if !param.HasDefault() {
			return nil, diagnostics.NewRuntimeError(callPos, diagnostics.ErrR001, paramName)
		}
	}

	validated := make(map[string]typesystem.Value, len(args)+1)
	for name, v := range args {
		validated[name] = v
	}

	if len(validationArgs) == 0 {
		validated[paramName] = param.Default
		return validated, nil
	}

	var argKey string
	var argValue typesystem.Value
	for k, v := range validationArgs {
		argKey, argValue = k, v
		break
	}

	if !typesEqualForArg(param.Type, argValue.Kind) {
		return nil, diagnostics.NewRuntimeError(callPos, diagnostics.ErrR002, paramName, param.Type.String(), argValue.Kind.String())
	}

	if argKey == config.UnnamedArgKey {
		delete(validated, config.UnnamedArgKey)
		validated[paramName] = argValue
	}

	return validated, nil
}

// typesEqualForArg compares a declared parameter type against an
// argument's runtime Kind. Obj-kinded arguments conform to any Name type
// here; the stricter instance-vs-behavior check happens only on return
// values (spec §4.5 — validation vs. return-type enforcement are
// deliberately asymmetric: an object argument's concrete class was
// already fixed at construction time).
func typesEqualForArg(declared, actual typesystem.Type) bool {
	if declared.Equals(actual) {
		return true
	}
	if _, isNameDecl := declared.(typesystem.Name); isNameDecl {
		if _, isObj := actual.(typesystem.Obj); isObj {
			return true
		}
	}
	return false
}

// enforceReturnType applies spec §4.5's return-type conformance check
// after a callable body produces a value.
func enforceReturnType(callableName string, result typesystem.Value, retType typesystem.Type, lookup instanceLookup, callPos position.FilePosition) *diagnostics.RuntimeError {
	if _, isObjResult := result.Kind.(typesystem.Obj); isObjResult {
		named, ok := retType.(typesystem.Name)
		if !ok {
			return diagnostics.NewRuntimeError(callPos, diagnostics.ErrR003, callableName, retType.String(), result.Kind.String())
		}

		if lookup == nil {
			return diagnostics.NewRuntimeError(callPos, diagnostics.ErrR003, callableName, retType.String(), result.Kind.String())
		}

		implements, fqName, namedType, found := lookup.InstanceIdentity(result.Obj)
		if !found {
			return diagnostics.NewRuntimeError(callPos, diagnostics.ErrR003, callableName, retType.String(), result.Kind.String())
		}

		// Returning the concrete class itself requires exact conformance,
		// generic type arguments included; returning it through a behavior
		// it implements (spec §8 scenario 5) only requires the name match —
		// a behavior carries no type parameters of its own to check.
		conforms := fqName == named.Value && namedType.Equals(named)
		if !conforms {
			for _, b := range implements {
				if b == named.Value {
					conforms = true
					break
				}
			}
		}
		if !conforms {
			return diagnostics.NewRuntimeError(callPos, diagnostics.ErrR003, callableName, retType.String(), fqName)
		}
		return nil
	}

	if !result.Kind.Equals(retType) {
		return diagnostics.NewRuntimeError(callPos, diagnostics.ErrR003, callableName, retType.String(), result.Kind.String())
	}
	return nil
}
