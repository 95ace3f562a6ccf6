package symbols

import (
	"strconv"

	"github.com/Mechachleopteryx/saha/internal/config"
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// ValueMethodFn is a method bound to a non-object value (spec §4.6): it
// takes the receiving value plus already-validated arguments and returns a
// result or a RuntimeError, the same shape as CoreFunction's body but keyed
// by receiver kind instead of class name.
type ValueMethodFn func(caller typesystem.Value, args map[string]typesystem.Value) (typesystem.Value, *diagnostics.RuntimeError)

// valueMethodEntry pairs a bound method's parameter list with its
// implementation, mirroring the original's
// HashMap<String, (SahaFunctionParamDefs, ValueMethodFn)>.
type valueMethodEntry struct {
	Params map[string]FunctionParameter
	Fn     ValueMethodFn
}

// StrMethods returns the methods bound to `str` values. Saha's str has none
// (spec §4.6, grounded on get_str_methods returning an empty map).
func StrMethods() map[string]valueMethodEntry {
	return map[string]valueMethodEntry{}
}

// IntMethods returns the methods bound to `int` values: toString and
// toFloat (spec §4.6).
func IntMethods() map[string]valueMethodEntry {
	return map[string]valueMethodEntry{
		config.ToStringMethodName: {Params: map[string]FunctionParameter{}, Fn: intToString},
		config.ToFloatMethodName:  {Params: map[string]FunctionParameter{}, Fn: intToFloat},
	}
}

// FloatMethods returns the methods bound to `float` values: toString
// (spec §4.6).
func FloatMethods() map[string]valueMethodEntry {
	return map[string]valueMethodEntry{
		config.ToStringMethodName: {Params: map[string]FunctionParameter{}, Fn: floatToString},
	}
}

func intToString(caller typesystem.Value, _ map[string]typesystem.Value) (typesystem.Value, *diagnostics.RuntimeError) {
	return typesystem.NewStr(strconv.FormatInt(caller.Int, 10)), nil
}

func intToFloat(caller typesystem.Value, _ map[string]typesystem.Value) (typesystem.Value, *diagnostics.RuntimeError) {
	return typesystem.NewFloat(float64(caller.Int)), nil
}

func floatToString(caller typesystem.Value, _ map[string]typesystem.Value) (typesystem.Value, *diagnostics.RuntimeError) {
	return typesystem.NewStr(strconv.FormatFloat(caller.Float, 'g', -1, 64)), nil
}

// LookupValueMethod resolves a method bound to a primitive-kinded value by
// receiver kind and method name (spec §4.6). Object-kinded receivers are
// not handled here; their methods come from ClassDefinition.Methods.
func LookupValueMethod(kind typesystem.Type, name string) (ValueMethodFn, map[string]FunctionParameter, bool) {
	var table map[string]valueMethodEntry
	switch {
	case kind.Equals(typesystem.TStr):
		table = StrMethods()
	case kind.Equals(typesystem.TInt):
		table = IntMethods()
	case kind.Equals(typesystem.TFloat):
		table = FloatMethods()
	default:
		return nil, nil, false
	}

	entry, ok := table[name]
	if !ok {
		return nil, nil, false
	}
	return entry.Fn, entry.Params, true
}
