package symbols

import (
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/instref"
	"github.com/Mechachleopteryx/saha/internal/position"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// PropertyDefinition describes one class property (spec §3).
type PropertyDefinition struct {
	Name       string
	Type       typesystem.Type
	Default    typesystem.Value
	IsStatic   bool
	Visibility Visibility
}

// MethodSignature is the structural shape of a behavior method: its
// parameter types (in declared order, by name) and return type. Two
// signatures are structurally equal when their parameter types and
// return type match (spec §4.7).
type MethodSignature struct {
	ParamOrder []string
	Params     map[string]typesystem.Type
	ReturnType typesystem.Type
}

// Equals reports structural equality between two method signatures,
// ignoring parameter names (spec §4.7: "signatures must match
// structurally (parameters and return type)").
func (s MethodSignature) Equals(other MethodSignature) bool {
	if len(s.ParamOrder) != len(other.ParamOrder) {
		return false
	}
	if !s.ReturnType.Equals(other.ReturnType) {
		return false
	}
	for i, name := range s.ParamOrder {
		a := s.Params[name]
		b := other.Params[other.ParamOrder[i]]
		if a == nil || b == nil || !a.Equals(b) {
			return false
		}
	}
	return true
}

// BehaviorDefinition is a named set of method signatures a class may
// declare it implements (spec §3, Behavior in the GLOSSARY).
type BehaviorDefinition struct {
	Name     string
	Position position.FilePosition
	Methods  map[string]MethodSignature
}

// ClassDefinition is the static description of a class (spec §3).
type ClassDefinition struct {
	SourceName           string
	FullyQualifiedName   string
	Position             position.FilePosition
	Properties           map[string]PropertyDefinition
	Implements           []string
	TypeParams           []string
	Methods              map[string]Callable
}

// CoreConstructorFn builds a host-native object instance (spec §4.7):
// List, Dict, and similar built-ins that have no userland class
// definition.
type CoreConstructorFn func(ref instref.InstRef, args map[string]typesystem.Value, typeArgs []typesystem.Type, aux map[string]typesystem.Value, pos position.FilePosition) (*Instance, *diagnostics.RuntimeError)
