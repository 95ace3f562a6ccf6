// Package typesystem implements the Saha type model (spec §3): the closed
// sum of primitive tags, the opaque object handle, named/generic classes,
// and single-character type parameters, plus the tagged Value that carries
// one of those types around at runtime.
package typesystem

import "strings"

// Type is the interface every Saha type variant implements. Type equality
// is structural (spec §3): two Types are Equal if their variant and
// payload match recursively.
type Type interface {
	// String renders the type for diagnostics, e.g. "int", "List<str>", "T".
	String() string
	// Equals reports structural equality against another Type.
	Equals(other Type) bool
	isType()
}

// Primitive is one of the five fixed primitive tags.
type Primitive uint8

const (
	Str Primitive = iota
	Int
	Float
	Bool
	Void
)

func (p Primitive) String() string {
	switch p {
	case Str:
		return "str"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Void:
		return "void"
	default:
		return "unknown"
	}
}

func (p Primitive) Equals(other Type) bool {
	o, ok := other.(Primitive)
	return ok && o == p
}

func (Primitive) isType() {}

// TStr, TInt, TFloat, TBool, TVoid are the canonical Primitive values,
// exported so call sites read like the variant names in spec.md.
var (
	TStr   Type = Str
	TInt   Type = Int
	TFloat Type = Float
	TBool  Type = Bool
	TVoid  Type = Void
)

// Obj is the untyped, runtime-only object handle. It never appears in
// source-level type annotations; it is the type the evaluator assigns to
// a freshly constructed instance before return-type conformance narrows
// it to a Name.
type Obj struct{}

func (Obj) String() string { return "obj" }
func (Obj) Equals(other Type) bool {
	_, ok := other.(Obj)
	return ok
}
func (Obj) isType() {}

// TObj is the canonical Obj value.
var TObj Type = Obj{}

// Name is a declared class or behavior, optionally parameterized over
// other types: Name("List", [Name("int", nil)]) is List<int>.
type Name struct {
	Value     string
	TypeArgs  []Type
}

func (n Name) String() string {
	if len(n.TypeArgs) == 0 {
		return n.Value
	}
	parts := make([]string, len(n.TypeArgs))
	for i, t := range n.TypeArgs {
		parts[i] = t.String()
	}
	return n.Value + "<" + strings.Join(parts, ", ") + ">"
}

func (n Name) Equals(other Type) bool {
	o, ok := other.(Name)
	if !ok || o.Value != n.Value || len(o.TypeArgs) != len(n.TypeArgs) {
		return false
	}
	for i := range n.TypeArgs {
		if !n.TypeArgs[i].Equals(o.TypeArgs[i]) {
			return false
		}
	}
	return true
}

func (Name) isType() {}

// NewName builds a Name type with the given type arguments.
func NewName(name string, args ...Type) Name {
	return Name{Value: name, TypeArgs: args}
}

// TypeParam is a single-uppercase-letter placeholder standing for a
// yet-unbound type inside a generic declaration (spec §3, §9).
type TypeParam struct {
	Char byte
}

func (tp TypeParam) String() string { return string(tp.Char) }

func (tp TypeParam) Equals(other Type) bool {
	o, ok := other.(TypeParam)
	return ok && o.Char == tp.Char
}

func (TypeParam) isType() {}

// IsValidTypeParamName reports whether name is a legal type-parameter
// identifier: exactly one uppercase ASCII letter.
func IsValidTypeParamName(name string) bool {
	if len(name) != 1 {
		return false
	}
	c := name[0]
	return c >= 'A' && c <= 'Z'
}

// NewTypeParam builds a TypeParam from a single-letter name. Panics if
// name is not a valid type-parameter name; callers must validate with
// IsValidTypeParamName first (parse-time invariant, spec §9).
func NewTypeParam(name string) TypeParam {
	if !IsValidTypeParamName(name) {
		panic("typesystem: invalid type parameter name " + name)
	}
	return TypeParam{Char: name[0]}
}
