package typesystem

import (
	"fmt"

	"github.com/Mechachleopteryx/saha/internal/instref"
)

// Value is a tagged union carrying exactly one meaningful payload for its
// Kind. Void is the uninitialized/absent value (spec §3, §9 — a
// Void-kinded default means "no default").
type Value struct {
	Kind  Type
	Str   string
	Int   int64
	Float float64
	Bool  bool
	Obj   instref.InstRef
}

// VoidValue is the canonical absent value.
var VoidValue = Value{Kind: TVoid}

func NewStr(v string) Value   { return Value{Kind: TStr, Str: v} }
func NewInt(v int64) Value    { return Value{Kind: TInt, Int: v} }
func NewFloat(v float64) Value { return Value{Kind: TFloat, Float: v} }
func NewBool(v bool) Value    { return Value{Kind: TBool, Bool: v} }

// NewObj builds a Value holding an object handle. Its Kind is the untyped
// Obj marker until return-type conformance or an assignment site narrows
// it to a concrete Name.
func NewObj(ref instref.InstRef) Value {
	return Value{Kind: TObj, Obj: ref}
}

// NewObjTyped builds an object Value already tagged with its resolved
// class/behavior Name, used once an instance's concrete type is known.
func NewObjTyped(ref instref.InstRef, named Name) Value {
	return Value{Kind: named, Obj: ref}
}

// IsVoid reports whether v carries no meaningful payload.
func (v Value) IsVoid() bool {
	return v.Kind != nil && v.Kind.Equals(TVoid)
}

// String renders v for diagnostics; it is not the Saha `toString` method
// (spec §4.6), only a debugging aid.
func (v Value) String() string {
	switch {
	case v.Kind == nil:
		return "<untyped>"
	case v.Kind.Equals(TStr):
		return v.Str
	case v.Kind.Equals(TInt):
		return fmt.Sprintf("%d", v.Int)
	case v.Kind.Equals(TFloat):
		return fmt.Sprintf("%g", v.Float)
	case v.Kind.Equals(TBool):
		return fmt.Sprintf("%t", v.Bool)
	case v.Kind.Equals(TVoid):
		return "void"
	default:
		return fmt.Sprintf("%s(%s)", v.Kind.String(), v.Obj.String())
	}
}
