package ast

import (
	"github.com/Mechachleopteryx/saha/internal/position"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// LiteralValue wraps a compile-time-known primitive value.
type LiteralValue struct {
	Position position.FilePosition
	Value    typesystem.Value
}

func (e *LiteralValue) GetPosition() position.FilePosition { return e.Position }
func (e *LiteralValue) Accept(v Visitor)                   { v.VisitLiteralValue(e) }
func (e *LiteralValue) expressionNode()                    {}

// PathSegment is one `(access, Ident)` hop in an IdentPath or ObjectAccess
// chain.
type PathSegment struct {
	Access AccessKind
	Name   *Identifier
}

// IdentPath is a dotted identifier chain using `->` (instance) and `::`
// (static) accessors, e.g. `foo->bar->baz` or `qwert::yuiop` (spec §3, §6).
type IdentPath struct {
	Position position.FilePosition
	Root     *Identifier
	Segments []PathSegment
}

func (e *IdentPath) GetPosition() position.FilePosition { return e.Position }
func (e *IdentPath) Accept(v Visitor)                   { v.VisitIdentPath(e) }
func (e *IdentPath) expressionNode()                    {}

// ListDeclaration is a `[e, e, ...]` literal.
type ListDeclaration struct {
	Position position.FilePosition
	Elements []Expression
}

func (e *ListDeclaration) GetPosition() position.FilePosition { return e.Position }
func (e *ListDeclaration) Accept(v Visitor)                   { v.VisitListDeclaration(e) }
func (e *ListDeclaration) expressionNode()                    {}

// DictEntry is one `key: value` pair of a DictDeclaration.
type DictEntry struct {
	Key   Expression
	Value Expression
}

// DictDeclaration is a `{k: v, ...}` literal.
type DictDeclaration struct {
	Position position.FilePosition
	Entries  []DictEntry
}

func (e *DictDeclaration) GetPosition() position.FilePosition { return e.Position }
func (e *DictDeclaration) Accept(v Visitor)                   { v.VisitDictDeclaration(e) }
func (e *DictDeclaration) expressionNode()                    {}

// Assignment is `lhs = rhs`.
type Assignment struct {
	Position position.FilePosition
	Target   Expression
	Value    Expression
}

func (e *Assignment) GetPosition() position.FilePosition { return e.Position }
func (e *Assignment) Accept(v Visitor)                   { v.VisitAssignment(e) }
func (e *Assignment) expressionNode()                    {}

// PipeOperation is `lhs |> rhs`: the value of lhs becomes the sole
// positional argument of a call to rhs (spec §9 open question, resolved
// in SPEC_FULL.md/DESIGN.md).
type PipeOperation struct {
	Position position.FilePosition
	Left     Expression
	Right    Expression
}

func (e *PipeOperation) GetPosition() position.FilePosition { return e.Position }
func (e *PipeOperation) Accept(v Visitor)                   { v.VisitPipeOperation(e) }
func (e *PipeOperation) expressionNode()                    {}

// BinaryOperation is `lhs OP rhs`.
type BinaryOperation struct {
	Position position.FilePosition
	Left     Expression
	Op       BinOp
	Right    Expression
}

func (e *BinaryOperation) GetPosition() position.FilePosition { return e.Position }
func (e *BinaryOperation) Accept(v Visitor)                   { v.VisitBinaryOperation(e) }
func (e *BinaryOperation) expressionNode()                    {}

// UnaryOperation is `!expr` or `-expr`.
type UnaryOperation struct {
	Position position.FilePosition
	Op       UnaryOp
	Operand  Expression
}

func (e *UnaryOperation) GetPosition() position.FilePosition { return e.Position }
func (e *UnaryOperation) Accept(v Visitor)                   { v.VisitUnaryOperation(e) }
func (e *UnaryOperation) expressionNode()                    {}

// CallableArg is one argument of a call: Name is "" for a positional
// argument (spec §3).
type CallableArg struct {
	Position position.FilePosition
	Name     string
	Value    Expression
}

func (e *CallableArg) GetPosition() position.FilePosition { return e.Position }
func (e *CallableArg) Accept(v Visitor)                   { v.VisitCallableArg(e) }
func (e *CallableArg) expressionNode()                    {}

// CallableArgs collects the parsed argument list of a call or newup.
type CallableArgs struct {
	Position position.FilePosition
	Args     []*CallableArg
}

func (e *CallableArgs) GetPosition() position.FilePosition { return e.Position }
func (e *CallableArgs) Accept(v Visitor)                   { v.VisitCallableArgs(e) }
func (e *CallableArgs) expressionNode()                    {}

// FunctionCall invokes Callee with Args.
type FunctionCall struct {
	Position position.FilePosition
	Callee   Expression
	Args     *CallableArgs
}

func (e *FunctionCall) GetPosition() position.FilePosition { return e.Position }
func (e *FunctionCall) Accept(v Visitor)                   { v.VisitFunctionCall(e) }
func (e *FunctionCall) expressionNode()                    {}

// ObjectAccess is `lhs -> rhs` or `lhs :: rhs`. Rhs is itself a full
// expression, enabling chains (spec §4.3).
type ObjectAccess struct {
	Position position.FilePosition
	Left     Expression
	Kind     AccessKind
	Right    Expression
}

func (e *ObjectAccess) GetPosition() position.FilePosition { return e.Position }
func (e *ObjectAccess) Accept(v Visitor)                   { v.VisitObjectAccess(e) }
func (e *ObjectAccess) expressionNode()                    {}

// NewInstance is `new Name[<T,...>](args)`.
type NewInstance struct {
	Position  position.FilePosition
	ClassName *Identifier
	Args      *CallableArgs
	TypeArgs  []typesystem.Type
}

func (e *NewInstance) GetPosition() position.FilePosition { return e.Position }
func (e *NewInstance) Accept(v Visitor)                   { v.VisitNewInstance(e) }
func (e *NewInstance) expressionNode()                    {}
