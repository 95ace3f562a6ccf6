package ast

import (
	"github.com/Mechachleopteryx/saha/internal/position"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// VarDeclaration binds a new local variable to an optional initializer
// (spec §3): `var NAME ' TYPE [ = EXPR ] ;`. Without the initializer the
// variable is bound to Void (spec §4.3).
type VarDeclaration struct {
	Position    position.FilePosition
	Name        *Identifier
	Type        typesystem.Type
	Initializer Expression // nil when no initializer was given
}

func (s *VarDeclaration) GetPosition() position.FilePosition { return s.Position }
func (s *VarDeclaration) Accept(v Visitor)                   { v.VisitVarDeclaration(s) }
func (s *VarDeclaration) statementNode()                     {}

// ExpressionStatement is a bare expression used as a statement.
type ExpressionStatement struct {
	Position position.FilePosition
	Expr     Expression
}

func (s *ExpressionStatement) GetPosition() position.FilePosition { return s.Position }
func (s *ExpressionStatement) Accept(v Visitor)                   { v.VisitExpressionStatement(s) }
func (s *ExpressionStatement) statementNode()                     {}

// If represents `if (cond) {...} elseif (cond) {...} else {...}`. Each
// elseif is stored as a synthetic nested If statement whose own Elifs and
// Else are empty/nil, tagged with the `elseif` keyword's position
// (spec §4.3, §8 scenario 6).
type If struct {
	Position position.FilePosition
	Cond     Expression
	Then     *Block
	Elifs    []*If
	Else     *Block // nil when no else branch exists
}

func (s *If) GetPosition() position.FilePosition { return s.Position }
func (s *If) Accept(v Visitor)                   { v.VisitIf(s) }
func (s *If) statementNode()                     {}

// Loop is an unconditional `loop { ... }` block.
type Loop struct {
	Position position.FilePosition
	Body     *Block
}

func (s *Loop) GetPosition() position.FilePosition { return s.Position }
func (s *Loop) Accept(v Visitor)                   { v.VisitLoop(s) }
func (s *Loop) statementNode()                     {}

// For is `for (k, v) in EXPR { ... }` (spec §4.3).
type For struct {
	Position position.FilePosition
	KeyIdent *Identifier
	ValIdent *Identifier
	Iterable Expression
	Body     *Block
}

func (s *For) GetPosition() position.FilePosition { return s.Position }
func (s *For) Accept(v Visitor)                   { v.VisitFor(s) }
func (s *For) statementNode()                     {}

// Return yields a value from the enclosing callable body.
type Return struct {
	Position position.FilePosition
	Value    Expression
}

func (s *Return) GetPosition() position.FilePosition { return s.Position }
func (s *Return) Accept(v Visitor)                   { v.VisitReturn(s) }
func (s *Return) statementNode()                     {}

// Break exits the innermost loop.
type Break struct {
	Position position.FilePosition
}

func (s *Break) GetPosition() position.FilePosition { return s.Position }
func (s *Break) Accept(v Visitor)                   { v.VisitBreak(s) }
func (s *Break) statementNode()                     {}

// Continue skips to the next iteration of the innermost loop.
type Continue struct {
	Position position.FilePosition
}

func (s *Continue) GetPosition() position.FilePosition { return s.Position }
func (s *Continue) Accept(v Visitor)                   { v.VisitContinue(s) }
func (s *Continue) statementNode()                     {}
