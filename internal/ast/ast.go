// Package ast defines Saha's abstract syntax representation (spec §3): an
// algebraic tree of statements and expressions with a file position
// attached to every node. Nodes expose Accept(Visitor) for double dispatch,
// the shape the corpus's own internal/ast package uses so every consumer
// (pretty-printer, evaluator, diagnostics) walks the tree through one
// mechanism instead of ad hoc type switches.
package ast

import (
	"github.com/Mechachleopteryx/saha/internal/position"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// Node is the base interface every AST node implements.
type Node interface {
	GetPosition() position.FilePosition
	Accept(v Visitor)
}

// Statement is a Node appearing directly inside a Block.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that produces a Value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Ast is the parsed form of one declaration body (spec §3): a single
// entrypoint block. The AST parser (spec §4.3) produces one Ast per
// function/method body token slice handed to it by the declaration pass.
type Ast struct {
	Entrypoint *Block
}

// Block is any block of statements: a function body, an if/loop/for body.
type Block struct {
	Position   position.FilePosition
	Statements []Statement
}

func (b *Block) GetPosition() position.FilePosition { return b.Position }
func (b *Block) Accept(v Visitor)                   { v.VisitBlock(b) }

// Identifier names a variable, function, class, or path segment. Grammar
// restricts ordinary names to non-single-uppercase-letter spellings; a
// single uppercase letter in a type position resolves to a TypeParam
// instead (spec §3, §4.3).
type Identifier struct {
	Position   position.FilePosition
	Name       string
	TypeParams []typesystem.Type
}

func (i *Identifier) GetPosition() position.FilePosition { return i.Position }
func (i *Identifier) Accept(v Visitor)                   { v.VisitIdentifier(i) }

// AccessKind distinguishes instance (`->`) from static (`::`) member
// access in an IdentPath or ObjectAccess chain.
type AccessKind int

const (
	Instance AccessKind = iota
	Static
)

func (k AccessKind) String() string {
	if k == Static {
		return "::"
	}
	return "->"
}

// BinOpKind enumerates the binary operators (spec §3).
type BinOpKind int

const (
	Add BinOpKind = iota
	Sub
	Mul
	Div
	Gt
	Gte
	Lt
	Lte
	Eq
	Neq
	And
	Or
)

var binOpNames = map[BinOpKind]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/",
	Gt: ">", Gte: ">=", Lt: "<", Lte: "<=",
	Eq: "==", Neq: "!=", And: "&&", Or: "||",
}

func (k BinOpKind) String() string { return binOpNames[k] }

// BinOp carries a binary operator's kind, source position, and
// associativity. All Saha binary operators are left-associative
// (spec §3), so IsLeftAssoc is currently always true, but it is carried
// explicitly the way the corpus's own AST carries associativity on the
// operator node rather than hard-coding it in the parser.
type BinOp struct {
	Position    position.FilePosition
	Kind        BinOpKind
	IsLeftAssoc bool
}

// UnaryOpKind enumerates the unary operators (spec §3).
type UnaryOpKind int

const (
	Not UnaryOpKind = iota
	Minus
)

func (k UnaryOpKind) String() string {
	if k == Not {
		return "!"
	}
	return "-"
}

// UnaryOp carries a unary operator's kind and source position.
type UnaryOp struct {
	Position position.FilePosition
	Kind     UnaryOpKind
}
