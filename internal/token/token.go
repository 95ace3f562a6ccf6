// Package token defines the lexical token contract consumed by the Saha
// parser. The tokenizer itself is an external collaborator (spec §1); this
// package only fixes the variant set and payload shapes the parser and
// declaration table depend on.
package token

import (
	"fmt"

	"github.com/Mechachleopteryx/saha/internal/position"
)

// Kind identifies a token's grammatical role.
type Kind string

// Token kinds recognized by the parser (spec §6).
const (
	Eob Kind = "EOB"

	// Value-bearing literals.
	Name          Kind = "NAME"
	StringValue   Kind = "STRINGVAL"
	IntegerValue  Kind = "INTEGERVAL"
	FloatValue    Kind = "FLOATVAL"
	BooleanValue  Kind = "BOOLEANVAL"

	// Type keywords.
	TypeString  Kind = "TYPESTRING"
	TypeInteger Kind = "TYPEINTEGER"
	TypeFloat   Kind = "TYPEFLOAT"
	TypeBoolean Kind = "TYPEBOOLEAN"

	// Keywords.
	KwVar      Kind = "KWVAR"
	KwIf       Kind = "KWIF"
	KwElseif   Kind = "KWELSEIF"
	KwElse     Kind = "KWELSE"
	KwLoop     Kind = "KWLOOP"
	KwFor      Kind = "KWFOR"
	KwIn       Kind = "KWIN"
	KwReturn   Kind = "KWRETURN"
	KwBreak    Kind = "KWBREAK"
	KwContinue Kind = "KWCONTINUE"
	KwNew      Kind = "KWNEW"
	KwFunction Kind = "KWFUNCTION"
	KwClass    Kind = "KWCLASS"
	KwBehavior Kind = "KWBEHAVIOR"
	KwConst    Kind = "KWCONST"
	KwImplements Kind = "KWIMPLEMENTS"
	KwStatic   Kind = "KWSTATIC"
	KwPub      Kind = "KWPUB"

	// Punctuation.
	ParensOpen    Kind = "("
	ParensClose   Kind = ")"
	CurlyOpen     Kind = "{"
	CurlyClose    Kind = "}"
	BraceOpen     Kind = "["
	BraceClose    Kind = "]"
	Comma         Kind = ","
	EndStatement  Kind = ";"
	Colon         Kind = ":"
	Tick          Kind = "'"
	Assign        Kind = "="
	ObjectAccess  Kind = "->"
	StaticAccess  Kind = "::"
	Pipe          Kind = "|>"

	// Operators.
	OpAdd Kind = "+"
	OpSub Kind = "-"
	OpMul Kind = "*"
	OpDiv Kind = "/"
	OpGt  Kind = ">"
	OpGte Kind = ">="
	OpLt  Kind = "<"
	OpLte Kind = "<="
	OpEq  Kind = "=="
	OpNeq Kind = "!="
	OpAnd Kind = "&&"
	OpOr  Kind = "||"
	UnOpNot Kind = "!"
)

// Token is a single lexical unit produced by the tokenizer.
type Token struct {
	Kind     Kind
	Lexeme   string
	Position position.FilePosition

	// Literal carries the decoded payload for value-bearing tokens:
	// string for Name/StringValue, int64 for IntegerValue, float64 for
	// FloatValue, bool for BooleanValue. Nil otherwise.
	Literal interface{}
}

func (t Token) String() string {
	return fmt.Sprintf("%s '%s' at %s", t.Kind, t.Lexeme, t.Position)
}

// NameValue returns the decoded identifier text of a Name token.
func (t Token) NameValue() string {
	if s, ok := t.Literal.(string); ok {
		return s
	}
	return t.Lexeme
}

func (t Token) StringValueOf() string {
	if s, ok := t.Literal.(string); ok {
		return s
	}
	return ""
}

func (t Token) IntValue() int64 {
	if v, ok := t.Literal.(int64); ok {
		return v
	}
	return 0
}

func (t Token) FloatValue() float64 {
	if v, ok := t.Literal.(float64); ok {
		return v
	}
	return 0
}

func (t Token) BoolValue() bool {
	if v, ok := t.Literal.(bool); ok {
		return v
	}
	return false
}

// precedences maps binary operators to their binding power. Higher binds
// tighter. Anything absent from this table is not an operator and
// reports -1, which terminates precedence-climbing loops (spec §4.3).
var precedences = map[Kind]int{
	OpMul: 50,
	OpDiv: 50,

	OpAdd: 40,
	OpSub: 40,

	OpLt:  30,
	OpLte: 30,
	OpGt:  30,
	OpGte: 30,

	OpEq:  20,
	OpNeq: 20,

	OpAnd: 10,

	OpOr: 5,

	Pipe: 2,
}

// Precedence returns the binding power of t's kind, or -1 if t is not a
// binary operator (the expression parser's termination condition).
func (t Token) Precedence() int {
	if p, ok := precedences[t.Kind]; ok {
		return p
	}
	return -1
}

// IsAccessToken reports whether t introduces an ObjectAccess chain
// segment. Access binds tighter than any arithmetic or pipe operator.
func (t Token) IsAccessToken() bool {
	return t.Kind == ObjectAccess || t.Kind == StaticAccess
}
