// Package lexer tokenizes Saha source text into the token.Token stream
// the parser consumes. Spec §1 treats the tokenizer as an external
// collaborator with a minimal contract (an ordered token sequence
// terminated by Eob); this package is this rewrite's concrete instance of
// that collaborator, grounded on the teacher's own character-at-a-time
// scanner (funvibe-funxy/internal/lexer/lexer.go).
package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/Mechachleopteryx/saha/internal/position"
	"github.com/Mechachleopteryx/saha/internal/token"
)

var keywords = map[string]token.Kind{
	"var": token.KwVar, "if": token.KwIf, "elseif": token.KwElseif, "else": token.KwElse,
	"loop": token.KwLoop, "for": token.KwFor, "in": token.KwIn, "return": token.KwReturn,
	"break": token.KwBreak, "continue": token.KwContinue, "new": token.KwNew,
	"function": token.KwFunction, "class": token.KwClass, "behavior": token.KwBehavior,
	"const": token.KwConst, "implements": token.KwImplements, "static": token.KwStatic,
	"pub": token.KwPub,
	"str": token.TypeString, "int": token.TypeInteger, "float": token.TypeFloat, "bool": token.TypeBoolean,
	"true": token.BooleanValue, "false": token.BooleanValue,
}

// Lexer scans Saha source text one rune at a time, grounded on the
// teacher's own readChar/peekChar/NextToken shape.
type Lexer struct {
	file string
	src  string

	pos     int
	readPos int
	ch      rune

	line   uint32
	column uint32
}

// New builds a Lexer over src, attributing every token's position to
// file.
func New(file, src string) *Lexer {
	l := &Lexer{file: file, src: src, line: 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPos >= len(l.src) {
		l.ch = 0
		l.pos = l.readPos
		return
	}
	r, w := utf8.DecodeRuneInString(l.src[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.readPos:])
	return r
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		break
	}
}

func (l *Lexer) pos2() position.FilePosition {
	return position.New(l.file, l.line, l.column)
}

func isLetter(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.src[start:l.pos]
}

func (l *Lexer) readNumber() token.Token {
	pos := l.pos2()
	start := l.pos
	isFloat := false
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	lexeme := l.src[start:l.pos]
	if isFloat {
		v, _ := strconv.ParseFloat(lexeme, 64)
		return token.Token{Kind: token.FloatValue, Lexeme: lexeme, Position: pos, Literal: v}
	}
	v, _ := strconv.ParseInt(lexeme, 10, 64)
	return token.Token{Kind: token.IntegerValue, Lexeme: lexeme, Position: pos, Literal: v}
}

func (l *Lexer) readString() (string, bool) {
	l.readChar() // consume opening quote
	start := l.pos
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
		}
		l.readChar()
	}
	if l.ch == 0 {
		return l.src[start:l.pos], false
	}
	s := l.src[start:l.pos]
	l.readChar() // consume closing quote
	return s, true
}

func simple(kind token.Kind, pos position.FilePosition) token.Token {
	return token.Token{Kind: kind, Lexeme: string(kind), Position: pos}
}

// NextToken scans and returns the next token. At end of input it returns
// an Eob token forever, matching the contract the parser's tokenCursor
// relies on (spec §4.1).
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()
	pos := l.pos2()

	switch {
	case l.ch == 0:
		return token.Token{Kind: token.Eob, Position: pos}

	case l.ch == '-' && l.peekChar() == '>':
		l.readChar()
		l.readChar()
		return token.Token{Kind: token.ObjectAccess, Lexeme: "->", Position: pos}
	case l.ch == ':' && l.peekChar() == ':':
		l.readChar()
		l.readChar()
		return token.Token{Kind: token.StaticAccess, Lexeme: "::", Position: pos}
	case l.ch == '|' && l.peekChar() == '>':
		l.readChar()
		l.readChar()
		return token.Token{Kind: token.Pipe, Lexeme: "|>", Position: pos}
	case l.ch == '&' && l.peekChar() == '&':
		l.readChar()
		l.readChar()
		return token.Token{Kind: token.OpAnd, Lexeme: "&&", Position: pos}
	case l.ch == '|' && l.peekChar() == '|':
		l.readChar()
		l.readChar()
		return token.Token{Kind: token.OpOr, Lexeme: "||", Position: pos}
	case l.ch == '=' && l.peekChar() == '=':
		l.readChar()
		l.readChar()
		return token.Token{Kind: token.OpEq, Lexeme: "==", Position: pos}
	case l.ch == '!' && l.peekChar() == '=':
		l.readChar()
		l.readChar()
		return token.Token{Kind: token.OpNeq, Lexeme: "!=", Position: pos}
	case l.ch == '>' && l.peekChar() == '=':
		l.readChar()
		l.readChar()
		return token.Token{Kind: token.OpGte, Lexeme: ">=", Position: pos}
	case l.ch == '<' && l.peekChar() == '=':
		l.readChar()
		l.readChar()
		return token.Token{Kind: token.OpLte, Lexeme: "<=", Position: pos}

	case l.ch == '(':
		l.readChar()
		return simple(token.ParensOpen, pos)
	case l.ch == ')':
		l.readChar()
		return simple(token.ParensClose, pos)
	case l.ch == '{':
		l.readChar()
		return simple(token.CurlyOpen, pos)
	case l.ch == '}':
		l.readChar()
		return simple(token.CurlyClose, pos)
	case l.ch == '[':
		l.readChar()
		return simple(token.BraceOpen, pos)
	case l.ch == ']':
		l.readChar()
		return simple(token.BraceClose, pos)
	case l.ch == ',':
		l.readChar()
		return simple(token.Comma, pos)
	case l.ch == ';':
		l.readChar()
		return simple(token.EndStatement, pos)
	case l.ch == ':':
		l.readChar()
		return simple(token.Colon, pos)
	case l.ch == '\'':
		l.readChar()
		return simple(token.Tick, pos)
	case l.ch == '=':
		l.readChar()
		return simple(token.Assign, pos)
	case l.ch == '<':
		l.readChar()
		return simple(token.OpLt, pos)
	case l.ch == '>':
		l.readChar()
		return simple(token.OpGt, pos)
	case l.ch == '+':
		l.readChar()
		return simple(token.OpAdd, pos)
	case l.ch == '-':
		l.readChar()
		return simple(token.OpSub, pos)
	case l.ch == '*':
		l.readChar()
		return simple(token.OpMul, pos)
	case l.ch == '/':
		l.readChar()
		return simple(token.OpDiv, pos)
	case l.ch == '!':
		l.readChar()
		return simple(token.UnOpNot, pos)

	case l.ch == '"':
		s, _ := l.readString()
		return token.Token{Kind: token.StringValue, Lexeme: s, Position: pos, Literal: s}

	case isDigit(l.ch):
		return l.readNumber()

	case isLetter(l.ch):
		ident := l.readIdentifier()
		if kind, ok := keywords[ident]; ok {
			if kind == token.BooleanValue {
				return token.Token{Kind: token.BooleanValue, Lexeme: ident, Position: pos, Literal: ident == "true"}
			}
			return token.Token{Kind: kind, Lexeme: ident, Position: pos}
		}
		return token.Token{Kind: token.Name, Lexeme: ident, Position: pos, Literal: ident}
	}

	l.readChar()
	return token.Token{Kind: token.Eob, Position: pos}
}

// Tokenize scans all of src and returns its complete token sequence,
// terminated by a trailing Eob (spec §4.1: "an ordered finite sequence
// terminated by Eob").
func Tokenize(file, src string) []token.Token {
	l := New(file, src)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.Eob {
			return tokens
		}
	}
}
