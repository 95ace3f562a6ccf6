// Package diagnostics implements the three error kinds Saha's pipeline can
// raise (spec §7): StartupError, ParseError, and RuntimeError. Each carries
// a message, an optional source position, and a stable code, following the
// corpus's own DiagnosticError/errorTemplates convention
// (internal/diagnostics/diagnostics.go in the teacher repo) rather than ad
// hoc fmt.Sprintf strings scattered across call sites.
package diagnostics

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/Mechachleopteryx/saha/internal/position"
)

// Code identifies an error template. Codes are stable so the CLI and any
// future tooling can key documentation links or colorization off them.
type Code string

const (
	// Startup
	ErrS001 Code = "S001" // file not found
	ErrS002 Code = "S002" // file unreadable

	// Parse
	ErrP001 Code = "P001" // unexpected token
	ErrP002 Code = "P002" // undefined behavior reference
	ErrP003 Code = "P003" // malformed declaration
	ErrP004 Code = "P004" // behavior implementation mismatch
	ErrP005 Code = "P005" // invalid type parameter name

	// Runtime
	ErrR001 Code = "R001" // invalid arguments, missing
	ErrR002 Code = "R002" // invalid argument type
	ErrR003 Code = "R003" // return type mismatch
	ErrR004 Code = "R004" // unknown class
	ErrR005 Code = "R005" // symbol already bound
)

var templates = map[Code]string{
	ErrS001: "file not found: %s",
	ErrS002: "could not read file %s: %s",

	ErrP001: "unexpected token %s, expected one of %s",
	ErrP002: "no behavior `%s` defined",
	ErrP003: "malformed declaration: %s",
	ErrP004: "method `%s` defined in behavior `%s` not found in class",
	ErrP005: "invalid type parameter name `%s`, expected a single uppercase letter",

	ErrR001: "Invalid arguments, argument `%s` missing",
	ErrR002: "Invalid argument, `%s` is expected to be a `%s`, found `%s` instead",
	ErrR003: "Return type mismatch for `%s`, expected `%s` but received `%s`",
	ErrR004: "Cannot create instance of unknown class `%s`",
	ErrR005: "`%s` is already defined",
}

func render(code Code, args ...interface{}) string {
	tmpl, ok := templates[code]
	if !ok {
		return fmt.Sprintf("unknown diagnostic code %s", code)
	}
	return fmt.Sprintf(tmpl, args...)
}

// FormatPosition renders pos as "<file>:<line>:<col>", comma-grouping the
// line and column numbers with humanize.Comma so a diagnostic pointing
// deep into a large generated or minified source file stays readable.
func FormatPosition(pos position.FilePosition) string {
	return fmt.Sprintf("%s:%s:%s", pos.File, humanize.Comma(int64(pos.Line)), humanize.Comma(int64(pos.Column)))
}

// StartupError reports pre-parse failures: a missing or unreadable source
// file. Per spec §7 it never carries a file position.
type StartupError struct {
	code    Code
	message string
}

func NewStartupError(code Code, args ...interface{}) *StartupError {
	return &StartupError{code: code, message: render(code, args...)}
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("StartupError: %s", e.message)
}

func (e *StartupError) Code() Code    { return e.code }
func (e *StartupError) Name() string  { return "StartupError" }
func (e *StartupError) Message() string { return e.message }

// Position always returns the Unknown sentinel: StartupError occurs before
// any file position exists to report (spec §7).
func (e *StartupError) Position() position.FilePosition { return position.Unknown }

// ParseError reports grammar or declaration-table violations. It always
// carries the offending token/node position.
type ParseError struct {
	code     Code
	message  string
	pos      position.FilePosition
	expected []string
}

func NewParseError(pos position.FilePosition, code Code, args ...interface{}) *ParseError {
	return &ParseError{code: code, message: render(code, args...), pos: pos}
}

// NewParseErrorf builds a ParseError from a pre-formatted message and an
// existing code, for errors re-surfaced from elsewhere (e.g. a
// declaration-table insertion's RuntimeError, lifted to a ParseError at
// population time) whose message is already rendered.
func NewParseErrorf(pos position.FilePosition, code Code, message string) *ParseError {
	return &ParseError{code: code, message: message, pos: pos}
}

// NewUnexpectedTokenError is the common ParseError shape: a mismatch
// between the token the parser found and the set of variants it expected
// (spec §4.3).
func NewUnexpectedTokenError(pos position.FilePosition, found string, expected []string) *ParseError {
	return &ParseError{
		code:     ErrP001,
		message:  render(ErrP001, found, joinExpected(expected)),
		pos:      pos,
		expected: expected,
	}
}

func joinExpected(expected []string) string {
	out := "["
	for i, e := range expected {
		if i > 0 {
			out += ", "
		}
		out += e
	}
	return out + "]"
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ParseError at %s: %s", e.pos, e.message)
}

func (e *ParseError) Code() Code                    { return e.code }
func (e *ParseError) Name() string                  { return "ParseError" }
func (e *ParseError) Message() string                { return e.message }
func (e *ParseError) Position() position.FilePosition { return e.pos }
func (e *ParseError) Expected() []string              { return e.expected }

// RuntimeError reports any failure during or after argument validation,
// including type mismatches on return, unknown class instantiation, and
// downstream evaluator errors (spec §7).
type RuntimeError struct {
	code    Code
	message string
	pos     position.FilePosition
}

func NewRuntimeError(pos position.FilePosition, code Code, args ...interface{}) *RuntimeError {
	return &RuntimeError{code: code, message: render(code, args...), pos: pos}
}

// NewRuntimeErrorf builds a RuntimeError from a pre-formatted message, for
// errors surfaced by the evaluator (an external collaborator) that don't
// originate from a fixed template.
func NewRuntimeErrorf(pos position.FilePosition, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{code: "", message: fmt.Sprintf(format, args...), pos: pos}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RuntimeError at %s: %s", e.pos, e.message)
}

func (e *RuntimeError) Code() Code                    { return e.code }
func (e *RuntimeError) Name() string                  { return "RuntimeError" }
func (e *RuntimeError) Message() string                { return e.message }
func (e *RuntimeError) Position() position.FilePosition { return e.pos }

// Reportable is implemented by all three error kinds, and is what the CLI
// driver formats to stderr as "<ErrorName> at <file>:<line>:<col>: <message>".
type Reportable interface {
	error
	Name() string
	Message() string
	Position() position.FilePosition
}
