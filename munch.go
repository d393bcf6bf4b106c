package munch

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to applications to define them.
type TokType int

// TokTypeStringer is a type to be provided by applications to be able to print
// out token categories.
type TokTypeStringer func(TokType) string

// Tokens represent the smallest classified units of input. They are produced by
// a lexer and consumed by a parser, reflecting terminals in a language.
//
// An example would be a token for a floating point number:
//
//	TokType = Num         // identifier for this kind of tokens (application specific)
//	Lexeme  = "3.1416"    // lexeme how it appeared in the input text
//	Value   = 3.1416      // is a float64 value
//	Span    = 67…73       // occupied positions 67–73 of the input text
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// TokensEq compares two tokens for equality of token category and value.
// Lexemes and spans are not considered: a synthetic probe token, as used with
// TokenQueue.ConsumeEq, carries no meaningful position.
//
// Token values have to be of comparable types.
func TokensEq(a, b Token) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.TokType() == b.TokType() && a.Value() == b.Value()
}

// --- Standard tokens -------------------------------------------------------

// StdToken is a very unsophisticated token type, sufficient for most small
// languages. Applications with richer needs provide their own Token
// implementation instead.
type StdToken struct {
	kind   TokType
	lexeme string
	Val    interface{}
	span   Span
}

// MakeStdToken creates a StdToken. Clients may set field Val afterwards for
// tokens carrying a converted value.
func MakeStdToken(typ TokType, lexeme string, span Span) StdToken {
	return StdToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t StdToken) TokType() TokType {
	return t.kind
}

func (t StdToken) Value() interface{} {
	return t.Val
}

func (t StdToken) Lexeme() string {
	return t.lexeme
}

func (t StdToken) Span() Span {
	return t.span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a range of input bytes. Every token
// remembers which input positions it covers. A span denotes a start position
// and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
