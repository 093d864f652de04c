package retree

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. The base package does not define any
// constants; the concrete terminal categories of the regular-expression
// alphabet live in package relang.
type TokType int

// TokTypeStringer is a type to be provided by a scanner/parser combination to be
// able to print out token categories.
type TokTypeStringer func(TokType) string

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals of the language.
//
// An example would be a token for a star operator:
//
//    TokType = Star        // identifier for this category of tokens
//    Lexeme  = "*"         // lexeme as it appeared in the input text
//    Value   = nil         // no semantic payload for punctuation
//    Span    = 3…4         // occurred at position 3 of the input text
//
// Token.Value() is free to be set by the scanner; the terminals of the
// regular-expression alphabet carry no value beyond their lexeme.
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// TokenRetriever is a type for getting tokens at an input position.
// Scanners may or may not keep track of the tokens they have produced.
// Factoring it out into a type helps model this design-decision.
type TokenRetriever func(uint64) Token

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input characters. Scanners
// track for every token which input positions it covers. A span denotes a
// start position and the position just behind the end.
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
