/*
Package scanner defines an interface for scanners to be used with parsers of package rd.

The recognizers of package rd work on raw input characters and do not require a
scanner to run. Tokenizers are nevertheless useful for clients of the parsers,
e.g. for diagnosing input before or after a parse run. A default implementation
is provided in form of an adapter for lexmachine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/retree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'retree.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("retree.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() retree.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   retree.TokType
	lexeme string
	Val    interface{}
	span   retree.Span
}

func MakeDefaultToken(typ retree.TokType, lexeme string, span retree.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() retree.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() retree.Span {
	return t.span
}

// Lexeme is a helper function to receive a string from a token.
func Lexeme(token interface{}) string {
	switch t := token.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
