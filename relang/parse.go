package relang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/retree/grammar"
	"github.com/npillmayer/retree/rd"
	"github.com/npillmayer/retree/rd/scanner"
	"github.com/npillmayer/retree/tree"
)

// --- Grammar ---------------------------------------------------------------

// RE   ::=  '#' RE'            // empty word, followed by more
// RE   ::=  symbol RE'         // a, b, …, followed by more
// RE   ::=  '(' RE ')' RE'     // group, followed by more
// RE   ::=  '(' RE ')'         // group
// RE   ::=  '#'                // empty word
// RE   ::=  symbol             // a, b, …
// RE'  ::=  '+' RE RE'         // alternation, followed by more
// RE'  ::=  '+' RE             // alternation
// RE'  ::=  '*' RE'            // repetition, followed by more
// RE'  ::=  RE RE'             // concatenation, followed by more
// RE'  ::=  RE                 // concatenation
// RE'  ::=  '*'                // repetition
//
// The order of the alternatives is part of the language definition: the
// parser tries them top to bottom and commits to the first one that leads
// to a successful parse.
//
func makeREGrammar() (*grammar.RDAnalysis, error) {
	b := grammar.NewGrammarBuilder("RE")
	b.LHS("RE").T(Token("#")).N("RE'").End()
	b.LHS("RE").T(Token("symbol")).N("RE'").End()
	b.LHS("RE").T(Token("(")).N("RE").T(Token(")")).N("RE'").End()
	b.LHS("RE").T(Token("(")).N("RE").T(Token(")")).End()
	b.LHS("RE").T(Token("#")).End()
	b.LHS("RE").T(Token("symbol")).End()
	b.LHS("RE'").T(Token("+")).N("RE").N("RE'").End()
	b.LHS("RE'").T(Token("+")).N("RE").End()
	b.LHS("RE'").T(Token("*")).N("RE'").End()
	b.LHS("RE'").N("RE").N("RE'").End()
	b.LHS("RE'").N("RE").End()
	b.LHS("RE'").T(Token("*")).End()
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	return grammar.Analysis(g), nil
}

var reGrammar *grammar.RDAnalysis
var lexer *scanner.LMAdapter

var startOnce sync.Once // monitors one-time creation of grammar and lexer

func initLanguage() {
	startOnce.Do(func() {
		var err error
		tracer().Infof("Creating lexer")
		if lexer, err = Lexer(); err != nil { // MUST be called before grammar building !
			panic("Cannot create lexer")
		}
		tracer().Infof("Creating grammar")
		if reGrammar, err = makeREGrammar(); err != nil {
			panic("Cannot create global grammar")
		}
		reGrammar.Grammar().Dump()
	})
}

func createParser(opts ...rd.Option) *rd.Parser {
	initLanguage()
	parser, err := rd.NewParser(reGrammar, rd.CatFunc(Cat), opts...)
	if err != nil {
		panic("Cannot create parser")
	}
	return parser
}

// Grammar returns the grammar underlying the regular-expression language,
// e.g. for listing its rules from a REPL.
func Grammar() *grammar.Grammar {
	initLanguage()
	return reGrammar.Grammar()
}

// --- Parsing ---------------------------------------------------------------

// Parse parses an input string, given as a regular expression over
// single-character symbols. It returns whether the input belongs to the
// language, together with the derivation tree built during parsing. The tree
// has an artificial root node labeled "Root"; its single child is the
// derivation of the start symbol RE.
//
// A non-nil error means the parse had to be aborted and no verdict about
// the input was reached.
func Parse(input string) (bool, *tree.Node, error) {
	parser := createParser()
	return parser.Parse(input)
}

// ParseWith parses input like Parse, but with derivation-tree nodes allocated
// in a client-provided store. Clients interested in node counts can inspect
// the store after the parse.
func ParseWith(store *tree.Store, input string) (bool, *tree.Node, error) {
	parser := createParser(rd.TreeStore(store))
	return parser.Parse(input)
}

// Diagnose parses an input string and reports acceptance, together with a
// short description of the failure position for rejected input. For accepted
// input the description is empty.
func Diagnose(input string) (bool, string) {
	parser := createParser()
	accepted, _, err := parser.Parse(input)
	if err != nil {
		return false, err.Error()
	}
	if accepted {
		return true, ""
	}
	if pos := parser.Furthest(); pos < len(input) {
		return false, fmt.Sprintf("syntax error at position %d: unexpected %q", pos, input[pos])
	}
	return false, "syntax error: unexpected end of input"
}
