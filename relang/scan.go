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

	"github.com/npillmayer/retree"
	"github.com/npillmayer/retree/rd/scanner"
	"github.com/timtadh/lexmachine"
)

// Token types of the regular-expression alphabet. Operators, parentheses and
// the empty-word marker carry their character code as token type; symbols are
// categorized uniformly as Symbol.
const (
	Illegal retree.TokType = 0           // character outside of the alphabet
	EOF     retree.TokType = scanner.EOF // end of input
	Symbol  retree.TokType = scanner.Ident
	Epsilon retree.TokType = '#'
	LParen  retree.TokType = '('
	RParen  retree.TokType = ')'
	Star    retree.TokType = '*'
	Plus    retree.TokType = '+'
)

// The tokens representing literal one-char lexemes
var literals = []string{"#", "(", ")", "*", "+"}

// The keyword tokens; the language has none.
var keywords []string

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["symbol"] = int(Symbol)
		for _, lit := range literals {
			r := lit[0]
			tokenIds[lit] = int(r)
		}
	})
}

// Token returns a token name and its value.
func Token(t string) (string, int) {
	id, ok := tokenIds[t]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", t))
	}
	return t, id
}

// Cat categorizes an input character as a terminal of the regular-expression
// alphabet. Symbols are single letters, digits or the underscore. Characters
// outside of the alphabet map to Illegal, which no grammar terminal carries.
//
// The parser consults Cat for every input character; there is no scanner
// between the input text and the parser.
func Cat(c byte) retree.TokType {
	switch {
	case c == '#' || c == '(' || c == ')' || c == '*' || c == '+':
		return retree.TokType(c)
	case 'a' <= c && c <= 'z':
		return Symbol
	case 'A' <= c && c <= 'Z':
		return Symbol
	case '0' <= c && c <= '9':
		return Symbol
	case c == '_':
		return Symbol
	}
	return Illegal
}

// Lexer creates a new lexmachine lexer for the regular-expression alphabet.
//
// There is no whitespace in the language, therefore the lexer has no skip
// rules: every character has to be accounted for.
func Lexer() (*scanner.LMAdapter, error) {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`([a-z]|[A-Z]|[0-9]|_)`), scanner.MakeToken("symbol", tokenIds["symbol"]))
	}
	adapter, err := scanner.NewLMAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		return nil, err
	}
	return adapter, nil
}

// Tokens tokenizes an input string into the terminals of the regular-expression
// alphabet. The parser does not use a scanner and works on raw input characters
// instead; tokenizing is provided for diagnosing input, e.g. from a REPL.
//
// Characters outside of the alphabet are reported through the returned error;
// scanning continues after them.
func Tokens(input string) ([]retree.Token, error) {
	initLanguage()
	scan, err := lexer.Scanner(input)
	if err != nil {
		return nil, err
	}
	var scanerr error
	scan.SetErrorHandler(func(e error) {
		tracer().Errorf("tokenizer: %v", e)
		if scanerr == nil {
			scanerr = e
		}
	})
	var toks []retree.Token
	for token := scan.NextToken(); token.TokType() != EOF; token = scan.NextToken() {
		toks = append(toks, token)
	}
	return toks, scanerr
}
