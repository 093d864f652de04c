/*
Package grammar implements context-free grammars for top-down parsing.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals
carry a token value of type int. Grammars may contain epsilon-productions.

Example:

    b := grammar.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a", 1).End()  // S  ->  A a
    b.LHS("A").N("B").End()            // A  ->  B
    b.LHS("B").T("b", 2).End()         // B  ->  b
    b.LHS("B").Epsilon()               // B  ->

This results in the following trivial grammar:

   g, _ := b.Grammar()
   g.Dump()

   0: [S] ::= [A a]
   1: [A] ::= [B]
   2: [B] ::= [b]
   3: [B] ::= []

Rules are numbered in declaration order, and the alternatives of a
nonterminal keep that order. For a backtracking top-down parser the
order is part of the grammar's meaning: alternatives are tried first
to last, and the first one to succeed wins.

Static Grammar Analysis

After the grammar is complete, it may be subjected to an RDAnalysis
object, which computes FIRST sets for the grammar, determines all
epsilon-derivable nonterminals, and finds left-recursive nonterminals.
A left-recursive grammar cannot be handled by a top-down parser and
has to be rejected before a parse is attempted.

    ga := grammar.Analysis(g)
    if len(ga.LeftRecursive()) > 0 {
        // not fit for recursive descent
    }


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/retree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'retree.rd'.
func tracer() tracing.Trace {
	return tracing.Select("retree.rd")
}

// --- Symbols ---------------------------------------------------------------

// Symbol is a grammar symbol, i.e. a terminal or a nonterminal.
// Terminals carry a token value, which a parser will match against
// the token categories produced by a scanner.
type Symbol struct {
	Name  string
	Value int // token value; only meaningful for terminals
	nt    bool
}

// IsTerminal returns true if the symbol is a terminal.
func (s *Symbol) IsTerminal() bool {
	return !s.nt
}

// TokenType returns the terminal's token value as a token type.
func (s *Symbol) TokenType() retree.TokType {
	return retree.TokType(s.Value)
}

func (s *Symbol) String() string {
	return s.Name
}

// Symbols are held in a treeset, sorted by token value with the name
// as a tie-breaker (different terminals may share a token category).
func symbolComparator(s1, s2 interface{}) int {
	t1 := s1.(*Symbol)
	t2 := s2.(*Symbol)
	if c := utils.IntComparator(t1.Value, t2.Value); c != 0 {
		return c
	}
	return utils.StringComparator(t1.Name, t2.Name)
}

// --- Rules -----------------------------------------------------------------

// A Rule is a grammar production, i.e. a left-hand-side nonterminal
// together with a sequence of right-hand-side symbols. An empty
// right-hand side denotes an epsilon-production.
type Rule struct {
	Serial int // rule number in declaration order
	LHS    *Symbol
	rhs    []*Symbol
}

// RHS returns the right-hand side of the rule.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// IsEpsilon returns true for epsilon-productions.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	rhs := make([]string, len(r.rhs))
	for i, sym := range r.rhs {
		rhs[i] = sym.Name
	}
	return fmt.Sprintf("%d: [%s] ::= [%s]", r.Serial, r.LHS.Name, strings.Join(rhs, " "))
}

// --- Grammar ---------------------------------------------------------------

// Grammar is an immutable context-free grammar, produced by a
// GrammarBuilder. The start symbol is the LHS of the first rule.
type Grammar struct {
	Name         string
	rules        *arraylist.List // of *Rule, in declaration order
	symbols      map[string]*Symbol
	terminals    *treeset.Set    // of *Symbol, ordered by token value
	nonterminals *arraylist.List // of *Symbol, in order of first appearance
	alternatives map[*Symbol][]*Rule
	start        *Symbol
}

func newGrammar(gname string) *Grammar {
	return &Grammar{
		Name:         gname,
		rules:        arraylist.New(),
		symbols:      make(map[string]*Symbol),
		terminals:    treeset.NewWith(symbolComparator),
		nonterminals: arraylist.New(),
		alternatives: make(map[*Symbol][]*Rule),
	}
}

// Size returns the number of rules in the grammar.
func (g *Grammar) Size() int {
	return g.rules.Size()
}

// Rule returns rule number no, or nil if no such rule exists.
func (g *Grammar) Rule(no int) *Rule {
	if r, ok := g.rules.Get(no); ok {
		return r.(*Rule)
	}
	return nil
}

// Start returns the grammar's start symbol, i.e. the LHS of rule 0.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// SymbolByName gets a symbol through its name, or nil if the grammar
// contains no symbol with that name.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.symbols[name]
}

// Terminal returns a terminal symbol with a given token value, or nil
// if the grammar contains none. If more than one terminal shares the
// token value, the one with the lexicographically smallest name is
// returned.
func (g *Grammar) Terminal(tokval int) *Symbol {
	it := g.terminals.Iterator()
	for it.Next() {
		sym := it.Value().(*Symbol)
		if sym.Value == tokval {
			return sym
		}
	}
	return nil
}

// Alternatives returns all rules with a given LHS symbol, in declaration
// order. A backtracking parser will try them first to last.
func (g *Grammar) Alternatives(lhs *Symbol) []*Rule {
	return g.alternatives[lhs]
}

// EachSymbol applies a mapper function to all symbols of the grammar,
// nonterminals first, and returns the mapper results.
func (g *Grammar) EachSymbol(f func(sym *Symbol) interface{}) []interface{} {
	results := g.EachNonTerminal(f)
	return append(results, g.EachTerminal(f)...)
}

// EachNonTerminal applies a mapper function to all nonterminals of the
// grammar, in order of first appearance.
func (g *Grammar) EachNonTerminal(f func(sym *Symbol) interface{}) []interface{} {
	results := make([]interface{}, 0, g.nonterminals.Size())
	it := g.nonterminals.Iterator()
	for it.Next() {
		results = append(results, f(it.Value().(*Symbol)))
	}
	return results
}

// EachTerminal applies a mapper function to all terminals of the grammar,
// ordered by token value.
func (g *Grammar) EachTerminal(f func(sym *Symbol) interface{}) []interface{} {
	results := make([]interface{}, 0, g.terminals.Size())
	it := g.terminals.Iterator()
	for it.Next() {
		results = append(results, f(it.Value().(*Symbol)))
	}
	return results
}

// Fingerprint returns a stable hash over the grammar's rules. Grammars
// with identical rule sets in identical order have identical
// fingerprints, independently of their display names.
func (g *Grammar) Fingerprint() string {
	sig := struct {
		Rules []string
	}{
		Rules: make([]string, g.rules.Size()),
	}
	it := g.rules.Iterator()
	for it.Next() {
		sig.Rules[it.Index()] = it.Value().(*Rule).String()
	}
	return fmt.Sprintf("%x", structhash.Sha1(sig, 1))
}

// Dump is a debugging helper, listing all rules of the grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s -----------------", g.Name)
	tracer().Debugf("    %d rules, %d nonterminals, %d terminals", g.rules.Size(),
		g.nonterminals.Size(), g.terminals.Size())
	tracer().Debugf("    fingerprint %s", g.Fingerprint())
	it := g.rules.Iterator()
	for it.Next() {
		tracer().Debugf("%s", it.Value().(*Rule))
	}
	tracer().Debugf("--------------------------------")
}

// --- Grammar builder -------------------------------------------------------

// GrammarBuilder is an object to incrementally construct a grammar.
// Errors during construction are collected and returned by Grammar();
// the builder methods themselves never fail and may be chained.
type GrammarBuilder struct {
	g   *Grammar
	err error
}

// NewGrammarBuilder gets a new grammar builder, set up to construct
// a grammar with the given name.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{g: newGrammar(gname)}
}

// LHS starts a new rule given the left-hand-side symbol's name.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{gb: gb, lhs: gb.nonterminal(name)}
}

// Grammar returns the constructed grammar, or an error if construction
// failed. The builder must not be used afterwards.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	g := gb.g
	if g.rules.Size() == 0 {
		return nil, fmt.Errorf("grammar %q has no rules", g.Name)
	}
	undef := g.EachNonTerminal(func(sym *Symbol) interface{} {
		if len(g.alternatives[sym]) == 0 {
			return sym
		}
		return nil
	})
	for _, u := range undef {
		if u != nil {
			return nil, fmt.Errorf("nonterminal %q has no rules", u.(*Symbol).Name)
		}
	}
	g.start = g.Rule(0).LHS
	tracer().Infof("grammar %q complete with %d rules", g.Name, g.rules.Size())
	return g, nil
}

func (gb *GrammarBuilder) error(format string, args ...interface{}) {
	if gb.err == nil {
		gb.err = fmt.Errorf(format, args...)
	}
	tracer().Errorf(format, args...)
}

// nonterminal looks up or creates a nonterminal symbol.
func (gb *GrammarBuilder) nonterminal(name string) *Symbol {
	if sym, ok := gb.g.symbols[name]; ok {
		if sym.IsTerminal() {
			gb.error("symbol %q already known as a terminal", name)
		}
		return sym
	}
	sym := &Symbol{Name: name, nt: true}
	gb.g.symbols[name] = sym
	gb.g.nonterminals.Add(sym)
	return sym
}

// terminal looks up or creates a terminal symbol with a token value.
// Token value 0 is reserved for epsilon.
func (gb *GrammarBuilder) terminal(name string, tokval int) *Symbol {
	if tokval == epsilonTok {
		gb.error("terminal %q: token value %d is reserved for epsilon", name, epsilonTok)
	}
	if sym, ok := gb.g.symbols[name]; ok {
		if !sym.IsTerminal() {
			gb.error("symbol %q already known as a nonterminal", name)
		} else if sym.Value != tokval {
			gb.error("terminal %q already known with token value %d", name, sym.Value)
		}
		return sym
	}
	sym := &Symbol{Name: name, Value: tokval}
	gb.g.symbols[name] = sym
	gb.g.terminals.Add(sym)
	return sym
}

// A RuleBuilder is used to construct a single grammar rule, appending
// right-hand-side symbols one at a time. It is returned by
// GrammarBuilder.LHS() and concluded by End() or Epsilon().
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs *Symbol
	rhs []*Symbol
}

// N appends a nonterminal symbol to the rule's right-hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, rb.gb.nonterminal(name))
	return rb
}

// T appends a terminal symbol to the rule's right-hand side, given its
// name and token value.
func (rb *RuleBuilder) T(name string, tokval int) *RuleBuilder {
	rb.rhs = append(rb.rhs, rb.gb.terminal(name, tokval))
	return rb
}

// End concludes a rule with a non-empty right-hand side and appends it
// to the grammar. Use Epsilon() for epsilon-productions.
func (rb *RuleBuilder) End() *Rule {
	if len(rb.rhs) == 0 {
		rb.gb.error("rule for %q has no RHS symbols, use Epsilon() instead", rb.lhs.Name)
		return nil
	}
	return rb.append()
}

// Epsilon concludes a rule as an epsilon-production, i.e. with an empty
// right-hand side, and appends it to the grammar.
func (rb *RuleBuilder) Epsilon() *Rule {
	if len(rb.rhs) > 0 {
		rb.gb.error("epsilon-rule for %q must not have RHS symbols", rb.lhs.Name)
		return nil
	}
	return rb.append()
}

func (rb *RuleBuilder) append() *Rule {
	g := rb.gb.g
	r := &Rule{
		Serial: g.rules.Size(),
		LHS:    rb.lhs,
		rhs:    rb.rhs,
	}
	g.rules.Add(r)
	g.alternatives[rb.lhs] = append(g.alternatives[rb.lhs], r)
	tracer().Debugf("grammar rule %s", r)
	return r
}
