package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"golang.org/x/tools/container/intsets"
)

// In FIRST sets, token value 0 stands for epsilon. Clients must not use
// 0 as the token value of a real terminal.
const epsilonTok = 0

// RDAnalysis holds the results of static grammar analysis: FIRST sets,
// epsilon-derivability and left recursion. Top-down parsers use it to
// check a grammar for feasibility before parsing starts.
type RDAnalysis struct {
	g        *Grammar
	first    map[*Symbol]*intsets.Sparse
	nullable symset
	leftrec  []*Symbol
}

// Analysis analyses a grammar and returns the analysis results.
func Analysis(g *Grammar) *RDAnalysis {
	ga := &RDAnalysis{
		g:        g,
		first:    make(map[*Symbol]*intsets.Sparse),
		nullable: symset{},
	}
	ga.markEpsilon()
	ga.computeFirst()
	ga.findLeftRecursion()
	return ga
}

// Grammar returns the grammar this analysis is for.
func (ga *RDAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(sym): the set of token values of all terminals
// which may start a string derived from sym. If sym derives epsilon,
// the set includes 0.
func (ga *RDAnalysis) First(sym *Symbol) *intsets.Sparse {
	return ga.first[sym]
}

// DerivesEpsilon returns true if sym may derive the empty string.
func (ga *RDAnalysis) DerivesEpsilon(sym *Symbol) bool {
	if sym.IsTerminal() {
		return false
	}
	return ga.nullable.contains(sym)
}

// LeftRecursive returns all left-recursive nonterminals of the grammar,
// i.e. all A with a derivation A ⇒+ A… . A grammar containing any is
// not fit for top-down parsing.
func (ga *RDAnalysis) LeftRecursive() []*Symbol {
	return ga.leftrec
}

// markEpsilon finds all nonterminals which may derive the empty string,
// by fixpoint iteration over the grammar's rules.
func (ga *RDAnalysis) markEpsilon() {
	changed := true
	for changed {
		changed = false
		it := ga.g.rules.Iterator()
		for it.Next() {
			r := it.Value().(*Rule)
			if ga.nullable.contains(r.LHS) {
				continue
			}
			if ga.allDeriveEpsilon(r.RHS()) {
				ga.nullable = ga.nullable.add(r.LHS)
				changed = true
			}
		}
	}
	for sym := range ga.nullable {
		tracer().Debugf("%s derives epsilon", sym)
	}
}

func (ga *RDAnalysis) allDeriveEpsilon(syms []*Symbol) bool {
	for _, sym := range syms {
		if !ga.DerivesEpsilon(sym) {
			return false
		}
	}
	return true
}

// computeFirst computes FIRST sets for all symbols of the grammar, by
// fixpoint iteration over the grammar's rules.
func (ga *RDAnalysis) computeFirst() {
	ga.g.EachTerminal(func(t *Symbol) interface{} {
		f := &intsets.Sparse{}
		f.Insert(t.Value)
		ga.first[t] = f
		return nil
	})
	ga.g.EachNonTerminal(func(A *Symbol) interface{} {
		ga.first[A] = &intsets.Sparse{}
		return nil
	})
	changed := true
	for changed {
		changed = false
		it := ga.g.rules.Iterator()
		for it.Next() {
			r := it.Value().(*Rule)
			f := ga.firstOfSequence(r.RHS())
			if ga.first[r.LHS].UnionWith(f) {
				changed = true
			}
		}
	}
	ga.g.EachNonTerminal(func(A *Symbol) interface{} {
		tracer().Debugf("FIRST(%s) = %s", A, ga.first[A])
		return nil
	})
}

// firstOfSequence returns FIRST for a sequence of grammar symbols, i.e.
// for the RHS of a rule. The epsilon marker is included iff every symbol
// of the sequence derives epsilon.
func (ga *RDAnalysis) firstOfSequence(syms []*Symbol) *intsets.Sparse {
	f := &intsets.Sparse{}
	for _, sym := range syms {
		var fsym intsets.Sparse
		fsym.Copy(ga.first[sym])
		fsym.Remove(epsilonTok)
		f.UnionWith(&fsym)
		if !ga.DerivesEpsilon(sym) {
			return f
		}
	}
	f.Insert(epsilonTok)
	return f
}

// findLeftRecursion finds all nonterminals A with a derivation A ⇒+ A… ,
// including indirect and epsilon-hidden left recursion.
func (ga *RDAnalysis) findLeftRecursion() {
	ga.g.EachNonTerminal(func(A *Symbol) interface{} {
		if ga.leftDerives(A, A, symset{}) {
			tracer().Infof("%s is left-recursive", A)
			ga.leftrec = append(ga.leftrec, A)
		}
		return nil
	})
}

// leftDerives reports wether target occurs in a leftmost position of some
// derivation starting at A. Only symbols with an all-nullable left context
// count as leftmost.
func (ga *RDAnalysis) leftDerives(A *Symbol, target *Symbol, seen symset) bool {
	seen = seen.add(A)
	for _, r := range ga.g.Alternatives(A) {
		for _, X := range r.RHS() {
			if X == target {
				return true
			}
			if X.IsTerminal() {
				break
			}
			if !seen.contains(X) && ga.leftDerives(X, target, seen) {
				return true
			}
			if !ga.DerivesEpsilon(X) {
				break
			}
		}
	}
	return false
}

// Dump is a debugging helper, listing the analysis results.
func (ga *RDAnalysis) Dump() {
	tracer().Debugf("--- analysis of %s -------------", ga.g.Name)
	ga.g.EachNonTerminal(func(A *Symbol) interface{} {
		eps := ""
		if ga.DerivesEpsilon(A) {
			eps = ", derives epsilon"
		}
		tracer().Debugf("FIRST(%s) = %s%s", A, ga.First(A), eps)
		return nil
	})
	for _, A := range ga.leftrec {
		tracer().Debugf("%s is left-recursive", A)
	}
	tracer().Debugf("--------------------------------")
}
