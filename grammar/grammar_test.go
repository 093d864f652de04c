package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// S  ->  A a
// A  ->  B
// B  ->  b
// B  ->
func makeSmallGrammar(t *testing.T, gname string) *Grammar {
	b := NewGrammarBuilder(gname)
	b.LHS("S").N("A").T("a", 1).End()
	b.LHS("A").N("B").End()
	b.LHS("B").T("b", 2).End()
	b.LHS("B").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGrammarBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "retree.rd")
	defer teardown()
	//
	g := makeSmallGrammar(t, "G")
	g.Dump()
	if g.Size() != 4 {
		t.Errorf("Expected grammar with 4 rules, has %d", g.Size())
	}
	if g.Start() == nil || g.Start().Name != "S" {
		t.Errorf("Expected start symbol S, have %v", g.Start())
	}
	if r := g.Rule(0); r.LHS.Name != "S" || len(r.RHS()) != 2 {
		t.Errorf("Expected rule 0 to be S ::= A a, is %v", r)
	}
	if !g.Rule(3).IsEpsilon() {
		t.Errorf("Expected rule 3 to be an epsilon-rule, is %v", g.Rule(3))
	}
	if sym := g.SymbolByName("A"); sym == nil || sym.IsTerminal() {
		t.Errorf("Expected nonterminal A in grammar, have %v", sym)
	}
	if term := g.Terminal(2); term == nil || term.Name != "b" {
		t.Errorf("Expected terminal b for token value 2, have %v", term)
	}
}

func TestGrammarRuleStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "retree.rd")
	defer teardown()
	//
	g := makeSmallGrammar(t, "G")
	if s := g.Rule(0).String(); s != "0: [S] ::= [A a]" {
		t.Errorf("Unexpected string for rule 0: %q", s)
	}
	if s := g.Rule(3).String(); s != "3: [B] ::= []" {
		t.Errorf("Unexpected string for rule 3: %q", s)
	}
}

func TestGrammarAlternativesOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "retree.rd")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T("x", 'x').T("y", 'y').End()
	b.LHS("S").T("x", 'x').End()
	b.LHS("S").T("y", 'y').End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	alts := g.Alternatives(g.Start())
	if len(alts) != 3 {
		t.Fatalf("Expected 3 alternatives for S, have %d", len(alts))
	}
	for i, r := range alts {
		if r.Serial != i {
			t.Errorf("Expected alternative %d to be rule %d, is rule %d", i, i, r.Serial)
		}
	}
}

func TestGrammarBuilderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "retree.rd")
	defer teardown()
	//
	b := NewGrammarBuilder("empty")
	if _, err := b.Grammar(); err == nil {
		t.Errorf("Expected error for grammar without rules, got none")
	}
	b = NewGrammarBuilder("undefined nonterminal")
	b.LHS("S").N("A").End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("Expected error for undefined nonterminal A, got none")
	}
	b = NewGrammarBuilder("kind conflict")
	b.LHS("S").T("a", 1).End()
	b.LHS("a").T("b", 2).End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("Expected error for terminal a used as LHS, got none")
	}
	b = NewGrammarBuilder("token value conflict")
	b.LHS("S").T("a", 1).T("a", 2).End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("Expected error for terminal a with 2 token values, got none")
	}
	b = NewGrammarBuilder("empty RHS")
	b.LHS("S").End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("Expected error for End() without RHS symbols, got none")
	}
	b = NewGrammarBuilder("reserved token value")
	b.LHS("S").T("a", 0).End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("Expected error for terminal with token value 0, got none")
	}
}

func TestGrammarFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "retree.rd")
	defer teardown()
	//
	g1 := makeSmallGrammar(t, "G1")
	g2 := makeSmallGrammar(t, "G2")
	if g1.Fingerprint() != g2.Fingerprint() {
		t.Errorf("Expected identical fingerprints for identical rule sets")
	}
	b := NewGrammarBuilder("G3")
	b.LHS("S").T("a", 1).End()
	g3, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g1.Fingerprint() == g3.Fingerprint() {
		t.Errorf("Expected different fingerprints for different rule sets")
	}
}
