package relang

import (
	"testing"

	"github.com/npillmayer/retree/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/exp/rand"
)

func TestCat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "retree.lang")
	defer teardown()
	//
	for i, test := range []struct {
		c   byte
		cat int
	}{
		{c: 'a', cat: int(Symbol)},
		{c: 'Z', cat: int(Symbol)},
		{c: '7', cat: int(Symbol)},
		{c: '_', cat: int(Symbol)},
		{c: '#', cat: int(Epsilon)},
		{c: '(', cat: int(LParen)},
		{c: ')', cat: int(RParen)},
		{c: '*', cat: int(Star)},
		{c: '+', cat: int(Plus)},
		{c: ' ', cat: int(Illegal)},
		{c: '?', cat: int(Illegal)},
	} {
		if cat := Cat(test.c); int(cat) != test.cat {
			t.Errorf("test %d: expected category of %q to be %d, is %d", i, test.c, test.cat, cat)
		}
	}
}

func TestScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "retree.lang")
	defer teardown()
	//
	toks, err := Tokens("(ab)*+#")
	if err != nil {
		t.Error(err)
	}
	for _, tok := range toks {
		t.Logf("token = %q with value = %d", tok.Lexeme(), tok.TokType())
	}
	if len(toks) != 7 {
		t.Errorf("Expected 7 tokens, have %d", len(toks))
	}
	if toks[1].TokType() != Symbol || toks[1].Lexeme() != "a" {
		t.Errorf("Expected token #1 to be symbol a, is %q", toks[1].Lexeme())
	}
	if toks[4].TokType() != Star {
		t.Errorf("Expected token #4 to be the star operator, is %q", toks[4].Lexeme())
	}
	toks, err = Tokens("a?b")
	if err == nil {
		t.Errorf("Expected tokenizer error for '?', got none")
	}
	if len(toks) != 2 {
		t.Errorf("Expected tokenizer to recover with 2 tokens, have %d", len(toks))
	}
}

func TestLanguageGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "retree.lang")
	defer teardown()
	//
	g := Grammar()
	if g.Size() != 12 {
		t.Errorf("Expected the grammar to have 12 rules, has %d", g.Size())
	}
	if g.Start().Name != "RE" {
		t.Errorf("Expected start symbol RE, have %q", g.Start().Name)
	}
	alts := g.Alternatives(g.SymbolByName("RE'"))
	if len(alts) != 6 {
		t.Fatalf("Expected 6 alternatives for RE', have %d", len(alts))
	}
	if alts[0].Serial != 6 {
		t.Errorf("Expected alternation to be the first alternative of RE', is #%d", alts[0].Serial)
	}
}

func TestParseScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "retree.lang")
	defer teardown()
	//
	for i, test := range []struct {
		input  string
		accept bool
	}{
		{input: "#", accept: true},
		{input: "a", accept: true},
		{input: "_", accept: true},
		{input: "ab", accept: true},
		{input: "a+b", accept: true},
		{input: "(a)", accept: true},
		{input: "a*", accept: true},
		{input: "a**", accept: true},
		{input: "(a+b)*c", accept: true},
		{input: "(a+#)(b)", accept: true},
		{input: "", accept: false},
		{input: "(a", accept: false},
		{input: "a)", accept: false},
		{input: "a+", accept: false},
		{input: "+a", accept: false},
		{input: "*", accept: false},
		{input: "()", accept: false},
		{input: "a b", accept: false},
		{input: "α", accept: false},
	} {
		accepted, _, err := Parse(test.input)
		if err != nil {
			t.Errorf("test %d: %v", i, err)
		}
		if accepted != test.accept {
			t.Errorf("test %d: expected accept=%v for %q, have %v", i, test.accept, test.input, accepted)
		}
	}
}

// RE ⟶ #
func TestParseTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "retree.lang")
	defer teardown()
	//
	accepted, root, err := Parse("#")
	if err != nil || !accepted {
		t.Fatalf("Expected \"#\" to be accepted, wasn't (err=%v)", err)
	}
	if root.Label() != "Root" || root.ChildCount() != 1 {
		t.Fatalf("Expected root node with a single child, have %v", root)
	}
	re := root.Child(0)
	if re.Label() != "RE" || re.ChildCount() != 1 {
		t.Fatalf("Expected RE node with a single child, have %v", re)
	}
	if leaf := re.Child(0); !leaf.IsLeaf() || leaf.Label() != "#" {
		t.Errorf("Expected leaf #, have %v", leaf)
	}
	if f := tree.Frontier(root); f != "#" {
		t.Errorf("Expected tree frontier \"#\", have %q", f)
	}
}

// RE ⟶ symbol RE',  RE' ⟶ *
func TestParseStar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "retree.lang")
	defer teardown()
	//
	accepted, root, err := Parse("a*")
	if err != nil || !accepted {
		t.Fatalf("Expected \"a*\" to be accepted, wasn't (err=%v)", err)
	}
	re := root.Child(0)
	if re.ChildCount() != 2 {
		t.Fatalf("Expected RE to derive symbol RE', has %d children", re.ChildCount())
	}
	if re.Child(0).Label() != "a" {
		t.Errorf("Expected first child of RE to be leaf a, is %q", re.Child(0).Label())
	}
	rePrime := re.Child(1)
	if rePrime.Label() != "RE'" || rePrime.ChildCount() != 1 {
		t.Fatalf("Expected RE' node with a single child, have %v", rePrime)
	}
	if rePrime.Child(0).Label() != "*" {
		t.Errorf("Expected RE' to derive the star operator, is %q", rePrime.Child(0).Label())
	}
}

// RE ⟶ symbol RE',  RE' ⟶ RE,  RE ⟶ symbol
func TestParseConcatenation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "retree.lang")
	defer teardown()
	//
	accepted, root, err := Parse("ab")
	if err != nil || !accepted {
		t.Fatalf("Expected \"ab\" to be accepted, wasn't (err=%v)", err)
	}
	re := root.Child(0)
	if re.ChildCount() != 2 {
		t.Fatalf("Expected RE to derive symbol RE', has %d children", re.ChildCount())
	}
	rePrime := re.Child(1)
	if rePrime.Label() != "RE'" || rePrime.ChildCount() != 1 {
		t.Fatalf("Expected RE' node with a single child, have %v", rePrime)
	}
	inner := rePrime.Child(0)
	if inner.Label() != "RE" || inner.ChildCount() != 1 {
		t.Fatalf("Expected RE' to derive a nested RE, have %v", inner)
	}
	if inner.Child(0).Label() != "b" {
		t.Errorf("Expected nested RE to derive leaf b, is %q", inner.Child(0).Label())
	}
}

func TestParseNodeCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "retree.lang")
	defer teardown()
	//
	store := tree.NewStore()
	accepted, _, err := ParseWith(store, "(a")
	if err != nil || accepted {
		t.Fatalf("Expected \"(a\" to be rejected, wasn't (err=%v)", err)
	}
	if store.Live() != 0 {
		t.Errorf("Expected no live nodes after rejection, have %d", store.Live())
	}
	store = tree.NewStore()
	accepted, root, err := ParseWith(store, "(a)")
	if err != nil || !accepted {
		t.Fatalf("Expected \"(a)\" to be accepted, wasn't (err=%v)", err)
	}
	// Root, outer RE, '(', inner RE, 'a', ')'
	if store.Live() != 6 {
		t.Errorf("Expected 6 live nodes for the derivation of \"(a)\", have %d", store.Live())
	}
	store.ReleaseSubtree(root)
	if store.Live() != 0 {
		t.Errorf("Expected no live nodes after releasing the tree, have %d", store.Live())
	}
}

func TestParseRandomExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "retree.lang")
	defer teardown()
	//
	rng := rand.New(rand.NewSource(4711))
	store := tree.NewStore()
	for i := 0; i < 50; i++ {
		input := genRE(rng, 4)
		accepted, root, err := ParseWith(store, input)
		if err != nil {
			t.Fatalf("expression #%d %q: %v", i, input, err)
		}
		if !accepted {
			t.Fatalf("Expected expression #%d %q to be accepted, wasn't", i, input)
		}
		if f := tree.Frontier(root); f != input {
			t.Fatalf("Expected tree frontier to equal input %q, have %q", input, f)
		}
		store.ReleaseSubtree(root)
		if store.Live() != 0 {
			t.Fatalf("Expected no nodes to survive expression #%d, have %d", i, store.Live())
		}
	}
}

// genRE generates a random well-formed expression, nested up to a given depth.
func genRE(rng *rand.Rand, depth int) string {
	if depth <= 0 {
		if rng.Intn(4) == 0 {
			return "#"
		}
		return string(rune('a' + rng.Intn(26)))
	}
	switch rng.Intn(4) {
	case 0:
		return genRE(rng, depth-1) + "+" + genRE(rng, depth-1)
	case 1:
		return genRE(rng, depth-1) + "*"
	case 2:
		return "(" + genRE(rng, depth-1) + ")"
	}
	return genRE(rng, depth-1) + genRE(rng, depth-1)
}

func TestDiagnose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "retree.lang")
	defer teardown()
	//
	if ok, msg := Diagnose("(a)"); !ok || msg != "" {
		t.Errorf("Expected no diagnosis for \"(a)\", have %q", msg)
	}
	if ok, msg := Diagnose("a)b"); ok || msg != `syntax error at position 1: unexpected ')'` {
		t.Errorf("Unexpected diagnosis for \"a)b\": %q", msg)
	}
	if ok, msg := Diagnose("a+"); ok || msg != "syntax error: unexpected end of input" {
		t.Errorf("Unexpected diagnosis for \"a+\": %q", msg)
	}
}
