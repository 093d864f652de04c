/*
Package rd provides a backtracking recursive-descent parser. Clients
prepare a grammar with the tools of package grammar and receive a
derivation tree built with the node store of package tree.

The parser reads input character by character. A Categorizer maps each
character to a token category, and a terminal of the grammar matches a
character iff the terminal's token value equals that category. There is
no tokenization step: the grammar explains the input byte for byte, as
is appropriate for character-level grammars like regular-expression
syntax.

Alternatives of a nonterminal are tried in declaration order, and the
first alternative to succeed wins — the parser is greedy and
deterministic, but not longest-match. On failure of an alternative the
parser backtracks: the input cursor is reset and all tree nodes built
for the failed attempt are released again. Derivations are built in
detached subtrees and attached to the parent only on success, so a
failed parse leaves no partial structure behind; the node store's
counters return to their pre-attempt state.

Left-recursive grammars cannot be handled top-down and are rejected at
parser construction. Recursion depth during a parse is bounded; the
bound is derived from the input length, generous enough to never reject
a derivable input, and exceeding it is reported as an error distinct
from ordinary parse failure.

Usage

Clients construct a grammar, usually by using a grammar builder:

	b := grammar.NewGrammarBuilder("Sequences")
	b.LHS("S").T("a", 'a').N("S").End()   // S --> a S
	b.LHS("S").T("a", 'a').End()          // S --> a
	g, err := b.Grammar()

The grammar is subjected to grammar analysis and handed to a parser,
together with a categorizer for input characters:

	chars := rd.CatFunc(func(c byte) retree.TokType {
		return retree.TokType(c)
	})
	p, err := rd.NewParser(grammar.Analysis(g), chars)
	accepted, root, err := p.Parse("aaa")

On acceptance, root is a synthetic node whose single child derives the
complete input.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rd

import (
	"errors"
	"fmt"

	"github.com/npillmayer/retree"
	"github.com/npillmayer/retree/grammar"
	"github.com/npillmayer/retree/tree"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'retree.rd'.
func tracer() tracing.Trace {
	return tracing.Select("retree.rd")
}

// ErrDepthExceeded is returned from a parse which exceeded the parser's
// recursion depth bound. This is different from ordinary parse failure:
// the input may or may not be derivable, but the parser refused to
// recurse deeper.
var ErrDepthExceeded = errors.New("recursion depth bound exceeded")

// A Categorizer maps an input character to a token category. The parser
// matches a terminal of the grammar by comparing the terminal's token
// value with the category of the character at the cursor.
type Categorizer interface {
	Cat(c byte) retree.TokType
}

// CatFunc adapts an ordinary function to the Categorizer interface.
type CatFunc func(c byte) retree.TokType

// Cat calls f(c).
func (f CatFunc) Cat(c byte) retree.TokType {
	return f(c)
}

// Parser is a backtracking recursive-descent parser type. Create and
// initialize one with rd.NewParser(...).
//
// A parser owns a node store and is intended for sequential use: one
// parse at a time. It is not safe for concurrent use.
type Parser struct {
	ga        *grammar.RDAnalysis
	cat       Categorizer
	store     *tree.Store
	rootLabel string
	maxDepth  int    // fixed recursion depth bound; 0 = derive from input length
	input     string // input text of the current parse
	depthCap  int    // effective depth bound of the current parse
	furthest  int    // furthest input position reached
}

// Option configures a parser.
type Option func(p *Parser)

// RootLabel sets the label of the synthetic root node attached on top of
// a successful derivation. The default label is "Root".
func RootLabel(label string) Option {
	return func(p *Parser) {
		p.rootLabel = label
	}
}

// MaxDepth sets a fixed bound on the recursion depth of the parser.
// Without this option the bound is derived from the input length, large
// enough to never reject a derivable input.
func MaxDepth(max int) Option {
	return func(p *Parser) {
		p.maxDepth = max
	}
}

// TreeStore lets the parser allocate tree nodes from a client-provided
// store. Clients use this to observe allocation and release counts, or
// to account several parsers to one store.
func TreeStore(store *tree.Store) Option {
	return func(p *Parser) {
		p.store = store
	}
}

// NewParser creates a recursive-descent parser for an analysed grammar.
// It returns an error for grammars not fit for top-down parsing, i.e.
// grammars containing left-recursive nonterminals.
func NewParser(ga *grammar.RDAnalysis, cat Categorizer, opts ...Option) (*Parser, error) {
	if ga == nil {
		return nil, fmt.Errorf("recursive-descent parser needs a grammar analysis")
	}
	if cat == nil {
		return nil, fmt.Errorf("recursive-descent parser needs a categorizer")
	}
	if lrec := ga.LeftRecursive(); len(lrec) > 0 {
		tracer().Errorf("grammar %q is left-recursive: %v", ga.Grammar().Name, lrec)
		return nil, fmt.Errorf("grammar %q is left-recursive (%v); cannot parse top-down",
			ga.Grammar().Name, lrec)
	}
	parser := &Parser{
		ga:        ga,
		cat:       cat,
		rootLabel: "Root",
	}
	for _, opt := range opts {
		opt(parser)
	}
	if parser.store == nil {
		parser.store = tree.NewStore()
	}
	return parser, nil
}

// Store returns the node store the parser allocates tree nodes from.
func (p *Parser) Store() *tree.Store {
	return p.store
}

// Furthest returns the furthest input position reached during the most
// recent parse. After a rejected input this is a hint at where the
// input stopped being derivable.
func (p *Parser) Furthest() int {
	return p.furthest
}

// Parse starts a new parse, reading input from the given string.
//
// The parser returns true iff the grammar derives the entire input, not
// just a prefix. On acceptance it returns the root of the derivation
// tree: a synthetic node, labeled with the parser's root label, whose
// single child is the derivation of the grammar's start symbol.
//
// A rejected input is not an error; rejection returns (false, nil, nil)
// and releases every speculatively built node. The error return is
// reserved for aborted parses, currently only ErrDepthExceeded.
func (p *Parser) Parse(input string) (bool, *tree.Node, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.ga == nil || p.cat == nil {
		tracer().Errorf("recursive-descent parser not initialized")
		return false, nil, fmt.Errorf("recursive-descent parser not initialized")
	}
	p.input = input
	p.furthest = 0
	p.depthCap = p.maxDepth
	if p.depthCap == 0 {
		p.depthCap = 4*len(input) + 16
	}
	tracer().Debugf("parsing %q, depth bound %d", input, p.depthCap)
	node, cur, ok, err := p.parseNonterm(p.ga.Grammar().Start(), 0, 1)
	if err != nil {
		return false, nil, err
	}
	if !ok {
		tracer().Infof("input rejected, parse reached position %d", p.furthest)
		return false, nil, nil
	}
	if cur != len(input) {
		tracer().Infof("input rejected, trailing input at position %d not derivable", cur)
		p.store.ReleaseSubtree(node)
		return false, nil, nil
	}
	root := p.store.New(p.rootLabel)
	root.AppendChild(node)
	tracer().Infof("input accepted, derivation tree has %d live nodes", p.store.Live())
	return true, root, nil
}

// parseNonterm tries to derive input from nonterminal A, starting at
// input position pos. Alternatives for A are tried in declaration order;
// the first one to succeed wins and no further alternatives are tried.
//
// The derivation is built in a detached node and attached to the
// caller's tree only after an alternative succeeded completely, so a
// failed attempt never leaves partial structure in the caller's tree.
// On failure of a single alternative, the children collected so far are
// rolled back and the next alternative starts over from pos.
func (p *Parser) parseNonterm(A *grammar.Symbol, pos int, depth int) (*tree.Node, int, bool, error) {
	if depth > p.depthCap {
		return nil, pos, false, p.depthExceeded(A, pos)
	}
	node := p.store.New(A.Name)
	for _, r := range p.ga.Grammar().Alternatives(A) {
		tracer().Debugf("%2d: trying rule %v at position %d", depth, r, pos)
		cur := pos
		good := true
		for _, X := range r.RHS() {
			if X.IsTerminal() {
				var ok bool
				if cur, ok = p.matchTerminal(X, cur, node); !ok {
					good = false
					break
				}
				continue
			}
			child, next, ok, err := p.parseNonterm(X, cur, depth+1)
			if err != nil {
				p.store.ReleaseSubtree(node)
				return nil, pos, false, err
			}
			if !ok {
				good = false
				break
			}
			node.AppendChild(child)
			cur = next
		}
		if good {
			tracer().Debugf("%2d: rule %v derives input %d…%d", depth, r, pos, cur)
			return node, cur, true, nil
		}
		p.store.ReleaseChildren(node) // roll back children of the failed alternative
	}
	p.store.ReleaseSubtree(node)
	return nil, pos, false, nil
}

// matchTerminal tests the input character at position pos against
// terminal t. On match it attaches a leaf node, labeled with the
// matched character, to parent, and advances the cursor by one. On
// mismatch it does not touch the tree.
func (p *Parser) matchTerminal(t *grammar.Symbol, pos int, parent *tree.Node) (int, bool) {
	if pos >= len(p.input) {
		return pos, false
	}
	if p.cat.Cat(p.input[pos]) != t.TokenType() {
		return pos, false
	}
	parent.AppendChild(p.store.New(p.input[pos : pos+1]))
	if pos+1 > p.furthest {
		p.furthest = pos + 1
	}
	return pos + 1, true
}

func (p *Parser) depthExceeded(A *grammar.Symbol, pos int) error {
	tracer().Errorf("recursion depth bound %d exceeded at %s, position %d", p.depthCap, A, pos)
	if gconf.GetBool("panic-on-depth-exceeded") {
		panic(`Recursive-descent parser exceeded its recursion depth bound.

Configuration flag panic-on-depth-exceeded is set to true. It is aimed at
helping to debug a parser and do a post-mortem of why it recursed this deep.
However, if this is a production environment and you did not expect this to
panic, please unset panic-on-depth-exceeded to its default (false).
`)
	}
	return ErrDepthExceeded
}
