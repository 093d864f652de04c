package tree

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// printListener writes one line per node, indented by nesting level.
type printListener struct {
	w      io.Writer
	indent string
	err    error
}

func (pl *printListener) EnterNode(n *Node, children []*VisitNode, ctxt NodeCtxt) bool {
	pl.line(n, ctxt.Level)
	return true
}

func (pl *printListener) ExitNode(n *Node, children []*VisitNode, ctxt NodeCtxt) interface{} {
	return nil
}

func (pl *printListener) Leaf(n *Node, ctxt NodeCtxt) interface{} {
	pl.line(n, ctxt.Level)
	return nil
}

func (pl *printListener) line(n *Node, level int) {
	if pl.err != nil {
		return
	}
	_, pl.err = fmt.Fprintf(pl.w, "%s%s\n", strings.Repeat(pl.indent, level), n.Label())
}

// Fprint writes an indented dump of the tree under n to w, one node per
// line. Nodes are indented by one dash per nesting level, with n itself at
// level 0:
//
//     RE
//     -(
//     -RE
//     --a
//     -)
//
// Fprint of a nil node writes nothing.
func Fprint(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	pl := &printListener{w: w, indent: "-"}
	NewCursor(n).TopDown(pl, LtoR, Continue)
	return pl.err
}

// Print is Fprint to stdout.
func Print(n *Node) error {
	return Fprint(os.Stdout, n)
}

// --- Frontier --------------------------------------------------------------

// frontierListener concatenates leaf labels bottom-up.
type frontierListener struct{}

func (frontierListener) EnterNode(n *Node, children []*VisitNode, ctxt NodeCtxt) bool {
	return true
}

func (frontierListener) ExitNode(n *Node, children []*VisitNode, ctxt NodeCtxt) interface{} {
	var sb strings.Builder
	for _, ch := range children {
		if s, ok := ch.Value.(string); ok {
			sb.WriteString(s)
		}
	}
	return sb.String()
}

func (frontierListener) Leaf(n *Node, ctxt NodeCtxt) interface{} {
	return n.Label()
}

// Frontier returns the concatenation of all leaf labels of the tree under n,
// left to right. For a derivation tree this reconstructs the input string
// the tree derives.
func Frontier(n *Node) string {
	if n == nil {
		return ""
	}
	value := NewCursor(n).TopDown(frontierListener{}, LtoR, Continue)
	s, _ := value.(string)
	return s
}
