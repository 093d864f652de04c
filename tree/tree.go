/*
Package tree implements derivation trees and a store managing their nodes.

A derivation tree records which grammar rules a recognizer applied to derive
an input string. Interior nodes are labeled with nonterminal names, leaves
with terminal lexemes. Trees are built strictly through a Store, which keeps
allocation and release counters. A parser trying alternatives will allocate
nodes speculatively and release them again on backtracking; after a failed
parse the store's live count must return to zero. The counters make leaks
observable in tests.

Nodes are plain labeled n-ary tree nodes. The child list of a node grows on
demand and preserves attachment order, which for derivation trees is the
left-to-right order of the rule's right-hand side.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'retree.rd'.
func tracer() tracing.Trace {
	return tracing.Select("retree.rd")
}

// --- Node ------------------------------------------------------------------

// Node is a node of a derivation tree. Nodes carry a label and an ordered
// list of children. Clients create nodes through a Store and must not share
// them between stores.
type Node struct {
	label    string
	children []*Node
	released bool
}

// Label returns the node's label, i.e. a nonterminal name for interior nodes
// or a terminal lexeme for leaves.
func (n *Node) Label() string {
	return n.label
}

// ChildCount returns the number of children currently attached to n.
func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Child returns child number i (counting from 0, left to right), or nil if
// no such child exists.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns the children of n as a slice. The slice is owned by the
// node and must not be modified by callers.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.children
}

// IsLeaf returns true if n has no children.
func (n *Node) IsLeaf() bool {
	return n.ChildCount() == 0
}

// AppendChild attaches a child node after the currently last child of n.
// Appending nil is a no-op.
func (n *Node) AppendChild(child *Node) *Node {
	if child == nil {
		return n
	}
	n.children = append(n.children, child)
	return n
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.label
}

// --- Store -----------------------------------------------------------------

// A Store creates and releases tree nodes and keeps count of both. A store
// is intended to be owned by a single parse run and is not safe for
// concurrent use.
type Store struct {
	allocated int
	released  int
}

// NewStore creates an empty node store with zeroed counters.
func NewStore() *Store {
	return &Store{}
}

// New allocates a fresh node with the given label and no children.
func (s *Store) New(label string) *Node {
	s.allocated++
	return &Node{label: label}
}

// Allocated returns the total number of nodes created by the store.
func (s *Store) Allocated() int {
	return s.allocated
}

// Released returns the total number of nodes given back to the store.
func (s *Store) Released() int {
	return s.released
}

// Live returns the number of nodes currently allocated and not yet released.
func (s *Store) Live() int {
	return s.allocated - s.released
}

// ReleaseSubtree gives the node and all of its descendants back to the
// store. It is a no-op for nil nodes and for nodes already released.
func (s *Store) ReleaseSubtree(n *Node) {
	if n == nil {
		return
	}
	if n.released {
		tracer().Errorf("release of already released node %q", n.label)
		return
	}
	for i, ch := range n.children {
		s.ReleaseSubtree(ch)
		n.children[i] = nil
	}
	n.children = nil
	n.released = true
	s.released++
}

// ReleaseChildren releases all children subtrees of n, leaving n itself
// alive with an empty child list.
func (s *Store) ReleaseChildren(n *Node) {
	if n == nil {
		return
	}
	for i, ch := range n.children {
		s.ReleaseSubtree(ch)
		n.children[i] = nil
	}
	n.children = n.children[:0]
}

// TruncateChildren releases all children of n after the first keep ones,
// restoring the child list to a previous length. Children are released
// together with their subtrees. keep may equal the current child count, in
// which case nothing happens.
func (s *Store) TruncateChildren(n *Node, keep int) error {
	if n == nil {
		return fmt.Errorf("cannot truncate children of nil node")
	}
	if keep < 0 || keep > len(n.children) {
		return fmt.Errorf("cannot truncate node %q to %d children, has %d",
			n.label, keep, len(n.children))
	}
	for i := keep; i < len(n.children); i++ {
		s.ReleaseSubtree(n.children[i])
		n.children[i] = nil
	}
	n.children = n.children[:keep]
	return nil
}

// RollbackLast releases the last count children of n, including their
// subtrees. It returns an error if n has fewer than count children; the
// node is left unchanged then.
func (s *Store) RollbackLast(n *Node, count int) error {
	if n == nil {
		return fmt.Errorf("cannot roll back children of nil node")
	}
	if count < 0 || count > len(n.children) {
		return fmt.Errorf("cannot roll back %d children of node %q, has %d",
			count, n.label, len(n.children))
	}
	return s.TruncateChildren(n, len(n.children)-count)
}
