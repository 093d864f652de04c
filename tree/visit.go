package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// VisitNode pairs a tree node with a user-computed value during a walk.
// Values of children nodes are filled in before the listener's exit-call
// for the parent, letting listeners compute synthesized attributes.
type VisitNode struct {
	Node  *Node
	Value interface{} // user-defined value of a node
}

// A Cursor is a movable mark within a derivation tree, intended for
// navigating over nodes. Cursors do not modify the tree.
type Cursor struct {
	current   *Node
	startNode *Node
	stack     []frame
}

type frame struct {
	parent *Node
	index  int
	dir    Direction
}

// NewCursor sets up a cursor at a given tree node. The node will be treated
// as the root of the walk; the cursor will not move above it. Returns nil
// for a nil node.
func NewCursor(n *Node) *Cursor {
	if n == nil {
		return nil
	}
	return &Cursor{
		current:   n,
		startNode: n,
		stack:     make([]frame, 0, 32),
	}
}

// Current returns the node the cursor currently sits at.
func (c *Cursor) Current() *Node {
	return c.current
}

// childIndex returns the position of the current node within its parent's
// child list, or -1 if the cursor sits at the start node.
func (c *Cursor) childIndex() int {
	if len(c.stack) == 0 {
		return -1
	}
	return c.stack[len(c.stack)-1].index
}

// Down moves the cursor down to a child of the current node, if any.
// dir lets clients start at either the leftmost child (default) or the
// rightmost child.
func (c *Cursor) Down(dir Direction) (*Node, bool) {
	children := c.current.Children()
	if len(children) == 0 {
		return c.current, false
	}
	i := 0
	if dir == RtoL {
		i = len(children) - 1
	}
	c.stack = append(c.stack, frame{parent: c.current, index: i, dir: dir})
	c.current = children[i]
	tracer().Debugf("DOWN Cursor @ %v", c.current)
	return c.current, true
}

// Sibling moves the cursor to the next sibling of the current node, if any,
// following the direction of the preceding Down.
func (c *Cursor) Sibling() (*Node, bool) {
	if len(c.stack) == 0 {
		return c.current, false
	}
	top := &c.stack[len(c.stack)-1]
	i := top.index + int(top.dir)
	if i < 0 || i >= top.parent.ChildCount() {
		return c.current, false
	}
	top.index = i
	c.current = top.parent.Child(i)
	tracer().Debugf("SIBLING Cursor @ %v", c.current)
	return c.current, true
}

// Up moves the cursor up to the parent node of the current node, if any.
func (c *Cursor) Up() (*Node, bool) {
	if len(c.stack) == 0 {
		return c.current, false
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.current = top.parent
	tracer().Debugf("UP Cursor @ %v", c.current)
	return c.current, true
}

// TopDown traverses a sub-tree top-down, applying Listener-methods for all
// nodes encountered. It returns a user-defined value, calculated by the
// listener.
func (c *Cursor) TopDown(listener Listener, dir Direction, breakmode Breakmode) interface{} {
	tracer().Debugf("TopDown starting at node %v", c.current)
	value := c.traverseTopDown(listener, dir, breakmode, 0)
	return value
}

func (c *Cursor) traverseTopDown(listener Listener, dir Direction, breakmode Breakmode, level int) interface{} {
	if c.current.IsLeaf() {
		ctxt := makeCtxt(level, c.childIndex())
		return listener.Leaf(c.current, ctxt)
	}
	tracer().Debugf(">>> %s", c.current)
	node := c.current
	children := make([]*VisitNode, node.ChildCount())
	for i, ch := range node.Children() {
		children[i] = &VisitNode{Node: ch}
	}
	ctxt := makeCtxt(level, c.childIndex())
	doContinue := listener.EnterNode(node, children, ctxt)
	if doContinue || breakmode == Continue { // listener signalled us to traverse children nodes
		i := 0
		if dir == RtoL {
			i = len(children) - 1
		}
		if _, ok := c.Down(dir); ok {
			for ; ok; _, ok = c.Sibling() {
				chvalue := c.traverseTopDown(listener, dir, breakmode, level+1)
				tracer().Debugf("child value[%d] = %v", i, chvalue)
				children[i].Value = chvalue
				i += int(dir)
			}
			c.Up()
		}
	}
	value := listener.ExitNode(node, children, ctxt)
	tracer().Debugf("<<< %s", node)
	return value
}

// Direction lets clients decide wether children nodes should be traversed
// left-to-right (default) or right-to-left.
type Direction int

// Children nodes may be traversed left-to-right (default) or right-to-left.
const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// Breakmode is a client hint wether to stop traversing on break-signals or not.
type Breakmode int

// Setting Continue will always traverse a complete (sub-)tree. Break will skip
// traversing sub-trees as soon as an Enter-function signals a break.
const (
	Continue Breakmode = iota
	Break
)

// --- Listener --------------------------------------------------------------

// Listener is a type for walking a derivation tree.
//
// EnterNode returns a boolean value indicating if the traversal should
// continue to the children of this node. ExitNode and Leaf may return
// user-defined values to be propagated upwards of the tree. The children
// slice handed to ExitNode carries the values returned for the children.
type Listener interface {
	EnterNode(*Node, []*VisitNode, NodeCtxt) bool
	ExitNode(*Node, []*VisitNode, NodeCtxt) interface{}
	Leaf(*Node, NodeCtxt) interface{}
}

// NodeCtxt is a context structure for Listeners.
type NodeCtxt struct {
	Level int // nesting level, counting from the start node of the walk
	Index int // position within the parent's child list, -1 for the start node
}

func makeCtxt(level int, index int) NodeCtxt {
	return NodeCtxt{
		Level: level,
		Index: index,
	}
}

// ---------------------------------------------------------------------------
