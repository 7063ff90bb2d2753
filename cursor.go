package suffixtree

import (
	"slices"
)

// Cursor walks a tree from the root, item by item.
//
// A cursor is read-only and bound to one tree. Cursors may be used concurrently
// with other cursors, but not while the tree is changed by Add.
type Cursor[I comparable] struct {
	tree  *Tree[I]
	node  NodeID  // node the cursor is at, or the parent node of edge
	edge  edgeRef // noEdge if positioned exactly at node
	pos   int     // items consumed along edge
	depth int     // items consumed since the root
}

// NewCursor creates a cursor positioned at the root of tree.
func NewCursor[I comparable](tree *Tree[I]) (*Cursor[I], error) {
	if tree == nil {
		return nil, ErrIllegalArguments
	}
	return &Cursor[I]{
		tree: tree,
		node: rootNode,
		edge: noEdge,
	}, nil
}

// Reset moves the cursor back to the root.
func (c *Cursor[I]) Reset() {
	if c == nil {
		return
	}
	c.node, c.edge, c.pos, c.depth = rootNode, noEdge, 0, 0
}

// Depth returns the number of items walked since the root.
func (c *Cursor[I]) Depth() int {
	if c == nil {
		return 0
	}
	return c.depth
}

// ProceedTo advances the cursor by one item.
//
// If there is no path continuing with item from the current position, ProceedTo
// returns false and leaves the cursor unmoved.
func (c *Cursor[I]) ProceedTo(item I) bool {
	return c.proceed(itemSymbol(item))
}

// ProceedToTerminal advances the cursor across the terminal of sequence id.
// It succeeds if and only if the path walked so far is a suffix of sequence id.
func (c *Cursor[I]) ProceedToTerminal(id SequenceID) bool {
	if id == NoSequence {
		return false
	}
	return c.proceed(terminalSymbol[I](id))
}

func (c *Cursor[I]) proceed(s Symbol[I]) bool {
	if c == nil || c.tree == nil {
		return false
	}
	t := c.tree
	if c.edge == noEdge {
		e, ok := t.nodes[c.node].edgeStarting(s)
		if !ok {
			return false
		}
		c.edge, c.pos = e, 1
	} else {
		if c.pos >= t.edgeLength(c.edge) { // end of leaf
			return false
		}
		if t.master.sym(t.edges[c.edge].start+c.pos) != s {
			return false
		}
		c.pos++
	}
	c.depth++
	if ed := t.edges[c.edge]; c.pos == ed.length(t.currentEnd) && !ed.isLeaf() {
		c.node, c.edge, c.pos = ed.terminal, noEdge, 0
	}
	return true
}

// isMidEdge is true if the cursor sits strictly inside an edge.
func (c *Cursor[I]) isMidEdge() bool {
	return c.edge != noEdge && c.pos < c.tree.edgeLength(c.edge)
}

// SequenceTerminalsHere returns the terminals reachable from a node boundary
// at the current position.
//
// If the cursor sits inside an edge, the result is empty. If the cursor has
// walked a leaf edge completely, the result is the terminal of that leaf.
// Otherwise the result is the union of the terminals of all leaves below the
// current node. IDs are returned in ascending order.
func (c *Cursor[I]) SequenceTerminalsHere() []SequenceID {
	if c == nil || c.tree == nil || c.isMidEdge() {
		return []SequenceID{}
	}
	if c.edge != noEdge { // at end of a leaf
		return []SequenceID{c.tree.leafTerminal(c.edge)}
	}
	return c.tree.terminalsBelow(c.node)
}

// SequenceTerminalsBelow returns the terminals of all leaves reachable from the
// current position, including positions inside an edge. These are the sequences
// containing the path walked so far. IDs are returned in ascending order.
func (c *Cursor[I]) SequenceTerminalsBelow() []SequenceID {
	if c == nil || c.tree == nil {
		return []SequenceID{}
	}
	if c.edge == noEdge {
		return c.tree.terminalsBelow(c.node)
	}
	if ed := c.tree.edges[c.edge]; !ed.isLeaf() {
		return c.tree.terminalsBelow(ed.terminal)
	}
	return []SequenceID{c.tree.leafTerminal(c.edge)}
}

// SequencesEndingHere returns the sequences which have the path walked so far
// as a suffix, i.e. the terminals immediately following the current position.
// IDs are returned in ascending order.
func (c *Cursor[I]) SequencesEndingHere() []SequenceID {
	ids := []SequenceID{}
	if c == nil || c.tree == nil {
		return ids
	}
	t := c.tree
	if c.edge != noEdge {
		if c.isMidEdge() {
			if s := t.master.sym(t.edges[c.edge].start + c.pos); s.IsTerminal() {
				ids = append(ids, s.term)
			}
		}
		return ids
	}
	for s := range t.nodes[c.node].edges {
		if s.IsTerminal() {
			ids = append(ids, s.term)
		}
	}
	slices.Sort(ids)
	return ids
}

// --- Tree helpers for terminal collection ----------------------------------

// leafTerminal returns the sequence ID of the terminal ending leaf edge e.
func (t *Tree[I]) leafTerminal(e edgeRef) SequenceID {
	ed := t.edges[e]
	last := t.master.sym(ed.effectiveEnd(t.currentEnd) - 1)
	assert(last.IsTerminal(), "leaf edge does not end with a terminal")
	return last.term
}

// terminalsBelow collects the terminals of all leaves in the subtree of n.
func (t *Tree[I]) terminalsBelow(n NodeID) []SequenceID {
	seen := make(map[SequenceID]struct{})
	stack := []NodeID{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range t.nodes[top].edges {
			if ed := t.edges[e]; ed.isLeaf() {
				seen[t.leafTerminal(e)] = struct{}{}
			} else {
				stack = append(stack, ed.terminal)
			}
		}
	}
	ids := make([]SequenceID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
