package suffixtree

import "fmt"

// Check validates structural tree invariants:
//
//   - every node except the root is reached by exactly one edge
//   - the outgoing edges of a node are keyed by their start symbol
//   - edge labels are non-empty and contain a terminal only as their last symbol
//   - every leaf edge ends with a terminal
//   - internal nodes other than the root have at least two children and a
//     suffix link to a node of string depth one less
//
// Check walks the whole tree and is meant to be used in tests and for
// debugging.
func (t *Tree[I]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if len(t.nodes) == 0 {
		return fmt.Errorf("%w: tree has no root", ErrInvalidTree)
	}
	depth := make([]int, len(t.nodes)) // string depth per node
	reached := make([]bool, len(t.nodes))
	reached[rootNode] = true
	stack := []NodeID{rootNode}
	edgesSeen := 0
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for s, e := range t.nodes[n].edges {
			edgesSeen++
			if err := t.checkEdge(n, s, e); err != nil {
				return err
			}
			ed := t.edges[e]
			if ed.isLeaf() {
				continue
			}
			if reached[ed.terminal] {
				return fmt.Errorf("%w: node %d reached twice", ErrInvalidTree, ed.terminal)
			}
			reached[ed.terminal] = true
			depth[ed.terminal] = depth[n] + t.edgeLength(e)
			stack = append(stack, ed.terminal)
		}
	}
	if edgesSeen != len(t.edges) {
		return fmt.Errorf("%w: %d edges unreachable", ErrInvalidTree, len(t.edges)-edgesSeen)
	}
	for n := range t.nodes {
		if !reached[n] {
			return fmt.Errorf("%w: node %d unreachable", ErrInvalidTree, n)
		}
		if NodeID(n) == rootNode {
			continue
		}
		if err := t.checkInnerNode(NodeID(n), depth); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree[I]) checkEdge(n NodeID, s Symbol[I], e edgeRef) error {
	if e < 0 || int(e) >= len(t.edges) {
		return fmt.Errorf("%w: dangling edge reference %d at node %d", ErrInvalidTree, e, n)
	}
	ed := t.edges[e]
	if ed.parent != n {
		return fmt.Errorf("%w: edge %d has parent %d, but hangs at node %d",
			ErrInvalidTree, e, ed.parent, n)
	}
	end := ed.effectiveEnd(t.currentEnd)
	if ed.start >= end || end > t.master.len() {
		return fmt.Errorf("%w: edge %d has illegal range [%d,%d)", ErrInvalidTree, e, ed.start, end)
	}
	if ed.isOpen() && !ed.isLeaf() {
		return fmt.Errorf("%w: open edge %d has a terminal node", ErrInvalidTree, e)
	}
	if start := t.edgeStartItem(e); start != s {
		return fmt.Errorf("%w: edge %d starts with %v, keyed by %v", ErrInvalidTree, e, start, s)
	}
	for i := ed.start; i < end-1; i++ {
		if t.master.sym(i).IsTerminal() {
			return fmt.Errorf("%w: edge %s continues after a terminal", ErrInvalidTree, t.edgeString(e))
		}
	}
	if ed.isLeaf() && !t.master.sym(end-1).IsTerminal() {
		return fmt.Errorf("%w: leaf edge %s does not end with a terminal", ErrInvalidTree, t.edgeString(e))
	}
	return nil
}

func (t *Tree[I]) checkInnerNode(n NodeID, depth []int) error {
	nd := &t.nodes[n]
	if nd.edgeCount() < 2 {
		return fmt.Errorf("%w: internal node %d has %d children", ErrInvalidTree, n, nd.edgeCount())
	}
	if !nd.hasSuffixLink() {
		return fmt.Errorf("%w: internal node %d has no suffix link", ErrInvalidTree, n)
	}
	link := nd.suffixLink()
	if link < 0 || int(link) >= len(t.nodes) {
		return fmt.Errorf("%w: node %d links to unknown node %d", ErrInvalidTree, n, link)
	}
	if depth[link] != depth[n]-1 {
		return fmt.Errorf("%w: suffix link %d→%d spans depth %d→%d",
			ErrInvalidTree, n, link, depth[n], depth[link])
	}
	return nil
}
