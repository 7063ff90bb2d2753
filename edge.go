package suffixtree

import (
	"fmt"
	"iter"
)

// openEnd marks an edge whose end tracks the global end of its tree.
const openEnd = -1

// edge is a labeled arc from a parent node. The label is the range
// [start, end) of the master sequence.
//
// Leaf edges are created open: their effective end is the current end of the
// tree, so they grow with every phase of construction. Adding a new sequence
// freezes all open edges, i.e. sets their end explicitly. Edges with a
// terminal node are internal edges, always closed.
type edge struct {
	start    int
	end      int    // openEnd for open leaf edges
	parent   NodeID // owning node
	terminal NodeID // NoNode for leaf edges
}

func (e *edge) isOpen() bool {
	return e.end == openEnd
}

func (e *edge) isLeaf() bool {
	return e.terminal == NoNode
}

// effectiveEnd is the end of an edge, given the current global end of the tree.
func (e *edge) effectiveEnd(current int) int {
	if e.isOpen() {
		return current
	}
	return e.end
}

func (e *edge) length(current int) int {
	return e.effectiveEnd(current) - e.start
}

// --- Edge operations in the context of a tree ------------------------------

func (t *Tree[I]) edgeLength(e edgeRef) int {
	return t.edges[e].length(t.currentEnd)
}

// edgeItemAt returns the item at offset pos along edge e.
func (t *Tree[I]) edgeItemAt(e edgeRef, pos int) (Symbol[I], error) {
	if pos < 0 || pos >= t.edgeLength(e) {
		return Symbol[I]{}, fmt.Errorf("%w: position %d on edge of length %d",
			ErrIndexOutOfBounds, pos, t.edgeLength(e))
	}
	return t.master.at(t.edges[e].start + pos)
}

func (t *Tree[I]) edgeStartItem(e edgeRef) Symbol[I] {
	return t.master.sym(t.edges[e].start)
}

func (t *Tree[I]) edgeIsStartingWith(e edgeRef, s Symbol[I]) bool {
	return t.edgeStartItem(e) == s
}

// edgeItems iterates over the label of edge e. The iterator may be restarted;
// it reflects the edge's length at the time of each iteration.
func (t *Tree[I]) edgeItems(e edgeRef) iter.Seq[Symbol[I]] {
	return func(yield func(Symbol[I]) bool) {
		ed := t.edges[e]
		end := ed.effectiveEnd(t.currentEnd)
		for i := ed.start; i < end; i++ {
			if !yield(t.master.sym(i)) {
				return
			}
		}
	}
}

// newEdge appends a new edge to the arena and registers it at its parent.
func (t *Tree[I]) newEdge(parent NodeID, start, end int, terminal NodeID) edgeRef {
	ref := edgeRef(len(t.edges))
	t.edges = append(t.edges, edge{
		start:    start,
		end:      end,
		parent:   parent,
		terminal: terminal,
	})
	err := t.nodes[parent].addEdge(t.master.sym(start), ref)
	assert(err == nil, "tree corrupt: "+fmt.Sprint(err))
	return ref
}

// addLeaf creates an open leaf edge at node n, starting at master position pos.
func (t *Tree[I]) addLeaf(n NodeID, pos int) edgeRef {
	return t.newEdge(n, pos, openEnd, NoNode)
}

// split makes the point atLength items along edge e explicit: a new internal
// node B is inserted there. The remainder of e (including its former terminal
// node) becomes an edge of B, and a new open leaf for the end item of the suffix
// window is added to B. Edge e is truncated to end at B.
//
// The new node is returned. It is in need of a suffix link, which the caller
// will have to provide.
func (t *Tree[I]) split(e edgeRef, atLength int) NodeID {
	assert(atLength > 0 && atLength < t.edgeLength(e), "split must happen strictly inside an edge")
	b := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, newNode[I]())
	old := t.edges[e]
	mid := old.start + atLength
	t.newEdge(b, mid, old.end, old.terminal)
	t.addLeaf(b, t.window.endPosition())
	t.edges[e].end = mid
	t.edges[e].terminal = b
	return b
}

func (t *Tree[I]) edgeString(e edgeRef) string {
	var s string
	for sym := range t.edgeItems(e) {
		s += sym.String()
	}
	ed := t.edges[e]
	if ed.isOpen() {
		return fmt.Sprintf("%d…[%s]", ed.start, s)
	}
	return fmt.Sprintf("%d-%d[%s]", ed.start, ed.end, s)
}
