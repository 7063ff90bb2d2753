package suffixtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"
	"slices"
)

// Tree is a generalized suffix tree over sequences of items of type I.
//
// A tree created by
//
//	New[I]()
//
// is a valid object, consisting of a root without edges. Sequences are added
// with Add. Nodes and edges live in arenas owned by the tree; node handles
// (NodeID) and suffix links are plain indices into these arenas.
//
// Construction performance is amortized linear in the total length of all
// sequences added.
type Tree[I comparable] struct {
	master     masterSequence[I]
	sequences  registry[I]
	nodes      []node[I]
	edges      []edge
	ap         activePoint
	window     suffix
	currentEnd int // global end of open leaf edges
	// per-phase bookkeeping
	insertsThisPhase int
	lastNodeInserted NodeID // split node awaiting its suffix link
}

// New creates a suffix tree, optionally for one or more initial sequences.
// New(seq) is equivalent to New() followed by Add(seq).
func New[I comparable](sequences ...[]I) (*Tree[I], error) {
	t := &Tree[I]{
		sequences:        newRegistry[I](),
		nodes:            []node[I]{newNode[I]()},
		ap:               atNode(rootNode),
		lastNodeInserted: NoNode,
	}
	for _, seq := range sequences {
		if _, err := t.Add(seq); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Add inserts a sequence into the tree and returns the ID of the sequence's
// terminal.
//
// Terminals are identified by value: if seq equals (element-wise) a sequence
// inserted earlier, the earlier ID is returned and no new paths are created,
// as all suffixes are already present. An empty, non-nil sequence is legal and contributes
// just its terminal. A nil sequence is rejected with ErrIllegalArguments.
//
// Add must not be called concurrently with any other operation on t.
func (t *Tree[I]) Add(seq []I) (SequenceID, error) {
	if t == nil || seq == nil {
		return NoSequence, ErrIllegalArguments
	}
	frozen := t.freezeOpenEdges()
	id, h := t.sequences.lookup(seq, &t.master)
	isNew := id == NoSequence
	if isNew {
		id = t.sequences.next()
	}
	from, to, err := t.master.append(seq, id)
	if err != nil {
		return NoSequence, err
	}
	if isNew {
		t.sequences.register(id, h, run{start: from, end: to - 1})
	}
	T().Debugf("suffixtree: adding sequence #%d of length %d at %d (froze %d edges)",
		id, len(seq), from, frozen)
	t.window.rearm(t.currentEnd)
	t.ap = atNode(rootNode)
	for range to - from {
		t.extend()
	}
	return id, nil
}

// extend runs one phase of Ukkonen's algorithm, adding the next item of the
// master sequence to the tree.
func (t *Tree[I]) extend() {
	t.window.increment()
	t.currentEnd++ // implicitly extends all open leaves
	t.insertsThisPhase = 0
	t.lastNodeInserted = NoNode
	for {
		item := endItem(t.window, &t.master)
		if t.ap.isNode() {
			n := t.ap.node
			if e, ok := t.nodes[n].edgeStarting(item); ok {
				// item is already present below n: the remaining suffixes are implicit
				t.linkLastInserted(n)
				t.ap = t.canonize(onEdge(n, e, 1), 0)
				return
			}
			t.addLeaf(n, t.window.endPosition())
			t.linkLastInserted(n)
		} else {
			e, length := t.ap.edge, t.ap.length
			assert(length < t.edgeLength(e), "active point sits at end of a leaf edge")
			if t.master.sym(t.edges[e].start+length) == item {
				t.ap = t.canonize(onEdge(t.ap.node, e, length+1), 0)
				return
			}
			b := t.split(e, length)
			t.linkLastInserted(b)
			t.lastNodeInserted = b
		}
		t.insertsThisPhase++
		t.window.decrement()
		if t.window.isEmpty() {
			t.ap = atNode(rootNode)
			return
		}
		t.ap = t.advanceActivePoint()
	}
}

// linkLastInserted sets the suffix link of the node created by the previous
// split of this phase, if any, to point to n.
func (t *Tree[I]) linkLastInserted(n NodeID) {
	if t.insertsThisPhase == 0 || t.lastNodeInserted == NoNode {
		return
	}
	t.nodes[t.lastNodeInserted].setSuffixLink(n)
	t.lastNodeInserted = NoNode
}

// freezeOpenEdges sets the end of every open edge to the current global end.
// This has to happen before a new sequence is appended; otherwise the leaves
// of the previous sequence would grow into the new one.
//
// Returns the number of edges frozen.
func (t *Tree[I]) freezeOpenEdges() int {
	count := 0
	stack := []NodeID{rootNode}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range t.nodes[n].edges {
			ed := &t.edges[e]
			if ed.isOpen() {
				ed.end = t.currentEnd
				count++
			}
			if !ed.isLeaf() {
				stack = append(stack, ed.terminal)
			}
		}
	}
	return count
}

// --- Read-only inspection --------------------------------------------------

// Root returns the handle of the root node.
func (t *Tree[I]) Root() NodeID {
	return rootNode
}

// Len returns the length of the master sequence, i.e. the total number of items
// added, including one terminal per Add.
func (t *Tree[I]) Len() int {
	if t == nil {
		return 0
	}
	return t.master.len()
}

// At returns the symbol at position i of the master sequence.
func (t *Tree[I]) At(i int) (Symbol[I], error) {
	if t == nil {
		return Symbol[I]{}, ErrIndexOutOfBounds
	}
	return t.master.at(i)
}

// SequenceCount returns the number of distinct sequences in the tree.
func (t *Tree[I]) SequenceCount() int {
	if t == nil {
		return 0
	}
	return t.sequences.count()
}

// Sequence returns a copy of the sequence with the given ID.
func (t *Tree[I]) Sequence(id SequenceID) ([]I, bool) {
	if t == nil || id <= NoSequence || int(id) > t.sequences.count() {
		return nil, false
	}
	rn := t.sequences.runs[id-1]
	seq := make([]I, 0, rn.end-rn.start)
	for _, s := range t.master.symbols[rn.start:rn.end] {
		seq = append(seq, s.item)
	}
	return seq, true
}

// NodeCount returns the number of nodes in the tree, including the root.
func (t *Tree[I]) NodeCount() int {
	return len(t.nodes)
}

// EdgeCount returns the number of edges in the tree.
func (t *Tree[I]) EdgeCount() int {
	return len(t.edges)
}

// SuffixLink returns the target of the suffix link of node n, or NoNode.
func (t *Tree[I]) SuffixLink(n NodeID) NodeID {
	if n < 0 || int(n) >= len(t.nodes) {
		return NoNode
	}
	return t.nodes[n].suffixLink()
}

// EdgeInfo describes an edge of a tree for read-only clients.
type EdgeInfo[I comparable] struct {
	Parent NodeID      // node the edge leaves from
	Child  NodeID      // terminal node of the edge, NoNode for leaves
	Level  int         // number of edges between the root and Parent
	Start  int         // position of the label in the master sequence
	Open   bool        // open leaf edge, growing with the tree
	Label  []Symbol[I] // items of the edge
}

// Edges iterates over all edges of a tree in depth-first order. The edges
// leaving a node are visited in order of the position of their labels.
func (t *Tree[I]) Edges() iter.Seq[EdgeInfo[I]] {
	return func(yield func(EdgeInfo[I]) bool) {
		if t == nil {
			return
		}
		type frame struct {
			e     edgeRef
			level int
		}
		stack := make([]frame, 0, 32)
		push := func(n NodeID, level int) {
			children := t.sortedEdges(n)
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, frame{e: children[i], level: level})
			}
		}
		push(rootNode, 0)
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ed := t.edges[f.e]
			info := EdgeInfo[I]{
				Parent: ed.parent,
				Child:  ed.terminal,
				Level:  f.level,
				Start:  ed.start,
				Open:   ed.isOpen(),
				Label:  slices.Collect(t.edgeItems(f.e)),
			}
			if !yield(info) {
				return
			}
			if !ed.isLeaf() {
				push(ed.terminal, f.level+1)
			}
		}
	}
}

// sortedEdges returns the outgoing edges of n, ordered by label position.
func (t *Tree[I]) sortedEdges(n NodeID) []edgeRef {
	edges := make([]edgeRef, 0, t.nodes[n].edgeCount())
	for _, e := range t.nodes[n].edges {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(a, b edgeRef) int {
		return cmp.Compare(t.edges[a].start, t.edges[b].start)
	})
	return edges
}
