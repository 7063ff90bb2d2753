package suffixtree

import "fmt"

// activePoint is the position in the tree where the next suffix will be
// inserted. It is one of
//
//	at a node:   edge == noEdge, length == 0
//	on an edge:  edge != noEdge, 0 < length ≤ len(edge), node == parent of edge
//
// Values are created by atNode and onEdge only, and have to be re-canonized
// after every change. A canonical active point never sits at the end of an edge
// which has a terminal node; it sits at that node instead.
type activePoint struct {
	node   NodeID
	edge   edgeRef
	length int
}

func atNode(n NodeID) activePoint {
	return activePoint{node: n, edge: noEdge}
}

func onEdge(n NodeID, e edgeRef, length int) activePoint {
	if length == 0 {
		return atNode(n)
	}
	return activePoint{node: n, edge: e, length: length}
}

func (ap activePoint) isNode() bool {
	return ap.edge == noEdge
}

func (ap activePoint) String() string {
	if ap.isNode() {
		return fmt.Sprintf("AP(node %d)", ap.node)
	}
	return fmt.Sprintf("AP(node %d, edge %d, len %d)", ap.node, ap.edge, ap.length)
}

// canonize re-expresses ap in its canonical form. As long as the length of ap
// covers the whole active edge, it descends to the edge's terminal node and
// re-resolves the active edge from there (skip/count). Whenever the length
// exactly consumes an edge with a terminal node, ap collapses onto that node.
//
// The path spelled by ap ends distance positions before the end of the suffix
// window: canonization needs this to find the first item of each edge while
// skipping down the tree.
func (t *Tree[I]) canonize(ap activePoint, distance int) activePoint {
	for !ap.isNode() {
		e := t.edges[ap.edge]
		elen := e.length(t.currentEnd)
		if ap.length < elen || e.isLeaf() {
			assert(ap.length <= elen, "active length exceeds leaf edge")
			break
		}
		ap.length -= elen
		ap.node = e.terminal
		if ap.length == 0 {
			ap = atNode(ap.node)
			break
		}
		s, err := itemFromEnd(t.window, ap.length+distance, &t.master)
		assert(err == nil, "canonize: active length reaches before suffix start")
		next, ok := t.nodes[ap.node].edgeStarting(s)
		assert(ok, "canonize: missing edge on path of active point")
		ap.edge = next
	}
	return ap
}

// advanceActivePoint recomputes the active point after an explicit insertion,
// for the next (shorter) suffix of the window. The window has already been
// trimmed and is non-empty.
//
// From the root, the path of the next suffix starts with the window's first
// item. From any other node, the active point follows the node's suffix link and
// re-resolves the active edge by its start item. Either way the active length
// may now span more than one edge and has to be canonized.
func (t *Tree[I]) advanceActivePoint() activePoint {
	ap := t.ap
	if ap.node != rootNode && !t.nodes[ap.node].hasSuffixLink() {
		T().Debugf("suffixtree: node %d has no suffix link, restarting from root", ap.node)
		ap = atNode(rootNode)
	}
	if ap.node == rootNode {
		depth := t.window.len() - 1
		if depth == 0 {
			return atNode(rootNode)
		}
		e, ok := t.nodes[rootNode].edgeStarting(t.master.sym(t.window.start))
		assert(ok, "advance: root has no edge for start of suffix")
		return t.canonize(onEdge(rootNode, e, depth), 1)
	}
	link := t.nodes[ap.node].suffixLink()
	if ap.isNode() {
		return atNode(link)
	}
	e, ok := t.nodes[link].edgeStarting(t.edgeStartItem(ap.edge))
	assert(ok, "advance: suffix link target has no edge for active edge")
	return t.canonize(onEdge(link, e, ap.length), 1)
}
