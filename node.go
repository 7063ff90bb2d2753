package suffixtree

import "fmt"

// NodeID is a handle for a node of a tree. Node handles are stable for the
// lifetime of a tree, as nodes are never removed.
type NodeID int32

// NoNode is the handle for "no node", e.g. the missing target node of a leaf edge.
const NoNode NodeID = -1

// rootNode is the handle of the root node of every tree.
const rootNode NodeID = 0

// edgeRef is the arena index of an edge.
type edgeRef int32

const noEdge edgeRef = -1

// node is a branching point of the tree. Outgoing edges are keyed by their
// start symbol, i.e. they are pairwise distinct in their first item.
//
// The suffix link is a non-owning reference to another node: if a node
// represents path xα, its suffix link points to the node representing α.
type node[I comparable] struct {
	edges map[Symbol[I]]edgeRef
	link  NodeID
}

func newNode[I comparable]() node[I] {
	return node[I]{
		edges: make(map[Symbol[I]]edgeRef),
		link:  NoNode,
	}
}

// edgeStarting returns the outgoing edge starting with item s.
func (n *node[I]) edgeStarting(s Symbol[I]) (edgeRef, bool) {
	e, ok := n.edges[s]
	return e, ok
}

// addEdge registers edge e as starting with item s. Two edges starting with
// the same item are a violation of the tree structure, flagged by ErrDuplicateEdge.
func (n *node[I]) addEdge(s Symbol[I], e edgeRef) error {
	if _, exists := n.edges[s]; exists {
		return fmt.Errorf("%w: item %v already starts an edge", ErrDuplicateEdge, s)
	}
	n.edges[s] = e
	return nil
}

func (n *node[I]) edgeCount() int {
	return len(n.edges)
}

func (n *node[I]) hasSuffixLink() bool {
	return n.link != NoNode
}

func (n *node[I]) suffixLink() NodeID {
	return n.link
}

func (n *node[I]) setSuffixLink(target NodeID) {
	n.link = target
}
