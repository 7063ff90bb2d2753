package suffixtree

import (
	"errors"
	"testing"
)

func TestCheckDetectsCorruption(t *testing.T) {
	for _, tc := range []struct {
		name    string
		corrupt func(tree *Tree[rune])
	}{
		{"missing suffix link", func(tree *Tree[rune]) {
			ab := findNode(tree, "ab")
			tree.nodes[ab].link = NoNode
		}},
		{"wrong suffix link", func(tree *Tree[rune]) {
			ab := findNode(tree, "ab")
			tree.nodes[ab].link = ab
		}},
		{"wrong parent", func(tree *Tree[rune]) {
			e, _ := tree.nodes[rootNode].edgeStarting(itemSymbol('c'))
			tree.edges[e].parent = NodeID(1)
		}},
		{"wrong key", func(tree *Tree[rune]) {
			e, _ := tree.nodes[rootNode].edgeStarting(itemSymbol('c'))
			delete(tree.nodes[rootNode].edges, itemSymbol('c'))
			tree.nodes[rootNode].edges[itemSymbol('z')] = e
		}},
		{"unreachable edge", func(tree *Tree[rune]) {
			delete(tree.nodes[rootNode].edges, itemSymbol('c'))
		}},
		{"empty edge", func(tree *Tree[rune]) {
			e, _ := tree.nodes[rootNode].edgeStarting(itemSymbol('c'))
			tree.edges[e].end = tree.edges[e].start
		}},
		{"leaf without terminal", func(tree *Tree[rune]) {
			e, _ := tree.nodes[rootNode].edgeStarting(itemSymbol('c'))
			tree.edges[e].end = tree.edges[e].start + 1
		}},
	} {
		tree := mustBuild(t, "ababc")
		if err := tree.Check(); err != nil {
			t.Fatalf("%s: Check of intact tree failed: %v", tc.name, err)
		}
		tc.corrupt(tree)
		if err := tree.Check(); !errors.Is(err, ErrInvalidTree) {
			t.Errorf("%s: Check error = %v, want ErrInvalidTree", tc.name, err)
		}
	}
}

func TestCheckNilTree(t *testing.T) {
	var tree *Tree[rune]
	if err := tree.Check(); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("Check of nil tree error = %v, want ErrInvalidTree", err)
	}
}

func findNode(tree *Tree[rune], path string) NodeID {
	c, _ := NewCursor(tree)
	for _, r := range path {
		c.ProceedTo(r)
	}
	return c.node
}
