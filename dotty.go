package suffixtree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a suffix tree in Graphviz DOT
// format (for debugging purposes). Suffix links are drawn as dashed red arcs.
func Tree2Dot[I comparable](tree *Tree[I], w io.Writer) {
	io.WriteString(w, "digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if tree == nil {
		io.WriteString(w, "}\n")
		return
	}
	var nodelist, edgelist, linklist strings.Builder
	leafID := len(tree.nodes)
	queue := []NodeID{rootNode}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"\" %s];\n", n, nodeDotStyles(n == rootNode, false))
		if link := tree.nodes[n].suffixLink(); link != NoNode && n != rootNode {
			fmt.Fprintf(&linklist, "\t\"%d\" -> \"%d\" [color=red,style=dashed];\n", n, link)
		}
		for _, e := range tree.sortedEdges(n) {
			ed := tree.edges[e]
			target := int(ed.terminal)
			if ed.isLeaf() {
				target = leafID
				leafID++
				fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"\" %s];\n", target, nodeDotStyles(false, true))
			} else {
				queue = append(queue, ed.terminal)
			}
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\" [label=\"%s\"];\n", n, target, dotLabel(tree, e))
		}
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, linklist.String())
	io.WriteString(w, "}\n")
}

func dotLabel[I comparable](tree *Tree[I], e edgeRef) string {
	var b strings.Builder
	for s := range tree.edgeItems(e) {
		b.WriteString(s.String())
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return r.Replace(b.String())
}

func nodeDotStyles(isroot bool, isleaf bool) string {
	s := ",style=filled"
	switch {
	case isleaf:
		s += ",shape=point"
	case isroot:
		s += ",color=black,fillcolor=\"#0077FF\",shape=circle,width=.3"
	default:
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle,width=.2"
	}
	return s
}
