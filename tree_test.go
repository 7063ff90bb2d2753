package suffixtree

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "suffixtree")
	defer teardown()

	tree, err := New[rune]()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if tree.NodeCount() != 1 || tree.EdgeCount() != 0 {
		t.Fatalf("empty tree: nodes=%d edges=%d, want 1/0", tree.NodeCount(), tree.EdgeCount())
	}
	if tree.Len() != 0 || tree.SequenceCount() != 0 {
		t.Fatalf("empty tree: len=%d seqs=%d", tree.Len(), tree.SequenceCount())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("Check failed: %v", err)
	}
}

func TestAddNilSequence(t *testing.T) {
	tree, _ := New[rune]()
	if _, err := tree.Add(nil); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("Add(nil) error = %v, want ErrIllegalArguments", err)
	}
	if _, err := New[rune](nil); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("New(nil) error = %v, want ErrIllegalArguments", err)
	}
	var nilTree *Tree[rune]
	if _, err := nilTree.Add([]rune("a")); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("nil tree Add error = %v, want ErrIllegalArguments", err)
	}
}

func TestTreeABC(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)

	tree := mustBuild(t, "abc")
	root := &tree.nodes[rootNode]
	if root.edgeCount() != 4 {
		t.Fatalf("root has %d edges, want 4", root.edgeCount())
	}
	for _, tc := range []struct {
		start Symbol[rune]
		len   int
	}{
		{itemSymbol('a'), 4},
		{itemSymbol('b'), 3},
		{itemSymbol('c'), 2},
		{terminalSymbol[rune](1), 1},
	} {
		e, ok := root.edgeStarting(tc.start)
		if !ok {
			t.Fatalf("root has no edge starting with %v", tc.start)
		}
		if l := tree.edgeLength(e); l != tc.len {
			t.Errorf("edge %v has length %d, want %d", tc.start, l, tc.len)
		}
		if !tree.edges[e].isLeaf() {
			t.Errorf("edge %v should be a leaf", tc.start)
		}
	}
	assertComplete(t, tree, "abc")
}

func TestTreeAAB(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "suffixtree")
	defer teardown()

	tree := mustBuild(t, "aab")
	root := &tree.nodes[rootNode]
	if root.edgeCount() != 3 {
		t.Fatalf("root has %d edges, want 3", root.edgeCount())
	}
	e, ok := root.edgeStarting(itemSymbol('a'))
	if !ok {
		t.Fatalf("root has no edge for 'a'")
	}
	if tree.edgeLength(e) != 1 {
		t.Errorf("edge 'a' has length %d, want 1", tree.edgeLength(e))
	}
	b := tree.edges[e].terminal
	if b == NoNode {
		t.Fatalf("edge 'a' should end at an internal node")
	}
	if n := tree.nodes[b].edgeCount(); n != 2 {
		t.Errorf("internal node has %d children, want 2", n)
	}
	for _, r := range "ab" {
		if _, ok := tree.nodes[b].edgeStarting(itemSymbol(r)); !ok {
			t.Errorf("internal node has no child starting with %q", r)
		}
	}
	assertComplete(t, tree, "aab")
}

func TestSuffixLinkABABC(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "suffixtree")
	defer teardown()

	tree := mustBuild(t, "ababc")
	ab := nodeAt(t, tree, "ab")
	b := nodeAt(t, tree, "b")
	if link := tree.SuffixLink(ab); link != b {
		t.Fatalf("node for \"ab\" links to %d, want %d (node for \"b\")", link, b)
	}
	if link := tree.SuffixLink(b); link != tree.Root() {
		t.Errorf("node for \"b\" links to %d, want root", link)
	}
	assertComplete(t, tree, "ababc")
}

func TestAddSecondSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "suffixtree")
	defer teardown()

	tree := mustBuild(t, "abc")
	id, err := tree.Add([]rune("acb"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if id != 2 {
		t.Errorf("second sequence has ID %d, want 2", id)
	}
	if n := tree.nodes[rootNode].edgeCount(); n != 5 {
		t.Errorf("root has %d edges, want 5", n)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	assertComplete(t, tree, "abc", "acb")
	if ids := SequencesContaining(tree, []rune("b")); !slices.Equal(ids, []SequenceID{1, 2}) {
		t.Errorf("sequences containing \"b\" = %v, want [1 2]", ids)
	}
}

func TestAddEmptySequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "suffixtree")
	defer teardown()

	tree := mustBuild(t, "abc")
	before := tree.nodes[rootNode].edgeCount()
	labels := edgeLabels(tree)
	id, err := tree.Add([]rune{})
	if err != nil {
		t.Fatalf("Add(empty) failed: %v", err)
	}
	if after := tree.nodes[rootNode].edgeCount(); after != before+1 {
		t.Fatalf("root has %d edges after adding empty sequence, want %d", after, before+1)
	}
	if _, ok := tree.nodes[rootNode].edgeStarting(terminalSymbol[rune](id)); !ok {
		t.Errorf("root has no edge for terminal of empty sequence")
	}
	after := edgeLabels(tree)
	for i, l := range labels {
		if after[i] != l {
			t.Errorf("edge %d changed from %q to %q", i, l, after[i])
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	assertComplete(t, tree, "abc", "")
}

func TestFreezeOpenEdges(t *testing.T) {
	tree := mustBuild(t, "abab")
	open := 0
	for i := range tree.edges {
		if tree.edges[i].isOpen() {
			open++
		}
	}
	if open == 0 {
		t.Fatalf("expected open leaf edges after first sequence")
	}
	end := tree.currentEnd
	if n := tree.freezeOpenEdges(); n != open {
		t.Errorf("froze %d edges, want %d", n, open)
	}
	for i := range tree.edges {
		ed := tree.edges[i]
		if ed.isOpen() {
			t.Fatalf("edge %d still open after freeze", i)
		}
		if ed.isLeaf() && ed.end != end {
			t.Errorf("leaf edge %d frozen at %d, want %d", i, ed.end, end)
		}
	}
	if n := tree.freezeOpenEdges(); n != 0 {
		t.Errorf("second freeze touched %d edges", n)
	}
}

func TestEqualSequencesShareTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "suffixtree")
	defer teardown()

	tree := mustBuild(t, "xab", "ab")
	edges := tree.EdgeCount()
	id, err := tree.Add([]rune("ab"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if id != 2 {
		t.Errorf("duplicate sequence got ID %d, want 2", id)
	}
	if tree.EdgeCount() != edges {
		t.Errorf("duplicate sequence created %d edges", tree.EdgeCount()-edges)
	}
	if tree.SequenceCount() != 2 {
		t.Errorf("tree has %d sequences, want 2", tree.SequenceCount())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	assertComplete(t, tree, "xab", "ab")
}

func TestSequenceAccess(t *testing.T) {
	tree := mustBuild(t, "hello", "world")
	for id, want := range map[SequenceID]string{1: "hello", 2: "world"} {
		seq, ok := tree.Sequence(id)
		if !ok || string(seq) != want {
			t.Errorf("Sequence(%d) = %q,%v, want %q", id, string(seq), ok, want)
		}
	}
	if _, ok := tree.Sequence(3); ok {
		t.Errorf("Sequence(3) should not exist")
	}
	if _, ok := tree.Sequence(NoSequence); ok {
		t.Errorf("Sequence(NoSequence) should not exist")
	}
	if tree.Len() != 12 {
		t.Errorf("master length = %d, want 12", tree.Len())
	}
	s, err := tree.At(5)
	if err != nil || s.Terminal() != 1 {
		t.Errorf("At(5) = %v,%v, want terminal $1", s, err)
	}
	if _, err := tree.At(12); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("At(12) error = %v, want ErrIndexOutOfBounds", err)
	}
}

func TestEdgesIteration(t *testing.T) {
	tree := mustBuild(t, "aab")
	var labels []string
	for info := range tree.Edges() {
		var b strings.Builder
		for _, s := range info.Label {
			b.WriteString(s.String())
		}
		labels = append(labels, strings.Repeat(".", info.Level)+b.String())
	}
	want := []string{"a", ".ab$1", ".b$1", "b$1", "$1"}
	if !slices.Equal(labels, want) {
		t.Errorf("edges = %v, want %v", labels, want)
	}
}

func TestMississippi(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "suffixtree")
	defer teardown()

	tree := mustBuild(t, "mississippi", "missouri", "mis", "mim")
	if err := tree.Check(); err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	assertComplete(t, tree, "mississippi", "missouri", "mis", "mim")
	assertQueries(t, tree, []string{"mississippi", "missouri", "mis", "mim"},
		"m", "mi", "mis", "iss", "issi", "ssi", "ppi", "i", "ri", "x", "", "sip", "souri")
}

func TestDegenerateSequences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "suffixtree")
	defer teardown()

	seqs := []string{
		strings.Repeat("a", 200),
		strings.Repeat("ab", 100),
		strings.Repeat("a", 99) + "b",
		strings.Repeat("a", 50),
	}
	tree := mustBuild(t, seqs...)
	if err := tree.Check(); err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	assertComplete(t, tree, seqs...)
	assertQueries(t, tree, seqs, "a", "aaaa", "ab", "ba", "bb", "aab", strings.Repeat("a", 60))
}

func TestRandomSequences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "suffixtree")
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)

	rnd := rand.New(rand.NewPCG(17, 4711))
	randomString := func(alphabet string, maxlen int) string {
		var b strings.Builder
		for range rnd.IntN(maxlen + 1) {
			b.WriteByte(alphabet[rnd.IntN(len(alphabet))])
		}
		return b.String()
	}
	for round := range 50 {
		var seqs []string
		for range 1 + rnd.IntN(6) {
			seqs = append(seqs, randomString("abc", 12))
		}
		tree := mustBuild(t, seqs...)
		if err := tree.Check(); err != nil {
			t.Fatalf("round %d %q: Check failed: %v", round, seqs, err)
		}
		assertComplete(t, tree, seqs...)
		var candidates []string
		for range 20 {
			candidates = append(candidates, randomString("abc", 4))
		}
		assertQueries(t, tree, seqs, candidates...)
	}
}

func BenchmarkAdd(b *testing.B) {
	rnd := rand.New(rand.NewPCG(1, 2))
	seq := make([]byte, 10000)
	for i := range seq {
		seq[i] = "acgt"[rnd.IntN(4)]
	}
	b.ResetTimer()
	for range b.N {
		tree, _ := New[byte]()
		for i := 0; i < len(seq); i += 1000 {
			if _, err := tree.Add(seq[i : i+1000]); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// --- Helpers ---------------------------------------------------------------

func mustBuild(t *testing.T, seqs ...string) *Tree[rune] {
	t.Helper()
	tree, err := New[rune]()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, s := range seqs {
		if _, err := tree.Add([]rune(s)); err != nil {
			t.Fatalf("Add(%q) failed: %v", s, err)
		}
	}
	return tree
}

// nodeAt walks path from the root and returns the internal node it ends at.
func nodeAt(t *testing.T, tree *Tree[rune], path string) NodeID {
	t.Helper()
	c, _ := NewCursor(tree)
	for _, r := range path {
		if !c.ProceedTo(r) {
			t.Fatalf("no path %q in tree", path)
		}
	}
	if c.edge != noEdge {
		t.Fatalf("path %q does not end at a node", path)
	}
	return c.node
}

func edgeLabels(tree *Tree[rune]) []string {
	labels := make([]string, len(tree.edges))
	for i := range tree.edges {
		var b strings.Builder
		for s := range tree.edgeItems(edgeRef(i)) {
			b.WriteString(s.String())
		}
		labels[i] = b.String()
	}
	return labels
}

// idsOf maps each sequence to its ID, as assigned by value.
func idsOf(t *testing.T, tree *Tree[rune], seqs []string) map[string]SequenceID {
	t.Helper()
	ids := make(map[string]SequenceID)
	for id := SequenceID(1); int(id) <= tree.SequenceCount(); id++ {
		seq, _ := tree.Sequence(id)
		ids[string(seq)] = id
	}
	for _, s := range seqs {
		if _, ok := ids[s]; !ok {
			t.Fatalf("sequence %q not registered", s)
		}
	}
	return ids
}

// assertComplete checks that every suffix of every sequence, followed by the
// sequence's terminal, is a path from the root.
func assertComplete(t *testing.T, tree *Tree[rune], seqs ...string) {
	t.Helper()
	ids := idsOf(t, tree, seqs)
	for _, s := range seqs {
		rs := []rune(s)
		id := ids[s]
		for i := 0; i <= len(rs); i++ {
			c, _ := NewCursor(tree)
			for j, r := range rs[i:] {
				if !c.ProceedTo(r) {
					t.Fatalf("suffix %q of %q: walk failed at %d", string(rs[i:]), s, j)
				}
			}
			if !c.ProceedToTerminal(id) {
				t.Fatalf("suffix %q of %q: no terminal $%d", string(rs[i:]), s, id)
			}
			if !slices.Contains(c.SequenceTerminalsHere(), id) {
				t.Fatalf("suffix %q of %q: terminal $%d not here", string(rs[i:]), s, id)
			}
		}
	}
}

// assertQueries compares query results against a brute force search.
func assertQueries(t *testing.T, tree *Tree[rune], seqs []string, candidates ...string) {
	t.Helper()
	ids := idsOf(t, tree, seqs)
	for _, cand := range candidates {
		var containing, ending []SequenceID
		for s, id := range ids {
			if strings.Contains(s, cand) {
				containing = append(containing, id)
			}
			if strings.HasSuffix(s, cand) {
				ending = append(ending, id)
			}
		}
		slices.Sort(containing)
		slices.Sort(ending)
		if got := SequencesContaining(tree, []rune(cand)); !slices.Equal(got, containing) {
			t.Errorf("SequencesContaining(%q) = %v, want %v (seqs %q)", cand, got, containing, seqs)
		}
		if got := SequencesEndingWith(tree, []rune(cand)); !slices.Equal(got, ending) {
			t.Errorf("SequencesEndingWith(%q) = %v, want %v (seqs %q)", cand, got, ending, seqs)
		}
		if got := Contains(tree, []rune(cand)); got != (len(containing) > 0) {
			t.Errorf("Contains(%q) = %v (seqs %q)", cand, got, seqs)
		}
		if got := ContainsSuffix(tree, []rune(cand)); got != (len(ending) > 0) {
			t.Errorf("ContainsSuffix(%q) = %v (seqs %q)", cand, got, seqs)
		}
	}
}
