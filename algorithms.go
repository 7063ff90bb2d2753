package suffixtree

// walk positions a fresh cursor at the end of path candidate. It returns nil
// if candidate is not a path from the root of tree.
func walk[I comparable](tree *Tree[I], candidate []I) *Cursor[I] {
	c, err := NewCursor(tree)
	if err != nil {
		return nil
	}
	for _, item := range candidate {
		if !c.ProceedTo(item) {
			return nil
		}
	}
	return c
}

// ContainsSuffix returns true if at least one sequence in tree ends with
// candidate. The empty candidate is a suffix of every sequence.
func ContainsSuffix[I comparable](tree *Tree[I], candidate []I) bool {
	return len(SequencesEndingWith(tree, candidate)) > 0
}

// SequencesEndingWith returns the IDs of all sequences in tree which have
// candidate as a suffix, in ascending order.
func SequencesEndingWith[I comparable](tree *Tree[I], candidate []I) []SequenceID {
	c := walk(tree, candidate)
	if c == nil {
		return []SequenceID{}
	}
	return c.SequencesEndingHere()
}

// Contains returns true if candidate occurs as a contiguous subsequence of
// at least one sequence in tree.
func Contains[I comparable](tree *Tree[I], candidate []I) bool {
	return walk(tree, candidate) != nil && tree.SequenceCount() > 0
}

// SequencesContaining returns the IDs of all sequences in tree containing
// candidate as a contiguous subsequence, in ascending order.
func SequencesContaining[I comparable](tree *Tree[I], candidate []I) []SequenceID {
	c := walk(tree, candidate)
	if c == nil {
		return []SequenceID{}
	}
	return c.SequenceTerminalsBelow()
}
