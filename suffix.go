package suffixtree

import "fmt"

// suffix is the window [start, end) over the master sequence holding the
// suffixes not yet explicitly inserted during construction.
//
// end is one past the item currently being added; start is the first item not
// yet trimmed from the front. Every explicit insertion trims one item from the
// front. An empty window signals that all suffixes of the current phase have
// been inserted.
type suffix struct {
	start, end int
}

// rearm positions an empty window at pos.
func (s *suffix) rearm(pos int) {
	s.start, s.end = pos, pos
}

// increment moves the end of the window forward by one item.
func (s *suffix) increment() {
	s.end++
}

// decrement trims one item from the front of the window.
func (s *suffix) decrement() {
	assert(s.start < s.end, "cannot decrement an empty suffix")
	s.start++
}

func (s suffix) isEmpty() bool {
	return s.start == s.end
}

// len is the number of suffixes pending, i.e. the length of the window.
func (s suffix) len() int {
	return s.end - s.start
}

// endPosition is the master position of the last item of the window.
func (s suffix) endPosition() int {
	return s.end - 1
}

// endItem returns the last item of window s, i.e. the item added in
// the current phase.
func endItem[I comparable](s suffix, ms *masterSequence[I]) Symbol[I] {
	return ms.sym(s.end - 1)
}

// itemFromEnd returns the item distance positions before the end of the window.
// A distance of 1 denotes the end item. Distances reaching before the start of
// the window are illegal.
func itemFromEnd[I comparable](s suffix, distance int, ms *masterSequence[I]) (Symbol[I], error) {
	if distance <= 0 || s.end-distance < s.start {
		return Symbol[I]{}, fmt.Errorf("%w: distance %d extends before start of suffix %v",
			ErrIllegalArguments, distance, s)
	}
	return ms.at(s.end - distance)
}

func (s suffix) String() string {
	return fmt.Sprintf("[%d,%d)", s.start, s.end)
}
