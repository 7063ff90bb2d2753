package suffixtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"hash/maphash"
	"slices"
)

// SequenceID identifies an inserted sequence. It is the identity of the
// sequence's terminal sentinel. IDs start at 1; 0 is never a valid sequence ID.
type SequenceID int32

// NoSequence is the zero SequenceID, denoting "no sequence".
const NoSequence SequenceID = 0

// Symbol is an element of the master sequence of a tree: either an item
// supplied by a client, or the terminal sentinel of an inserted sequence.
//
// Symbols are comparable; two terminals are equal if they terminate the same
// sequence (by value, see Tree.Add).
type Symbol[I comparable] struct {
	item I
	term SequenceID
}

func itemSymbol[I comparable](item I) Symbol[I] {
	return Symbol[I]{item: item}
}

func terminalSymbol[I comparable](id SequenceID) Symbol[I] {
	return Symbol[I]{term: id}
}

// IsTerminal is true for the terminal sentinel of a sequence.
func (s Symbol[I]) IsTerminal() bool {
	return s.term != NoSequence
}

// Item returns the client item of s. For terminals it returns the zero
// value of I and false.
func (s Symbol[I]) Item() (I, bool) {
	if s.IsTerminal() {
		var zero I
		return zero, false
	}
	return s.item, true
}

// Terminal returns the sequence ID of a terminal symbol, or NoSequence.
func (s Symbol[I]) Terminal() SequenceID {
	return s.term
}

func (s Symbol[I]) String() string {
	if s.IsTerminal() {
		return fmt.Sprintf("$%d", s.term)
	}
	if r, ok := any(s.item).(rune); ok {
		return string(r)
	}
	return fmt.Sprint(s.item)
}

// --- Master sequence -------------------------------------------------------

// masterSequence is the append-only buffer of all symbols of a tree. Every
// inserted sequence occupies a run of positions, followed by its terminal.
// Positions, once appended, never change.
type masterSequence[I comparable] struct {
	symbols []Symbol[I]
}

// append adds seq and its terminal. It returns the range [from, to) of the
// positions added, including the terminal.
func (ms *masterSequence[I]) append(seq []I, terminal SequenceID) (from, to int, err error) {
	if seq == nil || terminal == NoSequence {
		return 0, 0, ErrIllegalArguments
	}
	from = len(ms.symbols)
	ms.symbols = slices.Grow(ms.symbols, len(seq)+1)
	for _, item := range seq {
		ms.symbols = append(ms.symbols, itemSymbol(item))
	}
	ms.symbols = append(ms.symbols, terminalSymbol[I](terminal))
	return from, len(ms.symbols), nil
}

// at returns the symbol at position i.
func (ms *masterSequence[I]) at(i int) (Symbol[I], error) {
	if i < 0 || i >= len(ms.symbols) {
		return Symbol[I]{}, ErrIndexOutOfBounds
	}
	return ms.symbols[i], nil
}

// sym is the unchecked version of at, used by the construction engine.
func (ms *masterSequence[I]) sym(i int) Symbol[I] {
	return ms.symbols[i]
}

func (ms *masterSequence[I]) len() int {
	return len(ms.symbols)
}

// --- Sequence registry -----------------------------------------------------

// run is the range of positions of an inserted sequence within the master
// sequence, excluding its terminal.
type run struct {
	start, end int
}

// registry assigns terminals to sequences. Terminal identity derives from the
// value of a sequence: equal sequences map to the same SequenceID.
type registry[I comparable] struct {
	seed    maphash.Seed
	runs    []run                   // runs[id-1] is the first insertion of sequence id
	buckets map[uint64][]SequenceID // hash of sequence value → candidates
}

func newRegistry[I comparable]() registry[I] {
	return registry[I]{
		seed:    maphash.MakeSeed(),
		buckets: make(map[uint64][]SequenceID),
	}
}

func (r *registry[I]) hash(seq []I) uint64 {
	h := uint64(len(seq))
	for _, item := range seq {
		h = h*31 + maphash.Comparable(r.seed, item)
	}
	return h
}

// lookup finds the ID of a sequence equal to seq, if one has been registered.
// The hash of seq is returned for a subsequent call to register.
func (r *registry[I]) lookup(seq []I, ms *masterSequence[I]) (SequenceID, uint64) {
	h := r.hash(seq)
	for _, id := range r.buckets[h] {
		rn := r.runs[id-1]
		if rn.end-rn.start != len(seq) {
			continue
		}
		if equalRun(ms.symbols[rn.start:rn.end], seq) {
			return id, h
		}
	}
	return NoSequence, h
}

// next returns the ID the next new sequence will receive.
func (r *registry[I]) next() SequenceID {
	return SequenceID(len(r.runs) + 1)
}

func (r *registry[I]) register(id SequenceID, h uint64, rn run) {
	assert(id == r.next(), "sequence IDs must be registered in order")
	r.runs = append(r.runs, rn)
	r.buckets[h] = append(r.buckets[h], id)
}

func (r *registry[I]) count() int {
	return len(r.runs)
}

func equalRun[I comparable](symbols []Symbol[I], seq []I) bool {
	for i, s := range symbols {
		if s.IsTerminal() || s.item != seq[i] {
			return false
		}
	}
	return true
}
