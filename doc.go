/*
Package suffixtree implements a generalized suffix tree over sequences of
comparable items.

Suffix Trees

A suffix tree for a sequence S holds every suffix of S as a path from the root.
Querying whether a pattern P is a substring of S then amounts to walking P from
the root, which takes time proportional to |P| and is independent of |S|.
A generalized suffix tree holds the suffixes of more than one sequence, each
sequence being terminated by a sentinel unique to it. The terminal sentinels
allow a client to find out which of the inserted sequences contain a pattern.

From Wikipedia:
In computer science, a suffix tree (also called PAT tree or, in an earlier form,
position tree) is a compressed trie containing all the suffixes of the given text
as their keys and positions in the text as their values. Suffix trees allow
particularly fast implementations of many important string operations. […]
The construction of such a tree for the string S takes time and space linear in
the length of S.

_________________________________________________________________________

Construction

Trees are built online with Ukkonen's algorithm. Items are appended one at a
time (a phase); every phase inserts the pending suffixes at the so-called
active point, splitting edges where a new branch is needed and following
suffix links to avoid re-walking from the root. Leaf edges are open: their end
tracks a single counter of the tree, so all leaves grow with every phase
without being touched.

	tree, _ := suffixtree.New([]rune("abracadabra"))
	tree.Add([]rune("cadabra"))
	found := suffixtree.SequencesContaining(tree, []rune("dab"))  // [1 2]

Adding a sequence freezes the open leaves of all previously inserted sequences,
appends the new sequence plus its terminal to the master sequence and runs a
phase for every new item.

Terminal identity is defined by value: adding a sequence equal to one already in
the tree returns the SequenceID of the earlier insertion. Clients needing to tell
apart equal sequences have to keep their own mapping (see package corpus).

Concurrency

Trees are not safe for concurrent mutation. Read-only operations (cursors,
queries, Check, Tree2Dot) may run concurrently with each other, but not
concurrently with Add.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package suffixtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the suffixtree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid,
// e.g. a nil sequence handed to Add.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrIndexOutOfBounds is flagged whenever a position is
// beyond the bounds of the master sequence or of an edge.
const ErrIndexOutOfBounds = TreeError("index out of bounds")

// ErrDuplicateEdge is flagged if a node is asked to hold two edges starting with the
// same item. This is an internal invariant and will never surface through the
// public API of a correct implementation.
const ErrDuplicateEdge = TreeError("duplicate edge")

// ErrInvalidTree is flagged by Check for any violation of structural tree invariants.
const ErrInvalidTree = TreeError("tree invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
