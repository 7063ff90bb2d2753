/*
Package corpus maintains a searchable collection of tokenized documents.

Documents are sequences of tokens (words, graphemes, …). A corpus keeps all of
them in one generalized suffix tree and answers which documents contain a
pattern, or end with it. Every document receives a UUID on insertion.

The suffix tree identifies sequences by value, so equal documents share a
terminal. A corpus resolves this by mapping each sequence to the UUIDs of all
documents inserted with this content.

A corpus is safe for concurrent use: insertions are serialized, queries may run
concurrently with each other.
*/
package corpus

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/suffixtree"
	"github.com/npillmayer/suffixtree/tokens"
)

// tracer writes to trace with key 'suffixtree'
func tracer() tracing.Trace {
	return tracing.Select("suffixtree")
}

// ErrNilDocument is returned when inserting a nil document.
var ErrNilDocument = errors.New("corpus: nil document")

// ErrUnknownDocument is returned for a UUID not issued by a corpus.
var ErrUnknownDocument = errors.New("corpus: unknown document")

// Corpus is a collection of documents.
type Corpus struct {
	mx       sync.RWMutex
	tree     *suffixtree.Tree[string]
	docs     map[suffixtree.SequenceID][]uuid.UUID
	seqs     map[uuid.UUID]suffixtree.SequenceID
	interner tokens.Interner
}

// New creates an empty corpus.
func New() *Corpus {
	tree, _ := suffixtree.New[string]()
	return &Corpus{
		tree: tree,
		docs: make(map[suffixtree.SequenceID][]uuid.UUID),
		seqs: make(map[uuid.UUID]suffixtree.SequenceID),
	}
}

// Add inserts a document and returns its newly issued UUID.
// An empty document is legal.
func (c *Corpus) Add(doc []string) (uuid.UUID, error) {
	if doc == nil {
		return uuid.Nil, ErrNilDocument
	}
	docID, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, fmt.Errorf("corpus: cannot issue document ID: %w", err)
	}
	doc = c.interner.InternAll(slices.Clone(doc))
	c.mx.Lock()
	defer c.mx.Unlock()
	seq, err := c.tree.Add(doc)
	if err != nil {
		return uuid.Nil, fmt.Errorf("corpus: cannot add document: %w", err)
	}
	c.docs[seq] = append(c.docs[seq], docID)
	c.seqs[docID] = seq
	tracer().Debugf("corpus: document %s with %d tokens is sequence #%d", docID, len(doc), seq)
	return docID, nil
}

// Containing returns the UUIDs of all documents containing pattern as a
// contiguous run of tokens. Documents are ordered by the first insertion of
// their content.
func (c *Corpus) Containing(pattern []string) []uuid.UUID {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.resolve(suffixtree.SequencesContaining(c.tree, pattern))
}

// EndingWith returns the UUIDs of all documents ending with pattern, ordered
// as for Containing.
func (c *Corpus) EndingWith(pattern []string) []uuid.UUID {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.resolve(suffixtree.SequencesEndingWith(c.tree, pattern))
}

// Document returns the tokens of the document with UUID id.
func (c *Corpus) Document(id uuid.UUID) ([]string, error) {
	c.mx.RLock()
	defer c.mx.RUnlock()
	seq, ok := c.seqs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDocument, id)
	}
	doc, _ := c.tree.Sequence(seq)
	return doc, nil
}

// Len returns the number of documents in the corpus.
func (c *Corpus) Len() int {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return len(c.seqs)
}

// Vocabulary returns the number of distinct tokens in the corpus.
func (c *Corpus) Vocabulary() int {
	return c.interner.Len()
}

// Inspect calls f with the underlying suffix tree, holding a read lock.
// f must not retain the tree.
func (c *Corpus) Inspect(f func(*suffixtree.Tree[string])) {
	c.mx.RLock()
	defer c.mx.RUnlock()
	f(c.tree)
}

// resolve maps ascending sequence IDs to document IDs.
func (c *Corpus) resolve(ids []suffixtree.SequenceID) []uuid.UUID {
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		result = append(result, c.docs[id]...)
	}
	return result
}
