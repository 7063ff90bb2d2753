/*
Package html extracts token sequences from HTML documents, for indexing them
in a suffix tree.
*/
package html

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/suffixtree/corpus"
	"github.com/npillmayer/suffixtree/tokens"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'suffixtree'
func tracer() tracing.Trace {
	return tracing.Select("suffixtree")
}

// ErrIllegalArguments is returned for missing parameters.
var ErrIllegalArguments = errors.New("html: illegal arguments")

// InnerText returns the textual content of an HTML element and all its
// descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", ErrIllegalArguments
	}
	var b strings.Builder
	collectText(n, func(s string) {
		b.WriteString(s)
	})
	return b.String(), nil
}

// collectText calls emit for every text node below n, in document order.
// Contents of script and style elements are skipped.
func collectText(n *html.Node, emit func(string)) {
	stack := []*html.Node{n}
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
			continue
		}
		if n.Type == html.TextNode {
			emit(n.Data)
		}
		for c := n.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
}

// SequencesFromHTML tokenizes the textual content of an HTML fragment.
// Every text node yields one sequence; text nodes without tokens are dropped.
// If tok is nil, tokens.Words is used.
//
// It does no interpretation of layout and styling, but extracts the pure text.
func SequencesFromHTML(input io.Reader, tok func(string) []string) ([][]string, error) {
	if input == nil {
		return nil, ErrIllegalArguments
	}
	if tok == nil {
		tok = tokens.Words
	}
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, fmt.Errorf("html: cannot parse input: %w", err)
	}
	var seqs [][]string
	for _, n := range nodes {
		collectText(n, func(s string) {
			if seq := tok(s); len(seq) > 0 {
				seqs = append(seqs, seq)
			}
		})
	}
	tracer().Debugf("html: extracted %d text sequences", len(seqs))
	return seqs, nil
}

// Index adds the text sequences of an HTML fragment to corpus c and returns
// the IDs of the documents added.
func Index(c *corpus.Corpus, input io.Reader, tok func(string) []string) ([]uuid.UUID, error) {
	if c == nil {
		return nil, ErrIllegalArguments
	}
	seqs, err := SequencesFromHTML(input, tok)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(seqs))
	for _, seq := range seqs {
		id, err := c.Add(seq)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
