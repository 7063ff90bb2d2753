package tokens

import (
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

var setupGraphemes sync.Once

// Graphemes splits s into grapheme clusters, i.e. user-perceived characters.
// A flag emoji or a base character with combining marks is one item.
func Graphemes(s string) []string {
	if s == "" {
		return []string{}
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	n := gstr.Len()
	clusters := make([]string, 0, n)
	for i := 0; i < n; i++ {
		clusters = append(clusters, gstr.Nth(i))
	}
	return clusters
}

// Words splits s at UAX#29 word boundaries. Segments consisting of white space
// only are dropped, punctuation is kept as separate tokens.
func Words(s string) []string {
	words := []string{}
	segmenter := segment.NewSegmenter(uax29.NewWordBreaker(1))
	segmenter.Init(strings.NewReader(s))
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		if isBlank(frag) {
			continue
		}
		words = append(words, frag)
	}
	tracer().Debugf("tokens: %d words in %d bytes", len(words), len(s))
	return words
}

// Fields splits s at white space, like strings.Fields. It is the tokenizer of
// choice for pre-tokenized input, e.g. one token per column.
func Fields(s string) []string {
	return strings.Fields(s)
}

func isBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsSpace(r)
	}) < 0
}

// --- Interning -------------------------------------------------------------

// Interner deduplicates token strings, so that repeated tokens share storage.
// An Interner is safe for concurrent use. The zero value is ready to use.
type Interner struct {
	mx    sync.Mutex
	table map[string]string
	hits  int
}

// Intern returns the canonical instance of s.
func (in *Interner) Intern(s string) string {
	in.mx.Lock()
	defer in.mx.Unlock()
	if in.table == nil {
		in.table = make(map[string]string)
	}
	if c, ok := in.table[s]; ok {
		in.hits++
		return c
	}
	s = strings.Clone(s)
	in.table[s] = s
	return s
}

// InternAll replaces every token of seq by its canonical instance, in place,
// and returns seq.
func (in *Interner) InternAll(seq []string) []string {
	for i, s := range seq {
		seq[i] = in.Intern(s)
	}
	return seq
}

// Len returns the number of distinct tokens seen.
func (in *Interner) Len() int {
	in.mx.Lock()
	defer in.mx.Unlock()
	return len(in.table)
}

// Hits returns the number of calls to Intern which found an existing token.
func (in *Interner) Hits() int {
	in.mx.Lock()
	defer in.mx.Unlock()
	return in.hits
}
