/*
Package tokens turns text into item sequences suitable for a suffix tree.

Text may be split into user-perceived characters (grapheme clusters, UAX#29)
or into words (UAX#29 word boundaries). Word sequences tend to repeat a small
vocabulary; an Interner lets all occurrences of a token share one string.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package tokens

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'suffixtree'
func tracer() tracing.Trace {
	return tracing.Select("suffixtree")
}
