/*
Package textfile provides API helpers to index UTF-8 text files.

Every line of a file becomes one document of a corpus. Lines are read by a
background goroutine and broadcast to subscribers: the indexer, which tokenizes
the lines and adds them to the corpus one by one, and an optional progress
listener. Load itself is synchronous.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'suffixtree'
func tracer() tracing.Trace {
	return tracing.Select("suffixtree")
}
