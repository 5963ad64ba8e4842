/*
Package kvload loads key/value entries from text input into a B-tree.

Input is line oriented: every line holds a key and a value, separated by a
separator string (a tab by default). Blank lines and lines starting with '#'
are skipped.

Reading and parsing runs in the calling goroutine. Parsed entries are
broadcast to a single subscriber goroutine, which is the only writer to the
tree. Load returns after the subscriber has inserted all entries, so clients
never observe a tree with a running writer.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package kvload

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// LoadError is an error type for the kvload package.
type LoadError string

func (e LoadError) Error() string {
	return string(e)
}

// ErrMalformedLine is flagged in strict mode for lines without a separator.
const ErrMalformedLine = LoadError("kvload: malformed line")

// ErrNotRegular is flagged if a file to load is not a regular file.
const ErrNotRegular = LoadError("kvload: not a regular file")
