/*
Package keyfile provides API helpers to load keys from text files into search
trees.

A key file holds one key per line. Blank lines and lines starting with '#'
are skipped, leading and trailing white space of a line is ignored:

	# fruit
	mango
	banana
	cherry

Reading and parsing the file is done asynchronously by a reader goroutine,
which hands the keys over through a bounded pipeline. Keys are inserted by the
goroutine calling Load, which is the single owner of the tree, in file order.
This is transparent to clients: Load returns after the whole file has been
processed.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package keyfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bstree'
func tracer() tracing.Trace {
	return tracing.Select("bstree")
}
