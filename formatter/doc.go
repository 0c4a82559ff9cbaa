/*
Package formatter renders the shape of search trees on output devices, either
as indented, optionally coloured text for consoles with fixed-width fonts or
as nested HTML lists.

Keys are labelled using their default formatting (`%v`). Console output has
to fit into a given line width; labels which are too wide are truncated.
Measuring the width of labels follows UAX#11 (character width) on grapheme
clusters (UAX#29), so keys containing East Asian wide characters or emojis
are aligned correctly.

	tree := bstree.NewOrdered[string](bstree.RedBlack)
	…
	formatter.Print(tree, nil)

will output something like

	mango
	├── banana
	│   ├── apple
	│   └── cherry
	└── peach

Red-Black trees have their nodes coloured on terminals supporting it. Missing
children of nodes with a single child are shown as "·", so left and right
children are always distinguishable.

API

Clients select a Format and call Output, or use one of the shortcuts Print,
Fprint and FprintHTML. Format is an interface type and this package offers two
implementations, one for console output and one for HTML output.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
