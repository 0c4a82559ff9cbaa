package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/npillmayer/bstree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int            // maximum display width of a line in en; 0 for unlimited
	Colors    bool           // colour the nodes of Red-Black trees
	Context   *uax11.Context // context for measuring display widths
}

// Side tells which child slot of its parent a node occupies.
type Side int8

// A node is either the root of a tree or a left or right child.
const (
	Root Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "root"
}

// Item describes a node of a tree, as handed to a Format by the formatting
// driver.
type Item struct {
	Label    string // text to display for the node
	Depth    int    // distance from the root
	Side     Side   // child slot of the node
	Last     bool   // no sibling follows
	Trail    []bool // for every ancestor below the root: a sibling of it follows
	Children int    // number of child items following, including placeholders
	Red      bool   // node is red
	Colored  bool   // node should be displayed with its color
	Empty    bool   // placeholder for a missing child
}

// Format is an interface for formatting drivers, given an io.Writer.
//
// For every node the driver calls Enter, then handles the children of the
// node, then calls Leave. Children are visited left to right. Postamble is
// called last and reports errors which occured during output.
type Format interface {
	Preamble(io.Writer)
	Enter(Item, io.Writer)
	Leave(Item, io.Writer)
	Postamble(io.Writer) error
}

// indentWidth is the width of one level of indentation in en.
const indentWidth = 4

// emptyLabel is displayed for missing children.
const emptyLabel = "·"

var setupGraphemes sync.Once

// Output formats a tree using a given formatter.
//
// Neither of the arguments may be nil. However, it is safe to have config.Context
// set to nil. In this case, uax11.LatinContext is used.
func Output[K any](tree *bstree.Tree[K], out io.Writer, config *Config, format Format) error {
	if tree == nil || out == nil || config == nil || format == nil {
		return errors.New("illegal argument: nil")
	} else if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	T().P("format", "tree").Debugf("output of tree with %d nodes", tree.Size())
	d := driver[K]{config: config, format: format, out: out}
	format.Preamble(out)
	if !tree.IsEmpty() {
		d.walk(tree.Root(), Item{
			Side:    Root,
			Last:    true,
			Colored: config.Colors && tree.Balancing() == bstree.RedBlack,
		})
	}
	return format.Postamble(out)
}

// Print outputs a tree to stdout.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func Print[K any](tree *bstree.Tree[K], config *Config) error {
	return Fprint(os.Stdout, tree, config)
}

// Fprint outputs a tree to w, formatted for a console. Parameter config is
// treated as for Print.
func Fprint[K any](w io.Writer, tree *bstree.Tree[K], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(tree, w, config, NewConsole(nil))
}

// FprintHTML outputs a tree to w as a nested HTML list.
func FprintHTML[K any](w io.Writer, tree *bstree.Tree[K]) error {
	config := &Config{Colors: true, Context: uax11.LatinContext}
	return Output(tree, w, config, NewHTML())
}

type driver[K any] struct {
	config *Config
	format Format
	out    io.Writer
}

func (d driver[K]) walk(n *bstree.Node[K], item Item) {
	item.Label = d.label(fmt.Sprintf("%v", n.Key()), item.Depth)
	item.Red = n.IsRed()
	if !n.IsLeaf() {
		item.Children = 2
	}
	d.format.Enter(item, d.out)
	if !n.IsLeaf() {
		trail := item.Trail
		if item.Depth > 0 {
			trail = append(slices.Clone(item.Trail), !item.Last)
		}
		for i, c := range [2]*bstree.Node[K]{n.Left(), n.Right()} {
			child := Item{
				Depth:   item.Depth + 1,
				Side:    Left + Side(i),
				Last:    i == 1,
				Trail:   trail,
				Colored: item.Colored,
			}
			if c == nil {
				child.Label, child.Empty = emptyLabel, true
				d.format.Enter(child, d.out)
				d.format.Leave(child, d.out)
				continue
			}
			d.walk(c, child)
		}
	}
	d.format.Leave(item, d.out)
}

// label truncates a key label to fit into the line, given the indentation
// depth of the node.
func (d driver[K]) label(s string, depth int) string {
	if d.config.LineWidth <= 0 {
		return s
	}
	width := max(1, d.config.LineWidth-indentWidth*depth)
	return truncate(s, width, d.config.Context)
}

// truncate shortens s to a display width of at most width en, marking the
// cut with an ellipsis.
func truncate(s string, width int, context *uax11.Context) string {
	if uax11.StringWidth(grapheme.StringFromString(s), context) <= width {
		return s
	}
	runes := []rune(s)
	for l := len(runes) - 1; l > 0; l-- {
		t := string(runes[:l]) + "…"
		if uax11.StringWidth(grapheme.StringFromString(t), context) <= width {
			T().P("format", "tree").Debugf("label %q truncated to %q", s, t)
			return t
		}
	}
	return "…"
}
