package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/

import (
	"errors"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML is a format for simple HTML output. Trees are rendered as nested
// unordered lists:
//
//	<ul class="bstree"><li class="black">2<ul><li class="red">1</li>…</ul></li></ul>
//
// Nodes of Red-Black trees carry their color as a CSS class, placeholders for
// missing children the class "nil".
type HTML struct {
	root *html.Node   // outermost <ul>
	open []*html.Node // stack of <ul> elements children are appended to
}

// NewHTML creates an HTML formatter.
func NewHTML() *HTML {
	return &HTML{}
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

// Preamble starts a new document fragment.
// (Part of interface Format)
func (h *HTML) Preamble(w io.Writer) {
	h.root = element(atom.Ul, "bstree")
	h.open = []*html.Node{h.root}
}

// Enter appends a list item for a node. Nodes with children open a nested
// list.
// (Part of interface Format)
func (h *HTML) Enter(item Item, w io.Writer) {
	class := ""
	switch {
	case item.Empty:
		class = "nil"
	case item.Colored && item.Red:
		class = "red"
	case item.Colored:
		class = "black"
	}
	li := element(atom.Li, class)
	li.AppendChild(&html.Node{Type: html.TextNode, Data: item.Label})
	h.open[len(h.open)-1].AppendChild(li)
	if item.Children > 0 {
		ul := element(atom.Ul, "")
		li.AppendChild(ul)
		h.open = append(h.open, ul)
	}
}

// Leave closes the nested list of a node with children.
// (Part of interface Format)
func (h *HTML) Leave(item Item, w io.Writer) {
	if item.Children > 0 {
		h.open = h.open[:len(h.open)-1]
	}
}

// Postamble renders the document fragment to w.
// (Part of interface Format)
func (h *HTML) Postamble(w io.Writer) error {
	if h.root == nil {
		return errors.New("HTML output without preamble")
	}
	T().P("format", "html").Debugf("rendering HTML list")
	return html.Render(w, h.root)
}
