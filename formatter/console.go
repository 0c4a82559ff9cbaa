package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/bstree"
	"golang.org/x/term"
)

// Console is a type for outputting trees to a console with a fixed width font.
// Nodes are printed one per line, indented by their depth and connected to
// their parents with box-drawing characters.
type Console struct {
	colors map[bstree.Color]*color.Color
}

// NewConsole creates a new formatter. It is to be used for consoles
// with a fixed width font.
//
// colors is a map from node colors to display colors. It may be nil, in which
// case a default palette is used.
func NewConsole(colors map[bstree.Color]*color.Color) *Console {
	c := &Console{colors: colors}
	if c.colors == nil {
		c.colors = makeDefaultPalette()
	}
	return c
}

func makeDefaultPalette() map[bstree.Color]*color.Color {
	palette := map[bstree.Color]*color.Color{
		bstree.Red:   color.New(color.FgRed),
		bstree.Black: color.New(color.FgBlue, color.Bold),
	}
	return palette
}

// Preamble is called by the output driver before a tree will be formatted.
// (Part of interface Format)
func (c *Console) Preamble(w io.Writer) {}

// Enter outputs a line for a node.
// (Part of interface Format)
func (c *Console) Enter(item Item, w io.Writer) {
	var b strings.Builder
	if item.Depth > 0 {
		for _, follows := range item.Trail {
			if follows {
				b.WriteString("│   ")
			} else {
				b.WriteString("    ")
			}
		}
		if item.Last {
			b.WriteString("└── ")
		} else {
			b.WriteString("├── ")
		}
	}
	io.WriteString(w, b.String())
	if item.Colored && !item.Empty {
		clr := bstree.Black
		if item.Red {
			clr = bstree.Red
		}
		if col, ok := c.colors[clr]; ok {
			col.Fprint(w, item.Label)
			io.WriteString(w, "\n")
			return
		}
	}
	io.WriteString(w, item.Label+"\n")
}

// Leave does nothing for consoles.
// (Part of interface Format)
func (c *Console) Leave(item Item, w io.Writer) {}

// Postamble will be called after a tree has been formatted.
// (Part of interface Format)
func (c *Console) Postamble(w io.Writer) error {
	return nil
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched on
// for terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
		config.Colors = !color.NoColor
	} else {
		config.LineWidth = 65
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
