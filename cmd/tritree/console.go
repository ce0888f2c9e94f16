package main

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/term"
)

// palette colours parentheses by nesting level.
var palette = []*color.Color{
	color.New(color.FgBlue),
	color.New(color.FgGreen),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgYellow),
	color.New(color.FgRed),
}

// lineWidth checks wether stdout is a terminal, and if so it derives the
// output line width from the terminal's width.
func lineWidth() int {
	width := 65
	if term.IsTerminal(1) {
		w, _, err := term.GetSize(1)
		if err == nil {
			switch {
			case w > 65:
				width = w - 10
			case w > 30:
				width = w - 5
			case w > 10:
				width = w
			default:
				width = 10
			}
		}
	}
	tracing.Select("tritree").Infof("setting line length to %d en", width)
	return width
}

// printNested writes an inline tree layout, colouring each pair of
// parentheses by its nesting level. Lines are broken at spaces when they
// would exceed width.
func printNested(w io.Writer, inline string, width int) {
	level, col := 0, 0
	for _, word := range strings.SplitAfter(inline, " ") {
		if col > 0 && col+len(word) > width {
			io.WriteString(w, "\n")
			col = 0
		}
		for _, r := range word {
			switch r {
			case '(':
				palette[level%len(palette)].Fprint(w, "(")
				level++
			case ')':
				level--
				palette[level%len(palette)].Fprint(w, ")")
			default:
				io.WriteString(w, string(r))
			}
		}
		col += len(word)
	}
	io.WriteString(w, "\n")
}
