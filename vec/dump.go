package vec

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/vanierrobotics/aex"
	"golang.org/x/term"
)

// Dump writes a storage map of the sequence to w (for debugging purposes).
//
// Live slots are printed with their values, spare slots as a placeholder.
// Lines wrap at the terminal width if stdout is an interactive terminal, at
// a default width otherwise.
func (v *Vec[T]) Dump(w io.Writer) {
	width := lineWidth()
	live := color.New(color.FgGreen)
	spare := color.New(color.FgHiBlack)
	if _, err := fmt.Fprintf(w, "vec len=%d cap=%d\n", v.size, len(v.data)); err != nil {
		aex.T().P("format", "vec").Errorf("vec dump: %s", err.Error())
		return
	}
	col := 0
	for i := range v.data {
		cell, c := "[·]", spare
		if i < v.size {
			cell, c = fmt.Sprintf("[%v]", v.data[i]), live
		}
		if col+len(cell) > width && col > 0 {
			io.WriteString(w, "\n")
			col = 0
		}
		c.Fprint(w, cell)
		col += len(cell)
	}
	if len(v.data) > 0 {
		io.WriteString(w, "\n")
	}
}

// lineWidth checks whether stdout is a terminal, and if so reads the
// terminal's width to choose a wrap target for Dump.
func lineWidth() int {
	width := 65
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil {
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
	aex.T().P("format", "vec").Debugf("setting dump line width to %d", width)
	return width
}
