// Package render draws a terse text dump of the grid to an io.Writer, used
// by the CLI's --display flag (spec.md §6.4). It is not a graphical
// renderer — the spec's grid-rendering non-goal excludes that, not a plain
// text board dump — grounded on the teacher's habit of printing small ASCII
// diagrams for worked examples (examples/gridgraph_link_islands.go).
package render

import (
	"fmt"
	"io"
	"strings"
)

// Board mirrors the subset of world.Grid render needs, so this package has
// no import-cycle back into world.
type Board interface {
	Width() int
	Height() int
	CellAt(x, y int) rune
}

// Write renders one full board snapshot: one line per row, top to bottom,
// followed by a blank separator line.
func Write(w io.Writer, b Board) error {
	var sb strings.Builder
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			sb.WriteRune(b.CellAt(x, y))
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	_, err := fmt.Fprint(w, sb.String())
	return err
}
