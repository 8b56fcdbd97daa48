package puzzle

import (
	"io"
	"strconv"
	"strings"

	"github.com/Mogby/Nonogram/grid"
)

// WriteGrid writes g as H lines of 2*W characters, each cell emitted twice
// for aspect-ratio correction, using the 'X'/'.'/'~' cell encoding.
func WriteGrid(w io.Writer, g *grid.Grid) error {
	var buf strings.Builder
	for i := 0; i < g.Height; i++ {
		for j := 0; j < g.Width; j++ {
			r := g.Cell(i, j).Rune()
			buf.WriteRune(r)
			buf.WriteRune(r)
		}
		buf.WriteByte('\n')
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

// GridString is a convenience wrapper around WriteGrid for callers that want
// the rendered grid as a string (diagnostics, tests).
func GridString(g *grid.Grid) string {
	var b strings.Builder
	_ = WriteGrid(&b, g)
	return b.String()
}

// WritePuzzle writes p back out in the wire format ParseFile/Parse accept,
// used by `nonogram create` and by round-trip tests.
func WritePuzzle(w io.Writer, p Puzzle) error {
	var buf strings.Builder
	buf.WriteString(strconv.Itoa(p.Width))
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(p.Height))
	buf.WriteByte('\n')
	for _, c := range p.ColumnClues {
		writeClueLine(&buf, c)
	}
	for _, c := range p.RowClues {
		writeClueLine(&buf, c)
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

func writeClueLine(buf *strings.Builder, c grid.Clue) {
	for i, run := range c {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(strconv.Itoa(run))
	}
	buf.WriteByte('\n')
}
