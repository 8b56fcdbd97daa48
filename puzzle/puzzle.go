// Package puzzle reads and writes the nonogram text wire format and bridges
// it to the grid package's solving model.
package puzzle

import "github.com/Mogby/Nonogram/grid"

// Puzzle is a parsed nonogram: its dimensions and the clue for every row and
// column, in the order the wire format presents them.
type Puzzle struct {
	Width, Height int
	RowClues      []grid.Clue
	ColumnClues   []grid.Clue
}

// NewGrid allocates a fresh, fully-Unknown Grid for the puzzle.
func (p Puzzle) NewGrid() *grid.Grid {
	return grid.New(p.Width, p.Height, p.RowClues, p.ColumnClues)
}
