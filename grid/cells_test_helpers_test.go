package grid

import "fmt"

// parseCells turns a compact string of '~'/'X'/'.' into a Cells slice, for
// readable test literals (mirrors the '~'/'X'/'.' wire encoding from the
// puzzle package's own test fixtures).
func parseCells(s string) []Cell {
	cells := make([]Cell, len(s))
	for i, r := range s {
		switch r {
		case 'X':
			cells[i] = Filled
		case '.':
			cells[i] = Empty
		case '~':
			cells[i] = Unknown
		default:
			panic(fmt.Sprintf("parseCells: unexpected rune %q", r))
		}
	}
	return cells
}

func cellsString(cells []Cell) string {
	out := make([]rune, len(cells))
	for i, c := range cells {
		out[i] = c.Rune()
	}
	return string(out)
}
