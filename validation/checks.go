package validation

import (
	"fmt"

	"github.com/Mogby/Nonogram/grid"
)

// CheckMirror verifies P7: rows[i].cells[j] == columns[j].cells[i] for
// every cell. It never fails silently — grid.Grid itself panics on a
// mirror-invariant violation during normal operation, so this exists for
// diagnostics and tests that construct a Grid by hand.
func CheckMirror(g *grid.Grid) error {
	for i := 0; i < g.Height; i++ {
		for j := 0; j < g.Width; j++ {
			row := g.Rows[i].Cells[j]
			col := g.Columns[j].Cells[i]
			if row != col {
				return fmt.Errorf("mirror invariant violated at (%d,%d): row=%s column=%s", i, j, row, col)
			}
		}
	}
	return nil
}

// CheckSolvedRuns verifies P8: every row and column of a final grid
// satisfies its clue by exact run-length match.
func CheckSolvedRuns(g *grid.Grid, rowClues, colClues []grid.Clue) error {
	for i, row := range g.Rows {
		if got := row.RunLengths(); !clueEqual(got, rowClues[i]) {
			return fmt.Errorf("row %d runs %v do not match clue %v", i, got, rowClues[i])
		}
	}
	for j, col := range g.Columns {
		if got := col.RunLengths(); !clueEqual(got, colClues[j]) {
			return fmt.Errorf("column %d runs %v do not match clue %v", j, got, colClues[j])
		}
	}
	return nil
}

// CheckIdempotent verifies P6 at the grid level: re-running the updater over
// every row and column changes nothing.
func CheckIdempotent(g *grid.Grid) error {
	clone := g.Clone()
	for i := range clone.Rows {
		result := clone.UpdateRow(i)
		if !result.Feasible {
			return fmt.Errorf("row %d became infeasible on a re-update", i)
		}
		if result.Changed != 0 {
			return fmt.Errorf("row %d changed %d cells on a re-update", i, result.Changed)
		}
	}
	for j := range clone.Columns {
		result := clone.UpdateColumn(j)
		if !result.Feasible {
			return fmt.Errorf("column %d became infeasible on a re-update", j)
		}
		if result.Changed != 0 {
			return fmt.Errorf("column %d changed %d cells on a re-update", j, result.Changed)
		}
	}
	return nil
}

func clueEqual(a, b grid.Clue) bool {
	if a.Empty() && b.Empty() {
		return true
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
