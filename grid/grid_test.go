package grid

import (
	"reflect"
	"testing"
)

// propagateToFixpoint repeatedly runs UpdateRow/UpdateColumn over every line
// until a full pass makes no further changes, mirroring the solver's
// propagation phase without pulling in the solver package itself.
func propagateToFixpoint(t *testing.T, g *Grid) {
	t.Helper()
	for {
		changed := 0
		for i := 0; i < g.Height; i++ {
			result := UpdateRow(g, i)
			if !result.Feasible {
				t.Fatalf("row %d became infeasible", i)
			}
			changed += result.Changed
		}
		for j := 0; j < g.Width; j++ {
			result := UpdateColumn(g, j)
			if !result.Feasible {
				t.Fatalf("column %d became infeasible", j)
			}
			changed += result.Changed
		}
		if changed == 0 {
			return
		}
	}
}

// UpdateRow/UpdateColumn are methods on *Grid; these wrappers just make the
// fixpoint loop above read as free functions.
func UpdateRow(g *Grid, i int) UpdateResult    { return g.UpdateRow(i) }
func UpdateColumn(g *Grid, j int) UpdateResult { return g.UpdateColumn(j) }

func TestGridSolvesByPropagationAlone(t *testing.T) {
	// Every row clue is an exact fit for width 5, so row propagation alone
	// fully determines the grid; column clues below are simply the
	// resulting pattern's run-lengths, read off by column.
	rowClues := []Clue{{1, 1, 1}, {5}, {1, 1, 1}, {5}, {1, 1, 1}}
	colClues := []Clue{{5}, {1, 1}, {5}, {1, 1}, {5}}

	g := New(5, 5, rowClues, colClues)
	propagateToFixpoint(t, g)

	if !g.IsFinal {
		t.Fatal("expected grid to be fully settled")
	}
	want := []string{
		"X.X.X",
		"XXXXX",
		"X.X.X",
		"XXXXX",
		"X.X.X",
	}
	for i, row := range want {
		if got := cellsString(g.Rows[i].Cells); got != row {
			t.Errorf("row %d = %q, want %q", i, got, row)
		}
	}
	for j := 0; j < g.Width; j++ {
		if !g.Columns[j].Solved {
			t.Errorf("column %d not marked solved", j)
		}
	}
}

func TestGridMirrorInvariant(t *testing.T) {
	g := New(3, 3, []Clue{{1}, {1}, {1}}, []Clue{{1}, {1}, {1}})
	g.SetCell(1, 1, Filled)
	if g.Rows[1].Cells[1] != g.Columns[1].Cells[1] {
		t.Fatal("row and column views disagree after SetCell")
	}
	if g.SettledCount() != 1 {
		t.Errorf("SettledCount = %d, want 1", g.SettledCount())
	}
}

func TestGridSetCellPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic assigning Unknown via SetCell")
		}
	}()
	g := New(2, 2, []Clue{{1}, {1}}, []Clue{{1}, {1}})
	g.SetCell(0, 0, Unknown)
}

func TestGridSetCellPanicsOnResettle(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic resettling an already-settled cell")
		}
	}()
	g := New(2, 2, []Clue{{1}, {1}}, []Clue{{1}, {1}})
	g.SetCell(0, 0, Filled)
	g.SetCell(0, 0, Empty)
}

func TestGridMirrorPanicsOnDisagreement(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on row/column disagreement")
		}
	}()
	g := New(2, 2, []Clue{{1}, {1}}, []Clue{{1}, {1}})
	g.Columns[0].Cells[0] = Empty
	g.mirror(0, 0, Filled, &g.Columns[0].Cells[0])
}

func TestGridCloneIndependence(t *testing.T) {
	g := New(3, 3, []Clue{{1}, {1}, {1}}, []Clue{{1}, {1}, {1}})
	g.SetCell(0, 0, Filled)

	clone := g.Clone()
	clone.SetCell(1, 1, Filled)

	if g.Rows[1].Cells[1] == Filled {
		t.Fatal("mutating the clone leaked back into the original")
	}
	if clone.Rows[0].Cells[0] != Filled {
		t.Fatal("clone lost a cell that was settled before cloning")
	}
	if g.SettledCount() != 1 {
		t.Errorf("original SettledCount = %d, want 1", g.SettledCount())
	}
	if clone.SettledCount() != 2 {
		t.Errorf("clone SettledCount = %d, want 2", clone.SettledCount())
	}
}

func TestGridFirstUnknownScanOrder(t *testing.T) {
	g := New(2, 2, []Clue{{1}, {1}}, []Clue{{1}, {1}})
	g.SetCell(0, 0, Empty)
	i, j, ok := g.FirstUnknown()
	if !ok {
		t.Fatal("expected an Unknown cell")
	}
	if i != 0 || j != 1 {
		t.Errorf("FirstUnknown = (%d,%d), want (0,1)", i, j)
	}

	g.SetCell(0, 1, Filled)
	g.SetCell(1, 0, Empty)
	g.SetCell(1, 1, Filled)
	if _, _, ok := g.FirstUnknown(); ok {
		t.Fatal("expected no Unknown cells left")
	}
}

func TestGridUnsolvedRowsOrdering(t *testing.T) {
	// Row 0 has one Unknown cell left, row 1 has three: the most-constrained
	// heuristic must return row 0 first.
	g := New(3, 2, []Clue{{1}, {3}}, []Clue{{1}, {1}, {1}})
	g.Rows[0].Cells[0] = Filled
	g.Rows[0].Cells[1] = Empty
	// Row 0's remaining cell (index 2) is left Unknown on purpose.

	order := g.UnsolvedRows()
	if !reflect.DeepEqual(order, []int{0, 1}) {
		t.Errorf("UnsolvedRows = %v, want [0 1]", order)
	}
}

func TestGridUnsolvedExcludesSolvedLines(t *testing.T) {
	rowClues := []Clue{{1, 1, 1}, {5}, {1, 1, 1}, {5}, {1, 1, 1}}
	colClues := []Clue{{5}, {1, 1}, {5}, {1, 1}, {5}}
	g := New(5, 5, rowClues, colClues)
	propagateToFixpoint(t, g)

	if rows := g.UnsolvedRows(); len(rows) != 0 {
		t.Errorf("UnsolvedRows after full solve = %v, want empty", rows)
	}
	if cols := g.UnsolvedColumns(); len(cols) != 0 {
		t.Errorf("UnsolvedColumns after full solve = %v, want empty", cols)
	}
}
