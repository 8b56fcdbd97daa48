package grid

import "sort"

// Grid owns every row and column Line of a nonogram and keeps the two views
// of each cell mirrored: Rows[i].Cells[j] always equals Columns[j].Cells[i]
// outside of a call to SetCell/UpdateRow/UpdateColumn.
type Grid struct {
	Width, Height int
	Rows          []Line
	Columns       []Line
	IsFinal       bool

	settled int
}

// New allocates a Grid of the given dimensions with every cell Unknown.
// len(rowClues) must equal height and len(colClues) must equal width.
func New(width, height int, rowClues, colClues []Clue) *Grid {
	g := &Grid{Width: width, Height: height}

	g.Rows = make([]Line, height)
	for i := 0; i < height; i++ {
		g.Rows[i] = NewLine(width, rowClues[i])
	}

	g.Columns = make([]Line, width)
	for j := 0; j < width; j++ {
		g.Columns[j] = NewLine(height, colClues[j])
	}

	return g
}

// Cell returns the current value at (row i, column j).
func (g *Grid) Cell(i, j int) Cell {
	return g.Rows[i].Cells[j]
}

// SettledCount returns the number of cells no longer Unknown.
func (g *Grid) SettledCount() int {
	return g.settled
}

// SetCell commits a single cell to a settled value. It is the only entry
// point branching uses to speculatively assign a cell; like every other
// mutator here it only allows the UNKNOWN -> settled transition, panicking
// on any attempt to regress or contradict an already-settled cell.
func (g *Grid) SetCell(i, j int, v Cell) {
	if v == Unknown {
		panic("grid: SetCell cannot assign Unknown")
	}
	if g.Rows[i].Cells[j] != Unknown {
		panic("grid: attempt to resettle an already-settled cell")
	}
	g.Rows[i].Cells[j] = v
	g.Columns[j].Cells[i] = v
	g.bumpSettled()
}

// UpdateRow runs the line updater against row i and mirrors every forced
// cell into the corresponding columns.
func (g *Grid) UpdateRow(i int) UpdateResult {
	row := &g.Rows[i]
	before := snapshot(row.Cells)
	result := UpdateLine(row)
	if !result.Feasible {
		return result
	}
	for j, c := range row.Cells {
		if c != before[j] {
			g.mirror(i, j, c, &g.Columns[j].Cells[i])
		}
	}
	return result
}

// UpdateColumn runs the line updater against column j and mirrors every
// forced cell into the corresponding rows.
func (g *Grid) UpdateColumn(j int) UpdateResult {
	col := &g.Columns[j]
	before := snapshot(col.Cells)
	result := UpdateLine(col)
	if !result.Feasible {
		return result
	}
	for i, c := range col.Cells {
		if c != before[i] {
			g.mirror(i, j, c, &g.Rows[i].Cells[j])
		}
	}
	return result
}

// mirror writes v into the perpendicular line's cell slot and bumps the
// settled counter, panicking if that slot disagrees with an already
// settled value — a mirror-invariant violation is a fatal logic bug, never
// a recoverable condition.
func (g *Grid) mirror(i, j int, v Cell, slot *Cell) {
	if *slot != Unknown {
		if *slot != v {
			panic("grid: mirror invariant violation: rows and columns disagree")
		}
		return
	}
	*slot = v
	g.bumpSettled()
}

func (g *Grid) bumpSettled() {
	g.settled++
	if g.settled == g.Width*g.Height {
		g.IsFinal = true
	}
}

func snapshot(cells []Cell) []Cell {
	out := make([]Cell, len(cells))
	copy(out, cells)
	return out
}

// FirstUnknown returns the first Unknown cell in row-major scan order, used
// by the depth-first branching strategy. ok is false when the grid is
// already complete.
func (g *Grid) FirstUnknown() (i, j int, ok bool) {
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.Rows[r].Cells[c] == Unknown {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Clone performs a deep copy of the grid: every Line, its Cells, and its
// cached placements are independent of the original, so a sibling branch
// mutating the clone can never be observed by the parent.
func (g *Grid) Clone() *Grid {
	ng := &Grid{Width: g.Width, Height: g.Height, IsFinal: g.IsFinal, settled: g.settled}

	ng.Rows = make([]Line, len(g.Rows))
	for i := range g.Rows {
		ng.Rows[i] = g.Rows[i].Clone()
	}

	ng.Columns = make([]Line, len(g.Columns))
	for j := range g.Columns {
		ng.Columns[j] = g.Columns[j].Clone()
	}

	return ng
}

// UnsolvedRows returns the indices of rows not yet Solved, ordered
// ascending by remaining Unknown-cell count — the most-constrained-first
// heuristic recommended by the spec to cut branching. This ordering is a
// performance concern only: any order is correct once a pass runs to
// fixpoint.
func (g *Grid) UnsolvedRows() []int {
	return unsolvedIndices(g.Rows)
}

// UnsolvedColumns returns the indices of columns not yet Solved, in the
// same most-constrained-first order as UnsolvedRows.
func (g *Grid) UnsolvedColumns() []int {
	return unsolvedIndices(g.Columns)
}

func unsolvedIndices(lines []Line) []int {
	idx := make([]int, 0, len(lines))
	for i, l := range lines {
		if !l.Solved {
			idx = append(idx, i)
		}
	}
	sort.Slice(idx, func(a, b int) bool {
		return lines[idx[a]].UnknownCount() < lines[idx[b]].UnknownCount()
	})
	return idx
}

// RefreshFillMasks recomputes the optional FillMask cache for every row and
// column. Purely diagnostic/optimisation state; never required for
// correctness.
func (g *Grid) RefreshFillMasks() {
	for i := range g.Rows {
		g.Rows[i].RefreshFillMask()
	}
	for j := range g.Columns {
		g.Columns[j].RefreshFillMask()
	}
}
