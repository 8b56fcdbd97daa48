package results

import (
	"time"

	"github.com/Mogby/Nonogram/grid"
	"github.com/Mogby/Nonogram/puzzle"
	"github.com/Mogby/Nonogram/solver"
)

// Builder helps construct Results from a solve, mirroring the shape a
// caller can directly Write/WriteJSON without further transformation.
type Builder struct {
	results Results
}

// NewBuilder creates a results builder stamped with the current time.
func NewBuilder() *Builder {
	return &Builder{
		results: Results{
			Version: SchemaVersion,
			Metadata: Metadata{
				Timestamp: time.Now(),
			},
		},
	}
}

// WithPuzzle records the puzzle that was solved.
func (b *Builder) WithPuzzle(p puzzle.Puzzle) *Builder {
	b.results.Puzzle = Puzzle{
		Width:       p.Width,
		Height:      p.Height,
		RowClues:    cluesToInts(p.RowClues),
		ColumnClues: cluesToInts(p.ColumnClues),
	}
	return b
}

// WithRun records the run identifier and branching strategy used.
func (b *Builder) WithRun(runID string, strategy solver.Strategy) *Builder {
	b.results.Metadata.RunID = runID
	b.results.Metadata.Strategy = strategy.String()
	return b
}

// WithSolution records a solved grid and the stats the solver gathered
// reaching it.
func (b *Builder) WithSolution(g *grid.Grid, stats solver.Stats) *Builder {
	rows := make([]string, g.Height)
	for y := 0; y < g.Height; y++ {
		row := make([]rune, g.Width)
		for x := 0; x < g.Width; x++ {
			row[x] = g.Rows[y].Cells[x].Rune()
		}
		rows[y] = string(row)
	}
	b.results.Solution = &Solution{
		Rows: rows,
		Stats: Stats{
			PropagationPasses:       stats.PropagationPasses,
			BranchNodes:             stats.BranchNodes,
			CellsForcedByPropagation: stats.CellsForcedByPropagation,
			CellsForcedByBranching:  stats.CellsForcedByBranching,
			ElapsedSeconds:          stats.Elapsed.Seconds(),
		},
	}
	if g.IsFinal {
		b.results.Metadata.Status = "solved"
	} else {
		b.results.Metadata.Status = "infeasible"
	}
	b.results.Metadata.ComputeTime = stats.Elapsed.Seconds()
	return b
}

// WithError records a solve that returned an error (status "error"); an
// infeasible solve is recorded by WithSolution instead.
func (b *Builder) WithError(err error) *Builder {
	b.results.Metadata.Status = "error"
	b.results.Metadata.Error = err.Error()
	return b
}

// WithEvents attaches a recorded event trace, e.g. read back from a
// history.Store.
func (b *Builder) WithEvents(events []Event) *Builder {
	b.results.Events = events
	return b
}

// Build returns the assembled Results.
func (b *Builder) Build() *Results {
	return &b.results
}

func cluesToInts(clues []grid.Clue) [][]int {
	out := make([][]int, len(clues))
	for i, c := range clues {
		out[i] = []int(c)
	}
	return out
}
