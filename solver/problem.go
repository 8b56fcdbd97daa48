// Package solver drives a grid.Grid to completion: propagate every line to
// fixpoint, then branch on a remaining UNKNOWN cell when propagation stalls.
package solver

import (
	"time"

	"github.com/google/uuid"

	"github.com/Mogby/Nonogram/grid"
	"github.com/Mogby/Nonogram/puzzle"
)

// Strategy selects the branching variant used once propagation stalls.
type Strategy int

const (
	// DFS picks the first UNKNOWN cell in scan order and recurses depth
	// first: commit FILLED, recurse; on failure commit EMPTY, recurse.
	DFS Strategy = iota
	// BestFirst expands the two children of the first UNKNOWN cell in scan
	// order, propagates each a bounded number of passes, and explores the
	// most promising first. Other UNKNOWN cells are not branched on at the
	// same expansion.
	BestFirst
)

func (s Strategy) String() string {
	switch s {
	case DFS:
		return "dfs"
	case BestFirst:
		return "bestfirst"
	default:
		return "unknown"
	}
}

// Recorder observes solver progress without the solver needing to know how
// (or whether) those observations are persisted; history.SolverRecorder
// satisfies it.
type Recorder interface {
	RecordEvent(kind string, payload map[string]any)
}

// noopRecorder discards every event; used when a Problem has no Recorder.
type noopRecorder struct{}

func (noopRecorder) RecordEvent(string, map[string]any) {}

// Problem bundles a puzzle's grid with the run identity and optional event
// sink the driver reports progress to.
type Problem struct {
	Grid   *grid.Grid
	Puzzle puzzle.Puzzle
	RunID  uuid.UUID

	Recorder Recorder
}

// NewProblem starts a fresh run over p, with a newly minted run ID.
func NewProblem(p puzzle.Puzzle) *Problem {
	return &Problem{
		Grid:   p.NewGrid(),
		Puzzle: p,
		RunID:  uuid.New(),
	}
}

func (p *Problem) recorder() Recorder {
	if p.Recorder == nil {
		return noopRecorder{}
	}
	return p.Recorder
}

// Stats reports how much work a Solve call did, split between the
// propagation and branching phases the spec distinguishes.
type Stats struct {
	PropagationPasses        int
	BranchNodes               int
	CellsForcedByPropagation int
	CellsForcedByBranching   int
	Elapsed                  time.Duration
}

// Solve runs propagation to fixpoint, then branches with strategy if cells
// remain UNKNOWN. It returns the grid reached (whose IsFinal flag is the
// caller's signal of success) and statistics about the run.
func Solve(p *Problem, strategy Strategy) (*grid.Grid, Stats, error) {
	start := time.Now()
	stats := Stats{}

	feasible := propagateToFixpoint(p, &stats)
	if !feasible {
		// Every cell may already be settled; an infeasible grid is never final.
		p.Grid.IsFinal = false
		stats.Elapsed = time.Since(start)
		p.recorder().RecordEvent("infeasible", map[string]any{"node": stats.BranchNodes})
		return p.Grid, stats, nil
	}
	if p.Grid.IsFinal {
		stats.Elapsed = time.Since(start)
		p.recorder().RecordEvent("solved", map[string]any{"node": stats.BranchNodes})
		return p.Grid, stats, nil
	}

	var result *grid.Grid
	switch strategy {
	case BestFirst:
		result = solveBestFirst(p, &stats)
	default:
		result = solveDFS(p, p.Grid, &stats)
	}
	if result == nil {
		result = p.Grid
	}

	stats.Elapsed = time.Since(start)
	if result.IsFinal {
		p.recorder().RecordEvent("solved", map[string]any{"node": stats.BranchNodes})
	} else {
		p.recorder().RecordEvent("infeasible", map[string]any{"node": stats.BranchNodes})
	}
	return result, stats, nil
}
