package solver

import "github.com/Mogby/Nonogram/grid"

// solveDFS implements the depth-first branching variant: pick the first
// UNKNOWN cell in scan order, clone the grid, commit FILLED and recurse; on
// failure clone again, commit EMPTY and recurse; on double failure, return
// nil (infeasible from this branch).
//
// Recursion depth is bounded by the grid's cell count: every recursive call
// either completes the grid or settles at least one more cell (the branched
// cell itself) before the next branch point.
func solveDFS(p *Problem, g *grid.Grid, stats *Stats) *grid.Grid {
	i, j, ok := g.FirstUnknown()
	if !ok {
		return g
	}

	stats.BranchNodes++
	p.recorder().RecordEvent("branch", map[string]any{
		"row": i, "col": j, "node": stats.BranchNodes,
	})

	if result := tryAssignment(p, g, i, j, grid.Filled, stats); result != nil {
		return result
	}
	if result := tryAssignment(p, g, i, j, grid.Empty, stats); result != nil {
		return result
	}
	return nil
}

// tryAssignment clones g, commits v at (i,j), propagates to fixpoint, and
// recurses if the branch remains feasible.
func tryAssignment(p *Problem, g *grid.Grid, i, j int, v grid.Cell, stats *Stats) *grid.Grid {
	branch := g.Clone()
	branch.SetCell(i, j, v)
	stats.CellsForcedByBranching++

	branchProblem := &Problem{Grid: branch, Puzzle: p.Puzzle, RunID: p.RunID, Recorder: p.Recorder}
	if !propagateToFixpoint(branchProblem, stats) {
		return nil
	}
	if branch.IsFinal {
		return branch
	}
	return solveDFS(p, branch, stats)
}
