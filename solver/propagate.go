package solver

import "github.com/Mogby/Nonogram/grid"

// propagateToFixpoint repeats propagation passes over g until one makes no
// change. Returns false the moment any line proves infeasible.
func propagateToFixpoint(p *Problem, stats *Stats) bool {
	g := p.Grid
	for {
		changed, feasible := propagatePass(g)
		stats.PropagationPasses++
		stats.CellsForcedByPropagation += changed
		if !feasible {
			p.recorder().RecordEvent("propagation_infeasible", map[string]any{
				"pass": stats.PropagationPasses,
			})
			return false
		}
		if changed == 0 {
			return true
		}
	}
}

// propagatePass runs the line updater once over every unsolved column, then
// every unsolved row, in the most-constrained-first order the grid offers.
// Column/row ordering within a single pass does not affect the fixpoint
// reached, only how quickly it's reached.
func propagatePass(g *grid.Grid) (changed int, feasible bool) {
	for _, j := range g.UnsolvedColumns() {
		result := g.UpdateColumn(j)
		if !result.Feasible {
			return changed, false
		}
		changed += result.Changed
	}
	for _, i := range g.UnsolvedRows() {
		result := g.UpdateRow(i)
		if !result.Feasible {
			return changed, false
		}
		changed += result.Changed
	}
	return changed, true
}
