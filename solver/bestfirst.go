package solver

import (
	"container/heap"

	"github.com/Mogby/Nonogram/grid"
)

// bestFirstBoundedPasses caps how many propagation passes a best-first child
// runs before being scored and pushed back onto the queue, trading
// precision for the ability to compare many partial branches cheaply.
const bestFirstBoundedPasses = 2

type bfNode struct {
	g            *grid.Grid
	feasible     bool
	solvedBefore int
	changedLast  int
}

// bfQueue orders nodes: infeasible first (prune them immediately), then by
// most cells solved before the last propagation step (best progress), then
// by most cells changed in that last step (most informative).
type bfQueue []*bfNode

func (q bfQueue) Len() int { return len(q) }

func (q bfQueue) Less(a, b int) bool {
	na, nb := q[a], q[b]
	if na.feasible != nb.feasible {
		return !na.feasible
	}
	if na.solvedBefore != nb.solvedBefore {
		return na.solvedBefore > nb.solvedBefore
	}
	return na.changedLast > nb.changedLast
}

func (q bfQueue) Swap(a, b int) { q[a], q[b] = q[b], q[a] }

func (q *bfQueue) Push(x any) { *q = append(*q, x.(*bfNode)) }

func (q *bfQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// solveBestFirst implements the best-first branching variant: each expansion
// generates the two children (FILLED, EMPTY) of the first UNKNOWN cell in
// scan order only, each propagated a bounded number of passes, and the
// queue is popped until a final solution appears or it empties.
func solveBestFirst(p *Problem, stats *Stats) *grid.Grid {
	q := &bfQueue{}
	heap.Init(q)
	heap.Push(q, &bfNode{g: p.Grid, feasible: true})

	for q.Len() > 0 {
		node := heap.Pop(q).(*bfNode)
		if !node.feasible {
			continue
		}
		if node.g.IsFinal {
			return node.g
		}

		i, j, ok := node.g.FirstUnknown()
		if !ok {
			return node.g
		}
		stats.BranchNodes++
		p.recorder().RecordEvent("branch", map[string]any{
			"row": i, "col": j, "node": stats.BranchNodes,
		})

		for _, v := range []grid.Cell{grid.Filled, grid.Empty} {
			child := node.g.Clone()
			child.SetCell(i, j, v)
			stats.CellsForcedByBranching++

			solvedBefore := child.SettledCount()
			changed := boundedPropagate(child, bestFirstBoundedPasses, stats)
			heap.Push(q, &bfNode{
				g:            child,
				feasible:     changed >= 0,
				solvedBefore: solvedBefore,
				changedLast:  changedOrZero(changed),
			})
		}
	}
	return nil
}

func changedOrZero(changed int) int {
	if changed < 0 {
		return 0
	}
	return changed
}

// boundedPropagate runs at most maxPasses propagation passes over g,
// returning the change count from the last pass run, or -1 if any pass
// proved the branch infeasible.
func boundedPropagate(g *grid.Grid, maxPasses int, stats *Stats) int {
	last := 0
	for pass := 0; pass < maxPasses; pass++ {
		changed, feasible := propagatePass(g)
		stats.PropagationPasses++
		stats.CellsForcedByPropagation += changed
		if !feasible {
			return -1
		}
		last = changed
		if changed == 0 {
			break
		}
	}
	return last
}
