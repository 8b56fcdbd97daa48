package grid

// UpdateResult reports the outcome of a single call to UpdateLine.
type UpdateResult struct {
	// Feasible is false when the clue cannot be satisfied against the
	// line's current cells at all — the caller's branch has failed.
	Feasible bool
	// Changed counts the cells that moved from Unknown to a settled value.
	Changed int
	// Solved reports whether every block now has a unique position
	// (LFit[i] == RFit[i] for all i).
	Solved bool
}

// UpdateLine derives every forced cell from line's clue and current cells,
// mutating line in place. It never changes an already-settled cell (P4);
// every cell it sets holds that value in every valid completion of the line
// (P5); running it twice in a row on an unchanged line makes no further
// changes (P6).
//
// P6 is fast-pathed rather than merely guaranteed: line.fillMask caches the
// Filled pattern as of the end of the previous call, so a repeat call whose
// Filled cells haven't moved since (common across propagation passes, where
// most unsolved lines sit untouched while a handful of others get
// constrained) skips the fitter entirely instead of re-deriving the same
// placements — provided the cached LFit and RFit still fit the current
// cells, since a cell that became Empty leaves the mask unchanged.
func UpdateLine(line *Line) UpdateResult {
	fitHolds := func(p Placement) bool {
		end := 0
		for i, r := range line.Clue {
			if !noCellsEqual(line.Cells, end, p[i], Filled) || !noCellsEqual(line.Cells, p[i], p[i]+r, Empty) {
				return false
			}
			end = p[i] + r
		}
		return noCellsEqual(line.Cells, end, len(line.Cells), Filled)
	}
	if current := computeFillMask(line.Cells); line.fillMask.equal(current) &&
		line.LFit != nil && fitHolds(line.LFit) && fitHolds(line.RFit) {
		return UpdateResult{Feasible: true, Changed: 0, Solved: line.Solved}
	}

	if line.Clue.Empty() {
		return updateEmptyClue(line)
	}

	lfit, ok := FitLeft(line.Clue, line.Cells)
	if !ok {
		return UpdateResult{Feasible: false}
	}
	rfit, ok := FitRight(line.Clue, line.Cells)
	if !ok {
		panic("grid: fit-left succeeded but fit-right failed for the same line and clue")
	}

	changed := 0
	k := len(line.Clue)
	solved := true
	for i := 0; i < k; i++ {
		if lfit[i] != rfit[i] {
			solved = false
		}
	}

	// Intersection rule: cells covered by every valid placement must be Filled.
	for i := 0; i < k; i++ {
		coreStart, coreEnd := rfit[i], lfit[i]+line.Clue[i]
		for j := coreStart; j < coreEnd; j++ {
			if line.Cells[j] == Unknown {
				line.Cells[j] = Filled
				changed++
			}
		}
	}

	// Gap rule: cells no placement can ever cover must be Empty.
	changed += forceEmpty(line, 0, lfit[0])
	changed += forceEmpty(line, rfit[k-1]+line.Clue[k-1], len(line.Cells))
	for i := 0; i < k-1; i++ {
		changed += forceEmpty(line, rfit[i]+line.Clue[i], lfit[i+1])
	}

	line.LFit = lfit
	line.RFit = rfit
	line.Solved = solved
	line.refreshFillMask()

	return UpdateResult{Feasible: true, Changed: changed, Solved: solved}
}

// forceEmpty sets every Unknown cell in [from, to) to Empty and returns how
// many cells changed.
func forceEmpty(line *Line, from, to int) int {
	if from < 0 {
		from = 0
	}
	if to > len(line.Cells) {
		to = len(line.Cells)
	}
	changed := 0
	for j := from; j < to; j++ {
		if line.Cells[j] == Unknown {
			line.Cells[j] = Empty
			changed++
		}
	}
	return changed
}

func updateEmptyClue(line *Line) UpdateResult {
	for _, c := range line.Cells {
		if c == Filled {
			return UpdateResult{Feasible: false}
		}
	}

	changed := 0
	for i, c := range line.Cells {
		if c == Unknown {
			line.Cells[i] = Empty
			changed++
		}
	}
	line.LFit = Placement{}
	line.RFit = Placement{}
	line.Solved = true
	line.refreshFillMask()
	return UpdateResult{Feasible: true, Changed: changed, Solved: true}
}
