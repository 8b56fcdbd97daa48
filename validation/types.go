// Package validation checks a puzzle's structural well-formedness before it
// reaches the solver, and re-checks a solver's output against the
// properties the grid model is supposed to guarantee.
package validation

import (
	"fmt"

	"github.com/Mogby/Nonogram/grid"
	"github.com/Mogby/Nonogram/puzzle"
)

// Result collects every issue found validating a puzzle.
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
	Summary  Summary `json:"summary"`
}

// Issue describes a single structural problem, located by row/column index
// when one applies.
type Issue struct {
	Severity   string `json:"severity"` // "error", "warning"
	Category   string `json:"category"` // "dimensions", "clue", "capacity"
	Message    string `json:"message"`
	Row        *int   `json:"row,omitempty"`
	Column     *int   `json:"column,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Summary gives a quick overview of a validation run.
type Summary struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Validator accumulates Issues against a single puzzle.
type Validator struct {
	p      puzzle.Puzzle
	result *Result
}

// NewValidator prepares a validator for p.
func NewValidator(p puzzle.Puzzle) *Validator {
	return &Validator{
		p: p,
		result: &Result{
			Valid:   true,
			Summary: Summary{Width: p.Width, Height: p.Height},
		},
	}
}

// Validate runs every structural check and returns the accumulated Result.
func (v *Validator) Validate() *Result {
	v.checkDimensions()
	v.checkClueCounts()
	v.checkClueFit()

	v.result.Valid = len(v.result.Errors) == 0
	v.result.Summary.Errors = len(v.result.Errors)
	v.result.Summary.Warnings = len(v.result.Warnings)
	return v.result
}

func (v *Validator) addError(category, message string, row, col *int, suggestion string) {
	v.result.Errors = append(v.result.Errors, Issue{
		Severity: "error", Category: category, Message: message,
		Row: row, Column: col, Suggestion: suggestion,
	})
}

func (v *Validator) addWarning(category, message string, row, col *int, suggestion string) {
	v.result.Warnings = append(v.result.Warnings, Issue{
		Severity: "warning", Category: category, Message: message,
		Row: row, Column: col, Suggestion: suggestion,
	})
}

func (v *Validator) checkDimensions() {
	if v.p.Width <= 0 {
		v.addError("dimensions", fmt.Sprintf("width must be positive, got %d", v.p.Width), nil, nil, "set a positive width")
	}
	if v.p.Height <= 0 {
		v.addError("dimensions", fmt.Sprintf("height must be positive, got %d", v.p.Height), nil, nil, "set a positive height")
	}
}

func (v *Validator) checkClueCounts() {
	if len(v.p.RowClues) != v.p.Height {
		v.addError("clue", fmt.Sprintf("expected %d row clues, found %d", v.p.Height, len(v.p.RowClues)), nil, nil, "")
	}
	if len(v.p.ColumnClues) != v.p.Width {
		v.addError("clue", fmt.Sprintf("expected %d column clues, found %d", v.p.Width, len(v.p.ColumnClues)), nil, nil, "")
	}
}

// checkClueFit verifies every clue's minimum length (sum of runs plus one
// separator per gap) does not exceed the line it belongs to, and that every
// run length is positive.
func (v *Validator) checkClueFit() {
	for i, clue := range v.p.RowClues {
		i := i
		v.checkOneClue("row", i, clue, v.p.Width)
	}
	for j, clue := range v.p.ColumnClues {
		j := j
		v.checkOneClue("column", j, clue, v.p.Height)
	}
}

func (v *Validator) checkOneClue(axis string, index int, clue grid.Clue, length int) {
	row, col := axisIndexPair(axis, index)
	for _, run := range clue {
		if run <= 0 {
			v.addError("clue", fmt.Sprintf("%s %d has a non-positive run length %d", axis, index, run), row, col, "")
			return
		}
	}
	if clue.MinLength() > length {
		v.addError("clue", fmt.Sprintf("%s %d clue %v needs at least %d cells, line has %d", axis, index, clue, clue.MinLength(), length),
			row, col, "shorten the clue or widen the line")
	}
}

func axisIndexPair(axis string, index int) (row, col *int) {
	if axis == "row" {
		return intPtr(index), nil
	}
	return nil, intPtr(index)
}

func intPtr(n int) *int { return &n }
