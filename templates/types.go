// Package templates generates nonogram puzzles from parameterized shapes,
// rather than requiring every puzzle to be hand-authored as a text file.
package templates

import (
	"fmt"

	"github.com/Mogby/Nonogram/grid"
	"github.com/Mogby/Nonogram/puzzle"
)

// Template defines a parameterized puzzle generator.
type Template interface {
	Name() string
	Description() string
	Parameters() []Parameter
	Generate(params map[string]interface{}) (puzzle.Puzzle, error)
}

// Parameter defines a template parameter.
type Parameter struct {
	Name        string
	Description string
	Type        string // "int", "float", "string"
	Default     interface{}
	Required    bool
	Min         *float64 // For numeric types
	Max         *float64
}

// Registry holds all available templates.
var Registry = map[string]Template{
	"heart":        &HeartTemplate{},
	"checkerboard": &CheckerboardTemplate{},
	"diamond":      &DiamondTemplate{},
	"border":       &BorderTemplate{},
	"random":       &RandomTemplate{},
}

// Get returns a template by name.
func Get(name string) (Template, error) {
	t, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown template: %s", name)
	}
	return t, nil
}

// List returns all available template names.
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	return names
}

// fromPattern builds a Puzzle out of a width x height boolean grid, deriving
// every row's and column's clue from the pattern's runs of true cells.
func fromPattern(width, height int, filled [][]bool) puzzle.Puzzle {
	rowClues := make([]grid.Clue, height)
	for y := 0; y < height; y++ {
		rowClues[y] = runsOf(filled[y])
	}
	colClues := make([]grid.Clue, width)
	for x := 0; x < width; x++ {
		col := make([]bool, height)
		for y := 0; y < height; y++ {
			col[y] = filled[y][x]
		}
		colClues[x] = runsOf(col)
	}
	return puzzle.Puzzle{
		Width:       width,
		Height:      height,
		RowClues:    rowClues,
		ColumnClues: colClues,
	}
}

// runsOf converts a line of booleans into the ordered run-length clue a
// solver would be given for that line.
func runsOf(line []bool) grid.Clue {
	var clue grid.Clue
	run := 0
	for _, v := range line {
		if v {
			run++
			continue
		}
		if run > 0 {
			clue = append(clue, run)
			run = 0
		}
	}
	if run > 0 {
		clue = append(clue, run)
	}
	return clue
}
