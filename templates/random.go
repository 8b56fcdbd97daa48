package templates

import (
	"fmt"
	"math/rand"

	"github.com/Mogby/Nonogram/puzzle"
)

// RandomTemplate generates a puzzle from an independently-filled random
// pattern. Density controls the fraction of Filled cells; seed makes the
// pattern reproducible.
type RandomTemplate struct{}

func (t *RandomTemplate) Name() string        { return "random" }
func (t *RandomTemplate) Description() string { return "Randomly filled pattern" }

func (t *RandomTemplate) Parameters() []Parameter {
	return []Parameter{
		{Name: "width", Description: "Grid width", Type: "int", Default: 10, Required: false},
		{Name: "height", Description: "Grid height", Type: "int", Default: 10, Required: false},
		{Name: "density", Description: "Fraction of cells filled, 0 to 1", Type: "float", Default: 0.45, Required: false},
		{Name: "seed", Description: "Random seed", Type: "int", Default: 1, Required: false},
	}
}

func (t *RandomTemplate) Generate(params map[string]interface{}) (puzzle.Puzzle, error) {
	width := getIntParam(params, "width", 10)
	height := getIntParam(params, "height", 10)
	density := getFloatParam(params, "density", 0.45)
	seed := getIntParam(params, "seed", 1)

	if width <= 0 || height <= 0 {
		return puzzle.Puzzle{}, fmt.Errorf("width and height must be positive")
	}
	if density <= 0 || density >= 1 {
		return puzzle.Puzzle{}, fmt.Errorf("density must be between 0 and 1, got %f", density)
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	filled := make([][]bool, height)
	for y := range filled {
		filled[y] = make([]bool, width)
		for x := range filled[y] {
			filled[y][x] = rng.Float64() < density
		}
	}

	return fromPattern(width, height, filled), nil
}

// getIntParam reads an int or float64-typed parameter, falling back to
// defaultVal when absent or of an unexpected type. map[string]interface{}
// parameters typically arrive decoded from JSON, where every number decodes
// as float64, so both forms are accepted.
func getIntParam(params map[string]interface{}, name string, defaultVal int) int {
	if val, ok := params[name]; ok {
		switch v := val.(type) {
		case int:
			return v
		case float64:
			return int(v)
		}
	}
	return defaultVal
}

func getFloatParam(params map[string]interface{}, name string, defaultVal float64) float64 {
	if val, ok := params[name]; ok {
		switch v := val.(type) {
		case float64:
			return v
		case int:
			return float64(v)
		}
	}
	return defaultVal
}
