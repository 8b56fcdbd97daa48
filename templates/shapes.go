package templates

import (
	"fmt"

	"github.com/Mogby/Nonogram/puzzle"
)

// HeartTemplate generates a symmetric heart silhouette.
type HeartTemplate struct{}

func (t *HeartTemplate) Name() string        { return "heart" }
func (t *HeartTemplate) Description() string { return "Symmetric heart silhouette" }

func (t *HeartTemplate) Parameters() []Parameter {
	return []Parameter{
		{Name: "size", Description: "Grid width and height (even, >= 6)", Type: "int", Default: 10, Required: false},
	}
}

func (t *HeartTemplate) Generate(params map[string]interface{}) (puzzle.Puzzle, error) {
	size := getIntParam(params, "size", 10)
	if size < 6 || size%2 != 0 {
		return puzzle.Puzzle{}, fmt.Errorf("size must be even and >= 6, got %d", size)
	}

	filled := make([][]bool, size)
	for y := range filled {
		filled[y] = make([]bool, size)
	}

	half := size / 2
	radius := half / 2
	lobeCenterY := radius

	for cx, cy := range map[int]int{radius - 1: lobeCenterY, half + radius - 1: lobeCenterY} {
		fillCircle(filled, cx, cy, radius)
	}

	// triangular lower half, tapering from the full width to a point.
	for row := lobeCenterY; row < size; row++ {
		progress := row - lobeCenterY
		inset := progress
		for x := inset; x < size-inset; x++ {
			filled[row][x] = true
		}
	}

	return fromPattern(size, size, filled), nil
}

func fillCircle(filled [][]bool, cx, cy, r int) {
	size := len(filled)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				filled[y][x] = true
			}
		}
	}
}

// CheckerboardTemplate generates an alternating-cell checkerboard.
type CheckerboardTemplate struct{}

func (t *CheckerboardTemplate) Name() string        { return "checkerboard" }
func (t *CheckerboardTemplate) Description() string { return "Alternating checkerboard pattern" }

func (t *CheckerboardTemplate) Parameters() []Parameter {
	return []Parameter{
		{Name: "width", Description: "Grid width", Type: "int", Default: 8, Required: false},
		{Name: "height", Description: "Grid height", Type: "int", Default: 8, Required: false},
	}
}

func (t *CheckerboardTemplate) Generate(params map[string]interface{}) (puzzle.Puzzle, error) {
	width := getIntParam(params, "width", 8)
	height := getIntParam(params, "height", 8)
	if width <= 0 || height <= 0 {
		return puzzle.Puzzle{}, fmt.Errorf("width and height must be positive")
	}

	filled := make([][]bool, height)
	for y := range filled {
		filled[y] = make([]bool, width)
		for x := range filled[y] {
			filled[y][x] = (x+y)%2 == 0
		}
	}

	return fromPattern(width, height, filled), nil
}

// DiamondTemplate generates a filled diamond inscribed in the grid.
type DiamondTemplate struct{}

func (t *DiamondTemplate) Name() string        { return "diamond" }
func (t *DiamondTemplate) Description() string { return "Diamond inscribed in a square grid" }

func (t *DiamondTemplate) Parameters() []Parameter {
	return []Parameter{
		{Name: "size", Description: "Grid width and height (odd, >= 5)", Type: "int", Default: 9, Required: false},
	}
}

func (t *DiamondTemplate) Generate(params map[string]interface{}) (puzzle.Puzzle, error) {
	size := getIntParam(params, "size", 9)
	if size < 5 || size%2 == 0 {
		return puzzle.Puzzle{}, fmt.Errorf("size must be odd and >= 5, got %d", size)
	}

	center := size / 2
	filled := make([][]bool, size)
	for y := 0; y < size; y++ {
		filled[y] = make([]bool, size)
		radius := center - abs(y-center)
		for x := center - radius; x <= center+radius; x++ {
			filled[y][x] = true
		}
	}

	return fromPattern(size, size, filled), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// BorderTemplate generates a hollow rectangular frame.
type BorderTemplate struct{}

func (t *BorderTemplate) Name() string        { return "border" }
func (t *BorderTemplate) Description() string { return "Hollow rectangular frame" }

func (t *BorderTemplate) Parameters() []Parameter {
	return []Parameter{
		{Name: "width", Description: "Grid width (>= 3)", Type: "int", Default: 10, Required: false},
		{Name: "height", Description: "Grid height (>= 3)", Type: "int", Default: 10, Required: false},
		{Name: "thickness", Description: "Frame thickness", Type: "int", Default: 1, Required: false},
	}
}

func (t *BorderTemplate) Generate(params map[string]interface{}) (puzzle.Puzzle, error) {
	width := getIntParam(params, "width", 10)
	height := getIntParam(params, "height", 10)
	thickness := getIntParam(params, "thickness", 1)
	if width < 3 || height < 3 {
		return puzzle.Puzzle{}, fmt.Errorf("width and height must be >= 3")
	}
	if thickness < 1 || thickness*2 >= width || thickness*2 >= height {
		return puzzle.Puzzle{}, fmt.Errorf("thickness %d too large for a %dx%d frame", thickness, width, height)
	}

	filled := make([][]bool, height)
	for y := range filled {
		filled[y] = make([]bool, width)
		for x := range filled[y] {
			onBorder := y < thickness || y >= height-thickness || x < thickness || x >= width-thickness
			filled[y][x] = onBorder
		}
	}

	return fromPattern(width, height, filled), nil
}
