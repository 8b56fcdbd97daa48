package visualization_test

import (
	"strings"
	"testing"

	"github.com/Mogby/Nonogram/grid"
	"github.com/Mogby/Nonogram/puzzle"
	"github.com/Mogby/Nonogram/visualization"
)

func TestRenderSVGProducesWellFormedDocument(t *testing.T) {
	p := puzzle.Puzzle{
		Width:       3,
		Height:      1,
		RowClues:    []grid.Clue{{1, 1}},
		ColumnClues: []grid.Clue{{1}, {}, {1}},
	}
	g := p.NewGrid()
	g.Rows[0].Cells[0] = grid.Filled
	g.Rows[0].Cells[1] = grid.Empty
	g.Rows[0].Cells[2] = grid.Filled

	svg, err := visualization.RenderSVG(p, g)
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !strings.HasPrefix(svg, "<svg") {
		t.Errorf("expected document to start with <svg, got: %s", svg[:20])
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("expected document to end with </svg>")
	}
	if strings.Count(svg, `fill="black"`) != 2 {
		t.Errorf("expected 2 filled cell rects, got svg: %s", svg)
	}
}

func TestRenderSVGRejectsMismatchedDimensions(t *testing.T) {
	p := puzzle.Puzzle{Width: 2, Height: 2, RowClues: []grid.Clue{{1}, {1}}, ColumnClues: []grid.Clue{{1}, {1}}}
	other := puzzle.Puzzle{Width: 3, Height: 3, RowClues: []grid.Clue{{}, {}, {}}, ColumnClues: []grid.Clue{{}, {}, {}}}
	g := other.NewGrid()

	if _, err := visualization.RenderSVG(p, g); err == nil {
		t.Error("expected an error for mismatched grid/puzzle dimensions")
	}
}
