// Package visualization renders a solved or partially-solved nonogram grid
// as SVG: a cell for every Filled/Empty/Unknown square plus the row and
// column clues along the grid's edges.
package visualization

import (
	"bytes"
	"fmt"
	"os"

	"github.com/Mogby/Nonogram/grid"
	"github.com/Mogby/Nonogram/puzzle"
)

const (
	cellSize   = 24.0
	clueMargin = 4 // widest clue column/row, in cells, reserved for clue text
)

// RenderSVG draws g (against p's clues, for the margin labels) as an SVG
// document and returns it as a string.
func RenderSVG(p puzzle.Puzzle, g *grid.Grid) (string, error) {
	if g.Width != p.Width || g.Height != p.Height {
		return "", fmt.Errorf("visualization: grid %dx%d does not match puzzle %dx%d", g.Width, g.Height, p.Width, p.Height)
	}

	marginCols := maxClueLen(p.RowClues)
	marginRows := maxClueLen(p.ColumnClues)
	if marginCols > clueMargin {
		marginCols = clueMargin
	}
	if marginRows > clueMargin {
		marginRows = clueMargin
	}

	width := (float64(marginCols) + float64(p.Width)) * cellSize
	height := (float64(marginRows) + float64(p.Height)) * cellSize

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n", width, height, width, height)
	fmt.Fprintf(&buf, `<rect x="0" y="0" width="%g" height="%g" fill="white"/>`+"\n", width, height)

	ox, oy := float64(marginCols)*cellSize, float64(marginRows)*cellSize
	drawColumnClues(&buf, p.ColumnClues, ox, oy, marginRows)
	drawRowClues(&buf, p.RowClues, ox, oy, marginCols)
	drawCells(&buf, g, ox, oy)
	drawGridLines(&buf, p.Width, p.Height, ox, oy)

	buf.WriteString("</svg>\n")
	return buf.String(), nil
}

// SaveSVG renders the grid and writes it to filename.
func SaveSVG(p puzzle.Puzzle, g *grid.Grid, filename string) error {
	svg, err := RenderSVG(p, g)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, []byte(svg), 0644)
}

func maxClueLen(clues []grid.Clue) int {
	max := 1
	for _, c := range clues {
		if len(c) > max {
			max = len(c)
		}
	}
	return max
}

func drawCells(buf *bytes.Buffer, g *grid.Grid, ox, oy float64) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cx := ox + float64(x)*cellSize
			cy := oy + float64(y)*cellSize
			switch g.Cell(y, x) {
			case grid.Filled:
				fmt.Fprintf(buf, `<rect x="%g" y="%g" width="%g" height="%g" fill="black"/>`+"\n", cx, cy, cellSize, cellSize)
			case grid.Empty:
				// leave blank; an unsolved grid's Unknown cells and an
				// Empty cell would otherwise look identical
			default:
				fmt.Fprintf(buf, `<rect x="%g" y="%g" width="%g" height="%g" fill="#eeeeee"/>`+"\n", cx, cy, cellSize, cellSize)
			}
		}
	}
}

func drawGridLines(buf *bytes.Buffer, width, height int, ox, oy float64) {
	gw, gh := float64(width)*cellSize, float64(height)*cellSize
	for x := 0; x <= width; x++ {
		strokeWidth := 1.0
		if x%5 == 0 {
			strokeWidth = 2.0
		}
		lx := ox + float64(x)*cellSize
		fmt.Fprintf(buf, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="black" stroke-width="%g"/>`+"\n", lx, oy, lx, oy+gh, strokeWidth)
	}
	for y := 0; y <= height; y++ {
		strokeWidth := 1.0
		if y%5 == 0 {
			strokeWidth = 2.0
		}
		ly := oy + float64(y)*cellSize
		fmt.Fprintf(buf, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="black" stroke-width="%g"/>`+"\n", ox, ly, ox+gw, ly, strokeWidth)
	}
}

func drawRowClues(buf *bytes.Buffer, clues []grid.Clue, ox, oy float64, marginCols int) {
	for y, clue := range clues {
		text := clueText(clue, marginCols)
		tx := ox - 6
		ty := oy + float64(y)*cellSize + cellSize*0.7
		fmt.Fprintf(buf, `<text x="%g" y="%g" font-size="12" text-anchor="end" font-family="monospace">%s</text>`+"\n", tx, ty, escapeXML(text))
	}
}

func drawColumnClues(buf *bytes.Buffer, clues []grid.Clue, ox, oy float64, marginRows int) {
	for x, clue := range clues {
		runs := clueRuns(clue, marginRows)
		for i, run := range runs {
			tx := ox + float64(x)*cellSize + cellSize*0.5
			ty := oy - float64(marginRows-i)*cellSize + cellSize*0.7
			fmt.Fprintf(buf, `<text x="%g" y="%g" font-size="12" text-anchor="middle" font-family="monospace">%s</text>`+"\n", tx, ty, escapeXML(run))
		}
	}
}

// clueText renders a row clue as a single space-separated line, which fits
// the horizontal margin used for row labels.
func clueText(clue grid.Clue, margin int) string {
	if len(clue) == 0 {
		return "0"
	}
	out := ""
	for i, r := range clue {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%d", r)
	}
	return out
}

// clueRuns splits a column clue into one string per run, right-aligned
// against the bottom of the margin the way printed nonograms stack column
// clues vertically.
func clueRuns(clue grid.Clue, margin int) []string {
	runs := make([]string, len(clue))
	for i, r := range clue {
		runs[i] = fmt.Sprintf("%d", r)
	}
	if len(runs) == 0 {
		runs = []string{"0"}
	}
	if len(runs) > margin {
		runs = runs[len(runs)-margin:]
	}
	return runs
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
