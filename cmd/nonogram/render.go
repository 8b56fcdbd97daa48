package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Mogby/Nonogram/grid"
	"github.com/Mogby/Nonogram/puzzle"
	"github.com/Mogby/Nonogram/results"
	"github.com/Mogby/Nonogram/visualization"
)

func render(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	output := fs.String("output", "", "Output SVG file (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: nonogram render <results.json> --output <file.svg>

Render a solve's output grid as SVG, with row and column clues alongside.

Examples:
  nonogram solve heart.txt --output heart.json
  nonogram render heart.json --output heart.svg
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	// Options may also follow the positional argument, as in the examples.
	var positional []string
	for fs.NArg() > 0 {
		positional = append(positional, fs.Arg(0))
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return err
		}
	}
	if len(positional) < 1 {
		fs.Usage()
		return fmt.Errorf("results file required")
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("--output required")
	}

	res, err := results.ReadJSON(positional[0])
	if err != nil {
		return fmt.Errorf("read results: %w", err)
	}
	if res.Solution == nil {
		return fmt.Errorf("results file has no solution to render (status: %s)", res.Metadata.Status)
	}

	p := puzzle.Puzzle{
		Width:       res.Puzzle.Width,
		Height:      res.Puzzle.Height,
		RowClues:    intsToClue(res.Puzzle.RowClues),
		ColumnClues: intsToClue(res.Puzzle.ColumnClues),
	}
	g := p.NewGrid()
	for y, row := range res.Solution.Rows {
		for x, r := range row {
			switch r {
			case 'X':
				g.Rows[y].Cells[x] = grid.Filled
			case '.':
				g.Rows[y].Cells[x] = grid.Empty
			}
		}
	}

	if err := visualization.SaveSVG(p, g, *output); err != nil {
		return fmt.Errorf("render SVG: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", *output)
	return nil
}

func intsToClue(clues [][]int) []grid.Clue {
	out := make([]grid.Clue, len(clues))
	for i, c := range clues {
		out[i] = grid.Clue(c)
	}
	return out
}
