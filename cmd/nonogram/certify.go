package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Mogby/Nonogram/grid"
	"github.com/Mogby/Nonogram/results"
	"github.com/Mogby/Nonogram/zkcert"
)

// certBundle is the on-disk format for a solve's full set of line
// certificates: one Groth16 proof per row and per column.
type certBundle struct {
	Rows    []*zkcert.Certificate `json:"rows"`
	Columns []*zkcert.Certificate `json:"columns"`
}

func certify(args []string) error {
	fs := flag.NewFlagSet("certify", flag.ExitOnError)
	output := fs.String("output", "", "Write the certificate bundle here (required unless --verify)")
	verify := fs.String("verify", "", "Verify a previously written certificate bundle instead of producing one")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: nonogram certify <results.json> --output <certs.json>
       nonogram certify --verify <certs.json>

Produce (or check) zero-knowledge proofs that a solved puzzle's rows and
columns satisfy their clues, without revealing the solved cells.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	// Options may also follow the positional argument, as in the usage line.
	var positional []string
	for fs.NArg() > 0 {
		positional = append(positional, fs.Arg(0))
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return err
		}
	}

	if *verify != "" {
		return verifyBundle(*verify)
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
		return fmt.Errorf("results file has no solution to certify (status: %s)", res.Metadata.Status)
	}

	width, height := res.Puzzle.Width, res.Puzzle.Height
	cells := make([][]grid.Cell, height)
	for y, row := range res.Solution.Rows {
		cells[y] = make([]grid.Cell, width)
		for x, r := range row {
			if r == 'X' {
				cells[y][x] = grid.Filled
			} else {
				cells[y][x] = grid.Empty
			}
		}
	}

	c := zkcert.NewCertifier()
	bundle := certBundle{}

	for y, clue := range intsToClue(res.Puzzle.RowClues) {
		cert, err := zkcert.Certify(c, clue, cells[y])
		if err != nil {
			return fmt.Errorf("certify row %d: %w", y, err)
		}
		bundle.Rows = append(bundle.Rows, cert)
	}

	for x, clue := range intsToClue(res.Puzzle.ColumnClues) {
		col := make([]grid.Cell, height)
		for y := 0; y < height; y++ {
			col[y] = cells[y][x]
		}
		cert, err := zkcert.Certify(c, clue, col)
		if err != nil {
			return fmt.Errorf("certify column %d: %w", x, err)
		}
		bundle.Columns = append(bundle.Columns, cert)
	}

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal bundle: %w", err)
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		return fmt.Errorf("write bundle: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Certified %d rows and %d columns to %s\n", len(bundle.Rows), len(bundle.Columns), *output)
	return nil
}

func verifyBundle(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read bundle: %w", err)
	}
	var bundle certBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return fmt.Errorf("unmarshal bundle: %w", err)
	}

	c := zkcert.NewCertifier()
	for i, cert := range bundle.Rows {
		if err := zkcert.Verify(c, cert); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	for i, cert := range bundle.Columns {
		if err := zkcert.Verify(c, cert); err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
	}

	fmt.Printf("All %d rows and %d columns verified\n", len(bundle.Rows), len(bundle.Columns))
	return nil
}
