package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Mogby/Nonogram/results"
)

func summary(args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: nonogram summary <results.json>

Display a quick summary of a solve's results file.

Examples:
  nonogram summary heart.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("results file required")
	}

	res, err := results.ReadJSON(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("read results: %w", err)
	}

	fmt.Printf("Puzzle: %dx%d\n", res.Puzzle.Width, res.Puzzle.Height)
	fmt.Printf("Run: %s (%s)\n", res.Metadata.RunID, res.Metadata.Strategy)
	fmt.Printf("Status: %s\n", res.Metadata.Status)

	if res.Metadata.Error != "" {
		fmt.Printf("Error: %s\n", res.Metadata.Error)
		return nil
	}

	fmt.Printf("Compute time: %.4fs\n", res.Metadata.ComputeTime)

	if res.Solution != nil {
		fmt.Println("\nSolution:")
		for _, row := range res.Solution.Rows {
			fmt.Println(row)
		}
		fmt.Println("\nStats:")
		fmt.Printf("  propagation passes:    %d\n", res.Solution.Stats.PropagationPasses)
		fmt.Printf("  branch nodes:          %d\n", res.Solution.Stats.BranchNodes)
		fmt.Printf("  cells via propagation: %d\n", res.Solution.Stats.CellsForcedByPropagation)
		fmt.Printf("  cells via branching:   %d\n", res.Solution.Stats.CellsForcedByBranching)
	}

	return nil
}
