package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/Mogby/Nonogram/history"
	"github.com/Mogby/Nonogram/puzzle"
	"github.com/Mogby/Nonogram/results"
	"github.com/Mogby/Nonogram/solver"
)

func solve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	output := fs.String("output", "", "Write a results JSON file here instead of printing the grid")
	quiet := fs.Bool("quiet", false, "Suppress the printed grid")
	bench := fs.Bool("bench", false, "Print solver statistics after solving")
	branch := fs.String("branch", "dfs", "Branching strategy: dfs or bestfirst")
	record := fs.String("record", "", "Record every propagation/branch event to this sqlite file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: nonogram solve <puzzle.txt> [options]

Solve a nonogram puzzle file.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  nonogram solve heart.txt
  nonogram solve heart.txt --branch bestfirst --bench
  nonogram solve heart.txt --output heart.json
  nonogram solve heart.txt --record run.db
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
		return fmt.Errorf("puzzle file required")
	}

	var strategy solver.Strategy
	switch *branch {
	case "dfs":
		strategy = solver.DFS
	case "bestfirst":
		strategy = solver.BestFirst
	default:
		return fmt.Errorf("unknown branch strategy: %s (want dfs or bestfirst)", *branch)
	}

	p, err := puzzle.ParseFile(positional[0])
	if err != nil {
		return fmt.Errorf("parse puzzle: %w", err)
	}

	problem := solver.NewProblem(p)

	var store history.Store
	if *record != "" {
		store, err = history.NewSQLiteStore(*record)
		if err != nil {
			return fmt.Errorf("open record store: %w", err)
		}
		defer store.Close()
		problem.Recorder = history.NewSolverRecorder(store, problem.RunID.String())
	}

	g, stats, err := solver.Solve(problem, strategy)
	builder := results.NewBuilder().WithPuzzle(p).WithRun(problem.RunID.String(), strategy)
	if err != nil {
		builder.WithError(err)
		if *output == "" {
			return err
		}
	} else {
		builder.WithSolution(g, stats)
	}
	res := builder.Build()

	if *output != "" {
		if err := results.WriteJSON(res, *output); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote results to %s\n", *output)
	}

	if err != nil {
		return err
	}

	if !*quiet && *output == "" {
		fmt.Print(puzzle.GridString(g))
	}

	if *bench {
		fmt.Fprintf(os.Stderr, "\nsolved in %s ns\n", humanize.Comma(stats.Elapsed.Nanoseconds()))
		fmt.Fprintf(os.Stderr, "propagation passes:    %s\n", humanize.Comma(int64(stats.PropagationPasses)))
		fmt.Fprintf(os.Stderr, "branch nodes:          %s\n", humanize.Comma(int64(stats.BranchNodes)))
		fmt.Fprintf(os.Stderr, "cells via propagation: %s\n", humanize.Comma(int64(stats.CellsForcedByPropagation)))
		fmt.Fprintf(os.Stderr, "cells via branching:   %s\n", humanize.Comma(int64(stats.CellsForcedByBranching)))
	}

	if !g.IsFinal {
		fmt.Fprintln(os.Stderr, "Search exhausted without completing the grid")
		os.Exit(2)
	}

	return nil
}
