package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Mogby/Nonogram/puzzle"
	"github.com/Mogby/Nonogram/validation"
)

func validate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	outputJSON := fs.Bool("json", false, "Output results as JSON")
	outputFile := fs.String("output", "", "Write JSON results to file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: nonogram validate <puzzle.txt> [options]

Validate a puzzle file's structure.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Checks performed:
  - Positive, non-zero dimensions
  - Row/column clue counts match the declared dimensions
  - Every clue's minimum length fits within its line

Examples:
  nonogram validate heart.txt
  nonogram validate heart.txt --json --output report.json
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

	p, err := puzzle.ParseFile(positional[0])
	if err != nil {
		return fmt.Errorf("parse puzzle: %w", err)
	}

	result := validation.NewValidator(p).Validate()

	if *outputJSON || *outputFile != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		if *outputFile != "" {
			if err := os.WriteFile(*outputFile, data, 0644); err != nil {
				return fmt.Errorf("write file: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Validation results written to %s\n", *outputFile)
		} else {
			fmt.Println(string(data))
		}
	} else {
		printValidationResult(result)
	}

	if !result.Valid {
		os.Exit(1)
	}
	return nil
}

func printValidationResult(result *validation.Result) {
	fmt.Println("=== Puzzle Validation ===")
	fmt.Printf("Size: %dx%d\n\n", result.Summary.Width, result.Summary.Height)

	printIssues := func(label string, issues []validation.Issue) {
		if len(issues) == 0 {
			return
		}
		fmt.Printf("%s (%d):\n", label, len(issues))
		for _, issue := range issues {
			fmt.Printf("  [%s] %s\n", issue.Category, issue.Message)
			if issue.Row != nil {
				fmt.Printf("    row: %d\n", *issue.Row)
			}
			if issue.Column != nil {
				fmt.Printf("    column: %d\n", *issue.Column)
			}
			if issue.Suggestion != "" {
				fmt.Printf("    suggestion: %s\n", issue.Suggestion)
			}
		}
		fmt.Println()
	}
	printIssues("Errors", result.Errors)
	printIssues("Warnings", result.Warnings)

	fmt.Println("───────────────────────────────────")
	if result.Valid {
		fmt.Println("Validation PASSED")
	} else {
		fmt.Printf("Validation FAILED: %d error(s)\n", len(result.Errors))
	}
}
