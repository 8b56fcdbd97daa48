package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "solve":
		if err := solve(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "create":
		if err := create(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := validate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "render":
		if err := render(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "replay":
		if err := replay(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "summary":
		if err := summary(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "certify":
		if err := certify(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("nonogram version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`nonogram - nonogram (picross) puzzle solver

Usage:
  nonogram <command> [options]

Commands:
  solve      Solve a puzzle file and print or save the result
  create     Create a puzzle from a template
  validate   Validate a puzzle file's structure
  render     Render a solved grid as SVG
  replay     Show the recorded event timeline of a solve
  summary    Display a quick summary of a results file
  certify    Produce or check a zero-knowledge line certificate
  help       Show this help message
  version    Show version information

Examples:
  # Solve a puzzle and print the grid
  nonogram solve heart.txt

  # Solve, recording every branch/propagation event to sqlite
  nonogram solve heart.txt --record run.db --branch bestfirst

  # Generate a puzzle from a template
  nonogram create --template heart --params "size=12" --output heart.txt

  # Validate a puzzle file
  nonogram validate heart.txt

  # Render a solve's output grid to SVG
  nonogram solve heart.txt --output heart.json
  nonogram render heart.json --output heart.svg

For command-specific help, run:
  nonogram <command> --help`)
}
