package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Mogby/Nonogram/history"
)

func replay(args []string) error {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	typeFilter := fs.String("type", "", "Filter by event type (branch, solved, ...)")
	streamID := fs.String("run", "", "Filter to a single run ID (stream)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: nonogram replay <run.db> [options]

Display the recorded event timeline from a --record sqlite store.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  nonogram replay run.db
  nonogram replay run.db --run 5e1f... --type branch
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
		return fmt.Errorf("sqlite database required")
	}

	store, err := history.NewSQLiteStore(positional[0])
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	filter := history.EventFilter{StreamID: *streamID}
	if *typeFilter != "" {
		filter.Types = []string{*typeFilter}
	}

	events, err := store.ReadAll(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("read events: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("No events recorded")
		return nil
	}

	fmt.Printf("=== Event Timeline (%d events) ===\n\n", len(events))
	for _, e := range events {
		fmt.Printf("v=%-4d  stream=%-38s  %-10s  %s\n", e.Version, e.StreamID, e.Type, formatPayload(e.Payload))
	}

	if *streamID != "" {
		if err := printRunState(store, *streamID); err != nil {
			return err
		}
	}
	return nil
}

// printRunState rebuilds a run's terminal state purely by replaying its
// recorded events, demonstrating that the timeline is sufficient to recover
// it without the live solver.
func printRunState(store history.Store, runID string) error {
	repo := history.NewRepository(store, history.RunFactory)
	proj, err := repo.Load(context.Background(), runID)
	if err != nil {
		return fmt.Errorf("replay run state: %w", err)
	}
	state := proj.State().(history.RunState)
	fmt.Printf("\n=== Run State (replayed) ===\n\n")
	fmt.Printf("branch nodes: %d\n", state.BranchNodes)
	fmt.Printf("status:       %s\n", state.Status)
	return nil
}

func formatPayload(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return string(raw)
	}
	out := ""
	for k, v := range payload {
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s=%v", k, v)
	}
	return out
}
