package history_test

import (
	"context"
	"testing"

	"github.com/Mogby/Nonogram/history"
)

func TestSolverRecorderAppendsSequentially(t *testing.T) {
	store := history.NewMemoryStore()
	defer store.Close()

	rec := history.NewSolverRecorder(store, "run-1")
	rec.RecordEvent("branch", map[string]any{"row": 0, "col": 1})
	rec.RecordEvent("solved", nil)

	if rec.LastError != nil {
		t.Fatalf("unexpected error: %v", rec.LastError)
	}

	events, err := store.Read(context.Background(), "run-1", 0)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Type != "branch" || events[1].Type != "solved" {
		t.Errorf("unexpected event types: %v, %v", events[0].Type, events[1].Type)
	}
}
