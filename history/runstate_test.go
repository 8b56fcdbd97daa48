package history_test

import (
	"context"
	"testing"

	"github.com/Mogby/Nonogram/history"
)

func TestRunProjectionFoldsBranchAndSolvedEvents(t *testing.T) {
	store := history.NewMemoryStore()
	ctx := context.Background()

	branch1, _ := history.NewEvent("run-1", "branch", map[string]int{"node": 3})
	branch2, _ := history.NewEvent("run-1", "branch", map[string]int{"node": 7})
	solved, _ := history.NewEvent("run-1", "solved", nil)

	if _, err := store.Append(ctx, "run-1", -1, []*history.Event{branch1, branch2, solved}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	repo := history.NewRepository(store, history.RunFactory)
	proj, err := repo.Load(ctx, "run-1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	state := proj.State().(history.RunState)
	if state.BranchNodes != 7 {
		t.Errorf("expected branch nodes 7, got %d", state.BranchNodes)
	}
	if state.Status != "solved" {
		t.Errorf("expected status solved, got %q", state.Status)
	}
	if proj.Version() != 2 {
		t.Errorf("expected version 2, got %d", proj.Version())
	}
}

func TestRunProjectionFoldsInfeasible(t *testing.T) {
	store := history.NewMemoryStore()
	ctx := context.Background()

	infeasible, _ := history.NewEvent("run-2", "propagation_infeasible", nil)
	if _, err := store.Append(ctx, "run-2", -1, []*history.Event{infeasible}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	repo := history.NewRepository(store, history.RunFactory)
	proj, err := repo.Load(ctx, "run-2")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	state := proj.State().(history.RunState)
	if state.Status != "infeasible" {
		t.Errorf("expected status infeasible, got %q", state.Status)
	}
}

func TestRunProjectionUnknownEventTypeFails(t *testing.T) {
	store := history.NewMemoryStore()
	ctx := context.Background()

	weird, _ := history.NewEvent("run-3", "mystery", nil)
	if _, err := store.Append(ctx, "run-3", -1, []*history.Event{weird}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	repo := history.NewRepository(store, history.RunFactory)
	if _, err := repo.Load(ctx, "run-3"); err == nil {
		t.Error("expected an error folding an unregistered event type")
	}
}

func TestRunProjectionEmptyStreamIsFreshState(t *testing.T) {
	store := history.NewMemoryStore()

	repo := history.NewRepository(store, history.RunFactory)
	proj, err := repo.Load(context.Background(), "run-never-recorded")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	state := proj.State().(history.RunState)
	if state.Status != "" {
		t.Errorf("expected empty status for a never-recorded run, got %q", state.Status)
	}
	if proj.Version() != -1 {
		t.Errorf("expected version -1 for an empty stream, got %d", proj.Version())
	}
}
