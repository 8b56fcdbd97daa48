package history

import (
	"encoding/json"
	"fmt"
)

// RunState summarizes a solver run's progress as reconstructed purely by
// replaying its recorded events — no access to the live solver is needed.
type RunState struct {
	BranchNodes int
	Status      string // "", "solved", "infeasible"
}

// NewRunProjection returns a Projection that rebuilds a RunState for runID
// by folding its branch/solved/infeasible events in order.
func NewRunProjection(runID string) Projection {
	proj := NewFoldState(runID, RunState{})
	proj.OnEvent("branch", func(s *RunState, e *Event) error {
		var payload struct {
			Node int `json:"node"`
		}
		if err := decodePayload(e, &payload); err != nil {
			return err
		}
		s.BranchNodes = payload.Node
		return nil
	})
	proj.OnEvent("solved", func(s *RunState, e *Event) error {
		s.Status = "solved"
		return nil
	})
	proj.OnEvent("infeasible", func(s *RunState, e *Event) error {
		s.Status = "infeasible"
		return nil
	})
	proj.OnEvent("propagation_infeasible", func(s *RunState, e *Event) error {
		s.Status = "infeasible"
		return nil
	})
	return proj
}

// RunFactory is a Factory producing RunState projections, for use with
// NewRepository.
func RunFactory(id string) Projection { return NewRunProjection(id) }

func decodePayload(e *Event, out any) error {
	if len(e.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Payload, out); err != nil {
		return fmt.Errorf("history: decode %s payload: %w", e.Type, err)
	}
	return nil
}
