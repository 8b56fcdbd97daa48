package history

import (
	"context"
	"fmt"
)

// SolverRecorder adapts a Store into the solver package's Recorder
// interface, appending each reported event to a single run's stream.
// Append failures are swallowed into the LastError field rather than
// propagated, since a solver run must never fail because its trace
// couldn't be written.
type SolverRecorder struct {
	Store    Store
	StreamID string

	version   int
	LastError error
}

// NewSolverRecorder wraps store, recording every event under streamID
// starting from version -1 (a brand new stream).
func NewSolverRecorder(store Store, streamID string) *SolverRecorder {
	return &SolverRecorder{Store: store, StreamID: streamID, version: -1}
}

// RecordEvent appends one event to the wrapped stream.
func (r *SolverRecorder) RecordEvent(kind string, payload map[string]any) {
	event, err := NewEvent(r.StreamID, kind, payload)
	if err != nil {
		r.LastError = fmt.Errorf("history: encode event: %w", err)
		return
	}
	version, err := r.Store.Append(context.Background(), r.StreamID, r.version, []*Event{event})
	if err != nil {
		r.LastError = fmt.Errorf("history: append event: %w", err)
		return
	}
	r.version = version
}
