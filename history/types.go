// Package history records a solver run's trace as an append-only event
// stream, so a run can be replayed or audited after the fact.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrConcurrencyConflict is returned by Append when expectedVersion does not
// match the stream's actual current version.
var ErrConcurrencyConflict = errors.New("history: concurrency conflict")

// Event is one entry in a stream: a solver run's identity (StreamID) plus
// the kind of thing that happened (Type) and its JSON-encoded detail.
type Event struct {
	StreamID   string
	Version    int
	Type       string
	Payload    json.RawMessage
	RecordedAt time.Time
}

// NewEvent builds an Event for streamID, marshalling payload to JSON. The
// returned event's Version is unset; Append assigns it.
func NewEvent(streamID, eventType string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{StreamID: streamID, Type: eventType, Payload: data}, nil
}

// EventFilter narrows a ReadAll call. A zero-value filter matches everything.
type EventFilter struct {
	StreamID string
	Types    []string
}

func (f EventFilter) matches(e *Event) bool {
	if f.StreamID != "" && e.StreamID != f.StreamID {
		return false
	}
	if len(f.Types) == 0 {
		return true
	}
	for _, t := range f.Types {
		if t == e.Type {
			return true
		}
	}
	return false
}

// Store is an append-only event stream keyed by stream ID, with optimistic
// concurrency control on Append.
type Store interface {
	// Append adds events to streamID, failing with ErrConcurrencyConflict
	// if expectedVersion does not match the stream's current version
	// (-1 for a stream that does not exist yet). Returns the new version.
	Append(ctx context.Context, streamID string, expectedVersion int, events []*Event) (int, error)
	// Read returns every event in streamID from fromVersion onward.
	Read(ctx context.Context, streamID string, fromVersion int) ([]*Event, error)
	// ReadAll returns every event matching filter, across all streams.
	ReadAll(ctx context.Context, filter EventFilter) ([]*Event, error)
	// StreamVersion returns streamID's current version, or -1 if it does
	// not exist.
	StreamVersion(ctx context.Context, streamID string) (int, error)
	// DeleteStream removes every event in streamID.
	DeleteStream(ctx context.Context, streamID string) error
	Close() error
}
