package history

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store, useful for tests and other callers
// that don't need a durable trace (`nonogram solve --record` always writes
// to a SQLiteStore).
type MemoryStore struct {
	mu      sync.Mutex
	streams map[string][]*Event
	order   []*Event
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{streams: make(map[string][]*Event)}
}

func (s *MemoryStore) Append(_ context.Context, streamID string, expectedVersion int, events []*Event) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := len(s.streams[streamID]) - 1
	if current != expectedVersion {
		return 0, ErrConcurrencyConflict
	}

	version := current
	for _, e := range events {
		version++
		stored := &Event{
			StreamID:   streamID,
			Version:    version,
			Type:       e.Type,
			Payload:    e.Payload,
			RecordedAt: time.Now().UTC(),
		}
		s.streams[streamID] = append(s.streams[streamID], stored)
		s.order = append(s.order, stored)
	}
	return version, nil
}

func (s *MemoryStore) Read(_ context.Context, streamID string, fromVersion int) ([]*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*Event
	for _, e := range s.streams[streamID] {
		if e.Version >= fromVersion {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *MemoryStore) ReadAll(_ context.Context, filter EventFilter) ([]*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*Event
	for _, e := range s.order {
		if filter.matches(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *MemoryStore) StreamVersion(_ context.Context, streamID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.streams[streamID]) - 1, nil
}

func (s *MemoryStore) DeleteStream(_ context.Context, streamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.streams, streamID)
	kept := s.order[:0]
	for _, e := range s.order {
		if e.StreamID != streamID {
			kept = append(kept, e)
		}
	}
	s.order = kept
	return nil
}

func (s *MemoryStore) Close() error { return nil }
