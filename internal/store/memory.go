package store

import (
	"context"
	"errors"
	"sync"
)

// MemoryJournal keeps results in memory, in record order.
type MemoryJournal struct {
	mu      sync.RWMutex
	results []Result
}

// NewMemoryJournal constructs an empty MemoryJournal.
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{}
}

// Record appends r. A missing ID is filled in.
func (m *MemoryJournal) Record(ctx context.Context, r Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.Word == "" {
		return errors.New("store: result without word")
	}
	if r.ID == "" {
		r.ID = NewID()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
	return nil
}

// Results returns a copy of everything recorded so far.
func (m *MemoryJournal) Results() []Result {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Result(nil), m.results...)
}
