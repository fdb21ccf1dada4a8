// internal/store/journal.go
//
// Round journal: an append-only record of finished rounds.
// Implementations:
//   - memory (this package): RWMutex-guarded slice, lost on exit.
//   - sqlite (sqlite.go): rows in the rounds table.
//   - Discard: drops everything; used when no history database is configured.
//
// The journal is write-only from the game's point of view; nothing is ever
// loaded back into a round.

package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Result describes one finished round.
type Result struct {
	ID         string
	Difficulty string
	Word       string
	Won        bool
	Wrong      int // wrong guesses
	Guesses    int // accepted guesses
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewID returns a fresh round identifier.
func NewID() string {
	return uuid.NewString()
}

// Journal records finished rounds.
type Journal interface {
	Record(ctx context.Context, r Result) error
}

type discard struct{}

func (discard) Record(context.Context, Result) error { return nil }

// Discard is a Journal that keeps nothing.
var Discard Journal = discard{}
