package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func sampleResult(word string, won bool) Result {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return Result{
		Difficulty: "Easy",
		Word:       word,
		Won:        won,
		Wrong:      3,
		Guesses:    6,
		StartedAt:  start,
		FinishedAt: start.Add(time.Minute),
	}
}

func TestMemoryJournal(t *testing.T) {
	j := NewMemoryJournal()
	ctx := context.Background()

	if err := j.Record(ctx, sampleResult("cat", true)); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := j.Record(ctx, sampleResult("dog", false)); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := j.Record(ctx, Result{}); err == nil {
		t.Error("Expected error for result without word")
	}

	got := j.Results()
	if len(got) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(got))
	}
	if got[0].Word != "cat" || got[1].Word != "dog" {
		t.Errorf("unexpected order: %v", got)
	}
	if got[0].ID == "" || got[0].ID == got[1].ID {
		t.Errorf("Expected distinct generated IDs, got %q and %q", got[0].ID, got[1].ID)
	}
}

func TestMemoryJournalCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewMemoryJournal().Record(ctx, sampleResult("cat", true)); err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func TestDiscard(t *testing.T) {
	if err := Discard.Record(context.Background(), Result{}); err != nil {
		t.Errorf("Discard should accept anything, got %v", err)
	}
}

func TestSQLiteJournal(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "data", "history.db")

	j, err := OpenSQLite(ctx, dsn)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	first := sampleResult("cat", true)
	second := sampleResult("dog", false)
	second.FinishedAt = second.FinishedAt.Add(time.Hour)

	if err := j.Record(ctx, first); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := j.Record(ctx, second); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopening must not re-apply migrations or lose rows.
	j, err = OpenSQLite(ctx, dsn)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer j.Close()

	got, err := j.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(got))
	}
	if got[0].Word != "dog" || got[0].Won {
		t.Errorf("Expected newest round dog/lost first, got %+v", got[0])
	}
	if got[1].Word != "cat" || !got[1].Won || got[1].Wrong != 3 || got[1].Guesses != 6 {
		t.Errorf("unexpected round: %+v", got[1])
	}
	if !got[1].StartedAt.Equal(first.StartedAt) {
		t.Errorf("Expected start %v, got %v", first.StartedAt, got[1].StartedAt)
	}
}
