package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/botrun/internal/leaderboard"
	"github.com/vovakirdan/botrun/internal/storage"
)

func TestRecorderBoardOnly(t *testing.T) {
	board := leaderboard.New(storage.NewMemoryStore(), nil)
	rec := NewRecorder(board, nil, nil)

	rec.RecordRun("alpha", 40, time.Second)
	if rec.LastRank() != 1 {
		t.Errorf("first run rank = %d, expected 1", rec.LastRank())
	}

	rec.RecordRun("beta", 60, time.Second)
	rec.RecordRun("gamma", 50, time.Second)
	rec.RecordRun("delta", 10, time.Second)
	if rec.LastRank() != 0 {
		t.Errorf("fourth place rank = %d, expected 0", rec.LastRank())
	}

	if best := board.Best(); best != 60 {
		t.Errorf("best = %d, expected 60", best)
	}
}

func TestRecorderWritesHistory(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	board := leaderboard.New(store, nil)
	rec := NewRecorder(board, store, nil)

	rec.RecordRun("bot", 120, 90*time.Second)
	rec.RecordRun("bot", 80, 30*time.Second)

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 80 {
		t.Errorf("recent runs = %+v", runs)
	}

	// The board is persisted in the same database
	reloaded := leaderboard.New(store, nil)
	reloaded.Load()
	if got := reloaded.Entries(); len(got) != 2 || got[0].Score != 120 {
		t.Errorf("reloaded board = %+v", got)
	}
}

func TestRecorderWithoutBoard(t *testing.T) {
	rec := NewRecorder(nil, nil, nil)
	rec.RecordRun("bot", 10, time.Second)
	if rec.LastRank() != 0 {
		t.Error("no board means no rank")
	}
}
