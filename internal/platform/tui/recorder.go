package tui

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/botrun/internal/leaderboard"
	"github.com/vovakirdan/botrun/internal/storage"
)

// Recorder stores finished runs in the top-3 board and, when a SQLite
// store is available, in the run history.
type Recorder struct {
	board  *leaderboard.Board
	store  *storage.Store
	logger *log.Logger

	mu       sync.Mutex
	lastRank int
}

// NewRecorder creates a recorder. board and store may each be nil.
func NewRecorder(board *leaderboard.Board, store *storage.Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{board: board, store: store, logger: logger}
}

// RecordRun implements botrun.ScoreRecorder.
func (r *Recorder) RecordRun(name string, score int, duration time.Duration) {
	rank := 0
	if r.board != nil {
		rank = r.board.Insert(name, score)
	}

	r.mu.Lock()
	r.lastRank = rank
	r.mu.Unlock()

	if r.store == nil {
		return
	}
	if _, err := r.store.RecordRun(name, score, duration); err != nil {
		r.logger.Error("could not record run", "name", name, "score", score, "error", err)
	}
}

// LastRank returns the board position of the last recorded run, 0 if it
// did not place.
func (r *Recorder) LastRank() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastRank
}

// Board returns the top-3 board, nil if none.
func (r *Recorder) Board() *leaderboard.Board {
	return r.board
}

// Store returns the run history store, nil if none.
func (r *Recorder) Store() *storage.Store {
	return r.store
}
