// Package leaderboard keeps the persisted top-3 high score table.
package leaderboard

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/vovakirdan/botrun/internal/storage"
)

const (
	// StorageKey is the fixed key the table is stored under.
	StorageKey = "botRunHighScores"
	// MaxEntries is the number of kept scores.
	MaxEntries = 3
	// MaxNameLen is the maximum player name length in runes.
	MaxNameLen = 10
	// DefaultName replaces an empty player name.
	DefaultName = "Anon"
)

// Entry is one leaderboard row.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Board is the in-memory table backed by a KV store.
// Memory is authoritative: a failed write is logged and the table kept.
type Board struct {
	mu      sync.Mutex
	entries []Entry
	kv      storage.KV
	logger  *log.Logger
}

// New creates an empty board. Call Load to read the persisted table.
// A nil logger discards output.
func New(kv storage.KV, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Board{kv: kv, logger: logger}
}

// Load replaces the in-memory table with the persisted one.
// Missing or malformed data yields an empty table.
func (b *Board) Load() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = nil
	if b.kv == nil {
		return
	}

	data, ok, err := b.kv.Get(StorageKey)
	if err != nil {
		b.logger.Warn("failed to read high scores", "error", err)
		return
	}
	if !ok {
		return
	}

	entries, err := Decode(data)
	if err != nil {
		b.logger.Warn("discarding malformed high scores", "error", err)
		return
	}
	b.entries = normalize(entries)
}

// Save writes the current table.
func (b *Board) Save() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.saveLocked()
}

func (b *Board) saveLocked() error {
	if b.kv == nil {
		return nil
	}
	data, err := Encode(b.entries)
	if err != nil {
		return err
	}
	if err := b.kv.Put(StorageKey, data); err != nil {
		b.logger.Error("failed to save high scores", "error", err)
		return err
	}
	return nil
}

// Insert records a finished run and persists the table.
// Returns the 1-based rank, or 0 if the score did not make the table.
func (b *Board) Insert(name string, score int) int {
	if score < 0 {
		score = 0
	}
	entry := Entry{Name: NormalizeName(name), Score: score}

	b.mu.Lock()
	defer b.mu.Unlock()

	// Ties keep insertion order, so the new entry ranks after equal scores
	rank := 1 + lo.CountBy(b.entries, func(e Entry) bool { return e.Score >= score })
	if rank > MaxEntries {
		rank = 0
	}

	b.entries = normalize(append(b.entries, entry))
	_ = b.saveLocked()
	return rank
}

// Clear empties the table and removes the persisted value.
func (b *Board) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = nil
	if b.kv == nil {
		return nil
	}
	if err := b.kv.Delete(StorageKey); err != nil {
		b.logger.Error("failed to clear high scores", "error", err)
		return err
	}
	return nil
}

// Entries returns a copy of the table, best first.
func (b *Board) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.entries)
}

// Best returns the top score, or 0 for an empty table.
func (b *Board) Best() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.entries) == 0 {
		return 0
	}
	return b.entries[0].Score
}

// Slots formats exactly MaxEntries display lines, padding empty slots.
func (b *Board) Slots() []string {
	entries := b.Entries()
	lines := make([]string, MaxEntries)
	for i := range lines {
		if i < len(entries) {
			lines[i] = fmt.Sprintf("%s: %d", entries[i].Name, entries[i].Score)
		} else {
			lines[i] = "--- : 0"
		}
	}
	return lines
}

// normalize sorts descending (stable for ties) and caps the table.
func normalize(entries []Entry) []Entry {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Score - a.Score
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}

// Encode serializes entries as a JSON array.
func Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: encode: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array of entries. A value that is not an array is
// an error; elements without a string name or a non-negative numeric score
// are dropped.
func Decode(data []byte) ([]Entry, error) {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("leaderboard: decode: %w", err)
	}

	return lo.FilterMap(raw, func(v any, _ int) (Entry, bool) {
		item, ok := v.(map[string]any)
		if !ok {
			return Entry{}, false
		}
		name, ok := item["name"].(string)
		if !ok {
			return Entry{}, false
		}
		score, ok := item["score"].(float64)
		if !ok || score < 0 {
			return Entry{}, false
		}
		return Entry{Name: truncate(name), Score: int(score)}, true
	}), nil
}

// NormalizeName trims whitespace, substitutes DefaultName for an empty
// name and truncates to MaxNameLen runes.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	return truncate(name)
}

func truncate(name string) string {
	if utf8.RuneCountInString(name) <= MaxNameLen {
		return name
	}
	return string([]rune(name)[:MaxNameLen])
}
