package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreKV(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = (_, %v, %v), expected (_, false, nil)", ok, err)
	}

	if err := store.Put("k", []byte(`[1]`)); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	// Overwrite
	if err := store.Put("k", []byte(`[2]`)); err != nil {
		t.Fatalf("Put() overwrite failed: %v", err)
	}

	got, ok, err := store.Get("k")
	if err != nil || !ok || string(got) != "[2]" {
		t.Errorf("Get(k) = (%q, %v, %v), expected ([2], true, nil)", got, ok, err)
	}

	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Error("key still present after Delete()")
	}
}

func TestStoreKVSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Put("botRunHighScores", []byte(`[{"name":"a","score":1}]`)); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if _, ok, _ := store.Get("botRunHighScores"); !ok {
		t.Error("value lost across reopen")
	}
}

func TestStoreRunsTopAndRecent(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{100, 50, 200, 150} {
		if _, err := store.RecordRun("bot", score, time.Duration(i+1)*time.Second); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 200 || top[1].Score != 150 || top[2].Score != 100 {
		t.Errorf("Runs not in expected order: %v", top)
	}
	if top[0].Duration != 3*time.Second {
		t.Errorf("Duration = %v, expected 3s", top[0].Duration)
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 150 || recent[1].Score != 200 {
		t.Errorf("RecentRuns() = %v, expected newest first", recent)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.HighScore != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	store.RecordRun("a", 100, 2*time.Second)
	store.RecordRun("b", 300, 4*time.Second)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalPlayTime != 6*time.Second {
		t.Errorf("TotalPlayTime = %v, expected 6s", stats.TotalPlayTime)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun("a", 100, time.Second)
	store.Put("keep", []byte("x"))

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if _, ok, _ := store.Get("keep"); !ok {
		t.Error("ClearRuns() should not touch the kv table")
	}
}
