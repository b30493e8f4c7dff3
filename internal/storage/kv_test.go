package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestKVBackends(t *testing.T) {
	backends := []struct {
		name string
		open func(t *testing.T) KV
	}{
		{"sqlite", func(t *testing.T) KV { return openTestStore(t) }},
		{"file", func(t *testing.T) KV {
			fs, err := NewFileStore(t.TempDir())
			if err != nil {
				t.Fatalf("NewFileStore() failed: %v", err)
			}
			return fs
		}},
		{"memory", func(t *testing.T) KV { return NewMemoryStore() }},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			kv := b.open(t)

			if _, ok, err := kv.Get("scores"); ok || err != nil {
				t.Fatalf("Get() on empty store = (_, %v, %v)", ok, err)
			}
			if err := kv.Put("scores", []byte("abc")); err != nil {
				t.Fatalf("Put() failed: %v", err)
			}
			got, ok, err := kv.Get("scores")
			if err != nil || !ok || string(got) != "abc" {
				t.Errorf("Get() = (%q, %v, %v)", got, ok, err)
			}
			if err := kv.Delete("scores"); err != nil {
				t.Fatalf("Delete() failed: %v", err)
			}
			// Deleting twice is fine
			if err := kv.Delete("scores"); err != nil {
				t.Errorf("second Delete() = %v", err)
			}
			if _, ok, _ := kv.Get("scores"); ok {
				t.Error("key present after Delete()")
			}
		})
	}
}

func TestFileStoreLayout(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := fs.Put("botRunHighScores", []byte("[]")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "botRunHighScores.json")); err != nil {
		t.Errorf("expected json file on disk: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "botRunHighScores.json.tmp")); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	m := NewMemoryStore()
	buf := []byte("abc")
	m.Put("k", buf)
	buf[0] = 'z'

	got, _, _ := m.Get("k")
	if string(got) != "abc" {
		t.Errorf("stored value aliased caller buffer: %q", got)
	}
}

func TestOpenKV(t *testing.T) {
	dir := t.TempDir()

	kv, closer, err := OpenKV(BackendSQLite, filepath.Join(dir, "kv.db"))
	if err != nil {
		t.Fatalf("OpenKV(sqlite) failed: %v", err)
	}
	if _, ok := kv.(*Store); !ok {
		t.Errorf("OpenKV(sqlite) returned %T", kv)
	}
	closer.Close()

	kv, closer, err = OpenKV(BackendFile, filepath.Join(dir, "files"))
	if err != nil {
		t.Fatalf("OpenKV(file) failed: %v", err)
	}
	if _, ok := kv.(*FileStore); !ok {
		t.Errorf("OpenKV(file) returned %T", kv)
	}
	closer.Close()

	if _, _, err := OpenKV("redis", ""); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("OpenKV(redis) = %v, expected ErrUnknownBackend", err)
	}
}
