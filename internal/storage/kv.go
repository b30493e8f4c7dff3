package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// KV is a string-keyed byte store. A missing key is not an error.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// Backend names accepted by OpenKV.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned by OpenKV for an unsupported backend name.
var ErrUnknownBackend = errors.New("storage: unknown backend")

// OpenKV opens the named backend. For sqlite, path is the database file;
// for file, path is the directory (empty means the XDG data dir).
// The returned closer releases the backend and is never nil.
func OpenKV(backend, path string) (KV, io.Closer, error) {
	switch strings.ToLower(backend) {
	case BackendSQLite, "":
		store, err := Open(path)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case BackendFile:
		fs, err := NewFileStore(path)
		if err != nil {
			return nil, nil, err
		}
		return fs, nopCloser{}, nil
	case BackendMemory:
		return NewMemoryStore(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// FileStore keeps each key as <dir>/<key>.json.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// DefaultFileDir returns the per-user data directory for the file backend.
func DefaultFileDir() string {
	return filepath.Join(xdg.DataHome, "botrun")
}

// NewFileStore creates the directory if needed. An empty dir selects DefaultFileDir.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = DefaultFileDir()
	}
	dir, err := expandHome(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory the store writes to.
func (f *FileStore) Dir() string {
	return f.dir
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, filepath.Base(key)+".json")
}

// Get implements KV.
func (f *FileStore) Get(key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: cannot read %q: %w", key, err)
	}
	return data, true, nil
}

// Put implements KV. Writes go through a temp file and rename.
func (f *FileStore) Put(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	target := f.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	return nil
}

// Delete implements KV.
func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: cannot delete %q: %w", key, err)
	}
	return nil
}

// MemoryStore is an in-process KV, used for tests and --store=memory.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get implements KV.
func (m *MemoryStore) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Put implements KV.
func (m *MemoryStore) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements KV.
func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

var (
	_ KV = (*FileStore)(nil)
	_ KV = (*MemoryStore)(nil)
)
