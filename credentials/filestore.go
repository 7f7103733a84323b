package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

var _ Store = (*FileStore)(nil)

// FileStore persists key-value pairs as a JSON document on disk. Every write
// rewrites the file, so the on-disk state always reflects the last completed
// Set/Clear. Write failures are swallowed: the in-memory view stays the
// source of truth for the life of the process, matching the store contract
// of never surfacing errors to readers.
type FileStore struct {
	path   string
	lock   sync.RWMutex
	values map[string]string
}

// NewFileStore loads the store at path, creating parent directories as
// needed. A missing file is a fresh install, not an error.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrap(err, "[NewFileStore] MkdirAll")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fs, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "[NewFileStore] ReadFile")
	}

	if err := json.Unmarshal(data, &fs.values); err != nil {
		// Corrupt store file: start clean rather than failing startup.
		fs.values = make(map[string]string)
	}
	return fs, nil
}

func (fs *FileStore) Get(key string) (string, bool) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()

	v, ok := fs.values[key]
	return v, ok
}

func (fs *FileStore) Set(key, value string) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	fs.values[key] = value
	fs.persist()
}

func (fs *FileStore) Clear(key string) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	delete(fs.values, key)
	fs.persist()
}

// persist writes the current map to disk. Callers hold the write lock.
func (fs *FileStore) persist() {
	data, err := json.Marshal(fs.values)
	if err != nil {
		return
	}
	_ = os.WriteFile(fs.path, data, 0o600)
}
