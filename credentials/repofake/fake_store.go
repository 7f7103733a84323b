package repofake

import (
	"sync"

	"github.com/myshop/go-client/credentials"
)

var _ credentials.Store = (*FakeStore)(nil)

// FakeStore is an in-memory Store for tests.
type FakeStore struct {
	lock   sync.RWMutex
	values map[string]string
}

func NewFakeStore() *FakeStore {
	return &FakeStore{values: make(map[string]string)}
}

func (fs *FakeStore) Get(key string) (string, bool) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()

	v, ok := fs.values[key]
	return v, ok
}

func (fs *FakeStore) Set(key, value string) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	fs.values[key] = value
}

func (fs *FakeStore) Clear(key string) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	delete(fs.values, key)
}

// Snapshot returns a copy of the stored values for assertions.
func (fs *FakeStore) Snapshot() map[string]string {
	fs.lock.RLock()
	defer fs.lock.RUnlock()

	out := make(map[string]string, len(fs.values))
	for k, v := range fs.values {
		out[k] = v
	}
	return out
}
