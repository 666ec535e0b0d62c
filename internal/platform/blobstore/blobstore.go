// Package blobstore provides the opaque key-value persistence backing the
// chat transcript. It defines the Store interface, an in-memory
// implementation suitable for testing and development, and a Redis-backed
// implementation for durability across sessions.
package blobstore

import (
	"context"
	"errors"
	"sync"
)

// ErrBlobNotFound is returned when nothing has been saved under the key yet.
var ErrBlobNotFound = errors.New("blob not found")

// Store is the contract for a single named blob. Save followed by Load in
// the same session returns an equivalent byte sequence; writes are
// last-writer-wins with no conflict detection.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// MemoryStore is a thread-safe, in-memory Store for testing/dev.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
	set  bool
}

// NewMemoryStore returns a ready-to-use MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return nil, ErrBlobNotFound
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.set = true
	return nil
}
