package cacheinfra

import (
	"context"
	"strings"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/riteshgharti333/hospital-management-app-sub001/cache"
)

type entry struct {
	payload  []byte
	deadline time.Time
}

// MemoryStore implements cache.Store in process memory with per-entry
// deadlines. Expired entries are dropped lazily on read and, when a sweep
// interval is configured, by a background sweeper.
type MemoryStore struct {
	entries *xsync.MapOf[string, entry]
	done    chan struct{}
}

var _ cache.Store = (*MemoryStore)(nil)

// NewMemoryStore creates a memory store. sweepInterval zero disables the
// background sweeper.
func NewMemoryStore(sweepInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: xsync.NewMapOf[string, entry](),
		done:    make(chan struct{}),
	}
	if sweepInterval > 0 {
		go s.sweep(sweepInterval)
	}
	return s
}

// Get implements cache.Store.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	e, ok := s.entries.Load(key)
	if !ok {
		return nil, cache.ErrMiss
	}
	if time.Now().After(e.deadline) {
		s.entries.Delete(key)
		return nil, cache.ErrMiss
	}
	return e.payload, nil
}

// Set implements cache.Store.
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.entries.Store(key, entry{payload: value, deadline: time.Now().Add(ttl)})
	return nil
}

// Delete implements cache.Store.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.entries.Delete(key)
	return nil
}

// DeleteByPrefix implements cache.Store.
func (s *MemoryStore) DeleteByPrefix(ctx context.Context, prefix string) error {
	s.entries.Range(func(key string, _ entry) bool {
		if strings.HasPrefix(key, prefix) {
			s.entries.Delete(key)
		}
		return true
	})
	return nil
}

// Close stops the background sweeper.
func (s *MemoryStore) Close() error {
	close(s.done)
	return nil
}

func (s *MemoryStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.entries.Range(func(key string, e entry) bool {
				if now.After(e.deadline) {
					s.entries.Delete(key)
				}
				return true
			})
		}
	}
}
