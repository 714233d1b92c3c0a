// Package testsupport provides the database and cache fixtures the package
// tests share: an isolated in-memory SQLite database per test, schema
// creation from the bun models, seed helpers, and a call-counting cache store
// for asserting hit/miss behavior.
package testsupport

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/riteshgharti333/hospital-management-app-sub001/cache"
)

// NewDB opens an isolated in-memory SQLite database for one test. The shared
// cache DSN keeps the database alive across the pool's connections; the idle
// pool is pinned so the last connection closing cannot drop it mid-test.
func NewDB(t *testing.T) *bun.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_busy_timeout=5000"
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqldb.SetMaxIdleConns(8)
	sqldb.SetConnMaxLifetime(0)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })
	return db
}

// CreateTables creates the tables for the given bun models, passed as
// (*Model)(nil) values.
func CreateTables(t *testing.T, db *bun.DB, models ...any) {
	t.Helper()
	ctx := context.Background()
	for _, m := range models {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			t.Fatalf("create table for %T: %v", m, err)
		}
	}
}

// MustInsert seeds rows, failing the test on error. rows is a pointer to a
// slice of models or a single model pointer.
func MustInsert(t *testing.T, db *bun.DB, rows any) {
	t.Helper()
	if _, err := db.NewInsert().Model(rows).Exec(context.Background()); err != nil {
		t.Fatalf("insert %T: %v", rows, err)
	}
}

// MustDeleteAll removes every row of a model's table.
func MustDeleteAll(t *testing.T, db *bun.DB, m any) {
	t.Helper()
	if _, err := db.NewDelete().Model(m).Where("1 = 1").Exec(context.Background()); err != nil {
		t.Fatalf("delete all %T: %v", m, err)
	}
}

// CountingStore wraps a cache.Store and counts calls per method, mirroring
// the call-count mocks the engine tests assert cache hits with.
type CountingStore struct {
	inner cache.Store

	mu     sync.Mutex
	counts map[string]int
}

var _ cache.Store = (*CountingStore)(nil)

// NewCountingStore wraps inner.
func NewCountingStore(inner cache.Store) *CountingStore {
	return &CountingStore{inner: inner, counts: make(map[string]int)}
}

// Calls returns how often method was invoked ("Get", "Set", ...).
func (s *CountingStore) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[method]
}

func (s *CountingStore) track(method string) {
	s.mu.Lock()
	s.counts[method]++
	s.mu.Unlock()
}

func (s *CountingStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.track("Get")
	return s.inner.Get(ctx, key)
}

func (s *CountingStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.track("Set")
	return s.inner.Set(ctx, key, value, ttl)
}

func (s *CountingStore) Delete(ctx context.Context, key string) error {
	s.track("Delete")
	return s.inner.Delete(ctx, key)
}

func (s *CountingStore) DeleteByPrefix(ctx context.Context, prefix string) error {
	s.track("DeleteByPrefix")
	return s.inner.DeleteByPrefix(ctx, prefix)
}

// FailingStore is a cache.Store whose every call fails, for asserting that
// the cache stays a soft dependency.
type FailingStore struct {
	Err error
}

var _ cache.Store = (*FailingStore)(nil)

func (s *FailingStore) Get(ctx context.Context, key string) ([]byte, error) { return nil, s.Err }

func (s *FailingStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.Err
}

func (s *FailingStore) Delete(ctx context.Context, key string) error { return s.Err }

func (s *FailingStore) DeleteByPrefix(ctx context.Context, prefix string) error { return s.Err }
