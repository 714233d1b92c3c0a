package sequence

import (
	"context"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/uptrace/bun"

	"github.com/riteshgharti333/hospital-management-app-sub001/errs"
)

// Row backs one prefix counter in the store.
type Row struct {
	bun.BaseModel `bun:"table:id_sequences"`

	Prefix  string `bun:"prefix,pk"`
	Current int64  `bun:"current,notnull"`
}

// Counters is the atomic per-prefix counter the allocator draws from.
type Counters interface {
	// Next increments the counter for prefix and returns the new value,
	// creating the counter at 1 if absent. The increment-and-read must be
	// atomic with respect to concurrent callers.
	Next(ctx context.Context, prefix string) (int64, error)
	// Raise lifts the counter for prefix to at least floor, never lowering it.
	Raise(ctx context.Context, prefix string, floor int64) error
}

// SQLCounters implements Counters on the relational store. Both operations
// are single conflict-upserts, so the store serializes concurrent callers;
// there is no read-then-write window.
type SQLCounters struct {
	db bun.IDB
}

var _ Counters = (*SQLCounters)(nil)

// NewSQLCounters builds store-backed counters.
func NewSQLCounters(db bun.IDB) *SQLCounters {
	return &SQLCounters{db: db}
}

// Next implements Counters.
func (c *SQLCounters) Next(ctx context.Context, prefix string) (int64, error) {
	var n int64
	err := c.db.NewRaw(
		"INSERT INTO id_sequences (prefix, current) VALUES (?, 1) "+
			"ON CONFLICT (prefix) DO UPDATE SET current = id_sequences.current + 1 "+
			"RETURNING current",
		prefix,
	).Scan(ctx, &n)
	if err != nil {
		return 0, errs.DataAccess("sequence next "+prefix, err)
	}
	return n, nil
}

// Raise implements Counters.
func (c *SQLCounters) Raise(ctx context.Context, prefix string, floor int64) error {
	_, err := c.db.NewRaw(
		"INSERT INTO id_sequences (prefix, current) VALUES (?, ?) "+
			"ON CONFLICT (prefix) DO UPDATE SET current = "+
			"CASE WHEN excluded.current > id_sequences.current THEN excluded.current ELSE id_sequences.current END",
		prefix, floor,
	).Exec(ctx)
	if err != nil {
		return errs.DataAccess("sequence raise "+prefix, err)
	}
	return nil
}

// MemCounters implements Counters in process memory. Suited to single-process
// deployments and tests; increments are atomic via the map's compute
// primitive.
type MemCounters struct {
	counters *xsync.MapOf[string, int64]
}

var _ Counters = (*MemCounters)(nil)

// NewMemCounters builds in-memory counters.
func NewMemCounters() *MemCounters {
	return &MemCounters{counters: xsync.NewMapOf[string, int64]()}
}

// Next implements Counters.
func (c *MemCounters) Next(ctx context.Context, prefix string) (int64, error) {
	n, _ := c.counters.Compute(prefix, func(old int64, _ bool) (int64, bool) {
		return old + 1, false
	})
	return n, nil
}

// Raise implements Counters.
func (c *MemCounters) Raise(ctx context.Context, prefix string, floor int64) error {
	c.counters.Compute(prefix, func(old int64, _ bool) (int64, bool) {
		if floor > old {
			return floor, false
		}
		return old, false
	})
	return nil
}
