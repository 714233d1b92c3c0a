package sequence

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/riteshgharti333/hospital-management-app-sub001/errs"
)

const (
	// defaultPad is the zero-padding width of the numeric suffix. Counters
	// past 9999 simply widen.
	defaultPad = 4

	// maxAttempts bounds the retries on a transient counter failure before
	// the allocation surfaces as contended. A possibly-duplicate identifier
	// is never returned instead.
	maxAttempts = 5
)

// Allocator produces unique, monotonically increasing business identifiers
// of the form PREFIX-0042.
type Allocator struct {
	counters Counters
	log      *zap.Logger
	pad      int
}

// NewAllocator builds an allocator over the given counters. log may be nil.
func NewAllocator(counters Counters, log *zap.Logger) *Allocator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Allocator{counters: counters, log: log, pad: defaultPad}
}

// Next allocates the next identifier for prefix, e.g. Next(ctx, "DOC") ->
// "DOC-0042". Safe under arbitrary concurrency: every caller gets a distinct
// value with no gaps beyond failed attempts.
func (a *Allocator) Next(ctx context.Context, prefix string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		n, err := a.counters.Next(ctx, prefix)
		if err == nil {
			return Format(prefix, n, a.pad), nil
		}
		lastErr = err
		a.log.Warn("sequence increment failed, retrying",
			zap.String("prefix", prefix), zap.Int("attempt", attempt), zap.Error(err))
		if ctx.Err() != nil {
			break
		}
	}
	return "", errs.Contended(prefix, lastErr)
}

// SeedFrom raises the prefix counter to the highest numeric suffix found in
// column of table among values shaped like "<prefix>-<number>". Intended as a
// one-time adoption step when the allocator is introduced over pre-existing
// rows; allocation itself never scans.
func (a *Allocator) SeedFrom(ctx context.Context, db bun.IDB, prefix, table, column string) error {
	var ids []string
	err := db.NewSelect().
		Table(table).
		Column(column).
		Where("? LIKE ?", bun.Ident(column), prefix+"-%").
		Scan(ctx, &ids)
	if err != nil {
		return errs.DataAccess("sequence seed "+prefix, err)
	}

	var floor int64
	for _, id := range ids {
		n, ok := ParseSuffix(prefix, id)
		if !ok {
			// Legacy rows can carry hand-entered junk; skip, don't fail.
			a.log.Warn("unparseable business identifier ignored during seed",
				zap.String("prefix", prefix), zap.String("id", id))
			continue
		}
		if n > floor {
			floor = n
		}
	}
	if floor == 0 {
		return nil
	}
	return a.counters.Raise(ctx, prefix, floor)
}

// Format renders an allocated counter value as the outward identifier.
func Format(prefix string, n int64, pad int) string {
	return fmt.Sprintf("%s-%0*d", prefix, pad, n)
}

// ParseSuffix extracts the numeric suffix of an identifier carrying the
// given prefix.
func ParseSuffix(prefix, id string) (int64, bool) {
	rest, found := strings.CutPrefix(id, prefix+"-")
	if !found {
		return 0, false
	}
	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
