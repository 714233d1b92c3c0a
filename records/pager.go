package records

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/riteshgharti333/hospital-management-app-sub001/cache"
	"github.com/riteshgharti333/hospital-management-app-sub001/errs"
)

const (
	// MaxPageSize caps the page size regardless of caller input. Oversized
	// requests are clamped, not rejected.
	MaxPageSize = 100

	// DefaultPageSize applies when the caller passes a non-positive limit.
	DefaultPageSize = 10

	// pageTTL is how long an unfiltered page snapshot stays cached.
	pageTTL = 600 * time.Second
)

// Page is one window of records plus the continuation token.
type Page[T any] struct {
	Items []T `msgpack:"items"`
	// NextCursor continues the walk; empty means the final page was reached.
	// It is set iff a full page was returned.
	NextCursor string `msgpack:"next_cursor"`
}

// Pager pages one entity's table by ascending cursor column.
type Pager[T any] struct {
	db    bun.IDB
	store cache.Store
	log   *zap.Logger
	desc  Descriptor[T]
}

// NewPager builds a pager for the described entity. store may be nil to
// disable page caching; log may be nil.
func NewPager[T any](db bun.IDB, store cache.Store, log *zap.Logger, desc Descriptor[T]) (*Pager[T], error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Pager[T]{db: db, store: store, log: log, desc: desc}, nil
}

// Page returns up to limit records with cursor column > cursor, ordered
// ascending. A nil cursor starts from the beginning. The page for a given
// (entity, cursor, limit) triple is cached for a fixed TTL, so a hit can
// return a snapshot that predates recent writes; that staleness window is
// part of the contract. A cursor past the end of data yields an empty page
// and no error.
func (p *Pager[T]) Page(ctx context.Context, limit int, cursor *int64) (Page[T], error) {
	limit = clampLimit(limit)

	key := cache.PageKey(p.desc.Name, cursor, limit)
	if p.store != nil {
		payload, err := p.store.Get(ctx, key)
		switch {
		case err == nil:
			var cached Page[T]
			if derr := cache.Decode(payload, &cached); derr == nil {
				return cached, nil
			}
			p.log.Warn("page cache entry undecodable, querying store",
				zap.String("key", key))
		case !errors.Is(err, cache.ErrMiss):
			p.log.Warn("page cache read failed, querying store",
				zap.String("key", key), zap.Error(err))
		}
	}

	page, err := p.window(ctx, limit, cursor, nil)
	if err != nil {
		return Page[T]{}, err
	}

	if p.store != nil {
		if payload, merr := cache.Encode(page); merr != nil {
			p.log.Warn("page cache encode failed", zap.String("key", key), zap.Error(merr))
		} else if serr := p.store.Set(ctx, key, payload, pageTTL); serr != nil {
			p.log.Warn("page cache write failed", zap.String("key", key), zap.Error(serr))
		}
	}
	return page, nil
}

// PageFiltered is Page with the AND-combined conditions applied before the
// cursor window. Filtered pages are never cached: the filter vocabulary makes
// the key cardinality unbounded, so every call reads through to the store.
func (p *Pager[T]) PageFiltered(ctx context.Context, limit int, conds []Condition, cursor *int64) (Page[T], error) {
	return p.window(ctx, clampLimit(limit), cursor, conds)
}

func (p *Pager[T]) window(ctx context.Context, limit int, cursor *int64, conds []Condition) (Page[T], error) {
	items := make([]T, 0, limit)

	q := p.db.NewSelect().Model(&items)
	for _, c := range conds {
		q = c.apply(q)
	}
	if cursor != nil {
		q = q.Where("? > ?", bun.Ident(p.desc.CursorColumn), *cursor)
	}
	q = q.OrderExpr("? ASC", bun.Ident(p.desc.CursorColumn)).Limit(limit)

	if err := q.Scan(ctx); err != nil {
		return Page[T]{}, errs.DataAccess(p.desc.Name+" page", err)
	}

	page := Page[T]{Items: items}
	if len(items) == limit {
		page.NextCursor = CursorToken(p.desc.PrimaryKey(items[len(items)-1]))
	}
	return page, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPageSize
	case limit > MaxPageSize:
		return MaxPageSize
	}
	return limit
}
