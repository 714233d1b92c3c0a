// Package dashboard computes the aggregate analytics shown on the admin
// dashboard. Every metric is an expensive multi-row read wrapped in the
// cache-aside helper: perfect real-time accuracy is not required there, so
// each metric picks a TTL between two and thirty minutes and accepts that
// staleness window.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/riteshgharti333/hospital-management-app-sub001/cache"
	"github.com/riteshgharti333/hospital-management-app-sub001/errs"
	"github.com/riteshgharti333/hospital-management-app-sub001/model"
)

const (
	admissionTrendTTL = 10 * time.Minute
	revenueTTL        = 30 * time.Minute
	bedStatusTTL      = 2 * time.Minute
)

// Metrics serves cached dashboard aggregates.
type Metrics struct {
	db    bun.IDB
	store cache.Store
	log   *zap.Logger
}

// NewMetrics builds the dashboard reader. store may be nil to disable
// caching; log may be nil.
func NewMetrics(db bun.IDB, store cache.Store, log *zap.Logger) *Metrics {
	if log == nil {
		log = zap.NewNop()
	}
	return &Metrics{db: db, store: store, log: log}
}

// MonthlyCount is one month's bucket of an admission trend, keyed "2026-08".
type MonthlyCount struct {
	Month string `msgpack:"month"`
	Count int64  `msgpack:"count"`
}

// AdmissionTrend returns admissions per calendar month over the trailing
// months window, oldest first. Months with no admissions are omitted.
// Bucketing happens here rather than in SQL so the query stays portable
// across the sqlite and postgres dialects.
func (m *Metrics) AdmissionTrend(ctx context.Context, months int) ([]MonthlyCount, error) {
	if months <= 0 {
		months = 12
	}
	// Distinct windows are distinct results; each gets its own cache entry.
	key := cache.MetricKey(fmt.Sprintf("admissions:monthly:%d", months))
	return cache.GetOrCompute(ctx, m.store, m.log, key, admissionTrendTTL, func(ctx context.Context) ([]MonthlyCount, error) {
		cutoff := time.Now().AddDate(0, -months, 0)
		var admittedAt []time.Time
		err := m.db.NewSelect().
			Model((*model.Admission)(nil)).
			Column("admitted_at").
			Where("admitted_at >= ?", cutoff).
			Scan(ctx, &admittedAt)
		if err != nil {
			return nil, errs.DataAccess("admission trend", err)
		}

		buckets := make(map[string]int64)
		for _, ts := range admittedAt {
			buckets[ts.Format("2006-01")]++
		}
		out := make([]MonthlyCount, 0, len(buckets))
		for month, count := range buckets {
			out = append(out, MonthlyCount{Month: month, Count: count})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
		return out, nil
	})
}

// StatusTotal is one status bucket of a rollup.
type StatusTotal struct {
	Status string `bun:"status" msgpack:"status"`
	Total  int64  `bun:"total" msgpack:"total"`
}

// RevenueByStatus returns billed amounts (cents) summed per bill status.
func (m *Metrics) RevenueByStatus(ctx context.Context) ([]StatusTotal, error) {
	key := cache.MetricKey("revenue:by-status")
	return cache.GetOrCompute(ctx, m.store, m.log, key, revenueTTL, func(ctx context.Context) ([]StatusTotal, error) {
		var out []StatusTotal
		err := m.db.NewSelect().
			Model((*model.Bill)(nil)).
			ColumnExpr("status").
			ColumnExpr("sum(amount) AS total").
			GroupExpr("status").
			OrderExpr("status ASC").
			Scan(ctx, &out)
		if err != nil {
			return nil, errs.DataAccess("revenue rollup", err)
		}
		return out, nil
	})
}

// BedStatusDistribution returns bed counts per status. Ward staff watch this
// one, so it runs on the shortest TTL of the dashboard.
func (m *Metrics) BedStatusDistribution(ctx context.Context) ([]StatusTotal, error) {
	key := cache.MetricKey("beds:by-status")
	return cache.GetOrCompute(ctx, m.store, m.log, key, bedStatusTTL, func(ctx context.Context) ([]StatusTotal, error) {
		var out []StatusTotal
		err := m.db.NewSelect().
			Model((*model.Bed)(nil)).
			ColumnExpr("status").
			ColumnExpr("count(*) AS total").
			GroupExpr("status").
			OrderExpr("status ASC").
			Scan(ctx, &out)
		if err != nil {
			return nil, errs.DataAccess("bed distribution", err)
		}
		return out, nil
	})
}
