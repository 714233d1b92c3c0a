package records

import (
	"context"
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/riteshgharti333/hospital-management-app-sub001/cache"
	"github.com/riteshgharti333/hospital-management-app-sub001/errs"
)

// searchTTL is how long a merged result set stays cached per entity and term.
const searchTTL = 300 * time.Second

// SearchSpec declares which of an entity's fields each strategy matches on.
// Like filter vocabularies, it is declared by the entity service, never
// discovered from user input.
type SearchSpec struct {
	// ExactFields are matched verbatim and case-sensitively; typically codes
	// and business identifiers.
	ExactFields []string

	// PrefixFields are matched case-insensitively on "starts with";
	// typically names.
	PrefixFields []string

	// SimilarFields are matched case-insensitively on containment, to
	// tolerate partial input on name-like fields.
	SimilarFields []string

	// Relations extend the prefix and similarity strategies to fields of a
	// related table reachable through a foreign key, returning the owning
	// record (e.g. finding a prescription by its doctor's name).
	Relations []Relation
}

// Relation names a related table and the join columns to reach it.
type Relation struct {
	// Table is the related table, e.g. "doctors".
	Table string
	// ForeignColumn is the owning table's FK column, e.g. "doctor_id".
	ForeignColumn string
	// RelatedColumn is the related table's joined column, usually "id".
	RelatedColumn string
	// PrefixFields and SimilarFields are searched on the related table the
	// same way the owning entity's own field sets are.
	PrefixFields  []string
	SimilarFields []string
}

// Validate reports an empty or incoherent search declaration.
func (s SearchSpec) Validate() error {
	if len(s.ExactFields) == 0 && len(s.PrefixFields) == 0 &&
		len(s.SimilarFields) == 0 && len(s.Relations) == 0 {
		return errs.BadInputf("search spec: no searchable fields declared")
	}
	for _, rel := range s.Relations {
		if err := validation.ValidateStruct(&rel,
			validation.Field(&rel.Table, validation.Required),
			validation.Field(&rel.ForeignColumn, validation.Required),
			validation.Field(&rel.RelatedColumn, validation.Required),
		); err != nil {
			return errs.BadInputf("search spec relation: %v", err)
		}
		if len(rel.PrefixFields) == 0 && len(rel.SimilarFields) == 0 {
			return errs.BadInputf("search spec relation %q: no searchable fields declared", rel.Table)
		}
	}
	return nil
}

// SearchEngine matches one entity's records against a free-text term through
// layered strategies: exact, then prefix, then similarity, then relations.
// Earlier strategies rank first in the merged, de-duplicated result.
type SearchEngine[T any] struct {
	db    bun.IDB
	store cache.Store
	log   *zap.Logger
	desc  Descriptor[T]
	spec  SearchSpec
}

// NewSearchEngine builds a search engine for the described entity. store may
// be nil to disable result caching; log may be nil.
func NewSearchEngine[T any](db bun.IDB, store cache.Store, log *zap.Logger, desc Descriptor[T], spec SearchSpec) (*SearchEngine[T], error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SearchEngine[T]{db: db, store: store, log: log, desc: desc, spec: spec}, nil
}

// Search returns every record matching term, ordered by match strategy
// (exact before prefix before similarity before relation) and by primary key
// within a strategy. The merged set for a normalized term is cached per
// entity; repeated identical searches inside the TTL window never touch the
// store. Zero matches is an empty slice, not an error. The caller guarantees
// term is non-empty.
func (e *SearchEngine[T]) Search(ctx context.Context, term string) ([]T, error) {
	verbatim := strings.TrimSpace(term)
	normalized := cache.NormalizeTerm(term)

	key := cache.SearchKey(e.desc.Name, normalized)
	if e.store != nil {
		payload, err := e.store.Get(ctx, key)
		switch {
		case err == nil:
			var cached []T
			if derr := cache.Decode(payload, &cached); derr == nil {
				return cached, nil
			}
			e.log.Warn("search cache entry undecodable, querying store",
				zap.String("key", key))
		case !errors.Is(err, cache.ErrMiss):
			e.log.Warn("search cache read failed, querying store",
				zap.String("key", key), zap.Error(err))
		}
	}

	results, err := e.collect(ctx, verbatim, normalized)
	if err != nil {
		return nil, err
	}

	if e.store != nil {
		if payload, merr := cache.Encode(results); merr != nil {
			e.log.Warn("search cache encode failed", zap.String("key", key), zap.Error(merr))
		} else if serr := e.store.Set(ctx, key, payload, searchTTL); serr != nil {
			e.log.Warn("search cache write failed", zap.String("key", key), zap.Error(serr))
		}
	}
	return results, nil
}

// collect runs the strategies in priority order and merges their matches,
// de-duplicating by primary key so a record found by an earlier strategy
// keeps its higher rank.
func (e *SearchEngine[T]) collect(ctx context.Context, verbatim, normalized string) ([]T, error) {
	merged := []T{}
	seen := make(map[int64]struct{})
	add := func(items []T) {
		for _, item := range items {
			pk := e.desc.PrimaryKey(item)
			if _, dup := seen[pk]; dup {
				continue
			}
			seen[pk] = struct{}{}
			merged = append(merged, item)
		}
	}

	if len(e.spec.ExactFields) > 0 {
		items, err := e.matchOwn(ctx, e.spec.ExactFields, func(q *bun.SelectQuery, col string) *bun.SelectQuery {
			return q.WhereOr("? = ?", bun.Ident(col), verbatim)
		})
		if err != nil {
			return nil, err
		}
		add(items)
	}

	prefixPattern := likeEscape(normalized) + "%"
	if len(e.spec.PrefixFields) > 0 {
		items, err := e.matchOwn(ctx, e.spec.PrefixFields, func(q *bun.SelectQuery, col string) *bun.SelectQuery {
			return q.WhereOr("lower(?) LIKE ? ESCAPE '\\'", bun.Ident(col), prefixPattern)
		})
		if err != nil {
			return nil, err
		}
		add(items)
	}

	similarPattern := "%" + likeEscape(normalized) + "%"
	if len(e.spec.SimilarFields) > 0 {
		items, err := e.matchOwn(ctx, e.spec.SimilarFields, func(q *bun.SelectQuery, col string) *bun.SelectQuery {
			return q.WhereOr("lower(?) LIKE ? ESCAPE '\\'", bun.Ident(col), similarPattern)
		})
		if err != nil {
			return nil, err
		}
		add(items)
	}

	for _, rel := range e.spec.Relations {
		items, err := e.matchRelation(ctx, rel, prefixPattern, similarPattern)
		if err != nil {
			return nil, err
		}
		add(items)
	}

	return merged, nil
}

// matchOwn runs one strategy over the entity's own columns, OR-combined.
func (e *SearchEngine[T]) matchOwn(ctx context.Context, cols []string, pred func(*bun.SelectQuery, string) *bun.SelectQuery) ([]T, error) {
	var items []T
	q := e.db.NewSelect().Model(&items)
	q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
		for _, col := range cols {
			q = pred(q, col)
		}
		return q
	})
	q = q.OrderExpr("? ASC", bun.Ident(e.desc.CursorColumn))
	if err := q.Scan(ctx); err != nil {
		return nil, errs.DataAccess(e.desc.Name+" search", err)
	}
	return items, nil
}

// matchRelation joins the related table and applies the prefix and similarity
// strategies to its declared fields, returning the owning records.
func (e *SearchEngine[T]) matchRelation(ctx context.Context, rel Relation, prefixPattern, similarPattern string) ([]T, error) {
	var items []T
	q := e.db.NewSelect().Model(&items).
		Join("JOIN ? AS rel ON rel.? = ?TableAlias.?",
			bun.Ident(rel.Table), bun.Ident(rel.RelatedColumn), bun.Ident(rel.ForeignColumn))
	q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
		for _, col := range rel.PrefixFields {
			q = q.WhereOr("lower(rel.?) LIKE ? ESCAPE '\\'", bun.Ident(col), prefixPattern)
		}
		for _, col := range rel.SimilarFields {
			q = q.WhereOr("lower(rel.?) LIKE ? ESCAPE '\\'", bun.Ident(col), similarPattern)
		}
		return q
	})
	q = q.OrderExpr("?TableAlias.? ASC", bun.Ident(e.desc.CursorColumn))
	if err := q.Scan(ctx); err != nil {
		return nil, errs.DataAccess(e.desc.Name+" relation search", err)
	}
	return items, nil
}

// likeEscape neutralizes LIKE metacharacters in user input so a term such as
// "100%" matches literally.
func likeEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
