package records

import "github.com/uptrace/bun"

type filterOp int

const (
	opEquals filterOp = iota
	opEqualsFold
	opRange
)

// Condition is one predicate of the restricted filter vocabulary: equality,
// case-insensitive equality, or a closed/half-open range. Conditions are
// AND-combined. The filterable column set is declared by the calling entity
// service; this layer does not second-guess column names.
type Condition struct {
	column string
	op     filterOp
	value  any
	gte    any
	lte    any
}

// Equals matches rows where column equals value verbatim.
func Equals(column string, value any) Condition {
	return Condition{column: column, op: opEquals, value: value}
}

// EqualsFold matches rows where column equals value case-insensitively.
func EqualsFold(column string, value any) Condition {
	return Condition{column: column, op: opEqualsFold, value: value}
}

// Range matches rows where gte <= column <= lte. A nil bound leaves that side
// open, so date ranges can be "since" or "until" as well as closed.
func Range(column string, gte, lte any) Condition {
	return Condition{column: column, op: opRange, gte: gte, lte: lte}
}

func (c Condition) apply(q *bun.SelectQuery) *bun.SelectQuery {
	switch c.op {
	case opEquals:
		return q.Where("? = ?", bun.Ident(c.column), c.value)
	case opEqualsFold:
		return q.Where("lower(?) = lower(?)", bun.Ident(c.column), c.value)
	case opRange:
		if c.gte != nil {
			q = q.Where("? >= ?", bun.Ident(c.column), c.gte)
		}
		if c.lte != nil {
			q = q.Where("? <= ?", bun.Ident(c.column), c.lte)
		}
		return q
	}
	return q
}
