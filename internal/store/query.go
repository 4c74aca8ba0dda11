package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Limits is the immutable pagination/batching configuration shared by every
// store. It is resolved once at startup.
type Limits struct {
	MaxLimit      int
	MinLimit      int
	DefaultOffset int
	BatchSize     int
}

// DefaultLimits mirrors the configuration fallbacks.
func DefaultLimits() Limits {
	return Limits{MaxLimit: 100, MinLimit: 10, DefaultOffset: 0, BatchSize: 1000}
}

// Match is one case-insensitive partial-match predicate against a (possibly
// joined) column. Columns come from per-resource code, never from the client.
type Match struct {
	Column string
	Value  string
}

// ListQuery is the normalized filter input for a list call. Zero values mean
// "not filtered"; the soft-delete state is always applied.
type ListQuery struct {
	Matches       []Match
	CreatedBefore *time.Time
	Deleted       bool
	SortBy        string
	Order         string
	Limit         *int
	Offset        *int
}

// buildConditions produces the AND-combined predicate set for a list query on
// the given table. Empty match values are simply omitted.
func buildConditions(table string, q ListQuery) sq.And {
	conds := sq.And{}

	deletedAt := table + ".deleted_at"
	if q.Deleted {
		conds = append(conds, sq.NotEq{deletedAt: nil})
	} else {
		conds = append(conds, sq.Eq{deletedAt: nil})
	}

	for _, m := range q.Matches {
		if m.Value == "" {
			continue
		}
		conds = append(conds, sq.ILike{m.Column: "%" + m.Value + "%"})
	}

	if q.CreatedBefore != nil {
		conds = append(conds, sq.LtOrEq{table + ".created_at": *q.CreatedBefore})
	}

	return conds
}

// orderClause resolves the sort column through the allow-list; unknown names
// fall back to the resource default so raw client input never reaches the SQL.
func orderClause(q ListQuery, allowed map[string]string, fallback string) string {
	column, ok := allowed[q.SortBy]
	if !ok {
		column = fallback
	}
	direction := "ASC"
	if strings.EqualFold(q.Order, "desc") {
		direction = "DESC"
	}
	return column + " " + direction
}

// page clamps the requested window: limit = min(requested ?? minLimit,
// maxLimit), never negative; offset defaults to the configured offset.
func (l Limits) page(q ListQuery) (int, int) {
	limit := l.MinLimit
	if q.Limit != nil {
		limit = *q.Limit
	}
	if limit > l.MaxLimit {
		limit = l.MaxLimit
	}
	if limit < 0 {
		limit = 0
	}

	offset := l.DefaultOffset
	if q.Offset != nil {
		offset = *q.Offset
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
