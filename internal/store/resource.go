package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"refbase.app/api-server/common/logger"
	"refbase.app/api-server/core/db"
)

// Database is the slice of core/db the stores need. *db.DB satisfies it; tests
// substitute fakes.
type Database interface {
	Querier() db.Querier
	WithTx(ctx context.Context, fn func(q db.Querier) error) error
}

// Page is one page of list results plus the total number of rows matching the
// filter before pagination. An empty page reports Count 0 even when matching
// rows exist beyond the offset; the total rides a window aggregate on the
// returned rows.
type Page[L any] struct {
	Data   []L   `json:"data"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Count  int64 `json:"count"`
}

// Outcome reports a bulk mutation: a summary line and the ids the statements
// actually affected, in statement order.
type Outcome[K comparable] struct {
	Message string
	IDs     []K
}

// CreatedBatch reports a bulk insert.
type CreatedBatch[T any] struct {
	Message string `json:"message"`
	Data    []T    `json:"data"`
}

// Resource is the generic CRUD engine. One instance per resource, configured
// by a Descriptor; all operations share the soft-delete lifecycle: active
// (deleted_at null) -> soft-deleted (deleted_at set) -> restored or
// permanently removed. Hard deletion is only permitted from the soft-deleted
// state.
type Resource[T, L, C any, K comparable] struct {
	db     Database
	desc   Descriptor[T, L, C, K]
	limits Limits
}

func NewResource[T, L, C any, K comparable](database Database, desc Descriptor[T, L, C, K], limits Limits) *Resource[T, L, C, K] {
	if limits.BatchSize <= 0 {
		limits.BatchSize = DefaultLimits().BatchSize
	}
	return &Resource[T, L, C, K]{db: database, desc: desc, limits: limits}
}

// Create inserts one row and returns the generated id. created_at is assigned
// by the database; updated_at is set here.
func (r *Resource[T, L, C, K]) Create(ctx context.Context, in C) (K, error) {
	var id K

	query, args, err := psql.Insert(r.desc.Table).
		Columns(append(append([]string{}, r.desc.InsertColumns...), "updated_at")...).
		Values(append(r.desc.InsertValues(in), time.Now().UTC())...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return id, err
	}

	if err := r.db.Querier().QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return id, err
	}
	return id, nil
}

// Update applies a partial column patch to one row, bumping updated_at.
func (r *Resource[T, L, C, K]) Update(ctx context.Context, id K, patch map[string]any) (*T, error) {
	query, args, err := psql.Update(r.desc.Table).
		SetMap(patch).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix(r.returning()).
		ToSql()
	if err != nil {
		return nil, err
	}

	entity, err := r.desc.ScanEntity(r.db.Querier().QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, newNotFound(r.desc.Singular, id)
		}
		return nil, err
	}
	return entity, nil
}

// FindOne fetches one row by id in the requested soft-delete state, selecting
// only the whitelisted display columns.
func (r *Resource[T, L, C, K]) FindOne(ctx context.Context, id K, deleted bool) (*T, error) {
	qb := psql.Select(r.desc.Columns...).
		From(r.desc.Table).
		Where(sq.Eq{"id": id})
	if deleted {
		qb = qb.Where(sq.NotEq{"deleted_at": nil})
	} else {
		qb = qb.Where(sq.Eq{"deleted_at": nil})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}

	entity, err := r.desc.ScanEntity(r.db.Querier().QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, newNotFound(r.desc.Singular, id)
		}
		return nil, err
	}
	return entity, nil
}

// FindAll retrieves one page plus the total matching count in a single round
// trip via COUNT(*) OVER().
func (r *Resource[T, L, C, K]) FindAll(ctx context.Context, q ListQuery) (*Page[L], error) {
	limit, offset := r.limits.page(q)

	qb := psql.Select(append(append([]string{}, r.desc.ListColumns...), "COUNT(*) OVER() AS total_count")...).
		From(r.desc.Table)
	for _, join := range r.desc.Joins {
		qb = qb.LeftJoin(join.Table + " ON " + join.On)
	}
	query, args, err := qb.
		Where(buildConditions(r.desc.Table, q)).
		OrderBy(orderClause(q, r.desc.SortColumns, r.desc.DefaultSort)).
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Querier().Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	page := &Page[L]{Data: make([]L, 0), Limit: limit, Offset: offset}
	for rows.Next() {
		item, total, err := r.desc.ScanList(rows)
		if err != nil {
			return nil, err
		}
		page.Data = append(page.Data, *item)
		page.Count = total
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return page, nil
}

// Remove soft-deletes one active row and returns it.
func (r *Resource[T, L, C, K]) Remove(ctx context.Context, id K) (*T, error) {
	if _, err := r.FindOne(ctx, id, false); err != nil {
		return nil, err
	}
	return r.setDeletedAt(ctx, id, time.Now().UTC())
}

// Restore clears the deletion mark on one soft-deleted row and returns it.
func (r *Resource[T, L, C, K]) Restore(ctx context.Context, id K) (*T, error) {
	if _, err := r.FindOne(ctx, id, true); err != nil {
		return nil, err
	}
	return r.setDeletedAt(ctx, id, nil)
}

// Delete permanently removes one soft-deleted row and returns its last state.
func (r *Resource[T, L, C, K]) Delete(ctx context.Context, id K) (*T, error) {
	if _, err := r.FindOne(ctx, id, true); err != nil {
		return nil, err
	}

	query, args, err := psql.Delete(r.desc.Table).
		Where(sq.Eq{"id": id}).
		Suffix(r.returning()).
		ToSql()
	if err != nil {
		return nil, err
	}

	entity, err := r.desc.ScanEntity(r.db.Querier().QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, newNotFound(r.desc.Singular, id)
		}
		return nil, err
	}
	return entity, nil
}

// BulkCreate inserts the payloads in batches inside one transaction,
// returning every created row. Creation has no existence precondition, so
// only the empty-input guard applies.
func (r *Resource[T, L, C, K]) BulkCreate(ctx context.Context, ins []C) (*CreatedBatch[T], error) {
	if len(ins) == 0 {
		return nil, NewInvalidArgument("No %s provided for mass create", r.desc.Plural)
	}

	sc := logger.StartSpan(ctx, "store."+r.desc.Plural+".bulk_create")
	defer sc.End()
	ctx = sc.Context()

	now := time.Now().UTC()
	created := make([]T, 0, len(ins))

	err := r.db.WithTx(ctx, func(q db.Querier) error {
		for start := 0; start < len(ins); start += r.limits.BatchSize {
			end := min(start+r.limits.BatchSize, len(ins))

			qb := psql.Insert(r.desc.Table).
				Columns(append(append([]string{}, r.desc.InsertColumns...), "updated_at")...)
			for _, in := range ins[start:end] {
				qb = qb.Values(append(r.desc.InsertValues(in), now)...)
			}
			query, args, err := qb.Suffix(r.returning()).ToSql()
			if err != nil {
				return err
			}

			rows, err := q.Query(ctx, query, args...)
			if err != nil {
				return err
			}
			for rows.Next() {
				entity, err := r.desc.ScanEntity(rows)
				if err != nil {
					rows.Close()
					return err
				}
				created = append(created, *entity)
			}
			rows.Close()
			if err := rows.Err(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		sc.RecordError(err)
		return nil, err
	}

	return &CreatedBatch[T]{
		Message: fmt.Sprintf("Successfully created %d %s", len(created), r.desc.Plural),
		Data:    created,
	}, nil
}

// BulkRemove soft-deletes the given ids in batches inside one transaction.
func (r *Resource[T, L, C, K]) BulkRemove(ctx context.Context, ids []K) (*Outcome[K], error) {
	valid, err := r.validateIDs(ctx, ids, false)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	affected, err := r.mutateBatches(ctx, valid, func(chunk []K) (string, []any, error) {
		return psql.Update(r.desc.Table).
			Set("deleted_at", now).
			Set("updated_at", now).
			Where(sq.Eq{"id": chunk}).
			Suffix("RETURNING id").
			ToSql()
	})
	if err != nil {
		return nil, err
	}

	return &Outcome[K]{
		Message: fmt.Sprintf("Soft-deleted %d %s in batches", len(affected), r.desc.Plural),
		IDs:     affected,
	}, nil
}

// BulkRestore clears the deletion mark on the given ids in batches inside one
// transaction. Ids must currently be soft-deleted.
func (r *Resource[T, L, C, K]) BulkRestore(ctx context.Context, ids []K) (*Outcome[K], error) {
	valid, err := r.validateIDs(ctx, ids, true)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	affected, err := r.mutateBatches(ctx, valid, func(chunk []K) (string, []any, error) {
		return psql.Update(r.desc.Table).
			Set("deleted_at", nil).
			Set("updated_at", now).
			Where(sq.Eq{"id": chunk}).
			Suffix("RETURNING id").
			ToSql()
	})
	if err != nil {
		return nil, err
	}

	return &Outcome[K]{
		Message: fmt.Sprintf("Restored %d %s in batches", len(affected), r.desc.Plural),
		IDs:     affected,
	}, nil
}

// BulkDelete permanently removes the given soft-deleted ids in batches inside
// one transaction.
func (r *Resource[T, L, C, K]) BulkDelete(ctx context.Context, ids []K) (*Outcome[K], error) {
	valid, err := r.validateIDs(ctx, ids, true)
	if err != nil {
		return nil, err
	}

	affected, err := r.mutateBatches(ctx, valid, func(chunk []K) (string, []any, error) {
		return psql.Delete(r.desc.Table).
			Where(sq.Eq{"id": chunk}).
			Suffix("RETURNING id").
			ToSql()
	})
	if err != nil {
		return nil, err
	}

	// Trailing period matches the established response format.
	return &Outcome[K]{
		Message: fmt.Sprintf("Permanently deleted %d %s in batches.", len(affected), r.desc.Plural),
		IDs:     affected,
	}, nil
}

// validateIDs normalizes a bulk id list (set semantics: duplicates collapse)
// and checks that at least one id exists in the expected soft-delete state.
// The mutation still runs over the full requested list; rows absent from the
// expected state simply fall out of the affected-id report.
func (r *Resource[T, L, C, K]) validateIDs(ctx context.Context, ids []K, deleted bool) ([]K, error) {
	if len(ids) == 0 {
		return nil, NewInvalidArgument("IDs array is required")
	}

	seen := make(map[K]struct{}, len(ids))
	unique := make([]K, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	qb := psql.Select("id").
		From(r.desc.Table).
		Where(sq.Eq{"id": unique})
	if deleted {
		qb = qb.Where(sq.NotEq{"deleted_at": nil})
	} else {
		qb = qb.Where(sq.Eq{"deleted_at": nil})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Querier().Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	existing, err := collectIDs[K](rows)
	if err != nil {
		return nil, err
	}

	if len(existing) == 0 {
		return nil, newNotFound(r.desc.Singular, joinIDs(unique))
	}
	return unique, nil
}

// mutateBatches runs one mutating statement per fixed-size chunk, strictly
// sequentially inside a single transaction, accumulating the RETURNING ids.
// Any statement error aborts the whole transaction.
func (r *Resource[T, L, C, K]) mutateBatches(ctx context.Context, ids []K, build func(chunk []K) (string, []any, error)) ([]K, error) {
	sc := logger.StartSpan(ctx, "store."+r.desc.Plural+".bulk_mutation")
	defer sc.End()
	ctx = sc.Context()

	affected := make([]K, 0, len(ids))

	err := r.db.WithTx(ctx, func(q db.Querier) error {
		for start := 0; start < len(ids); start += r.limits.BatchSize {
			end := min(start+r.limits.BatchSize, len(ids))

			query, args, err := build(ids[start:end])
			if err != nil {
				return err
			}

			rows, err := q.Query(ctx, query, args...)
			if err != nil {
				return err
			}
			chunkIDs, err := collectIDs[K](rows)
			if err != nil {
				return err
			}
			affected = append(affected, chunkIDs...)
		}
		return nil
	})
	if err != nil {
		sc.RecordError(err)
		return nil, err
	}
	return affected, nil
}

func (r *Resource[T, L, C, K]) setDeletedAt(ctx context.Context, id K, deletedAt any) (*T, error) {
	query, args, err := psql.Update(r.desc.Table).
		Set("deleted_at", deletedAt).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix(r.returning()).
		ToSql()
	if err != nil {
		return nil, err
	}

	entity, err := r.desc.ScanEntity(r.db.Querier().QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, newNotFound(r.desc.Singular, id)
		}
		return nil, err
	}
	return entity, nil
}

func (r *Resource[T, L, C, K]) returning() string {
	return "RETURNING " + strings.Join(r.desc.Columns, ", ")
}

func collectIDs[K comparable](rows pgx.Rows) ([]K, error) {
	defer rows.Close()

	var out []K
	for rows.Next() {
		var id K
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func joinIDs[K comparable](ids []K) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ", ")
}
