package store

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"refbase.app/api-server/core/db"
)

type capturedQuery struct {
	sql  string
	args []any
}

// fakeQuerier records every statement and answers from function fields, so
// specs can assert the generated SQL without a live database.
type fakeQuerier struct {
	captured []capturedQuery

	execFn  func(sql string, args []any) (pgconn.CommandTag, error)
	queryFn func(sql string, args []any) (pgx.Rows, error)
	rowFn   func(sql string, args []any) pgx.Row
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	q.captured = append(q.captured, capturedQuery{sql: sql, args: arguments})
	if q.execFn != nil {
		return q.execFn(sql, arguments)
	}
	return pgconn.CommandTag{}, nil
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.captured = append(q.captured, capturedQuery{sql: sql, args: args})
	if q.queryFn != nil {
		return q.queryFn(sql, args)
	}
	return &fakeRows{}, nil
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.captured = append(q.captured, capturedQuery{sql: sql, args: args})
	if q.rowFn != nil {
		return q.rowFn(sql, args)
	}
	return fakeRow{err: pgx.ErrNoRows}
}

// fakeDB satisfies Database. WithTx hands the transactional querier to the
// callback so specs can distinguish pre-transaction reads from in-transaction
// statements.
type fakeDB struct {
	querier   *fakeQuerier
	txQuerier *fakeQuerier
	txCalls   int
}

func (d *fakeDB) Querier() db.Querier {
	return d.querier
}

func (d *fakeDB) WithTx(_ context.Context, fn func(q db.Querier) error) error {
	d.txCalls++
	q := d.txQuerier
	if q == nil {
		q = d.querier
	}
	return fn(q)
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assignRow(dest, r.values)
}

type fakeRows struct {
	rows    [][]any
	idx     int
	err     error
	scanErr error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	return assignRow(dest, r.rows[r.idx-1])
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.idx-1], nil
}

// assignRow copies fake column values into scan destinations, promoting plain
// values to pointers where the destination is nullable.
func assignRow(dest []any, src []any) error {
	if len(dest) != len(src) {
		return fmt.Errorf("scan expected %d values, fake row has %d", len(dest), len(src))
	}
	for i := range dest {
		dv := reflect.ValueOf(dest[i]).Elem()
		if src[i] == nil {
			dv.Set(reflect.Zero(dv.Type()))
			continue
		}
		sv := reflect.ValueOf(src[i])
		switch {
		case sv.Type().AssignableTo(dv.Type()):
			dv.Set(sv)
		case dv.Kind() == reflect.Pointer && sv.Type().AssignableTo(dv.Type().Elem()):
			p := reflect.New(dv.Type().Elem())
			p.Elem().Set(sv)
			dv.Set(p)
		case sv.Type().ConvertibleTo(dv.Type()):
			dv.Set(sv.Convert(dv.Type()))
		default:
			return fmt.Errorf("cannot scan %T into %T", src[i], dest[i])
		}
	}
	return nil
}
