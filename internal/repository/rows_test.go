package repository

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作：單列與多列掃描 ---------- */

func assign(dest, src any) {
	switch d := dest.(type) {
	case *int:
		*d = src.(int)
	case *string:
		*d = src.(string)
	case **string:
		*d = src.(*string)
	case *time.Time:
		*d = src.(time.Time)
	case **time.Time:
		*d = src.(*time.Time)
	case *bool:
		*d = src.(bool)
	default:
		panic("assign: unsupported dest type")
	}
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		panic("fakeRow.Scan: unexpected dest count")
	}
	for i := range dest {
		assign(dest[i], r.vals[i])
	}
	return nil
}

type fakeRows struct {
	rows    [][]any
	idx     int
	scanErr error
	rowsErr error
}

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
	row := r.rows[r.idx-1]
	if len(dest) != len(row) {
		panic("fakeRows.Scan: unexpected dest count")
	}
	for i := range dest {
		assign(dest[i], row[i])
	}
	return nil
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.rowsErr }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }
