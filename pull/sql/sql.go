// Package sql exposes database query results as pull producers, so
// rows can feed iterator pipelines row by row.
package sql

import (
	"context"
	"database/sql"

	"github.com/lguimbarda/opt-pull/pull/core"
)

// Scanner is a function that scans the current row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Rows pulls scanned values from a query result set. Exhaustion and
// failure share the None signal: once the result set ends or a scan
// fails, Next returns None and keeps returning it; check Err after the
// walk to tell the two apart, exactly as with database/sql itself.
type Rows[T any] struct {
	rows *sql.Rows
	scan Scanner[T]
	err  error
	done bool
}

// Query runs the query and returns a producer over its rows. The
// scanner is called once per row to convert it to the output type.
func Query[T any](ctx context.Context, db *sql.DB, query string, scan Scanner[T], args ...any) (*Rows[T], error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &Rows[T]{rows: rows, scan: scan}, nil
}

// Wrap adapts an existing result set. The producer takes over closing
// it.
func Wrap[T any](rows *sql.Rows, scan Scanner[T]) *Rows[T] {
	return &Rows[T]{rows: rows, scan: scan}
}

// Next scans and returns the next row, or None once the result set is
// exhausted or a row fails to scan.
func (r *Rows[T]) Next() core.Option[T] {
	if r.done {
		return core.None[T]()
	}
	if !r.rows.Next() {
		r.finish(r.rows.Err())
		return core.None[T]()
	}
	value, err := r.scan(r.rows)
	if err != nil {
		r.finish(err)
		return core.None[T]()
	}
	return core.Some(value)
}

// Err returns the error that ended the walk early, if any. It is nil
// after a clean exhaustion.
func (r *Rows[T]) Err() error { return r.err }

// Close releases the underlying result set. It is safe to call after
// exhaustion, which already closed it.
func (r *Rows[T]) Close() error {
	r.done = true
	return r.rows.Close()
}

func (r *Rows[T]) finish(err error) {
	r.done = true
	r.err = err
	r.rows.Close()
}
