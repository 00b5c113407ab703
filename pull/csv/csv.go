// Package csv exposes CSV input as a pull producer of records.
package csv

import (
	"encoding/csv"
	"io"

	"github.com/lguimbarda/opt-pull/pull/core"
)

// ReaderOption configures the underlying csv.Reader.
type ReaderOption func(*csv.Reader)

// WithComma sets the field delimiter (default is ',').
func WithComma(comma rune) ReaderOption {
	return func(r *csv.Reader) {
		r.Comma = comma
	}
}

// WithComment sets the comment character. Lines beginning with this
// character are ignored.
func WithComment(comment rune) ReaderOption {
	return func(r *csv.Reader) {
		r.Comment = comment
	}
}

// WithFieldsPerRecord sets the expected number of fields per record.
// If positive, each record must have exactly that many fields.
// If 0, the number is set to the first record's field count.
// If negative, no check is made and records may have variable fields.
func WithFieldsPerRecord(n int) ReaderOption {
	return func(r *csv.Reader) {
		r.FieldsPerRecord = n
	}
}

// WithLazyQuotes allows lazy quotes in quoted fields.
func WithLazyQuotes(lazy bool) ReaderOption {
	return func(r *csv.Reader) {
		r.LazyQuotes = lazy
	}
}

// WithTrimLeadingSpace trims leading whitespace from fields.
func WithTrimLeadingSpace(trim bool) ReaderOption {
	return func(r *csv.Reader) {
		r.TrimLeadingSpace = trim
	}
}

// Reader pulls records from CSV input. A parse error ends the walk:
// Next returns None and Err reports the cause.
type Reader struct {
	r    *csv.Reader
	err  error
	done bool
}

// Records creates a record producer over the given input.
func Records(r io.Reader, opts ...ReaderOption) *Reader {
	cr := csv.NewReader(r)
	for _, opt := range opts {
		opt(cr)
	}
	return &Reader{r: cr}
}

// Next returns the next record, or None at end of input or on a parse
// error.
func (r *Reader) Next() core.Option[[]string] {
	if r.done {
		return core.None[[]string]()
	}
	record, err := r.r.Read()
	if err != nil {
		r.done = true
		if err != io.EOF {
			r.err = err
		}
		return core.None[[]string]()
	}
	return core.Some(record)
}

// Err returns the parse error that ended the walk early, if any.
func (r *Reader) Err() error { return r.err }
