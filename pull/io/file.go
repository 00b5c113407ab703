// Package io exposes line-oriented input as a pull producer.
package io

import (
	"bufio"
	"io"
	"os"

	"github.com/lguimbarda/opt-pull/pull/core"
)

// LineReader pulls lines from its input, without trailing newlines. A
// read error ends the walk: Next returns None and Err reports the
// cause.
type LineReader struct {
	s    *bufio.Scanner
	c    io.Closer
	err  error
	done bool
}

// Lines creates a line producer over the given reader.
func Lines(r io.Reader) *LineReader {
	return &LineReader{s: bufio.NewScanner(r)}
}

// OpenLines opens the file at path and returns a line producer over
// it. The caller should Close the producer when done; exhaustion also
// closes the file.
func OpenLines(path string) (*LineReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	lr := Lines(f)
	lr.c = f
	return lr, nil
}

// Next returns the next line, or None at end of input or on a read
// error.
func (r *LineReader) Next() core.Option[string] {
	if r.done {
		return core.None[string]()
	}
	if !r.s.Scan() {
		r.done = true
		r.err = r.s.Err()
		r.close()
		return core.None[string]()
	}
	return core.Some(r.s.Text())
}

// Err returns the read error that ended the walk early, if any.
func (r *LineReader) Err() error { return r.err }

// Close releases the underlying file, when the producer owns one.
func (r *LineReader) Close() error {
	r.done = true
	return r.close()
}

func (r *LineReader) close() error {
	if r.c == nil {
		return nil
	}
	c := r.c
	r.c = nil
	return c.Close()
}
