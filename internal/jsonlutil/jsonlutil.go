// Package jsonlutil streams values as JSON lines from a background goroutine.
package jsonlutil

import (
	"bufio"
	"context"
	"encoding/json"
	"io"

	"rptidx/internal/jsonutil"
)

// Writer encodes values of type T one per line on its own goroutine.
type Writer[T any] struct {
	in   chan T
	done chan result
}

type result struct {
	n   int
	err error
}

// Start launches the encoder. encode converts one value to its wire type and
// encodes it; errors for which quiet returns true are dropped, so a reader
// that goes away early does not fail the writer.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, quiet func(error) bool) *Writer[T] {
	if bufSize <= 0 {
		bufSize = 64
	}
	w := &Writer[T]{in: make(chan T, bufSize), done: make(chan result, 1)}

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		enc := jsonutil.NewEncoder(bw, "")
		var r result
		for v := range w.in {
			if r.err != nil {
				continue // drain so Send never blocks
			}
			if err := encode(enc, v); err != nil {
				r.err = err
				continue
			}
			r.n++
		}
		if r.err == nil {
			r.err = bw.Flush()
		}
		if r.err != nil && quiet != nil && quiet(r.err) {
			r.err = nil
		}
		w.done <- r
	}()
	return w
}

// Send queues v. It returns ctx.Err() if ctx ends first.
func (w *Writer[T]) Send(ctx context.Context, v T) error {
	select {
	case w.in <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close waits for the queue to drain and returns the number of values
// written.
func (w *Writer[T]) Close() (int, error) {
	close(w.in)
	r := <-w.done
	return r.n, r.err
}
