// internal/pipeline/order.go
package pipeline

import (
	"context"
	"fmt"
	"os"

	"rptidx-core/repeat"
	"rptidx-core/sa"
	"rptidx-core/seqbuf"
)

// Orderer is the minimal capability the pipeline needs to obtain suffix
// order for the sequence being scanned.
type Orderer interface {
	Order(ctx context.Context, seq seqbuf.Sequence) (sa.Stream, error)
}

// BuildOrder sorts the suffixes in memory.
type BuildOrder struct{}

func (BuildOrder) Order(ctx context.Context, seq seqbuf.Sequence) (sa.Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sa.NewSliceStream(sa.Build(seq)), nil
}

// FileOrder reads a precomputed order, one offset per line. The order must
// be that of the scanned sequence (the reverse complement in reverse mode).
type FileOrder struct {
	Path string
}

func (o FileOrder) Order(ctx context.Context, seq seqbuf.Sequence) (sa.Stream, error) {
	f, err := os.Open(o.Path)
	if err != nil {
		return nil, fmt.Errorf("suffix order: %w", err)
	}
	n := seq.Len()
	return &fileStream{
		TextStream: sa.NewTextStream(f),
		f:          f,
		limit:      n,
		seen:       make([]uint64, (n+1+63)/64),
	}, nil
}

// fileStream closes the file once the stream is drained. It rejects offsets
// past the end of the sequence, offsets seen twice, and a file that ends
// before every one of the limit+1 suffixes was listed.
type fileStream struct {
	*sa.TextStream
	f     *os.File
	limit int
	seen  []uint64 // bitset over 0..limit
	count int
	err   error
}

func (s *fileStream) Next() (int, bool) {
	if s.err != nil {
		return 0, false
	}
	off, ok := s.TextStream.Next()
	if !ok {
		s.close()
		if s.TextStream.Err() == nil {
			switch {
			case s.count == 0:
				s.err = fmt.Errorf("suffix order: %w", repeat.ErrEmptyOrder)
			case s.count != s.limit+1:
				s.err = fmt.Errorf("suffix order: %d offsets, want %d", s.count, s.limit+1)
			}
		}
		return 0, false
	}
	if off < 0 || off > s.limit {
		return s.fail(fmt.Errorf("suffix order: offset %d outside [0,%d]", off, s.limit))
	}
	w, bit := off/64, uint64(1)<<(off%64)
	if s.seen[w]&bit != 0 {
		return s.fail(fmt.Errorf("suffix order: offset %d listed twice", off))
	}
	s.seen[w] |= bit
	s.count++
	return off, true
}

func (s *fileStream) fail(err error) (int, bool) {
	s.err = err
	s.close()
	return 0, false
}

func (s *fileStream) close() {
	if s.f != nil {
		_ = s.f.Close()
		s.f = nil
	}
}

func (s *fileStream) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.TextStream.Err()
}
