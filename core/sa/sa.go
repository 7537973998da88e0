// Package sa supplies suffix-array order to the repeat scanner.
//
// The scanner only needs the order as a stream, so anything that can emit
// joined offsets one at a time satisfies Stream: an in-memory array, a
// precomputed text file, or a blockwise builder.
package sa

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/twotwotwo/sorts"

	"rptidx-core/seqbuf"
)

// Stream yields joined offsets in suffix-array order.
// Next returns ok == false at the end of the stream or on error; Err reports
// the error, if any.
type Stream interface {
	Next() (off int, ok bool)
	Err() error
}

// SliceStream streams an in-memory suffix array.
type SliceStream struct {
	sa []int
	i  int
}

// NewSliceStream returns a Stream over sa.
func NewSliceStream(sa []int) *SliceStream { return &SliceStream{sa: sa} }

func (s *SliceStream) Next() (int, bool) {
	if s.i >= len(s.sa) {
		return 0, false
	}
	off := s.sa[s.i]
	s.i++
	return off, true
}

func (s *SliceStream) Err() error { return nil }

// TextStream reads one decimal offset per line. Blank lines and lines
// starting with '#' are skipped.
type TextStream struct {
	sc   *bufio.Scanner
	line int
	err  error
}

// NewTextStream returns a Stream reading offsets from r.
func NewTextStream(r io.Reader) *TextStream {
	return &TextStream{sc: bufio.NewScanner(r)}
}

func (s *TextStream) Next() (int, bool) {
	if s.err != nil {
		return 0, false
	}
	for s.sc.Scan() {
		s.line++
		txt := strings.TrimSpace(s.sc.Text())
		if txt == "" || txt[0] == '#' {
			continue
		}
		off, err := strconv.Atoi(txt)
		if err != nil || off < 0 {
			s.err = fmt.Errorf("sa: line %d: bad offset %q", s.line, txt)
			return 0, false
		}
		return off, true
	}
	if err := s.sc.Err(); err != nil {
		s.err = fmt.Errorf("sa: read: %w", err)
	}
	return 0, false
}

func (s *TextStream) Err() error { return s.err }

// suffixes sorts suffix start offsets of seq lexicographically. The empty
// suffix (offset seq.Len()) sorts first; a proper prefix sorts before any
// longer suffix sharing it.
type suffixes struct {
	seq seqbuf.Sequence
	idx []int
}

func (s suffixes) Len() int      { return len(s.idx) }
func (s suffixes) Swap(i, j int) { s.idx[i], s.idx[j] = s.idx[j], s.idx[i] }
func (s suffixes) Less(i, j int) bool {
	a, b := s.idx[i], s.idx[j]
	n := s.seq.Len()
	for a < n && b < n {
		ca, cb := s.seq.At(a), s.seq.At(b)
		if ca != cb {
			return ca < cb
		}
		a++
		b++
	}
	return a == n && b != n
}

// Build returns the suffix array of seq, including the empty suffix at
// offset seq.Len(). It compares suffixes directly and is meant for
// moderate inputs; genome-scale callers should supply a Stream from a
// dedicated builder.
func Build(seq seqbuf.Sequence) []int {
	idx := make([]int, seq.Len()+1)
	for i := range idx {
		idx[i] = i
	}
	sorts.Quicksort(suffixes{seq: seq, idx: idx})
	return idx
}
