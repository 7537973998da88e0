// Package lcp computes longest common prefixes between two suffixes of a
// joined sequence without letting a prefix run past the end of the fragment
// each suffix starts in.
package lcp

import (
	"rptidx-core/fragmap"
	"rptidx-core/seqbuf"
)

// Oracle answers LCP queries over one joined sequence.
//
// In reverse mode seq is the reverse complement of the joined sequence while
// frags still describes the forward sequence; offsets are mirrored before the
// fragment lookup.
type Oracle struct {
	seq     seqbuf.Sequence
	frags   *fragmap.Map
	forward bool
}

// New returns an Oracle. seq and frags must describe the same joined length.
func New(seq seqbuf.Sequence, frags *fragmap.Map, forward bool) *Oracle {
	return &Oracle{seq: seq, frags: frags, forward: forward}
}

// Forward reports the strand the oracle works on.
func (o *Oracle) Forward() bool { return o.forward }

// bound returns the exclusive end of the fragment containing pos, in the
// oracle's coordinate space.
func (o *Oracle) bound(pos int) (int, bool) {
	n := o.seq.Len()
	if o.forward {
		idx, ok := o.frags.Locate(pos)
		if !ok {
			return 0, false
		}
		return o.frags.Fragment(idx).End(), true
	}
	idx, ok := o.frags.Locate(n - pos - 1)
	if !ok {
		return 0, false
	}
	return n - o.frags.Fragment(idx).Start, true
}

// LCP returns the common prefix length of the suffixes at a and b, clipped to
// both fragments. Offsets at or past the end, or outside any fragment, give 0.
func (o *Oracle) LCP(a, b int) int {
	n := o.seq.Len()
	if a < 0 || b < 0 || a >= n || b >= n {
		return 0
	}
	aEnd, ok := o.bound(a)
	if !ok {
		return 0
	}
	bEnd, ok := o.bound(b)
	if !ok {
		return 0
	}
	k := 0
	for a+k < aEnd && b+k < bEnd && o.seq.At(a+k) == o.seq.At(b+k) {
		k++
	}
	return k
}
