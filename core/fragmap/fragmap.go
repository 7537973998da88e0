// Package fragmap maps offsets in the joined sequence back to the original
// sequences they were cut from.
//
// A joined sequence is the concatenation of every unambiguous run of every
// input sequence. Each run is a Fragment; the list of fragments is ordered by
// joined offset and closed by a zero-length terminator whose Start equals the
// joined length.
package fragmap

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultCacheSize is the number of recently hit fragments kept for Locate.
const DefaultCacheSize = 4

var ErrNames = errors.New("fragmap: not enough sequence names")

// Record describes one run of real sequence as produced by the reference
// loader: Off ambiguous bases precede Len real bases. First marks the first
// record of a new original sequence.
type Record struct {
	Len   int
	Off   int
	First bool
}

// Fragment is one contiguous run in joined space.
type Fragment struct {
	Start      int // offset in joined space
	Length     int
	StartInSeq int // offset within the original sequence
	SeqID      int
	First      bool
}

// End is the joined offset one past the fragment.
func (f Fragment) End() int { return f.Start + f.Length }

// Contains reports whether pos lies inside the fragment.
func (f Fragment) Contains(pos int) bool {
	return f.Start <= pos && pos < f.Start+f.Length
}

// Position is a location in an original sequence.
type Position struct {
	SeqID int
	Name  string
	Pos   int
}

// Map is the joined-offset to original-coordinate translator.
// A Map is not safe for concurrent use: Locate updates the lookaside cache.
type Map struct {
	frags []Fragment
	names []string
	nseq  int
	cache ring
}

// Build computes the fragment list from records. names must hold one entry
// per sequence (one per First record).
func Build(records []Record, names []string) (*Map, error) {
	return BuildWithCache(records, names, DefaultCacheSize)
}

// BuildWithCache is Build with an explicit cache capacity; 0 disables the
// cache.
func BuildWithCache(records []Record, names []string, cacheSize int) (*Map, error) {
	if cacheSize < 0 {
		return nil, fmt.Errorf("fragmap: negative cache size %d", cacheSize)
	}
	n := 0
	for _, r := range records {
		if r.Len < 0 || r.Off < 0 {
			return nil, fmt.Errorf("fragmap: negative record %+v", r)
		}
		if r.Len > 0 {
			n++
		}
	}

	m := &Map{
		frags: make([]Fragment, 0, n+1),
		cache: newRing(cacheSize),
	}
	seqID := -1
	joined, inSeq := 0, 0
	for _, r := range records {
		if r.First {
			seqID++
			inSeq = 0
		}
		if r.Len == 0 {
			inSeq += r.Off
			continue
		}
		if seqID < 0 {
			return nil, errors.New("fragmap: first record is not marked first")
		}
		m.frags = append(m.frags, Fragment{
			Start:      joined,
			Length:     r.Len,
			StartInSeq: inSeq + r.Off,
			SeqID:      seqID,
			First:      r.First,
		})
		joined += r.Len
		inSeq += r.Off + r.Len
	}
	// terminator
	m.frags = append(m.frags, Fragment{Start: joined, StartInSeq: inSeq, SeqID: seqID})

	m.nseq = seqID + 1
	if len(names) < m.nseq {
		return nil, fmt.Errorf("%w: %d sequences, %d names", ErrNames, m.nseq, len(names))
	}
	m.names = append([]string(nil), names...)
	return m, nil
}

// Len is the total joined length.
func (m *Map) Len() int { return m.frags[len(m.frags)-1].Start }

// NumSequences is the number of original sequences.
func (m *Map) NumSequences() int { return m.nseq }

// Names returns the sequence names, indexed by SeqID.
func (m *Map) Names() []string { return m.names }

// Fragments returns the fragment list including the terminator. The slice
// must not be modified.
func (m *Map) Fragments() []Fragment { return m.frags }

// Fragment returns fragment i.
func (m *Map) Fragment(i int) Fragment { return m.frags[i] }

// Locate returns the index of the fragment containing pos. ok is false when
// pos is not covered by any fragment.
func (m *Map) Locate(pos int) (idx int, ok bool) {
	if idx, ok = m.cache.lookup(m.frags, pos); ok {
		return idx, true
	}
	// greatest index whose Start <= pos
	idx = sort.Search(len(m.frags), func(i int) bool { return m.frags[i].Start > pos }) - 1
	if idx < 0 || !m.frags[idx].Contains(pos) {
		return -1, false
	}
	m.cache.insert(idx)
	return idx, true
}

// ToOriginal translates a joined offset to a position in its original
// sequence.
func (m *Map) ToOriginal(pos int) (Position, bool) {
	idx, ok := m.Locate(pos)
	if !ok {
		return Position{}, false
	}
	f := m.frags[idx]
	return Position{
		SeqID: f.SeqID,
		Name:  m.names[f.SeqID],
		Pos:   f.StartInSeq + (pos - f.Start),
	}, true
}

// ToJoined is the inverse of ToOriginal. ok is false when the position falls
// in a gap of the original sequence or outside it.
func (m *Map) ToJoined(seqID, pos int) (int, bool) {
	frags := m.frags[:len(m.frags)-1]
	i := sort.Search(len(frags), func(i int) bool {
		f := frags[i]
		if f.SeqID != seqID {
			return f.SeqID > seqID
		}
		return f.StartInSeq+f.Length > pos
	})
	if i == len(frags) {
		return 0, false
	}
	f := frags[i]
	if f.SeqID != seqID || pos < f.StartInSeq {
		return 0, false
	}
	return f.Start + (pos - f.StartInSeq), true
}

// Project translates an occurrence of the given length to forward original
// coordinates. Occurrences found on the reverse-complement strand carry
// offsets in the mirrored space and are flipped first.
func (m *Map) Project(off, length int, forward bool) (Position, bool) {
	if !forward {
		off = m.Len() - off - length
	}
	return m.ToOriginal(off)
}
