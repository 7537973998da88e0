package output

import (
	"errors"
	"fmt"
	"sort"

	"rptidx-core/fragmap"
	"rptidx-core/repeat"
)

// ErrUntranslatable reports an occurrence that no fragment covers.
var ErrUntranslatable = errors.New("output: occurrence outside every fragment")

// Occurrence is one group occurrence in original coordinates.
type Occurrence struct {
	Name   string
	Pos    int  // leftmost forward base in the original sequence
	Strand byte // '+' or '-'
	Joined int  // forward joined offset
}

// Entry is a group ready for rendering.
type Entry struct {
	ID        int
	Seq       string
	RepOffset int // offset of Seq in the concatenated rep record
	AltSeqs   []string
	Occ       []Occurrence
}

// Translate maps groups to entries in the given order. IDs count from 0 and
// representative offsets accumulate in the same order, so the info file
// indexes into the concatenated rep record. Occurrences are sorted by
// forward joined offset.
func Translate(groups []repeat.Group, frags *fragmap.Map) ([]Entry, error) {
	total := frags.Len()
	out := make([]Entry, 0, len(groups))
	off := 0
	for i, g := range groups {
		e := Entry{ID: i, Seq: g.Seq, RepOffset: off, AltSeqs: g.AltSeqs}
		off += len(g.Seq)
		e.Occ = make([]Occurrence, 0, len(g.Positions))
		for _, p := range g.Positions {
			pos, ok := frags.Project(p.Off, len(g.Seq), p.Forward)
			if !ok {
				return nil, fmt.Errorf("group %d at %d: %w", i, p.Off, ErrUntranslatable)
			}
			o := Occurrence{Name: pos.Name, Pos: pos.Pos, Strand: '+', Joined: p.Off}
			if !p.Forward {
				o.Strand = '-'
				o.Joined = total - p.Off - len(g.Seq)
			}
			e.Occ = append(e.Occ, o)
		}
		sort.Slice(e.Occ, func(a, b int) bool { return e.Occ[a].Joined < e.Occ[b].Joined })
		out = append(out, e)
	}
	return out, nil
}
