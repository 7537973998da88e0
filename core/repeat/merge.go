package repeat

import (
	"fmt"
	"sort"
)

// Range is the joined-space span [Start, End) of one occurrence of group
// Group.
type Range struct {
	Start, End int
	Group      int
	Forward    bool
}

// Len is the span length.
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether o lies entirely inside r.
func (r Range) Contains(o Range) bool {
	return r.Start <= o.Start && o.End <= r.End
}

// Mirror returns the range in the coordinate space of the reverse
// complement of a sequence of length total.
func (r Range) Mirror(total int) Range {
	m := r
	m.Start = total - r.End
	m.End = m.Start + r.Len()
	return m
}

// MergeResult is the outcome of MergeRanges.
type MergeResult struct {
	Groups  []Group
	Ranges  []Range // survivors of the sweep, in sweep order
	Total   int     // ranges entering the sweep
	Removed int     // ranges absorbed by a containing range
}

// Flatten turns every occurrence of every group into a Range tagged with
// the group's index.
func Flatten(groups []Group) ([]Range, error) {
	out := make([]Range, 0, Occurrences(groups))
	for id := range groups {
		g := &groups[id]
		if len(g.Positions) == 0 {
			return nil, fmt.Errorf("flatten group %d (%q): %w", id, g.Seq, ErrEmptyGroup)
		}
		n := len(g.Seq)
		for _, p := range g.Positions {
			out = append(out, Range{Start: p.Off, End: p.Off + n, Group: id, Forward: p.Forward})
		}
	}
	return out, nil
}

// slot is a range in the sweep; live is false once it has been absorbed.
type slot struct {
	r    Range
	live bool
}

// sweepOrder sorts by end descending then start ascending, so a containing
// range precedes every range it contains. Group and strand break ties.
func sweepOrder(rs []Range) {
	sort.Slice(rs, func(i, j int) bool {
		a, b := rs[i], rs[j]
		if a.End != b.End {
			return a.End > b.End
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.Forward && !b.Forward
	})
}

// Subsume removes every range contained in another one and returns the
// survivors in sweep order together with the number removed. rs is
// reordered in place.
func Subsume(rs []Range) ([]Range, int) {
	sweepOrder(rs)
	slots := make([]slot, len(rs))
	for i, r := range rs {
		slots[i] = slot{r: r, live: true}
	}
	removed := 0
	for i := 0; i < len(slots); {
		j := i + 1
		for ; j < len(slots); j++ {
			if !slots[i].r.Contains(slots[j].r) {
				break
			}
			slots[j].live = false
			removed++
		}
		i = j
	}
	out := make([]Range, 0, len(slots)-removed)
	for _, s := range slots {
		if s.live {
			out = append(out, s.r)
		}
	}
	return out, removed
}

// Regroup rebuilds groups from surviving ranges. Each surviving group id
// becomes one group carrying the representative of groups[id]; ids without
// survivors disappear. The result is ordered by original group id.
func Regroup(groups []Group, survivors []Range) ([]Group, error) {
	rs := append([]Range(nil), survivors...)
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].Group != rs[j].Group {
			return rs[i].Group < rs[j].Group
		}
		return rs[i].Start < rs[j].Start
	})
	var out []Group
	for i := 0; i < len(rs); {
		id := rs[i].Group
		if id < 0 || id >= len(groups) {
			return nil, fmt.Errorf("repeat: range refers to unknown group %d", id)
		}
		j := i
		var pos []Coord
		for ; j < len(rs) && rs[j].Group == id; j++ {
			pos = append(pos, Coord{Off: rs[j].Start, Forward: rs[j].Forward})
		}
		if len(pos) == 0 {
			return nil, fmt.Errorf("regroup %d: %w", id, ErrEmptyGroup)
		}
		sortCoords(pos)
		out = append(out, Group{Seq: groups[id].Seq, Positions: pos})
		i = j
	}
	return out, nil
}

// MergeRanges flattens groups into ranges, removes contained occurrences
// and regroups the survivors. An input without occurrences yields an empty
// result.
func MergeRanges(groups []Group) (MergeResult, error) {
	if Occurrences(groups) == 0 {
		return MergeResult{}, nil
	}
	rs, err := Flatten(groups)
	if err != nil {
		return MergeResult{}, err
	}
	res := MergeResult{Total: len(rs)}
	res.Ranges, res.Removed = Subsume(rs)
	res.Groups, err = Regroup(groups, res.Ranges)
	if err != nil {
		return MergeResult{}, err
	}
	return res, nil
}
