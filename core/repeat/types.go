// Package repeat finds groups of repeated substrings in a joined sequence
// from its suffix-array order, merges contained occurrences, and optionally
// clusters groups whose representatives are within an edit-distance budget.
package repeat

import (
	"errors"
	"sort"
)

// ErrEmptyGroup reports a group without positions where one is required.
var ErrEmptyGroup = errors.New("repeat: group has no positions")

// ErrEmptyOrder reports a suffix order stream that yielded no offsets.
var ErrEmptyOrder = errors.New("repeat: empty suffix order")

// Coord is one occurrence of a repeat in joined space.
type Coord struct {
	Off     int
	Forward bool
}

// Group is a set of occurrences sharing a representative sequence.
type Group struct {
	Seq       string
	Positions []Coord
	AltSeqs   []string

	absorbed bool
}

// Empty reports whether the group was absorbed into another one.
func (g *Group) Empty() bool { return g.absorbed }

// absorb records other's representative as an alternate of g and
// tombstones other.
func (g *Group) absorb(other *Group) {
	g.AltSeqs = append(g.AltSeqs, other.Seq)
	g.AltSeqs = append(g.AltSeqs, other.AltSeqs...)
	other.absorbed = true
}

func sortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Off < cs[j].Off })
}

// Compact drops absorbed groups, keeping order.
func Compact(groups []Group) []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		if !g.absorbed {
			out = append(out, g)
		}
	}
	return out
}

// Occurrences counts positions over all groups.
func Occurrences(groups []Group) int {
	n := 0
	for i := range groups {
		n += len(groups[i].Positions)
	}
	return n
}
