// internal/common/sort.go
package common

import (
	"sort"

	"rptidx-core/repeat"
)

// FirstForward is the smallest forward joined offset of g's occurrences.
// total is the joined length, used to mirror reverse-strand offsets.
func FirstForward(g repeat.Group, total int) int {
	best := -1
	for _, p := range g.Positions {
		off := p.Off
		if !p.Forward {
			off = total - p.Off - len(g.Seq)
		}
		if best < 0 || off < best {
			best = off
		}
	}
	return best
}

// LessGroup orders groups by first occurrence, then representative.
func LessGroup(a, b repeat.Group, total int) bool {
	fa, fb := FirstForward(a, total), FirstForward(b, total)
	if fa != fb {
		return fa < fb
	}
	return a.Seq < b.Seq
}

// SortGroups orders groups for --sort. The sort is stable so equal keys
// keep pipeline order.
func SortGroups(groups []repeat.Group, total int) {
	sort.SliceStable(groups, func(i, j int) bool { return LessGroup(groups[i], groups[j], total) })
}
