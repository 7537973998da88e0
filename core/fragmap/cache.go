package fragmap

// ring is a fixed-capacity lookaside cache of fragment indices. Once full,
// the oldest slot is overwritten.
type ring struct {
	slots  []int
	n      int
	victim int
}

func newRing(capacity int) ring {
	return ring{slots: make([]int, capacity)}
}

func (r *ring) lookup(frags []Fragment, pos int) (int, bool) {
	for i := 0; i < r.n; i++ {
		if idx := r.slots[i]; frags[idx].Contains(pos) {
			return idx, true
		}
	}
	return -1, false
}

func (r *ring) insert(idx int) {
	if len(r.slots) == 0 {
		return
	}
	if r.n < len(r.slots) {
		r.slots[r.n] = idx
		r.n++
		return
	}
	r.slots[r.victim] = idx
	r.victim = (r.victim + 1) % len(r.slots)
}
