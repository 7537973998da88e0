package repeat

// Distance is the unit-cost edit distance between a and b, computed with
// two rows of len(b)+1 cells.
func Distance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 0; i < len(a); i++ {
		cur[0] = i + 1
		for j := 0; j < len(b); j++ {
			sub := prev[j]
			if a[i] != b[j] {
				sub++
			}
			cur[j+1] = min3(prev[j+1]+1, cur[j]+1, sub)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// Mergeable reports whether a and b are within budget edits. The length
// difference is a lower bound on the distance and is checked first.
func Mergeable(a, b string, budget int) bool {
	d := len(a) - len(b)
	if d < 0 {
		d = -d
	}
	if d > budget {
		return false
	}
	return Distance(a, b) <= budget
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
