package appcore

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"rptidx-core/fragmap"
)

// Locate writes one line per joined offset: the offset, the sequence name,
// and the position in that sequence, or "*" for both when no fragment
// covers the offset.
func Locate(w io.Writer, m *fragmap.Map, offsets []int) error {
	bw := bufio.NewWriter(w)
	for _, off := range offsets {
		if p, ok := m.ToOriginal(off); ok {
			fmt.Fprintf(bw, "%d\t%s\t%d\n", off, p.Name, p.Pos)
		} else {
			fmt.Fprintf(bw, "%d\t*\t*\n", off)
		}
	}
	return bw.Flush()
}

// ParseOffsets converts command-line offsets.
func ParseOffsets(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad offset %q", a)
		}
		out = append(out, n)
	}
	return out, nil
}
