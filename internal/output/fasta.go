package output

import (
	"bufio"
	"io"
)

// WriteRepFASTA writes the representatives wrapped at width. By default
// all of them form one record named "rep"; split writes one "rpt_<i>"
// record per entry. An empty list still writes the "rep" header.
func WriteRepFASTA(w io.Writer, list []Entry, width int, split bool) error {
	bw := bufio.NewWriter(w)
	if split {
		for _, e := range list {
			writeRecord(bw, GroupName(e.ID), []string{e.Seq}, width)
		}
		return bw.Flush()
	}
	parts := make([]string, len(list))
	for i, e := range list {
		parts[i] = e.Seq
	}
	writeRecord(bw, RepRecord, parts, width)
	return bw.Flush()
}

// writeRecord writes parts as one sequence, breaking lines every width
// bases regardless of part boundaries. Write errors stick to bw and surface
// on Flush.
func writeRecord(bw *bufio.Writer, name string, parts []string, width int) {
	if width < 1 {
		width = 60
	}
	bw.WriteByte('>')
	bw.WriteString(name)
	bw.WriteByte('\n')
	col := 0
	for _, s := range parts {
		for i := 0; i < len(s); i++ {
			bw.WriteByte(s[i])
			col++
			if col == width {
				bw.WriteByte('\n')
				col = 0
			}
		}
	}
	if col > 0 {
		bw.WriteByte('\n')
	}
}
