package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteInfo writes the group headers and occurrence lines:
//
//	>rpt_<i>*0	rep	<offset>	<length>	<count>	0
//	name:pos:strand name:pos:strand ...
//
// with perLine occurrences per line.
func WriteInfo(w io.Writer, list []Entry, perLine int) error {
	if perLine < 1 {
		perLine = 10
	}
	bw := bufio.NewWriter(w)
	for _, e := range list {
		fmt.Fprintf(bw, ">%s*0\t%s\t%d\t%d\t%d\t0\n", GroupName(e.ID), RepRecord, e.RepOffset, len(e.Seq), len(e.Occ))
		for i, o := range e.Occ {
			if i > 0 {
				if i%perLine == 0 {
					bw.WriteByte('\n')
				} else {
					bw.WriteByte(' ')
				}
			}
			bw.WriteString(o.Name)
			bw.WriteByte(':')
			bw.WriteString(strconv.Itoa(o.Pos))
			bw.WriteByte(':')
			bw.WriteByte(o.Strand)
		}
		if len(e.Occ) > 0 {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
