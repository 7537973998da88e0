package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"rptidx-core/repeat"
	"rptidx-core/seqbuf"
)

// WriteRangeDump writes the ranges that survived the subsumption sweep, one
// per line: index, forward range and sequence, the same range mirrored onto
// the reverse complement with its sequence, and the provisional group id.
// seq is the forward joined sequence; ranges found on the reverse strand are
// mirrored back first.
func WriteRangeDump(w io.Writer, ranges []repeat.Range, seq seqbuf.Sequence) error {
	total := seq.Len()
	bw := bufio.NewWriter(w)
	for i, r := range ranges {
		fwd := r
		if !r.Forward {
			fwd = r.Mirror(total)
		}
		rc := fwd.Mirror(total)
		s := seqbuf.Decode(seq, fwd.Start, fwd.Len())
		fmt.Fprintf(bw, "%d\t%d\t%d\t%s\t%d\t%d\t%s\t%d\n",
			i, fwd.Start, fwd.End, s, rc.Start, rc.End, seqbuf.RevCompString(s), r.Group)
	}
	return bw.Flush()
}

// WriteAltDump writes each final group with its accumulated alternates.
func WriteAltDump(w io.Writer, list []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range list {
		fmt.Fprintf(bw, "%d\t%s", e.ID, e.Seq)
		if len(e.AltSeqs) > 0 {
			bw.WriteByte('\t')
			bw.WriteString(strings.Join(e.AltSeqs, "\t"))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
