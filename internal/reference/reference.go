// Package reference loads FASTA/FASTQ files into a joined sequence and the
// fragment records describing how it was cut.
package reference

import (
	"errors"
	"fmt"
	"io"

	"github.com/shenwei356/bio/seqio/fastx"

	"rptidx-core/fragmap"
	"rptidx-core/seqbuf"
)

// Reference is a loaded set of sequences.
type Reference struct {
	Seq     seqbuf.Codes     // ACGT runs of every sequence, back to back
	Records []fragmap.Record // one per run, plus zero-length gap records
	Names   []string         // first word of each header, in input order
	Files   []string
}

// Load reads every file in order. "-" reads stdin.
func Load(files []string) (*Reference, error) {
	ref := &Reference{}
	for _, file := range files {
		if err := ref.readFile(file); err != nil {
			return nil, err
		}
		ref.Files = append(ref.Files, file)
	}
	if len(ref.Names) == 0 {
		return nil, errors.New("reference: no sequences in input")
	}
	return ref, nil
}

func (ref *Reference) readFile(file string) error {
	r, err := fastx.NewReader(nil, file, "")
	if err != nil {
		return fmt.Errorf("reference: open %s: %w", file, err)
	}
	defer r.Close()
	for i := 0; ; i++ {
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("reference: read seq %d in %s: %w", i, file, err)
		}
		ref.Add(string(rec.ID), rec.Seq.Seq)
	}
}

// Add appends one sequence. Every maximal run of ACGT becomes a record;
// other letters are gaps. A sequence with no trailing run still gets a
// zero-length record carrying its trailing gap, so that each sequence
// starts exactly one First record.
func (ref *Reference) Add(name string, s []byte) {
	ref.Names = append(ref.Names, name)
	first := true
	gap, run := 0, 0
	emit := func() {
		ref.Records = append(ref.Records, fragmap.Record{Len: run, Off: gap, First: first})
		first = false
		gap, run = 0, 0
	}
	for _, b := range s {
		c := seqbuf.Code(b)
		if c == seqbuf.Ambiguous {
			if run > 0 {
				emit()
			}
			gap++
			continue
		}
		ref.Seq = append(ref.Seq, c)
		run++
	}
	if run > 0 || first || gap > 0 {
		emit()
	}
}

// Map builds the fragment map of the reference.
func (ref *Reference) Map(cacheSize int) (*fragmap.Map, error) {
	return fragmap.BuildWithCache(ref.Records, ref.Names, cacheSize)
}
