package appcore

import (
	"fmt"
	"io"

	"rptidx-core/repeat"
	"rptidx-core/seqbuf"
	"rptidx/internal/output"
	"rptidx/internal/writers"
)

// OutputPlan decides which files a build writes and writes them.
type OutputPlan struct {
	Prefix  string
	Gzip    bool
	Format  string // text | json | jsonl
	Width   int
	PerLine int
	Split   bool
	Debug   bool
}

// Files lists the files Write produces, in write order.
func (p OutputPlan) Files() ([]string, error) {
	exts := []string{output.ExtRepFASTA, output.ExtRepInfo}
	gf, ok, err := writers.LookupGroups(p.Format)
	if err != nil {
		return nil, err
	}
	if ok {
		exts = append(exts, gf.Ext)
	}
	if p.Debug {
		exts = append(exts, output.ExtRptInfo, output.ExtAltSeq)
	}
	out := make([]string, len(exts))
	for i, ext := range exts {
		out[i] = writers.Name(p.Prefix+ext, p.Gzip)
	}
	return out, nil
}

// Write renders entries and, with Debug, the surviving ranges over the
// forward joined sequence seq.
func (p OutputPlan) Write(list []output.Entry, ranges []repeat.Range, seq seqbuf.Sequence) error {
	if err := p.file(output.ExtRepFASTA, func(w io.Writer) error {
		return output.WriteRepFASTA(w, list, p.Width, p.Split)
	}); err != nil {
		return err
	}
	if err := p.file(output.ExtRepInfo, func(w io.Writer) error {
		return output.WriteInfo(w, list, p.PerLine)
	}); err != nil {
		return err
	}
	gf, ok, err := writers.LookupGroups(p.Format)
	if err != nil {
		return err
	}
	if ok {
		if err := p.file(gf.Ext, func(w io.Writer) error { return gf.Write(w, list) }); err != nil {
			return err
		}
	}
	if !p.Debug {
		return nil
	}
	if err := p.file(output.ExtRptInfo, func(w io.Writer) error {
		return output.WriteRangeDump(w, ranges, seq)
	}); err != nil {
		return err
	}
	return p.file(output.ExtAltSeq, func(w io.Writer) error {
		return output.WriteAltDump(w, list)
	})
}

func (p OutputPlan) file(ext string, write func(io.Writer) error) error {
	path := p.Prefix + ext
	w, err := writers.Create(path, p.Gzip)
	if err != nil {
		return err
	}
	werr := write(w)
	cerr := w.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("write %s: %w", writers.Name(path, p.Gzip), werr)
	}
	return nil
}
