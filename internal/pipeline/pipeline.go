// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"rptidx-core/fragmap"
	"rptidx-core/lcp"
	"rptidx-core/repeat"
	"rptidx-core/seqbuf"
	"rptidx/internal/progress"
)

// Config controls one run.
type Config struct {
	Scan     repeat.ScanConfig
	Forward  bool // scan the joined sequence; false scans its reverse complement
	Grouping bool // merge groups within Budget edits
	Budget   int
	Threads  int // grouping workers (>=1)
}

// Result is the outcome of a run. Offsets are in the scanned strand's
// coordinate space; Forward tells which one that was.
type Result struct {
	Groups  []repeat.Group
	Ranges  []repeat.Range // survivors of the subsumption sweep
	Forward bool
	Total   int // joined length

	Provisional int // groups emitted by the scanner
	RangeCount  int // occurrences entering the sweep
	Merged      int // occurrences removed by the sweep
	Absorbed    int // groups absorbed by approximate grouping
}

// Run executes the phases in order. seq is the forward joined sequence and
// frags its fragment map. log and prog may be nil.
func Run(
	ctx context.Context,
	cfg Config,
	seq seqbuf.Sequence,
	frags *fragmap.Map,
	ord Orderer,
	log logrus.FieldLogger,
	prog progress.Reporter,
) (Result, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if prog == nil {
		prog = progress.Noop{}
	}
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	res := Result{Forward: cfg.Forward, Total: seq.Len()}

	scanned := seq
	if !cfg.Forward {
		scanned = seqbuf.ReverseComplement(seq)
	}
	oracle := lcp.New(scanned, frags, cfg.Forward)

	start := time.Now()
	st, err := ord.Order(ctx, scanned)
	if err != nil {
		return res, err
	}
	log.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Debug("suffix order ready")

	start = time.Now()
	bar := prog.Phase("scan", scanned.Len()+1)
	groups, err := repeat.Scan(ctx, cfg.Scan, scanned, oracle, st, bar.Add)
	bar.Done()
	if err != nil {
		return res, err
	}
	res.Provisional = len(groups)
	log.WithFields(logrus.Fields{
		"groups":      len(groups),
		"occurrences": repeat.Occurrences(groups),
		"elapsed":     time.Since(start).Round(time.Millisecond),
	}).Info("scan finished")

	if repeat.Occurrences(groups) == 0 {
		log.Info("no repeats found")
		return res, nil
	}

	mr, err := repeat.MergeRanges(groups)
	if err != nil {
		return res, err
	}
	res.Groups, res.Ranges = mr.Groups, mr.Ranges
	res.RangeCount, res.Merged = mr.Total, mr.Removed
	log.WithFields(logrus.Fields{
		"range_count":  mr.Total,
		"merged_count": mr.Removed,
		"groups":       len(mr.Groups),
	}).Info("ranges merged")

	if !cfg.Grouping || len(res.Groups) == 0 {
		return res, nil
	}
	start = time.Now()
	bar = prog.Phase("group", len(res.Groups))
	out, absorbed, err := repeat.GroupApprox(ctx, res.Groups, repeat.GroupConfig{
		Budget:   cfg.Budget,
		Workers:  cfg.Threads,
		Progress: func() { bar.Add(1) },
	})
	bar.Done()
	if err != nil {
		return res, err
	}
	res.Groups, res.Absorbed = out, absorbed
	log.WithFields(logrus.Fields{
		"groups":   len(out),
		"absorbed": absorbed,
		"budget":   cfg.Budget,
		"elapsed":  time.Since(start).Round(time.Millisecond),
	}).Info("approximate grouping finished")
	return res, nil
}
