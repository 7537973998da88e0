// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"rptidx-core/repeat"
	"rptidx/internal/cmdutil"
	"rptidx/internal/common"
	"rptidx/internal/config"
	"rptidx/internal/indexinfo"
	"rptidx/internal/output"
	"rptidx/internal/pipeline"
	"rptidx/internal/progress"
	"rptidx/internal/reference"
	"rptidx/internal/runutil"
	"rptidx/internal/version"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitRuntime   = 3
	ExitCancelled = 130
)

// Options is everything a build needs beyond the logger.
type Options struct {
	Params config.Params
	Inputs []string
	SAFile string
	Prefix string

	EditSet          bool // --rpt-edit given explicitly
	Progress         bool
	NoRepeatExitCode int
}

// Run loads the reference, runs the pipeline, and writes every output
// file. It returns the process exit code.
func Run(parent context.Context, stderr io.Writer, log *logrus.Logger, o Options) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	start := time.Now()
	p := o.Params

	ref, err := reference.Load(o.Inputs)
	if err != nil {
		log.Error(err)
		return ExitRuntime
	}
	frags, err := ref.Map(p.CacheSize)
	if err != nil {
		log.Error(err)
		return ExitRuntime
	}
	longest := 0
	for _, f := range frags.Fragments() {
		if f.Length > longest {
			longest = f.Length
		}
	}
	log.WithFields(logrus.Fields{
		"sequences": frags.NumSequences(),
		"fragments": len(frags.Fragments()) - 1,
		"bases":     frags.Len(),
	}).Info("reference loaded")
	for _, w := range runutil.ValidateScan(p.RptLen, p.RptCnt, frags.Len(), longest) {
		cmdutil.Warnf(log, "%s", w)
	}
	for _, w := range runutil.GroupingWarnings(p.Grouping, o.EditSet, p.RptEdit, p.RptLen) {
		cmdutil.Warnf(log, "%s", w)
	}

	var ord pipeline.Orderer = pipeline.BuildOrder{}
	if o.SAFile != "" {
		ord = pipeline.FileOrder{Path: o.SAFile}
	}
	prog := progress.New(stderr, o.Progress)
	res, err := pipeline.Run(ctx, pipeline.Config{
		Scan: repeat.ScanConfig{
			MinLen:        p.RptLen,
			MinCount:      p.RptCnt,
			FlushTrailing: !p.NoTrailingFlush,
		},
		Forward:  p.Forward(),
		Grouping: p.Grouping,
		Budget:   p.RptEdit,
		Threads:  runutil.EffectiveThreads(p.Threads),
	}, ref.Seq, frags, ord, log, prog)
	prog.Wait()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitCancelled
		}
		log.Error(err)
		return ExitRuntime
	}

	if p.Sort {
		common.SortGroups(res.Groups, res.Total)
	}
	list, err := output.Translate(res.Groups, frags)
	if err != nil {
		log.Error(err)
		return ExitRuntime
	}
	plan := OutputPlan{
		Prefix:  o.Prefix,
		Gzip:    p.Gzip,
		Format:  p.Format,
		Width:   p.Width,
		PerLine: p.PerLine,
		Split:   p.SplitFasta,
		Debug:   p.DebugDumps,
	}
	if err := plan.Write(list, res.Ranges, ref.Seq); err != nil {
		log.Error(err)
		return ExitRuntime
	}

	info := &indexinfo.Info{
		Version:      version.Version,
		Inputs:       ref.Files,
		Prefix:       o.Prefix,
		Params:       p,
		JoinedLength: frags.Len(),
		Checksum:     indexinfo.Checksum(ref.Seq),
		Sequences:    frags.NumSequences(),
		Fragments:    len(frags.Fragments()) - 1,
		Provisional:  res.Provisional,
		Ranges:       res.RangeCount,
		Merged:       res.Merged,
		Absorbed:     res.Absorbed,
		Groups:       len(res.Groups),
		Occurrences:  repeat.Occurrences(res.Groups),
		Elapsed:      time.Since(start).Round(time.Millisecond).String(),
	}
	if err := indexinfo.Write(o.Prefix+output.ExtSummary, info); err != nil {
		log.Error(err)
		return ExitRuntime
	}
	log.WithFields(logrus.Fields{
		"groups":      info.Groups,
		"occurrences": info.Occurrences,
		"prefix":      o.Prefix,
		"elapsed":     info.Elapsed,
	}).Info("index written")

	if len(res.Groups) == 0 {
		return o.NoRepeatExitCode
	}
	return ExitOK
}
