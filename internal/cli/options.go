// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"rptidx/internal/cliutil"
	"rptidx/internal/config"
)

// Options holds all flags and arguments of the build command.
type Options struct {
	config.Params

	// Input
	Inputs []string
	SAFile string

	// Output
	Prefix string

	// Misc
	ConfigFile       string
	Progress         bool
	Profile          string
	NoRepeatExitCode int
	Quiet            bool
	Verbose          bool
}

// paramFlags copies one parameter from a file-loaded Params into the
// options when its flag was not given explicitly.
var paramFlags = map[string]func(dst, src *config.Params){
	"rpt-len":           func(d, s *config.Params) { d.RptLen = s.RptLen },
	"rpt-cnt":           func(d, s *config.Params) { d.RptCnt = s.RptCnt },
	"rpt-edit":          func(d, s *config.Params) { d.RptEdit = s.RptEdit },
	"grouping":          func(d, s *config.Params) { d.Grouping = s.Grouping },
	"strand":            func(d, s *config.Params) { d.Strand = s.Strand },
	"no-trailing-flush": func(d, s *config.Params) { d.NoTrailingFlush = s.NoTrailingFlush },
	"threads":           func(d, s *config.Params) { d.Threads = s.Threads },
	"cache-size":        func(d, s *config.Params) { d.CacheSize = s.CacheSize },
	"format":            func(d, s *config.Params) { d.Format = s.Format },
	"width":             func(d, s *config.Params) { d.Width = s.Width },
	"per-line":          func(d, s *config.Params) { d.PerLine = s.PerLine },
	"split-fasta":       func(d, s *config.Params) { d.SplitFasta = s.SplitFasta },
	"sort":              func(d, s *config.Params) { d.Sort = s.Sort },
	"debug-dumps":       func(d, s *config.Params) { d.DebugDumps = s.DebugDumps },
	"gzip":              func(d, s *config.Params) { d.Gzip = s.Gzip },
}

// Register wires the build flags onto fs.
func Register(fs *pflag.FlagSet, o *Options) {
	def := config.Defaults()
	p := &o.Params

	// Thresholds
	fs.IntVarP(&p.RptLen, "rpt-len", "l", def.RptLen, "minimum shared prefix length")
	fs.IntVarP(&p.RptCnt, "rpt-cnt", "c", def.RptCnt, "minimum occurrence count")
	fs.IntVarP(&p.RptEdit, "rpt-edit", "e", def.RptEdit, "edit-distance budget for grouping")
	fs.BoolVarP(&p.Grouping, "grouping", "g", def.Grouping, "merge groups within the edit budget")

	// Input / scanning
	fs.StringVar(&p.Strand, "strand", def.Strand, "forward | reverse")
	fs.StringVar(&o.SAFile, "sa", "", "precomputed suffix order (one offset per line)")
	fs.BoolVar(&p.NoTrailingFlush, "no-trailing-flush", def.NoTrailingFlush, "drop the open cluster at end of stream")
	fs.IntVarP(&p.Threads, "threads", "t", def.Threads, "grouping workers (0 = all CPUs)")
	fs.IntVar(&p.CacheSize, "cache-size", def.CacheSize, "fragment lookup cache slots (0 disables)")

	// Output
	fs.StringVarP(&o.Prefix, "output", "o", "", "output prefix [*]")
	fs.StringVarP(&p.Format, "format", "f", def.Format, "text | json | jsonl")
	fs.IntVarP(&p.Width, "width", "w", def.Width, "FASTA line width")
	fs.IntVar(&p.PerLine, "per-line", def.PerLine, "occurrences per info line")
	fs.BoolVar(&p.SplitFasta, "split-fasta", def.SplitFasta, "one FASTA record per group")
	fs.BoolVar(&p.Sort, "sort", def.Sort, "order groups by first occurrence")
	fs.BoolVar(&p.DebugDumps, "debug-dumps", def.DebugDumps, "write P.rptinfo and P.altseq")
	fs.BoolVar(&p.Gzip, "gzip", def.Gzip, "gzip outputs")

	// Misc
	fs.StringVar(&o.ConfigFile, "config", "", "TOML parameter file")
	fs.BoolVar(&o.Progress, "progress", false, "show progress bars")
	fs.StringVar(&o.Profile, "profile", "", "cpu | mem | block")
	fs.IntVar(&o.NoRepeatExitCode, "no-repeat-exit-code", 0, "exit code when no groups are found")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "warnings and errors only")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "debug logging")
}

// Finalize applies the parameter file under explicit flags, expands
// positionals, and validates.
func Finalize(fs *pflag.FlagSet, o *Options, args []string) error {
	if o.ConfigFile != "" {
		file, err := config.Load(o.ConfigFile)
		if err != nil {
			return err
		}
		for name, set := range paramFlags {
			if !fs.Changed(name) {
				set(&o.Params, &file)
			}
		}
	}
	inputs, err := cliutil.ExpandPositionals(args)
	if err != nil {
		return err
	}
	o.Inputs = inputs
	return Validate(o)
}

// Validate applies the build invariants.
func Validate(o *Options) error {
	if len(o.Inputs) == 0 {
		return errors.New("at least one reference file is required")
	}
	if cliutil.CountStdin(o.Inputs) > 1 {
		return errors.New("'-' (stdin) may be given once")
	}
	if o.Prefix == "" {
		return errors.New("--output prefix is required")
	}
	switch o.Profile {
	case "", "cpu", "mem", "block":
	default:
		return fmt.Errorf("invalid --profile %q", o.Profile)
	}
	if o.NoRepeatExitCode < 0 || o.NoRepeatExitCode > 255 {
		return errors.New("--no-repeat-exit-code must be between 0 and 255")
	}
	return o.Params.Validate()
}

// ParseArgs registers, parses, and finalizes in one step.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var o Options
	Register(fs, &o)
	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	err := Finalize(fs, &o, fs.Args())
	return o, err
}
