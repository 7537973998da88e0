// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"rptidx/internal/appcore"
	"rptidx/internal/cli"
	"rptidx/internal/cmdutil"
	"rptidx/internal/indexinfo"
	"rptidx/internal/reference"
	"rptidx/internal/version"
	"rptidx/internal/writers"
)

// RunContext executes one command line and returns the exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	code := appcore.ExitOK

	root := newRoot(outw, stderr, &code)
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)
	err := root.ExecuteContext(parent)

	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return appcore.ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitRuntime
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\nRun 'rptidx --help' for usage.\n", err)
		return appcore.ExitUsage
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func newRoot(stdout, stderr io.Writer, code *int) *cobra.Command {
	root := &cobra.Command{
		Use:   "rptidx",
		Short: "repeat index builder",
		Long: `rptidx: repeat index builder

Finds groups of repeated sequence in a reference from its suffix order,
drops occurrences contained in longer repeats, optionally merges groups
whose representatives are within an edit-distance budget, and writes the
groups with their coordinates in the original sequences.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(buildCommand(stderr, code))
	root.AddCommand(locateCommand(stdout, stderr, code))
	root.AddCommand(infoCommand(stdout, stderr, code))
	root.AddCommand(versionCommand(stdout))
	return root
}

func buildCommand(stderr io.Writer, code *int) *cobra.Command {
	var opts cli.Options
	cmd := &cobra.Command{
		Use:   "build -o PREFIX [flags] ref.fa [ref2.fa ...]",
		Short: "Build a repeat index from FASTA/FASTQ files",
		Example: `  rptidx build -o genome genome.fa
  rptidx build -o genome -l 100 -c 10 -g -e 5 --gzip chr*.fa`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.Finalize(cmd.Flags(), &opts, args); err != nil {
				return err
			}
			log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)
			if opts.Profile != "" {
				defer startProfile(opts.Profile, filepath.Dir(opts.Prefix)).Stop()
			}
			*code = appcore.Run(cmd.Context(), stderr, log, appcore.Options{
				Params:           opts.Params,
				Inputs:           opts.Inputs,
				SAFile:           opts.SAFile,
				Prefix:           opts.Prefix,
				EditSet:          cmd.Flags().Changed("rpt-edit"),
				Progress:         opts.Progress,
				NoRepeatExitCode: opts.NoRepeatExitCode,
			})
			return nil
		},
	}
	cli.Register(cmd.Flags(), &opts)
	return cmd
}

func startProfile(mode, dir string) interface{ Stop() } {
	kind := profile.CPUProfile
	switch mode {
	case "mem":
		kind = profile.MemProfile
	case "block":
		kind = profile.BlockProfile
	}
	return profile.Start(kind, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet)
}

func locateCommand(stdout, stderr io.Writer, code *int) *cobra.Command {
	var (
		refs      []string
		cacheSize int
	)
	cmd := &cobra.Command{
		Use:   "locate -r ref.fa [-r ref2.fa] OFFSET...",
		Short: "Translate joined offsets to sequence coordinates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(refs) == 0 {
				return fmt.Errorf("locate: at least one --reference is required")
			}
			if cacheSize < 0 {
				return fmt.Errorf("--cache-size must be ≥ 0")
			}
			offsets, err := appcore.ParseOffsets(args)
			if err != nil {
				return err
			}
			log := cmdutil.NewLogger(stderr, true, false)
			ref, err := reference.Load(refs)
			if err != nil {
				log.Error(err)
				*code = appcore.ExitRuntime
				return nil
			}
			m, err := ref.Map(cacheSize)
			if err != nil {
				log.Error(err)
				*code = appcore.ExitRuntime
				return nil
			}
			if err := writers.Quiet(appcore.Locate(stdout, m, offsets)); err != nil {
				log.Error(err)
				*code = appcore.ExitRuntime
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&refs, "reference", "r", nil, "reference FASTA/FASTQ (repeatable) [*]")
	cmd.Flags().IntVar(&cacheSize, "cache-size", 4, "fragment lookup cache slots (0 disables)")
	return cmd
}

func infoCommand(stdout, stderr io.Writer, code *int) *cobra.Command {
	return &cobra.Command{
		Use:   "info PREFIX.rep.toml",
		Short: "Print the summary of a built index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := indexinfo.Read(args[0])
			if err != nil {
				_, _ = fmt.Fprintln(stderr, err)
				*code = appcore.ExitRuntime
				return nil
			}
			return indexinfo.Print(stdout, info)
		},
	}
}

func versionCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(stdout, "rptidx version %s\n", version.Version)
		},
	}
}
