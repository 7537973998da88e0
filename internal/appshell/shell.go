// Package appshell wraps a command in process plumbing: signals, argv, and
// the exit code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc runs one command line and returns its exit code.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run with a context cancelled by SIGINT/SIGTERM and exits with
// its code. A second signal kills the process with the default action.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
	}()

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	os.Exit(Code(ctx, run(ctx, argv, os.Stdout, os.Stderr)))
}

// Code maps a cancelled run that still reported success to 130.
func Code(ctx context.Context, code int) int {
	if ctx.Err() != nil && code == 0 {
		return 130
	}
	return code
}
