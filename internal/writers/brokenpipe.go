package writers

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// IsBrokenPipe reports whether err comes from writing to a reader that went
// away, as when output is piped into head.
func IsBrokenPipe(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, syscall.EPIPE), errors.Is(err, io.ErrClosedPipe), errors.Is(err, os.ErrClosed):
		return true
	}
	return false
}

// Quiet returns nil for broken-pipe errors and err otherwise.
func Quiet(err error) error {
	if IsBrokenPipe(err) {
		return nil
	}
	return err
}
