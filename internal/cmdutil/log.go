// Package cmdutil holds helpers shared by the command layer.
package cmdutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a text logger on w. quiet keeps warnings and errors
// only; verbose enables debug output. quiet wins when both are set.
func NewLogger(w io.Writer, quiet, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		TimestampFormat:  "15:04:05",
		QuoteEmptyFields: true,
	})
	switch {
	case quiet:
		log.SetLevel(logrus.WarnLevel)
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}

// Warnf logs a warning when log is non-nil.
func Warnf(log logrus.FieldLogger, format string, args ...any) {
	if log == nil {
		return
	}
	log.Warnf(format, args...)
}
