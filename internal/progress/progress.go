// Package progress draws per-phase progress bars on a terminal.
package progress

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Counter advances one phase.
type Counter interface {
	Add(n int)
	Done()
}

// Reporter hands out a Counter per phase.
type Reporter interface {
	Phase(name string, total int) Counter
	Wait()
}

// New returns a bar-drawing Reporter on w, or a no-op one when disabled.
func New(w io.Writer, enabled bool) Reporter {
	if !enabled {
		return Noop{}
	}
	return &Bars{p: mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))}
}

// Bars draws one mpb bar per phase.
type Bars struct {
	p *mpb.Progress
}

func (b *Bars) Phase(name string, total int) Counter {
	label := name + ": "
	bar := b.p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(label, decor.WC{W: len(label), C: decor.DindentRight}),
			decor.Name("", decor.WCSyncSpaceR),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
			decor.EwmaETA(decor.ET_STYLE_GO, 10),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return barCounter{bar: bar}
}

// Wait blocks until every bar has been rendered for the last time.
func (b *Bars) Wait() { b.p.Wait() }

type barCounter struct {
	bar *mpb.Bar
}

func (c barCounter) Add(n int) { c.bar.IncrBy(n) }

// Done completes the bar at its current count, so a phase that ends early
// or had a zero total does not block Wait.
func (c barCounter) Done() { c.bar.SetTotal(-1, true) }

// Noop discards progress.
type Noop struct{}

func (Noop) Phase(string, int) Counter { return Noop{} }
func (Noop) Wait()                     {}
func (Noop) Add(int)                   {}
func (Noop) Done()                     {}
