package repeat

import (
	"context"
	"sync"
)

// GroupConfig controls approximate grouping.
type GroupConfig struct {
	Budget  int // maximum edit distance between representatives (rpt_edit)
	Workers int // goroutines comparing one group against later ones; <1 means 1

	// Progress, when non-nil, is called once per outer group.
	Progress func()
}

// GroupApprox merges every later group whose representative is within
// Budget edits of an earlier live group, in input order. An absorbed group
// contributes its representative to the absorber's AltSeqs and is dropped
// from the returned list. groups is modified in place.
//
// The comparisons of one outer group run on up to Workers goroutines; the
// tombstones are applied afterwards in ascending order, so the result does
// not depend on Workers.
func GroupApprox(ctx context.Context, groups []Group, cfg GroupConfig) ([]Group, int, error) {
	if len(groups) == 0 {
		return nil, 0, nil
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	absorbed := 0
	hit := make([]bool, len(groups))
	for i := 0; i < len(groups)-1; i++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		if cfg.Progress != nil {
			cfg.Progress()
		}
		if groups[i].absorbed {
			continue
		}
		compareLater(groups, i, cfg.Budget, workers, hit)
		for j := i + 1; j < len(groups); j++ {
			if hit[j] {
				groups[i].absorb(&groups[j])
				hit[j] = false
				absorbed++
			}
		}
	}
	if cfg.Progress != nil {
		cfg.Progress()
	}
	return Compact(groups), absorbed, nil
}

// minParallel is the number of candidates below which one goroutine does
// all comparisons.
const minParallel = 64

// compareLater marks hit[j] for every live j > i mergeable with i.
func compareLater(groups []Group, i, budget, workers int, hit []bool) {
	base := groups[i].Seq
	lo, hi := i+1, len(groups)
	check := func(from, to int) {
		for j := from; j < to; j++ {
			if !groups[j].absorbed && Mergeable(base, groups[j].Seq, budget) {
				hit[j] = true
			}
		}
	}
	n := hi - lo
	if workers == 1 || n < minParallel {
		check(lo, hi)
		return
	}
	step := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for from := lo; from < hi; from += step {
		to := from + step
		if to > hi {
			to = hi
		}
		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			check(from, to)
		}(from, to)
	}
	wg.Wait()
}
