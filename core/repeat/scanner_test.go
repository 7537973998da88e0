package repeat

import (
	"context"
	"errors"
	"testing"

	"rptidx-core/fragmap"
	"rptidx-core/lcp"
	"rptidx-core/sa"
	"rptidx-core/seqbuf"
)

func single(t *testing.T, s string) (seqbuf.Codes, *lcp.Oracle) {
	t.Helper()
	seq := seqbuf.Encode([]byte(s))
	m, err := fragmap.Build([]fragmap.Record{{Len: len(s), First: true}}, []string{"s"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return seq, lcp.New(seq, m, true)
}

func scan(t *testing.T, cfg ScanConfig, s string, order []int) []Group {
	t.Helper()
	seq, o := single(t, s)
	gs, err := Scan(context.Background(), cfg, seq, o, sa.NewSliceStream(order), nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	return gs
}

func TestScannerThreshold(t *testing.T) {
	cfg := ScanConfig{MinLen: 4, MinCount: 3, FlushTrailing: true}

	// three suffixes share ACGTA and differ at the sixth base; 17 breaks
	gs := scan(t, cfg, "ACGTAAACGTACACGTAG", []int{0, 6, 12, 17})
	if len(gs) != 1 {
		t.Fatalf("groups = %d, want 1", len(gs))
	}
	g := gs[0]
	if g.Seq != "ACGTA" || len(g.Positions) != 3 {
		t.Fatalf("group = %+v, want ACGTA x3", g)
	}
	for i, want := range []int{0, 6, 12} {
		if g.Positions[i].Off != want || !g.Positions[i].Forward {
			t.Errorf("position %d = %+v, want %d fw", i, g.Positions[i], want)
		}
	}

	// a 3-base shared prefix is below MinLen
	if gs := scan(t, cfg, "ACGAACGT", []int{0, 4}); len(gs) != 0 {
		t.Fatalf("groups = %+v, want none", gs)
	}
}

func TestScannerSortsPositions(t *testing.T) {
	cfg := ScanConfig{MinLen: 4, MinCount: 3}
	gs := scan(t, cfg, "ACGTAAACGTACACGTAG", []int{12, 0, 6, 17})
	if len(gs) != 1 {
		t.Fatalf("groups = %d, want 1", len(gs))
	}
	p := gs[0].Positions
	if p[0].Off != 0 || p[1].Off != 6 || p[2].Off != 12 {
		t.Fatalf("positions not sorted: %+v", p)
	}
}

func TestScannerTrailingCluster(t *testing.T) {
	s := "ACGTAAACGTACACGTAG"
	order := []int{0, 6, 12}

	off := ScanConfig{MinLen: 4, MinCount: 3}
	if gs := scan(t, off, s, order); len(gs) != 0 {
		t.Fatalf("without trailing flush: groups = %d, want 0", len(gs))
	}
	on := ScanConfig{MinLen: 4, MinCount: 3, FlushTrailing: true}
	if gs := scan(t, on, s, order); len(gs) != 1 {
		t.Fatalf("with trailing flush: groups = %d, want 1", len(gs))
	}
}

func TestScannerMinCount(t *testing.T) {
	cfg := ScanConfig{MinLen: 4, MinCount: 4, FlushTrailing: true}
	if gs := scan(t, cfg, "ACGTAAACGTACACGTAG", []int{0, 6, 12, 17}); len(gs) != 0 {
		t.Fatalf("groups = %d, want 0 below MinCount", len(gs))
	}
}

func TestScannerEmptyStream(t *testing.T) {
	seq, o := single(t, "ACGT")
	cfg := ScanConfig{MinLen: 1, MinCount: 2, FlushTrailing: true}
	gs, err := Scan(context.Background(), cfg, seq, o, sa.NewSliceStream(nil), nil)
	if !errors.Is(err, ErrEmptyOrder) || gs != nil {
		t.Fatalf("groups=%v err=%v, want ErrEmptyOrder", gs, err)
	}
}

func TestScanCancelled(t *testing.T) {
	seq, o := single(t, "ACGT")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	order := make([]int, checkEvery+1)
	_, err := Scan(ctx, ScanConfig{MinLen: 1, MinCount: 2}, seq, o, sa.NewSliceStream(order), nil)
	if err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestScanProgress(t *testing.T) {
	seq, o := single(t, "ACGTACGT")
	total := 0
	_, err := Scan(context.Background(), ScanConfig{MinLen: 2, MinCount: 2}, seq, o,
		sa.NewSliceStream(sa.Build(seq)), func(n int) { total += n })
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if total != 9 {
		t.Fatalf("progress total = %d, want 9", total)
	}
}

// The suffix order of AAACGTAAACGTAAACGTTTTT puts 0, 6 and 12 next to each
// other; they share AAACGT.
func TestEndToEndScenario(t *testing.T) {
	const s = "AAACGTAAACGTAAACGTTTTT"
	seq, o := single(t, s)
	cfg := ScanConfig{MinLen: 3, MinCount: 3}
	gs, err := Scan(context.Background(), cfg, seq, o, sa.NewSliceStream(sa.Build(seq)), nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	res, err := MergeRanges(gs)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if len(res.Groups) != 1 {
		t.Fatalf("groups = %+v, want one", res.Groups)
	}
	g := res.Groups[0]
	if g.Seq != "AAACGT" || len(g.Positions) != 3 {
		t.Fatalf("group = %+v, want AAACGT x3", g)
	}
	for i, want := range []int{0, 6, 12} {
		if g.Positions[i].Off != want {
			t.Errorf("position %d = %d, want %d", i, g.Positions[i].Off, want)
		}
	}

	// with the trailing cluster flushed the TTT run survives as well
	cfg.FlushTrailing = true
	gs, err = Scan(context.Background(), cfg, seq, o, sa.NewSliceStream(sa.Build(seq)), nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	res, err = MergeRanges(gs)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if len(res.Groups) != 2 || res.Groups[1].Seq != "TTT" {
		t.Fatalf("groups = %+v, want AAACGT and TTT", res.Groups)
	}
}
