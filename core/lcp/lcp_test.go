package lcp

import (
	"testing"

	"rptidx-core/fragmap"
	"rptidx-core/seqbuf"
)

func twoFragments(t *testing.T) (seqbuf.Codes, *fragmap.Map) {
	t.Helper()
	seq := seqbuf.Encode([]byte("ACGTACGTACGTTTTT"))
	m, err := fragmap.Build([]fragmap.Record{
		{Len: 8, First: true},
		{Len: 8, First: true},
	}, []string{"A", "B"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return seq, m
}

func TestLCPClipsAtFragmentEnd(t *testing.T) {
	seq, m := twoFragments(t)
	o := New(seq, m, true)

	// unclipped the suffixes at 0 and 4 share 8 bases (ACGTACGT);
	// offset 4 belongs to fragment A which ends at 8
	if got := o.LCP(0, 4); got != 4 {
		t.Errorf("LCP(0,4) = %d, want 4", got)
	}
	if got := o.LCP(0, 8); got != 4 {
		t.Errorf("LCP(0,8) = %d, want 4", got)
	}
	if got := o.LCP(4, 8); got != 4 {
		t.Errorf("LCP(4,8) = %d, want 4", got)
	}
	for a := 0; a < seq.Len(); a++ {
		for b := 0; b < seq.Len(); b++ {
			got := o.LCP(a, b)
			ia, _ := m.Locate(a)
			ib, _ := m.Locate(b)
			if got > m.Fragment(ia).End()-a || got > m.Fragment(ib).End()-b {
				t.Fatalf("LCP(%d,%d) = %d crosses a fragment end", a, b, got)
			}
		}
	}
}

func TestLCPOutOfRange(t *testing.T) {
	seq, m := twoFragments(t)
	o := New(seq, m, true)
	if got := o.LCP(16, 0); got != 0 {
		t.Errorf("LCP at end = %d, want 0", got)
	}
	if got := o.LCP(3, 99); got != 0 {
		t.Errorf("LCP past end = %d, want 0", got)
	}
}

func TestLCPReverse(t *testing.T) {
	seq, m := twoFragments(t)
	rc := seqbuf.ReverseComplement(seq) // AAAAACGTACGTACGT
	o := New(rc, m, false)

	// rc offsets [0,8) mirror fragment B, [8,16) mirror fragment A
	if got := o.LCP(0, 1); got != 4 {
		t.Errorf("LCP(0,1) = %d, want 4", got)
	}
	if got := o.LCP(4, 8); got != 4 {
		t.Errorf("LCP(4,8) = %d, want 4 (clipped at rc offset 8)", got)
	}
	if got := o.LCP(8, 12); got != 4 {
		t.Errorf("LCP(8,12) = %d, want 4", got)
	}
}
