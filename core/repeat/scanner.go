package repeat

import (
	"context"

	"rptidx-core/lcp"
	"rptidx-core/sa"
	"rptidx-core/seqbuf"
)

// ScanConfig holds the scanner thresholds.
type ScanConfig struct {
	MinLen   int // minimum shared prefix to extend a cluster (rpt_len)
	MinCount int // minimum cluster size to emit a group (rpt_cnt)

	// FlushTrailing emits the cluster still open when the stream ends if it
	// meets MinCount. Without it only a breaking suffix closes a cluster.
	FlushTrailing bool
}

// Scanner clusters suffix-array-adjacent suffixes that share at least
// MinLen bases. Feed offsets with Push in suffix-array order, then call
// Finish.
type Scanner struct {
	cfg    ScanConfig
	seq    seqbuf.Sequence
	oracle *lcp.Oracle

	cluster []Coord
	minLCP  int
	groups  []Group
}

// NewScanner returns a Scanner over seq, which must be the sequence the
// oracle was built on.
func NewScanner(cfg ScanConfig, seq seqbuf.Sequence, oracle *lcp.Oracle) *Scanner {
	return &Scanner{cfg: cfg, seq: seq, oracle: oracle, minLCP: seq.Len()}
}

// Push consumes the next suffix offset.
func (s *Scanner) Push(off int) {
	c := Coord{Off: off, Forward: s.oracle.Forward()}
	if len(s.cluster) == 0 {
		s.cluster = append(s.cluster, c)
		return
	}
	prev := s.cluster[len(s.cluster)-1].Off
	k := s.oracle.LCP(prev, off)
	if k >= s.cfg.MinLen {
		s.cluster = append(s.cluster, c)
		if k < s.minLCP {
			s.minLCP = k
		}
		return
	}
	s.flush()
	s.cluster = append(s.cluster[:0], c)
	s.minLCP = s.seq.Len()
}

func (s *Scanner) flush() {
	if len(s.cluster) < s.cfg.MinCount {
		return
	}
	pos := append([]Coord(nil), s.cluster...)
	sortCoords(pos)
	s.groups = append(s.groups, Group{
		Seq:       seqbuf.Decode(s.seq, pos[0].Off, s.minLCP),
		Positions: pos,
	})
}

// Finish ends the stream and returns the provisional groups in emission
// order.
func (s *Scanner) Finish() []Group {
	if s.cfg.FlushTrailing {
		s.flush()
	}
	s.cluster = s.cluster[:0]
	s.minLCP = s.seq.Len()
	groups := s.groups
	s.groups = nil
	return groups
}

// checkEvery is how many suffixes are consumed between context checks.
const checkEvery = 1 << 16

// Scan drains st through a Scanner. progress, when non-nil, is called with
// the number of suffixes consumed since the previous call. A stream that
// yields nothing is ErrEmptyOrder: every sequence, even an empty one, has
// at least its empty suffix.
func Scan(ctx context.Context, cfg ScanConfig, seq seqbuf.Sequence, oracle *lcp.Oracle, st sa.Stream, progress func(n int)) ([]Group, error) {
	sc := NewScanner(cfg, seq, oracle)
	n, total := 0, 0
	for {
		off, ok := st.Next()
		if !ok {
			break
		}
		sc.Push(off)
		n++
		total++
		if n == checkEvery {
			if progress != nil {
				progress(n)
			}
			n = 0
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	if err := st.Err(); err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrEmptyOrder
	}
	if progress != nil && n > 0 {
		progress(n)
	}
	return sc.Finish(), nil
}
