package progress

import (
	"bytes"
	"testing"
)

func TestNoop(t *testing.T) {
	r := New(nil, false)
	if _, ok := r.(Noop); !ok {
		t.Fatalf("disabled reporter = %T, want Noop", r)
	}
	c := r.Phase("scan", 10)
	c.Add(3)
	c.Done()
	r.Wait()
}

func TestBarsWaitReturns(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true)
	if _, ok := r.(*Bars); !ok {
		t.Fatalf("enabled reporter = %T, want *Bars", r)
	}
	short := r.Phase("group", 5)
	short.Add(2)
	short.Done()
	empty := r.Phase("scan", 0)
	empty.Done()
	r.Wait()
}
