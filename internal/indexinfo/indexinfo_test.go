package indexinfo

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"rptidx/internal/config"
)

func TestWriteRead(t *testing.T) {
	info := &Info{
		Version:      "test",
		Inputs:       []string{"a.fa", "b.fa"},
		Prefix:       "out",
		Params:       config.Defaults(),
		JoinedLength: 22,
		Checksum:     Checksum([]byte{0, 1, 2, 3}),
		Sequences:    2,
		Fragments:    3,
		Groups:       1,
		Occurrences:  3,
		Elapsed:      "1ms",
	}
	path := filepath.Join(t.TempDir(), "out.rep.toml")
	if err := Write(path, info); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(got, info) {
		t.Fatalf("round trip:\n got %+v\nwant %+v", got, info)
	}
}

func TestChecksum(t *testing.T) {
	a := Checksum([]byte{0, 1, 2, 3})
	if a != Checksum([]byte{0, 1, 2, 3}) || len(a) != 16 {
		t.Fatalf("checksum %q not stable", a)
	}
	if a == Checksum([]byte{0, 1, 2, 2}) {
		t.Fatalf("checksum ignores content")
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, &Info{Version: "v", Params: config.Defaults(), Groups: 4}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "groups\t4\n") || !strings.Contains(buf.String(), "rpt-len\t50\n") {
		t.Fatalf("print = %q", buf.String())
	}
}

func TestReadMissing(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "none.toml")); err == nil {
		t.Fatalf("expected error")
	}
}
