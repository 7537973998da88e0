// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rptidx/internal/app"
	"rptidx/pkg/api"
)

func write(t *testing.T, dir, fn, data string) string {
	t.Helper()
	path := filepath.Join(dir, fn)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return path
}

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func run(t *testing.T, want int, argv ...string) (string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(argv, &out, &errBuf)
	if code != want {
		t.Fatalf("%v: exit %d, want %d; stderr=%s", argv, code, want, errBuf.String())
	}
	return out.String(), errBuf.String()
}

func TestBuildEndToEnd(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "ref.fa", ">chr1 test\nAAACGTAAACGT\nAAACGTTTTT\n")
	prefix := filepath.Join(dir, "idx")

	run(t, 0, "build", "-q", "-o", prefix, "-l", "3", "-c", "3", "--no-trailing-flush", fa)

	if got := read(t, prefix+".rep.fa"); got != ">rep\nAAACGT\n" {
		t.Errorf("rep.fa = %q", got)
	}
	wantInfo := ">rpt_0*0\trep\t0\t6\t3\t0\nchr1:0:+ chr1:6:+ chr1:12:+\n"
	if got := read(t, prefix+".rep.info"); got != wantInfo {
		t.Errorf("rep.info = %q, want %q", got, wantInfo)
	}
	if _, err := os.Stat(prefix + ".rep.toml"); err != nil {
		t.Errorf("summary missing: %v", err)
	}
}

func TestBuildTrailingFlushDefault(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "ref.fa", ">chr1\nAAACGTAAACGTAAACGTTTTT\n")
	prefix := filepath.Join(dir, "idx")

	run(t, 0, "build", "-q", "-o", prefix, "-l", "3", "-c", "3", fa)

	info := read(t, prefix+".rep.info")
	if !strings.Contains(info, ">rpt_1*0\trep\t6\t3\t3\t0\nchr1:17:+ chr1:18:+ chr1:19:+\n") {
		t.Errorf("trailing group missing from %q", info)
	}
	if got := read(t, prefix+".rep.fa"); got != ">rep\nAAACGTTTT\n" {
		t.Errorf("rep.fa = %q", got)
	}
}

func TestBuildReverseStrand(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "ref.fa", ">c\nACGTACGTACGT\n")
	prefix := filepath.Join(dir, "rev")

	run(t, 0, "build", "-q", "-o", prefix, "-l", "4", "-c", "3", "--strand", "reverse", "--no-trailing-flush", fa)

	want := ">rpt_0*0\trep\t0\t4\t3\t0\nc:0:- c:4:- c:8:-\n"
	if got := read(t, prefix+".rep.info"); got != want {
		t.Errorf("rep.info = %q, want %q", got, want)
	}
}

func TestBuildJSONAndDumps(t *testing.T) {
	dir := t.TempDir()
	x, y := "AACCGGTT", "TACCGGTT"
	fa := write(t, dir, "ref.fa", ">s\n"+strings.Join([]string{x, y, x, y, x, y}, "N")+"\n")
	prefix := filepath.Join(dir, "grp")

	run(t, 0, "build", "-q", "-o", prefix, "-l", "8", "-c", "3", "-g", "-e", "1", "-f", "json", "--debug-dumps", "--no-trailing-flush", fa)

	var groups []api.GroupV1
	if err := json.Unmarshal([]byte(read(t, prefix+".rep.json")), &groups); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(groups) != 1 || groups[0].Seq != x || len(groups[0].AltSeqs) != 1 || groups[0].AltSeqs[0] != y {
		t.Fatalf("groups = %+v", groups)
	}
	occ := groups[0].Occurrences
	if len(occ) != 3 || occ[1].SequenceID != "s" || occ[1].Pos != 18 {
		t.Fatalf("occurrences = %+v", occ)
	}
	if got := read(t, prefix+".altseq"); got != "0\t"+x+"\t"+y+"\n" {
		t.Errorf("altseq = %q", got)
	}
	if dump := read(t, prefix+".rptinfo"); !strings.Contains(dump, "\t0\t8\t"+x+"\t") {
		t.Errorf("rptinfo missing first range: %q", dump)
	}
}

func TestBuildGzipAndConfig(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "ref.fa", ">chr1\nAAACGTAAACGTAAACGTTTTT\n")
	cfg := write(t, dir, "p.toml", "rpt-len = 3\nrpt-cnt = 3\ngzip = true\nformat = \"jsonl\"\n")
	prefix := filepath.Join(dir, "gz")

	run(t, 0, "build", "-q", "--config", cfg, "-o", prefix, fa)

	for _, ext := range []string{".rep.fa.gz", ".rep.info.gz", ".rep.jsonl.gz"} {
		if _, err := os.Stat(prefix + ext); err != nil {
			t.Errorf("missing %s: %v", ext, err)
		}
	}
}

func TestNoRepeatExitCode(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "ref.fa", ">u\nACGTTGCA\n")
	prefix := filepath.Join(dir, "none")

	run(t, 0, "build", "-q", "-o", prefix, "-l", "3", "-c", "2", fa)
	run(t, 1, "build", "-q", "-o", prefix, "-l", "3", "-c", "2", "--no-repeat-exit-code", "1", fa)
	if got := read(t, prefix+".rep.info"); got != "" {
		t.Errorf("rep.info = %q, want empty", got)
	}
	if got := read(t, prefix+".rep.fa"); got != ">rep\n" {
		t.Errorf("rep.fa = %q, want a bare rep header", got)
	}
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "ref.fa", ">u\nACGT\n")

	_, stderr := run(t, 2, "build", fa)
	if !strings.Contains(stderr, "--output") {
		t.Errorf("usage error not reported: %q", stderr)
	}
	run(t, 2, "build", "-o", filepath.Join(dir, "x"), "--rpt-cnt", "1", fa)
	run(t, 2, "nope")
	run(t, 3, "build", "-q", "-o", filepath.Join(dir, "x"), filepath.Join(dir, "missing.fa"))

	short := write(t, dir, "short.sa", "4\n0\n")
	_, stderr = run(t, 3, "build", "-o", filepath.Join(dir, "x"), "-l", "2", "-c", "2", "--sa", short, fa)
	if !strings.Contains(stderr, "2 offsets, want 5") {
		t.Errorf("truncated order not reported: %q", stderr)
	}
}

func TestLocateInfoVersion(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "ref.fa", ">a\nNNACGT\n>b\nGGGG\n")

	out, _ := run(t, 0, "locate", "-r", fa, "0", "4", "9")
	if want := "0\ta\t2\n4\tb\t0\n9\t*\t*\n"; out != want {
		t.Errorf("locate = %q, want %q", out, want)
	}
	run(t, 2, "locate", "-r", fa, "x")

	prefix := filepath.Join(dir, "idx")
	run(t, 0, "build", "-q", "-o", prefix, "-l", "2", "-c", "2", fa)
	out, _ = run(t, 0, "info", prefix+".rep.toml")
	if !strings.Contains(out, "joined-length\t8\n") || !strings.Contains(out, "sequences\t2\n") {
		t.Errorf("info = %q", out)
	}

	out, _ = run(t, 0, "version")
	if !strings.HasPrefix(out, "rptidx version ") {
		t.Errorf("version = %q", out)
	}
}

func TestParallelGroupingMatchesSerial(t *testing.T) {
	dir := t.TempDir()
	var b strings.Builder
	b.WriteString(">s\n")
	bases := "ACGT"
	for i := 0; i < 200; i++ {
		unit := fmt.Sprintf("%c%c%cTTGGCCAA", bases[i%4], bases[(i/4)%4], bases[(i/16)%4])
		b.WriteString(unit + "N" + unit + "N")
	}
	fa := write(t, dir, "many.fa", b.String()+"\n")

	runWith := func(threads int) string {
		prefix := filepath.Join(dir, fmt.Sprintf("t%d", threads))
		run(t, 0, "build", "-q", "-o", prefix, "-l", "11", "-c", "2", "-g", "-e", "2", "-t", fmt.Sprint(threads), "--debug-dumps", fa)
		return read(t, prefix+".rep.info") + read(t, prefix+".altseq")
	}
	if serial, parallel := runWith(1), runWith(8); serial != parallel {
		t.Fatalf("parallel output differs from serial\nserial: %s\nparallel: %s", serial, parallel)
	}
}
