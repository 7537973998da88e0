// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"rptidx/internal/output"
)

// GroupFormat is a machine-readable group output.
type GroupFormat struct {
	Ext   string // suffix appended to the output prefix
	Write func(w io.Writer, list []output.Entry) error
}

// GroupWriters maps a --format value to its writer. "text" has no entry:
// the FASTA and info files are always written.
var GroupWriters = map[string]GroupFormat{}

// RegisterGroups adds or replaces a format (last wins).
func RegisterGroups(format string, gf GroupFormat) { GroupWriters[format] = gf }

func init() {
	RegisterGroups("json", GroupFormat{Ext: output.ExtJSON, Write: output.WriteJSON})
	RegisterGroups("jsonl", GroupFormat{Ext: output.ExtJSONL, Write: writeJSONL})
}

// LookupGroups returns the writer for format. ok is false for formats with
// no extra file; an unknown non-text format is an error.
func LookupGroups(format string) (GroupFormat, bool, error) {
	if format == "text" {
		return GroupFormat{}, false, nil
	}
	gf, ok := GroupWriters[format]
	if !ok {
		return GroupFormat{}, false, fmt.Errorf("unknown group format %q (no writer registered)", format)
	}
	return gf, true, nil
}
