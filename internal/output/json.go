// internal/output/json.go
package output

import (
	"io"

	"rptidx/internal/jsonutil"
	"rptidx/pkg/api"
)

// ToAPIGroup converts an Entry to the stable wire schema (v1).
func ToAPIGroup(e Entry) api.GroupV1 {
	v := api.GroupV1{
		ID:          GroupName(e.ID),
		Seq:         e.Seq,
		Length:      len(e.Seq),
		Count:       len(e.Occ),
		RepOffset:   e.RepOffset,
		AltSeqs:     append([]string(nil), e.AltSeqs...),
		Occurrences: make([]api.OccurrenceV1, 0, len(e.Occ)),
	}
	for _, o := range e.Occ {
		v.Occurrences = append(v.Occurrences, api.OccurrenceV1{
			SequenceID:   o.Name,
			Pos:          o.Pos,
			Strand:       string(o.Strand),
			JoinedOffset: o.Joined,
		})
	}
	return v
}

func toAPIGroups(list []Entry) []api.GroupV1 {
	out := make([]api.GroupV1, 0, len(list))
	for _, e := range list {
		out = append(out, ToAPIGroup(e))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 groups (pretty-indented).
func WriteJSON(w io.Writer, list []Entry) error {
	return jsonutil.EncodePretty(w, toAPIGroups(list))
}
