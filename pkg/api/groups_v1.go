// pkg/api/groups_v1.go
package api

// GroupV1 is the stable JSON/JSONL schema for one repeat group.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type GroupV1 struct {
	ID          string         `json:"id"` // "rpt_<i>"
	Seq         string         `json:"seq"`
	Length      int            `json:"length"`
	Count       int            `json:"count"`
	RepOffset   int            `json:"rep_offset"` // offset of Seq in the concatenated "rep" record
	AltSeqs     []string       `json:"alt_seqs,omitempty"`
	Occurrences []OccurrenceV1 `json:"occurrences"`
}

// OccurrenceV1 is one occurrence in original coordinates.
type OccurrenceV1 struct {
	SequenceID   string `json:"sequence_id"`
	Pos          int    `json:"pos"`    // 0-based leftmost forward base
	Strand       string `json:"strand"` // "+" | "-"
	JoinedOffset int    `json:"joined_offset"`
}
