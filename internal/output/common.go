package output

import "strconv"

// File suffixes appended to the output prefix.
const (
	ExtRepFASTA = ".rep.fa"
	ExtRepInfo  = ".rep.info"
	ExtRptInfo  = ".rptinfo"
	ExtAltSeq   = ".altseq"
	ExtJSON     = ".rep.json"
	ExtJSONL    = ".rep.jsonl"
	ExtSummary  = ".rep.toml"
)

// RepRecord is the name of the concatenated FASTA record.
const RepRecord = "rep"

// GroupName is the record name of group i.
func GroupName(i int) string { return "rpt_" + strconv.Itoa(i) }
