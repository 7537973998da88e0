// Package indexinfo reads and writes the TOML summary of a build.
package indexinfo

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/zeebo/wyhash"

	"rptidx/internal/config"
)

// Info summarises one build.
type Info struct {
	Version string   `toml:"version" comment:"rptidx version"`
	Inputs  []string `toml:"inputs"`
	Prefix  string   `toml:"prefix"`

	Params config.Params `toml:"params"`

	JoinedLength int    `toml:"joined-length" comment:"A/C/G/T bases in the joined sequence"`
	Checksum     string `toml:"checksum" comment:"wyhash of the joined base codes"`
	Sequences    int    `toml:"sequences"`
	Fragments    int    `toml:"fragments"`

	Provisional int `toml:"provisional-groups" comment:"groups emitted by the scanner"`
	Ranges      int `toml:"ranges" comment:"occurrences entering the subsumption sweep"`
	Merged      int `toml:"merged-ranges"`
	Absorbed    int `toml:"absorbed-groups"`
	Groups      int `toml:"groups"`
	Occurrences int `toml:"occurrences"`

	Elapsed string `toml:"elapsed"`
}

// Checksum hashes the joined sequence.
func Checksum(codes []byte) string {
	return fmt.Sprintf("%016x", wyhash.Hash(codes, 0))
}

// Write stores info at path.
func Write(path string, info *Info) error {
	data, err := toml.Marshal(info)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Read loads a summary written by Write.
func Read(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v := &Info{}
	if err := toml.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("index info %s: %w", path, err)
	}
	return v, nil
}

// Print writes a human-readable summary.
func Print(w io.Writer, info *Info) error {
	_, err := fmt.Fprintf(w,
		"version\t%s\ninputs\t%v\nprefix\t%s\n"+
			"rpt-len\t%d\nrpt-cnt\t%d\nrpt-edit\t%d\ngrouping\t%v\nstrand\t%s\n"+
			"joined-length\t%d\nchecksum\t%s\nsequences\t%d\nfragments\t%d\n"+
			"provisional-groups\t%d\nranges\t%d\nmerged-ranges\t%d\nabsorbed-groups\t%d\n"+
			"groups\t%d\noccurrences\t%d\nelapsed\t%s\n",
		info.Version, info.Inputs, info.Prefix,
		info.Params.RptLen, info.Params.RptCnt, info.Params.RptEdit, info.Params.Grouping, info.Params.Strand,
		info.JoinedLength, info.Checksum, info.Sequences, info.Fragments,
		info.Provisional, info.Ranges, info.Merged, info.Absorbed,
		info.Groups, info.Occurrences, info.Elapsed,
	)
	return err
}
