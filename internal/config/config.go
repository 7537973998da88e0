// Package config holds the build parameters, their defaults, and the TOML
// parameter file that can supply them.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Strands accepted by Params.Strand.
const (
	StrandForward = "forward"
	StrandReverse = "reverse"
)

// Output formats accepted by Params.Format.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Params are the tunables of one build. Field tags double as the TOML keys
// of a parameter file.
type Params struct {
	RptLen   int    `toml:"rpt-len" comment:"minimum shared prefix length"`
	RptCnt   int    `toml:"rpt-cnt" comment:"minimum occurrence count"`
	RptEdit  int    `toml:"rpt-edit" comment:"edit-distance budget for grouping"`
	Grouping bool   `toml:"grouping"`
	Strand   string `toml:"strand" comment:"forward | reverse"`

	NoTrailingFlush bool `toml:"no-trailing-flush"`
	Threads         int  `toml:"threads" comment:"0 = all CPUs"`
	CacheSize       int  `toml:"cache-size"`

	Format     string `toml:"format" comment:"text | json | jsonl"`
	Width      int    `toml:"width"`
	PerLine    int    `toml:"per-line"`
	SplitFasta bool   `toml:"split-fasta"`
	Sort       bool   `toml:"sort"`
	DebugDumps bool   `toml:"debug-dumps"`
	Gzip       bool   `toml:"gzip"`
}

// Defaults returns the parameters used when neither a file nor a flag sets
// them.
func Defaults() Params {
	return Params{
		RptLen:    50,
		RptCnt:    5,
		RptEdit:   10,
		Strand:    StrandForward,
		CacheSize: 4,
		Format:    FormatText,
		Width:     60,
		PerLine:   10,
	}
}

// Forward reports whether the build scans the forward strand.
func (p Params) Forward() bool { return p.Strand != StrandReverse }

// Validate checks parameter ranges.
func (p Params) Validate() error {
	switch {
	case p.RptLen < 1:
		return errors.New("--rpt-len must be ≥ 1")
	case p.RptCnt < 2:
		return errors.New("--rpt-cnt must be ≥ 2")
	case p.RptEdit < 0:
		return errors.New("--rpt-edit must be ≥ 0")
	case p.Threads < 0:
		return errors.New("--threads must be ≥ 0")
	case p.CacheSize < 0:
		return errors.New("--cache-size must be ≥ 0")
	case p.Width < 1:
		return errors.New("--width must be ≥ 1")
	case p.PerLine < 1:
		return errors.New("--per-line must be ≥ 1")
	}
	switch p.Strand {
	case StrandForward, StrandReverse:
	default:
		return fmt.Errorf("invalid --strand %q", p.Strand)
	}
	switch p.Format {
	case FormatText, FormatJSON, FormatJSONL:
	default:
		return fmt.Errorf("invalid --format %q", p.Format)
	}
	return nil
}

// Load reads a TOML parameter file. Keys missing from the file keep their
// defaults; unknown keys are an error.
func Load(path string) (Params, error) {
	p := Defaults()
	f, err := os.Open(path)
	if err != nil {
		return p, err
	}
	defer f.Close()
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return p, fmt.Errorf("config %s: %w", path, err)
	}
	return p, nil
}

// Write stores p as a TOML parameter file.
func Write(path string, p Params) error {
	data, err := toml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
