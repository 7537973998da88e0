// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"
)

// EffectiveThreads resolves the --threads value: 0 (or less) means all CPUs.
func EffectiveThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}
	return threads
}

// ValidateScan checks the thresholds against the loaded reference and
// returns warnings for settings that cannot produce any group. It never
// fails; the run proceeds and yields an empty index.
func ValidateScan(rptLen, rptCnt, joinedLen, longestFragment int) []string {
	var warns []string
	if joinedLen == 0 {
		return append(warns, "reference has no A/C/G/T bases; no repeats can be found")
	}
	if rptLen > longestFragment {
		warns = append(warns, fmt.Sprintf("--rpt-len (%d) exceeds the longest fragment (%d); no repeats can be found", rptLen, longestFragment))
	}
	if rptCnt > joinedLen {
		warns = append(warns, fmt.Sprintf("--rpt-cnt (%d) exceeds the joined length (%d); no repeats can be found", rptCnt, joinedLen))
	}
	return warns
}

// GroupingWarnings flags grouping settings that are accepted but unusual.
// editSet reports whether --rpt-edit was given explicitly.
func GroupingWarnings(grouping, editSet bool, rptEdit, rptLen int) []string {
	var warns []string
	if !grouping && editSet {
		warns = append(warns, "--rpt-edit has no effect without --grouping")
	}
	if grouping && rptEdit >= rptLen {
		warns = append(warns, fmt.Sprintf("--rpt-edit (%d) ≥ --rpt-len (%d); unrelated groups of similar length may merge", rptEdit, rptLen))
	}
	return warns
}
