package compact

import (
	"fmt"

	"github.com/abdul-hamid-achik/speclog/packages/core/logs"
)

// Compact reduces seq to the entries within keepAround positions
// (inclusive) of an error entry. Each maximal run of excluded entries is
// replaced by a single marker entry stating how many entries were removed.
// Kept entries pass through unchanged and in their original order.
//
// Marker entries from an earlier pass are always kept, so compacting an
// already-compacted sequence with the same window returns an equal result.
func Compact(seq logs.Sequence, keepAround int) logs.Sequence {
	if len(seq) == 0 {
		return seq
	}

	keep := make([]bool, len(seq))
	for i, entry := range seq {
		if entry.Category == logs.CategoryReport {
			keep[i] = true
			continue
		}
		if entry.Severity != logs.SeverityError {
			continue
		}
		lo := i - keepAround
		if lo < 0 {
			lo = 0
		}
		hi := i + keepAround
		if hi > len(seq)-1 {
			hi = len(seq) - 1
		}
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}

	out := make(logs.Sequence, 0, len(seq))
	omitted := 0
	flush := func() {
		if omitted == 0 {
			return
		}
		out = append(out, logs.Entry{
			Category: logs.CategoryReport,
			Message:  fmt.Sprintf("omitted %d logs", omitted),
			Severity: logs.SeveritySuccess,
		})
		omitted = 0
	}

	for i, entry := range seq {
		if keep[i] {
			flush()
			out = append(out, entry)
			continue
		}
		omitted++
	}
	flush()

	return out
}
