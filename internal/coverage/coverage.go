// Package coverage cross-references produced resume content against the
// extracted job-description keywords and reports heuristic quality flags.
package coverage

import (
	"math"
	"strings"

	"github.com/jonathan/jobmatch/internal/types"
)

// Analyze reports which JD keywords the final text covers, which are
// missing (in original rank order), the coverage percentage, and advisory
// quality flags. Pure function; empty inputs degrade to an empty report.
func Analyze(finalText string, jdKeywords []string) *types.CoverageReport {
	lower := strings.ToLower(finalText)

	matched := make(map[string]bool)
	var missing []string
	for _, kw := range jdKeywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			matched[kw] = true
		} else {
			missing = append(missing, kw)
		}
	}

	denom := len(jdKeywords)
	if denom < 1 {
		denom = 1
	}
	pct := int(math.Round(100 * float64(len(matched)) / float64(denom)))

	flags, recs := qualityFlags(finalText)
	if len(missing) > 0 {
		flags = append(flags, "missing-keywords")
		recs = append(recs, "Work the missing JD keywords into bullets or the skills section where truthful.")
	}

	return &types.CoverageReport{
		Matched:            matched,
		Missing:            missing,
		KeywordCoveragePct: pct,
		Flags:              flags,
		Recommendations:    recs,
	}
}
