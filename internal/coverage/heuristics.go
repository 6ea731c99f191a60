package coverage

import (
	"regexp"
	"strings"
)

// Heuristic thresholds. Advisory only; none of these gate the coverage
// percentage.
const (
	passiveDensityThreshold = 0.25
	metricRatioThreshold    = 0.2
	maxPipeCount            = 8
	longLineLength          = 120
	maxLongLines            = 3
)

// passiveRe matches auxiliary-verb + past-participle constructions.
var passiveRe = regexp.MustCompile(`(?i)\b(was|were|is|are|been|being|be)\s+\w+(ed|en)\b`)

// digitRe marks a line as quantified.
var digitRe = regexp.MustCompile(`\d`)

// imageRefRe catches stray image references that will not survive
// plain-text rendering.
var imageRefRe = regexp.MustCompile(`(?i)!\[|\.(png|jpe?g|gif)\b`)

// qualityFlags runs the advisory heuristics over the final text and returns
// flag names with their canned recommendations.
func qualityFlags(text string) (flags, recs []string) {
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return nil, nil
	}

	if PassiveVoiceDensity(lines) > passiveDensityThreshold {
		flags = append(flags, "passive-voice")
		recs = append(recs, "Rewrite passive constructions with strong action verbs.")
	}
	if MetricLineRatio(lines) < metricRatioThreshold {
		flags = append(flags, "low-metric-density")
		recs = append(recs, "Quantify more bullets with percentages, counts, or dollar amounts.")
	}
	if hazard, rec := FormattingHazard(text, lines); hazard != "" {
		flags = append(flags, hazard)
		recs = append(recs, rec)
	}
	return flags, recs
}

// PassiveVoiceDensity returns the fraction of lines containing a
// passive-voice construction.
func PassiveVoiceDensity(lines []string) float64 {
	if len(lines) == 0 {
		return 0
	}
	hits := 0
	for _, line := range lines {
		if passiveRe.MatchString(line) {
			hits++
		}
	}
	return float64(hits) / float64(len(lines))
}

// MetricLineRatio returns the fraction of lines containing a digit.
func MetricLineRatio(lines []string) float64 {
	if len(lines) == 0 {
		return 0
	}
	hits := 0
	for _, line := range lines {
		if digitRe.MatchString(line) {
			hits++
		}
	}
	return float64(hits) / float64(len(lines))
}

// FormattingHazard checks for excess literal pipes, over-long lines and
// stray image references. Returns the first hazard found and its
// recommendation, or empty strings.
func FormattingHazard(text string, lines []string) (flag, rec string) {
	if strings.Count(text, "|") > maxPipeCount {
		return "excess-pipes", "Replace literal pipe separators; they render poorly in ATS parsers."
	}
	long := 0
	for _, line := range lines {
		if len(line) > longLineLength {
			long++
		}
	}
	if long > maxLongLines {
		return "long-lines", "Shorten over-long lines; they wrap unpredictably in renderers."
	}
	if imageRefRe.MatchString(text) {
		return "image-reference", "Remove image references; they are dropped by plain-text exports."
	}
	return "", ""
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
