package coverage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_RoundTrip(t *testing.T) {
	kws := []string{"minitab", "spc", "lean"}
	text := strings.Join(kws, " ")

	report := Analyze(text, kws)

	assert.Equal(t, 100, report.KeywordCoveragePct)
	assert.Empty(t, report.Missing)
	assert.Len(t, report.Matched, 3)
}

func TestAnalyze_MissingPreservesRankOrder(t *testing.T) {
	kws := []string{"minitab", "spc", "lean", "fmea"}

	report := Analyze("We use SPC daily", kws)

	assert.Equal(t, []string{"minitab", "lean", "fmea"}, report.Missing)
	assert.Equal(t, 25, report.KeywordCoveragePct)
	assert.Contains(t, report.Flags, "missing-keywords")
}

func TestAnalyze_EmptyKeywords(t *testing.T) {
	report := Analyze("any text", nil)

	assert.Equal(t, 0, report.KeywordCoveragePct)
	assert.Empty(t, report.Missing)
}

func TestAnalyze_CaseInsensitive(t *testing.T) {
	report := Analyze("Expert in MINITAB analysis", []string{"Minitab"})

	assert.Equal(t, 100, report.KeywordCoveragePct)
}

func TestPassiveVoiceDensity(t *testing.T) {
	lines := []string{
		"The fixture was designed by the team",
		"Reduced scrap 12%",
		"Processes were improved across lines",
		"Led supplier audits",
	}

	assert.InDelta(t, 0.5, PassiveVoiceDensity(lines), 0.01)
	assert.Equal(t, 0.0, PassiveVoiceDensity(nil))
}

func TestMetricLineRatio(t *testing.T) {
	lines := []string{"Cut costs 10%", "Managed team", "Saved $50K", "Ran audits"}

	assert.InDelta(t, 0.5, MetricLineRatio(lines), 0.01)
}

func TestFormattingHazard_Pipes(t *testing.T) {
	text := strings.Repeat("a | b | c | ", 4)

	flag, rec := FormattingHazard(text, nonBlankLines(text))

	assert.Equal(t, "excess-pipes", flag)
	assert.NotEmpty(t, rec)
}

func TestFormattingHazard_ImageRef(t *testing.T) {
	flag, _ := FormattingHazard("see headshot.png here", []string{"see headshot.png here"})

	assert.Equal(t, "image-reference", flag)
}

func TestFormattingHazard_Clean(t *testing.T) {
	flag, rec := FormattingHazard("Reduced scrap 12%", []string{"Reduced scrap 12%"})

	assert.Empty(t, flag)
	assert.Empty(t, rec)
}

func TestAnalyze_FlagsLowMetricDensity(t *testing.T) {
	report := Analyze("Managed projects\nRan meetings\nWrote reports\nOwned roadmap\nLed audits", nil)

	assert.Contains(t, report.Flags, "low-metric-density")
	assert.NotEmpty(t, report.Recommendations)
}
