package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/jobmatch/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintBreakdown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBreakdown(&types.MatchBreakdown{
		Overall:  72.4,
		MustHave: 50,
		Gaps:     []string{"Tech exposure: labview"},
	})

	out := buf.String()
	assert.Contains(t, out, "Match Breakdown")
	assert.Contains(t, out, "72.40")
	assert.Contains(t, out, "Tech exposure: labview")
}

func TestPrintBreakdown_Nil(t *testing.T) {
	var buf bytes.Buffer

	NewPrinter(&buf).PrintBreakdown(nil)

	assert.Empty(t, buf.String())
}

func TestPrintCoverage_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	report := &types.CoverageReport{
		KeywordCoveragePct: 40,
		Missing:            []string{"a", "b", "c", "d", "e", "f", "g"},
	}

	NewPrinter(&buf).PrintCoverage(report)

	out := buf.String()
	assert.Contains(t, out, "40%")
	assert.Contains(t, out, "and 2 more")
}
