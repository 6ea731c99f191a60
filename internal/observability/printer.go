// Package observability provides formatted output utilities for verbose
// CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jonathan/jobmatch/internal/pipeline"
	"github.com/jonathan/jobmatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes.
	boxWidth = 60
	// maxItemsToShow caps list output.
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode.
type Printer struct {
	out    io.Writer
	header *color.Color
	good   *color.Color
	warn   *color.Color
}

// NewPrinter creates a Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:    out,
		header: color.New(color.FgCyan, color.Bold),
		good:   color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
	}
}

// printBox writes a bordered section. The title stays uncolored so the
// fixed-width padding is not thrown off by escape codes.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBreakdown outputs a human-readable match breakdown.
func (p *Printer) PrintBreakdown(b *types.MatchBreakdown) {
	if b == nil {
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Overall:     %6.2f\n", b.Overall)
	fmt.Fprintf(&sb, "Must-have:   %6.2f\n", b.MustHave)
	fmt.Fprintf(&sb, "Tech:        %6.2f\n", b.Tech)
	fmt.Fprintf(&sb, "Process:     %6.2f\n", b.Process)
	fmt.Fprintf(&sb, "Leadership:  %6.2f\n", b.Leadership)
	fmt.Fprintf(&sb, "NPI:         %6.2f\n", b.NPI)
	fmt.Fprintf(&sb, "Mindset:     %6.2f\n", b.Mindset)
	fmt.Fprintf(&sb, "Logistics:   %6.2f", b.Logistics)
	p.printBox("Match Breakdown", sb.String())

	if len(b.Gaps) > 0 {
		p.printList("Gaps", b.Gaps, p.warn)
	}
}

// PrintCoverage outputs the coverage report summary.
func (p *Printer) PrintCoverage(report *types.CoverageReport) {
	if report == nil {
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Keyword coverage: %d%%", report.KeywordCoveragePct)
	p.printBox("Coverage", sb.String())

	if len(report.Missing) > 0 {
		p.printList("Missing keywords", report.Missing, p.warn)
	}
	if len(report.Recommendations) > 0 {
		p.printList("Recommendations", report.Recommendations, p.good)
	}
}

// PrintResult outputs the full pipeline result.
func (p *Printer) PrintResult(result *pipeline.Result) {
	if result == nil {
		return
	}
	p.PrintBreakdown(result.Breakdown)
	if result.Content != nil {
		p.printList("Selected bullets", result.Content.Bullets, p.good)
		p.printList("Selected skills", result.Content.Skills, p.good)
	}
	p.PrintCoverage(result.Coverage)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printList(title string, items []string, c *color.Color) {
	fmt.Fprintf(p.out, "%s:\n", p.header.Sprint(title))
	count := len(items)
	if count > maxItemsToShow {
		count = maxItemsToShow
	}
	for i := 0; i < count; i++ {
		fmt.Fprintf(p.out, "  • %s\n", c.Sprint(items[i]))
	}
	if len(items) > maxItemsToShow {
		fmt.Fprintf(p.out, "  ... and %d more\n", len(items)-maxItemsToShow)
	}
}
