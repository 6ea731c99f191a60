package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/jobmatch/internal/coverage"
	"github.com/jonathan/jobmatch/internal/keywords"
	"github.com/jonathan/jobmatch/internal/observability"
	"github.com/jonathan/jobmatch/internal/pipeline"
	"github.com/jonathan/jobmatch/internal/selection"
	"github.com/jonathan/jobmatch/internal/types"
	"github.com/spf13/cobra"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Select the most relevant resume content for a job posting",
	Long:  "Rank the candidate's bullets and skills against the posting's keywords, pick the strongest subset, and report keyword coverage over the selection.",
	RunE:  runTailor,
}

var (
	tailorProfileFile string
	tailorJobFile     string
	tailorMaxBullets  int
	tailorMaxSkills   int
	tailorOutFile     string
	tailorVerbose     bool
)

// tailorOutput is the JSON document the tailor command emits.
type tailorOutput struct {
	Keywords []string               `json:"keywords"`
	Content  *types.SelectedContent `json:"content"`
	Coverage *types.CoverageReport  `json:"coverage"`
}

func init() {
	tailorCmd.Flags().StringVarP(&tailorProfileFile, "profile", "p", "", "Path to candidate profile JSON (required)")
	tailorCmd.Flags().StringVarP(&tailorJobFile, "job", "j", "", "Path to job posting text file (required)")
	tailorCmd.Flags().IntVar(&tailorMaxBullets, "max-bullets", pipeline.DefaultMaxBullets, "Maximum bullets to select")
	tailorCmd.Flags().IntVar(&tailorMaxSkills, "max-skills", pipeline.DefaultMaxSkills, "Maximum skills to select")
	tailorCmd.Flags().StringVarP(&tailorOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print selection and coverage to stderr")

	tailorCmd.MarkFlagRequired("profile")
	tailorCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile(tailorProfileFile)
	if err != nil {
		return err
	}
	text, err := loadJobText(tailorJobFile)
	if err != nil {
		return err
	}

	kws := keywords.Extract(text, pipeline.DefaultKeywordLimit)

	var bullets []string
	for _, entry := range profile.Experience {
		bullets = append(bullets, entry.Bullets...)
	}
	var skills []string
	skills = append(skills, profile.Candidate.Skills...)
	skills = append(skills, profile.Candidate.Technologies...)
	skills = append(skills, profile.Candidate.Methodologies...)

	content := &types.SelectedContent{
		Bullets: selection.SelectBullets(bullets, kws, tailorMaxBullets),
		Skills:  selection.SelectSkills(skills, kws, tailorMaxSkills),
	}

	finalText := strings.Join(content.Bullets, "\n") + "\n" + strings.Join(content.Skills, "\n")
	report := coverage.Analyze(finalText, kws)

	if tailorVerbose {
		p := observability.NewPrinter(os.Stderr)
		p.PrintCoverage(report)
	}

	out := &tailorOutput{Keywords: kws, Content: content, Coverage: report}
	if err := writeJSON(tailorOutFile, out); err != nil {
		return err
	}
	if tailorOutFile != "" {
		fmt.Printf("Selected %d bullets, %d skills (%d%% keyword coverage)\n",
			len(content.Bullets), len(content.Skills), report.KeywordCoveragePct)
		fmt.Printf("Output: %s\n", tailorOutFile)
	}
	return nil
}
