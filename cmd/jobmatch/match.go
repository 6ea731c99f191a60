package main

import (
	"fmt"
	"os"

	"github.com/jonathan/jobmatch/internal/observability"
	"github.com/jonathan/jobmatch/internal/parsing"
	"github.com/jonathan/jobmatch/internal/scoring"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a candidate profile against a job posting",
	Long:  "Score a candidate profile against a job posting across seven weighted dimensions and report the overall match with identified gaps.",
	RunE:  runMatch,
}

var (
	matchProfileFile string
	matchJobFile     string
	matchCompany     string
	matchRole        string
	matchOutFile     string
	matchVerbose     bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchProfileFile, "profile", "p", "", "Path to candidate profile JSON (required)")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job posting text file (required)")
	matchCmd.Flags().StringVar(&matchCompany, "company", "", "Company name for the posting")
	matchCmd.Flags().StringVar(&matchRole, "role", "", "Role title for the posting")
	matchCmd.Flags().StringVarP(&matchOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted breakdown to stderr")

	matchCmd.MarkFlagRequired("profile")
	matchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile(matchProfileFile)
	if err != nil {
		return err
	}
	text, err := loadJobText(matchJobFile)
	if err != nil {
		return err
	}

	req := parsing.ParseJobDescription(matchCompany, matchRole, "", "", text, nil, nil)
	breakdown := scoring.NewScorer().ComputeMatch(req, &profile.Candidate)

	if matchVerbose {
		observability.NewPrinter(os.Stderr).PrintBreakdown(breakdown)
	}

	if err := writeJSON(matchOutFile, breakdown); err != nil {
		return err
	}
	if matchOutFile != "" {
		fmt.Printf("Overall match: %.2f\n", breakdown.Overall)
		fmt.Printf("Output: %s\n", matchOutFile)
	}
	return nil
}
