package main

import (
	"fmt"

	"github.com/jonathan/jobmatch/internal/keywords"
	"github.com/jonathan/jobmatch/internal/pipeline"
	"github.com/jonathan/jobmatch/internal/types"
	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Extract ranked keywords from a job posting",
	Long:  "Extract the most frequent meaningful terms from a job posting text file, ranked by frequency with first-occurrence tie-breaking.",
	RunE:  runKeywords,
}

var (
	keywordsJobFile   string
	keywordsLimit     int
	keywordsMinLength int
	keywordsOutFile   string
)

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsJobFile, "job", "j", "", "Path to job posting text file (required)")
	keywordsCmd.Flags().IntVarP(&keywordsLimit, "limit", "n", pipeline.DefaultKeywordLimit, "Maximum number of keywords to return")
	keywordsCmd.Flags().IntVar(&keywordsMinLength, "min-length", keywords.DefaultMinTokenLength, "Minimum token length to count")
	keywordsCmd.Flags().StringVarP(&keywordsOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	keywordsCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(_ *cobra.Command, _ []string) error {
	text, err := loadJobText(keywordsJobFile)
	if err != nil {
		return err
	}

	kws := keywords.ExtractWithMinLength(text, keywordsLimit, keywordsMinLength)

	extraction := &types.KeywordExtraction{TopKeywords: kws}
	if err := writeJSON(keywordsOutFile, extraction); err != nil {
		return err
	}
	if keywordsOutFile != "" {
		fmt.Printf("Extracted %d keywords\n", len(kws))
		fmt.Printf("Output: %s\n", keywordsOutFile)
	}
	return nil
}
