package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/jobmatch/internal/coverage"
	"github.com/jonathan/jobmatch/internal/keywords"
	"github.com/jonathan/jobmatch/internal/letters"
	"github.com/jonathan/jobmatch/internal/llm"
	"github.com/jonathan/jobmatch/internal/parsing"
	"github.com/jonathan/jobmatch/internal/pipeline"
	"github.com/jonathan/jobmatch/internal/scoring"
	"github.com/jonathan/jobmatch/internal/selection"
	"github.com/jonathan/jobmatch/internal/types"
	"github.com/spf13/cobra"
)

var letterCmd = &cobra.Command{
	Use:   "letter",
	Short: "Draft a cover letter from the match result",
	Long:  "Score the candidate against the posting, select the strongest content, and draft a cover letter grounded in the match evidence. Gaps are passed to the model as claims to avoid.",
	RunE:  runLetter,
}

var (
	letterProfileFile string
	letterJobFile     string
	letterName        string
	letterCompany     string
	letterRole        string
	letterOutFile     string
	letterAPIKey      string
)

func init() {
	letterCmd.Flags().StringVarP(&letterProfileFile, "profile", "p", "", "Path to candidate profile JSON (required)")
	letterCmd.Flags().StringVarP(&letterJobFile, "job", "j", "", "Path to job posting text file (required)")
	letterCmd.Flags().StringVar(&letterName, "name", "", "Candidate name for the letter (required)")
	letterCmd.Flags().StringVar(&letterCompany, "company", "", "Company name for the posting")
	letterCmd.Flags().StringVar(&letterRole, "role", "", "Role title for the posting")
	letterCmd.Flags().StringVarP(&letterOutFile, "out", "o", "", "Path to output text file (default: stdout)")
	letterCmd.Flags().StringVar(&letterAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	letterCmd.MarkFlagRequired("profile")
	letterCmd.MarkFlagRequired("job")
	letterCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(letterCmd)
}

func runLetter(_ *cobra.Command, _ []string) error {
	apiKey := letterAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	profile, err := loadProfile(letterProfileFile)
	if err != nil {
		return err
	}
	text, err := loadJobText(letterJobFile)
	if err != nil {
		return err
	}

	req := parsing.ParseJobDescription(letterCompany, letterRole, "", "", text, nil, nil)
	breakdown := scoring.NewScorer().ComputeMatch(req, &profile.Candidate)

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
		Bullets: selection.SelectBullets(bullets, kws, pipeline.DefaultMaxBullets),
		Skills:  selection.SelectSkills(skills, kws, pipeline.DefaultMaxSkills),
	}

	// Warn about low coverage before spending an LLM call.
	finalText := strings.Join(content.Bullets, "\n") + "\n" + strings.Join(content.Skills, "\n")
	if report := coverage.Analyze(finalText, kws); report.KeywordCoveragePct < 50 {
		fmt.Fprintf(os.Stderr, "Warning: selected content covers only %d%% of posting keywords\n", report.KeywordCoveragePct)
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	letter, err := letters.Draft(ctx, client, letters.Input{
		CandidateName: letterName,
		Company:       letterCompany,
		Role:          letterRole,
		Breakdown:     breakdown,
		Content:       content,
	})
	if err != nil {
		return fmt.Errorf("failed to draft letter: %w", err)
	}

	if letterOutFile == "" {
		fmt.Println(letter)
		return nil
	}
	if err := os.WriteFile(letterOutFile, []byte(letter+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write letter: %w", err)
	}
	fmt.Printf("Output: %s\n", letterOutFile)
	return nil
}
