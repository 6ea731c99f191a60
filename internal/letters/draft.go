// Package letters drafts cover letters from the engine's match output.
// Prompt construction is pure and deterministic; only the final generation
// call touches the network.
package letters

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/jobmatch/internal/llm"
	"github.com/jonathan/jobmatch/internal/types"
)

// maxPromptBullets bounds how many selected bullets feed the prompt.
const maxPromptBullets = 5

// Input carries everything the drafter needs about one application.
type Input struct {
	CandidateName string
	Company       string
	Role          string
	Breakdown     *types.MatchBreakdown
	Content       *types.SelectedContent
}

// BuildPrompt assembles the generation prompt from match output. Pure
// function, unit-tested independently of the client.
func BuildPrompt(in Input) string {
	var sb strings.Builder

	sb.WriteString("Write a concise, specific cover letter (under 300 words).\n\n")
	fmt.Fprintf(&sb, "Candidate: %s\n", in.CandidateName)
	fmt.Fprintf(&sb, "Company: %s\n", in.Company)
	fmt.Fprintf(&sb, "Role: %s\n", in.Role)

	if in.Breakdown != nil {
		fmt.Fprintf(&sb, "Overall match score: %.0f/100\n", in.Breakdown.Overall)
	}

	if in.Content != nil && len(in.Content.Bullets) > 0 {
		sb.WriteString("\nStrongest relevant accomplishments:\n")
		bullets := in.Content.Bullets
		if len(bullets) > maxPromptBullets {
			bullets = bullets[:maxPromptBullets]
		}
		for _, b := range bullets {
			fmt.Fprintf(&sb, "- %s\n", b)
		}
	}

	if in.Content != nil && len(in.Content.Skills) > 0 {
		fmt.Fprintf(&sb, "\nKey skills to emphasize: %s\n", strings.Join(in.Content.Skills, ", "))
	}

	if in.Breakdown != nil && len(in.Breakdown.Gaps) > 0 {
		sb.WriteString("\nDo not claim experience in these gap areas:\n")
		for _, gap := range in.Breakdown.Gaps {
			fmt.Fprintf(&sb, "- %s\n", gap)
		}
	}

	sb.WriteString("\nUse a confident, factual tone. No filler phrases, no invented facts.\n")
	return sb.String()
}

// Draft generates a cover letter via the client.
func Draft(ctx context.Context, client llm.Client, in Input) (string, error) {
	if client == nil {
		return "", fmt.Errorf("llm client is required")
	}

	letter, err := client.GenerateContent(ctx, BuildPrompt(in), llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("failed to draft cover letter: %w", err)
	}
	return strings.TrimSpace(letter), nil
}
