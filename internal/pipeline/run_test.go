package pipeline

import (
	"testing"

	"github.com/jonathan/jobmatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInputs() (JobInput, *types.CandidateProfile, []types.ExperienceEntry) {
	job := JobInput{
		Company: "Acme",
		Role:    "Quality Engineer",
		Text: "Quality engineer with Minitab, SPC and lean manufacturing. " +
			"6 years experience required. Bachelor degree. Travel up to 10%.",
	}
	cand := &types.CandidateProfile{
		Degree:          "Bachelor of Science",
		YearsExperience: 8,
		Skills:          []string{"Minitab", "Lean"},
		Technologies:    []string{"SQL"},
		TravelOk:        true,
	}
	entries := []types.ExperienceEntry{
		{
			Company: "Widgets Inc",
			Title:   "Process Engineer",
			Bullets: []string{
				"Reduced scrap 12% using Minitab and SPC",
				"Assisted with supplier onboarding",
				"Led lean kaizen events across 3 production lines",
			},
		},
	}
	return job, cand, entries
}

func TestRun_EndToEnd(t *testing.T) {
	job, cand, entries := sampleInputs()

	result := Run(job, cand, entries, Options{})

	require.NotNil(t, result.Requirement)
	require.NotNil(t, result.Breakdown)
	require.NotNil(t, result.Coverage)

	assert.Equal(t, 6, result.Requirement.YearsExperienceRequired)
	assert.NotEmpty(t, result.Keywords)
	assert.NotEmpty(t, result.Content.Bullets)
	assert.NotContains(t, result.Content.Bullets, "Assisted with supplier onboarding")
	assert.GreaterOrEqual(t, result.Breakdown.Overall, 0.0)
	assert.LessOrEqual(t, result.Breakdown.Overall, 100.0)
}

func TestRun_Deterministic(t *testing.T) {
	job, cand, entries := sampleInputs()

	first := Run(job, cand, entries, Options{})
	second := Run(job, cand, entries, Options{})

	assert.Equal(t, first, second)
}

func TestRun_EmptyJobText(t *testing.T) {
	cand := &types.CandidateProfile{}

	result := Run(JobInput{Company: "Acme"}, cand, nil, Options{})

	assert.Empty(t, result.Keywords)
	assert.Equal(t, 0, result.Requirement.YearsExperienceRequired)
	assert.NotNil(t, result.Breakdown)
}

func TestOptions_Defaults(t *testing.T) {
	opts := Options{}.withDefaults()

	assert.Equal(t, DefaultKeywordLimit, opts.KeywordLimit)
	assert.Equal(t, DefaultMaxBullets, opts.MaxBullets)
	assert.Equal(t, DefaultMaxSkills, opts.MaxSkills)

	custom := Options{MaxBullets: 3}.withDefaults()
	assert.Equal(t, 3, custom.MaxBullets)
}
