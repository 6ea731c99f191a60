// Package pipeline chains the engine stages — keyword extraction,
// requirement parsing, match scoring, content selection and coverage
// analysis — into a single pure call over in-memory structures.
package pipeline

import (
	"strings"

	"github.com/jonathan/jobmatch/internal/coverage"
	"github.com/jonathan/jobmatch/internal/keywords"
	"github.com/jonathan/jobmatch/internal/parsing"
	"github.com/jonathan/jobmatch/internal/scoring"
	"github.com/jonathan/jobmatch/internal/selection"
	"github.com/jonathan/jobmatch/internal/types"
)

// Default selection bounds, used when an Options field is zero.
const (
	DefaultKeywordLimit = 20
	DefaultMaxBullets   = 8
	DefaultMaxSkills    = 12
)

// JobInput is the raw posting plus caller-supplied metadata.
type JobInput struct {
	Company  string `json:"company"`
	Role     string `json:"role"`
	Location string `json:"location,omitempty"`
	Priority string `json:"priority,omitempty"`
	Text     string `json:"text"`
}

// Options bounds the selection stages.
type Options struct {
	KeywordLimit int `json:"keyword_limit,omitempty"`
	MaxBullets   int `json:"max_bullets,omitempty"`
	MaxSkills    int `json:"max_skills,omitempty"`
}

func (o Options) withDefaults() Options {
	if o.KeywordLimit <= 0 {
		o.KeywordLimit = DefaultKeywordLimit
	}
	if o.MaxBullets <= 0 {
		o.MaxBullets = DefaultMaxBullets
	}
	if o.MaxSkills <= 0 {
		o.MaxSkills = DefaultMaxSkills
	}
	return o
}

// Result collects every stage output for one (job, candidate) pair.
type Result struct {
	Job         JobInput               `json:"job"`
	Keywords    []string               `json:"keywords"`
	Requirement *types.JobRequirement  `json:"requirement"`
	Breakdown   *types.MatchBreakdown  `json:"breakdown"`
	Content     *types.SelectedContent `json:"content"`
	Coverage    *types.CoverageReport  `json:"coverage"`
}

// Run executes the full pipeline for one job posting. Every stage is pure,
// so callers may invoke Run concurrently for independent pairs without
// locking.
func Run(job JobInput, cand *types.CandidateProfile, entries []types.ExperienceEntry, opts Options) *Result {
	opts = opts.withDefaults()

	kws := keywords.Extract(job.Text, opts.KeywordLimit)
	req := parsing.ParseJobDescription(job.Company, job.Role, job.Location, job.Priority, job.Text, nil, nil)
	breakdown := scoring.NewScorer().ComputeMatch(req, cand)

	var bullets []string
	for _, entry := range entries {
		bullets = append(bullets, entry.Bullets...)
	}
	var skills []string
	skills = append(skills, cand.Skills...)
	skills = append(skills, cand.Technologies...)
	skills = append(skills, cand.Methodologies...)

	content := &types.SelectedContent{
		Bullets: selection.SelectBullets(bullets, kws, opts.MaxBullets),
		Skills:  selection.SelectSkills(skills, kws, opts.MaxSkills),
	}

	finalText := strings.Join(content.Bullets, "\n") + "\n" + strings.Join(content.Skills, "\n")
	cov := coverage.Analyze(finalText, kws)

	return &Result{
		Job:         job,
		Keywords:    kws,
		Requirement: req,
		Breakdown:   breakdown,
		Content:     content,
		Coverage:    cov,
	}
}
