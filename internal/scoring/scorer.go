// Package scoring computes weighted multi-dimension match scores between a
// candidate profile and a parsed job requirement.
package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/jobmatch/internal/keywords"
	"github.com/jonathan/jobmatch/internal/types"
)

// Dimension weights. Fixed by design; they must sum to exactly 1.0.
const (
	weightMustHave   = 0.30
	weightTech       = 0.25
	weightProcess    = 0.15
	weightLeadership = 0.10
	weightNPI        = 0.10
	weightMindset    = 0.05
	weightLogistics  = 0.05
)

// Gating multipliers applied to the mustHave dimension.
const (
	yearsShortfallPenalty = 0.5
	educationPenalty      = 0.6
)

// logisticsPenalty halves the logistics score per unmet mobility mention.
// Travel and relocation penalties compound multiplicatively.
const logisticsPenalty = 0.5

// Weights returns the fixed weight table keyed by canonical group name.
func Weights() map[string]float64 {
	return map[string]float64{
		keywords.GroupMustHave:   weightMustHave,
		keywords.GroupTech:       weightTech,
		keywords.GroupProcess:    weightProcess,
		keywords.GroupLeadership: weightLeadership,
		keywords.GroupNPI:        weightNPI,
		keywords.GroupMindset:    weightMindset,
		keywords.GroupLogistics:  weightLogistics,
	}
}

// Scorer scores candidate profiles against job requirements using an
// injectable keyword group table. The zero-argument constructor uses the
// canonical rubric; tests may substitute small synthetic groups.
type Scorer struct {
	groups keywords.Groups
}

// NewScorer returns a Scorer over the canonical keyword groups.
func NewScorer() *Scorer {
	return &Scorer{groups: keywords.CanonicalGroups()}
}

// NewScorerWithGroups returns a Scorer over a caller-supplied group table.
func NewScorerWithGroups(groups keywords.Groups) *Scorer {
	return &Scorer{groups: groups}
}

// HitRatio returns the fraction (0-100) of the named group's phrases present
// in the candidate token set. Requesting a group absent from the table is an
// explicit invalid-argument failure.
func (s *Scorer) HitRatio(group string, candidateTokens map[string]bool) (float64, error) {
	phrases, ok := s.groups[group]
	if !ok {
		return 0, &UnknownGroupError{Name: group}
	}
	return hitRatio(phrases, candidateTokens), nil
}

// ComputeMatch scores a candidate against a requirement across the seven
// weighted dimensions. Pure function: no I/O, no randomness; identical
// inputs always yield identical output.
func (s *Scorer) ComputeMatch(req *types.JobRequirement, cand *types.CandidateProfile) *types.MatchBreakdown {
	tokens := cand.Tokens()
	var gaps []string

	mustHave := hitRatio(s.groups[keywords.GroupMustHave], tokens)
	tech := hitRatio(s.groups[keywords.GroupTech], tokens)
	process := hitRatio(s.groups[keywords.GroupProcess], tokens)
	leadership := hitRatio(s.groups[keywords.GroupLeadership], tokens)
	npi := hitRatio(s.groups[keywords.GroupNPI], tokens)
	mindset := hitRatio(s.groups[keywords.GroupMindset], tokens)
	logistics := s.logisticsScore(req, cand)

	// Gating penalties on mustHave, applied in order.
	if req.YearsExperienceRequired > 0 && cand.YearsExperience < req.YearsExperienceRequired {
		mustHave *= yearsShortfallPenalty
		gaps = append(gaps, fmt.Sprintf("Experience: %d years < %d years required",
			cand.YearsExperience, req.YearsExperienceRequired))
	}
	if strings.HasPrefix(strings.ToLower(req.EducationRequired), "bachelor") && !cand.HasBachelor() {
		mustHave *= educationPenalty
		gaps = append(gaps, "Education: bachelor's degree required")
	}

	gaps = append(gaps, s.keywordGaps(req, tokens)...)

	overall := weightMustHave*mustHave +
		weightTech*tech +
		weightProcess*process +
		weightLeadership*leadership +
		weightNPI*npi +
		weightMindset*mindset +
		weightLogistics*logistics

	return &types.MatchBreakdown{
		Overall:    round2(overall),
		MustHave:   round2(mustHave),
		Tech:       round2(tech),
		Process:    round2(process),
		Leadership: round2(leadership),
		NPI:        round2(npi),
		Mindset:    round2(mindset),
		Logistics:  round2(logistics),
		Gaps:       dedupeSorted(gaps),
	}
}

// logisticsScore starts at 100 and halves per unmet mobility mention in the
// posting text. The two penalties compound multiplicatively, not additively.
func (s *Scorer) logisticsScore(req *types.JobRequirement, cand *types.CandidateProfile) float64 {
	score := 100.0
	lower := strings.ToLower(req.RawText)
	if strings.Contains(lower, "travel") && !cand.TravelOk {
		score *= logisticsPenalty
	}
	if strings.Contains(lower, "relocation") && !cand.RelocationOk {
		score *= logisticsPenalty
	}
	return score
}

// keywordGaps records tech and process phrases the posting asks for that the
// candidate's tokens do not cover.
func (s *Scorer) keywordGaps(req *types.JobRequirement, tokens map[string]bool) []string {
	var gaps []string
	for _, phrase := range s.groups[keywords.GroupTech] {
		if req.Keywords[phrase] && !tokens[phrase] {
			gaps = append(gaps, "Tech exposure: "+phrase)
		}
	}
	for _, phrase := range s.groups[keywords.GroupProcess] {
		if req.Keywords[phrase] && !tokens[phrase] {
			gaps = append(gaps, "Process/Regulated: "+phrase)
		}
	}
	return gaps
}

// hitRatio returns hits/|group| scaled to 0-100, flooring the denominator
// at 1 so empty synthetic groups cannot divide by zero.
func hitRatio(phrases []string, tokens map[string]bool) float64 {
	hits := 0
	for _, phrase := range phrases {
		if tokens[phrase] {
			hits++
		}
	}
	denom := len(phrases)
	if denom < 1 {
		denom = 1
	}
	return float64(hits) / float64(denom) * 100
}

func dedupeSorted(gaps []string) []string {
	if len(gaps) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(gaps))
	out := make([]string, 0, len(gaps))
	for _, g := range gaps {
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	sort.Strings(out)
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
