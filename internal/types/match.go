package types

// MatchBreakdown is the scoring result for one (JobRequirement,
// CandidateProfile) pair. It is a pure value object: created fresh per
// scoring call and never mutated after construction.
//
// Invariant: Overall == Σ(weight_i × dimension_i) for the fixed weight
// table in the scoring package; all values lie in [0, 100].
type MatchBreakdown struct {
	Overall float64 `json:"overall"`

	MustHave   float64 `json:"must_have"`
	Tech       float64 `json:"tech"`
	Process    float64 `json:"process"`
	Leadership float64 `json:"leadership"`
	NPI        float64 `json:"npi"`
	Mindset    float64 `json:"mindset"`
	Logistics  float64 `json:"logistics"`

	// Gaps lists human-readable unmet requirement descriptions,
	// deduplicated and sorted for deterministic output.
	Gaps []string `json:"gaps,omitempty"`
}

// KeywordExtraction is the transient result of text mining a job
// description. Not persisted; recomputed per JD text on demand.
type KeywordExtraction struct {
	TopKeywords []string `json:"top_keywords"`
}

// CoverageReport cross-references produced content against a keyword set.
type CoverageReport struct {
	Matched map[string]bool `json:"matched"`
	// Missing preserves the original keyword ranking.
	Missing            []string `json:"missing"`
	KeywordCoveragePct int      `json:"keyword_coverage_pct"`

	// Advisory heuristic flags, reported alongside the coverage figure.
	// They drive recommendations but are never hard gates.
	Flags           []string `json:"flags,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// SelectedContent is the ranked subset of candidate material chosen for a
// target role, consumed by external renderers.
type SelectedContent struct {
	Bullets []string `json:"bullets"`
	Skills  []string `json:"skills"`
}
