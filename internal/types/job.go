package types

// JobRequirement holds the parsed facts about one target role.
//
// The derived fields (YearsExperienceRequired, EducationRequired, Keywords)
// are a pure function of RawText. They must be recomputed via
// parsing.ParseJobDescription whenever RawText changes, never hand-edited.
type JobRequirement struct {
	Company  string `json:"company"`
	Role     string `json:"role"`
	Location string `json:"location,omitempty"`
	Priority string `json:"priority,omitempty"`

	// RawText is the source job description, retained for re-extraction.
	RawText string `json:"raw_text,omitempty"`

	// Explicit requirement lists; may be empty when the caller only has
	// free text.
	MustHaves   []string `json:"must_haves,omitempty"`
	NiceToHaves []string `json:"nice_to_haves,omitempty"`

	// YearsExperienceRequired is 0 when the posting does not state a figure.
	YearsExperienceRequired int `json:"years_experience_required,omitempty" validate:"gte=0"`

	// EducationRequired is free text or empty.
	EducationRequired string `json:"education_required,omitempty"`

	// Keywords is the set of canonical-group phrases found in RawText.
	// Invariant: every member belongs to one of the canonical keyword groups.
	Keywords map[string]bool `json:"keywords,omitempty"`
}

// MentionsKeyword reports whether the derived keyword set contains the phrase.
func (j *JobRequirement) MentionsKeyword(phrase string) bool {
	return j.Keywords[phrase]
}
