// Package parsing derives structured requirement facts from free-text job
// descriptions: required years of experience, required degree, and
// membership of the canonical keyword groups.
package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/jobmatch/internal/keywords"
	"github.com/jonathan/jobmatch/internal/types"
)

// yearsRequiredRe matches figures like "5 years", "10+ years", "7 yrs".
var yearsRequiredRe = regexp.MustCompile(`(\d+)\s*\+?\s*(?:years|yrs)`)

// bachelorEducation is the canned classification returned when a posting
// mentions a bachelor's degree. This is a coarse classifier, not a parser
// of arbitrary degree requirements.
const bachelorEducation = "Bachelor's in Science/Engineering"

// ParseJobDescription derives a JobRequirement from raw posting text plus
// caller-supplied metadata. All extraction is deterministic and never
// fails: empty text yields zero values and an empty keyword set.
func ParseJobDescription(company, role, location, priority, jdText string, mustHaves, niceToHaves []string) *types.JobRequirement {
	return ParseWithGroups(company, role, location, priority, jdText, mustHaves, niceToHaves, keywords.CanonicalGroups())
}

// ParseWithGroups is ParseJobDescription with an injectable group table,
// letting tests substitute small synthetic groups.
func ParseWithGroups(company, role, location, priority, jdText string, mustHaves, niceToHaves []string, groups keywords.Groups) *types.JobRequirement {
	return &types.JobRequirement{
		Company:                 company,
		Role:                    role,
		Location:                location,
		Priority:                priority,
		RawText:                 jdText,
		MustHaves:               mustHaves,
		NiceToHaves:             niceToHaves,
		YearsExperienceRequired: ParseYearsRequired(jdText),
		EducationRequired:       ParseEducationRequired(jdText),
		Keywords:                deriveKeywords(jdText, groups),
	}
}

// ParseYearsRequired returns the figure from the first "<N> years" mention
// in the text, or 0 when none is found.
//
// Known simplification: the first match is used, not the maximum across all
// mentions, so a posting stating "5 years in X, 10 years overall" parses as
// 5. Callers needing the most stringent figure must pre-filter the text.
func ParseYearsRequired(jdText string) int {
	m := yearsRequiredRe.FindStringSubmatch(strings.ToLower(jdText))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseEducationRequired returns a canned bachelor's classification when the
// text mentions one, else an empty string.
func ParseEducationRequired(jdText string) string {
	if strings.Contains(strings.ToLower(jdText), "bachelor") {
		return bachelorEducation
	}
	return ""
}

// deriveKeywords returns the canonical-group phrases found in the text via
// case-insensitive substring containment.
func deriveKeywords(jdText string, groups keywords.Groups) map[string]bool {
	found := make(map[string]bool)
	if jdText == "" {
		return found
	}
	lower := strings.ToLower(jdText)
	for _, phrases := range groups {
		for _, phrase := range phrases {
			if strings.Contains(lower, phrase) {
				found[phrase] = true
			}
		}
	}
	return found
}
