package selection

import (
	"strings"

	"github.com/jonathan/jobmatch/internal/keywords"
)

// SelectSkills partitions skills into keyword-matched and unmatched,
// listing matched skills first. Each partition keeps its original relative
// order; duplicates (exact string) are dropped and the result is truncated
// to maxSkills. Matching considers JD keywords plus their synonyms.
func SelectSkills(skills, jdKeywords []string, maxSkills int) []string {
	if maxSkills <= 0 {
		return []string{}
	}

	terms := keywords.Expand(jdKeywords, keywords.DefaultSynonyms())

	var matched, unmatched []string
	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		if skillMatches(skill, terms) {
			matched = append(matched, skill)
		} else {
			unmatched = append(unmatched, skill)
		}
	}

	out := append(matched, unmatched...)
	if len(out) > maxSkills {
		out = out[:maxSkills]
	}
	return out
}

// skillMatches reports whether any keyword or synonym appears in the skill.
func skillMatches(skill string, terms map[string]bool) bool {
	lower := strings.ToLower(skill)
	for term := range terms {
		if term != "" && strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
