package keywords

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultMinTokenLength is the default floor for token length. Shorter
// tokens carry little discriminative value and inflate noise.
const DefaultMinTokenLength = 4

// stopwords filters conjunctions, auxiliary verbs and generic fillers that
// add noise to frequency ranking.
var stopwords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "over": true,
	"these": true, "those": true, "such": true, "within": true,
	"should": true, "would": true, "must": true, "able": true,
	"other": true, "work": true, "working": true, "including": true,
	"experience": true, "years": true, "strong": true, "skills": true,
}

// Extract tokenizes job-description text into lower-cased alphabetic runs,
// drops stopwords and tokens shorter than DefaultMinTokenLength, ranks the
// rest by descending frequency (ties broken by first occurrence in the
// source text) and truncates to limit. Empty input yields an empty slice;
// the function never fails.
func Extract(text string, limit int) []string {
	return ExtractWithMinLength(text, limit, DefaultMinTokenLength)
}

// ExtractWithMinLength is Extract with a caller-chosen token length floor.
func ExtractWithMinLength(text string, limit, minLength int) []string {
	if text == "" || limit <= 0 {
		return []string{}
	}
	if minLength < 1 {
		minLength = 1
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	var word strings.Builder
	flush := func() {
		token := word.String()
		word.Reset()
		if len(token) < minLength || stopwords[token] {
			return
		}
		if _, seen := counts[token]; !seen {
			firstSeen[token] = order
			order++
		}
		counts[token]++
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	tokens := make([]string, 0, len(counts))
	for token := range counts {
		tokens = append(tokens, token)
	}
	// Sort into source order first so the stable frequency sort breaks
	// ties deterministically by first occurrence.
	sort.Slice(tokens, func(i, j int) bool {
		return firstSeen[tokens[i]] < firstSeen[tokens[j]]
	})
	sort.SliceStable(tokens, func(i, j int) bool {
		return counts[tokens[i]] > counts[tokens[j]]
	})

	if len(tokens) > limit {
		tokens = tokens[:limit]
	}
	return tokens
}

// Expand unions each keyword's synonyms (when the keyword is a key in the
// table) into a set alongside the keywords themselves. Used only by the
// ranker, never by the extractor's primary output, so the coverage report
// is not inflated with invented terms.
func Expand(kws []string, table map[string][]string) map[string]bool {
	expanded := make(map[string]bool, len(kws))
	for _, kw := range kws {
		lower := strings.ToLower(kw)
		expanded[lower] = true
		for _, syn := range table[lower] {
			expanded[strings.ToLower(syn)] = true
		}
	}
	return expanded
}
