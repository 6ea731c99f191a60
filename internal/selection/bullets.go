// Package selection scores and selects a bounded, deduplicated,
// diversity-constrained subset of experience bullets and skill tokens,
// ordered by relevance to a target job description.
package selection

import (
	"regexp"
	"sort"
	"strings"
)

// Bullet scoring rubric.
const (
	keywordPoints    = 1
	metricPoints     = 3
	strongVerbPoints = 2
	overLengthPoints = -1

	// maxBulletLength is the length past which a bullet is harder to scan
	// and may truncate in renderers.
	maxBulletLength = 160

	// diversityPrefixWords is the opening-word window used to reject
	// near-identical bullets.
	diversityPrefixWords = 3
)

// weakLanguageRe matches bullet openers considered non-competitive
// regardless of other scoring.
var weakLanguageRe = regexp.MustCompile(`(?i)\b(assisted with|helped with|responsible for|participated in)\b`)

// metricRe recognizes quantified impact: percentages, currency, or an
// achievement verb.
var metricRe = regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*%|[$€£]\s*\d|\b(reduced|increased|decreased|improved|saved|grew)\b`)

// strongVerbs are recognized strong opening action verbs.
var strongVerbs = map[string]bool{
	"achieved": true, "architected": true, "built": true, "created": true,
	"delivered": true, "designed": true, "developed": true, "drove": true,
	"engineered": true, "implemented": true, "improved": true,
	"increased": true, "launched": true, "led": true, "optimized": true,
	"reduced": true, "scaled": true, "shipped": true, "streamlined": true,
}

// scoredBullet pairs a bullet with its relevance score; original order is
// retained through stable sorting.
type scoredBullet struct {
	text  string
	score int
}

// SelectBullets scores every bullet against the JD keywords and greedily
// picks the top maxBullets, enforcing lexical diversity: no two selected
// bullets may share the same (case-insensitive) first three words.
func SelectBullets(bullets, jdKeywords []string, maxBullets int) []string {
	if maxBullets <= 0 {
		return []string{}
	}

	scored := make([]scoredBullet, 0, len(bullets))
	for _, bullet := range bullets {
		if strings.TrimSpace(bullet) == "" || weakLanguageRe.MatchString(bullet) {
			continue
		}
		scored = append(scored, scoredBullet{text: bullet, score: ScoreBullet(bullet, jdKeywords)})
	}

	// Stable sort keeps original resume order among equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	selected := make([]string, 0, maxBullets)
	usedPrefixes := make(map[string]bool)
	for _, sb := range scored {
		prefix := openingPrefix(sb.text)
		if usedPrefixes[prefix] {
			continue
		}
		usedPrefixes[prefix] = true
		selected = append(selected, sb.text)
		if len(selected) >= maxBullets {
			break
		}
	}
	return selected
}

// ScoreBullet computes the relevance score for one bullet: +1 per JD keyword
// literally present, +3 for a recognized metric pattern, +2 for a strong
// opening verb, -1 when over-long.
func ScoreBullet(bullet string, jdKeywords []string) int {
	lower := strings.ToLower(bullet)
	score := 0

	for _, kw := range jdKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(lower, kw) {
			score += keywordPoints
		}
	}

	if metricRe.MatchString(bullet) {
		score += metricPoints
	}

	if words := strings.Fields(lower); len(words) > 0 {
		first := strings.TrimRight(words[0], ".,!?;:")
		if strongVerbs[first] {
			score += strongVerbPoints
		}
	}

	if len(bullet) > maxBulletLength {
		score += overLengthPoints
	}

	return score
}

// openingPrefix returns the lower-cased first three words of a bullet.
func openingPrefix(bullet string) string {
	words := strings.Fields(strings.ToLower(bullet))
	if len(words) > diversityPrefixWords {
		words = words[:diversityPrefixWords]
	}
	return strings.Join(words, " ")
}
