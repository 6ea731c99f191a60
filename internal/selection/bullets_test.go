package selection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectBullets_FiltersWeakLanguage(t *testing.T) {
	bullets := []string{
		"Assisted with onboarding of new suppliers",
		"Reduced scrap rate by 12% through SPC monitoring",
		"Helped with documentation cleanup",
	}

	selected := SelectBullets(bullets, nil, 5)

	assert.Equal(t, []string{"Reduced scrap rate by 12% through SPC monitoring"}, selected)
}

func TestSelectBullets_RanksByScore(t *testing.T) {
	bullets := []string{
		"Maintained lab equipment inventory",
		"Reduced cycle time 30% by automating the test fixture with Python",
		"Attended weekly quality meetings",
	}

	selected := SelectBullets(bullets, []string{"python", "quality"}, 2)

	assert.Equal(t, "Reduced cycle time 30% by automating the test fixture with Python", selected[0])
	assert.Len(t, selected, 2)
}

func TestSelectBullets_DiversityConstraint(t *testing.T) {
	bullets := []string{
		"Led the team to deliver the pilot build 2 weeks early",
		"Led the team to reduce defects by 40%",
		"Launched supplier scorecards saving $200K annually",
	}

	selected := SelectBullets(bullets, nil, 3)

	prefixes := make(map[string]bool)
	for _, b := range selected {
		words := strings.Fields(strings.ToLower(b))[:3]
		prefix := strings.Join(words, " ")
		assert.False(t, prefixes[prefix], "duplicate opening prefix %q", prefix)
		prefixes[prefix] = true
	}
	assert.Len(t, selected, 2)
}

func TestSelectBullets_RespectsMax(t *testing.T) {
	bullets := []string{
		"Designed fixture A", "Built fixture B", "Created fixture C", "Shipped fixture D",
	}

	assert.Len(t, SelectBullets(bullets, nil, 2), 2)
	assert.Empty(t, SelectBullets(bullets, nil, 0))
}

func TestSelectBullets_StableTies(t *testing.T) {
	bullets := []string{"Alpha task one", "Bravo task two", "Charlie task three"}

	selected := SelectBullets(bullets, nil, 3)

	// Equal scores keep original resume order.
	assert.Equal(t, bullets, selected)
}

func TestScoreBullet_Components(t *testing.T) {
	// 2 keywords + metric + strong verb.
	score := ScoreBullet("Reduced scrap 15% using Minitab and SPC", []string{"minitab", "spc"})
	assert.Equal(t, 2+3+2, score)

	// Over-long bullet loses a point.
	long := "Implemented " + strings.Repeat("very ", 35) + "long process"
	assert.Greater(t, len(long), 160)
	assert.Equal(t, 2-1, ScoreBullet(long, nil))

	// Plain bullet scores zero.
	assert.Equal(t, 0, ScoreBullet("Attended meetings", nil))
}

func TestScoreBullet_CurrencyCountsAsMetric(t *testing.T) {
	assert.Equal(t, 3, ScoreBullet("Cut annual spend by $250K", nil))
}

func TestSelectSkills_MatchedFirst(t *testing.T) {
	skills := []string{"Project Management", "Minitab", "CAD Drafting", "SQL"}

	selected := SelectSkills(skills, []string{"sql", "minitab"}, 10)

	assert.Equal(t, []string{"Minitab", "SQL", "Project Management", "CAD Drafting"}, selected)
}

func TestSelectSkills_SynonymMatch(t *testing.T) {
	// "lean" expands to kaizen via the synonym table.
	selected := SelectSkills([]string{"Kaizen Facilitation", "Budgeting"}, []string{"lean"}, 10)

	assert.Equal(t, "Kaizen Facilitation", selected[0])
}

func TestSelectSkills_DeduplicatesAndTruncates(t *testing.T) {
	skills := []string{"SQL", "SQL", "Python", "Minitab"}

	selected := SelectSkills(skills, []string{"sql"}, 2)

	assert.Equal(t, []string{"SQL", "Python"}, selected)
}

func TestSelectSkills_EmptyInputs(t *testing.T) {
	assert.Empty(t, SelectSkills(nil, nil, 5))
	assert.Empty(t, SelectSkills([]string{"SQL"}, nil, 0))
}
