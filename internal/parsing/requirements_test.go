package parsing

import (
	"testing"

	"github.com/jonathan/jobmatch/internal/keywords"
	"github.com/stretchr/testify/assert"
)

func TestParseYearsRequired_FirstMatchWins(t *testing.T) {
	jd := "Requires 5 years in automation and 10 years overall experience."

	assert.Equal(t, 5, ParseYearsRequired(jd))
}

func TestParseYearsRequired_PlusSuffix(t *testing.T) {
	assert.Equal(t, 8, ParseYearsRequired("8+ years of engineering experience"))
}

func TestParseYearsRequired_NoMention(t *testing.T) {
	assert.Equal(t, 0, ParseYearsRequired("Senior engineer for our quality team."))
	assert.Equal(t, 0, ParseYearsRequired(""))
}

func TestParseEducationRequired(t *testing.T) {
	assert.Equal(t, "Bachelor's in Science/Engineering",
		ParseEducationRequired("Bachelor's degree in engineering required"))
	assert.Equal(t, "", ParseEducationRequired("PhD preferred"))
	assert.Equal(t, "", ParseEducationRequired(""))
}

func TestParseJobDescription_DerivesKeywords(t *testing.T) {
	jd := "Looking for lean manufacturing experience with SolidWorks and ISO 9001. 6 years required. Bachelor degree."

	req := ParseJobDescription("Acme", "Process Engineer", "Austin, TX", "high", jd, nil, nil)

	assert.Equal(t, "Acme", req.Company)
	assert.Equal(t, 6, req.YearsExperienceRequired)
	assert.Equal(t, "Bachelor's in Science/Engineering", req.EducationRequired)
	assert.True(t, req.Keywords["lean"])
	assert.True(t, req.Keywords["manufacturing"])
	assert.True(t, req.Keywords["solidworks"])
	assert.True(t, req.Keywords["iso 9001"])
	assert.False(t, req.Keywords["python"])
}

func TestParseJobDescription_KeywordsSubsetOfGroups(t *testing.T) {
	jd := "Quality engineer with FMEA, CAPA, travel up to 25%, Minitab and SQL."
	union := keywords.CanonicalGroups().AllPhrases()

	req := ParseJobDescription("Acme", "QE", "", "", jd, nil, nil)

	for kw := range req.Keywords {
		assert.True(t, union[kw], "derived keyword %q not in any canonical group", kw)
	}
}

func TestParseJobDescription_EmptyText(t *testing.T) {
	req := ParseJobDescription("Acme", "QE", "", "", "", nil, nil)

	assert.Equal(t, 0, req.YearsExperienceRequired)
	assert.Equal(t, "", req.EducationRequired)
	assert.Empty(t, req.Keywords)
}

func TestParseWithGroups_SyntheticTable(t *testing.T) {
	groups := keywords.Groups{
		keywords.GroupTech: {"cobol"},
	}

	req := ParseWithGroups("Acme", "Dev", "", "", "Must know COBOL well", nil, nil, groups)

	assert.Equal(t, map[string]bool{"cobol": true}, req.Keywords)
}
