package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfile_Valid(t *testing.T) {
	doc := []byte(`{
		"candidate": {
			"degree": "Bachelor of Science",
			"years_experience": 8,
			"skills": ["Minitab"],
			"travel_ok": true
		},
		"experience": [
			{"company": "Widgets Inc", "title": "Process Engineer", "bullets": ["Reduced scrap 12%"]}
		]
	}`)

	assert.NoError(t, ValidateProfile(doc))
}

func TestValidateProfile_MissingCandidate(t *testing.T) {
	err := ValidateProfile([]byte(`{"experience": []}`))

	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateProfile_NegativeYears(t *testing.T) {
	doc := []byte(`{"candidate": {"years_experience": -1}}`)

	err := ValidateProfile(doc)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "years_experience")
}

func TestValidateProfile_UnknownField(t *testing.T) {
	doc := []byte(`{"candidate": {"favorite_color": "blue"}}`)

	assert.Error(t, ValidateProfile(doc))
}

func TestValidateProfile_MalformedJSON(t *testing.T) {
	assert.Error(t, ValidateProfile([]byte(`{not json`)))
}
