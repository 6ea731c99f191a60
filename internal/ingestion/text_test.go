package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesWhitespace(t *testing.T) {
	input := "Quality   Engineer\r\n\r\n\r\n•  Own SPC   program\r\n• Run audits"

	result := CleanText(input)

	assert.Equal(t, "Quality Engineer\n\n- Own SPC program\n- Run audits", result)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\n  "))
}

func TestExtractText_StripsChrome(t *testing.T) {
	html := `<html><head><style>.x{}</style></head><body>
		<nav>Home | Jobs</nav>
		<h1>Quality Engineer</h1>
		<p>Own the SPC program.</p>
		<ul><li>6 years experience</li><li>Minitab required</li></ul>
		<script>track()</script>
		<footer>© Acme</footer>
	</body></html>`

	text, err := ExtractText(html)

	require.NoError(t, err)
	assert.Contains(t, text, "Quality Engineer")
	assert.Contains(t, text, "Minitab required")
	assert.NotContains(t, text, "track()")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "© Acme")
}

func TestExtractText_FallsBackToBody(t *testing.T) {
	text, err := ExtractText("<html><body>plain posting text</body></html>")

	require.NoError(t, err)
	assert.Contains(t, text, "plain posting text")
}
