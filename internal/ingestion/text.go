package ingestion

import (
	"fmt"
	"regexp"
	"strings"
)

// multiSpaceRe collapses runs of inline whitespace.
var multiSpaceRe = regexp.MustCompile(`[ \t]+`)

// ExtractError reports a failure turning HTML into text.
type ExtractError struct {
	Message string
	Cause   error
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingestion error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("ingestion error: %s", e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// CleanText normalizes line endings and whitespace while preserving the
// posting's line structure (headings and bullet lists survive as lines).
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = multiSpaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
		// Normalize unicode bullets to markdown-style dashes.
		for _, bullet := range []string{"•", "◦", "▪", "–"} {
			if strings.HasPrefix(line, bullet) {
				line = "- " + strings.TrimSpace(strings.TrimPrefix(line, bullet))
				break
			}
		}
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = collapseBlankLines(result)
	return strings.TrimSpace(result)
}

// collapseBlankLines limits consecutive blank lines to one.
func collapseBlankLines(text string) string {
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return text
}
