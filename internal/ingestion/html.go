// Package ingestion turns fetched job postings into clean plain text the
// engine can mine.
package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// chromeSelectors are page elements that never carry posting content.
var chromeSelectors = []string{
	"script", "style", "noscript", "nav", "header", "footer",
	"iframe", "svg", "form",
}

// ExtractText strips page chrome from posting HTML and returns readable
// text, one block element per line.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", &ExtractError{Message: "failed to parse HTML", Cause: err}
	}

	for _, sel := range chromeSelectors {
		doc.Find(sel).Remove()
	}

	var sb strings.Builder
	doc.Find("h1, h2, h3, h4, p, li, td, div").Each(func(_ int, s *goquery.Selection) {
		// Skip container divs; only leaf divs carry their own text.
		if goquery.NodeName(s) == "div" && s.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Fall back to the whole body when the structure is unusual.
		text = doc.Find("body").Text()
	}

	return CleanText(text), nil
}
