package markup

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// parseMarkup loads generated JSX into a DOM. The HTML parser lowercases
// attribute names, so className is queried as classname.
func parseMarkup(t testing.TB, code string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(code))
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}
	return doc
}

func trimmedText(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}
