// Package highlight colors generated JSX for terminal output.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"
)

const lexer = "jsx"

// Terminal returns code colored with the chroma style for 256-color
// terminals. Code is returned untouched if highlighting fails.
func Terminal(code, style string) string {
	if style == "" {
		style = "dracula"
	}
	var b strings.Builder
	if err := quick.Highlight(&b, code, lexer, "terminal256", style); err != nil {
		return code
	}
	return b.String()
}

// Markdown renders code as a fenced block wrapped at width, for panels that
// already render markdown.
func Markdown(code string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render("```" + lexer + "\n" + code + "\n```\n")
}
