package markup

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// JSX uses {{ }} for inline styles, so the templates use [[ ]] instead.
var templates = template.Must(
	template.New("markup").Delims("[[", "]]").ParseFS(templateFS, "templates/*.tmpl"),
)

// execute runs a parsed template. The template set is fixed at build time and
// fed view structs built in this package, so a failure is a programming error.
func execute(name string, view any) string {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, view); err != nil {
		panic("markup: executing " + name + ": " + err.Error())
	}
	return strings.TrimSpace(b.String())
}
