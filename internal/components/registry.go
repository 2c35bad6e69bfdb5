package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phravins/landinggen/internal/markup"
	"github.com/phravins/landinggen/internal/preset"
	"github.com/sahilm/fuzzy"
)

// ErrUnknown is wrapped by Lookup when no component has the requested name.
var ErrUnknown = errors.New("unknown component")

// Component describes one generator.
type Component struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Layouts     []string `json:"layouts"`
	Backgrounds []string `json:"backgrounds"`

	render func(doc *preset.Document) (string, error)
}

// Render decodes doc as this component's record and renders it.
func (c Component) Render(doc *preset.Document) (string, error) {
	return c.render(doc)
}

// Registry holds the available components.
var Registry = []Component{
	{
		Name:        "hero",
		Title:       "Hero Section",
		Description: "Full-viewport hero with heading, description and optional CTA buttons",
		Layouts:     names(markup.Layouts),
		Backgrounds: names(markup.BackgroundKinds),
		render: func(doc *preset.Document) (string, error) {
			cfg, err := doc.Hero()
			if err != nil {
				return "", err
			}
			return markup.RenderHero(cfg), nil
		},
	},
	{
		Name:        "navbar",
		Title:       "Navigation Bar",
		Description: "Horizontal bar with logo, menu items and a login or sign-up button",
		Layouts:     []string{"bar"},
		Backgrounds: []string{string(markup.NavBackgroundStatic), string(markup.NavBackgroundGradient)},
		render: func(doc *preset.Document) (string, error) {
			cfg, err := doc.Navbar()
			if err != nil {
				return "", err
			}
			return markup.RenderNavbar(cfg), nil
		},
	},
}

func List() []Component {
	return Registry
}

// Lookup returns the component called name, ignoring case. On a miss the
// error lists fuzzy matches, best first.
func Lookup(name string) (Component, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, c := range Registry {
		if c.Name == key {
			return c, nil
		}
	}

	if s := Suggest(key); len(s) > 0 {
		return Component{}, fmt.Errorf("%w %q (did you mean %s?)", ErrUnknown, name, strings.Join(s, ", "))
	}
	return Component{}, fmt.Errorf("%w %q", ErrUnknown, name)
}

// Suggest returns component names fuzzy-matching query.
func Suggest(query string) []string {
	if query == "" {
		return nil
	}
	all := make([]string, len(Registry))
	for i, c := range Registry {
		all[i] = c.Name
	}
	var out []string
	for _, m := range fuzzy.Find(query, all) {
		out = append(out, m.Str)
	}
	return out
}

// Resolve picks the component a preset is for, using its component field.
// Bare presets need fallback to name the component.
func Resolve(doc *preset.Document, fallback string) (Component, error) {
	name := doc.Component
	if name == "" {
		name = fallback
	}
	if name == "" {
		return Component{}, errors.New("preset does not name a component")
	}
	return Lookup(name)
}

// Render renders a preset with the component Resolve picks.
func Render(doc *preset.Document, fallback string) (string, error) {
	c, err := Resolve(doc, fallback)
	if err != nil {
		return "", err
	}
	return c.Render(doc)
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
