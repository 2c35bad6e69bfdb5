package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/phravins/landinggen/internal/clipboard"
	"github.com/phravins/landinggen/internal/config"
	"github.com/phravins/landinggen/internal/markup"
)

type HeroFormModel struct {
	screen
}

func NewHeroForm(cfg *config.Config, clip clipboard.Writer) HeroFormModel {
	h := cfg.InitialHero()
	primary, secondary := buttonOrEmpty(h.Buttons.Primary), buttonOrEmpty(h.Buttons.Secondary)
	buttons := "off"
	if h.Buttons.Enabled {
		buttons = "on"
	}

	fields := []field{
		textField("heading", "Heading", h.Heading, "Build faster"),
		textField("description", "Description", h.Description, "One line about the product"),
		choiceField("layout", "Layout", string(h.Layout), stringsOf(markup.Layouts)),
		choiceField("font", "Font", string(h.Font), stringsOf(markup.Fonts)),
		choiceField("background", "Background", string(h.Background.Kind), stringsOf(markup.BackgroundKinds)),
		textField("url", "Image URL", h.Background.URL, "https://..."),
		textField("from", "Gradient from", string(h.Background.From), "#3b82f6"),
		textField("to", "Gradient to", string(h.Background.To), "#06b6d4"),
		choiceField("direction", "Direction", string(h.Background.Direction), stringsOf(markup.Directions)),
		textField("color", "Color", string(h.Background.Color), "#1e293b"),
		choiceField("buttons", "Buttons", buttons, []string{"off", "on"}),
		textField("primary_text", "Primary text", primary.Text, "Get Started"),
		textField("primary_color", "Primary color", string(primary.Color), "#3b82f6"),
		textField("secondary_text", "Secondary text", secondary.Text, "Learn More"),
		textField("secondary_color", "Secondary color", string(secondary.Color), "#64748b"),
	}

	m := HeroFormModel{screen: newScreen("Hero Section", newForm(fields, heroFieldShown), clip)}
	m.sync(m.code())
	return m
}

func heroFieldShown(f *form, key string) bool {
	switch key {
	case "url":
		return f.get("background") == string(markup.BackgroundImage)
	case "from", "to", "direction":
		return f.get("background") == string(markup.BackgroundGradient)
	case "color":
		return f.get("background") == string(markup.BackgroundSolid)
	case "primary_text", "primary_color", "secondary_text", "secondary_color":
		return f.get("buttons") == "on"
	}
	return true
}

// Config builds the hero record from the current field values. Hidden fields
// keep their values so switching back restores them.
func (m HeroFormModel) Config() markup.HeroConfig {
	f := &m.form
	return markup.HeroConfig{
		Heading:     f.get("heading"),
		Description: f.get("description"),
		Layout:      markup.Layout(f.get("layout")),
		Font:        markup.Font(f.get("font")),
		Background: markup.Background{
			Kind:      markup.BackgroundKind(f.get("background")),
			URL:       f.get("url"),
			From:      markup.Color(f.get("from")),
			To:        markup.Color(f.get("to")),
			Direction: markup.Direction(f.get("direction")),
			Color:     markup.Color(f.get("color")),
		},
		Buttons: markup.Buttons{
			Enabled:   f.get("buttons") == "on",
			Primary:   &markup.ButtonSpec{Text: f.get("primary_text"), Color: markup.Color(f.get("primary_color"))},
			Secondary: &markup.ButtonSpec{Text: f.get("secondary_text"), Color: markup.Color(f.get("secondary_color"))},
		},
	}
}

func (m HeroFormModel) code() string {
	return markup.RenderHero(m.Config())
}

func (m HeroFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m HeroFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, handled := m.handle(msg, m.code)
	if !handled {
		cmd = m.form.update(msg)
	}
	m.sync(m.code())
	return m, cmd
}

func (m HeroFormModel) View() string {
	return m.view("")
}

func buttonOrEmpty(b *markup.ButtonSpec) markup.ButtonSpec {
	if b == nil {
		return markup.ButtonSpec{}
	}
	return *b
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
