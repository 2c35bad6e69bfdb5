package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/phravins/landinggen/internal/clipboard"
	"github.com/phravins/landinggen/internal/config"
	"github.com/phravins/landinggen/internal/markup"
)

type NavbarFormModel struct {
	screen
	menu *markup.Menu
}

func NewNavbarForm(cfg *config.Config, clip clipboard.Writer) NavbarFormModel {
	n := cfg.InitialNavbar()
	auths := []string{string(markup.AuthLogin), string(markup.AuthSignup)}
	kinds := []string{string(markup.NavBackgroundStatic), string(markup.NavBackgroundGradient)}

	fields := []field{
		textField("logo", "Logo URL", n.LogoURL, "/logo.svg"),
		choiceField("auth", "Auth button", string(n.Auth), auths),
		choiceField("background", "Background", string(n.Background.Kind), kinds),
		textField("color", "Color", string(n.Background.Color), "#ffffff"),
		textField("start", "Gradient start", string(n.Background.Start), "#ffffff"),
		textField("end", "Gradient end", string(n.Background.End), "#000000"),
		choiceField("direction", "Direction", string(n.Background.Direction), stringsOf(markup.Directions)),
		textField("item", "Add item", "", "Enter to add"),
	}

	m := NavbarFormModel{
		screen: newScreen("Navigation Bar", newForm(fields, navbarFieldShown), clip),
		menu:   markup.NewMenu(n.MenuItems...),
	}
	m.sync(m.code())
	return m
}

func navbarFieldShown(f *form, key string) bool {
	switch key {
	case "color":
		return f.get("background") == string(markup.NavBackgroundStatic)
	case "start", "end", "direction":
		return f.get("background") == string(markup.NavBackgroundGradient)
	}
	return true
}

func (m NavbarFormModel) Config() markup.NavbarConfig {
	f := &m.form
	return markup.NavbarConfig{
		LogoURL: f.get("logo"),
		Auth:    markup.AuthOption(f.get("auth")),
		Background: markup.NavBackground{
			Kind:      markup.NavBackgroundKind(f.get("background")),
			Color:     markup.Color(f.get("color")),
			Start:     markup.Color(f.get("start")),
			End:       markup.Color(f.get("end")),
			Direction: markup.Direction(f.get("direction")),
		},
		MenuItems: m.menu.Items(),
	}
}

func (m NavbarFormModel) code() string {
	return markup.RenderNavbar(m.Config())
}

func (m NavbarFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m NavbarFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.String() == "enter" && m.form.focusedKey() == "item":
			if it, added := m.menu.Add(m.form.get("item")); added {
				m.status, m.failed = fmt.Sprintf("Added %q", it.Name), false
			}
			m.form.clear("item")
			m.sync(m.code())
			return m, nil

		case key.String() == "ctrl+x":
			items := m.menu.Items()
			if len(items) > 0 {
				last := items[len(items)-1]
				m.menu.Remove(last.ID)
				m.status, m.failed = fmt.Sprintf("Removed %q", last.Name), false
			}
			m.sync(m.code())
			return m, nil
		}
	}

	cmd, handled := m.handle(msg, m.code)
	if !handled {
		cmd = m.form.update(msg)
	}
	m.sync(m.code())
	return m, cmd
}

func (m NavbarFormModel) View() string {
	items := m.menu.Items()
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	menu := subtleStyle.Render("Menu: (none yet)")
	if len(names) > 0 {
		menu = subtleStyle.Render("Menu: ") + strings.Join(names, ", ") +
			subtleStyle.Render("  (ctrl+x removes last)")
	}
	return m.view(menu)
}
