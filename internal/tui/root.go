package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/phravins/landinggen/internal/clipboard"
	"github.com/phravins/landinggen/internal/components"
	"github.com/phravins/landinggen/internal/config"
)

// Global States
const (
	StatePicker = iota
	StateHero
	StateNavbar
)

// Messages
type SwitchViewMsg struct {
	TargetState int
}

type BackMsg struct{}

type item struct {
	id, title, desc string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

var componentStates = map[string]int{
	"hero":   StateHero,
	"navbar": StateNavbar,
}

type RootModel struct {
	state  int
	width  int
	height int

	cfg  *config.Config
	clip clipboard.Writer

	picker list.Model
	hero   HeroFormModel
	navbar NavbarFormModel
}

func NewRootModel(cfg *config.Config, clip clipboard.Writer) RootModel {
	var items []list.Item
	for _, c := range components.List() {
		items = append(items, item{id: c.Name, title: c.Title, desc: c.Description})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = pickerSelectedStyle
	delegate.Styles.SelectedDesc = pickerSelectedStyle.Copy().Foreground(colorGray)

	l := list.New(items, delegate, 0, 0)
	l.Title = "Landing Page Components"
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	return RootModel{
		state:  StatePicker,
		cfg:    cfg,
		clip:   clip,
		picker: l,
	}
}

func (m RootModel) Init() tea.Cmd {
	return nil
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.picker.SetSize(msg.Width, msg.Height-2)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.state == StatePicker {
			switch msg.String() {
			case "q", "esc":
				return m, tea.Quit
			case "enter":
				if it, ok := m.picker.SelectedItem().(item); ok {
					if target, ok := componentStates[it.id]; ok {
						return m, func() tea.Msg { return SwitchViewMsg{TargetState: target} }
					}
				}
				return m, nil
			}
		}

	case SwitchViewMsg:
		m.state = msg.TargetState
		size := tea.WindowSizeMsg{Width: m.width, Height: m.height}

		// Each visit starts from the configured defaults.
		switch m.state {
		case StateHero:
			m.hero = NewHeroForm(m.cfg, m.clip)
			hm, _ := m.hero.Update(size)
			m.hero = hm.(HeroFormModel)
			return m, m.hero.Init()
		case StateNavbar:
			m.navbar = NewNavbarForm(m.cfg, m.clip)
			nm, _ := m.navbar.Update(size)
			m.navbar = nm.(NavbarFormModel)
			return m, m.navbar.Init()
		}
		return m, nil

	case BackMsg:
		m.state = StatePicker
		return m, nil
	}

	switch m.state {
	case StatePicker:
		m.picker, cmd = m.picker.Update(msg)
	case StateHero:
		var hm tea.Model
		hm, cmd = m.hero.Update(msg)
		m.hero = hm.(HeroFormModel)
	case StateNavbar:
		var nm tea.Model
		nm, cmd = m.navbar.Update(msg)
		m.navbar = nm.(NavbarFormModel)
	}
	return m, cmd
}

func (m RootModel) View() string {
	switch m.state {
	case StatePicker:
		return docStyle.Render(m.picker.View())
	case StateHero:
		return m.hero.View()
	case StateNavbar:
		return m.navbar.View()
	}
	return "Unknown State"
}

// RunRoot starts the picker.
func RunRoot(cfg *config.Config, clip clipboard.Writer) error {
	p := tea.NewProgram(NewRootModel(cfg, clip), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run landinggen: %w", err)
	}
	return nil
}

// RunForm opens one configurator directly; esc quits instead of returning
// to the picker.
func RunForm(name string, cfg *config.Config, clip clipboard.Writer) error {
	c, err := components.Lookup(name)
	if err != nil {
		return err
	}

	var m tea.Model
	switch c.Name {
	case "hero":
		m = NewHeroForm(cfg, clip)
	case "navbar":
		m = NewNavbarForm(cfg, clip)
	default:
		return fmt.Errorf("%w %q has no configurator", components.ErrUnknown, c.Name)
	}

	p := tea.NewProgram(Wrap(m), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run %s configurator: %w", c.Name, err)
	}
	return nil
}
