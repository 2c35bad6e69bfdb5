package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// StandaloneWrapper runs a form on its own, quitting where the root model
// would return to the picker.
type StandaloneWrapper struct {
	model tea.Model
}

func Wrap(m tea.Model) StandaloneWrapper {
	return StandaloneWrapper{model: m}
}

func (m StandaloneWrapper) Init() tea.Cmd {
	return m.model.Init()
}

func (m StandaloneWrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case BackMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	newModel, cmd := m.model.Update(msg)
	m.model = newModel
	return m, cmd
}

func (m StandaloneWrapper) View() string {
	return m.model.View()
}
