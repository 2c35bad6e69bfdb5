package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/phravins/landinggen/internal/clipboard"
	"github.com/phravins/landinggen/internal/highlight"
)

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	text string
	err  error
}

func copyCmd(w clipboard.Writer, code string) tea.Cmd {
	return func() tea.Msg {
		text, err := clipboard.Copy(w, code)
		return copiedMsg{text: text, err: err}
	}
}

// screen is the layout shared by the configurators: the form on the left and
// the generated code on the right.
type screen struct {
	title  string
	form   form
	panel  viewport.Model
	clip   clipboard.Writer
	status string
	failed bool
	width  int
	height int
}

func newScreen(title string, f form, clip clipboard.Writer) screen {
	vp := viewport.New(72, 24)
	vp.Style = codeBoxStyle
	return screen{title: title, form: f, panel: vp, clip: clip}
}

func (s *screen) resize(width, height int) {
	s.width, s.height = width, height
	s.panel.Width = max(width-formWidth-8, 30)
	s.panel.Height = max(height-6, 8)
}

// sync renders code into the panel. Called after every update so the panel
// always shows the current field values.
func (s *screen) sync(code string) {
	rendered, err := highlight.Markdown(code, s.panel.Width-4)
	if err != nil {
		rendered = code
	}
	s.panel.SetContent(rendered)
}

// handle processes the messages both configurators treat alike and reports
// whether msg was consumed. code is only called when copying.
func (s *screen) handle(msg tea.Msg, code func() string) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.resize(msg.Width, msg.Height)
		return nil, true

	case copiedMsg:
		if msg.err != nil {
			s.status, s.failed = "Copy failed: "+msg.err.Error(), true
		} else {
			s.status, s.failed = msg.text, false
		}
		return nil, true

	case tea.MouseMsg:
		var cmd tea.Cmd
		s.panel, cmd = s.panel.Update(msg)
		return cmd, true

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return func() tea.Msg { return BackMsg{} }, true
		case "ctrl+y":
			return copyCmd(s.clip, code()), true
		case "tab", "down":
			return s.form.move(1), true
		case "shift+tab", "up":
			return s.form.move(-1), true
		case "pgup", "pgdown":
			var cmd tea.Cmd
			s.panel, cmd = s.panel.Update(msg)
			return cmd, true
		}
	}
	return nil, false
}

func (s screen) view(extra string) string {
	body := titleStyle.Render(s.title) + "\n\n" + s.form.view()
	if extra != "" {
		body += "\n\n" + extra
	}
	left := formCardStyle.Render(body)
	right := lipgloss.JoinVertical(lipgloss.Left,
		PreviewHeaderStyle.Render("Generated Code"),
		s.panel.View(),
	)

	status := ""
	if s.status != "" {
		status = successStyle.Render(s.status)
		if s.failed {
			status = errorStyle.Render(s.status)
		}
	}
	help := subtleStyle.Render("tab/↑↓ move • ←/→ change • ctrl+y copy • pgup/pgdn scroll • esc back")

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right),
		status,
		help,
	))
}
