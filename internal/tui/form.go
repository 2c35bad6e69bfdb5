package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const formWidth = 50

// field is either a free-text input or a choice cycled with left/right.
type field struct {
	key     string
	label   string
	input   textinput.Model
	options []string
	choice  int
}

func textField(key, label, value, placeholder string) field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Width = formWidth - 22
	ti.SetValue(value)
	return field{key: key, label: label, input: ti}
}

// choiceField selects value among options, or the first option when value
// is not one of them.
func choiceField(key, label, value string, options []string) field {
	f := field{key: key, label: label, options: options}
	for i, o := range options {
		if o == value {
			f.choice = i
		}
	}
	return f
}

func (f field) isChoice() bool { return f.options != nil }

func (f field) value() string {
	if f.isChoice() {
		return f.options[f.choice]
	}
	return f.input.Value()
}

// form is an ordered set of fields with one focused. shown decides which
// fields apply given the current values; hidden ones are skipped.
type form struct {
	fields  []field
	focused int
	shown   func(f *form, key string) bool
}

func newForm(fields []field, shown func(f *form, key string) bool) form {
	f := form{fields: fields, shown: shown}
	f.refocus()
	return f
}

func (f *form) index(key string) int {
	for i := range f.fields {
		if f.fields[i].key == key {
			return i
		}
	}
	return -1
}

func (f *form) get(key string) string {
	if i := f.index(key); i >= 0 {
		return f.fields[i].value()
	}
	return ""
}

func (f *form) clear(key string) {
	if i := f.index(key); i >= 0 {
		f.fields[i].input.Reset()
	}
}

func (f *form) visible(i int) bool {
	return f.shown == nil || f.shown(f, f.fields[i].key)
}

func (f *form) focusedKey() string {
	return f.fields[f.focused].key
}

func (f *form) focus(key string) tea.Cmd {
	if i := f.index(key); i >= 0 && f.visible(i) {
		f.focused = i
	}
	return f.refocus()
}

// move steps focus by delta over the visible fields, wrapping around.
func (f *form) move(delta int) tea.Cmd {
	n := len(f.fields)
	for step := 0; step < n; step++ {
		f.focused = (f.focused + delta + n) % n
		if f.visible(f.focused) {
			break
		}
	}
	return f.refocus()
}

func (f *form) refocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range f.fields {
		in := &f.fields[i].input
		if i == f.focused && !f.fields[i].isChoice() {
			cmd = in.Focus()
			in.TextStyle = lipgloss.NewStyle().Foreground(colorPink)
		} else {
			in.Blur()
			in.TextStyle = lipgloss.NewStyle()
		}
	}
	return cmd
}

// update feeds msg to the focused field.
func (f *form) update(msg tea.Msg) tea.Cmd {
	cur := &f.fields[f.focused]
	if cur.isChoice() {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "right", "l", " ", "enter":
				cur.choice = (cur.choice + 1) % len(cur.options)
			case "left", "h":
				cur.choice = (cur.choice - 1 + len(cur.options)) % len(cur.options)
			}
		}
		return nil
	}

	var cmd tea.Cmd
	cur.input, cmd = cur.input.Update(msg)
	return cmd
}

func (f *form) view() string {
	var b strings.Builder
	for i, fd := range f.fields {
		if !f.visible(i) {
			continue
		}
		label := labelStyle.Render(fd.label)
		if i == f.focused {
			label = focusedLabelStyle.Render(fd.label)
		}

		value := fd.input.View()
		if fd.isChoice() {
			value = choiceStyle.Render("‹ " + fd.value() + " ›")
		}
		b.WriteString(label + value + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
