package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/compozy/members/cli/tui/styles"
	"github.com/compozy/members/engine/user"
)

// rowEditor holds one text input per editable field of the row being edited
type rowEditor struct {
	id     string
	fields []user.Field
	inputs []textinput.Model
	focus  int
}

func newRowEditor(u user.User, width int) *rowEditor {
	fields := user.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Prompt = f.Title() + ": "
		in.CharLimit = 256
		if width > 0 {
			in.Width = max(width/len(fields)-len(in.Prompt)-2, 8)
		}
		in.SetValue(u.Get(f))
		inputs[i] = in
	}
	return &rowEditor{id: u.ID, fields: fields, inputs: inputs}
}

func (e *rowEditor) current() (user.Field, string) {
	return e.fields[e.focus], e.inputs[e.focus].Value()
}

func (e *rowEditor) focusCurrent() tea.Cmd {
	for i := range e.inputs {
		e.inputs[i].Blur()
	}
	return e.inputs[e.focus].Focus()
}

func (e *rowEditor) cycle(step int) tea.Cmd {
	n := len(e.inputs)
	e.focus = ((e.focus+step)%n + n) % n
	return e.focusCurrent()
}

func (e *rowEditor) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
	return cmd
}

func (e *rowEditor) view() string {
	cells := make([]string, 0, len(e.inputs))
	for _, in := range e.inputs {
		cells = append(cells, in.View())
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(cells, "  ")...)
	return styles.EditingStyle.Render("Editing ") + body
}

func joinWithGap(cells []string, gap string) []string {
	out := make([]string, 0, len(cells)*2)
	for i, c := range cells {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, c)
	}
	return out
}
