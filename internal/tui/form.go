package tui

import (
	"github.com/theirongolddev/riskdash/internal/assess"
	"github.com/theirongolddev/riskdash/internal/risk"
	"github.com/theirongolddev/riskdash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focusNone means no form element has focus; global keys are active.
const focusNone = -1

// formState holds the six applicant text inputs and which element has
// focus. Index len(inputs) is the Calculate button.
type formState struct {
	inputs []textinput.Model
	cursor int
}

func newForm() formState {
	fields := risk.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder()
		ti.CharLimit = 32
		ti.Width = 24
		ti.Prompt = ""
		inputs[i] = ti
	}
	return formState{inputs: inputs, cursor: focusNone}
}

func (f formState) focused() bool {
	return f.cursor != focusNone
}

func (f formState) buttonFocused() bool {
	return f.cursor == len(f.inputs)
}

// focus moves focus to element i and returns the cursor blink command.
func (f *formState) focus(i int) tea.Cmd {
	f.blur()
	if i < 0 || i > len(f.inputs) {
		return nil
	}
	f.cursor = i
	if i < len(f.inputs) {
		f.applyStyles()
		return f.inputs[i].Focus()
	}
	return nil
}

func (f *formState) blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.cursor = focusNone
}

// next moves focus forward, wrapping from the button to the first field.
func (f *formState) next() tea.Cmd {
	return f.focus((f.cursor + 1) % (len(f.inputs) + 1))
}

// prev moves focus backward, wrapping from the first field to the button.
func (f *formState) prev() tea.Cmd {
	n := len(f.inputs) + 1
	return f.focus((f.cursor - 1 + n) % n)
}

func (f *formState) clear() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
}

func (f *formState) setWidth(w int) {
	for i := range f.inputs {
		f.inputs[i].Width = w
	}
}

// update forwards msg to the focused input.
func (f *formState) update(msg tea.Msg) tea.Cmd {
	if f.cursor < 0 || f.cursor >= len(f.inputs) {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.cursor], cmd = f.inputs[f.cursor].Update(msg)
	return cmd
}

// value returns the text of the input bound to field.
func (f formState) value(field risk.Field) string {
	return f.inputs[field].Value()
}

func (f *formState) applyStyles() {
	t := theme.Active
	for i := range f.inputs {
		f.inputs[i].TextStyle = lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover)
		f.inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.SurfaceHover)
		f.inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(t.AccentBright)
	}
}

// updateForm handles keys while a form element has focus. Every keystroke
// that changes a field is dispatched to the assessment state as EditField.
func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.form.blur()
		return a, nil
	case "tab", "down":
		return a, a.form.next()
	case "shift+tab", "up":
		return a, a.form.prev()
	case "ctrl+s":
		a.calculate()
		return a, nil
	case "ctrl+r":
		a.reset()
		return a, nil
	case "enter":
		if a.form.buttonFocused() {
			a.calculate()
			return a, nil
		}
		return a, a.form.next()
	case " ":
		if a.form.buttonFocused() {
			a.calculate()
			return a, nil
		}
	}

	if a.form.buttonFocused() {
		return a, nil
	}

	field := risk.Field(a.form.cursor)
	before := a.form.value(field)
	cmd := a.form.update(msg)
	if after := a.form.value(field); after != before {
		a.state = assess.Reduce(a.state, assess.EditField{Field: field, Value: after})
	}
	return a, cmd
}

// formInputWidth sizes the text inputs to the form card.
func (a App) formInputWidth() int {
	w := a.formCardWidth() - 4 - labelColumnWidth - 2
	if w < 8 {
		w = 8
	}
	return w
}
