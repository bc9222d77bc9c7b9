package tui

import (
	"strings"

	"hikerhunger/internal/trip"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fieldInput is one editable line. Enum fields are picked with the arrow
// keys instead of typed.
type fieldInput struct {
	spec  trip.FieldSpec
	day   int // 1-based breakdown row, 0 for catalog fields
	input textinput.Model
	err   string
}

func newFieldInput(spec trip.FieldSpec) fieldInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 12
	ti.Width = 14
	if spec.Kind == trip.KindEnum {
		ti.Placeholder = "←/→ to choose"
	}
	return fieldInput{spec: spec, input: ti}
}

func (f fieldInput) Value() string {
	return f.input.Value()
}

func (f *fieldInput) SetValue(v string) {
	f.input.SetValue(v)
	f.err = ""
}

// update applies a key press. changed is false when the key was rejected
// or did not touch the value.
func (f fieldInput) update(msg tea.KeyMsg) (next fieldInput, cmd tea.Cmd, changed bool) {
	before := f.input.Value()

	if f.spec.Kind == trip.KindEnum {
		switch msg.String() {
		case "right", " ":
			f.input.SetValue(cycleOption(f.spec.Options, before, false))
		case "left":
			f.input.SetValue(cycleOption(f.spec.Options, before, true))
		case "backspace", "delete":
			f.input.SetValue("")
		default:
			return f, nil, false
		}
		return f, nil, f.input.Value() != before
	}

	f.input, cmd = f.input.Update(msg)
	after := f.input.Value()
	if err := f.spec.ValidateInput(after); err != nil {
		f.input.SetValue(before)
		f.err = err.Error()
		return f, cmd, false
	}
	f.err = ""
	return f, cmd, after != before
}

func (f fieldInput) View(focused bool) string {
	label := f.spec.Label
	if f.spec.Required {
		label += " *"
	}

	cursor := "  "
	labelStyle := fieldLabelStyle
	if focused {
		cursor = "> "
		labelStyle = fieldLabelFocusedStyle
	}

	var value string
	if f.spec.Kind == trip.KindEnum {
		value = renderOptions(f.spec.Options, f.input.Value())
	} else {
		value = f.input.View()
		if f.spec.Unit != "" {
			value += " " + unitStyle.Render(f.spec.Unit)
		}
	}

	line := cursor + labelStyle.Render(label) + value
	if f.err != "" {
		line += "  " + errorStyle.Render(f.err)
	}
	return line
}

// cycleOption steps through options, wrapping at either end. A blank or
// unknown current value starts at the first (or last) option.
func cycleOption(options []string, current string, back bool) string {
	if len(options) == 0 {
		return current
	}
	idx := -1
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}

	switch {
	case idx == -1 && back:
		idx = len(options) - 1
	case idx == -1:
		idx = 0
	case back:
		idx = (idx - 1 + len(options)) % len(options)
	default:
		idx = (idx + 1) % len(options)
	}
	return options[idx]
}

func renderOptions(options []string, selected string) string {
	parts := make([]string, len(options))
	for i, o := range options {
		label := optionLabel(o)
		if o == selected {
			parts[i] = navActiveStyle.Render("[" + label + "]")
		} else {
			parts[i] = navInactiveStyle.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

func optionLabel(value string) string {
	return strings.ReplaceAll(value, "_", " ")
}

// fieldList is a vertical list of inputs with one focused line
type fieldList struct {
	fields []fieldInput
	focus  int
}

func newFieldList(specs []trip.FieldSpec) fieldList {
	l := fieldList{fields: make([]fieldInput, len(specs))}
	for i, s := range specs {
		l.fields[i] = newFieldInput(s)
	}
	return l
}

func (l *fieldList) focusIndex(i int) tea.Cmd {
	if len(l.fields) == 0 {
		l.focus = 0
		return nil
	}
	if i < 0 {
		i = len(l.fields) - 1
	}
	if i >= len(l.fields) {
		i = 0
	}
	if l.focus < len(l.fields) {
		l.fields[l.focus].input.Blur()
	}
	l.focus = i
	return l.fields[i].input.Focus()
}

func (l *fieldList) blur() {
	if l.focus < len(l.fields) {
		l.fields[l.focus].input.Blur()
	}
}

func (l *fieldList) focused() *fieldInput {
	if l.focus >= len(l.fields) {
		return nil
	}
	return &l.fields[l.focus]
}

// navigate handles focus movement keys
func (l *fieldList) navigate(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "down":
		return l.focusIndex(l.focus + 1), true
	case "shift+tab", "up":
		return l.focusIndex(l.focus - 1), true
	}
	return nil, false
}

// update sends a key to the focused field and returns it when its value changed
func (l *fieldList) update(msg tea.KeyMsg) (tea.Cmd, *fieldInput) {
	f := l.focused()
	if f == nil {
		return nil, nil
	}
	next, cmd, changed := f.update(msg)
	*f = next
	if !changed {
		return cmd, nil
	}
	return cmd, f
}

func (l fieldList) View() string {
	lines := make([]string, 0, len(l.fields)+2)
	for i, f := range l.fields {
		lines = append(lines, f.View(i == l.focus))
	}
	if f := l.focused(); f != nil && f.spec.Help != "" {
		lines = append(lines, "", helpDescStyle.Render("  "+f.spec.Help))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

