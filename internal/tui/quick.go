package tui

import (
	"errors"
	"strings"

	"hikerhunger/internal/form"
	"hikerhunger/internal/trip"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// submitRequestedMsg carries normalized inputs from a form to the app
type submitRequestedMsg struct {
	inputs *trip.TripInputs
}

func requestSubmit(in *trip.TripInputs) tea.Cmd {
	return func() tea.Msg {
		return submitRequestedMsg{inputs: in}
	}
}

// describeError turns a normalization error into a line for the form
func describeError(err error) string {
	var missing *trip.MissingFieldError
	if errors.As(err, &missing) {
		if missing.Value == "" {
			return missing.Field.Label() + " is required"
		}
		value := strings.TrimSpace(missing.Value)
		if spec, ok := trip.Spec(missing.Field); ok && spec.Kind == trip.KindEnum {
			return missing.Field.Label() + ": " + value + " is not a valid choice"
		}
		return missing.Field.Label() + ": " + value + " is not a number"
	}
	var rangeErr *trip.RangeError
	if errors.As(err, &rangeErr) {
		return rangeErr.Field.Label() + " " + rangeErr.Reason
	}
	return err.Error()
}

// QuickFormModel is the single page form with the day/multi-day toggle
type QuickFormModel struct {
	form   *form.QuickForm
	fields fieldList
	err    string
}

// NewQuickFormModel creates a quick form on the day hike preset
func NewQuickFormModel() QuickFormModel {
	m := QuickFormModel{
		form:   form.NewQuickForm(),
		fields: newFieldList(quickFields()),
	}
	m.syncFromForm()
	m.fields.focusIndex(0)
	return m
}

// quickFields is every required field except the trip duration, which
// the day/multi-day toggle sets
func quickFields() []trip.FieldSpec {
	var out []trip.FieldSpec
	for _, s := range trip.RequiredFields {
		if s.Field != trip.FieldTripDuration {
			out = append(out, s)
		}
	}
	return out
}

func (m *QuickFormModel) syncFromForm() {
	for i := range m.fields.fields {
		f := &m.fields.fields[i]
		f.SetValue(m.form.Value(f.spec.Field))
	}
}

// Init starts the cursor blinking
func (m QuickFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m QuickFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		if f := m.fields.focused(); f != nil {
			f.input, cmd = f.input.Update(msg)
		}
		return m, cmd
	}

	switch key.String() {
	case "ctrl+t":
		m.form.ToggleTripType()
		m.syncFromForm()
		return m, nil
	case "ctrl+r":
		m.form.Reset()
		m.syncFromForm()
		m.err = ""
		return m, nil
	case "enter":
		in, err := m.form.Submit()
		if err != nil {
			m.err = describeError(err)
			return m, nil
		}
		m.err = ""
		return m, requestSubmit(in)
	}

	if cmd, ok := m.fields.navigate(key); ok {
		return m, cmd
	}

	cmd, changed := m.fields.update(key)
	if changed != nil {
		m.form.Set(changed.spec.Field, changed.Value())
		m.err = ""
	}
	return m, cmd
}

// View renders the quick form
func (m QuickFormModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Quick Estimate"))
	sections = append(sections, m.renderTripTypes(), "")
	sections = append(sections, m.fields.View())

	if m.err != "" {
		sections = append(sections, "", errorStyle.Render("  "+m.err))
	}

	sections = append(sections, statusStyle.Render(
		"  "+RenderKeyHelp("enter", "calculate")+
			"  "+RenderKeyHelp("ctrl+t", "day/multi-day")+
			"  "+RenderKeyHelp("ctrl+r", "reset")+
			"  "+RenderKeyHelp("tab", "next field")))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m QuickFormModel) renderTripTypes() string {
	var tabs []string
	for _, t := range []form.TripType{form.TripDay, form.TripMulti} {
		if t == m.form.TripType() {
			tabs = append(tabs, navActiveStyle.Render("["+t.Label()+"]"))
		} else {
			tabs = append(tabs, navInactiveStyle.Render(" "+t.Label()+" "))
		}
	}
	days := m.form.Value(trip.FieldTripDuration) + " days"
	if days == "1 days" {
		days = "1 day"
	}
	return "  " + strings.Join(tabs, "  ") + "  " + helpDescStyle.Render(days)
}
