package tui

import (
	"fmt"

	"hikerhunger/internal/form"
	"hikerhunger/internal/trip"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WizardModel is the two step advanced form. The optional step also
// edits the per-day breakdown.
type WizardModel struct {
	wizard   *form.Wizard
	required fieldList
	optional fieldList
	err      string
}

// NewWizardModel creates a wizard on the required step
func NewWizardModel() WizardModel {
	m := WizardModel{wizard: form.NewWizard()}
	m.rebuild()
	m.required.focusIndex(0)
	return m
}

func (m *WizardModel) rebuild() {
	m.required = newFieldList(trip.RequiredFields)
	for i := range m.required.fields {
		f := &m.required.fields[i]
		f.SetValue(m.wizard.Value(f.spec.Field))
	}
	m.rebuildOptional()
}

// rebuildOptional lays out the optional fields followed by one distance
// and one elevation line per breakdown day. Focus stays on the same line
// number where possible.
func (m *WizardModel) rebuildOptional() {
	focus := m.optional.focus
	m.optional.blur()

	list := newFieldList(trip.OptionalFields)
	for i := range list.fields {
		f := &list.fields[i]
		f.SetValue(m.wizard.Value(f.spec.Field))
	}

	b := m.wizard.Breakdown()
	if b.Enabled() {
		for i, d := range b.Days() {
			dist := newFieldInput(dayDistanceSpec(i + 1))
			dist.day = i + 1
			dist.SetValue(string(d.Distance))

			elev := newFieldInput(dayElevationSpec(i + 1))
			elev.day = i + 1
			if d.Elevation != 0 {
				elev.SetValue(trip.FormatFloat(d.Elevation))
			}
			list.fields = append(list.fields, dist, elev)
		}
	}

	m.optional = list
	if m.wizard.Step() == form.StepOptional {
		if focus >= len(list.fields) {
			focus = len(list.fields) - 1
		}
		m.optional.focusIndex(focus)
	}
}

func dayDistanceSpec(day int) trip.FieldSpec {
	return trip.FieldSpec{
		Field: trip.FieldTrailDistanceByDay,
		Label: fmt.Sprintf("Day %d distance", day),
		Unit:  "mi",
		Help:  "Trail distance hiked on this day",
		Kind:  trip.KindDecimal,
	}
}

func dayElevationSpec(day int) trip.FieldSpec {
	return trip.FieldSpec{
		Field: trip.FieldElevationByDay,
		Label: fmt.Sprintf("Day %d elevation", day),
		Unit:  "ft",
		Help:  "Elevation gain on this day",
		Kind:  trip.KindDecimal,
	}
}

// Init starts the cursor blinking
func (m WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *WizardModel) current() *fieldList {
	if m.wizard.Step() == form.StepOptional {
		return &m.optional
	}
	return &m.required
}

// Update handles messages
func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		if f := m.current().focused(); f != nil {
			f.input, cmd = f.input.Update(msg)
		}
		return m, cmd
	}

	if key.String() == "ctrl+n" {
		m.wizard.Restart()
		m.optional = fieldList{}
		m.rebuild()
		m.err = ""
		return m, m.required.focusIndex(0)
	}

	if m.wizard.Step() == form.StepRequired {
		return m.updateRequired(key)
	}
	return m.updateOptional(key)
}

func (m WizardModel) updateRequired(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "enter" {
		if err := m.wizard.Next(); err != nil {
			m.err = describeError(err)
			return m, nil
		}
		m.err = ""
		m.required.blur()
		m.rebuildOptional()
		return m, m.optional.focusIndex(0)
	}

	if cmd, ok := m.required.navigate(key); ok {
		return m, cmd
	}

	cmd, changed := m.required.update(key)
	if changed != nil {
		m.wizard.Set(changed.spec.Field, changed.Value())
		m.err = ""
	}
	return m, cmd
}

func (m WizardModel) updateOptional(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := m.wizard.Breakdown()

	switch key.String() {
	case "enter":
		in, err := m.wizard.Submit()
		if err != nil {
			m.err = describeError(err)
			return m, nil
		}
		m.err = ""
		return m, requestSubmit(in)

	case "ctrl+b":
		if err := m.wizard.Back(); err != nil {
			return m, nil
		}
		m.optional.blur()
		m.err = ""
		return m, m.required.focusIndex(m.required.focus)

	case "ctrl+d":
		b.SetEnabled(!b.Enabled())
		m.rebuildOptional()
		return m, nil

	case "ctrl+a":
		if !b.Enabled() {
			return m, nil
		}
		if !b.AddDay() {
			m.err = fmt.Sprintf("A %d-day trip has at most %d daily entries", b.Limit(), b.Limit())
			return m, nil
		}
		m.err = ""
		m.rebuildOptional()
		return m, nil

	case "ctrl+x":
		f := m.optional.focused()
		if f == nil || f.day == 0 {
			return m, nil
		}
		if err := b.RemoveDay(f.day - 1); err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.rebuildOptional()
		return m, nil
	}

	if cmd, ok := m.optional.navigate(key); ok {
		return m, cmd
	}

	cmd, changed := m.optional.update(key)
	if changed == nil {
		return m, cmd
	}
	m.err = ""

	switch {
	case changed.day == 0:
		m.wizard.Set(changed.spec.Field, changed.Value())
	case changed.spec.Field == trip.FieldTrailDistanceByDay:
		if d, err := trip.ParseDecimal(changed.Value()); err == nil {
			_ = b.SetDistance(changed.day-1, d)
		}
	case changed.spec.Field == trip.FieldElevationByDay:
		d, err := trip.ParseDecimal(changed.Value())
		if err == nil {
			_ = b.SetElevation(changed.day-1, d.FloatOrZero())
		}
	}
	return m, cmd
}

// View renders the wizard
func (m WizardModel) View() string {
	var sections []string

	step := m.wizard.Step()
	title := "Advanced Planner  Step 1 of 2: Required details"
	if step == form.StepOptional {
		title = "Advanced Planner  Step 2 of 2: Optional details"
	}
	sections = append(sections, cardTitleStyle.Render(title))

	if step == form.StepRequired {
		sections = append(sections, m.required.View())
	} else {
		sections = append(sections, m.optional.View(), "", m.renderBreakdownStatus())
		for _, w := range m.wizard.Warnings() {
			sections = append(sections, warningStyle.Render("  ! "+w))
		}
	}

	if m.err != "" {
		sections = append(sections, "", errorStyle.Render("  "+m.err))
	}

	sections = append(sections, m.renderKeys())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m WizardModel) renderBreakdownStatus() string {
	b := m.wizard.Breakdown()
	if !b.Enabled() {
		return sectionStyle.Render("  Daily breakdown: off")
	}
	return sectionStyle.Render(fmt.Sprintf("  Daily breakdown: %d of %d days", b.Len(), b.Limit()))
}

func (m WizardModel) renderKeys() string {
	if m.wizard.Step() == form.StepRequired {
		return statusStyle.Render("  " +
			RenderKeyHelp("enter", "next") + "  " +
			RenderKeyHelp("tab", "next field") + "  " +
			RenderKeyHelp("ctrl+n", "start over"))
	}

	keys := "  " +
		RenderKeyHelp("enter", "calculate") + "  " +
		RenderKeyHelp("ctrl+b", "back") + "  " +
		RenderKeyHelp("ctrl+d", "daily breakdown")
	if m.wizard.Breakdown().Enabled() {
		keys += "  " + RenderKeyHelp("ctrl+a", "add day") + "  " + RenderKeyHelp("ctrl+x", "remove day")
	}
	keys += "  " + RenderKeyHelp("ctrl+n", "start over")
	return statusStyle.Render(keys)
}
