package tui

import (
	"strings"

	"hikerhunger/internal/trip"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	// Navigation section
	navSection := m.renderSection("Navigation", []keyHelp{
		{"f1", "Help (this screen)"},
		{"f2", "Quick estimate"},
		{"f3", "Advanced planner"},
		{"f4", "Latest results"},
		{"esc", "Back / close help"},
		{"ctrl+c", "Quit (q also works on results and help)"},
	})
	sections = append(sections, navSection)

	formSection := m.renderSection("Forms", []keyHelp{
		{"tab / down", "Next field"},
		{"shift+tab / up", "Previous field"},
		{"left / right", "Pick an option"},
		{"enter", "Calculate (or continue to the next step)"},
	})
	sections = append(sections, formSection)

	quickSection := m.renderSection("Quick Estimate", []keyHelp{
		{"ctrl+t", "Switch between day hike and multi-day trip"},
		{"ctrl+r", "Reset the form"},
	})
	sections = append(sections, quickSection)

	wizardSection := m.renderSection("Advanced Planner", []keyHelp{
		{"ctrl+b", "Back to required details"},
		{"ctrl+d", "Turn the daily breakdown on or off"},
		{"ctrl+a", "Add a day to the breakdown"},
		{"ctrl+x", "Remove the focused day"},
		{"ctrl+n", "Start over"},
	})
	sections = append(sections, wizardSection)

	sections = append(sections, m.renderFieldHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderFieldHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Fields Explained"))
	lines = append(lines, "")

	specs := append(append([]trip.FieldSpec{}, trip.RequiredFields...), trip.OptionalFields...)
	for _, s := range specs {
		if s.Help == "" {
			continue
		}
		name := s.Label
		if s.Unit != "" {
			name += " (" + s.Unit + ")"
		}
		lines = append(lines, "  "+helpKeyStyle.Render(name)+"  "+helpDescStyle.Render(s.Help))
	}

	return strings.Join(lines, "\n")
}
