package tui

import (
	"fmt"
	"strconv"
	"strings"

	"hikerhunger/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// ResultsModel shows the latest calorie plan
type ResultsModel struct {
	view     service.PlanView
	hasPlan  bool
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewResultsModel creates an empty results screen
func NewResultsModel(width, height int) ResultsModel {
	m := ResultsModel{width: width, height: height}
	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6) // Reserve space for header/footer
		m.ready = true
	}
	return m
}

// SetPlan replaces the displayed plan
func (m ResultsModel) SetPlan(view service.PlanView) ResultsModel {
	m.view = view
	m.hasPlan = true
	if m.ready {
		m.viewport.SetContent(m.renderContent())
		m.viewport.GotoTop()
	}
	return m
}

// HasPlan reports whether a plan has been received yet
func (m ResultsModel) HasPlan() bool {
	return m.hasPlan
}

// Init initializes the results screen
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.hasPlan {
			m.viewport.SetContent(m.renderContent())
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the results screen
func (m ResultsModel) View() string {
	if !m.hasPlan {
		return "\n  No calorie plan yet. Fill in a form and press enter."
	}
	if !m.ready {
		return m.renderContent()
	}

	footer := statusStyle.Render("  esc: back to form  j/k or arrows: scroll")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m ResultsModel) renderContent() string {
	v := m.view
	var sections []string

	sections = append(sections, titleStyle.Render("Your Calorie Plan"))

	summary := lipgloss.JoinVertical(lipgloss.Left,
		RenderMetric("Total Calories", v.TotalCalories, "kcal"),
		RenderMetric("Daily Average", v.DailyAverage, "kcal/day"),
		RenderMetric("Total Days", strconv.Itoa(v.TotalDays), ""),
		"",
		RenderMetric("Carbs", v.TotalMacros.Carbs, ""),
		RenderMetric("Protein", v.TotalMacros.Protein, ""),
		RenderMetric("Fat", v.TotalMacros.Fat, ""),
	)
	sections = append(sections, cardStyle.Render(summary))

	if len(v.Days) > 0 {
		sections = append(sections, "", renderDayTable(v.Days))
	}

	if v.HasChart {
		sections = append(sections, "", renderCalorieChart(v.CalorieSeries, m.chartWidth()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ResultsModel) chartWidth() int {
	w := m.width - 16
	if w > 60 || w <= 0 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

const dayRowFormat = "%-5s %10s %9s %9s %9s %8s"

func renderDayTable(days []service.DayDisplay) string {
	var lines []string

	lines = append(lines, sectionStyle.Render("Daily Breakdown"))
	lines = append(lines, tableHeaderStyle.Render(
		fmt.Sprintf(dayRowFormat, "Day", "Calories", "Carbs", "Protein", "Fat", "Hours")))

	for _, d := range days {
		lines = append(lines, tableRowStyle.Render(fmt.Sprintf(dayRowFormat,
			strconv.Itoa(d.Day),
			d.Calories,
			d.Macros.Carbs,
			d.Macros.Protein,
			d.Macros.Fat,
			d.HikingHours,
		)))
	}

	return strings.Join(lines, "\n")
}

func renderCalorieChart(series []float64, width int) string {
	var lines []string

	lines = append(lines, sectionStyle.Render("Calories per Day"))
	chart := asciigraph.Plot(series,
		asciigraph.Height(8),
		asciigraph.Width(width),
		asciigraph.Precision(0),
	)
	lines = append(lines, chart)

	return strings.Join(lines, "\n")
}
