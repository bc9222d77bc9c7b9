package tui

import (
	"context"
	"errors"
	"log/slog"

	"hikerhunger/internal/config"
	"hikerhunger/internal/service"
	"hikerhunger/internal/trip"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenQuick Screen = iota
	ScreenAdvanced
	ScreenResults
	ScreenHelp
)

// StartScreen maps the display.start_screen setting onto a screen
func StartScreen(name string) Screen {
	if name == config.StartAdvanced {
		return ScreenAdvanced
	}
	return ScreenQuick
}

// planCalculatedMsg is sent when a submission comes back
type planCalculatedMsg struct {
	plan *trip.PlanResult
	err  error
}

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen
	formScreen Screen // form the results screen goes back to

	// Screen models
	quick   QuickFormModel
	wizard  WizardModel
	results ResultsModel
	help    HelpModel

	// Services
	plans  *service.PlanService
	logger *slog.Logger

	pending int

	// Window dimensions
	width  int
	height int

	// Status message
	status      string
	statusError bool
}

// NewApp creates a new App with all dependencies
func NewApp(plans *service.PlanService, start Screen, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	if start != ScreenAdvanced {
		start = ScreenQuick
	}
	return &App{
		screen:     start,
		formScreen: start,
		quick:      NewQuickFormModel(),
		wizard:     NewWizardModel(),
		results:    NewResultsModel(0, 0),
		help:       NewHelpModel(),
		plans:      plans,
		logger:     logger,
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	if a.screen == ScreenAdvanced {
		return a.wizard.Init()
	}
	return a.quick.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "f1":
			a.showHelp()
			return a, nil
		case "f2":
			return a, a.showForm(ScreenQuick)
		case "f3":
			return a, a.showForm(ScreenAdvanced)
		case "f4":
			if a.results.HasPlan() {
				a.screen = ScreenResults
			}
			return a, nil
		}

		// Plain keys only act globally where nothing is being typed
		if a.screen == ScreenResults || a.screen == ScreenHelp {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "?":
				a.showHelp()
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
				return a, a.showForm(a.formScreen)
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		m, cmd := a.results.Update(msg)
		a.results = m.(ResultsModel)
		return a, cmd

	case submitRequestedMsg:
		a.pending++
		a.status = "Calculating..."
		a.statusError = false
		return a, a.submit(msg.inputs)

	case planCalculatedMsg:
		a.handlePlan(msg)
		return a, nil
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenQuick:
		var m tea.Model
		m, cmd = a.quick.Update(msg)
		a.quick = m.(QuickFormModel)
	case ScreenAdvanced:
		var m tea.Model
		m, cmd = a.wizard.Update(msg)
		a.wizard = m.(WizardModel)
	case ScreenResults:
		var m tea.Model
		m, cmd = a.results.Update(msg)
		a.results = m.(ResultsModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

func (a *App) showHelp() {
	if a.screen == ScreenHelp {
		a.screen = a.prevScreen
		return
	}
	a.prevScreen = a.screen
	a.screen = ScreenHelp
}

func (a *App) showForm(s Screen) tea.Cmd {
	a.screen = s
	a.formScreen = s
	if s == ScreenAdvanced {
		return a.wizard.Init()
	}
	return a.quick.Init()
}

// submit runs the calculation off the UI loop. Forms stay editable while
// it is in flight.
func (a *App) submit(in *trip.TripInputs) tea.Cmd {
	plans := a.plans
	return func() tea.Msg {
		plan, err := plans.Submit(context.Background(), in)
		return planCalculatedMsg{plan: plan, err: err}
	}
}

func (a *App) handlePlan(msg planCalculatedMsg) {
	if a.pending > 0 {
		a.pending--
	}

	switch {
	case errors.Is(msg.err, service.ErrStaleResponse):
		// A newer submission owns the result
		if a.pending == 0 && !a.statusError {
			a.status = ""
		}
	case msg.err != nil:
		a.logger.Debug("showing calculation failure", "pending", a.pending)
		a.status = service.FailureNotice
		a.statusError = true
	default:
		a.results = a.results.SetPlan(service.Present(msg.plan))
		a.status = ""
		a.statusError = false
		if a.screen == ScreenQuick || a.screen == ScreenAdvanced {
			a.formScreen = a.screen
		}
		a.screen = ScreenResults
	}
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenQuick:
		content = a.quick.View()
	case ScreenAdvanced:
		content = a.wizard.View()
	case ScreenResults:
		content = a.results.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("HikerHunger Trail Calorie Planner")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"f2", "Quick", ScreenQuick},
		{"f3", "Advanced", ScreenAdvanced},
		{"f4", "Results", ScreenResults},
		{"f1", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[ctrl+c] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status == "" {
		return ""
	}
	if a.statusError {
		return statusStyle.Render(errorStyle.Render(a.status))
	}
	return statusStyle.Render(a.status)
}
