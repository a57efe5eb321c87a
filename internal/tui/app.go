package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"vitals/internal/health"
	"vitals/internal/service"
)

// Screen identifiers
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenRecommendations
	ScreenTrends
	ScreenSleep
	ScreenHelp
)

var screenNames = map[Screen]string{
	ScreenDashboard:       "Dashboard",
	ScreenRecommendations: "Recommendations",
	ScreenTrends:          "Trends",
	ScreenSleep:           "Sleep",
	ScreenHelp:            "Help",
}

// App is the root Bubble Tea model. It owns the assessment run and
// hands the result to the per-screen view models.
type App struct {
	screen     Screen
	prevScreen Screen

	assessments *service.AssessmentService

	result  *service.RunResult
	loading bool
	loadErr error
	spinner spinner.Model

	sleep SleepModel

	width  int
	height int
}

// NewApp creates the root model.
func NewApp(assessments *service.AssessmentService) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(primaryColor)

	return &App{
		screen:      ScreenDashboard,
		assessments: assessments,
		loading:     true,
		spinner:     sp,
		sleep:       NewSleepModel(assessments),
	}
}

// resultMsg carries a finished assessment run.
type resultMsg struct {
	result *service.RunResult
	err    error
}

func (a *App) runAssessment(force bool) tea.Cmd {
	return func() tea.Msg {
		result, err := a.assessments.RunAssessment(context.Background(), service.RunOptions{
			Period:       health.PeriodWeek,
			ForceRefresh: force,
		})
		return resultMsg{result: result, err: err}
	}
}

// Init starts the first assessment run.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.runAssessment(false))
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case resultMsg:
		a.loading = false
		a.loadErr = msg.err
		if msg.err == nil {
			a.result = msg.result
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loading && !a.sleep.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenDashboard
			return a, nil
		case "2":
			a.screen = ScreenRecommendations
			return a, nil
		case "3":
			a.screen = ScreenTrends
			return a, nil
		case "4":
			a.screen = ScreenSleep
			return a, tea.Batch(a.spinner.Tick, a.sleep.load(false))
		case "?":
			a.prevScreen = a.screen
			a.screen = ScreenHelp
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
			}
			return a, nil
		case "r":
			if a.screen == ScreenSleep {
				return a, tea.Batch(a.spinner.Tick, a.sleep.load(false))
			}
			a.loading = true
			a.loadErr = nil
			return a, tea.Batch(a.spinner.Tick, a.runAssessment(false))
		case "f":
			if a.screen == ScreenSleep {
				return a, tea.Batch(a.spinner.Tick, a.sleep.load(true))
			}
			a.loading = true
			a.loadErr = nil
			return a, tea.Batch(a.spinner.Tick, a.runAssessment(true))
		}
	}

	if a.screen == ScreenSleep {
		var cmd tea.Cmd
		a.sleep, cmd = a.sleep.Update(msg)
		return a, cmd
	}

	return a, nil
}

// View renders the active screen under the navigation bar.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("vitals - fitness assessment"))
	b.WriteString("\n")
	b.WriteString(a.renderNav())
	b.WriteString("\n")

	if a.loading && a.screen != ScreenSleep && a.screen != ScreenHelp {
		b.WriteString(fmt.Sprintf("\n  %s Computing assessment...\n", a.spinner.View()))
		return b.String()
	}

	if a.loadErr != nil && a.screen != ScreenHelp {
		b.WriteString(errorStyle.Render(fmt.Sprintf("\n  Error: %v\n", a.loadErr)))
		b.WriteString(statusStyle.Render("\n  Press 'r' to retry\n"))
		return b.String()
	}

	switch a.screen {
	case ScreenDashboard:
		b.WriteString(DashboardModel{result: a.result}.View())
	case ScreenRecommendations:
		b.WriteString(RecommendationsModel{result: a.result}.View())
	case ScreenTrends:
		b.WriteString(NewTrendsModel(a.result, a.assessments).View())
	case ScreenSleep:
		b.WriteString(a.sleep.View(a.spinner))
	case ScreenHelp:
		b.WriteString(HelpModel{}.View())
	}

	return b.String()
}

func (a *App) renderNav() string {
	var parts []string
	for _, s := range []Screen{ScreenDashboard, ScreenRecommendations, ScreenTrends, ScreenSleep} {
		label := fmt.Sprintf("[%d] %s", int(s)+1, screenNames[s])
		if s == a.screen {
			parts = append(parts, navActiveStyle.Render(label))
		} else {
			parts = append(parts, navStyle.Render(label))
		}
	}
	parts = append(parts, navStyle.Render("[?] Help"))
	return strings.Join(parts, "  ")
}
