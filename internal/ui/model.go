package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okelund/fastwin/internal/clock"
	"github.com/okelund/fastwin/internal/config"
)

// state represents the different screens of the TUI.
type state int

const (
	stateMenu state = iota
	stateClockFormat
	stateCurrentTime
	stateMealTime
	stateDuration
	stateFastResult
	stateYears
	stateStartDate
	stateDateResult
)

func (s state) String() string {
	switch s {
	case stateMenu:
		return "Menu"
	case stateClockFormat:
		return "ClockFormat"
	case stateCurrentTime:
		return "CurrentTime"
	case stateMealTime:
		return "MealTime"
	case stateDuration:
		return "Duration"
	case stateFastResult:
		return "FastResult"
	case stateYears:
		return "Years"
	case stateStartDate:
		return "StartDate"
	case stateDateResult:
		return "DateResult"
	default:
		return "Unknown"
	}
}

// maxInputLen caps free-text input fields.
const maxInputLen = 12

// Model holds the current state of the UI, including user input and the
// values captured so far in the active flow.
type Model struct {
	State        state
	Selected     int
	Input        string
	ErrorMessage string
	ShowHelp     bool

	// Fasting flow
	TwelveHour    bool
	CurrentTime   string
	CurrentPeriod string
	MealTime      string
	MealPeriod    string

	// Date flow
	Years int

	// Result holds the final sentence shown on a result screen.
	Result string

	Clock clock.Clock
	Cfg   *config.Config

	Keys KeyMap
	Help help.Model
}

// InitialModel returns the initial model for the TUI.
func InitialModel(cfg *config.Config, clk clock.Clock) Model {
	return Model{
		State:      stateMenu,
		Selected:   0,
		Input:      "",
		TwelveHour: cfg.TwelveHour(),
		Clock:      clk,
		Cfg:        cfg,
		Keys:       DefaultKeys(),
		Help:       NewHelpModel(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}
