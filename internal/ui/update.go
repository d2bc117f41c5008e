package ui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okelund/fastwin/internal/dateshift"
	"github.com/okelund/fastwin/internal/fasting"
)

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	key := keyMsg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.ShowHelp {
		switch key {
		case "h", "?", "q", "esc", "enter":
			m.ShowHelp = false
		}
		return m, nil
	}

	switch m.State {
	case stateMenu:
		return updateMenu(key, m)
	case stateClockFormat:
		return updateClockFormat(key, m)
	case stateCurrentTime, stateMealTime, stateDuration, stateYears, stateStartDate:
		return updateInput(key, m)
	case stateFastResult, stateDateResult:
		return updateResult(key, m)
	}

	return m, nil
}

func updateMenu(key string, m Model) (Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < 2 {
			m.Selected++
		}
	case "enter", " ":
		switch m.Selected {
		case 0:
			// Fasting window calculator
			m = resetFlow(m)
			m.State = stateClockFormat
			if m.TwelveHour {
				m.Selected = 1
			} else {
				m.Selected = 0
			}
		case 1:
			// Date offset calculator
			m = resetFlow(m)
			m.State = stateYears
		case 2:
			return m, tea.Quit
		}
	case "h", "?":
		m.ShowHelp = true
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func updateClockFormat(key string, m Model) (Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < 1 {
			m.Selected++
		}
	case "enter", " ":
		m.TwelveHour = m.Selected == 1
		m.State = stateCurrentTime
		m.Input = ""
		m.ErrorMessage = ""
	case "esc":
		return backToMenu(m), nil
	}
	return m, nil
}

func updateInput(key string, m Model) (Model, tea.Cmd) {
	switch key {
	case "enter":
		return submit(m), nil
	case "esc":
		return back(m), nil
	case "backspace":
		if len(m.Input) > 0 {
			m.Input = m.Input[:len(m.Input)-1]
			m.ErrorMessage = ""
		}
		return m, nil
	default:
		if len(key) == 1 && allowRune(m.State, m.TwelveHour, rune(key[0])) && len(m.Input) < maxInputLen {
			m.Input += key
			m.ErrorMessage = ""
		}
		return m, nil
	}
}

func updateResult(key string, m Model) (Model, tea.Cmd) {
	switch key {
	case "enter", "esc", " ":
		return backToMenu(m), nil
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// allowRune filters typed characters per input field. Validation proper
// happens on submit; this only keeps obvious junk out of the field.
func allowRune(s state, twelveHour bool, r rune) bool {
	if unicode.IsDigit(r) {
		return true
	}
	switch s {
	case stateCurrentTime, stateMealTime:
		if r == ':' {
			return true
		}
		if twelveHour {
			return strings.ContainsRune("aApPmM ", r)
		}
		return false
	case stateDuration:
		return strings.ContainsRune(".hms", r)
	case stateYears:
		return r == '-'
	case stateStartDate:
		return r == '-'
	}
	return false
}

func submit(m Model) Model {
	input := strings.TrimSpace(m.Input)

	switch m.State {
	case stateCurrentTime, stateMealTime:
		if input == "" {
			m.ErrorMessage = "Input cannot be empty"
			return m
		}
		timePart, period := fasting.SplitClock(input)
		if m.TwelveHour && period == "" {
			m.ErrorMessage = "Add AM or PM, e.g. 7:30 AM"
			return m
		}
		if !m.TwelveHour && period != "" {
			m.ErrorMessage = "24-hour times don't take AM/PM"
			return m
		}
		if _, err := fasting.ParseClock(timePart, period); err != nil {
			m.ErrorMessage = err.Error()
			return m
		}
		if m.State == stateCurrentTime {
			m.CurrentTime, m.CurrentPeriod = timePart, period
			m.State = stateMealTime
			m.Input = ""
		} else {
			m.MealTime, m.MealPeriod = timePart, period
			m.State = stateDuration
			m.Input = m.Cfg.Fasting.DefaultHours
		}
		m.ErrorMessage = ""
		return m

	case stateDuration:
		if input == "" {
			m.ErrorMessage = "Input cannot be empty"
			return m
		}
		minutes, err := fasting.ParseHours(input)
		if err != nil {
			m.ErrorMessage = err.Error()
			return m
		}
		window, err := fasting.StartTime(fasting.Request{
			CurrentTime:   m.CurrentTime,
			CurrentPeriod: m.CurrentPeriod,
			MealTime:      m.MealTime,
			MealPeriod:    m.MealPeriod,
			Minutes:       minutes,
			TwelveHour:    m.TwelveHour,
		})
		if err != nil {
			m.ErrorMessage = err.Error()
			return m
		}
		m.Result = fmt.Sprintf("You should start fasting at %s %s.", window.Start, window.Day)
		m.State = stateFastResult
		m.Input = ""
		m.ErrorMessage = ""
		return m

	case stateYears:
		if input == "" {
			m.ErrorMessage = "Input cannot be empty"
			return m
		}
		years, err := strconv.Atoi(input)
		if err != nil {
			m.ErrorMessage = "Enter a whole number of years, negative for the past"
			return m
		}
		m.Years = years
		m.State = stateStartDate
		m.Input = ""
		m.ErrorMessage = ""
		return m

	case stateStartDate:
		// Empty means today.
		result, err := dateshift.AddYears(m.Years, input, m.Clock)
		if err != nil {
			m.ErrorMessage = err.Error()
			return m
		}
		m.Result = fmt.Sprintf("New Date: %s", result)
		m.State = stateDateResult
		m.Input = ""
		m.ErrorMessage = ""
		return m
	}

	return m
}

func back(m Model) Model {
	m.Input = ""
	m.ErrorMessage = ""
	switch m.State {
	case stateCurrentTime:
		m.State = stateClockFormat
	case stateMealTime:
		m.State = stateCurrentTime
	case stateDuration:
		m.State = stateMealTime
	case stateYears:
		return backToMenu(m)
	case stateStartDate:
		m.State = stateYears
	}
	return m
}

func backToMenu(m Model) Model {
	m = resetFlow(m)
	m.State = stateMenu
	m.Selected = 0
	return m
}

func resetFlow(m Model) Model {
	m.Input = ""
	m.ErrorMessage = ""
	m.Result = ""
	m.CurrentTime, m.CurrentPeriod = "", ""
	m.MealTime, m.MealPeriod = "", ""
	m.Years = 0
	m.TwelveHour = m.Cfg.TwelveHour()
	return m
}
