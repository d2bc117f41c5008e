package ui

import (
	"strings"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	if m.ShowHelp {
		return helpView()
	}

	switch m.State {
	case stateMenu:
		return menuView(m)
	case stateClockFormat:
		return clockFormatView(m)
	case stateCurrentTime:
		return inputView(m, "Current Time", currentTimePrompt(m))
	case stateMealTime:
		return inputView(m, "Next Meal", mealTimePrompt(m))
	case stateDuration:
		return inputView(m, "Fasting Duration", "How many hours do you want to fast before the meal?")
	case stateYears:
		return inputView(m, "Year Offset", "Enter the number of years (negative for past, positive for future):")
	case stateStartDate:
		return inputView(m, "Start Date", "Enter the start date (YYYY-MM-DD) or press enter to use today:")
	case stateFastResult, stateDateResult:
		return resultView(m)
	}

	return ""
}

func currentTimePrompt(m Model) string {
	if m.TwelveHour {
		return "Enter the current time (HH:MM AM/PM):"
	}
	return "Enter the current time (HH:MM):"
}

func mealTimePrompt(m Model) string {
	if m.TwelveHour {
		return "Enter your next meal time (HH:MM AM/PM):"
	}
	return "Enter your next meal time (HH:MM):"
}

func menuView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Fastwin Calculators"))
	b.WriteString("\n\n")

	b.WriteString(Current.Unselected.Render("Select a calculator:"))
	b.WriteString("\n\n")

	menuItems := []string{
		"Fasting window calculator",
		"Date offset calculator",
		"Quit",
	}

	for i, opt := range menuItems {
		if i == m.Selected {
			b.WriteString(Current.Selected.Render("> " + opt))
		} else {
			b.WriteString(Current.Unselected.Render("  " + opt))
		}
		b.WriteString("\n")
	}

	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}

	b.WriteString("\n\n" + helpLine(m))
	return b.String()
}

func clockFormatView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Clock Format"))
	b.WriteString("\n\n")

	b.WriteString(Current.Unselected.Render("How do you want to enter times?"))
	b.WriteString("\n\n")

	options := []string{
		"24-hour (e.g. 20:00)",
		"12-hour with AM/PM (e.g. 8:00 PM)",
	}

	for i, opt := range options {
		if i == m.Selected {
			b.WriteString(Current.Selected.Render("> " + opt))
		} else {
			b.WriteString(Current.Unselected.Render("  " + opt))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n\n" + helpLine(m))
	return b.String()
}

func inputView(m Model, title, prompt string) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(Current.Unselected.Render(prompt))
	b.WriteString("\n")
	input := m.Input
	if input == "" {
		input = " "
	}
	b.WriteString(Current.InputBox.Render(input))
	b.WriteString("\n\n")

	b.WriteString(helpLine(m))

	if m.ErrorMessage != "" {
		b.WriteString("\n\n" + Current.Error.Render(m.ErrorMessage))
	}

	return b.String()
}

func resultView(m Model) string {
	var b strings.Builder

	title := "Fasting Window"
	if m.State == stateDateResult {
		title = "Date Offset"
	}
	b.WriteString(Current.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(Current.Result.Render(m.Result))
	b.WriteString("\n\n")

	b.WriteString(Current.Help.Render("Press enter for the menu • q to quit"))
	return b.String()
}

func helpLine(m Model) string {
	return Current.Help.Render(m.Help.View(m.Keys.ForState(m.State)))
}

func helpView() string {
	help := `Fastwin Help

Two small calculators:

  Fasting window  Given the current time, your next meal time and a
                  fasting duration, tells you when to start fasting so
                  the fast ends exactly at the next meal.
  Date offset     Shifts a date (default: today) by a signed number of
                  calendar years.

Non-interactive use:
  fastwin fast --meal 12:00 --hours 16     Compute a fasting window
  fastwin date --years 5 --from 2020-01-15 Shift a date
  fastwin version                          Show version information

Navigation:
  ↑/k, ↓/j  : Navigate
  Enter      : Select / confirm input
  Esc        : Back
  h/?        : Toggle this help (menu)
  q          : Quit

Press 'q' or 'Esc' to close help`

	return Current.Help.Render(help)
}
