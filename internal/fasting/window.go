package fasting

import "fmt"

// Request describes one fasting-window calculation. Times use the
// ParseClock conventions; Minutes is the fasting length produced by
// ParseHours.
type Request struct {
	CurrentTime   string
	CurrentPeriod string
	MealTime      string
	MealPeriod    string
	Minutes       int
	TwelveHour    bool // render the start in 12-hour form
}

// Window is a computed fasting start.
type Window struct {
	// Start is the formatted start-of-fast clock time.
	Start string
	// Day labels the day the fast begins: "today", "tomorrow" or
	// "in N days".
	Day string
	// DayOffset is the number of whole days between now's midnight and
	// the start instant.
	DayOffset int
	// StartMinutes is the start instant in absolute minutes counted
	// from now's midnight.
	StartMinutes int
}

// StartTime computes when fasting must begin so that it ends exactly at
// the next occurrence of the meal time strictly after the current time.
//
// The meal is pushed forward by at most one extra day when the computed
// start would not be in the future. Fasting lengths beyond roughly two
// days can therefore still produce a non-future start; that single-push
// behavior is deliberate and pinned by tests.
func StartTime(req Request) (Window, error) {
	current, err := ParseClock(req.CurrentTime, req.CurrentPeriod)
	if err != nil {
		return Window{}, err
	}
	meal, err := ParseClock(req.MealTime, req.MealPeriod)
	if err != nil {
		return Window{}, err
	}
	if req.Minutes <= 0 {
		return Window{}, fmt.Errorf("%w: fasting duration must be positive", ErrRange)
	}

	// The meal already behind or exactly at the current time belongs to
	// the next day.
	mealAbsolute := meal
	if meal <= current {
		mealAbsolute += MinutesPerDay
	}

	start := mealAbsolute - req.Minutes
	if start <= current {
		mealAbsolute += MinutesPerDay
		start = mealAbsolute - req.Minutes
	}

	offset := floorDiv(start, MinutesPerDay)
	return Window{
		Start:        FormatMinutes(start, req.TwelveHour),
		Day:          dayLabel(offset),
		DayOffset:    offset,
		StartMinutes: start,
	}, nil
}

// floorDiv divides rounding toward negative infinity, so a (possible,
// see StartTime) negative start still maps to the day containing it.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func dayLabel(offset int) string {
	switch offset {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", offset)
	}
}
