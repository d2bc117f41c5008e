// Package fasting computes fasting windows from clock times expressed
// as minutes since midnight.
package fasting

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in one calendar day.
const MinutesPerDay = 24 * 60

// Error kinds. Every failure from this package wraps one of these, so
// callers can distinguish malformed input from out-of-range values with
// errors.Is.
var (
	ErrFormat = errors.New("malformed input")
	ErrRange  = errors.New("value out of range")
)

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseClock parses a clock string in H:MM or HH:MM form and returns
// minutes since midnight.
//
// With an empty period the hour is read as 24-hour time (0-23). With
// period "AM" or "PM" (case-insensitive) the hour must be 1-12; 12 AM
// maps to 0 and PM adds twelve hours except for 12 PM.
func ParseClock(s, period string) (int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: time must be in HH:MM format, got %q", ErrFormat, s)
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	if minutes > 59 {
		return 0, fmt.Errorf("%w: minutes must be between 0 and 59, got %d", ErrRange, minutes)
	}

	if period != "" {
		switch strings.ToUpper(period) {
		case "AM":
			if hours < 1 || hours > 12 {
				return 0, fmt.Errorf("%w: 12-hour time needs an hour between 1 and 12, got %d", ErrRange, hours)
			}
			if hours == 12 {
				hours = 0
			}
		case "PM":
			if hours < 1 || hours > 12 {
				return 0, fmt.Errorf("%w: 12-hour time needs an hour between 1 and 12, got %d", ErrRange, hours)
			}
			if hours != 12 {
				hours += 12
			}
		default:
			return 0, fmt.Errorf("%w: period must be AM or PM, got %q", ErrRange, period)
		}
	} else if hours > 23 {
		return 0, fmt.Errorf("%w: 24-hour time needs an hour between 0 and 23, got %d", ErrRange, hours)
	}

	return hours*60 + minutes, nil
}

// SplitClock splits a clock string with an optional trailing AM/PM
// token, e.g. "7:30 PM" or "7:30PM", into the bare time and the period.
// Strings without a period come back unchanged with an empty period.
func SplitClock(s string) (timePart, period string) {
	trimmed := strings.TrimSpace(s)
	upper := strings.ToUpper(trimmed)
	for _, p := range []string{"AM", "PM"} {
		if strings.HasSuffix(upper, p) {
			return strings.TrimSpace(trimmed[:len(trimmed)-2]), p
		}
	}
	return trimmed, ""
}

// FormatMinutes renders minutes since midnight as a zero-padded clock
// string. Values outside a single day wrap modulo 24 hours, so callers
// tracking a multi-day offset must carry the day separately.
func FormatMinutes(total int, twelveHour bool) string {
	normalized := ((total % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	hours := normalized / 60
	minutes := normalized % 60

	if !twelveHour {
		return fmt.Sprintf("%02d:%02d", hours, minutes)
	}

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%02d:%02d %s", display, minutes, period)
}
