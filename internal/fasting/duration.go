package fasting

import (
	"fmt"
	"strconv"
	"time"
)

// ParseHours parses a fasting duration given in hours and returns whole
// minutes, truncating any fractional minute. Accepted forms are a plain
// number of hours ("16", "16.5") or a Go duration string ("16h30m").
// Durations of zero or less are rejected.
func ParseHours(input string) (int, error) {
	var minutes int
	if hours, err := strconv.ParseFloat(input, 64); err == nil {
		minutes = int(hours * 60)
	} else {
		d, err := time.ParseDuration(input)
		if err != nil {
			return 0, fmt.Errorf("%w: duration must be hours like \"16\" or \"16h30m\", got %q", ErrFormat, input)
		}
		minutes = int(d.Minutes())
	}

	if minutes <= 0 {
		return 0, fmt.Errorf("%w: fasting duration must be positive", ErrRange)
	}
	return minutes, nil
}
