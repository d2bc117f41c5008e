// Package dateshift moves calendar dates by whole years.
package dateshift

import (
	"errors"
	"time"

	"github.com/okelund/fastwin/internal/clock"
)

// Layout is the wire format for dates, ISO 8601 calendar dates.
const Layout = "2006-01-02"

// ErrFormat reports a date string that is not YYYY-MM-DD.
var ErrFormat = errors.New("date must be in YYYY-MM-DD format")

// AddYears shifts start by the given number of calendar years (negative
// for the past) and returns the result as YYYY-MM-DD. An empty start
// means today according to clk. Feb 29 shifted onto a non-leap year
// normalizes to Mar 1, following time.AddDate.
func AddYears(years int, start string, clk clock.Clock) (string, error) {
	base, err := parseDate(start, clk)
	if err != nil {
		return "", err
	}
	return base.AddDate(years, 0, 0).Format(Layout), nil
}

func parseDate(s string, clk clock.Clock) (time.Time, error) {
	if s == "" {
		now := clk.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, ErrFormat
	}
	return t, nil
}
