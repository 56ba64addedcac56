// Package timeutil provides utility functions for working with time values
// and calendar dates. The YYYY-MM-DD date string is the sole calendar-date
// representation used throughout the program, and ToDateString is the only
// conversion boundary from an instant to a date.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the layout for calendar-date strings.
const DateFormat = "2006-01-02"

const maxSessionLength = 24 * time.Hour

// Round rounds a time value in seconds, minutes, or hours to the nearest
// integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// ToDateString derives the local calendar date of an instant in YYYY-MM-DD
// form.
func ToDateString(t time.Time) string {
	return t.Format(DateFormat)
}

// FromDateString parses a YYYY-MM-DD string into midnight local time of that
// day.
func FromDateString(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	return t, nil
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		int(999*time.Millisecond),
		t.Location(),
	)
}

// StartOfWeek returns midnight on the Sunday that begins the week containing
// t. Weeks run Sunday through Saturday.
func StartOfWeek(t time.Time) time.Time {
	return RoundToStart(t.AddDate(0, 0, -int(t.Weekday())))
}

// EndOfWeek returns the final instant of the Saturday that ends the week
// containing t.
func EndOfWeek(t time.Time) time.Time {
	return RoundToEnd(StartOfWeek(t).AddDate(0, 0, 6))
}

// StartOfMonth returns midnight on the first day of the month containing t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the final instant of the last day of the month
// containing t.
func EndOfMonth(t time.Time) time.Time {
	return RoundToEnd(time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()))
}

// Between computes the length of the interval from start to end, clamped to
// a minimum of zero so that reversed inputs never yield a negative duration.
func Between(start, end time.Time) time.Duration {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}

	return d
}

// FormatDuration renders a duration as H:MM:SS.
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0:00:00"
	}

	totalSeconds := int(d.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}

// FormatTime renders the clock time of an instant as HH:MM, in 24-hour or
// 12-hour form.
func FormatTime(t time.Time, twentyFourHour bool) string {
	if twentyFourHour {
		return t.Format("15:04")
	}

	return t.Format("03:04 PM")
}

// ParseTimeInput parses a clock time in H:MM or HH:MM form and places it on
// the calendar day of the day argument.
func ParseTimeInput(input string, day time.Time) (time.Time, error) {
	errInvalid := fmt.Errorf("invalid time %q: expected HH:MM", input)

	hh, mm, ok := strings.Cut(input, ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return time.Time{}, errInvalid
	}

	hours, err := strconv.Atoi(hh)
	if err != nil {
		return time.Time{}, errInvalid
	}

	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return time.Time{}, errInvalid
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return time.Time{}, errInvalid
	}

	return time.Date(
		day.Year(),
		day.Month(),
		day.Day(),
		hours,
		minutes,
		0,
		0,
		day.Location(),
	), nil
}

// ValidateTimeRange reports whether a start/end pair describes a usable
// session interval: end strictly after start and no longer than a day.
func ValidateTimeRange(start, end time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("end time must be after start time")
	}

	if end.Sub(start) > maxSessionLength {
		return fmt.Errorf("session cannot be longer than 24 hours")
	}

	return nil
}
