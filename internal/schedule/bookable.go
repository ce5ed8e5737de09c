// Package schedule decides whether a (doctor, date, time) slot falls inside
// the doctor's weekly working hours.
package schedule

import (
	"errors"
	"regexp"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrBadDate      = errors.New("invalid date format")
	ErrBadClock     = errors.New("invalid time format")
	ErrDayOff       = errors.New("doctor is not available that day")
	ErrOutsideHours = errors.New("time is outside the doctor's working hours")
	ErrBadWindow    = errors.New("start time must be before end time")
)

// zero-padded 24h clock, e.g. "09:00"
var clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return d, nil
}

// DayName returns the weekday name used as doctor_availability.day_name.
func DayName(d time.Time) string {
	return d.Weekday().String()
}

func ValidClock(s string) bool {
	return clockRe.MatchString(s)
}

// Bookable reports whether clock falls inside the day's window. The window is
// half-open: a time equal to end is rejected. Comparison is lexicographic,
// which matches numeric order for equal-length zero-padded "HH:MM" strings.
func Bookable(start, end *string, clock string) error {
	if !ValidClock(clock) {
		return ErrBadClock
	}
	if start == nil || end == nil || *start == "" || *end == "" {
		return ErrDayOff
	}
	if clock < *start || clock >= *end {
		return ErrOutsideHours
	}
	return nil
}

// ValidWindow checks a start/end pair submitted for a working day.
func ValidWindow(start, end string) error {
	if !ValidClock(start) || !ValidClock(end) {
		return ErrBadClock
	}
	if start >= end {
		return ErrBadWindow
	}
	return nil
}
