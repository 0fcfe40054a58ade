package model

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time component, stored as "YYYY-MM-DD".
type Date string

// NewDate truncates t to its local calendar date.
func NewDate(t time.Time) Date {
	return Date(t.Local().Format(dateLayout))
}

// Today is the local calendar date of now.
func Today(now time.Time) Date {
	return NewDate(now)
}

// Time parses the date at midnight local time. ok is false for empty or
// malformed values.
func (d Date) Time() (time.Time, bool) {
	t, err := time.ParseInLocation(dateLayout, string(d), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (d Date) Empty() bool {
	return strings.TrimSpace(string(d)) == ""
}

// Before orders dates lexically; the layout makes lexical and chronological
// order agree for well-formed values.
func (d Date) Before(other Date) bool {
	return string(d) < string(other)
}

// Midnight normalizes an arbitrary instant to midnight local time.
func Midnight(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
