package view

import (
	"time"

	"admitly/pkg/model"
)

// DayTotal is one bucket of the weekly study aggregate.
type DayTotal struct {
	Date    model.Date
	Label   int // day of month, for chart axis labels
	Minutes int
}

// WeeklyStudy sums session minutes for each of the 7 calendar days ending
// today inclusive, oldest first. Days without sessions contribute a zero
// bucket.
func WeeklyStudy(sessions []model.StudySession, today time.Time) []DayTotal {
	days := make([]DayTotal, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		date := model.NewDate(day)
		total := 0
		for _, s := range sessions {
			if s.Date == date {
				total += s.Minutes
			}
		}
		days = append(days, DayTotal{Date: date, Label: day.Day(), Minutes: total})
	}
	return days
}

// Ceiling is the chart's vertical scale: the largest daily sum, but never
// below 60 so an all-zero week still renders against a visible baseline.
func Ceiling(days []DayTotal) int {
	max := 60
	for _, d := range days {
		if d.Minutes > max {
			max = d.Minutes
		}
	}
	return max
}

// TodayTotal sums minutes studied on the given day.
func TodayTotal(sessions []model.StudySession, today time.Time) int {
	date := model.NewDate(today)
	total := 0
	for _, s := range sessions {
		if s.Date == date {
			total += s.Minutes
		}
	}
	return total
}

// AllTimeTotal sums minutes across every session.
func AllTimeTotal(sessions []model.StudySession) int {
	total := 0
	for _, s := range sessions {
		total += s.Minutes
	}
	return total
}
