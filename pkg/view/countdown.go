package view

import (
	"fmt"
	"math"
	"time"

	"admitly/pkg/i18n"
	"admitly/pkg/model"
)

// DaysUntil is the whole-day countdown from now to target: both are
// normalized to midnight local time and the difference is rounded up, so
// the count drops the moment the local date ticks over, not 24 hours after
// the event was viewed. A malformed target counts as day zero.
func DaysUntil(target model.Date, now time.Time) int {
	t, ok := target.Time()
	if !ok {
		return 0
	}
	diff := model.Midnight(t).Sub(model.Midnight(now))
	return int(math.Ceil(diff.Hours() / 24))
}

// CountdownLabel renders the countdown for display: the localized time-up
// label when the date has arrived or passed, otherwise "{N} <days left>".
func CountdownLabel(target model.Date, now time.Time, lang model.Lang) string {
	days := DaysUntil(target, now)
	if days <= 0 {
		return i18n.T(lang, "timeUp")
	}
	return fmt.Sprintf("%d %s", days, i18n.T(lang, "daysLeft"))
}

// Urgent reports whether a deadline this many days out warrants attention.
func Urgent(days int) bool {
	return days <= 3
}
