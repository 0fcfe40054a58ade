package view

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"admitly/pkg/i18n"
	"admitly/pkg/model"
)

// NewsItem pairs an event with its rendered marquee line.
type NewsItem struct {
	Event model.AdmissionEvent
	Text  string
}

// LatestNews selects the 3 most recently created events, newest first, and
// renders each one's marquee text: non-empty notes win ("title: notes");
// an Exam or Result whose date is strictly before today gets the localized
// ended suffix; everything else is the bare title.
func LatestNews(events []model.AdmissionEvent, now time.Time, lang model.Lang) []NewsItem {
	sorted := make([]model.AdmissionEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt.Time)
	})
	if len(sorted) > 3 {
		sorted = sorted[:3]
	}

	items := make([]NewsItem, 0, len(sorted))
	for _, e := range sorted {
		items = append(items, NewsItem{Event: e, Text: marqueeText(e, now, lang)})
	}
	return items
}

// Marquee duplicates the sequence once so a looping display can scroll
// seamlessly. The duplication is deliberate.
func Marquee(items []NewsItem) []NewsItem {
	doubled := make([]NewsItem, 0, len(items)*2)
	doubled = append(doubled, items...)
	doubled = append(doubled, items...)
	return doubled
}

func marqueeText(e model.AdmissionEvent, now time.Time, lang model.Lang) string {
	if note := strings.TrimSpace(e.Notes); note != "" {
		return fmt.Sprintf("%s: %s", e.Title, note)
	}
	if (e.Category == model.CategoryExam || e.Category == model.CategoryResult) && isPast(e.Date, now) {
		return fmt.Sprintf("%s — %s", e.Title, i18n.T(lang, "examHasEnded"))
	}
	return e.Title
}

// isPast is a date-only comparison: true when the date is strictly before
// today.
func isPast(date model.Date, now time.Time) bool {
	t, ok := date.Time()
	if !ok {
		return false
	}
	return model.Midnight(t).Before(model.Midnight(now))
}
