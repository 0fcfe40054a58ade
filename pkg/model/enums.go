package model

import (
	"fmt"
	"strings"
)

// Category classifies an admission event.
type Category string

const (
	CategoryAdmission Category = "Admission"
	CategoryExam      Category = "Exam"
	CategoryResult    Category = "Result"
	CategoryAdmitCard Category = "Admit Card"
	CategoryOther     Category = "Other"
)

// Categories returns the fixed enumeration in display order.
func Categories() []Category {
	return []Category{
		CategoryAdmission,
		CategoryExam,
		CategoryResult,
		CategoryAdmitCard,
		CategoryOther,
	}
}

// ParseCategory converts a string to a Category or returns an error for
// unknown values. Matching is case-insensitive.
func ParseCategory(raw string) (Category, error) {
	trimmed := strings.TrimSpace(raw)
	for _, candidate := range Categories() {
		if strings.EqualFold(string(candidate), trimmed) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("model: unknown category %q", raw)
}

// Priority ranks a deadline.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if p == "" {
		return PriorityMedium, nil
	}
	for _, candidate := range Priorities() {
		if candidate == p {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("model: unknown priority %q", raw)
}

// Theme is the two-valued display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeLight
)

// ParseTheme validates a stored raw value. Anything outside the enumeration,
// including the empty string, is an error so loaders can substitute the
// default.
func ParseTheme(raw string) (Theme, error) {
	switch Theme(raw) {
	case ThemeLight, ThemeDark:
		return Theme(raw), nil
	}
	return "", fmt.Errorf("model: unknown theme %q", raw)
}

// Lang is the two-valued language preference.
type Lang string

const (
	LangEN Lang = "en"
	LangBN Lang = "bn"

	DefaultLang = LangEN
)

func ParseLang(raw string) (Lang, error) {
	switch Lang(raw) {
	case LangEN, LangBN:
		return Lang(raw), nil
	}
	return "", fmt.Errorf("model: unknown language %q", raw)
}
