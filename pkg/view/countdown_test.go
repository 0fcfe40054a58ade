package view

import (
	"testing"
	"time"

	"admitly/pkg/model"
)

func TestDaysUntilFarFuture(t *testing.T) {
	now := time.Date(2025, 1, 1, 15, 30, 0, 0, time.Local)
	days := DaysUntil("2099-01-01", now)
	if days < 27000 {
		t.Fatalf("expected a large positive day count, got %d", days)
	}
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	// Late in the evening the whole-day count must be unchanged.
	now := time.Date(2025, 1, 1, 23, 59, 0, 0, time.Local)
	if days := DaysUntil("2025-01-02", now); days != 1 {
		t.Fatalf("expected 1 day, got %d", days)
	}
}

func TestCountdownLabelTimeUp(t *testing.T) {
	now := time.Date(2025, 1, 2, 8, 0, 0, 0, time.Local)

	if got := CountdownLabel("2025-01-01", now, model.LangEN); got != "Time Up" {
		t.Fatalf("expected Time Up for yesterday, got %q", got)
	}
	if got := CountdownLabel("2025-01-02", now, model.LangEN); got != "Time Up" {
		t.Fatalf("expected Time Up for today, got %q", got)
	}
	if got := CountdownLabel("2025-01-01", now, model.LangBN); got != "সময় শেষ" {
		t.Fatalf("expected localized time up, got %q", got)
	}
}

func TestCountdownLabelDaysLeft(t *testing.T) {
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.Local)

	if got := CountdownLabel("2025-01-06", now, model.LangEN); got != "5 Days left" {
		t.Fatalf("expected '5 Days left', got %q", got)
	}
	if got := CountdownLabel("2025-01-06", now, model.LangBN); got != "5 দিন বাকি" {
		t.Fatalf("expected localized days left, got %q", got)
	}
}

func TestCountdownLabelMalformedDate(t *testing.T) {
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.Local)
	if got := CountdownLabel("not-a-date", now, model.LangEN); got != "Time Up" {
		t.Fatalf("expected time up for malformed date, got %q", got)
	}
}

func TestUrgent(t *testing.T) {
	if !Urgent(3) || !Urgent(0) || !Urgent(-1) {
		t.Fatalf("expected urgency at 3 days or fewer")
	}
	if Urgent(4) {
		t.Fatalf("expected no urgency at 4 days")
	}
}
