package model

import (
	"errors"
	"strings"
)

// AdmissionEvent is a single tracked admission notice. Field names on the
// wire match the stored schema and must not change.
type AdmissionEvent struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Date          Date      `json:"date"`
	Category      Category  `json:"category"`
	Eligibility   string    `json:"eligibility"`
	WebsiteLink   string    `json:"websiteLink"`
	AdmitCardLink string    `json:"admitCardLink"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     Timestamp `json:"createdAt"`
}

var ErrMissingRequired = errors.New("title and date are required")

// Validate rejects events that must not reach storage.
func (e AdmissionEvent) Validate() error {
	if strings.TrimSpace(e.Title) == "" || strings.TrimSpace(string(e.Date)) == "" {
		return ErrMissingRequired
	}
	return nil
}

// TimeSlot is an optional start/end/note overlay attached to an event by id.
// It lives in its own storage key so the event record stays small.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
	Note  string `json:"note,omitempty"`
}

// Empty reports whether the slot should not exist in storage. A slot without
// a start time is equivalent to no slot at all.
func (s TimeSlot) Empty() bool {
	return strings.TrimSpace(s.Start) == ""
}

// Trimmed returns a copy with surrounding whitespace removed from all fields.
func (s TimeSlot) Trimmed() TimeSlot {
	return TimeSlot{
		Start: strings.TrimSpace(s.Start),
		End:   strings.TrimSpace(s.End),
		Note:  strings.TrimSpace(s.Note),
	}
}

// StudySession records minutes studied for a subject on a day. SubjectID may
// dangle after the subject is deleted; readers substitute a placeholder.
type StudySession struct {
	ID        string `json:"id"`
	SubjectID string `json:"subjectId"`
	Date      Date   `json:"date"`
	Minutes   int    `json:"minutes"`
	Notes     string `json:"notes"`
}

type Subject struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// DefaultSubject is synthesized whenever no subjects are stored.
func DefaultSubject() Subject {
	return Subject{ID: "1", Name: "General", Color: "#6366f1"}
}

type Todo struct {
	ID        string `json:"id"`
	Date      Date   `json:"date"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type Deadline struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Date     Date     `json:"date"`
	Priority Priority `json:"priority"`
}

func (d Deadline) Validate() error {
	if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(string(d.Date)) == "" {
		return ErrMissingRequired
	}
	return nil
}
