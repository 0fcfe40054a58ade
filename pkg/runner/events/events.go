package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"admitly/pkg/i18n"
	"admitly/pkg/model"
	"admitly/pkg/printers"
	"admitly/pkg/repo"
	"admitly/pkg/view"
)

// List prints the filtered, date-sorted events table.
type List struct {
	Category string
	Query    string
	Lang     model.Lang
	ShowID   bool

	Events *repo.Events
}

func (n *List) Do(ctx context.Context) error {
	if n.Events == nil {
		return errors.New("can not list, no repository")
	}
	if n.Category == "" {
		n.Category = view.CategoryAll
	}

	all := n.Events.GetAll()
	filtered := view.FilterSort(all, n.Category, n.Query)

	pp := printers.PrettyPrint{Lang: n.Lang, ShowID: n.ShowID}
	fmt.Println("")
	pp.Title(i18n.T(n.Lang, "dashboard"))
	pp.Events(filtered, n.Events.TimeSlots(), time.Now())
	return nil
}

// Show prints one event in detail.
type Show struct {
	ID   string
	Lang model.Lang

	Events *repo.Events
}

func (n *Show) Do(ctx context.Context) error {
	if n.Events == nil {
		return errors.New("can not show, no repository")
	}
	e, ok := n.Events.GetByID(n.ID)
	if !ok {
		return errors.New(i18n.T(n.Lang, "eventNotFound"))
	}
	slot, _ := n.Events.GetTimeSlot(n.ID)

	pp := printers.PrettyPrint{Lang: n.Lang, ShowID: true}
	fmt.Println("")
	pp.Event(e, slot, time.Now())
	return nil
}

// Save inserts or updates an event, and stores or clears its time slot in
// the same action the way the event form does.
type Save struct {
	ID    string // empty inserts, non-empty updates
	Event model.AdmissionEvent
	Slot  model.TimeSlot
	Lang  model.Lang

	Events *repo.Events
}

func (n *Save) Do(ctx context.Context) error {
	if n.Events == nil {
		return errors.New("can not save, no repository")
	}

	stored, err := n.Events.Upsert(n.Event, n.ID)
	if err != nil {
		if errors.Is(err, model.ErrMissingRequired) {
			return errors.New(requiredMessage(n.Lang))
		}
		return err
	}

	// An empty start clears any stored slot; SetTimeSlot handles both paths.
	if err := n.Events.SetTimeSlot(stored.ID, n.Slot); err != nil {
		return err
	}

	slot, _ := n.Events.GetTimeSlot(stored.ID)
	pp := printers.PrettyPrint{Lang: n.Lang, ShowID: true}
	fmt.Println("")
	pp.Event(stored, slot, time.Now())
	return nil
}

func requiredMessage(lang model.Lang) string {
	if lang == model.LangBN {
		return "শিরোনাম এবং তারিখ প্রয়োজন।"
	}
	return "Title and Date are required."
}

// Delete removes an event unconditionally; confirmation belongs to the
// caller.
type Delete struct {
	ID   string
	Lang model.Lang

	Events *repo.Events
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Events == nil {
		return errors.New("can not delete, no repository")
	}
	return n.Events.Delete(n.ID)
}
