package slot

import (
	"context"
	"errors"
	"fmt"

	"admitly/pkg/i18n"
	"admitly/pkg/model"
	"admitly/pkg/repo"
	"admitly/pkg/view"
)

// Set stores or clears the time slot overlay for an event. Clearing happens
// implicitly when the start time is empty.
type Set struct {
	EventID string
	Slot    model.TimeSlot
	Lang    model.Lang

	Events *repo.Events
}

func (n *Set) Do(ctx context.Context) error {
	if n.Events == nil {
		return errors.New("can not set slot, no repository")
	}
	if _, ok := n.Events.GetByID(n.EventID); !ok {
		return errors.New(i18n.T(n.Lang, "eventNotFound"))
	}
	if err := n.Events.SetTimeSlot(n.EventID, n.Slot); err != nil {
		return err
	}
	if n.Slot.Empty() {
		fmt.Println(i18n.T(n.Lang, "timeNotSet"))
		return nil
	}
	fmt.Println(view.FormatSlot(n.Slot.Trimmed()))
	return nil
}

// Show prints an event's slot, or the not-set label.
type Show struct {
	EventID string
	Lang    model.Lang

	Events *repo.Events
}

func (n *Show) Do(ctx context.Context) error {
	if n.Events == nil {
		return errors.New("can not show slot, no repository")
	}
	slot, ok := n.Events.GetTimeSlot(n.EventID)
	if !ok {
		fmt.Println(i18n.T(n.Lang, "timeNotSet"))
		return nil
	}
	fmt.Println(view.FormatSlot(slot))
	if slot.Note != "" {
		fmt.Println(slot.Note)
	}
	return nil
}

// Clear removes an event's slot.
type Clear struct {
	EventID string

	Events *repo.Events
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Events == nil {
		return errors.New("can not clear slot, no repository")
	}
	return n.Events.RemoveTimeSlot(n.EventID)
}
