package repo

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"admitly/pkg/model"
	"admitly/pkg/store"
)

// ErrEventNotFound is returned by Upsert when an explicit id does not match
// any stored event. The UI only updates ids it just fetched, so hitting this
// means the caller is holding a stale id.
var ErrEventNotFound = errors.New("event not found")

// Events is the repository for admission events and their time-slot side
// table. All writes are whole-collection replacements; concurrent writers
// race with last-write-wins semantics.
type Events struct {
	p store.Persistence

	now   func() time.Time
	newID func() string
}

func NewEvents(p store.Persistence) *Events {
	return &Events{p: p, now: time.Now, newID: uuid.NewString}
}

// GetAll returns every stored event in storage order. On the very first read,
// when the storage key does not exist at all, it seeds the collection with
// one demo record. A present-but-empty array is not re-seeded; deleting the
// seed sticks.
func (r *Events) GetAll() []model.AdmissionEvent {
	if _, ok := r.p.Read(store.KeyEvents); !ok {
		seed := []model.AdmissionEvent{DemoEvent(r.now())}
		if err := store.Encode(r.p, store.KeyEvents, seed); err != nil {
			return seed
		}
		return seed
	}
	return store.DecodeOr(r.p, store.KeyEvents, []model.AdmissionEvent{})
}

func (r *Events) SaveAll(events []model.AdmissionEvent) error {
	return store.Encode(r.p, store.KeyEvents, events)
}

// GetByID scans the collection for id.
func (r *Events) GetByID(id string) (model.AdmissionEvent, bool) {
	for _, e := range r.GetAll() {
		if e.ID == id {
			return e, true
		}
	}
	return model.AdmissionEvent{}, false
}

// Upsert validates and stores an event. With an empty id it assigns a fresh
// one, stamps createdAt, and appends. With an id it replaces the matching
// record in place, preserving both position and the original createdAt, or
// fails with ErrEventNotFound.
func (r *Events) Upsert(event model.AdmissionEvent, id string) (model.AdmissionEvent, error) {
	if err := event.Validate(); err != nil {
		return model.AdmissionEvent{}, err
	}

	events := r.GetAll()

	if id == "" {
		event.ID = r.newID()
		event.CreatedAt = model.Timestamp{Time: r.now()}
		events = append(events, event)
		if err := r.SaveAll(events); err != nil {
			return model.AdmissionEvent{}, err
		}
		return event, nil
	}

	for i, existing := range events {
		if existing.ID == id {
			event.ID = id
			event.CreatedAt = existing.CreatedAt
			events[i] = event
			if err := r.SaveAll(events); err != nil {
				return model.AdmissionEvent{}, err
			}
			return event, nil
		}
	}
	return model.AdmissionEvent{}, ErrEventNotFound
}

// Delete removes the event if present and cascades to its time slot so no
// orphaned slot outlives its event. Deleting an absent id is a no-op.
func (r *Events) Delete(id string) error {
	events := r.GetAll()
	kept := events[:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if err := r.SaveAll(kept); err != nil {
		return err
	}
	return r.RemoveTimeSlot(id)
}

// TimeSlots loads the full side table keyed by event id.
func (r *Events) TimeSlots() map[string]model.TimeSlot {
	return store.DecodeOr(r.p, store.KeyTimeSlots, map[string]model.TimeSlot{})
}

func (r *Events) GetTimeSlot(eventID string) (model.TimeSlot, bool) {
	slot, ok := r.TimeSlots()[eventID]
	return slot, ok
}

// SetTimeSlot stores the slot for an event. A slot with an empty start is
// equivalent to no slot; setting one removes any stored record instead.
func (r *Events) SetTimeSlot(eventID string, slot model.TimeSlot) error {
	if slot.Empty() {
		return r.RemoveTimeSlot(eventID)
	}
	all := r.TimeSlots()
	all[eventID] = slot.Trimmed()
	return store.Encode(r.p, store.KeyTimeSlots, all)
}

func (r *Events) RemoveTimeSlot(eventID string) error {
	all := r.TimeSlots()
	if _, ok := all[eventID]; !ok {
		return nil
	}
	delete(all, eventID)
	return store.Encode(r.p, store.KeyTimeSlots, all)
}
