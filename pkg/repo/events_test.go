package repo

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"admitly/pkg/model"
	"admitly/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func newTestEvents(t *testing.T) *Events {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	r := NewEvents(p)
	seq := 0
	r.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return r
}

func TestFirstReadSeedsDemoEvent(t *testing.T) {
	r := newTestEvents(t)

	all := r.GetAll()
	if len(all) != 1 {
		t.Fatalf("expected exactly one seeded event, got %d", len(all))
	}
	if all[0].ID != "1" {
		t.Fatalf("unexpected seed id %q", all[0].ID)
	}
	if all[0].Category != model.CategoryAdmission {
		t.Fatalf("unexpected seed category %q", all[0].Category)
	}
}

func TestDeletedSeedStaysDeleted(t *testing.T) {
	r := newTestEvents(t)

	seeded := r.GetAll()
	if err := r.Delete(seeded[0].ID); err != nil {
		t.Fatalf("delete seed: %v", err)
	}

	// The key now exists with an empty array; a second read must not
	// re-seed.
	if got := r.GetAll(); len(got) != 0 {
		t.Fatalf("expected empty collection after deleting seed, got %d", len(got))
	}
}

func TestUpsertInsertAndGetByID(t *testing.T) {
	r := newTestEvents(t)
	r.GetAll() // trigger seed so the insert appends after it

	stored, err := r.Upsert(model.AdmissionEvent{
		Title:    "Midterm Exam Notice",
		Date:     "2026-03-01",
		Category: model.CategoryExam,
	}, "")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if stored.ID == "" {
		t.Fatalf("expected generated id")
	}
	if stored.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt stamp")
	}

	got, ok := r.GetByID(stored.ID)
	if !ok {
		t.Fatalf("expected stored event retrievable")
	}
	if got.Title != "Midterm Exam Notice" || got.Date != "2026-03-01" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestUpsertUpdatePreservesCreatedAtAndPosition(t *testing.T) {
	r := newTestEvents(t)
	r.GetAll()

	first, err := r.Upsert(model.AdmissionEvent{Title: "A", Date: "2026-01-01", Category: model.CategoryOther}, "")
	if err != nil {
		t.Fatalf("insert A: %v", err)
	}
	if _, err := r.Upsert(model.AdmissionEvent{Title: "B", Date: "2026-02-01", Category: model.CategoryOther}, ""); err != nil {
		t.Fatalf("insert B: %v", err)
	}

	updated, err := r.Upsert(model.AdmissionEvent{Title: "A2", Date: "2026-01-15", Category: model.CategoryResult}, first.ID)
	if err != nil {
		t.Fatalf("update A: %v", err)
	}
	if !updated.CreatedAt.Equal(first.CreatedAt.Time) {
		t.Fatalf("createdAt not preserved: %v vs %v", updated.CreatedAt, first.CreatedAt)
	}

	all := r.GetAll()
	// Seed at 0, A at 1, B at 2. The update must not move A.
	if all[1].ID != first.ID || all[1].Title != "A2" {
		t.Fatalf("expected update in place, got %+v", all[1])
	}
}

func TestUpsertUnknownID(t *testing.T) {
	r := newTestEvents(t)
	r.GetAll()

	_, err := r.Upsert(model.AdmissionEvent{Title: "X", Date: "2026-01-01", Category: model.CategoryOther}, "missing")
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestUpsertRejectsMissingRequiredFields(t *testing.T) {
	r := newTestEvents(t)
	before := r.GetAll()

	_, err := r.Upsert(model.AdmissionEvent{Title: "  ", Date: "2026-01-01"}, "")
	if !errors.Is(err, model.ErrMissingRequired) {
		t.Fatalf("expected ErrMissingRequired, got %v", err)
	}
	_, err = r.Upsert(model.AdmissionEvent{Title: "T", Date: ""}, "")
	if !errors.Is(err, model.ErrMissingRequired) {
		t.Fatalf("expected ErrMissingRequired, got %v", err)
	}

	if got := r.GetAll(); len(got) != len(before) {
		t.Fatalf("store touched by rejected write: %d vs %d", len(got), len(before))
	}
}

func TestDeleteCascadesTimeSlot(t *testing.T) {
	r := newTestEvents(t)
	r.GetAll()

	stored, err := r.Upsert(model.AdmissionEvent{Title: "A", Date: "2026-01-01", Category: model.CategoryOther}, "")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := r.SetTimeSlot(stored.ID, model.TimeSlot{Start: "09:30", End: "12:00"}); err != nil {
		t.Fatalf("set slot: %v", err)
	}
	if _, ok := r.GetTimeSlot(stored.ID); !ok {
		t.Fatalf("expected slot stored")
	}

	if err := r.Delete(stored.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := r.GetByID(stored.ID); ok {
		t.Fatalf("expected event gone")
	}
	if _, ok := r.GetTimeSlot(stored.ID); ok {
		t.Fatalf("expected slot cascaded away with its event")
	}
}

func TestDeleteAbsentIsNoOp(t *testing.T) {
	r := newTestEvents(t)
	r.GetAll()
	if err := r.Delete("missing"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestSetTimeSlotEmptyStartRemoves(t *testing.T) {
	r := newTestEvents(t)
	r.GetAll()

	if err := r.SetTimeSlot("1", model.TimeSlot{Start: "09:30"}); err != nil {
		t.Fatalf("set slot: %v", err)
	}
	if err := r.SetTimeSlot("1", model.TimeSlot{Start: "  ", End: "12:00", Note: "hall B"}); err != nil {
		t.Fatalf("set empty slot: %v", err)
	}
	if _, ok := r.GetTimeSlot("1"); ok {
		t.Fatalf("expected empty start to remove the slot")
	}
}

func TestSetTimeSlotTrims(t *testing.T) {
	r := newTestEvents(t)
	r.GetAll()

	if err := r.SetTimeSlot("1", model.TimeSlot{Start: " 09:30 ", End: " 12:00 ", Note: " hall B "}); err != nil {
		t.Fatalf("set slot: %v", err)
	}
	slot, ok := r.GetTimeSlot("1")
	if !ok {
		t.Fatalf("expected slot stored")
	}
	if slot.Start != "09:30" || slot.End != "12:00" || slot.Note != "hall B" {
		t.Fatalf("expected trimmed slot, got %+v", slot)
	}
}

func TestGetAllCorruptDataFailsSoft(t *testing.T) {
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Write(store.KeyEvents, []byte("{corrupt")); err != nil {
		t.Fatalf("write: %v", err)
	}

	r := NewEvents(p)
	// The key exists, so no seeding; corrupt data reads as empty.
	if got := r.GetAll(); len(got) != 0 {
		t.Fatalf("expected empty collection from corrupt data, got %d", len(got))
	}
}

func TestDemoEventCreatedAt(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := DemoEvent(now); !got.CreatedAt.Equal(now) {
		t.Fatalf("expected createdAt %v, got %v", now, got.CreatedAt)
	}
}
