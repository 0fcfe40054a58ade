package repo

import (
	"testing"

	"admitly/pkg/model"
	"admitly/pkg/store"
)

func newTestStore(t *testing.T) store.Persistence {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestSubjectsDefaultWhenAbsent(t *testing.T) {
	r := NewSubjects(newTestStore(t))

	subjects := r.GetAll()
	if len(subjects) != 1 {
		t.Fatalf("expected one synthesized subject, got %d", len(subjects))
	}
	if subjects[0].Name != "General" {
		t.Fatalf("expected General, got %q", subjects[0].Name)
	}
}

func TestSubjectsDefaultWhenEmpty(t *testing.T) {
	p := newTestStore(t)
	r := NewSubjects(p)

	if err := r.SaveAll([]model.Subject{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	subjects := r.GetAll()
	if len(subjects) != 1 || subjects[0].Name != "General" {
		t.Fatalf("expected synthesized default for empty list, got %+v", subjects)
	}

	// The default is a view, not a write: the stored value stays empty.
	raw, ok := p.Read(store.KeySubjects)
	if !ok || string(raw) != "[]" {
		t.Fatalf("expected stored empty array untouched, got %q", raw)
	}
}

func TestSubjectsRoundTrip(t *testing.T) {
	r := NewSubjects(newTestStore(t))

	want := []model.Subject{
		{ID: "1", Name: "Physics", Color: "#ff0000"},
		{ID: "2", Name: "Chemistry", Color: "#00ff00"},
	}
	if err := r.SaveAll(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := r.GetAll()
	if len(got) != 2 || got[0].Name != "Physics" || got[1].Name != "Chemistry" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestStudyAddPrepends(t *testing.T) {
	r := NewStudy(newTestStore(t))

	if _, err := r.Add(model.StudySession{SubjectID: "1", Date: "2026-01-01", Minutes: 30}); err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := r.Add(model.StudySession{SubjectID: "1", Date: "2026-01-02", Minutes: 45})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	all := r.GetAll()
	if len(all) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(all))
	}
	if all[0].ID != second.ID {
		t.Fatalf("expected newest first, got %+v", all[0])
	}
}

func TestStudyAddClampsNegativeMinutes(t *testing.T) {
	r := NewStudy(newTestStore(t))

	stored, err := r.Add(model.StudySession{SubjectID: "1", Date: "2026-01-01", Minutes: -5})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if stored.Minutes != 0 {
		t.Fatalf("expected minutes clamped to 0, got %d", stored.Minutes)
	}
}

func TestStudyEmptyCollections(t *testing.T) {
	r := NewStudy(newTestStore(t))
	if got := r.GetAll(); len(got) != 0 {
		t.Fatalf("expected no seeding for study sessions, got %d", len(got))
	}
}

func TestTodosAddToggleDelete(t *testing.T) {
	r := NewTodos(newTestStore(t))

	todo, err := r.Add("2026-01-01", "collect admit card")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if todo.Completed {
		t.Fatalf("expected new todo incomplete")
	}

	if err := r.Toggle(todo.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got := r.GetAll(); !got[0].Completed {
		t.Fatalf("expected todo completed after toggle")
	}
	if err := r.Toggle(todo.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got := r.GetAll(); got[0].Completed {
		t.Fatalf("expected todo incomplete after second toggle")
	}

	if err := r.Delete(todo.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := r.GetAll(); len(got) != 0 {
		t.Fatalf("expected todo gone, got %d", len(got))
	}
}

func TestTodosAddRejectsEmptyText(t *testing.T) {
	r := NewTodos(newTestStore(t))
	if _, err := r.Add("2026-01-01", "   "); err == nil {
		t.Fatalf("expected error for empty text")
	}
	if got := r.GetAll(); len(got) != 0 {
		t.Fatalf("store touched by rejected write")
	}
}

func TestDeadlinesAddValidatesAndPrepends(t *testing.T) {
	r := NewDeadlines(newTestStore(t))

	if _, err := r.Add(model.Deadline{Title: "", Date: "2026-01-01"}); err == nil {
		t.Fatalf("expected error for missing title")
	}

	first, err := r.Add(model.Deadline{Title: "DU form", Date: "2026-04-10", Priority: model.PriorityHigh})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := r.Add(model.Deadline{Title: "JU form", Date: "2026-04-20"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if second.Priority != model.PriorityMedium {
		t.Fatalf("expected default medium priority, got %q", second.Priority)
	}

	all := r.GetAll()
	if len(all) != 2 || all[0].ID != second.ID || all[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", all)
	}

	if err := r.Delete(first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := r.GetAll(); len(got) != 1 || got[0].ID != second.ID {
		t.Fatalf("unexpected deadlines after delete: %+v", got)
	}
}
