package view

import (
	"testing"

	"admitly/pkg/model"
)

func events() []model.AdmissionEvent {
	return []model.AdmissionEvent{
		{ID: "a", Title: "Midterm Exam Notice", Date: "2025-06-01", Category: model.CategoryExam, Notes: "hall list pending"},
		{ID: "b", Title: "DU Admission", Date: "2025-03-01", Category: model.CategoryAdmission},
		{ID: "c", Title: "JU Result", Date: "2025-09-01", Category: model.CategoryResult},
	}
}

func TestFilterSortAllSortsAscending(t *testing.T) {
	got := FilterSort(events(), CategoryAll, "")
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	want := []model.Date{"2025-03-01", "2025-06-01", "2025-09-01"}
	for i, w := range want {
		if got[i].Date != w {
			t.Fatalf("position %d: expected %s, got %s", i, w, got[i].Date)
		}
	}
}

func TestFilterSortCategoryExactMatch(t *testing.T) {
	got := FilterSort(events(), "Exam", "")
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected only the exam event, got %+v", got)
	}
}

func TestFilterSortQueryCaseInsensitive(t *testing.T) {
	got := FilterSort(events(), CategoryAll, "EXAM")
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected title match for 'EXAM', got %+v", got)
	}
}

func TestFilterSortQueryMatchesNotes(t *testing.T) {
	got := FilterSort(events(), CategoryAll, "hall list")
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected notes match, got %+v", got)
	}
}

func TestFilterSortNoMatches(t *testing.T) {
	if got := FilterSort(events(), CategoryAll, "zzz"); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestFilterSortStableTies(t *testing.T) {
	tied := []model.AdmissionEvent{
		{ID: "x", Title: "X", Date: "2025-05-01", Category: model.CategoryOther},
		{ID: "y", Title: "Y", Date: "2025-05-01", Category: model.CategoryOther},
		{ID: "z", Title: "Z", Date: "2025-04-01", Category: model.CategoryOther},
	}
	got := FilterSort(tied, CategoryAll, "")
	if got[0].ID != "z" || got[1].ID != "x" || got[2].ID != "y" {
		t.Fatalf("expected stable tie-break, got %v %v %v", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestFilterSortDoesNotMutateInput(t *testing.T) {
	in := events()
	FilterSort(in, CategoryAll, "")
	if in[0].ID != "a" || in[1].ID != "b" || in[2].ID != "c" {
		t.Fatalf("input mutated: %v %v %v", in[0].ID, in[1].ID, in[2].ID)
	}
}

func TestSortedByDate(t *testing.T) {
	got := SortedByDate([]model.Deadline{
		{ID: "1", Title: "late", Date: "2026-05-01"},
		{ID: "2", Title: "early", Date: "2026-01-01"},
	})
	if got[0].ID != "2" || got[1].ID != "1" {
		t.Fatalf("expected date order, got %+v", got)
	}
}

func TestTodosOn(t *testing.T) {
	todos := []model.Todo{
		{ID: "1", Date: "2026-01-01", Text: "a"},
		{ID: "2", Date: "2026-01-02", Text: "b"},
		{ID: "3", Date: "2026-01-01", Text: "c"},
	}
	got := TodosOn(todos, "2026-01-01")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("expected todos 1 and 3 in order, got %+v", got)
	}
}

func TestSubjectNameDanglingID(t *testing.T) {
	subjects := []model.Subject{{ID: "1", Name: "General"}}
	if got := SubjectName(subjects, "1"); got != "General" {
		t.Fatalf("expected General, got %q", got)
	}
	if got := SubjectName(subjects, "deleted"); got != "Unknown" {
		t.Fatalf("expected placeholder for dangling id, got %q", got)
	}
}
