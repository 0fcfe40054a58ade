package repo

import (
	"time"

	"admitly/pkg/model"
)

// DemoEvent is the single record seeded into an entirely absent events
// collection so a first run has something to show.
func DemoEvent(now time.Time) model.AdmissionEvent {
	return model.AdmissionEvent{
		ID:            "1",
		Title:         "Dhaka University Admission 2025",
		Date:          "2025-05-15",
		Category:      model.CategoryAdmission,
		Eligibility:   "HSC Passed with GPA 8.00 (Combined)",
		WebsiteLink:   "https://admission.eis.du.ac.bd/",
		AdmitCardLink: "https://admission.eis.du.ac.bd/login",
		Notes:         "Unit A and Unit B dates are slightly different.",
		CreatedAt:     model.Timestamp{Time: now},
	}
}
