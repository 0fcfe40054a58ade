package study

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

// Add records a study session. An empty date defaults to today, and an
// empty subject id to the first stored subject, mirroring the tracker form.
type Add struct {
	SubjectID string
	Date      model.Date
	Minutes   int
	Notes     string
	Lang      model.Lang

	Study    *repo.Study
	Subjects *repo.Subjects
}

func (n *Add) Do(ctx context.Context) error {
	if n.Study == nil || n.Subjects == nil {
		return errors.New("can not add session, no repository")
	}

	subjects := n.Subjects.GetAll()
	if n.SubjectID == "" {
		n.SubjectID = subjects[0].ID
	}
	if n.Date.Empty() {
		n.Date = model.Today(time.Now())
	}

	_, err := n.Study.Add(model.StudySession{
		SubjectID: n.SubjectID,
		Date:      n.Date,
		Minutes:   n.Minutes,
		Notes:     n.Notes,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Lang: n.Lang}
	fmt.Println("")
	pp.Title(i18n.T(n.Lang, "studyTracker"))
	pp.Sessions(n.Study.GetAll(), subjects)
	return nil
}

// Report prints the summary counters and the last-7-days chart.
type Report struct {
	Lang     model.Lang
	Sessions bool // also list the raw sessions

	Study    *repo.Study
	Subjects *repo.Subjects
}

func (n *Report) Do(ctx context.Context) error {
	if n.Study == nil || n.Subjects == nil {
		return errors.New("can not report, no repository")
	}

	now := time.Now()
	sessions := n.Study.GetAll()

	pp := printers.PrettyPrint{Lang: n.Lang}
	fmt.Println("")
	pp.Title(i18n.T(n.Lang, "studyTracker"))
	pp.Study(view.WeeklyStudy(sessions, now), view.TodayTotal(sessions, now), view.AllTimeTotal(sessions))
	if n.Sessions {
		pp.Sessions(sessions, n.Subjects.GetAll())
	}
	return nil
}
