package deadline

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

// List prints all deadlines sorted by date.
type List struct {
	Lang   model.Lang
	ShowID bool

	Deadlines *repo.Deadlines
}

func (n *List) Do(ctx context.Context) error {
	if n.Deadlines == nil {
		return errors.New("can not list deadlines, no repository")
	}
	pp := printers.PrettyPrint{Lang: n.Lang, ShowID: n.ShowID}
	fmt.Println("")
	pp.Title(i18n.T(n.Lang, "deadlines"))
	pp.Deadlines(view.SortedByDate(n.Deadlines.GetAll()), time.Now())
	return nil
}

// Add creates a deadline.
type Add struct {
	Title    string
	Date     model.Date
	Priority model.Priority
	Lang     model.Lang

	Deadlines *repo.Deadlines
}

func (n *Add) Do(ctx context.Context) error {
	if n.Deadlines == nil {
		return errors.New("can not add deadline, no repository")
	}
	_, err := n.Deadlines.Add(model.Deadline{Title: n.Title, Date: n.Date, Priority: n.Priority})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Lang: n.Lang}
	fmt.Println("")
	pp.Title(i18n.T(n.Lang, "deadlines"))
	pp.Deadlines(view.SortedByDate(n.Deadlines.GetAll()), time.Now())
	return nil
}

// Delete removes a deadline unconditionally.
type Delete struct {
	ID string

	Deadlines *repo.Deadlines
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Deadlines == nil {
		return errors.New("can not delete deadline, no repository")
	}
	return n.Deadlines.Delete(n.ID)
}
