package todo

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

// List prints the todos for one date, defaulting to today.
type List struct {
	Date model.Date
	Lang model.Lang

	ShowID bool
	Todos  *repo.Todos
}

func (n *List) Do(ctx context.Context) error {
	if n.Todos == nil {
		return errors.New("can not list todos, no repository")
	}
	if n.Date.Empty() {
		n.Date = model.Today(time.Now())
	}

	pp := printers.PrettyPrint{Lang: n.Lang, ShowID: n.ShowID}
	fmt.Println("")
	pp.Title(fmt.Sprintf("%s — %s", i18n.T(n.Lang, "myCalendar"), n.Date))
	pp.Todos(view.TodosOn(n.Todos.GetAll(), n.Date))
	return nil
}

// Add creates a todo for a date, defaulting to today.
type Add struct {
	Date model.Date
	Text string
	Lang model.Lang

	Todos *repo.Todos
}

func (n *Add) Do(ctx context.Context) error {
	if n.Todos == nil {
		return errors.New("can not add todo, no repository")
	}
	if n.Date.Empty() {
		n.Date = model.Today(time.Now())
	}
	todo, err := n.Todos.Add(n.Date, n.Text)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Lang: n.Lang}
	fmt.Println("")
	pp.Todos(view.TodosOn(n.Todos.GetAll(), todo.Date))
	return nil
}

// Toggle flips completion for a todo.
type Toggle struct {
	ID   string
	Lang model.Lang

	Todos *repo.Todos
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Todos == nil {
		return errors.New("can not toggle todo, no repository")
	}
	return n.Todos.Toggle(n.ID)
}

// Delete removes a todo unconditionally.
type Delete struct {
	ID string

	Todos *repo.Todos
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Todos == nil {
		return errors.New("can not delete todo, no repository")
	}
	return n.Todos.Delete(n.ID)
}
