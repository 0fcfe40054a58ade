package repo

import (
	"strings"

	"github.com/google/uuid"

	"admitly/pkg/model"
	"admitly/pkg/store"
)

// Todos is the repository for dated to-dos.
type Todos struct {
	p     store.Persistence
	newID func() string
}

func NewTodos(p store.Persistence) *Todos {
	return &Todos{p: p, newID: uuid.NewString}
}

func (r *Todos) GetAll() []model.Todo {
	return store.DecodeOr(r.p, store.KeyTodos, []model.Todo{})
}

func (r *Todos) SaveAll(todos []model.Todo) error {
	return store.Encode(r.p, store.KeyTodos, todos)
}

// Add prepends a new incomplete todo for the given date. Empty text is
// rejected before the store is touched.
func (r *Todos) Add(date model.Date, text string) (model.Todo, error) {
	if strings.TrimSpace(text) == "" {
		return model.Todo{}, model.ErrMissingRequired
	}
	todo := model.Todo{ID: r.newID(), Date: date, Text: text}
	todos := append([]model.Todo{todo}, r.GetAll()...)
	if err := r.SaveAll(todos); err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

// Toggle flips completion for id. Unknown ids are left alone.
func (r *Todos) Toggle(id string) error {
	todos := r.GetAll()
	for i := range todos {
		if todos[i].ID == id {
			todos[i].Completed = !todos[i].Completed
		}
	}
	return r.SaveAll(todos)
}

func (r *Todos) Delete(id string) error {
	todos := r.GetAll()
	kept := todos[:0]
	for _, todo := range todos {
		if todo.ID != id {
			kept = append(kept, todo)
		}
	}
	return r.SaveAll(kept)
}
