package repo

import (
	"github.com/google/uuid"

	"admitly/pkg/model"
	"admitly/pkg/store"
)

// Deadlines is the repository for tracked deadlines.
type Deadlines struct {
	p     store.Persistence
	newID func() string
}

func NewDeadlines(p store.Persistence) *Deadlines {
	return &Deadlines{p: p, newID: uuid.NewString}
}

func (r *Deadlines) GetAll() []model.Deadline {
	return store.DecodeOr(r.p, store.KeyDeadlines, []model.Deadline{})
}

func (r *Deadlines) SaveAll(deadlines []model.Deadline) error {
	return store.Encode(r.p, store.KeyDeadlines, deadlines)
}

// Add validates and prepends a new deadline.
func (r *Deadlines) Add(deadline model.Deadline) (model.Deadline, error) {
	if err := deadline.Validate(); err != nil {
		return model.Deadline{}, err
	}
	if deadline.Priority == "" {
		deadline.Priority = model.PriorityMedium
	}
	deadline.ID = r.newID()
	deadlines := append([]model.Deadline{deadline}, r.GetAll()...)
	if err := r.SaveAll(deadlines); err != nil {
		return model.Deadline{}, err
	}
	return deadline, nil
}

func (r *Deadlines) Delete(id string) error {
	deadlines := r.GetAll()
	kept := deadlines[:0]
	for _, d := range deadlines {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	return r.SaveAll(kept)
}
