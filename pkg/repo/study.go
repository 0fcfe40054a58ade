package repo

import (
	"github.com/google/uuid"

	"admitly/pkg/model"
	"admitly/pkg/store"
)

// Study is the repository for study sessions.
type Study struct {
	p     store.Persistence
	newID func() string
}

func NewStudy(p store.Persistence) *Study {
	return &Study{p: p, newID: uuid.NewString}
}

func (r *Study) GetAll() []model.StudySession {
	return store.DecodeOr(r.p, store.KeyStudy, []model.StudySession{})
}

func (r *Study) SaveAll(sessions []model.StudySession) error {
	return store.Encode(r.p, store.KeyStudy, sessions)
}

// Add assigns a fresh id and prepends the session, newest first.
func (r *Study) Add(session model.StudySession) (model.StudySession, error) {
	session.ID = r.newID()
	if session.Minutes < 0 {
		session.Minutes = 0
	}
	sessions := append([]model.StudySession{session}, r.GetAll()...)
	if err := r.SaveAll(sessions); err != nil {
		return model.StudySession{}, err
	}
	return session, nil
}

// Subjects is the repository for study subjects.
type Subjects struct {
	p store.Persistence
}

func NewSubjects(p store.Persistence) *Subjects {
	return &Subjects{p: p}
}

// GetAll never returns an empty collection: when nothing usable is stored a
// single "General" subject is synthesized. The default is not written back;
// it exists only in the returned view.
func (r *Subjects) GetAll() []model.Subject {
	subjects := store.DecodeOr(r.p, store.KeySubjects, []model.Subject{})
	if len(subjects) == 0 {
		return []model.Subject{model.DefaultSubject()}
	}
	return subjects
}

func (r *Subjects) SaveAll(subjects []model.Subject) error {
	return store.Encode(r.p, store.KeySubjects, subjects)
}
