package jsonfile

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/teachertube/backend/internal/catalog/models"
)

type TeacherStore struct {
	store *store[models.Teacher]
}

func NewTeacherStore(dataDir string, log zerolog.Logger) *TeacherStore {
	return &TeacherStore{store: newStore[models.Teacher](filepath.Join(dataDir, "teachers.json"), log)}
}

func (s *TeacherStore) List(ctx context.Context) ([]models.Teacher, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.All(), nil
}

func (s *TeacherStore) Create(ctx context.Context, t *models.Teacher) error {
	if t == nil || t.ID == "" {
		return models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.Update(func(records []models.Teacher) ([]models.Teacher, error) {
		for _, existing := range records {
			if existing.ID == t.ID {
				return nil, models.ErrConflict
			}
		}
		return append(records, *t), nil
	})
}

func (s *TeacherStore) Exists(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	for _, t := range s.store.All() {
		if t.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *TeacherStore) ExistsByNameSubject(ctx context.Context, name, subject string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	for _, t := range s.store.All() {
		if t.Name == name && t.Subject == subject {
			return true, nil
		}
	}
	return false, nil
}
