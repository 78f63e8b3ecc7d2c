package jsonfile

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/teachertube/backend/internal/catalog/models"
)

type VideoStore struct {
	store *store[models.Video]
}

func NewVideoStore(dataDir string, log zerolog.Logger) *VideoStore {
	return &VideoStore{store: newStore[models.Video](filepath.Join(dataDir, "videos.json"), log)}
}

func (s *VideoStore) List(ctx context.Context) ([]models.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.All(), nil
}

func (s *VideoStore) ListByTeacher(ctx context.Context, teacherID string) ([]models.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []models.Video
	for _, v := range s.store.All() {
		if v.TeacherID == teacherID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *VideoStore) Create(ctx context.Context, v *models.Video) error {
	if v == nil || v.ID == "" {
		return models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.Update(func(records []models.Video) ([]models.Video, error) {
		for _, existing := range records {
			if existing.ID == v.ID {
				return nil, models.ErrConflict
			}
		}
		return append(records, *v), nil
	})
}

func (s *VideoStore) Delete(ctx context.Context, id string) (*models.Video, error) {
	if id == "" {
		return nil, models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var removed *models.Video
	err := s.store.Update(func(records []models.Video) ([]models.Video, error) {
		for i, v := range records {
			if v.ID == id {
				cp := v
				removed = &cp
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, models.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}
