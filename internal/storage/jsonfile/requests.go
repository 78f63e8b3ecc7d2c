package jsonfile

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/teachertube/backend/internal/catalog/models"
)

type RequestStore struct {
	store *store[models.TeacherRequest]
}

func NewRequestStore(dataDir string, log zerolog.Logger) *RequestStore {
	return &RequestStore{store: newStore[models.TeacherRequest](filepath.Join(dataDir, "requests.json"), log)}
}

func (s *RequestStore) List(ctx context.Context) ([]models.TeacherRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.All(), nil
}

func (s *RequestStore) Create(ctx context.Context, r *models.TeacherRequest) error {
	if r == nil || r.ID == "" {
		return models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.Update(func(records []models.TeacherRequest) ([]models.TeacherRequest, error) {
		for _, existing := range records {
			if existing.ID == r.ID {
				return nil, models.ErrConflict
			}
		}
		return append(records, *r), nil
	})
}

func (s *RequestStore) GetByID(ctx context.Context, id string) (*models.TeacherRequest, error) {
	if id == "" {
		return nil, models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, r := range s.store.All() {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *RequestStore) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) (*models.TeacherRequest, error) {
	if id == "" {
		return nil, models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var updated *models.TeacherRequest
	err := s.store.Update(func(records []models.TeacherRequest) ([]models.TeacherRequest, error) {
		for i := range records {
			if records[i].ID == id {
				records[i].Status = status
				cp := records[i]
				updated = &cp
				return records, nil
			}
		}
		return nil, models.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
