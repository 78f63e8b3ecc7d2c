package repository

import (
	"context"
	"sync"

	"github.com/teachertube/backend/internal/catalog/models"
)

// In-memory store implementations. Used by handler tests and local
// experimentation; production runs on the jsonfile or postgres backends.

type MemoryTeacherStore struct {
	mu   sync.RWMutex
	data []models.Teacher
}

func NewMemoryTeacherStore() *MemoryTeacherStore {
	return &MemoryTeacherStore{}
}

func (s *MemoryTeacherStore) List(ctx context.Context) ([]models.Teacher, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Teacher, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *MemoryTeacherStore) Create(ctx context.Context, t *models.Teacher) error {
	if t == nil || t.ID == "" {
		return models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.data {
		if existing.ID == t.ID {
			return models.ErrConflict
		}
	}
	s.data = append(s.data, *t)
	return nil
}

func (s *MemoryTeacherStore) Exists(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.data {
		if t.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryTeacherStore) ExistsByNameSubject(ctx context.Context, name, subject string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.data {
		if t.Name == name && t.Subject == subject {
			return true, nil
		}
	}
	return false, nil
}

type MemoryVideoStore struct {
	mu   sync.RWMutex
	data []models.Video
}

func NewMemoryVideoStore() *MemoryVideoStore {
	return &MemoryVideoStore{}
}

func (s *MemoryVideoStore) List(ctx context.Context) ([]models.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Video, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *MemoryVideoStore) ListByTeacher(ctx context.Context, teacherID string) ([]models.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Video
	for _, v := range s.data {
		if v.TeacherID == teacherID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *MemoryVideoStore) Create(ctx context.Context, v *models.Video) error {
	if v == nil || v.ID == "" {
		return models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.data {
		if existing.ID == v.ID {
			return models.ErrConflict
		}
	}
	s.data = append(s.data, *v)
	return nil
}

func (s *MemoryVideoStore) Delete(ctx context.Context, id string) (*models.Video, error) {
	if id == "" {
		return nil, models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.data {
		if v.ID == id {
			removed := v
			s.data = append(s.data[:i], s.data[i+1:]...)
			return &removed, nil
		}
	}
	return nil, models.ErrNotFound
}

type MemoryRequestStore struct {
	mu   sync.RWMutex
	data []models.TeacherRequest
}

func NewMemoryRequestStore() *MemoryRequestStore {
	return &MemoryRequestStore{}
}

func (s *MemoryRequestStore) List(ctx context.Context) ([]models.TeacherRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TeacherRequest, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *MemoryRequestStore) Create(ctx context.Context, r *models.TeacherRequest) error {
	if r == nil || r.ID == "" {
		return models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.data {
		if existing.ID == r.ID {
			return models.ErrConflict
		}
	}
	s.data = append(s.data, *r)
	return nil
}

func (s *MemoryRequestStore) GetByID(ctx context.Context, id string) (*models.TeacherRequest, error) {
	if id == "" {
		return nil, models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.data {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *MemoryRequestStore) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) (*models.TeacherRequest, error) {
	if id == "" {
		return nil, models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data {
		if s.data[i].ID == id {
			s.data[i].Status = status
			cp := s.data[i]
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}
