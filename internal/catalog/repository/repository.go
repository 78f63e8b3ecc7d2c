package repository

import (
	"context"

	"github.com/teachertube/backend/internal/catalog/models"
)

type TeacherStore interface {
	List(ctx context.Context) ([]models.Teacher, error)
	Create(ctx context.Context, t *models.Teacher) error
	Exists(ctx context.Context, id string) (bool, error)
	ExistsByNameSubject(ctx context.Context, name, subject string) (bool, error)
}

type VideoStore interface {
	List(ctx context.Context) ([]models.Video, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Video, error)
	Create(ctx context.Context, v *models.Video) error
	// Delete removes the record and returns it, so callers can clean up the
	// backing blob. Returns models.ErrNotFound when no record has the id.
	Delete(ctx context.Context, id string) (*models.Video, error)
}

type RequestStore interface {
	List(ctx context.Context) ([]models.TeacherRequest, error)
	Create(ctx context.Context, r *models.TeacherRequest) error
	GetByID(ctx context.Context, id string) (*models.TeacherRequest, error)
	UpdateStatus(ctx context.Context, id string, status models.RequestStatus) (*models.TeacherRequest, error)
}
