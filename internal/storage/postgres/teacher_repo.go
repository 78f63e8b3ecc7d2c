package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/teachertube/backend/internal/catalog/models"
)

type TeacherRepo struct {
	db *sqlx.DB
}

func NewTeacherRepo(db *sqlx.DB) *TeacherRepo {
	return &TeacherRepo{db: db}
}

func (r *TeacherRepo) List(ctx context.Context) ([]models.Teacher, error) {
	const q = `
		SELECT id, name, subject, nickname
		FROM teachers
		ORDER BY id
	`
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, q); err != nil {
		return nil, fmt.Errorf("teacher list: %w", err)
	}
	return teachers, nil
}

func (r *TeacherRepo) Create(ctx context.Context, t *models.Teacher) error {
	if t == nil || t.ID == "" {
		return models.ErrInvalidArgument
	}
	const q = `
		INSERT INTO teachers (id, name, subject, nickname)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, q, t.ID, t.Name, t.Subject, t.Nickname); err != nil {
		return fmt.Errorf("teacher create: %w", err)
	}
	return nil
}

func (r *TeacherRepo) Exists(ctx context.Context, id string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM teachers WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, q, id); err != nil {
		return false, fmt.Errorf("teacher exists: %w", err)
	}
	return exists, nil
}

func (r *TeacherRepo) ExistsByNameSubject(ctx context.Context, name, subject string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM teachers WHERE name = $1 AND subject = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, q, name, subject); err != nil {
		return false, fmt.Errorf("teacher exists by name/subject: %w", err)
	}
	return exists, nil
}
