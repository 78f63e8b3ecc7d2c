package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/teachertube/backend/internal/catalog/models"
)

type VideoRepo struct {
	db *sqlx.DB
}

func NewVideoRepo(db *sqlx.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

func (r *VideoRepo) List(ctx context.Context) ([]models.Video, error) {
	const q = `
		SELECT id, teacher_id, title, description, file_name, url, created_at
		FROM videos
		ORDER BY created_at
	`
	var videos []models.Video
	if err := r.db.SelectContext(ctx, &videos, q); err != nil {
		return nil, fmt.Errorf("video list: %w", err)
	}
	return videos, nil
}

func (r *VideoRepo) ListByTeacher(ctx context.Context, teacherID string) ([]models.Video, error) {
	const q = `
		SELECT id, teacher_id, title, description, file_name, url, created_at
		FROM videos
		WHERE teacher_id = $1
		ORDER BY created_at
	`
	var videos []models.Video
	if err := r.db.SelectContext(ctx, &videos, q, teacherID); err != nil {
		return nil, fmt.Errorf("video list by teacher: %w", err)
	}
	return videos, nil
}

func (r *VideoRepo) Create(ctx context.Context, v *models.Video) error {
	if v == nil || v.ID == "" {
		return models.ErrInvalidArgument
	}
	const q = `
		INSERT INTO videos (id, teacher_id, title, description, file_name, url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, q,
		v.ID, v.TeacherID, v.Title, v.Description, v.FileName, v.URL, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("video create: %w", err)
	}
	return nil
}

func (r *VideoRepo) Delete(ctx context.Context, id string) (*models.Video, error) {
	const q = `
		DELETE FROM videos
		WHERE id = $1
		RETURNING id, teacher_id, title, description, file_name, url, created_at
	`
	var v models.Video
	if err := r.db.GetContext(ctx, &v, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("video delete: %w", err)
	}
	return &v, nil
}
