package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/teachertube/backend/internal/catalog/models"
)

type RequestRepo struct {
	db *sqlx.DB
}

func NewRequestRepo(db *sqlx.DB) *RequestRepo {
	return &RequestRepo{db: db}
}

func (r *RequestRepo) List(ctx context.Context) ([]models.TeacherRequest, error) {
	const q = `
		SELECT id, name, subject, status, created_at
		FROM teacher_requests
		ORDER BY created_at
	`
	var requests []models.TeacherRequest
	if err := r.db.SelectContext(ctx, &requests, q); err != nil {
		return nil, fmt.Errorf("request list: %w", err)
	}
	return requests, nil
}

func (r *RequestRepo) Create(ctx context.Context, req *models.TeacherRequest) error {
	if req == nil || req.ID == "" {
		return models.ErrInvalidArgument
	}
	const q = `
		INSERT INTO teacher_requests (id, name, subject, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, q, req.ID, req.Name, req.Subject, req.Status, req.CreatedAt)
	if err != nil {
		return fmt.Errorf("request create: %w", err)
	}
	return nil
}

func (r *RequestRepo) GetByID(ctx context.Context, id string) (*models.TeacherRequest, error) {
	const q = `
		SELECT id, name, subject, status, created_at
		FROM teacher_requests
		WHERE id = $1
	`
	var req models.TeacherRequest
	if err := r.db.GetContext(ctx, &req, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("request get by id: %w", err)
	}
	return &req, nil
}

func (r *RequestRepo) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) (*models.TeacherRequest, error) {
	const q = `
		UPDATE teacher_requests
		SET status = $2
		WHERE id = $1
		RETURNING id, name, subject, status, created_at
	`
	var req models.TeacherRequest
	if err := r.db.GetContext(ctx, &req, q, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("request update status: %w", err)
	}
	return &req, nil
}
