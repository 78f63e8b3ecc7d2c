package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/teachertube/backend/internal/catalog/models"
)

type TeacherStoreMock struct {
	mock.Mock
}

func (m *TeacherStoreMock) List(ctx context.Context) ([]models.Teacher, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Teacher), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TeacherStoreMock) Create(ctx context.Context, t *models.Teacher) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TeacherStoreMock) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *TeacherStoreMock) ExistsByNameSubject(ctx context.Context, name, subject string) (bool, error) {
	args := m.Called(ctx, name, subject)
	return args.Bool(0), args.Error(1)
}

type VideoStoreMock struct {
	mock.Mock
}

func (m *VideoStoreMock) List(ctx context.Context) ([]models.Video, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VideoStoreMock) ListByTeacher(ctx context.Context, teacherID string) ([]models.Video, error) {
	args := m.Called(ctx, teacherID)
	if v := args.Get(0); v != nil {
		return v.([]models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VideoStoreMock) Create(ctx context.Context, v *models.Video) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *VideoStoreMock) Delete(ctx context.Context, id string) (*models.Video, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

type RequestStoreMock struct {
	mock.Mock
}

func (m *RequestStoreMock) List(ctx context.Context) ([]models.TeacherRequest, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.TeacherRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RequestStoreMock) Create(ctx context.Context, r *models.TeacherRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *RequestStoreMock) GetByID(ctx context.Context, id string) (*models.TeacherRequest, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.TeacherRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RequestStoreMock) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) (*models.TeacherRequest, error) {
	args := m.Called(ctx, id, status)
	if v := args.Get(0); v != nil {
		return v.(*models.TeacherRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

type BlobStorageMock struct {
	mock.Mock
}

func (m *BlobStorageMock) Save(fileName string, src io.Reader) error {
	args := m.Called(fileName, src)
	return args.Error(0)
}

func (m *BlobStorageMock) Remove(fileName string) error {
	args := m.Called(fileName)
	return args.Error(0)
}

func (m *BlobStorageMock) URL(fileName string) string {
	args := m.Called(fileName)
	return args.String(0)
}

type PublisherMock struct {
	mock.Mock
}

func (m *PublisherMock) Publish(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
