package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/teachertube/backend/internal/catalog/domain"
	"github.com/teachertube/backend/internal/catalog/idgen"
	"github.com/teachertube/backend/internal/catalog/models"
	"github.com/teachertube/backend/internal/catalog/repository"
)

const defaultExtension = ".mp4"

// BlobStorage is the slice of the blob store the upload pipeline needs.
type BlobStorage interface {
	Save(fileName string, src io.Reader) error
	Remove(fileName string) error
	URL(fileName string) string
}

// EventPublisher publishes serialized domain events. Publishing is
// best-effort: the service never fails an operation over a publish error.
type EventPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type Service struct {
	teachers repository.TeacherStore
	videos   repository.VideoStore
	requests repository.RequestStore
	blobs    BlobStorage
	events   EventPublisher
	clock    func() time.Time
	idGen    func(prefix string) string
	log      zerolog.Logger
}

type Deps struct {
	Teachers repository.TeacherStore
	Videos   repository.VideoStore
	Requests repository.RequestStore
	Blobs    BlobStorage
	Events   EventPublisher // optional
	Logger   zerolog.Logger
}

func New(d Deps) *Service {
	return &Service{
		teachers: d.Teachers,
		videos:   d.Videos,
		requests: d.Requests,
		blobs:    d.Blobs,
		events:   d.Events,
		clock:    time.Now,
		idGen:    idgen.NewID,
		log:      d.Logger.With().Str("component", "catalog_service").Logger(),
	}
}

// ListTeachers returns every teacher with its derived video count. The count
// is a full scan of the video collection; fine at tens-to-hundreds of records.
func (s *Service) ListTeachers(ctx context.Context) ([]models.TeacherWithCount, error) {
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, err
	}
	videos, err := s.videos.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(teachers))
	for _, v := range videos {
		counts[v.TeacherID]++
	}

	out := make([]models.TeacherWithCount, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, models.TeacherWithCount{Teacher: t, VideoCount: counts[t.ID]})
	}
	return out, nil
}

// CreateTeacher always succeeds; the service assigns the identifier.
func (s *Service) CreateTeacher(ctx context.Context, name, subject, nickname string) (*models.Teacher, error) {
	t := &models.Teacher{
		ID:       s.idGen("t"),
		Name:     name,
		Subject:  subject,
		Nickname: nickname,
	}
	if err := s.teachers.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Bootstrap seeds a default teacher when the collection is empty, so a fresh
// deployment can accept uploads immediately.
func (s *Service) Bootstrap(ctx context.Context) error {
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return err
	}
	if len(teachers) > 0 {
		return nil
	}
	t, err := s.CreateTeacher(ctx, "Alex Morgan", "Mathematics", "Mx. M")
	if err != nil {
		return fmt.Errorf("bootstrap teacher: %w", err)
	}
	s.log.Info().Str("teacher_id", t.ID).Msg("seeded default teacher")
	return nil
}

// ListVideos returns all videos, or only one teacher's when teacherID is set.
func (s *Service) ListVideos(ctx context.Context, teacherID string) ([]models.Video, error) {
	if teacherID == "" {
		return s.videos.List(ctx)
	}
	return s.videos.ListByTeacher(ctx, teacherID)
}

// UploadInput carries an incoming upload. ContentType is the declared type
// from the caller; the pipeline checks the "video/" prefix only and does not
// sniff file bytes.
type UploadInput struct {
	TeacherID   string
	Title       string
	Description string
	ContentType string
	FileName    string
	Body        io.Reader
}

// UploadVideo validates the input, streams the payload into the blob store
// and only then registers the catalog record, so readers never observe a
// record without a backing file. The record id equals the blob base name.
func (s *Service) UploadVideo(ctx context.Context, in UploadInput) (*models.Video, error) {
	if in.TeacherID == "" {
		return nil, fmt.Errorf("%w: teacherId is required", models.ErrInvalidArgument)
	}
	if !strings.HasPrefix(in.ContentType, "video/") {
		return nil, fmt.Errorf("%w: content type %q is not a video", models.ErrInvalidArgument, in.ContentType)
	}

	ok, err := s.teachers.Exists(ctx, in.TeacherID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: teacher %s", models.ErrNotFound, in.TeacherID)
	}

	ext := strings.ToLower(filepath.Ext(in.FileName))
	if ext == "" {
		ext = defaultExtension
	}
	base := s.idGen("v")
	fileName := base + ext

	if err := s.blobs.Save(fileName, in.Body); err != nil {
		return nil, err
	}

	now := s.clock()
	v := &models.Video{
		ID:          base,
		TeacherID:   in.TeacherID,
		Title:       in.Title,
		Description: in.Description,
		FileName:    fileName,
		URL:         s.blobs.URL(fileName),
		CreatedAt:   now.UnixMilli(),
	}
	if err := s.videos.Create(ctx, v); err != nil {
		// The record never became visible; don't leave the blob orphaned.
		if rmErr := s.blobs.Remove(fileName); rmErr != nil {
			s.log.Warn().Err(rmErr).Str("file", fileName).Msg("failed to clean up blob after create failure")
		}
		return nil, err
	}

	s.publish(ctx, models.NewVideoUploaded(v.ID, v.TeacherID, now))
	return v, nil
}

// DeleteVideo removes the record, then best-effort removes its blob. The
// metadata removal stands regardless of the blob outcome.
func (s *Service) DeleteVideo(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", models.ErrInvalidArgument)
	}
	removed, err := s.videos.Delete(ctx, id)
	if err != nil {
		return err
	}
	if err := s.blobs.Remove(removed.FileName); err != nil {
		s.log.Warn().Err(err).Str("file", removed.FileName).Msg("blob removal failed, record already deleted")
	}
	s.publish(ctx, models.NewVideoDeleted(id, s.clock()))
	return nil
}

func (s *Service) ListRequests(ctx context.Context) ([]models.TeacherRequest, error) {
	return s.requests.List(ctx)
}

// SubmitRequest creates a pending teacher-addition request.
func (s *Service) SubmitRequest(ctx context.Context, name, subject string) (*models.TeacherRequest, error) {
	if name == "" || subject == "" {
		return nil, fmt.Errorf("%w: name and subject are required", models.ErrInvalidArgument)
	}
	r := &models.TeacherRequest{
		ID:        s.idGen("r"),
		Name:      name,
		Subject:   subject,
		Status:    models.PendingStatus,
		CreatedAt: s.clock().UnixMilli(),
	}
	if err := s.requests.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ApproveRequest marks a pending request approved and materializes a Teacher
// when no existing one has the same (name, subject) pair. Re-invocation on a
// terminal request is a no-op. The status write and the teacher write are two
// independent saves; a crash between them leaves an approved request without
// a teacher, which is an accepted inconsistency window.
func (s *Service) ApproveRequest(ctx context.Context, id string) error {
	return s.resolveRequest(ctx, id, models.ApprovedStatus)
}

// DeclineRequest marks a pending request declined. No other side effects;
// re-invocation on a terminal request is a no-op.
func (s *Service) DeclineRequest(ctx context.Context, id string) error {
	return s.resolveRequest(ctx, id, models.DeclinedStatus)
}

func (s *Service) resolveRequest(ctx context.Context, id string, to models.RequestStatus) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", models.ErrInvalidArgument)
	}
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if domain.IsTerminal(req.Status) {
		s.log.Debug().Str("request_id", id).Str("status", string(req.Status)).Msg("request already resolved")
		return nil
	}
	if err := domain.ValidateTransition(req.Status, to); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidArgument, err)
	}

	if _, err := s.requests.UpdateStatus(ctx, id, to); err != nil {
		return err
	}

	if to == models.ApprovedStatus {
		exists, err := s.teachers.ExistsByNameSubject(ctx, req.Name, req.Subject)
		if err != nil {
			return err
		}
		if !exists {
			if _, err := s.CreateTeacher(ctx, req.Name, req.Subject, ""); err != nil {
				return err
			}
		}
	}

	s.publish(ctx, models.NewRequestResolved(id, to, s.clock()))
	return nil
}

func (s *Service) publish(ctx context.Context, e models.DomainEvent) {
	if s.events == nil {
		return
	}
	payload, err := json.Marshal(e)
	if err != nil {
		s.log.Warn().Err(err).Str("event_type", e.EventType()).Msg("failed to marshal event")
		return
	}
	if err := s.events.Publish(ctx, e.AggregateID(), payload); err != nil {
		s.log.Warn().Err(err).Str("event_type", e.EventType()).Msg("failed to publish event")
	}
}
