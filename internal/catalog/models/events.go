package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

type VideoUploaded struct {
	eventID    uuid.UUID
	videoID    string
	teacherID  string
	occurredAt time.Time
}

func NewVideoUploaded(videoID, teacherID string, at time.Time) *VideoUploaded {
	return &VideoUploaded{
		eventID:    uuid.New(),
		videoID:    videoID,
		teacherID:  teacherID,
		occurredAt: at,
	}
}

func (e *VideoUploaded) EventID() uuid.UUID    { return e.eventID }
func (e *VideoUploaded) EventType() string     { return "video.uploaded" }
func (e *VideoUploaded) AggregateID() string   { return e.videoID }
func (e *VideoUploaded) OccurredAt() time.Time { return e.occurredAt }

func (e *VideoUploaded) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID    uuid.UUID `json:"event_id"`
		VideoID    string    `json:"video_id"`
		TeacherID  string    `json:"teacher_id"`
		OccurredAt time.Time `json:"occurred_at"`
	}{
		EventID:    e.eventID,
		VideoID:    e.videoID,
		TeacherID:  e.teacherID,
		OccurredAt: e.occurredAt,
	})
}

type VideoDeleted struct {
	eventID    uuid.UUID
	videoID    string
	occurredAt time.Time
}

func NewVideoDeleted(videoID string, at time.Time) *VideoDeleted {
	return &VideoDeleted{eventID: uuid.New(), videoID: videoID, occurredAt: at}
}

func (e *VideoDeleted) EventID() uuid.UUID    { return e.eventID }
func (e *VideoDeleted) EventType() string     { return "video.deleted" }
func (e *VideoDeleted) AggregateID() string   { return e.videoID }
func (e *VideoDeleted) OccurredAt() time.Time { return e.occurredAt }

func (e *VideoDeleted) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID    uuid.UUID `json:"event_id"`
		VideoID    string    `json:"video_id"`
		OccurredAt time.Time `json:"occurred_at"`
	}{
		EventID:    e.eventID,
		VideoID:    e.videoID,
		OccurredAt: e.occurredAt,
	})
}

type RequestResolved struct {
	eventID    uuid.UUID
	requestID  string
	status     RequestStatus
	occurredAt time.Time
}

func NewRequestResolved(requestID string, status RequestStatus, at time.Time) *RequestResolved {
	return &RequestResolved{
		eventID:    uuid.New(),
		requestID:  requestID,
		status:     status,
		occurredAt: at,
	}
}

func (e *RequestResolved) EventID() uuid.UUID    { return e.eventID }
func (e *RequestResolved) EventType() string     { return "teacher_request.resolved" }
func (e *RequestResolved) AggregateID() string   { return e.requestID }
func (e *RequestResolved) OccurredAt() time.Time { return e.occurredAt }

func (e *RequestResolved) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID    uuid.UUID     `json:"event_id"`
		RequestID  string        `json:"request_id"`
		Status     RequestStatus `json:"status"`
		OccurredAt time.Time     `json:"occurred_at"`
	}{
		EventID:    e.eventID,
		RequestID:  e.requestID,
		Status:     e.status,
		OccurredAt: e.occurredAt,
	})
}
