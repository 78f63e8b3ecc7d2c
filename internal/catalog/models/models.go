package models

// RequestStatus is the lifecycle state of a TeacherRequest.
type RequestStatus string

const (
	PendingStatus  RequestStatus = "pending"
	ApprovedStatus RequestStatus = "approved"
	DeclinedStatus RequestStatus = "declined"
)

type Teacher struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Subject  string `json:"subject" db:"subject"`
	Nickname string `json:"nickname" db:"nickname"`
}

// TeacherWithCount is a Teacher plus the derived number of videos owned by it.
// The count is computed on demand, never persisted.
type TeacherWithCount struct {
	Teacher
	VideoCount int `json:"videoCount"`
}

type Video struct {
	ID          string `json:"id" db:"id"`
	TeacherID   string `json:"teacherId" db:"teacher_id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	FileName    string `json:"fileName" db:"file_name"`
	URL         string `json:"url" db:"url"`
	CreatedAt   int64  `json:"createdAt" db:"created_at"` // unix milliseconds
}

type TeacherRequest struct {
	ID        string        `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Subject   string        `json:"subject" db:"subject"`
	Status    RequestStatus `json:"status" db:"status"`
	CreatedAt int64         `json:"createdAt" db:"created_at"` // unix milliseconds
}
