package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/teachertube/backend/internal/catalog/models"
	"github.com/teachertube/backend/internal/catalog/service"
)

// maxFormMemory bounds how much of a multipart body is buffered in memory;
// the rest spills to temp files. The payload size ceiling itself is enforced
// by the blob store.
const maxFormMemory = 32 << 20

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListTeachers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	teachers, err := h.svc.ListTeachers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if teachers == nil {
		teachers = []models.TeacherWithCount{}
	}
	writeJSON(w, http.StatusOK, teachers)
}

// Videos dispatches GET (list) and POST (upload) on /videos.
func (h *Handler) Videos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listVideos(w, r)
	case http.MethodPost:
		h.uploadVideo(w, r)
	default:
		writeErrorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) listVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.svc.ListVideos(r.Context(), r.URL.Query().Get("teacherId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if videos == nil {
		videos = []models.Video{}
	}
	writeJSON(w, http.StatusOK, videos)
}

func (h *Handler) uploadVideo(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	v, err := h.svc.UploadVideo(r.Context(), service.UploadInput{
		TeacherID:   r.FormValue("teacherId"),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		ContentType: header.Header.Get("Content-Type"),
		FileName:    header.Filename,
		Body:        file,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

// VideoByID handles DELETE /videos/{id}.
func (h *Handler) VideoByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeErrorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/videos/")
	if id == "" || id == r.URL.Path {
		writeErrorJSON(w, http.StatusBadRequest, "missing id")
		return
	}
	if err := h.svc.DeleteVideo(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

// Requests dispatches GET (list) and POST (submit) on /requests.
func (h *Handler) Requests(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listRequests(w, r)
	case http.MethodPost:
		h.submitRequest(w, r)
	default:
		writeErrorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) listRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.svc.ListRequests(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if requests == nil {
		requests = []models.TeacherRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *Handler) submitRequest(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var body SubmitRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req, err := h.svc.SubmitRequest(r.Context(), body.Name, body.Subject)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

// RequestAction handles POST /requests/{id}/approve and /requests/{id}/decline.
func (h *Handler) RequestAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErrorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/requests/")
	id, action, ok := strings.Cut(rest, "/")
	if !ok || id == "" {
		writeErrorJSON(w, http.StatusBadRequest, "missing id or action")
		return
	}

	var err error
	switch action {
	case "approve":
		err = h.svc.ApproveRequest(r.Context(), id)
	case "decline":
		err = h.svc.DeclineRequest(r.Context(), id)
	default:
		writeErrorJSON(w, http.StatusNotFound, "unknown action")
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id, "action": action})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		writeErrorJSON(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		writeErrorJSON(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrPayloadTooLarge):
		writeErrorJSON(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, models.ErrConflict):
		writeErrorJSON(w, http.StatusConflict, err.Error())
	default:
		writeErrorJSON(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
