package httpapi

import "net/http"

// NewRouter wires the catalog endpoints. uploads serves the raw video files
// under /uploads/ and may be nil when static serving is handled elsewhere.
func NewRouter(h *Handler, uploads http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", h.Health)

	mux.HandleFunc("/teachers", h.ListTeachers)

	// GET list / POST upload
	mux.HandleFunc("/videos", h.Videos)

	// DELETE /videos/{id}; trailing slash so the handler can TrimPrefix
	mux.HandleFunc("/videos/", h.VideoByID)

	mux.HandleFunc("/requests", h.Requests)

	// POST /requests/{id}/approve|decline
	mux.HandleFunc("/requests/", h.RequestAction)

	if uploads != nil {
		mux.Handle("/uploads/", http.StripPrefix("/uploads/", uploads))
	}

	return mux
}
