package server

import (
	"net/http"

	"github.com/gorilla/handlers"
)

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// Health check.
	mux.HandleFunc("GET /health", s.handleHealth)

	// Image assets.
	mux.Handle("POST /upload", s.withAuth(http.HandlerFunc(s.handleUpload)))
	mux.HandleFunc("GET /images", s.handleListImages)
	mux.Handle("DELETE /images/{id}", s.withAuth(http.HandlerFunc(s.handleDeleteImage)))

	// Reservations.
	mux.HandleFunc("POST /bookings", s.handleCreateBooking)
	mux.HandleFunc("GET /bookings", s.handleListBookings)

	// Accounts.
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)

	// Stored upload files.
	if s.uploadsDir != "" {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploadsDir))))
	}

	var handler http.Handler = mux
	handler = s.withRequestLogging(handler)
	handler = handlers.CORS(
		handlers.AllowedOrigins(s.corsOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(handler)

	return handler
}
