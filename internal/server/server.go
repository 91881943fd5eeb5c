package server

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"innkeep/internal/auth"
	"innkeep/internal/blobstore"
	"innkeep/internal/store"
)

const (
	allowRemoteEnvKey = "INNKEEP_ALLOW_REMOTE"
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 60 * time.Second
	idleTimeout       = 60 * time.Second
)

// Server wraps HTTP handlers for the innkeep API.
type Server struct {
	addr        string
	media       *MediaService
	auth        *AuthService
	bookings    *BookingService
	uploadsDir  string
	requireAuth bool
	corsOrigins []string
	logger      *slog.Logger
}

// Options tunes optional server behavior.
type Options struct {
	// RequireAuth guards mutating routes behind a valid session token.
	RequireAuth bool
	// CORSAllowedOrigins defaults to a wildcard when empty.
	CORSAllowedOrigins []string
}

// New creates a new server instance. st carries all three row stores;
// blobs holds the uploaded files; uploadsDir is served at /uploads/.
func New(addr string, st *store.Store, blobs blobstore.BlobStore, tokens *auth.TokenIssuer, uploadsDir string, opts Options, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Server{
		addr:        addr,
		media:       NewMediaService(st, blobs),
		auth:        NewAuthService(st, tokens),
		bookings:    NewBookingService(st),
		uploadsDir:  uploadsDir,
		requireAuth: opts.RequireAuth,
		corsOrigins: origins,
		logger:      logger,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	s.log().Info("starting server", "addr", s.addr)
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return server.ListenAndServe()
}

// ListenAddr converts a base API URL into a listen address.
func ListenAddr(apiURL string) (string, error) {
	if apiURL == "" {
		return "", fmt.Errorf("api url is required")
	}
	if u, err := url.Parse(apiURL); err == nil && u.Host != "" {
		host := u.Hostname()
		if !isAllowedListenHost(host) {
			return "", fmt.Errorf("remote listen host %q requires %s=true", host, allowRemoteEnvKey)
		}
		return u.Host, nil
	}

	host, _, err := net.SplitHostPort(apiURL)
	if err == nil && !isAllowedListenHost(host) {
		return "", fmt.Errorf("remote listen host %q requires %s=true", host, allowRemoteEnvKey)
	}

	return apiURL, nil
}

func isAllowedListenHost(host string) bool {
	if host == "" {
		return true
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv(allowRemoteEnvKey)), "true") {
		return true
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func (s *Server) log() *slog.Logger {
	if s != nil && s.logger != nil {
		return s.logger
	}
	return slog.Default()
}
