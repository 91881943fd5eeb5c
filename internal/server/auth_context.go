package server

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const usernameContextKey contextKey = "innkeep.username"

func withUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameContextKey, username)
}

// UsernameFromContext returns the authenticated username, if any.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameContextKey).(string)
	return username, ok && username != ""
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// withAuth verifies the bearer session token on guarded routes. When
// auth is not required the request passes through untouched. Every
// failure produces the same generic 401.
func (s *Server) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.requireAuth {
			next.ServeHTTP(w, r)
			return
		}

		token := bearerToken(r)
		if token == "" {
			s.writeErrorReq(w, r, invalidCredentials())
			return
		}
		claims, err := s.auth.VerifyToken(token)
		if err != nil {
			s.writeErrorReq(w, r, invalidCredentials())
			return
		}
		next.ServeHTTP(w, r.WithContext(withUsername(r.Context(), claims.Username)))
	})
}
