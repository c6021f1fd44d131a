package middleware

import (
	"net/http"
	"strings"

	"github.com/dtroode/storefront-server/internal/model"
)

// Authenticate copies the bearer token from the Authorization header into the
// request context. It never rejects: services decide whether the token is
// acceptable, so a missing token surfaces as "not logged in".
type Authenticate struct {
	contextManager model.ContextManager
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(contextManager model.ContextManager) *Authenticate {
	return &Authenticate{contextManager: contextManager}
}

func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token != "" {
			r = r.WithContext(m.contextManager.SetTokenToContext(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}

// bearerToken accepts both "Bearer <token>" and a bare token.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if strings.EqualFold(header, "bearer") {
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
