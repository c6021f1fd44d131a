package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/dtroode/storefront-server/internal/logger"
)

// Recover turns a handler panic into a JSON 500 response.
type Recover struct {
	logger *logger.Logger
}

func NewRecover(logger *logger.Logger) *Recover {
	return &Recover{logger: logger}
}

func (m *Recover) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			m.logger.Error("HTTP handler panicked",
				"method", r.Method,
				"path", r.URL.Path,
				"panic", rec,
				"stack", string(debug.Stack()))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"code":    "INTERNAL",
				"message": "internal server error",
			})
		}()

		next.ServeHTTP(w, r)
	})
}
