package context

import (
	"context"
)

type ctxKey struct{}

// Manager carries the caller's bearer token through the request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetTokenToContext returns a copy of ctx holding token.
func (m *Manager) SetTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKey{}, token)
}

// GetTokenFromContext returns the token stored by SetTokenToContext. Empty
// tokens are reported as absent.
func (m *Manager) GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(ctxKey{}).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
