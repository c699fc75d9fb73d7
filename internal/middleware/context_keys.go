package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
)

// sessionKey is the key under which the authenticated session is stored.
const sessionKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSessionFromContext retrieves the authenticated session from the Gin context.
// It returns the session and a boolean indicating if it was found.
func GetSessionFromContext(c *gin.Context) (domain.Session, bool) {
	session, ok := c.Request.Context().Value(sessionKey).(domain.Session)
	if !ok || session.IsZero() {
		return domain.Session{}, false
	}
	return session, true
}
