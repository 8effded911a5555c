package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/token"
)

// Gin context keys set by identityMiddleware.
const (
	ctxUserID    = "userId"
	ctxUserEmail = "userEmail"
)

// identityMiddleware is the edge gate for protected routes: it extracts the
// bearer token, verifies it once, and stores the verified subject in the
// request context. Ownership is still enforced per-resource in the service
// layer — this check only answers "who is calling".
func (h *Handler) identityMiddleware(c *gin.Context) {
	raw := token.ExtractBearer(c.GetHeader("Authorization"))
	if raw == "" {
		abortError(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	claims, err := h.tokens.Verify(raw)
	if err != nil {
		abortError(c, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	c.Set(ctxUserID, claims.Subject)
	c.Set(ctxUserEmail, claims.Email)
	c.Next()
}

// callerID returns the verified subject set by identityMiddleware.
func callerID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}
