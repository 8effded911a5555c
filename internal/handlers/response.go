package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/service"
)

const errInternal = "internal server error"

// Every endpoint answers with the same envelope:
// {"success":true,"data":...} or {"success":false,"error":"..."}.

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

func abortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": msg})
}

// statusForError maps service-layer sentinels to HTTP statuses; anything
// unrecognized is an internal error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError turns a service error into the envelope. Domain errors
// pass their message through; unexpected failures are logged and answered
// with a generic message so internals do not leak to the client.
func (h *Handler) respondServiceError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		if h.log != nil {
			fields := append([]interface{}{"err", err}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		respondError(c, status, errInternal)
		return
	}
	respondError(c, status, err.Error())
}
