package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/takuma1234577-create/fitpeak-server/internal/delivery/http/middleware"
)

// ErrorResponse is the error body all handlers return.
type ErrorResponse struct {
	Error string `json:"error"`
}

// currentUserID reads the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
