package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classdesk/classdesk-backend/internal/response"
	"github.com/classdesk/classdesk-backend/internal/store"
)

// RequireStorage rejects data requests when no key-value backend is bound.
// The server still boots without one so the health check and static site
// stay reachable; the error names the missing configuration.
func RequireStorage(kv store.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		if kv == nil {
			response.AbortFail(c, http.StatusInternalServerError, response.ErrStorageNotConfigured)
			return
		}
		c.Next()
	}
}
