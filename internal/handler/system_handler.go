package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/classdesk/classdesk-backend/internal/response"
)

// SystemHandler answers the health check. It has no storage dependency so
// the service reports online even before a backend is bound.
type SystemHandler struct {
	serviceName string
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(serviceName string) *SystemHandler {
	return &SystemHandler{serviceName: serviceName}
}

// Health godoc
// GET /api/health (also bare GET /api)
func (h *SystemHandler) Health(c *gin.Context) {
	response.OK(c, http.StatusOK, gin.H{
		"service": h.serviceName,
		"ts":      time.Now().UTC().Format(time.RFC3339),
	})
}
