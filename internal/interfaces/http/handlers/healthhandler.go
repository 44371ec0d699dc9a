package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fangate-io/fangate/internal/shared/biztime"
	"github.com/fangate-io/fangate/internal/shared/utils"
)

// HealthHandler reports service liveness
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"status": "ok",
		"time":   biztime.FormatTimestamp(biztime.NowUTC()),
	})
}
