package handler

import (
	"net/http"
	"time"

	"omar-backend/internal/services"
	"omar-backend/internal/transport/httpdto"
	"omar-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	status *services.StatusService
	logger *logger.Logger
}

func NewHealthHandler(status *services.StatusService, l *logger.Logger) *HealthHandler {
	if l == nil {
		l = logger.NewNop()
	}
	return &HealthHandler{status: status, logger: l}
}

// Ping answers without touching any state.
func (h *HealthHandler) Ping(c *gin.Context) {
	h.logger.WithContext(c.Request.Context()).Info("ping request received")
	c.JSON(http.StatusOK, httpdto.NewPingResponse(time.Now()))
}

func (h *HealthHandler) Status(c *gin.Context) {
	h.logger.WithContext(c.Request.Context()).Info("status check requested")
	c.JSON(http.StatusOK, httpdto.FromStatusReport(h.status.Report()))
}
