package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sports-camp360/camp-service/internal/utils"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type SystemHandler struct {
	BaseHandler
	checker HealthChecker
}

func NewSystemHandler(checker HealthChecker, logger utils.Logger) *SystemHandler {
	return &SystemHandler{
		BaseHandler: NewBaseHandler(logger),
		checker:     checker,
	}
}

func (h *SystemHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Sports camp is running...")
}

// Health pings the store and cache.
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.checker.HealthCheck(ctx); err != nil {
		h.LogError(c, err, "Health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "camp-service",
	})
}
