package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeHandler serves the landing page and health probe.
type HomeHandler struct {
	health HealthChecker
}

// NewHomeHandler creates HomeHandler instance.
func NewHomeHandler(health HealthChecker) *HomeHandler {
	return &HomeHandler{health: health}
}

// Index handles GET / and /index.
func (h *HomeHandler) Index(c *gin.Context) {
	render(c, http.StatusOK, "index.html", gin.H{"Title": "Home"})
}

// Health handles GET /healthz.
func (h *HomeHandler) Health(c *gin.Context) {
	if err := h.health.HealthCheck(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
