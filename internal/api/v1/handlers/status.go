package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusMessage is the body of GET /status
const StatusMessage = "Server is up now."

// StatusHandler answers liveness probes
type StatusHandler struct{}

// NewStatusHandler creates a new status handler
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// Status handles GET /status
//
// @Summary Liveness check
// @Tags status
// @Produce plain
// @Success 200 {string} string "Server is up now."
// @Router /status [get]
func (h *StatusHandler) Status(c *gin.Context) {
	c.String(http.StatusOK, StatusMessage)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags status
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}
