package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	version string
}

func NewStatusHandler(version string) *StatusHandler {
	return &StatusHandler{version: version}
}

func (h *StatusHandler) HandleStatus(c *gin.Context) {
	respondMessage(c, http.StatusOK, "delivery scheduling API running", gin.H{
		"version": h.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
