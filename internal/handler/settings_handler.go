package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
	"github.com/agrocoop-dev/delivery-scheduling/internal/infra/store"
)

type SettingsHandler struct {
	settings      *store.SettingsStore
	defaultWindow domain.OperatingWindow
}

func NewSettingsHandler(settings *store.SettingsStore, defaultWindow domain.OperatingWindow) *SettingsHandler {
	return &SettingsHandler{settings: settings, defaultWindow: defaultWindow}
}

type settingsResponse struct {
	OpensAt  string `json:"opens_at"`
	ClosesAt string `json:"closes_at"`
}

type settingsRequest struct {
	OpensAt  string `json:"opens_at" binding:"required"`
	ClosesAt string `json:"closes_at" binding:"required"`
}

// HandleGet returns the operating window, creating the default row on
// first read.
func (h *SettingsHandler) HandleGet(c *gin.Context) {
	settings, err := h.settings.EnsureDefault(c.Request.Context(), h.defaultWindow)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to read settings")
		return
	}
	respondData(c, http.StatusOK, settingsResponse{
		OpensAt:  settings.OpensAt.Clock(),
		ClosesAt: settings.ClosesAt.Clock(),
	})
}

func (h *SettingsHandler) HandleUpdate(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	opens, err := domain.ParseClock(req.OpensAt)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid opens_at, expected HH:MM")
		return
	}
	closes, err := domain.ParseClock(req.ClosesAt)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid closes_at, expected HH:MM")
		return
	}

	updated, err := h.settings.Save(c.Request.Context(), domain.OperatingWindow{
		OpensAt:  opens,
		ClosesAt: closes,
	})
	if errors.Is(err, domain.ErrInvalidWindow) {
		respondError(c, http.StatusBadRequest, "window must open before it closes, on half-hour boundaries")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update settings")
		return
	}
	respondMessage(c, http.StatusOK, "settings updated", settingsResponse{
		OpensAt:  updated.OpensAt.Clock(),
		ClosesAt: updated.ClosesAt.Clock(),
	})
}
