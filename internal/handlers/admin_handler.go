package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/tracksideapp/backend/internal/services"
)

type AdminHandler struct {
	importService *services.ImportService
}

func NewAdminHandler(importService *services.ImportService) *AdminHandler {
	return &AdminHandler{importService: importService}
}

func (h *AdminHandler) SyncTracks(c *fiber.Ctx) error {
	resp, err := h.importService.SyncTracks()
	if err != nil {
		slog.Error("track sync failed", "operation", "sync_tracks", "error", err.Error())
		return internalError(c)
	}

	slog.Info("track sync completed",
		"total", resp.Summary.Total,
		"created", resp.Summary.Created,
		"updated", resp.Summary.Updated,
		"failed", resp.Summary.Failed,
	)
	return c.JSON(resp)
}
