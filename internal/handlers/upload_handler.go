package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tracksideapp/backend/internal/config"
	"github.com/tracksideapp/backend/internal/dto"
	"github.com/tracksideapp/backend/internal/middleware"
)

const maxUploadBytes = 10 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

type UploadHandler struct {
	cfg *config.Config
}

func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

// UploadTrackImage stores a layout or gallery image under a random name and
// returns its public path. Only common web image formats are accepted.
func (h *UploadHandler) UploadTrackImage(c *fiber.Ctx) error {
	if _, err := middleware.CurrentUserID(c); err != nil {
		return unauthorized(c)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "No file provided",
		})
	}

	if file.Size > maxUploadBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
			Error: true, Message: "File exceeds the 10MB limit",
		})
	}

	contentType := strings.ToLower(strings.TrimSpace(
		strings.Split(file.Header.Get("Content-Type"), ";")[0],
	))
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Unsupported file type: use JPEG, PNG, WebP or SVG",
		})
	}

	dir := filepath.Join(h.cfg.UploadDir, "tracks")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return internalError(c)
	}

	name := uuid.NewString() + ext
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"imageUrl": "/uploads/tracks/" + name,
	})
}
