package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tracksideapp/backend/internal/dto"
	"github.com/tracksideapp/backend/internal/middleware"
	"github.com/tracksideapp/backend/internal/services"
)

type TrackHandler struct {
	trackService *services.TrackService
}

func NewTrackHandler(trackService *services.TrackService) *TrackHandler {
	return &TrackHandler{trackService: trackService}
}

func (h *TrackHandler) List(c *fiber.Ctx) error {
	q := dto.TrackListQuery{
		Search:    c.Query("search"),
		EventType: strings.ToUpper(c.Query("eventType")),
		State:     c.Query("state"),
	}
	if q.EventType == "" {
		q.EventType = strings.ToUpper(c.Query("type"))
	}
	if err := q.Validate(); err != nil {
		return validationFailed(c, err)
	}

	tracks, err := h.trackService.List(&q)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(tracks)
}

func (h *TrackHandler) Get(c *fiber.Ctx) error {
	trackID, err := uuidParam(c, "trackId")
	if err != nil {
		return invalidID(c, "track")
	}

	detail, err := h.trackService.GetDetail(trackID, strings.ToUpper(c.Query("eventType")))
	if err != nil {
		if errors.Is(err, services.ErrTrackNotFound) {
			return notFound(c, "Track not found")
		}
		return internalError(c)
	}
	return c.JSON(detail)
}

func (h *TrackHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.TrackCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	track, err := h.trackService.Create(userID, &req)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(track)
}

func (h *TrackHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	trackID, err := uuidParam(c, "trackId")
	if err != nil {
		return invalidID(c, "track")
	}

	var req dto.TrackPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	track, err := h.trackService.Update(userID, trackID, &req)
	if err != nil {
		if errors.Is(err, services.ErrTrackNotFound) {
			return notFound(c, "Track not found")
		}
		if errors.Is(err, services.ErrNotOwner) {
			return forbidden(c, "Only the uploader can edit this track")
		}
		return internalError(c)
	}
	return c.JSON(track)
}

func (h *TrackHandler) ListImages(c *fiber.Ctx) error {
	trackID, err := uuidParam(c, "trackId")
	if err != nil {
		return invalidID(c, "track")
	}

	exists, err := h.trackService.Exists(trackID)
	if err != nil {
		return internalError(c)
	}
	if !exists {
		return notFound(c, "Track not found")
	}

	images, err := h.trackService.ListImages(trackID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(images)
}

func (h *TrackHandler) CreateImage(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	trackID, err := uuidParam(c, "trackId")
	if err != nil {
		return invalidID(c, "track")
	}

	var req dto.TrackImageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	image, err := h.trackService.CreateImage(userID, trackID, &req)
	if err != nil {
		if errors.Is(err, services.ErrTrackNotFound) {
			return notFound(c, "Track not found")
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}

func (h *TrackHandler) DeleteImage(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	trackID, err := uuidParam(c, "trackId")
	if err != nil {
		return invalidID(c, "track")
	}
	imageID, err := uuid.Parse(c.Query("imageId"))
	if err != nil {
		return invalidID(c, "image")
	}

	if err := h.trackService.DeleteImage(userID, trackID, imageID); err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			return notFound(c, "Image not found")
		}
		if errors.Is(err, services.ErrNotOwner) {
			return forbidden(c, "Only the track owner or the image uploader can delete this image")
		}
		return internalError(c)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
