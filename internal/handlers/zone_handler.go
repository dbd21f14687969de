package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tracksideapp/backend/internal/dto"
	"github.com/tracksideapp/backend/internal/middleware"
	"github.com/tracksideapp/backend/internal/services"
)

type ZoneHandler struct {
	zoneService *services.ZoneService
}

func NewZoneHandler(zoneService *services.ZoneService) *ZoneHandler {
	return &ZoneHandler{zoneService: zoneService}
}

func (h *ZoneHandler) List(c *fiber.Ctx) error {
	trackID, err := uuidParam(c, "trackId")
	if err != nil {
		return invalidID(c, "track")
	}

	zones, err := h.zoneService.ListForTrack(trackID, strings.ToUpper(c.Query("eventType")))
	if err != nil {
		return internalError(c)
	}
	return c.JSON(zones)
}

func (h *ZoneHandler) Create(c *fiber.Ctx) error {
	if _, err := middleware.CurrentUserID(c); err != nil {
		return unauthorized(c)
	}
	trackID, err := uuidParam(c, "trackId")
	if err != nil {
		return invalidID(c, "track")
	}

	var req dto.TrackZoneRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	zone, err := h.zoneService.Create(trackID, &req)
	if err != nil {
		if errors.Is(err, services.ErrTrackNotFound) {
			return notFound(c, "Track not found")
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(zone)
}

func (h *ZoneHandler) Update(c *fiber.Ctx) error {
	if _, err := middleware.CurrentUserID(c); err != nil {
		return unauthorized(c)
	}
	trackID, err := uuidParam(c, "trackId")
	if err != nil {
		return invalidID(c, "track")
	}
	zoneID, err := uuidParam(c, "zoneId")
	if err != nil {
		return invalidID(c, "zone")
	}

	var req dto.ZoneUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	zone, err := h.zoneService.Update(trackID, zoneID, &req)
	if err != nil {
		if errors.Is(err, services.ErrZoneNotFound) {
			return notFound(c, "Zone not found")
		}
		return internalError(c)
	}
	return c.JSON(zone)
}

func (h *ZoneHandler) Delete(c *fiber.Ctx) error {
	if _, err := middleware.CurrentUserID(c); err != nil {
		return unauthorized(c)
	}
	trackID, err := uuidParam(c, "trackId")
	if err != nil {
		return invalidID(c, "track")
	}
	zoneID, err := uuidParam(c, "zoneId")
	if err != nil {
		return invalidID(c, "zone")
	}

	if err := h.zoneService.Delete(trackID, zoneID); err != nil {
		if errors.Is(err, services.ErrZoneNotFound) {
			return notFound(c, "Zone not found")
		}
		return internalError(c)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *ZoneHandler) CreateTip(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	trackID, err := uuidParam(c, "trackId")
	if err != nil {
		return invalidID(c, "track")
	}
	zoneID, err := uuidParam(c, "zoneId")
	if err != nil {
		return invalidID(c, "zone")
	}

	var req dto.ZoneTipRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	tip, err := h.zoneService.CreateTip(userID, trackID, zoneID, &req)
	if err != nil {
		if errors.Is(err, services.ErrZoneNotFound) {
			return notFound(c, "Zone not found")
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(tip)
}

func (h *ZoneHandler) DeleteTip(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	trackID, err := uuidParam(c, "trackId")
	if err != nil {
		return invalidID(c, "track")
	}
	zoneID, err := uuidParam(c, "zoneId")
	if err != nil {
		return invalidID(c, "zone")
	}
	tipID, err := uuidParam(c, "tipId")
	if err != nil {
		return invalidID(c, "tip")
	}

	if err := h.zoneService.DeleteTip(userID, trackID, zoneID, tipID); err != nil {
		if errors.Is(err, services.ErrZoneNotFound) {
			return notFound(c, "Zone not found")
		}
		if errors.Is(err, services.ErrTipNotFound) {
			return notFound(c, "Tip not found")
		}
		return internalError(c)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
