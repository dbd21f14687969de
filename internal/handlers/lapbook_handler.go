package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tracksideapp/backend/internal/dto"
	"github.com/tracksideapp/backend/internal/middleware"
	"github.com/tracksideapp/backend/internal/models"
	"github.com/tracksideapp/backend/internal/services"
)

type LapbookHandler struct {
	lapbookService *services.LapbookService
}

func NewLapbookHandler(lapbookService *services.LapbookService) *LapbookHandler {
	return &LapbookHandler{lapbookService: lapbookService}
}

func (h *LapbookHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var filter services.LapRecordFilter
	if raw := c.Query("trackId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return invalidID(c, "track")
		}
		filter.TrackID = id
	}
	if raw := c.Query("carId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return invalidID(c, "car")
		}
		filter.CarID = id
	}
	if et := strings.ToUpper(c.Query("eventType")); et != "" {
		if !models.ValidEventType(et) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid event type: " + et,
			})
		}
		filter.EventType = et
	}

	records, err := h.lapbookService.List(userID, filter)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(records)
}

func (h *LapbookHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.LapRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	record, err := h.lapbookService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrCarNotFound) {
			return notFound(c, "Car not found")
		}
		if errors.Is(err, services.ErrTrackNotFound) {
			return notFound(c, "Track not found")
		}
		if errors.Is(err, services.ErrEventTrackMismatch) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Event does not belong to this track",
			})
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (h *LapbookHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	recordID, err := uuidParam(c, "recordId")
	if err != nil {
		return invalidID(c, "lap record")
	}

	if err := h.lapbookService.Delete(userID, recordID); err != nil {
		if errors.Is(err, services.ErrLapRecordNotFound) {
			return notFound(c, "Lap record not found")
		}
		return internalError(c)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
