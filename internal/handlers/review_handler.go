package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tracksideapp/backend/internal/dto"
	"github.com/tracksideapp/backend/internal/middleware"
	"github.com/tracksideapp/backend/internal/services"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) List(c *fiber.Ctx) error {
	trackID, err := uuidParam(c, "trackId")
	if err != nil {
		return invalidID(c, "track")
	}

	reviews, err := h.reviewService.ListForTrack(trackID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(reviews)
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	trackID, err := uuidParam(c, "trackId")
	if err != nil {
		return invalidID(c, "track")
	}

	var req dto.TrackReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	review, err := h.reviewService.Create(userID, trackID, &req)
	if err != nil {
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
	return c.Status(fiber.StatusCreated).JSON(review)
}
