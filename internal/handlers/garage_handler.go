package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tracksideapp/backend/internal/dto"
	"github.com/tracksideapp/backend/internal/middleware"
	"github.com/tracksideapp/backend/internal/services"
)

type GarageHandler struct {
	garageService *services.GarageService
}

func NewGarageHandler(garageService *services.GarageService) *GarageHandler {
	return &GarageHandler{garageService: garageService}
}

func (h *GarageHandler) ListCars(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	cars, err := h.garageService.ListCars(userID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(cars)
}

func (h *GarageHandler) GetCar(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	carID, err := uuidParam(c, "carId")
	if err != nil {
		return invalidID(c, "car")
	}

	car, err := h.garageService.GetCar(userID, carID)
	if err != nil {
		if errors.Is(err, services.ErrCarNotFound) {
			return notFound(c, "Car not found")
		}
		return internalError(c)
	}
	return c.JSON(car)
}

func (h *GarageHandler) CreateCar(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CarRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	car, err := h.garageService.CreateCar(userID, &req)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(car)
}

func (h *GarageHandler) UpdateCar(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	carID, err := uuidParam(c, "carId")
	if err != nil {
		return invalidID(c, "car")
	}

	var req dto.CarRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	car, err := h.garageService.UpdateCar(userID, carID, &req)
	if err != nil {
		if errors.Is(err, services.ErrCarNotFound) {
			return notFound(c, "Car not found")
		}
		return internalError(c)
	}
	return c.JSON(car)
}

func (h *GarageHandler) DeleteCar(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	carID, err := uuidParam(c, "carId")
	if err != nil {
		return invalidID(c, "car")
	}

	if err := h.garageService.DeleteCar(userID, carID); err != nil {
		if errors.Is(err, services.ErrCarNotFound) {
			return notFound(c, "Car not found")
		}
		return internalError(c)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *GarageHandler) CreateMod(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	carID, err := uuidParam(c, "carId")
	if err != nil {
		return invalidID(c, "car")
	}

	var req dto.CarModRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	mod, err := h.garageService.CreateMod(userID, carID, &req)
	if err != nil {
		if errors.Is(err, services.ErrCarNotFound) {
			return notFound(c, "Car not found")
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(mod)
}

func (h *GarageHandler) DeleteMod(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	carID, err := uuidParam(c, "carId")
	if err != nil {
		return invalidID(c, "car")
	}
	modID, err := uuidParam(c, "modId")
	if err != nil {
		return invalidID(c, "mod")
	}

	if err := h.garageService.DeleteMod(userID, carID, modID); err != nil {
		if errors.Is(err, services.ErrCarNotFound) {
			return notFound(c, "Car not found")
		}
		if errors.Is(err, services.ErrModNotFound) {
			return notFound(c, "Mod not found")
		}
		return internalError(c)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
