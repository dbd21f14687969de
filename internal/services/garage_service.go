package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tracksideapp/backend/internal/dto"
	"github.com/tracksideapp/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCarNotFound = errors.New("car not found")
	ErrModNotFound = errors.New("mod not found")
)

// GarageService manages a user's cars and their mods. Lookups are always
// scoped by owner, so another user's car is indistinguishable from a
// missing one.
type GarageService struct {
	db *gorm.DB
}

func NewGarageService(db *gorm.DB) *GarageService {
	return &GarageService{db: db}
}

func (s *GarageService) ListCars(userID uuid.UUID) ([]models.Car, error) {
	cars := []models.Car{}
	err := s.db.Preload("Mods").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&cars).Error
	if err != nil {
		return nil, err
	}
	for i := range cars {
		if cars[i].Mods == nil {
			cars[i].Mods = []models.CarMod{}
		}
	}
	return cars, nil
}

func (s *GarageService) GetCar(userID, carID uuid.UUID) (*models.Car, error) {
	var car models.Car
	err := s.db.Preload("Mods").
		Where("id = ? AND user_id = ?", carID, userID).
		First(&car).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, err
	}
	if car.Mods == nil {
		car.Mods = []models.CarMod{}
	}
	return &car, nil
}

func (s *GarageService) CreateCar(userID uuid.UUID, req *dto.CarRequest) (*models.Car, error) {
	car := models.Car{
		ID:     uuid.New(),
		Make:   req.Make,
		Model:  req.Model,
		Year:   req.Year,
		UserID: userID,
		Mods:   []models.CarMod{},
	}
	if err := s.db.Create(&car).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (s *GarageService) UpdateCar(userID, carID uuid.UUID, req *dto.CarRequest) (*models.Car, error) {
	car, err := s.GetCar(userID, carID)
	if err != nil {
		return nil, err
	}

	car.Make = req.Make
	car.Model = req.Model
	car.Year = req.Year

	if err := s.db.Save(car).Error; err != nil {
		return nil, err
	}
	return car, nil
}

// DeleteCar removes the car together with its mods and any lap records that
// reference it, in one transaction. Orphaned rows must never be reachable.
func (s *GarageService) DeleteCar(userID, carID uuid.UUID) error {
	car, err := s.GetCar(userID, carID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("car_id = ?", car.ID).Delete(&models.CarMod{}).Error; err != nil {
			return err
		}
		if err := tx.Where("car_id = ?", car.ID).Delete(&models.LapRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Car{}, "id = ?", car.ID).Error
	})
}

func (s *GarageService) CreateMod(userID, carID uuid.UUID, req *dto.CarModRequest) (*models.CarMod, error) {
	car, err := s.GetCar(userID, carID)
	if err != nil {
		return nil, err
	}

	mod := models.CarMod{
		ID:       uuid.New(),
		Name:     req.Name,
		Category: req.Category,
		Notes:    req.Notes,
		CarID:    car.ID,
	}
	if err := s.db.Create(&mod).Error; err != nil {
		return nil, err
	}
	return &mod, nil
}

func (s *GarageService) DeleteMod(userID, carID, modID uuid.UUID) error {
	car, err := s.GetCar(userID, carID)
	if err != nil {
		return err
	}

	var mod models.CarMod
	err = s.db.Where("id = ? AND car_id = ?", modID, car.ID).First(&mod).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrModNotFound
	}
	if err != nil {
		return err
	}

	return s.db.Delete(&mod).Error
}
