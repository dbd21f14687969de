package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tracksideapp/backend/internal/dto"
	"github.com/tracksideapp/backend/internal/models"
	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Get returns the caller's profile with their garage and contribution counts.
func (s *ProfileService) Get(userID uuid.UUID) (*dto.ProfileResponse, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	cars := []models.Car{}
	err = s.db.Preload("Mods").
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

	var counts dto.ProfileCounts
	if err := s.db.Model(&models.TrackReview{}).Where("author_id = ?", userID).Count(&counts.TrackReviews).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.LapRecord{}).Where("driver_id = ?", userID).Count(&counts.LapRecords).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Track{}).Where("uploaded_by_id = ?", userID).Count(&counts.Tracks).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.ZoneTip{}).Where("author_id = ?", userID).Count(&counts.ZoneTips).Error; err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Experience: user.Experience,
		Image:      user.Image,
		CreatedAt:  user.CreatedAt,
		Cars:       cars,
		Count:      counts,
	}, nil
}

// Update patches the caller's display name and experience level.
func (s *ProfileService) Update(userID uuid.UUID, req *dto.ProfileUpdateRequest) (*dto.ProfileResponse, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = req.Name
	}
	if req.Experience != nil {
		user.Experience = *req.Experience
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return s.Get(userID)
}
