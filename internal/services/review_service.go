package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tracksideapp/backend/internal/dto"
	"github.com/tracksideapp/backend/internal/models"
	"gorm.io/gorm"
)

var ErrEventTrackMismatch = errors.New("event does not belong to this track")

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// reviewsWithAuthors loads a track's reviews newest-first, each with the
// author's experience and garage summary so readers can weigh the rating.
func reviewsWithAuthors(tx *gorm.DB, trackID uuid.UUID) ([]dto.ReviewWithAuthor, error) {
	var reviews []models.TrackReview
	err := tx.Where("track_id = ?", trackID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.ReviewWithAuthor, 0, len(reviews))
	for i := range reviews {
		item := dto.ReviewWithAuthor{TrackReview: reviews[i]}

		author, err := authorWithCars(tx, reviews[i].AuthorID)
		if err != nil {
			return nil, err
		}
		item.Author = author

		if reviews[i].TrackEventID != nil {
			var event models.TrackEvent
			if err := tx.First(&event, "id = ?", *reviews[i].TrackEventID).Error; err == nil {
				item.TrackEvent = &event
			}
		}
		result = append(result, item)
	}
	return result, nil
}

func authorWithCars(tx *gorm.DB, userID uuid.UUID) (dto.UserWithCars, error) {
	author := dto.UserWithCars{Cars: []dto.CarBrief{}}

	var user models.User
	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return author, nil
		}
		return author, err
	}
	author.ID = user.ID
	author.Name = user.Name
	author.Experience = user.Experience

	var cars []models.Car
	if err := tx.Where("user_id = ?", userID).Find(&cars).Error; err != nil {
		return author, err
	}
	for _, car := range cars {
		author.Cars = append(author.Cars, dto.CarBrief{Make: car.Make, Model: car.Model, Year: car.Year})
	}
	return author, nil
}

func (s *ReviewService) ListForTrack(trackID uuid.UUID) ([]dto.ReviewWithAuthor, error) {
	return reviewsWithAuthors(s.db, trackID)
}

// Create records a review on a track. A referenced event must belong to the
// same track; a cross-track event reference is rejected outright.
func (s *ReviewService) Create(userID, trackID uuid.UUID, req *dto.TrackReviewRequest) (*dto.ReviewWithAuthor, error) {
	var count int64
	if err := s.db.Model(&models.Track{}).Where("id = ?", trackID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrTrackNotFound
	}

	if req.TrackEventID != nil {
		ok, err := eventBelongsToTrack(s.db, *req.TrackEventID, trackID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrEventTrackMismatch
		}
	}

	review := models.TrackReview{
		ID:           uuid.New(),
		Rating:       req.Rating,
		Content:      req.Content,
		Conditions:   req.Conditions,
		TrackID:      trackID,
		TrackEventID: req.TrackEventID,
		AuthorID:     userID,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}

	item := dto.ReviewWithAuthor{TrackReview: review}
	author, err := authorWithCars(s.db, userID)
	if err != nil {
		return nil, err
	}
	item.Author = author

	if review.TrackEventID != nil {
		var event models.TrackEvent
		if err := s.db.First(&event, "id = ?", *review.TrackEventID).Error; err == nil {
			item.TrackEvent = &event
		}
	}
	return &item, nil
}
