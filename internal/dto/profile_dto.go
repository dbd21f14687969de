package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/tracksideapp/backend/internal/models"
)

type ProfileCounts struct {
	TrackReviews int64 `json:"trackReviews"`
	LapRecords   int64 `json:"lapRecords"`
	Tracks       int64 `json:"tracks"`
	ZoneTips     int64 `json:"zoneTips"`
}

type ProfileResponse struct {
	ID         uuid.UUID     `json:"id"`
	Name       *string       `json:"name"`
	Email      string        `json:"email"`
	Experience string        `json:"experience"`
	Image      *string       `json:"image"`
	CreatedAt  time.Time     `json:"createdAt"`
	Cars       []models.Car  `json:"cars"`
	Count      ProfileCounts `json:"_count"`
}
