package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Track struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string         `gorm:"size:200;not null;index" json:"name"`
	Location     string         `gorm:"size:200;not null" json:"location"`
	State        *string        `gorm:"size:2;index" json:"state"`
	Description  *string        `gorm:"type:text" json:"description"`
	ImageURL     *string        `gorm:"type:text" json:"imageUrl"`
	Latitude     *float64       `json:"latitude"`
	Longitude    *float64       `json:"longitude"`
	Status       string         `gorm:"size:20;not null;default:'APPROVED';index" json:"status"`
	IsImported   bool           `gorm:"not null;default:false" json:"isImported"`
	UploadedByID uuid.UUID      `gorm:"type:uuid;not null;index" json:"uploadedById"`
	CreatedAt    time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

type TrackEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EventType string    `gorm:"size:20;not null;index" json:"eventType"`
	TrackID   uuid.UUID `gorm:"type:uuid;not null;index" json:"trackId"`
}

// TrackImage is a gallery photo for a track, separate from the layout diagram.
type TrackImage struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	URL          string    `gorm:"type:text;not null" json:"url"`
	Caption      *string   `gorm:"size:255" json:"caption"`
	TrackID      uuid.UUID `gorm:"type:uuid;not null;index" json:"trackId"`
	UploadedByID uuid.UUID `gorm:"type:uuid;not null" json:"uploadedById"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TrackZone is a pinned sub-location on the layout image. PosX/PosY are
// percentage offsets in [0,100] so any rendered image size maps correctly.
type TrackZone struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description"`
	PosX        float64        `gorm:"not null" json:"posX"`
	PosY        float64        `gorm:"not null" json:"posY"`
	TrackID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"trackId"`
	EventType   *string        `gorm:"size:20" json:"eventType"`
	CreatedAt   time.Time      `json:"createdAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type ZoneTip struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Conditions *string   `gorm:"size:10" json:"conditions"`
	ZoneID     uuid.UUID `gorm:"type:uuid;not null;index" json:"zoneId"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;index" json:"authorId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type TrackReview struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Rating       int        `gorm:"not null" json:"rating"`
	Content      *string    `gorm:"type:text" json:"content"`
	Conditions   string     `gorm:"size:10;not null" json:"conditions"`
	TrackID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"trackId"`
	TrackEventID *uuid.UUID `gorm:"type:uuid" json:"trackEventId"`
	AuthorID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"authorId"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
