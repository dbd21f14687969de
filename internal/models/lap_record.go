package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LapRecord is one driver's timed lap with a specific car at a track,
// plus optional setup telemetry. LapTime stays a formatted string
// ("1:42.856"); it is never parsed as a duration.
type LapRecord struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	LapTime        string         `gorm:"size:20;not null" json:"lapTime"`
	Conditions     string         `gorm:"size:10;not null" json:"conditions"`
	Notes          *string        `gorm:"type:text" json:"notes"`
	TirePressureFL *float64       `json:"tirePressureFL"`
	TirePressureFR *float64       `json:"tirePressureFR"`
	TirePressureRL *float64       `json:"tirePressureRL"`
	TirePressureRR *float64       `json:"tirePressureRR"`
	FuelLevel      *float64       `json:"fuelLevel"`
	CamberFL       *float64       `json:"camberFL"`
	CamberFR       *float64       `json:"camberFR"`
	CamberRL       *float64       `json:"camberRL"`
	CamberRR       *float64       `json:"camberRR"`
	CasterFL       *float64       `json:"casterFL"`
	CasterFR       *float64       `json:"casterFR"`
	ToeFL          *float64       `json:"toeFL"`
	ToeFR          *float64       `json:"toeFR"`
	ToeRL          *float64       `json:"toeRL"`
	ToeRR          *float64       `json:"toeRR"`
	TrackID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"trackId"`
	TrackEventID   *uuid.UUID     `gorm:"type:uuid" json:"trackEventId"`
	CarID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"carId"`
	DriverID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"driverId"`
	CreatedAt      time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
