package dto

import (
	"github.com/google/uuid"
	"github.com/tracksideapp/backend/internal/models"
	"github.com/tracksideapp/backend/internal/validation"
)

type LapRecordRequest struct {
	LapTime        string     `json:"lapTime"`
	Conditions     string     `json:"conditions"`
	Notes          *string    `json:"notes"`
	TirePressureFL *float64   `json:"tirePressureFL"`
	TirePressureFR *float64   `json:"tirePressureFR"`
	TirePressureRL *float64   `json:"tirePressureRL"`
	TirePressureRR *float64   `json:"tirePressureRR"`
	FuelLevel      *float64   `json:"fuelLevel"`
	CamberFL       *float64   `json:"camberFL"`
	CamberFR       *float64   `json:"camberFR"`
	CamberRL       *float64   `json:"camberRL"`
	CamberRR       *float64   `json:"camberRR"`
	CasterFL       *float64   `json:"casterFL"`
	CasterFR       *float64   `json:"casterFR"`
	ToeFL          *float64   `json:"toeFL"`
	ToeFR          *float64   `json:"toeFR"`
	ToeRL          *float64   `json:"toeRL"`
	ToeRR          *float64   `json:"toeRR"`
	TrackID        uuid.UUID  `json:"trackId"`
	TrackEventID   *uuid.UUID `json:"trackEventId"`
	CarID          uuid.UUID  `json:"carId"`
}

func (r *LapRecordRequest) Validate() error {
	var v validation.Errors
	if r.LapTime == "" {
		v.Add("lapTime", "lap time is required")
	}
	if !models.ValidCondition(r.Conditions) {
		v.Add("conditions", "conditions must be DRY or WET")
	}
	if r.TrackID == uuid.Nil {
		v.Add("trackId", "track is required")
	}
	if r.CarID == uuid.Nil {
		v.Add("carId", "car is required")
	}

	pressures := map[string]*float64{
		"tirePressureFL": r.TirePressureFL,
		"tirePressureFR": r.TirePressureFR,
		"tirePressureRL": r.TirePressureRL,
		"tirePressureRR": r.TirePressureRR,
	}
	for field, p := range pressures {
		if p != nil && *p <= 0 {
			v.Add(field, "tire pressure must be positive")
		}
	}
	if r.FuelLevel != nil && *r.FuelLevel < 0 {
		v.Add("fuelLevel", "fuel level cannot be negative")
	}
	return v.Err()
}

type TrackBrief struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
}

type CarSummary struct {
	ID    uuid.UUID `json:"id"`
	Make  string    `json:"make"`
	Model string    `json:"model"`
	Year  int       `json:"year"`
}

type LapRecordWithDetails struct {
	models.LapRecord
	Track      TrackBrief         `json:"track"`
	TrackEvent *models.TrackEvent `json:"trackEvent"`
	Car        CarSummary         `json:"car"`
}
