package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tracksideapp/backend/internal/dto"
	"github.com/tracksideapp/backend/internal/models"
	"gorm.io/gorm"
)

var ErrLapRecordNotFound = errors.New("lap record not found")

type LapbookService struct {
	db *gorm.DB
}

func NewLapbookService(db *gorm.DB) *LapbookService {
	return &LapbookService{db: db}
}

type LapRecordFilter struct {
	TrackID   uuid.UUID
	CarID     uuid.UUID
	EventType string
}

// List returns the caller's lap records newest-first, optionally narrowed by
// track, car or event type, each denormalized with track, event and car
// summaries.
func (s *LapbookService) List(driverID uuid.UUID, filter LapRecordFilter) ([]dto.LapRecordWithDetails, error) {
	query := s.db.Where("driver_id = ?", driverID)
	if filter.TrackID != uuid.Nil {
		query = query.Where("track_id = ?", filter.TrackID)
	}
	if filter.CarID != uuid.Nil {
		query = query.Where("car_id = ?", filter.CarID)
	}
	if filter.EventType != "" {
		query = query.Where(
			"track_event_id IN (SELECT id FROM track_events WHERE event_type = ?)",
			filter.EventType,
		)
	}

	var records []models.LapRecord
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	result := make([]dto.LapRecordWithDetails, 0, len(records))
	for i := range records {
		item, err := s.withDetails(records[i])
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *LapbookService) withDetails(record models.LapRecord) (dto.LapRecordWithDetails, error) {
	item := dto.LapRecordWithDetails{LapRecord: record}

	var track models.Track
	if err := s.db.Unscoped().Select("id", "name", "location").First(&track, "id = ?", record.TrackID).Error; err == nil {
		item.Track = dto.TrackBrief{ID: track.ID, Name: track.Name, Location: track.Location}
	}

	var car models.Car
	if err := s.db.Unscoped().First(&car, "id = ?", record.CarID).Error; err == nil {
		item.Car = dto.CarSummary{ID: car.ID, Make: car.Make, Model: car.Model, Year: car.Year}
	}

	if record.TrackEventID != nil {
		var event models.TrackEvent
		if err := s.db.First(&event, "id = ?", *record.TrackEventID).Error; err == nil {
			item.TrackEvent = &event
		}
	}
	return item, nil
}

// Create logs a lap. The car must belong to the caller, the track must exist,
// and a referenced event must sit on that track.
func (s *LapbookService) Create(driverID uuid.UUID, req *dto.LapRecordRequest) (*dto.LapRecordWithDetails, error) {
	var carCount int64
	err := s.db.Model(&models.Car{}).
		Where("id = ? AND user_id = ?", req.CarID, driverID).
		Count(&carCount).Error
	if err != nil {
		return nil, err
	}
	if carCount == 0 {
		return nil, ErrCarNotFound
	}

	var trackCount int64
	if err := s.db.Model(&models.Track{}).Where("id = ?", req.TrackID).Count(&trackCount).Error; err != nil {
		return nil, err
	}
	if trackCount == 0 {
		return nil, ErrTrackNotFound
	}

	if req.TrackEventID != nil {
		ok, err := eventBelongsToTrack(s.db, *req.TrackEventID, req.TrackID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrEventTrackMismatch
		}
	}

	record := models.LapRecord{
		ID:             uuid.New(),
		LapTime:        req.LapTime,
		Conditions:     req.Conditions,
		Notes:          req.Notes,
		TirePressureFL: req.TirePressureFL,
		TirePressureFR: req.TirePressureFR,
		TirePressureRL: req.TirePressureRL,
		TirePressureRR: req.TirePressureRR,
		FuelLevel:      req.FuelLevel,
		CamberFL:       req.CamberFL,
		CamberFR:       req.CamberFR,
		CamberRL:       req.CamberRL,
		CamberRR:       req.CamberRR,
		CasterFL:       req.CasterFL,
		CasterFR:       req.CasterFR,
		ToeFL:          req.ToeFL,
		ToeFR:          req.ToeFR,
		ToeRL:          req.ToeRL,
		ToeRR:          req.ToeRR,
		TrackID:        req.TrackID,
		TrackEventID:   req.TrackEventID,
		CarID:          req.CarID,
		DriverID:       driverID,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}

	item, err := s.withDetails(record)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes the caller's own lap record; anyone else's reads as not found.
func (s *LapbookService) Delete(driverID, recordID uuid.UUID) error {
	var record models.LapRecord
	err := s.db.First(&record, "id = ? AND driver_id = ?", recordID, driverID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrLapRecordNotFound
	}
	if err != nil {
		return err
	}
	return s.db.Delete(&record).Error
}
