package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tracksideapp/backend/internal/dto"
	"github.com/tracksideapp/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrZoneNotFound = errors.New("zone not found")
	ErrTipNotFound  = errors.New("tip not found")
)

type ZoneService struct {
	db *gorm.DB
}

func NewZoneService(db *gorm.DB) *ZoneService {
	return &ZoneService{db: db}
}

// zonesWithTips loads a track's zones ordered by creation, each carrying its
// tips newest-first with author briefs. Shared with the track detail aggregate.
func zonesWithTips(tx *gorm.DB, trackID uuid.UUID, eventTypeFilter string) ([]dto.TrackZoneWithTips, error) {
	query := tx.Where("track_id = ?", trackID)
	if eventTypeFilter != "" {
		query = query.Where("event_type = ?", eventTypeFilter)
	}

	var zones []models.TrackZone
	if err := query.Order("created_at ASC").Find(&zones).Error; err != nil {
		return nil, err
	}

	result := make([]dto.TrackZoneWithTips, 0, len(zones))
	for i := range zones {
		tips, err := tipsForZone(tx, zones[i].ID)
		if err != nil {
			return nil, err
		}
		result = append(result, dto.TrackZoneWithTips{TrackZone: zones[i], Tips: tips})
	}
	return result, nil
}

func tipsForZone(tx *gorm.DB, zoneID uuid.UUID) ([]dto.ZoneTipWithAuthor, error) {
	var tips []models.ZoneTip
	err := tx.Where("zone_id = ?", zoneID).
		Order("created_at DESC").
		Find(&tips).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.ZoneTipWithAuthor, 0, len(tips))
	for i := range tips {
		item := dto.ZoneTipWithAuthor{ZoneTip: tips[i]}
		var author models.User
		if err := tx.Select("id", "name").First(&author, "id = ?", tips[i].AuthorID).Error; err == nil {
			item.Author = dto.UserBrief{ID: author.ID, Name: author.Name}
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *ZoneService) ListForTrack(trackID uuid.UUID, eventTypeFilter string) ([]dto.TrackZoneWithTips, error) {
	return zonesWithTips(s.db, trackID, eventTypeFilter)
}

func (s *ZoneService) Create(trackID uuid.UUID, req *dto.TrackZoneRequest) (*dto.TrackZoneWithTips, error) {
	var count int64
	if err := s.db.Model(&models.Track{}).Where("id = ?", trackID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrTrackNotFound
	}

	zone := models.TrackZone{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		PosX:        req.PosX,
		PosY:        req.PosY,
		TrackID:     trackID,
		EventType:   req.EventType,
	}
	if err := s.db.Create(&zone).Error; err != nil {
		return nil, err
	}
	return &dto.TrackZoneWithTips{TrackZone: zone, Tips: []dto.ZoneTipWithAuthor{}}, nil
}

// Update patches a zone's annotations. Any authenticated user may refine
// zone names and descriptions; the map itself is community-maintained.
func (s *ZoneService) Update(trackID, zoneID uuid.UUID, req *dto.ZoneUpdateRequest) (*dto.TrackZoneWithTips, error) {
	zone, err := s.findZone(trackID, zoneID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.Description != nil {
		zone.Description = req.Description
	}

	if err := s.db.Save(zone).Error; err != nil {
		return nil, err
	}

	tips, err := tipsForZone(s.db, zone.ID)
	if err != nil {
		return nil, err
	}
	return &dto.TrackZoneWithTips{TrackZone: *zone, Tips: tips}, nil
}

// Delete soft-deletes the zone and hard-deletes its tips in one transaction.
func (s *ZoneService) Delete(trackID, zoneID uuid.UUID) error {
	zone, err := s.findZone(trackID, zoneID)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("zone_id = ?", zone.ID).Delete(&models.ZoneTip{}).Error; err != nil {
			return err
		}
		return tx.Delete(zone).Error
	})
}

func (s *ZoneService) findZone(trackID, zoneID uuid.UUID) (*models.TrackZone, error) {
	var zone models.TrackZone
	err := s.db.First(&zone, "id = ? AND track_id = ?", zoneID, trackID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrZoneNotFound
	}
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

// ─── Tips ───

func (s *ZoneService) CreateTip(userID, trackID, zoneID uuid.UUID, req *dto.ZoneTipRequest) (*dto.ZoneTipWithAuthor, error) {
	if _, err := s.findZone(trackID, zoneID); err != nil {
		return nil, err
	}

	tip := models.ZoneTip{
		ID:         uuid.New(),
		Content:    req.Content,
		Conditions: req.Conditions,
		ZoneID:     zoneID,
		AuthorID:   userID,
	}
	if err := s.db.Create(&tip).Error; err != nil {
		return nil, err
	}

	item := dto.ZoneTipWithAuthor{ZoneTip: tip}
	var author models.User
	if err := s.db.Select("id", "name").First(&author, "id = ?", userID).Error; err == nil {
		item.Author = dto.UserBrief{ID: author.ID, Name: author.Name}
	}
	return &item, nil
}

// DeleteTip removes a tip authored by the caller. A tip belonging to someone
// else reads as not found: tip IDs are only meaningful to their author here.
func (s *ZoneService) DeleteTip(userID, trackID, zoneID, tipID uuid.UUID) error {
	if _, err := s.findZone(trackID, zoneID); err != nil {
		return err
	}

	var tip models.ZoneTip
	err := s.db.First(&tip, "id = ? AND zone_id = ? AND author_id = ?", tipID, zoneID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTipNotFound
	}
	if err != nil {
		return err
	}
	return s.db.Delete(&tip).Error
}
