package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/tracksideapp/backend/internal/dto"
	"github.com/tracksideapp/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrTrackNotFound = errors.New("track not found")
	ErrEventNotFound = errors.New("track event not found")
	ErrImageNotFound = errors.New("image not found")
	ErrNotOwner      = errors.New("you do not own this resource")
)

type TrackService struct {
	db *gorm.DB
}

func NewTrackService(db *gorm.DB) *TrackService {
	return &TrackService{db: db}
}

// List returns APPROVED tracks matching all supplied filters, newest first,
// each annotated with events, uploader, counts and average rating. Absent
// filters impose no constraint.
func (s *TrackService) List(q *dto.TrackListQuery) ([]dto.TrackListItem, error) {
	query := s.db.Model(&models.Track{}).Where("status = ?", models.TrackStatusApproved)

	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(location) LIKE ?", pattern, pattern)
	}
	if q.EventType != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM track_events te WHERE te.track_id = tracks.id AND te.event_type = ?)",
			q.EventType,
		)
	}
	if q.State != "" {
		query = query.Where("state = ?", strings.ToUpper(q.State))
	}

	var tracks []models.Track
	if err := query.Order("created_at DESC").Find(&tracks).Error; err != nil {
		return nil, err
	}

	ratings, err := s.avgRatings()
	if err != nil {
		return nil, err
	}

	items := make([]dto.TrackListItem, 0, len(tracks))
	for i := range tracks {
		item := dto.TrackListItem{Track: tracks[i], AvgRating: ratings[tracks[i].ID]}
		if err := s.annotate(s.db, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *TrackService) annotate(tx *gorm.DB, item *dto.TrackListItem) error {
	events, err := s.eventsFor(tx, item.ID)
	if err != nil {
		return err
	}
	item.Events = events

	var uploader models.User
	if err := tx.Select("id", "name").First(&uploader, "id = ?", item.UploadedByID).Error; err == nil {
		item.UploadedBy = dto.UserBrief{ID: uploader.ID, Name: uploader.Name}
	}

	counts, err := s.countsFor(tx, item.ID)
	if err != nil {
		return err
	}
	item.Count = counts
	return nil
}

func (s *TrackService) eventsFor(tx *gorm.DB, trackID uuid.UUID) ([]models.TrackEvent, error) {
	events := []models.TrackEvent{}
	err := tx.Where("track_id = ?", trackID).Find(&events).Error
	return events, err
}

func (s *TrackService) countsFor(tx *gorm.DB, trackID uuid.UUID) (dto.TrackCounts, error) {
	var counts dto.TrackCounts
	if err := tx.Model(&models.TrackReview{}).Where("track_id = ?", trackID).Count(&counts.Reviews).Error; err != nil {
		return counts, err
	}
	if err := tx.Model(&models.TrackZone{}).Where("track_id = ?", trackID).Count(&counts.Zones).Error; err != nil {
		return counts, err
	}
	if err := tx.Model(&models.LapRecord{}).Where("track_id = ?", trackID).Count(&counts.LapRecords).Error; err != nil {
		return counts, err
	}
	return counts, nil
}

// avgRatings computes the mean review rating per track in one query.
// Tracks without reviews are simply absent; the map zero value covers them.
func (s *TrackService) avgRatings() (map[uuid.UUID]float64, error) {
	type row struct {
		TrackID uuid.UUID
		Avg     float64
	}
	var rows []row
	err := s.db.Model(&models.TrackReview{}).
		Select("track_id, AVG(rating) as avg").
		Group("track_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	ratings := make(map[uuid.UUID]float64, len(rows))
	for _, r := range rows {
		ratings[r.TrackID] = r.Avg
	}
	return ratings, nil
}

func (s *TrackService) FindByID(trackID uuid.UUID) (*models.Track, error) {
	var track models.Track
	err := s.db.First(&track, "id = ?", trackID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTrackNotFound
	}
	if err != nil {
		return nil, err
	}
	return &track, nil
}

func (s *TrackService) Exists(trackID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Track{}).Where("id = ?", trackID).Count(&count).Error
	return count > 0, err
}

// eventBelongsToTrack verifies that the event exists on the given track.
// Reviews and lap records both require this before persisting an event ref.
func eventBelongsToTrack(tx *gorm.DB, eventID, trackID uuid.UUID) (bool, error) {
	var count int64
	err := tx.Model(&models.TrackEvent{}).
		Where("id = ? AND track_id = ?", eventID, trackID).
		Count(&count).Error
	return count > 0, err
}

// Create persists the track together with its initial events. The inserts
// are one transaction so a track can never exist with zero events.
func (s *TrackService) Create(userID uuid.UUID, req *dto.TrackCreateRequest) (*dto.TrackListItem, error) {
	track := models.Track{
		ID:           uuid.New(),
		Name:         req.Name,
		Location:     req.Location,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Status:       models.TrackStatusApproved,
		UploadedByID: userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&track).Error; err != nil {
			return err
		}
		for _, et := range req.EventTypes {
			event := models.TrackEvent{ID: uuid.New(), EventType: et, TrackID: track.ID}
			if err := tx.Create(&event).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	item := dto.TrackListItem{Track: track}
	if err := s.annotate(s.db, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update patches the uploader-controlled fields. Non-owners get ErrNotOwner:
// tracks are public, so their existence is not a secret.
func (s *TrackService) Update(userID, trackID uuid.UUID, req *dto.TrackPatchRequest) (*models.Track, error) {
	track, err := s.FindByID(trackID)
	if err != nil {
		return nil, err
	}
	if track.UploadedByID != userID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		track.Name = *req.Name
	}
	if req.Location != nil {
		track.Location = *req.Location
	}
	if req.Description != nil {
		track.Description = req.Description
	}
	if req.ImageURL != nil {
		track.ImageURL = req.ImageURL
	}

	if err := s.db.Save(track).Error; err != nil {
		return nil, err
	}
	return track, nil
}

// GetDetail assembles the full track aggregate: events, zones with tips and
// tip authors, reviews with author garage summaries, uploader, counts and
// average rating. Runs inside one transaction so the aggregate is a single
// logical read. An optional event type filter narrows the zone list.
func (s *TrackService) GetDetail(trackID uuid.UUID, eventTypeFilter string) (*dto.TrackDetail, error) {
	var detail *dto.TrackDetail

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var track models.Track
		err := tx.First(&track, "id = ?", trackID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTrackNotFound
		}
		if err != nil {
			return err
		}

		detail = &dto.TrackDetail{Track: track}

		var uploader models.User
		if err := tx.First(&uploader, "id = ?", track.UploadedByID).Error; err == nil {
			detail.UploadedBy = dto.UserWithExperience{
				ID:         uploader.ID,
				Name:       uploader.Name,
				Experience: uploader.Experience,
			}
		}

		events, err := s.eventsFor(tx, trackID)
		if err != nil {
			return err
		}
		detail.Events = events

		zones, err := zonesWithTips(tx, trackID, eventTypeFilter)
		if err != nil {
			return err
		}
		detail.Zones = zones

		reviews, err := reviewsWithAuthors(tx, trackID)
		if err != nil {
			return err
		}
		detail.Reviews = reviews

		counts, err := s.countsFor(tx, trackID)
		if err != nil {
			return err
		}
		detail.Count = counts

		var sum, n int64
		for _, rv := range reviews {
			sum += int64(rv.Rating)
			n++
		}
		if n > 0 {
			detail.AvgRating = float64(sum) / float64(n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// ─── Gallery images ───

func (s *TrackService) ListImages(trackID uuid.UUID) ([]dto.TrackImageWithUploader, error) {
	var images []models.TrackImage
	err := s.db.Where("track_id = ?", trackID).
		Order("created_at DESC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.TrackImageWithUploader, 0, len(images))
	for i := range images {
		item := dto.TrackImageWithUploader{TrackImage: images[i]}
		var uploader models.User
		if err := s.db.Select("id", "name").First(&uploader, "id = ?", images[i].UploadedByID).Error; err == nil {
			item.UploadedBy = dto.UserBrief{ID: uploader.ID, Name: uploader.Name}
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *TrackService) CreateImage(userID, trackID uuid.UUID, req *dto.TrackImageRequest) (*dto.TrackImageWithUploader, error) {
	exists, err := s.Exists(trackID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTrackNotFound
	}

	image := models.TrackImage{
		ID:           uuid.New(),
		URL:          req.URL,
		Caption:      req.Caption,
		TrackID:      trackID,
		UploadedByID: userID,
	}
	if err := s.db.Create(&image).Error; err != nil {
		return nil, err
	}

	item := dto.TrackImageWithUploader{TrackImage: image}
	var uploader models.User
	if err := s.db.Select("id", "name").First(&uploader, "id = ?", userID).Error; err == nil {
		item.UploadedBy = dto.UserBrief{ID: uploader.ID, Name: uploader.Name}
	}
	return &item, nil
}

// DeleteImage allows the track owner or the image uploader to remove a
// gallery image; anyone else gets ErrNotOwner.
func (s *TrackService) DeleteImage(userID, trackID, imageID uuid.UUID) error {
	var image models.TrackImage
	err := s.db.First(&image, "id = ?", imageID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrImageNotFound
	}
	if err != nil {
		return err
	}

	track, err := s.FindByID(trackID)
	if err != nil && !errors.Is(err, ErrTrackNotFound) {
		return err
	}

	isTrackOwner := track != nil && track.UploadedByID == userID
	isImageUploader := image.UploadedByID == userID
	if !isTrackOwner && !isImageUploader {
		return ErrNotOwner
	}

	return s.db.Delete(&image).Error
}
