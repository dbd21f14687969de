package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/tracksideapp/backend/internal/dto"
	"github.com/tracksideapp/backend/internal/models"
	"gorm.io/gorm"
)

const systemUserEmail = "system@trackside.app"

// ImportService loads the bundled track dataset into the catalog. Imported
// tracks are owned by a synthetic system user and flagged so re-runs update
// them in place instead of duplicating.
type ImportService struct {
	db      *gorm.DB
	dataDir string
}

func NewImportService(db *gorm.DB, dataDir string) *ImportService {
	return &ImportService{db: db, dataDir: dataDir}
}

func (s *ImportService) SyncTracks() (*dto.SyncTracksResponse, error) {
	path := filepath.Join(s.dataDir, "usa-tracks.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read track dataset: %w", err)
	}

	var imported []dto.ImportedTrack
	if err := json.Unmarshal(raw, &imported); err != nil {
		return nil, fmt.Errorf("parse track dataset: %w", err)
	}

	systemUser, err := s.ensureSystemUser()
	if err != nil {
		return nil, err
	}

	resp := &dto.SyncTracksResponse{Status: "ok"}
	resp.Summary.Total = len(imported)

	for _, entry := range imported {
		created, err := s.upsertTrack(systemUser.ID, entry)
		if err != nil {
			resp.Summary.Failed++
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", entry.Name, err))
			continue
		}
		if created {
			resp.Summary.Created++
		} else {
			resp.Summary.Updated++
		}
	}
	return resp, nil
}

func (s *ImportService) ensureSystemUser() (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "email = ?", systemUserEmail).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	name := "Trackside"
	user = models.User{
		ID:           uuid.New(),
		Name:         &name,
		Email:        systemUserEmail,
		PasswordHash: uuid.NewString(), // never a valid bcrypt hash, so unloggable
		Experience:   models.ExperiencePro,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// upsertTrack matches imported tracks by name. Returns true when a new row
// was created.
func (s *ImportService) upsertTrack(systemUserID uuid.UUID, entry dto.ImportedTrack) (bool, error) {
	if entry.Name == "" || entry.Location == "" {
		return false, errors.New("missing name or location")
	}
	eventTypes := make([]string, 0, len(entry.Types))
	for _, t := range entry.Types {
		et := strings.ToUpper(strings.TrimSpace(t))
		if !models.ValidEventType(et) {
			return false, fmt.Errorf("unknown event type %q", t)
		}
		eventTypes = append(eventTypes, et)
	}

	var desc *string
	if entry.Description != "" {
		desc = &entry.Description
	}
	var state *string
	if st := strings.ToUpper(strings.TrimSpace(entry.State)); len(st) == 2 {
		state = &st
	}

	created := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var track models.Track
		err := tx.First(&track, "name = ? AND is_imported = ?", entry.Name, true).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			track = models.Track{
				ID:           uuid.New(),
				Name:         entry.Name,
				Location:     entry.Location,
				State:        state,
				Description:  desc,
				Latitude:     &entry.Latitude,
				Longitude:    &entry.Longitude,
				Status:       models.TrackStatusApproved,
				IsImported:   true,
				UploadedByID: systemUserID,
			}
			if err := tx.Create(&track).Error; err != nil {
				return err
			}
			created = true
		case err != nil:
			return err
		default:
			track.Location = entry.Location
			track.State = state
			track.Description = desc
			track.Latitude = &entry.Latitude
			track.Longitude = &entry.Longitude
			if err := tx.Save(&track).Error; err != nil {
				return err
			}
		}

		for _, et := range eventTypes {
			var count int64
			err := tx.Model(&models.TrackEvent{}).
				Where("track_id = ? AND event_type = ?", track.ID, et).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count == 0 {
				event := models.TrackEvent{ID: uuid.New(), EventType: et, TrackID: track.ID}
				if err := tx.Create(&event).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	return created, err
}
