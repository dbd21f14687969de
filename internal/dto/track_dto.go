package dto

import (
	"net/url"

	"github.com/google/uuid"
	"github.com/tracksideapp/backend/internal/models"
	"github.com/tracksideapp/backend/internal/validation"
)

type TrackCreateRequest struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
	EventTypes  []string `json:"eventTypes"`
}

func (r *TrackCreateRequest) Validate() error {
	var v validation.Errors
	if len(r.Name) < 2 {
		v.Add("name", "track name must be at least 2 characters")
	}
	if len(r.Location) < 2 {
		v.Add("location", "location must be at least 2 characters")
	}
	if len(r.EventTypes) == 0 {
		v.Add("eventTypes", "select at least one event type")
	}
	for _, et := range r.EventTypes {
		if !models.ValidEventType(et) {
			v.Add("eventTypes", "invalid event type: "+et)
			break
		}
	}
	return v.Err()
}

type TrackPatchRequest struct {
	Name        *string `json:"name"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

func (r *TrackPatchRequest) Validate() error {
	var v validation.Errors
	if r.Name != nil && len(*r.Name) < 2 {
		v.Add("name", "track name must be at least 2 characters")
	}
	if r.Location != nil && len(*r.Location) < 2 {
		v.Add("location", "location must be at least 2 characters")
	}
	return v.Err()
}

type TrackListQuery struct {
	Search    string
	EventType string
	State     string
}

func (q *TrackListQuery) Validate() error {
	var v validation.Errors
	if q.EventType != "" && !models.ValidEventType(q.EventType) {
		v.Add("eventType", "invalid event type: "+q.EventType)
	}
	return v.Err()
}

type TrackImageRequest struct {
	URL     string  `json:"url"`
	Caption *string `json:"caption"`
}

func (r *TrackImageRequest) Validate() error {
	var v validation.Errors
	if _, err := url.ParseRequestURI(r.URL); err != nil {
		v.Add("url", "invalid image URL")
	}
	return v.Err()
}

type TrackZoneRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	PosX        float64 `json:"posX"`
	PosY        float64 `json:"posY"`
	EventType   *string `json:"eventType"`
}

func (r *TrackZoneRequest) Validate() error {
	var v validation.Errors
	if r.Name == "" {
		v.Add("name", "zone name is required")
	}
	if r.PosX < 0 || r.PosX > 100 {
		v.Add("posX", "position must be between 0 and 100")
	}
	if r.PosY < 0 || r.PosY > 100 {
		v.Add("posY", "position must be between 0 and 100")
	}
	if r.EventType != nil && !models.ValidEventType(*r.EventType) {
		v.Add("eventType", "invalid event type: "+*r.EventType)
	}
	return v.Err()
}

type ZoneUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r *ZoneUpdateRequest) Validate() error {
	var v validation.Errors
	if r.Name != nil && *r.Name == "" {
		v.Add("name", "zone name cannot be empty")
	}
	return v.Err()
}

type ZoneTipRequest struct {
	Content    string  `json:"content"`
	Conditions *string `json:"conditions"`
}

func (r *ZoneTipRequest) Validate() error {
	var v validation.Errors
	if r.Content == "" {
		v.Add("content", "tip content is required")
	}
	if r.Conditions != nil && !models.ValidCondition(*r.Conditions) {
		v.Add("conditions", "conditions must be DRY or WET")
	}
	return v.Err()
}

type TrackReviewRequest struct {
	Rating       int        `json:"rating"`
	Content      *string    `json:"content"`
	Conditions   string     `json:"conditions"`
	TrackEventID *uuid.UUID `json:"trackEventId"`
}

func (r *TrackReviewRequest) Validate() error {
	var v validation.Errors
	if r.Rating < 1 || r.Rating > 5 {
		v.Add("rating", "rating must be between 1 and 5")
	}
	if !models.ValidCondition(r.Conditions) {
		v.Add("conditions", "conditions must be DRY or WET")
	}
	return v.Err()
}

// ─── Read-side composites ───

type UserWithExperience struct {
	ID         uuid.UUID `json:"id"`
	Name       *string   `json:"name"`
	Experience string    `json:"experience"`
}

type UserWithCars struct {
	ID         uuid.UUID  `json:"id"`
	Name       *string    `json:"name"`
	Experience string     `json:"experience"`
	Cars       []CarBrief `json:"cars"`
}

type TrackCounts struct {
	Reviews    int64 `json:"reviews"`
	Zones      int64 `json:"zones"`
	LapRecords int64 `json:"lapRecords"`
}

type TrackListItem struct {
	models.Track
	Events     []models.TrackEvent `json:"events"`
	UploadedBy UserBrief           `json:"uploadedBy"`
	Count      TrackCounts         `json:"_count"`
	AvgRating  float64             `json:"avgRating"`
}

type ZoneTipWithAuthor struct {
	models.ZoneTip
	Author UserBrief `json:"author"`
}

type TrackZoneWithTips struct {
	models.TrackZone
	Tips []ZoneTipWithAuthor `json:"tips"`
}

type ReviewWithAuthor struct {
	models.TrackReview
	Author     UserWithCars       `json:"author"`
	TrackEvent *models.TrackEvent `json:"trackEvent"`
}

type TrackDetail struct {
	models.Track
	Events     []models.TrackEvent `json:"events"`
	UploadedBy UserWithExperience  `json:"uploadedBy"`
	Zones      []TrackZoneWithTips `json:"zones"`
	Reviews    []ReviewWithAuthor  `json:"reviews"`
	Count      TrackCounts         `json:"_count"`
	AvgRating  float64             `json:"avgRating"`
}

type TrackImageWithUploader struct {
	models.TrackImage
	UploadedBy UserBrief `json:"uploadedBy"`
}
