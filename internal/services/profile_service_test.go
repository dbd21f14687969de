package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracksideapp/backend/internal/dto"
	"github.com/tracksideapp/backend/internal/models"
)

func TestProfileCounts(t *testing.T) {
	db := setupDB(t)
	svc := NewProfileService(db)
	alice := seedUser(t, db, "alice")
	car := seedCar(t, db, alice.ID)
	track := seedTrack(t, db, alice.ID, "Road Atlanta")

	reviews := NewReviewService(db)
	_, err := reviews.Create(alice.ID, track.ID, &dto.TrackReviewRequest{Rating: 4, Conditions: "DRY"})
	require.NoError(t, err)

	zones := NewZoneService(db)
	zone, err := zones.Create(track.ID, &dto.TrackZoneRequest{Name: "Turn 1", PosX: 5, PosY: 5})
	require.NoError(t, err)
	_, err = zones.CreateTip(alice.ID, track.ID, zone.ID, &dto.ZoneTipRequest{Content: "Flat"})
	require.NoError(t, err)

	lapbook := NewLapbookService(db)
	_, err = lapbook.Create(alice.ID, &dto.LapRecordRequest{
		LapTime:    "1:45.000",
		Conditions: "DRY",
		TrackID:    track.ID,
		CarID:      car.ID,
	})
	require.NoError(t, err)

	profile, err := svc.Get(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.Count.TrackReviews)
	assert.Equal(t, int64(1), profile.Count.LapRecords)
	assert.Equal(t, int64(1), profile.Count.Tracks)
	assert.Equal(t, int64(1), profile.Count.ZoneTips)
	require.Len(t, profile.Cars, 1)
	assert.Equal(t, car.ID, profile.Cars[0].ID)
}

func TestProfileUpdate(t *testing.T) {
	db := setupDB(t)
	svc := NewProfileService(db)
	alice := seedUser(t, db, "alice")

	profile, err := svc.Update(alice.ID, &dto.ProfileUpdateRequest{
		Name:       strptr("Alice R."),
		Experience: strptr(models.ExperienceAdvanced),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice R.", *profile.Name)
	assert.Equal(t, models.ExperienceAdvanced, profile.Experience)

	// Partial update leaves the other field alone.
	profile, err = svc.Update(alice.ID, &dto.ProfileUpdateRequest{Name: strptr("Alice Racer")})
	require.NoError(t, err)
	assert.Equal(t, "Alice Racer", *profile.Name)
	assert.Equal(t, models.ExperienceAdvanced, profile.Experience)
}
