package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracksideapp/backend/internal/dto"
	"github.com/tracksideapp/backend/internal/models"
)

func TestCreateZoneRequiresTrack(t *testing.T) {
	db := setupDB(t)
	svc := NewZoneService(db)

	_, err := svc.Create(uuid.New(), &dto.TrackZoneRequest{Name: "Turn 1", PosX: 5, PosY: 5})
	assert.ErrorIs(t, err, ErrTrackNotFound)
}

func TestZoneLifecycle(t *testing.T) {
	db := setupDB(t)
	svc := NewZoneService(db)
	user := seedUser(t, db, "alice")
	track := seedTrack(t, db, user.ID, "Road Atlanta")

	zone, err := svc.Create(track.ID, &dto.TrackZoneRequest{
		Name:        "Turn 12",
		Description: strptr("Downhill braking zone"),
		PosX:        80,
		PosY:        15,
	})
	require.NoError(t, err)
	assert.NotNil(t, zone.Tips)

	updated, err := svc.Update(track.ID, zone.ID, &dto.ZoneUpdateRequest{
		Name: strptr("Turn 12 (bridge)"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Turn 12 (bridge)", updated.Name)
	assert.Equal(t, "Downhill braking zone", *updated.Description)

	require.NoError(t, svc.Delete(track.ID, zone.ID))

	zones, err := svc.ListForTrack(track.ID, "")
	require.NoError(t, err)
	assert.Empty(t, zones)
}

func TestZoneScopedToTrack(t *testing.T) {
	db := setupDB(t)
	svc := NewZoneService(db)
	user := seedUser(t, db, "alice")
	trackA := seedTrack(t, db, user.ID, "Track A")
	trackB := seedTrack(t, db, user.ID, "Track B")

	zone, err := svc.Create(trackA.ID, &dto.TrackZoneRequest{Name: "Turn 1", PosX: 5, PosY: 5})
	require.NoError(t, err)

	// Addressing a zone through the wrong track is a miss.
	_, err = svc.Update(trackB.ID, zone.ID, &dto.ZoneUpdateRequest{Name: strptr("X")})
	assert.ErrorIs(t, err, ErrZoneNotFound)
}

func TestTips(t *testing.T) {
	db := setupDB(t)
	svc := NewZoneService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	track := seedTrack(t, db, alice.ID, "Road Atlanta")
	zone, err := svc.Create(track.ID, &dto.TrackZoneRequest{Name: "Turn 1", PosX: 5, PosY: 5})
	require.NoError(t, err)

	tip, err := svc.CreateTip(alice.ID, track.ID, zone.ID, &dto.ZoneTipRequest{
		Content:    "Brake at the 3 marker",
		Conditions: strptr("DRY"),
	})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, tip.Author.ID)

	// Only the author can delete a tip.
	err = svc.DeleteTip(bob.ID, track.ID, zone.ID, tip.ID)
	assert.ErrorIs(t, err, ErrTipNotFound)

	require.NoError(t, svc.DeleteTip(alice.ID, track.ID, zone.ID, tip.ID))
}

func TestDeleteZoneRemovesTips(t *testing.T) {
	db := setupDB(t)
	svc := NewZoneService(db)
	user := seedUser(t, db, "alice")
	track := seedTrack(t, db, user.ID, "Road Atlanta")
	zone, err := svc.Create(track.ID, &dto.TrackZoneRequest{Name: "Turn 1", PosX: 5, PosY: 5})
	require.NoError(t, err)

	_, err = svc.CreateTip(user.ID, track.ID, zone.ID, &dto.ZoneTipRequest{Content: "Flat out"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(track.ID, zone.ID))

	var tips int64
	require.NoError(t, db.Model(&models.ZoneTip{}).Where("zone_id = ?", zone.ID).Count(&tips).Error)
	assert.Zero(t, tips)
}
