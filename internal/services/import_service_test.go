package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracksideapp/backend/internal/models"
)

const sampleDataset = `[
  {
    "name": "Road Atlanta",
    "location": "Braselton, GA",
    "state": "GA",
    "types": ["ROADCOURSE"],
    "latitude": 34.1482,
    "longitude": -83.8162,
    "description": "2.54-mile road course."
  },
  {
    "name": "Evergreen Speedway",
    "location": "Monroe, WA",
    "state": "WA",
    "types": ["DRIFT"],
    "latitude": 47.8626,
    "longitude": -121.9818,
    "description": ""
  },
  {
    "name": "Broken Entry",
    "location": "Nowhere",
    "state": "",
    "types": ["HILLCLIMB"],
    "latitude": 0,
    "longitude": 0,
    "description": ""
  }
]`

func writeDataset(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "usa-tracks.json"), []byte(contents), 0o644))
	return dir
}

func TestSyncTracks(t *testing.T) {
	db := setupDB(t)
	svc := NewImportService(db, writeDataset(t, sampleDataset))

	resp, err := svc.SyncTracks()
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Summary.Total)
	assert.Equal(t, 2, resp.Summary.Created)
	assert.Equal(t, 1, resp.Summary.Failed)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "Broken Entry")

	var track models.Track
	require.NoError(t, db.First(&track, "name = ?", "Road Atlanta").Error)
	assert.True(t, track.IsImported)
	assert.Equal(t, models.TrackStatusApproved, track.Status)
	require.NotNil(t, track.State)
	assert.Equal(t, "GA", *track.State)

	var events int64
	require.NoError(t, db.Model(&models.TrackEvent{}).Where("track_id = ?", track.ID).Count(&events).Error)
	assert.Equal(t, int64(1), events)

	var system models.User
	require.NoError(t, db.First(&system, "email = ?", systemUserEmail).Error)
	assert.Equal(t, system.ID, track.UploadedByID)
}

func TestSyncTracksIdempotent(t *testing.T) {
	db := setupDB(t)
	svc := NewImportService(db, writeDataset(t, sampleDataset))

	_, err := svc.SyncTracks()
	require.NoError(t, err)

	resp, err := svc.SyncTracks()
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Summary.Created)
	assert.Equal(t, 2, resp.Summary.Updated)

	var count int64
	require.NoError(t, db.Model(&models.Track{}).Where("is_imported = ?", true).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	// Events are not duplicated on re-sync.
	var track models.Track
	require.NoError(t, db.First(&track, "name = ?", "Evergreen Speedway").Error)
	var events int64
	require.NoError(t, db.Model(&models.TrackEvent{}).Where("track_id = ?", track.ID).Count(&events).Error)
	assert.Equal(t, int64(1), events)
}

func TestSyncTracksMissingDataset(t *testing.T) {
	db := setupDB(t)
	svc := NewImportService(db, t.TempDir())

	_, err := svc.SyncTracks()
	assert.Error(t, err)
}
