package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tracksideapp/backend/internal/database"
	"github.com/tracksideapp/backend/internal/dto"
	"github.com/tracksideapp/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.New(),
		Name:         &name,
		Email:        name + "@example.com",
		PasswordHash: "x",
		Experience:   models.ExperienceBeginner,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCar(t *testing.T, db *gorm.DB, userID uuid.UUID) *models.Car {
	t.Helper()
	svc := NewGarageService(db)
	car, err := svc.CreateCar(userID, &dto.CarRequest{Make: "Mazda", Model: "MX-5", Year: 2019})
	require.NoError(t, err)
	return car
}

func seedTrack(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, eventTypes ...string) *dto.TrackListItem {
	t.Helper()
	if len(eventTypes) == 0 {
		eventTypes = []string{"ROADCOURSE"}
	}
	svc := NewTrackService(db)
	track, err := svc.Create(userID, &dto.TrackCreateRequest{
		Name:       name,
		Location:   "Somewhere, USA",
		EventTypes: eventTypes,
	})
	require.NoError(t, err)
	return track
}

func strptr(s string) *string { return &s }
