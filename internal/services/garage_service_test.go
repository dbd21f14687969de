package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracksideapp/backend/internal/dto"
	"github.com/tracksideapp/backend/internal/models"
)

func TestCreateAndListCars(t *testing.T) {
	db := setupDB(t)
	svc := NewGarageService(db)
	user := seedUser(t, db, "alice")

	_, err := svc.CreateCar(user.ID, &dto.CarRequest{Make: "Mazda", Model: "MX-5", Year: 2019})
	require.NoError(t, err)
	_, err = svc.CreateCar(user.ID, &dto.CarRequest{Make: "Honda", Model: "Civic", Year: 2021})
	require.NoError(t, err)

	cars, err := svc.ListCars(user.ID)
	require.NoError(t, err)
	require.Len(t, cars, 2)
	// Mods slice is always serializable, never nil.
	assert.NotNil(t, cars[0].Mods)
}

func TestGetCarScopedToOwner(t *testing.T) {
	db := setupDB(t)
	svc := NewGarageService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	car := seedCar(t, db, alice.ID)

	got, err := svc.GetCar(alice.ID, car.ID)
	require.NoError(t, err)
	assert.Equal(t, car.ID, got.ID)

	// Someone else's car reads as not found, not forbidden.
	_, err = svc.GetCar(bob.ID, car.ID)
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestUpdateCar(t *testing.T) {
	db := setupDB(t)
	svc := NewGarageService(db)
	user := seedUser(t, db, "alice")
	car := seedCar(t, db, user.ID)

	updated, err := svc.UpdateCar(user.ID, car.ID, &dto.CarRequest{Make: "Mazda", Model: "RX-7", Year: 1993})
	require.NoError(t, err)
	assert.Equal(t, "RX-7", updated.Model)
	assert.Equal(t, 1993, updated.Year)
}

func TestCarMods(t *testing.T) {
	db := setupDB(t)
	svc := NewGarageService(db)
	user := seedUser(t, db, "alice")
	car := seedCar(t, db, user.ID)

	mod, err := svc.CreateMod(user.ID, car.ID, &dto.CarModRequest{
		Name:     "Coilovers",
		Category: "SUSPENSION",
		Notes:    strptr("Ohlins Road & Track"),
	})
	require.NoError(t, err)
	assert.Equal(t, "SUSPENSION", mod.Category)

	got, err := svc.GetCar(user.ID, car.ID)
	require.NoError(t, err)
	require.Len(t, got.Mods, 1)

	require.NoError(t, svc.DeleteMod(user.ID, car.ID, mod.ID))

	got, err = svc.GetCar(user.ID, car.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Mods)
}

func TestDeleteModWrongCar(t *testing.T) {
	db := setupDB(t)
	svc := NewGarageService(db)
	user := seedUser(t, db, "alice")
	car := seedCar(t, db, user.ID)
	other := seedCar(t, db, user.ID)

	mod, err := svc.CreateMod(user.ID, car.ID, &dto.CarModRequest{Name: "Intake", Category: "ENGINE"})
	require.NoError(t, err)

	err = svc.DeleteMod(user.ID, other.ID, mod.ID)
	assert.ErrorIs(t, err, ErrModNotFound)
}

func TestDeleteCarCascades(t *testing.T) {
	db := setupDB(t)
	svc := NewGarageService(db)
	user := seedUser(t, db, "alice")
	car := seedCar(t, db, user.ID)
	track := seedTrack(t, db, user.ID, "Road Atlanta")

	_, err := svc.CreateMod(user.ID, car.ID, &dto.CarModRequest{Name: "Pads", Category: "BRAKES"})
	require.NoError(t, err)

	lapbook := NewLapbookService(db)
	_, err = lapbook.Create(user.ID, &dto.LapRecordRequest{
		LapTime:    "1:43.210",
		Conditions: "DRY",
		TrackID:    track.ID,
		CarID:      car.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCar(user.ID, car.ID))

	_, err = svc.GetCar(user.ID, car.ID)
	assert.ErrorIs(t, err, ErrCarNotFound)

	var mods int64
	require.NoError(t, db.Model(&models.CarMod{}).Where("car_id = ?", car.ID).Count(&mods).Error)
	assert.Zero(t, mods)

	records, err := lapbook.List(user.ID, LapRecordFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}
