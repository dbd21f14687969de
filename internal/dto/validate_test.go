package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracksideapp/backend/internal/validation"
)

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*validation.Errors)
	require.True(t, ok)
	return verr.Fields()
}

func TestCarRequestYearBounds(t *testing.T) {
	for _, year := range []int{1900, 2030} {
		req := CarRequest{Make: "Mazda", Model: "MX-5", Year: year}
		assert.NoError(t, req.Validate(), "year %d should be accepted", year)
	}
	for _, year := range []int{1899, 2031, 0} {
		req := CarRequest{Make: "Mazda", Model: "MX-5", Year: year}
		f := fields(t, req.Validate())
		assert.Contains(t, f, "year", "year %d should be rejected", year)
	}
}

func TestCarModRequestCategory(t *testing.T) {
	req := CarModRequest{Name: "Intake", Category: "ENGINE"}
	assert.NoError(t, req.Validate())

	req.Category = "NITROUS"
	f := fields(t, req.Validate())
	assert.Contains(t, f, "category")
}

func TestReviewRatingBounds(t *testing.T) {
	for _, rating := range []int{1, 5} {
		req := TrackReviewRequest{Rating: rating, Conditions: "DRY"}
		assert.NoError(t, req.Validate(), "rating %d should be accepted", rating)
	}
	for _, rating := range []int{0, 6, -1} {
		req := TrackReviewRequest{Rating: rating, Conditions: "DRY"}
		f := fields(t, req.Validate())
		assert.Contains(t, f, "rating", "rating %d should be rejected", rating)
	}
}

func TestZonePositionBounds(t *testing.T) {
	ok := TrackZoneRequest{Name: "Turn 1", PosX: 0, PosY: 100}
	assert.NoError(t, ok.Validate())

	bad := TrackZoneRequest{Name: "Turn 1", PosX: -0.1, PosY: 100.1}
	f := fields(t, bad.Validate())
	assert.Contains(t, f, "posX")
	assert.Contains(t, f, "posY")
}

func TestTrackCreateRejectsUnknownEventType(t *testing.T) {
	req := TrackCreateRequest{
		Name:       "Nürburgring",
		Location:   "Nürburg, Germany",
		EventTypes: []string{"ROADCOURSE", "GRIP"},
	}
	f := fields(t, req.Validate())
	assert.Contains(t, f, "eventTypes")
}

func TestRegisterCollectsEveryViolation(t *testing.T) {
	req := RegisterRequest{
		Name:            "A",
		Email:           "nope",
		Password:        "short",
		ConfirmPassword: "different",
	}
	f := fields(t, req.Validate())
	assert.Len(t, f, 4)
}

func TestLapRecordRequestValidation(t *testing.T) {
	req := LapRecordRequest{Conditions: "DAMP"}
	f := fields(t, req.Validate())
	assert.Contains(t, f, "lapTime")
	assert.Contains(t, f, "conditions")
	assert.Contains(t, f, "trackId")
	assert.Contains(t, f, "carId")

	zero := 0.0
	neg := -1.0
	req2 := LapRecordRequest{
		LapTime:        "1:42.856",
		Conditions:     "DRY",
		TirePressureFL: &zero,
		FuelLevel:      &neg,
	}
	f = fields(t, req2.Validate())
	assert.Contains(t, f, "tirePressureFL")
	assert.Contains(t, f, "fuelLevel")
	assert.NotContains(t, f, "lapTime")
}
