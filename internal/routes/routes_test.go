package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracksideapp/backend/internal/config"
	"github.com/tracksideapp/backend/internal/database"
	"github.com/tracksideapp/backend/internal/handlers"
	"github.com/tracksideapp/backend/internal/services"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
		UploadDir: t.TempDir(),
		DataDir:   t.TempDir(),
	}

	h := Handlers{
		Auth:    handlers.NewAuthHandler(services.NewAuthService(db, cfg)),
		Garage:  handlers.NewGarageHandler(services.NewGarageService(db)),
		Track:   handlers.NewTrackHandler(services.NewTrackService(db)),
		Zone:    handlers.NewZoneHandler(services.NewZoneService(db)),
		Review:  handlers.NewReviewHandler(services.NewReviewService(db)),
		Lapbook: handlers.NewLapbookHandler(services.NewLapbookService(db)),
		Profile: handlers.NewProfileHandler(services.NewProfileService(db)),
		Upload:  handlers.NewUploadHandler(cfg),
		Admin:   handlers.NewAdminHandler(services.NewImportService(db, cfg.DataDir)),
	}

	app := fiber.New()
	Setup(app, cfg, h)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, path, token string) (*http.Response, []map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var list []map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &list))
	}
	return resp, list
}

func registerAndLogin(t *testing.T, app *fiber.App, name string) string {
	t.Helper()
	email := fmt.Sprintf("%s@example.com", name)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":            name,
		"email":           email,
		"password":        "supersecret",
		"confirmPassword": "supersecret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)
	resp, body := doJSON(t, app, http.MethodGet, "/api/health", "", nil)
	// No global DB in tests, so the probe reports degraded but still answers.
	require.Contains(t, []int{http.StatusOK, http.StatusServiceUnavailable}, resp.StatusCode)
	assert.NotEmpty(t, body["status"])
}

func TestRegisterValidationReportsAllFields(t *testing.T) {
	app := newTestApp(t)
	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":            "A",
		"email":           "not-an-email",
		"password":        "short",
		"confirmPassword": "different",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	fields, ok := body["fields"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, fields, 4)
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	app := newTestApp(t)
	resp, _ := doJSON(t, app, http.MethodGet, "/api/cars", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/tracks", "", map[string]any{"name": "X"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Walks the main community flow: a driver builds a garage, uploads a track,
// pins a zone with a tip, reviews it, and logs a lap.
func TestTrackCommunityFlow(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "alice")

	// Garage
	resp, car := doJSON(t, app, http.MethodPost, "/api/cars", token, map[string]any{
		"make": "Mazda", "model": "MX-5", "year": 2019,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	carID := car["id"].(string)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/cars/"+carID+"/mods", token, map[string]any{
		"name": "Coilovers", "category": "SUSPENSION",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Track
	resp, track := doJSON(t, app, http.MethodPost, "/api/tracks", token, map[string]any{
		"name":       "WeatherTech Raceway Laguna Seca",
		"location":   "Monterey, CA",
		"eventTypes": []string{"ROADCOURSE"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	trackID := track["id"].(string)

	// Public search finds it
	resp, list := doJSONList(t, app, "/api/tracks?search=Laguna", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)
	assert.Equal(t, trackID, list[0]["id"])

	resp, list = doJSONList(t, app, "/api/tracks?search=nomatch", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, list)

	// Zone + tip
	resp, zone := doJSON(t, app, http.MethodPost, "/api/tracks/"+trackID+"/zones", token, map[string]any{
		"name": "The Corkscrew", "posX": 42.5, "posY": 17.3,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	zoneID := zone["id"].(string)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/tracks/"+trackID+"/zones/"+zoneID+"/tips", token, map[string]any{
		"content": "Aim for the oak tree, let the car fall", "conditions": "DRY",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Review
	resp, _ = doJSON(t, app, http.MethodPost, "/api/tracks/"+trackID+"/reviews", token, map[string]any{
		"rating": 5, "conditions": "DRY", "content": "Bucket list track",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Lap record
	resp, _ = doJSON(t, app, http.MethodPost, "/api/lapbook", token, map[string]any{
		"lapTime": "1:52.480", "conditions": "DRY", "trackId": trackID, "carId": carID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Detail aggregate reflects all of it
	resp, detail := doJSON(t, app, http.MethodGet, "/api/tracks/"+trackID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	counts := detail["_count"].(map[string]any)
	assert.Equal(t, float64(1), counts["reviews"])
	assert.Equal(t, float64(1), counts["zones"])
	assert.Equal(t, float64(1), counts["lapRecords"])
	assert.Equal(t, float64(5), detail["avgRating"])

	zones := detail["zones"].([]any)
	require.Len(t, zones, 1)
	tips := zones[0].(map[string]any)["tips"].([]any)
	require.Len(t, tips, 1)

	// Profile counts
	resp, profile := doJSON(t, app, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pcounts := profile["_count"].(map[string]any)
	assert.Equal(t, float64(1), pcounts["tracks"])
	assert.Equal(t, float64(1), pcounts["trackReviews"])
}

func TestTrackEditForbiddenForNonOwner(t *testing.T) {
	app := newTestApp(t)
	owner := registerAndLogin(t, app, "owner")
	intruder := registerAndLogin(t, app, "intruder")

	resp, track := doJSON(t, app, http.MethodPost, "/api/tracks", owner, map[string]any{
		"name": "Lime Rock Park", "location": "Lakeville, CT", "eventTypes": []string{"ROADCOURSE"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	trackID := track["id"].(string)

	resp, _ = doJSON(t, app, http.MethodPatch, "/api/tracks/"+trackID, intruder, map[string]any{
		"name": "Renamed",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminSyncRequiresAdmin(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "plebeian")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/admin/sync-tracks", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
