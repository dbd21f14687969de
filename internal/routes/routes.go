package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/tracksideapp/backend/internal/config"
	"github.com/tracksideapp/backend/internal/handlers"
	"github.com/tracksideapp/backend/internal/middleware"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	Garage  *handlers.GarageHandler
	Track   *handlers.TrackHandler
	Zone    *handlers.ZoneHandler
	Review  *handlers.ReviewHandler
	Lapbook *handlers.LapbookHandler
	Profile *handlers.ProfileHandler
	Upload  *handlers.UploadHandler
	Admin   *handlers.AdminHandler
}

func Setup(app *fiber.App, cfg *config.Config, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", handlers.Health)

	// Auth — public, with a stricter 10 req/min limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)

	jwt := middleware.JWTProtected(cfg)

	// Track catalog — reads are public, writes need a session
	api.Get("/tracks", h.Track.List)
	api.Post("/tracks", jwt, h.Track.Create)
	api.Get("/tracks/:trackId", h.Track.Get)
	api.Patch("/tracks/:trackId", jwt, h.Track.Update)

	// Track gallery (delete addresses the image via ?imageId=)
	api.Get("/tracks/:trackId/images", h.Track.ListImages)
	api.Post("/tracks/:trackId/images", jwt, h.Track.CreateImage)
	api.Delete("/tracks/:trackId/images", jwt, h.Track.DeleteImage)

	// Zones and tips
	api.Get("/tracks/:trackId/zones", h.Zone.List)
	api.Post("/tracks/:trackId/zones", jwt, h.Zone.Create)
	api.Patch("/tracks/:trackId/zones/:zoneId", jwt, h.Zone.Update)
	api.Delete("/tracks/:trackId/zones/:zoneId", jwt, h.Zone.Delete)
	api.Post("/tracks/:trackId/zones/:zoneId/tips", jwt, h.Zone.CreateTip)
	api.Delete("/tracks/:trackId/zones/:zoneId/tips/:tipId", jwt, h.Zone.DeleteTip)

	// Reviews
	api.Get("/tracks/:trackId/reviews", h.Review.List)
	api.Post("/tracks/:trackId/reviews", jwt, h.Review.Create)

	// Garage
	api.Get("/cars", jwt, h.Garage.ListCars)
	api.Post("/cars", jwt, h.Garage.CreateCar)
	api.Get("/cars/:carId", jwt, h.Garage.GetCar)
	api.Put("/cars/:carId", jwt, h.Garage.UpdateCar)
	api.Delete("/cars/:carId", jwt, h.Garage.DeleteCar)
	api.Post("/cars/:carId/mods", jwt, h.Garage.CreateMod)
	api.Delete("/cars/:carId/mods/:modId", jwt, h.Garage.DeleteMod)

	// Lapbook
	api.Get("/lapbook", jwt, h.Lapbook.List)
	api.Post("/lapbook", jwt, h.Lapbook.Create)
	api.Delete("/lapbook/:recordId", jwt, h.Lapbook.Delete)

	// Profile
	api.Get("/profile", jwt, h.Profile.Get)
	api.Put("/profile", jwt, h.Profile.Update)

	// Uploads
	api.Post("/upload", jwt, h.Upload.UploadTrackImage)
	app.Static("/uploads", cfg.UploadDir)

	// Admin
	admin := api.Group("/admin", jwt, middleware.AdminRequired(cfg))
	admin.Post("/sync-tracks", h.Admin.SyncTracks)
}
