package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/mindcarehq/mindcare-backend/internal/config"
	"github.com/mindcarehq/mindcare-backend/internal/handlers"
	"github.com/mindcarehq/mindcare-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	moodHandler *handlers.MoodHandler,
	emotionHandler *handlers.EmotionHandler,
	journalHandler *handlers.JournalHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth is public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Moods (JWT required)
	moods := api.Group("/moods", middleware.JWTProtected(cfg))
	moods.Post("/", moodHandler.Log)
	moods.Get("/", moodHandler.History)
	moods.Get("/summary/weekly", moodHandler.WeeklySummary)
	moods.Get("/summary/monthly", moodHandler.MonthlySummary)
	moods.Get("/insights", moodHandler.Insights)
	moods.Get("/export-pdf", moodHandler.ExportPDF)
	moods.Post("/detect-emotion", emotionHandler.Detect)
	moods.Post("/journal", journalHandler.Create)
	moods.Get("/journal", journalHandler.History)
}
