package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/filmscores/backend/internal/config"
	"github.com/filmscores/backend/internal/scraper"
	"github.com/filmscores/backend/pkg/fetcher"
	"github.com/filmscores/backend/pkg/logger"
)

type ActivityResponse struct {
	Username      string               `json:"username"`
	RecentRatings []scraper.UserRating `json:"recent_ratings"`
}

type Handler struct {
	cfg *config.Config
}

func SetupRoutes(app *fiber.App, cfg *config.Config) {
	h := &Handler{cfg: cfg}
	app.Get("/", h.handleHome)
	app.Get("/health", h.handleHealth)
	app.Get("/all-ratings", h.handleAllRatings)
	app.Get("/user/filmweb/:username", h.handleUserActivity)
}

func (h *Handler) handleHome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"usage":  "/all-ratings?title=Matrix&year=1999",
	})
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) handleAllRatings(c *fiber.Ctx) error {
	log := logger.Log

	title := c.Query("title")
	year := c.Query("year")
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	log.Info().Str("title", title).Str("year", year).Msg("combined ratings request")

	// One fetcher per request: the three scrapers share its connection
	// pool and it is torn down on every exit path.
	f := fetcher.New(
		fetcher.WithTimeout(h.cfg.FetchTimeout),
		fetcher.WithUserAgent(h.cfg.UserAgent),
		fetcher.WithAcceptLanguage(h.cfg.AcceptLanguage),
	)
	defer f.Close()

	start := time.Now()
	data := scraper.NewAggregator(f).CombinedRatings(c.Context(), title, year)

	log.Info().
		Str("title", title).
		Int64("time_ms", time.Since(start).Milliseconds()).
		Msg("combined ratings completed")

	return c.JSON(data)
}

func (h *Handler) handleUserActivity(c *fiber.Ctx) error {
	log := logger.Log

	username := c.Params("username")
	if username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "username is required"})
	}

	log.Info().Str("username", username).Msg("user activity request")

	// No timeout override here; the fetcher default applies.
	f := fetcher.New(
		fetcher.WithUserAgent(h.cfg.UserAgent),
		fetcher.WithAcceptLanguage(h.cfg.AcceptLanguage),
	)
	defer f.Close()

	ratings := scraper.NewFilmweb(f).RecentActivity(c.Context(), username)

	return c.JSON(ActivityResponse{
		Username:      username,
		RecentRatings: ratings,
	})
}
