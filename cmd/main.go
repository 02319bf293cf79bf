package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/filmscores/backend/internal/api"
	"github.com/filmscores/backend/internal/config"
	"github.com/filmscores/backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.IsDev())
	log := logger.Log

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(cors.New())
	api.SetupRoutes(app, cfg)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("shutdown error")
		}
	}()

	addr := ":" + cfg.HTTPPort
	log.Info().
		Str("addr", addr).
		Dur("fetch_timeout", cfg.FetchTimeout).
		Msg("ratings API starting")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("HTTP server error")
	}
}
