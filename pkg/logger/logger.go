// Package logger holds the process-wide zerolog logger. Call Init once
// at startup; packages then log through logger.Log.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var Log zerolog.Logger

// Init configures the global logger: human-readable console output in
// dev, JSON lines otherwise.
func Init(dev bool) {
	zerolog.TimeFieldFormat = time.RFC3339

	if dev {
		Log = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		}).With().Timestamp().Logger()
		return
	}
	Log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func IsDev() bool {
	env := os.Getenv("ENV")
	return env == "" || env == "dev" || env == "development"
}
