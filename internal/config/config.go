package config

import (
	"os"
	"time"
)

type Config struct {
	HTTPPort string

	// FetchTimeout bounds every fetch in the movie-lookup flow. The
	// user-activity flow uses the fetcher's own default instead.
	FetchTimeout   time.Duration
	UserAgent      string
	AcceptLanguage string
}

func Load() *Config {
	return &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8000"),
		FetchTimeout:   getEnvDuration("FETCH_TIMEOUT", 10*time.Second),
		UserAgent:      getEnv("USER_AGENT", ""),
		AcceptLanguage: getEnv("ACCEPT_LANGUAGE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
