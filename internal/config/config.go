package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once at startup from the environment; a local .env file
// is loaded first when present.
type Config struct {
	Port          string
	ExportDir     string
	DebounceDelay time.Duration
	LogLevel      string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:          getenv("PORT", "3000"),
		ExportDir:     getenv("EXPORT_DIR", "exports"),
		DebounceDelay: durationMs("DEBOUNCE_MS", 500*time.Millisecond),
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationMs(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
