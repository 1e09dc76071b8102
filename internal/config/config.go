// Package config loads client configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

// Config carries everything the client and the stub server read from the
// environment.
type Config struct {
	// BaseURL is the single configured API origin every request goes to.
	BaseURL string
	// SessionFile is where the session slice is persisted across restarts.
	SessionFile string
	// StubAddr is the listen address for the stub API server.
	StubAddr string
	// StubSecret signs the stub server's session cookies.
	StubSecret string
	// RateLimitPerSecond caps login attempts on the stub server.
	RateLimitPerSecond int
}

// Load reads the configuration, applying defaults for anything unset.
func Load() Config {
	return Config{
		BaseURL:            getenv("API_BASE_URL", "http://localhost:8080"),
		SessionFile:        getenv("SESSION_FILE", defaultSessionFile()),
		StubAddr:           getenv("STUB_ADDR", ":8080"),
		StubSecret:         getenv("STUB_SECRET", "dev-secret"),
		RateLimitPerSecond: getenvInt("RATE_LIMIT_PER_SECOND", 5),
	}
}

func defaultSessionFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "joblane", "session.json")
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
