package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	// Load env from .env
	godotenv.Load()
}

// GetBaseURL returns the NocoBase API base URL (no trailing slash).
func GetBaseURL() string {
	return strings.TrimRight(strings.TrimSpace(os.Getenv("BASE_URL")), "/")
}

// GetAPIKey returns the NocoBase bearer token.
func GetAPIKey() string {
	return strings.TrimSpace(os.Getenv("API_KEY"))
}

// GetCacheTTL returns the stats cache lifespan. Defaults to 5 minutes.
func GetCacheTTL() time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(os.Getenv("CACHE_TTL_SECONDS")))
	if err != nil || seconds <= 0 {
		seconds = 300
	}
	return time.Duration(seconds) * time.Second
}
