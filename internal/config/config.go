package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/amidi-app/meteodial/internal/weather"
)

type AppConfig struct {
	// HTTPTimeout applies to outbound calls to the weather APIs.
	HTTPTimeout time.Duration

	// CacheTTL is how long a fetched snapshot stays valid per coordinate.
	CacheTTL time.Duration

	// RefreshInterval controls the background cache-warming job.
	RefreshInterval time.Duration

	// DefaultLocation is served until the user selects their own.
	DefaultLocation weather.Location

	// PrefsPath is the SQLite file holding the selected location.
	PrefsPath string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	timeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	// Snapshot freshness window: default 15 minutes.
	ttl, err := getenvDuration("CACHE_TTL", "15m")
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	refresh, err := getenvDuration("REFRESH_INTERVAL", "15m")
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = refresh

	cfg.DefaultLocation = loadDefaultLocation()
	cfg.PrefsPath = getenvDefault("PREFS_DB_PATH", "meteodial.db")
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func loadDefaultLocation() weather.Location {
	name := os.Getenv("DEFAULT_LOCATION_NAME")
	latStr := os.Getenv("DEFAULT_LOCATION_LAT")
	lonStr := os.Getenv("DEFAULT_LOCATION_LON")
	if name == "" || latStr == "" || lonStr == "" {
		return weather.Kutaisi
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil {
		log.Printf("INFO: invalid DEFAULT_LOCATION_LAT/LON, falling back to %s", weather.Kutaisi.Name)
		return weather.Kutaisi
	}

	return weather.NewLocation(name, lat, lon)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	return time.ParseDuration(getenvDefault(key, def))
}
