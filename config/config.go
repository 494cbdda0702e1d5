package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// HTTP
	HTTPAddr       string   `envconfig:"HTTP_ADDR" default:":9090"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS"`

	// Booking provider
	UpstreamBaseURL    string        `envconfig:"UPSTREAM_BASE_URL" required:"true"`
	UpstreamAPIKey     string        `envconfig:"UPSTREAM_API_KEY" required:"true"`
	UpstreamFacilityID string        `envconfig:"UPSTREAM_FACILITY_ID" required:"true"`
	UpstreamTimeout    time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	ClubLatitude       float64       `envconfig:"CLUB_LATITUDE" default:"0"`
	ClubLongitude      float64       `envconfig:"CLUB_LONGITUDE" default:"0"`

	// Courts maps a court number to the provider club id, e.g. "1:club-a,2:club-b".
	Courts       map[int]string `envconfig:"COURTS" required:"true"`
	ClubTimezone string         `envconfig:"CLUB_TIMEZONE" default:"Europe/Paris"`

	// Session
	SessionSecret string        `envconfig:"SESSION_SECRET" required:"true"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"12h"`
	SecureCookie  bool          `envconfig:"SECURE_COOKIE" default:"true"`

	PrimeDirectory bool `envconfig:"PRIME_DIRECTORY" default:"true"`
}

// Load reads an optional .env file then the process environment.
func Load() (App, error) {
	if err := godotenv.Load(); err != nil {
		slog.Default().With("component", "config").Warn("no .env file loaded", "err", err)
	}

	var c App
	if err := envconfig.Process("", &c); err != nil {
		return App{}, fmt.Errorf("failed to load config: %w", err)
	}

	if len(c.Courts) == 0 {
		return App{}, fmt.Errorf("failed to load config: COURTS cannot be empty")
	}

	return c, nil
}

// Location falls back to the local zone when the configured one is unknown.
func (c App) Location() *time.Location {
	loc, err := time.LoadLocation(c.ClubTimezone)

	if err != nil {
		return time.Now().Location()
	}

	return loc
}
