package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"bookingdesk/internal/domain/booking"
)

const defaultJWTSecret = "change-me-jwt-secret"

type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"dev"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":3000"`
	GinMode  string `envconfig:"GIN_MODE" default:"debug"`

	DatabaseURL string `envconfig:"DATABASE_URL" default:"bookings.db"`

	JWTSecret  string        `envconfig:"JWT_SECRET" default:"change-me-jwt-secret"`
	JWTTTL     time.Duration `envconfig:"JWT_TTL" default:"24h"`
	BcryptCost int           `envconfig:"BCRYPT_COST" default:"10"`

	// AllowClientIDs trusts userId/adminId sent by the client when no bearer
	// token is present. Legacy frontends only.
	AllowClientIDs bool `envconfig:"AUTH_ALLOW_CLIENT_IDS" default:"false"`
	StrictStatus   bool `envconfig:"API_STRICT_STATUS" default:"false"`

	RequireKnownUser bool   `envconfig:"BOOKING_REQUIRE_KNOWN_USER" default:"true"`
	RevalidateOnEdit bool   `envconfig:"BOOKING_REVALIDATE_ON_EDIT" default:"false"`
	OpenAt           string `envconfig:"BOOKING_OPEN" default:"09:00"`
	CloseAt          string `envconfig:"BOOKING_CLOSE" default:"17:00"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile     string `envconfig:"LOG_FILE"`
	DefaultLang string `envconfig:"DEFAULT_LANG" default:"en"`
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BookingPolicy builds the validator policy from the booking settings.
func (c *Config) BookingPolicy() (booking.Policy, error) {
	open, err := booking.ParseClock(c.OpenAt)
	if err != nil {
		return booking.Policy{}, fmt.Errorf("invalid BOOKING_OPEN value %q: %w", c.OpenAt, err)
	}
	closeAt, err := booking.ParseClock(c.CloseAt)
	if err != nil {
		return booking.Policy{}, fmt.Errorf("invalid BOOKING_CLOSE value %q: %w", c.CloseAt, err)
	}
	return booking.Policy{
		RequireKnownUser: c.RequireKnownUser,
		RevalidateOnEdit: c.RevalidateOnEdit,
		Open:             open,
		Close:            closeAt,
	}, nil
}

func (c *Config) IsProdLike() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}

	policy, err := cfg.BookingPolicy()
	if err != nil {
		return err
	}
	if policy.Open.Minutes() >= policy.Close.Minutes() {
		return fmt.Errorf("BOOKING_OPEN must be before BOOKING_CLOSE")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.AllowClientIDs {
			return fmt.Errorf("in prod/release AUTH_ALLOW_CLIENT_IDS must be false")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}
