package config

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const clockLayout = "15:04"

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Booking struct {
		FirstSlot              string `envconfig:"FIRST_SLOT"               default:"09:00"`
		LastSlot               string `envconfig:"LAST_SLOT"                default:"18:00"`
		SlotMinutes            int    `envconfig:"SLOT_MINUTES"             default:"60"`
		DefaultDurationMinutes int    `envconfig:"DEFAULT_DURATION_MINUTES" default:"60"`
		MaxDurationMinutes     int    `envconfig:"MAX_DURATION_MINUTES"     default:"480"`
		AllowPastStart         bool   `envconfig:"ALLOW_PAST_START"`
		AvailabilityTTLSeconds int    `envconfig:"AVAILABILITY_TTL_SECONDS" default:"30"`
	} `envconfig:"BOOKING"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

var errInvalidBooking = errors.New("invalid booking configuration")

// Validate checks the booking window before any slot grid is built from it.
func (c *Config) Validate() error {
	first, err := time.Parse(clockLayout, c.Booking.FirstSlot)
	if err != nil {
		return fmt.Errorf("%w: BOOKING_FIRST_SLOT %q is not HH:MM", errInvalidBooking, c.Booking.FirstSlot)
	}

	last, err := time.Parse(clockLayout, c.Booking.LastSlot)
	if err != nil {
		return fmt.Errorf("%w: BOOKING_LAST_SLOT %q is not HH:MM", errInvalidBooking, c.Booking.LastSlot)
	}

	switch {
	case last.Before(first):
		return fmt.Errorf("%w: last slot %s precedes first slot %s", errInvalidBooking, c.Booking.LastSlot, c.Booking.FirstSlot)
	case c.Booking.SlotMinutes <= 0:
		return fmt.Errorf("%w: slot length must be positive", errInvalidBooking)
	case c.Booking.DefaultDurationMinutes <= 0 || c.Booking.DefaultDurationMinutes > c.Booking.MaxDurationMinutes:
		return fmt.Errorf("%w: default duration must be within 1..%d minutes", errInvalidBooking, c.Booking.MaxDurationMinutes)
	}

	return nil
}

// Init loads .env when present, then the process environment. A missing .env is not an error.
func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("No .env file, reading configuration from the environment only")
		}

		if err = envconfig.Process("", &conf); err != nil {
			err = fmt.Errorf("processing environment: %w", err)

			return
		}

		if err = conf.Validate(); err != nil {
			return
		}

		initialized = true

		log.Info().Str("env", conf.Server.Env).Msg("Clinic configuration loaded")
	})

	return err
}

// Get returns the shared configuration, initializing it on first use.
func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
