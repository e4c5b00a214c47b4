package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
)

type Config struct {
	Addr           string
	StorageDriver  string
	DBPath         string
	DataDir        string
	LogLevel       string
	LogFormat      string
	StatsTimezone  string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	LeaderboardTTL time.Duration
	DefaultUserID  string
	SeedFile       string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:           envOr("ADDR", ":5001"),
		StorageDriver:  strings.ToLower(envOr("STORAGE_DRIVER", DriverSQLite)),
		DBPath:         envOr("DB_PATH", "file:jeeprep.db"),
		DataDir:        envOr("DATA_DIR", "data"),
		LogLevel:       envOr("LOG_LEVEL", "INFO"),
		LogFormat:      envOr("LOG_FORMAT", "text"),
		StatsTimezone:  envOr("STATS_TIMEZONE", "UTC"),
		RedisAddr:      envOr("REDIS_ADDR", ""),
		RedisPassword:  envOr("REDIS_PASSWORD", ""),
		RedisDB:        envIntOr("REDIS_DB", 0),
		LeaderboardTTL: envDurationOr("LEADERBOARD_TTL", 5*time.Minute),
		DefaultUserID:  envOr("DEFAULT_USER_ID", "user1"),
		SeedFile:       envOr("SEED_FILE", ""),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("ADDR cannot be empty"))
	}
	switch c.StorageDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			errs = append(errs, errors.New("DB_PATH cannot be empty when STORAGE_DRIVER=sqlite"))
		}
	case DriverFile:
		if c.DataDir == "" {
			errs = append(errs, errors.New("DATA_DIR cannot be empty when STORAGE_DRIVER=file"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", DriverSQLite, DriverFile, c.StorageDriver))
	}
	if _, err := time.LoadLocation(c.StatsTimezone); err != nil {
		errs = append(errs, fmt.Errorf("STATS_TIMEZONE %q is not a valid IANA zone: %w", c.StatsTimezone, err))
	}
	if c.RedisDB < 0 {
		errs = append(errs, errors.New("REDIS_DB cannot be negative"))
	}
	if c.LeaderboardTTL < 0 {
		errs = append(errs, errors.New("LEADERBOARD_TTL cannot be negative"))
	}
	if strings.TrimSpace(c.DefaultUserID) == "" {
		errs = append(errs, errors.New("DEFAULT_USER_ID cannot be empty"))
	}
	return errors.Join(errs...)
}

// Location returns the time zone used for day boundaries in stats.
// Callers are expected to have run Validate first.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.StatsTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}
