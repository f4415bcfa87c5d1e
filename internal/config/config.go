package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/templui/inorbit/internal/week"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string
	AutoMigrate  bool

	// Week boundaries
	WeekStart time.Weekday
	Location  *time.Location

	// Observability (optional)
	SentryDSN string

	// Storage for week exports (S3-compatible: MinIO, AWS S3, Cloudflare R2, etc.)
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string
	S3PresignExpiry time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() *Config {
	return &Config{
		// Application
		AppName: envString("APP_NAME", "inorbit"),
		AppEnv:  envString("APP_ENV", "development"),
		Port:    envString("PORT", "3333"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/inorbit.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),
		AutoMigrate:  envBool("AUTO_MIGRATE", true),

		// Week
		WeekStart: envWeekday("WEEK_START", time.Sunday),
		Location:  envLocation("TIMEZONE", time.Local),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage
		S3Region:        envString("S3_REGION", ""),
		S3Bucket:        envString("S3_BUCKET", ""),
		S3AccessKey:     envString("S3_ACCESS_KEY", ""),
		S3SecretKey:     envString("S3_SECRET_KEY", ""),
		S3Endpoint:      envString("S3_ENDPOINT", ""),
		S3PresignExpiry: envDuration("S3_PRESIGN_EXPIRY", 1*time.Hour),
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envWeekday(key string, def time.Weekday) time.Weekday {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := week.ParseWeekday(v)
	if err != nil {
		slog.Warn("config invalid weekday, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envLocation(key string, def *time.Location) *time.Location {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	loc, err := time.LoadLocation(v)
	if err != nil {
		slog.Warn("config invalid timezone, using default", "key", key, "value", v, "default", def.String())
		return def
	}
	return loc
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// S3Enabled reports whether enough S3 settings are present to upload exports.
func (c *Config) S3Enabled() bool {
	return c.S3Region != "" && c.S3Bucket != ""
}
