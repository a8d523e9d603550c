package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/forgo/holocron/api/internal/database"
)

// Default sqlite database file used when DATABASE_URL is unset
const DefaultSQLitePath = "/tmp/test.db"

const sqliteMemoryDSN = "file::memory:?cache=shared"

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Jobs     JobsConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string
	Env            string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

// DatabaseConfig holds store connection settings
type DatabaseConfig struct {
	Driver       string
	DSN          string
	QueryTimeout time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// JobsConfig holds background job settings
type JobsConfig struct {
	// StatsInterval is how often table row counts are published; 0 disables the job
	StatsInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// Values from .env.local and .env fill in variables the environment leaves unset.
func Load() (*Config, error) {
	loadEnvFiles()

	driver, dsn, err := ParseDatabaseURL(os.Getenv("DATABASE_URL"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", getEnv("PORT", "3000")),
			Env:            getEnv("SERVER_ENV", "development"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Driver:       driver,
			DSN:          dsn,
			QueryTimeout: getDurationEnv("DB_QUERY_TIMEOUT", 5*time.Second),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Jobs: JobsConfig{
			StatsInterval: getDurationEnv("STATS_INTERVAL", time.Minute),
		},
	}, nil
}

// loadEnvFiles loads .env files. godotenv never overrides a variable that is
// already set, so .env.local is loaded first to take precedence over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// ParseDatabaseURL maps DATABASE_URL onto a driver name and DSN. sqlite
// URLs follow the SQLAlchemy form: three slashes precede a relative path,
// four an absolute one, and a bare sqlite:// is an in-memory database.
//
//	""                          -> sqlite3, /tmp/test.db
//	postgres://...              -> postgres, postgresql://...
//	postgresql://...            -> postgres, unchanged
//	sqlite:///app.db            -> sqlite3, app.db
//	sqlite:////var/lib/app.db   -> sqlite3, /var/lib/app.db
//	sqlite://                   -> sqlite3, shared in-memory database
//	file:app.db?mode=memory     -> sqlite3, unchanged
func ParseDatabaseURL(url string) (driver, dsn string, err error) {
	switch {
	case url == "":
		return database.DriverSQLite, DefaultSQLitePath, nil
	case strings.HasPrefix(url, "postgres://"):
		return database.DriverPostgres, "postgresql://" + strings.TrimPrefix(url, "postgres://"), nil
	case strings.HasPrefix(url, "postgresql://"):
		return database.DriverPostgres, url, nil
	case url == "sqlite://":
		return database.DriverSQLite, sqliteMemoryDSN, nil
	case strings.HasPrefix(url, "sqlite:///"):
		path := strings.TrimPrefix(url, "sqlite:///")
		if path == "" || path == "/" {
			return "", "", fmt.Errorf("DATABASE_URL %q has no sqlite path", url)
		}
		return database.DriverSQLite, path, nil
	case strings.HasPrefix(url, "sqlite:"):
		return "", "", fmt.Errorf("DATABASE_URL %q must be sqlite:///relative/path or sqlite:////absolute/path", url)
	case strings.HasPrefix(url, "file:"):
		return database.DriverSQLite, url, nil
	default:
		return "", "", fmt.Errorf("DATABASE_URL scheme not supported: %q", redact(url))
	}
}

// redact hides everything after the scheme so credentials never reach logs
func redact(url string) string {
	if i := strings.Index(url, "://"); i >= 0 {
		return url[:i] + "://***"
	}
	return "***"
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// NewLogger builds the application logger: human-readable text in
// development, JSON otherwise, filtered at LOG_LEVEL.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.IsDevelopment() {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// SlogLevel converts LOG_LEVEL to a slog.Level. Unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	} else if p, err := strconv.Atoi(c.Server.Port); err != nil || p < 1 || p > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT must be a port number, got '%s'", c.Server.Port))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	// Database validation
	if c.Database.Driver != database.DriverSQLite && c.Database.Driver != database.DriverPostgres {
		errs = append(errs, fmt.Errorf("DATABASE_URL must select sqlite3 or postgres, got '%s'", c.Database.Driver))
	}
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("DATABASE_URL resolved to an empty DSN"))
	}
	if c.Database.QueryTimeout <= 0 {
		errs = append(errs, errors.New("DB_QUERY_TIMEOUT must be positive"))
	}

	// Log validation
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be debug, info, warn, or error, got '%s'", c.Log.Level))
	}

	if c.Jobs.StatsInterval < 0 {
		errs = append(errs, errors.New("STATS_INTERVAL must not be negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		return origins
	}
	return defaultValue
}
