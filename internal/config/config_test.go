package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validBaseConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidServerEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "invalid"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid SERVER_ENV")
	}
	if !strings.Contains(err.Error(), "SERVER_ENV") {
		t.Errorf("expected error to mention SERVER_ENV, got: %v", err)
	}
}

func TestConfig_Validate_BadPort(t *testing.T) {
	for _, port := range []string{"", "http", "0", "70000"} {
		cfg := validBaseConfig()
		cfg.Server.Port = port

		err := cfg.Validate()
		if err == nil {
			t.Errorf("expected error for SERVER_PORT %q", port)
			continue
		}
		if !strings.Contains(err.Error(), "SERVER_PORT") {
			t.Errorf("expected error to mention SERVER_PORT, got: %v", err)
		}
	}
}

func TestConfig_Validate_EmptyAllowedOrigins(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.AllowedOrigins = []string{}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for empty CORS_ALLOWED_ORIGINS")
	}
	if !strings.Contains(err.Error(), "CORS_ALLOWED_ORIGINS") {
		t.Errorf("expected error to mention CORS_ALLOWED_ORIGINS, got: %v", err)
	}
}

func TestConfig_Validate_UnknownDriver(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Database.Driver = "mysql"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
	if !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("expected error to mention DATABASE_URL, got: %v", err)
	}
}

func TestConfig_Validate_NegativeStatsInterval(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Jobs.StatsInterval = -time.Second

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for negative stats interval")
	}
	if !strings.Contains(err.Error(), "STATS_INTERVAL") {
		t.Errorf("expected error to mention STATS_INTERVAL, got: %v", err)
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           "",
			Env:            "invalid",
			AllowedOrigins: []string{},
		},
		Log: LogConfig{Level: "chatty"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected multiple validation errors")
	}

	errStr := err.Error()
	expectedFields := []string{"SERVER_PORT", "SERVER_ENV", "CORS_ALLOWED_ORIGINS", "DATABASE_URL", "DB_QUERY_TIMEOUT", "LOG_LEVEL"}
	for _, field := range expectedFields {
		if !strings.Contains(errStr, field) {
			t.Errorf("expected error to mention %s, got: %v", field, err)
		}
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Env: "development"}}
	assert.True(t, cfg.IsDevelopment())

	cfg.Server.Env = "production"
	assert.False(t, cfg.IsDevelopment())
}

func TestConfig_NewLogger(t *testing.T) {
	tests := []struct {
		env      string
		wantJSON bool
	}{
		{"development", false},
		{"test", true},
		{"production", true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := &Config{Server: ServerConfig{Env: tt.env}, Log: LogConfig{Level: "warn"}}
			var buf strings.Builder
			logger := cfg.NewLogger(&buf)

			logger.Info("hidden")
			logger.Warn("shown", slog.String("planet", "Hoth"))

			out := buf.String()
			assert.NotContains(t, out, "hidden")
			if tt.wantJSON {
				assert.Contains(t, out, `"planet":"Hoth"`)
			} else {
				assert.Contains(t, out, "planet=Hoth")
			}
		})
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"loud":  slog.LevelInfo,
	}

	for in, want := range tests {
		cfg := &Config{Log: LogConfig{Level: in}}
		assert.Equal(t, want, cfg.SlogLevel(), "LOG_LEVEL %q", in)
	}
}

// ============================================================================
// DATABASE_URL Tests
// ============================================================================

func TestParseDatabaseURL(t *testing.T) {
	tests := []struct {
		url        string
		wantDriver string
		wantDSN    string
	}{
		{"", "sqlite3", "/tmp/test.db"},
		{"postgres://u:p@db:5432/holocron", "postgres", "postgresql://u:p@db:5432/holocron"},
		{"postgresql://u:p@db/holocron?sslmode=disable", "postgres", "postgresql://u:p@db/holocron?sslmode=disable"},
		{"sqlite:////var/lib/holocron.db", "sqlite3", "/var/lib/holocron.db"},
		{"sqlite:///holocron.db", "sqlite3", "holocron.db"},
		{"sqlite:///data/holocron.db", "sqlite3", "data/holocron.db"},
		{"sqlite://", "sqlite3", "file::memory:?cache=shared"},
		{"file:holocron.db?mode=memory", "sqlite3", "file:holocron.db?mode=memory"},
	}

	for _, tt := range tests {
		driver, dsn, err := ParseDatabaseURL(tt.url)
		require.NoError(t, err, "url %q", tt.url)
		assert.Equal(t, tt.wantDriver, driver, "url %q", tt.url)
		assert.Equal(t, tt.wantDSN, dsn, "url %q", tt.url)
	}
}

func TestParseDatabaseURL_Unsupported(t *testing.T) {
	_, _, err := ParseDatabaseURL("mysql://root:hunter2@db/holocron")

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "hunter2")

	for _, url := range []string{"sqlite:///", "sqlite:////", "sqlite://holocron.db", "sqlite:holocron.db"} {
		_, _, err = ParseDatabaseURL(url)
		assert.Error(t, err, "url %q", url)
	}
}

// ============================================================================
// Load Tests
// ============================================================================

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"SERVER_PORT", "PORT", "SERVER_ENV", "CORS_ALLOWED_ORIGINS", "DATABASE_URL", "DB_QUERY_TIMEOUT", "LOG_LEVEL", "STATS_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, DefaultSQLitePath, cfg.Database.DSN)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, time.Minute, cfg.Jobs.StatsInterval)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PortFallbackAndOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PORT", "5000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DATABASE_URL", "postgres://rebel@base/echo")
	t.Setenv("DB_QUERY_TIMEOUT", "250ms")
	t.Setenv("STATS_INTERVAL", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgresql://rebel@base/echo", cfg.Database.DSN)
	assert.Equal(t, 250*time.Millisecond, cfg.Database.QueryTimeout)
	assert.Zero(t, cfg.Jobs.StatsInterval)
}

func TestLoad_EnvFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	// godotenv only fills variables that are absent, not ones set to ""
	for _, key := range []string{"LOG_LEVEL", "SERVER_ENV"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nSERVER_ENV=test\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("LOG_LEVEL=warn\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "test", cfg.Server.Env)
}

// validBaseConfig returns a minimal valid configuration for testing
func validBaseConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "3000",
			Env:            "development",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			AllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Driver:       "sqlite3",
			DSN:          "/tmp/test.db",
			QueryTimeout: 5 * time.Second,
		},
		Log: LogConfig{Level: "info"},
	}
}
