// Package config manages application configuration for the Holocron API.
//
// Configuration is read from environment variables after .env.local and .env
// are loaded with godotenv. Variables already present in the environment win.
//
//	cfg, err := config.Load()
//	if err == nil {
//	    err = cfg.Validate()
//	}
//
// # Environment Variables
//
//	SERVER_PORT / PORT     - HTTP server port (default: 3000)
//	SERVER_ENV             - development, production or test
//	CORS_ALLOWED_ORIGINS   - comma separated, "*" allows any origin (default: *)
//	DATABASE_URL           - postgres:// or postgresql:// URL, sqlite:///relative.db,
//	                         sqlite:////absolute.db or a file: DSN;
//	                         unset means sqlite at /tmp/test.db
//	DB_QUERY_TIMEOUT       - per statement timeout (default: 5s)
//	LOG_LEVEL              - debug, info, warn or error (default: info)
//	STATS_INTERVAL         - table stats job period, 0 disables it (default: 1m)
package config
