// Package config defines the configuration structure for winestore.
//
// Configuration is organized into logical sections (Database, App, Server,
// Export) with defaults applied via creasty/defaults struct tags and
// environment overrides read through viper.
//
// # Database Configuration
//
//	┌────────────────┬───────────┬──────────────────────────────────────┐
//	│ Field          │ Default   │ Description                          │
//	├────────────────┼───────────┼──────────────────────────────────────┤
//	│ Host           │ localhost │ MySQL server host (required)         │
//	│ Port           │ 3306      │ MySQL server port                    │
//	│ User           │ ""        │ MySQL user (required)                │
//	│ Password       │ ""        │ MySQL password                       │
//	│ Name           │ ""        │ Database name (required)             │
//	│ Charset        │ utf8mb4   │ Connection character set             │
//	│ MaxOpenConns   │ 8         │ Connection pool bound                │
//	└────────────────┴───────────┴──────────────────────────────────────┘
//
// # App Configuration
//
//	┌──────────┬───────────┬────────────────────────────────────────────┐
//	│ Field    │ Default   │ Description                                │
//	├──────────┼───────────┼────────────────────────────────────────────┤
//	│ Name     │ WINESTORE │ Company name on report banners             │
//	│ Version  │ 1.0.0     │ Application version string                 │
//	│ Operator │ ""        │ Optional author name on title pages        │
//	└──────────┴───────────┴────────────────────────────────────────────┘
//
// # Server Configuration
//
//	┌──────────┬─────────┬──────────────────────────────────────────────┐
//	│ Field    │ Default │ Description                                  │
//	├──────────┼─────────┼──────────────────────────────────────────────┤
//	│ Mode     │ dev     │ Server mode: "prod" or "dev"                 │
//	│ HTTPPort │ 8000    │ HTTP server listen port                      │
//	└──────────┴─────────┴──────────────────────────────────────────────┘
//
// # Export Configuration
//
//	┌────────────┬─────────┬────────────────────────────────────────────┐
//	│ Field      │ Default │ Description                                │
//	├────────────┼─────────┼────────────────────────────────────────────┤
//	│ Dir        │ exports │ Directory report files are written to      │
//	│ NumWorkers │ 3       │ Scheduler worker pool size                 │
//	└────────────┴─────────┴────────────────────────────────────────────┘
//
// # Environment Variables
//
// Every key is overridable via WINESTORE_-prefixed variables with dots
// replaced by underscores:
//
//	WINESTORE_DATABASE_HOST=db.local
//	WINESTORE_DATABASE_USER=cellar
//	WINESTORE_DATABASE_NAME=winestore
//	WINESTORE_APP_OPERATOR="M. Petrov"
//	WINESTORE_LOG_LEVEL=debug
//
// # Validation
//
// Validate() requires database host, user, and name before startup
// proceeds, and rejects unknown server modes and a non-positive worker
// count. All failures are joined into a single error.
//
// # Debug Logging
//
// DebugMap() returns a map suitable for structured logging; fields tagged
// debugmap:"hidden" (the database password) are omitted:
//
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config
