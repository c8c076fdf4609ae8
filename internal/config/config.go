package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
)

// Database holds the relational store connection settings.
type Database struct {
	Host     string `mapstructure:"host" default:"localhost" debugmap:"visible"`
	Port     int    `mapstructure:"port" default:"3306" debugmap:"visible"`
	User     string `mapstructure:"user" default:"" debugmap:"visible"`
	Password string `mapstructure:"password" default:"" debugmap:"hidden"`
	Name     string `mapstructure:"name" default:"" debugmap:"visible"`
	Charset  string `mapstructure:"charset" default:"utf8mb4" debugmap:"visible"`

	// MaxOpenConns bounds the connection pool. Concurrent operations
	// each scope their own connection from it.
	MaxOpenConns int `mapstructure:"max_open_conns" default:"8" debugmap:"visible"`
}

// App identifies the application on report banners and title pages.
type App struct {
	Name     string `mapstructure:"name" default:"WINESTORE" debugmap:"visible"`
	Version  string `mapstructure:"version" default:"1.0.0" debugmap:"visible"`
	Operator string `mapstructure:"operator" default:"" debugmap:"visible"`
}

// Server holds the shell-facing HTTP settings.
type Server struct {
	Mode     string `mapstructure:"mode" default:"dev" debugmap:"visible"`
	HTTPPort int    `mapstructure:"http_port" default:"8000" debugmap:"visible"`
}

// Export holds report-generation settings.
type Export struct {
	Dir        string `mapstructure:"dir" default:"exports" debugmap:"visible"`
	NumWorkers int    `mapstructure:"num_workers" default:"3" debugmap:"visible"`
}

type Configuration struct {
	Database Database `mapstructure:"database"`
	App      App      `mapstructure:"app"`
	Server   Server   `mapstructure:"server"`
	Export   Export   `mapstructure:"export"`
	LogLevel string   `mapstructure:"log_level" default:"info" debugmap:"visible"`
}

// Load builds the configuration from environment variables prefixed with
// WINESTORE_ (WINESTORE_DATABASE_HOST, WINESTORE_APP_OPERATOR, ...) on
// top of struct defaults.
func Load() (*Configuration, error) {
	v := viper.New()
	v.SetEnvPrefix("winestore")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Configuration{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	for _, key := range []string{
		"database.host", "database.port", "database.user", "database.password",
		"database.name", "database.charset", "database.max_open_conns",
		"app.name", "app.version", "app.operator",
		"server.mode", "server.http_port",
		"export.dir", "export.num_workers",
		"log_level",
	} {
		if v.IsSet(key) {
			if err := setField(cfg, key, v); err != nil {
				return nil, err
			}
		}
	}

	return cfg, nil
}

func setField(cfg *Configuration, key string, v *viper.Viper) error {
	switch key {
	case "database.host":
		cfg.Database.Host = v.GetString(key)
	case "database.port":
		cfg.Database.Port = v.GetInt(key)
	case "database.user":
		cfg.Database.User = v.GetString(key)
	case "database.password":
		cfg.Database.Password = v.GetString(key)
	case "database.name":
		cfg.Database.Name = v.GetString(key)
	case "database.charset":
		cfg.Database.Charset = v.GetString(key)
	case "database.max_open_conns":
		cfg.Database.MaxOpenConns = v.GetInt(key)
	case "app.name":
		cfg.App.Name = v.GetString(key)
	case "app.version":
		cfg.App.Version = v.GetString(key)
	case "app.operator":
		cfg.App.Operator = v.GetString(key)
	case "server.mode":
		cfg.Server.Mode = v.GetString(key)
	case "server.http_port":
		cfg.Server.HTTPPort = v.GetInt(key)
	case "export.dir":
		cfg.Export.Dir = v.GetString(key)
	case "export.num_workers":
		cfg.Export.NumWorkers = v.GetInt(key)
	case "log_level":
		cfg.LogLevel = v.GetString(key)
	default:
		return fmt.Errorf("unknown configuration key %q", key)
	}
	return nil
}

// Validate checks the settings startup cannot proceed without.
func (c *Configuration) Validate() error {
	var errs []error
	if c.Database.Host == "" {
		errs = append(errs, errors.New("database host is empty"))
	}
	if c.Database.User == "" {
		errs = append(errs, errors.New("database user is empty"))
	}
	if c.Database.Name == "" {
		errs = append(errs, errors.New("database name is empty"))
	}
	if c.Server.Mode != "dev" && c.Server.Mode != "prod" {
		errs = append(errs, fmt.Errorf("invalid server mode %q: must be 'dev' or 'prod'", c.Server.Mode))
	}
	if c.Export.NumWorkers < 1 {
		errs = append(errs, errors.New("export worker count must be at least 1"))
	}
	return errors.Join(errs...)
}

// DSN renders the MySQL connection string for database/sql.
func (c *Configuration) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.Database.User
	mc.Passwd = c.Database.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port)
	mc.DBName = c.Database.Name
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": c.Database.Charset}
	return mc.FormatDSN()
}

// DebugMap returns the configuration as a loggable map, hiding fields
// tagged debugmap:"hidden".
func (c *Configuration) DebugMap() map[string]any {
	return map[string]any{
		"database": map[string]any{
			"host":           c.Database.Host,
			"port":           c.Database.Port,
			"user":           c.Database.User,
			"name":           c.Database.Name,
			"charset":        c.Database.Charset,
			"max_open_conns": c.Database.MaxOpenConns,
		},
		"app": map[string]any{
			"name":     c.App.Name,
			"version":  c.App.Version,
			"operator": c.App.Operator,
		},
		"server": map[string]any{
			"mode":      c.Server.Mode,
			"http_port": c.Server.HTTPPort,
		},
		"export": map[string]any{
			"dir":         c.Export.Dir,
			"num_workers": c.Export.NumWorkers,
		},
		"log_level": c.LogLevel,
	}
}
