package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Athletes  []string        `yaml:"athletes"`
	Store     StoreConfig     `yaml:"store"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

// StoreConfig selects and configures the record store backend.
type StoreConfig struct {
	Backend  string         `yaml:"backend"` // "sheets", "postgres" or "sqlite"
	Sheets   SheetsConfig   `yaml:"sheets"`
	Database DatabaseConfig `yaml:"database"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
}

type SheetsConfig struct {
	SpreadsheetID   string `yaml:"spreadsheet_id"`
	CredentialsFile string `yaml:"credentials_file"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix LIFTLOG_ and underscore-separated
// paths:
//
//	LIFTLOG_SERVER_HOST, LIFTLOG_SERVER_PORT, LIFTLOG_AUTH_API_KEY,
//	LIFTLOG_STORE_BACKEND, LIFTLOG_SHEETS_SPREADSHEET_ID,
//	LIFTLOG_SHEETS_CREDENTIALS_FILE, LIFTLOG_DB_HOST, LIFTLOG_DB_PORT,
//	LIFTLOG_DB_NAME, LIFTLOG_DB_USER, LIFTLOG_DB_PASSWORD,
//	LIFTLOG_DB_SSLMODE, LIFTLOG_SQLITE_PATH
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFTLOG_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("LIFTLOG_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LIFTLOG_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("LIFTLOG_STORE_BACKEND"); v != "" {
		cfg.Store.Backend = v
	}
	if v := os.Getenv("LIFTLOG_SHEETS_SPREADSHEET_ID"); v != "" {
		cfg.Store.Sheets.SpreadsheetID = v
	}
	if v := os.Getenv("LIFTLOG_SHEETS_CREDENTIALS_FILE"); v != "" {
		cfg.Store.Sheets.CredentialsFile = v
	}
	if v := os.Getenv("LIFTLOG_DB_HOST"); v != "" {
		cfg.Store.Database.Host = v
	}
	if v := os.Getenv("LIFTLOG_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Store.Database.Port = port
		}
	}
	if v := os.Getenv("LIFTLOG_DB_NAME"); v != "" {
		cfg.Store.Database.Name = v
	}
	if v := os.Getenv("LIFTLOG_DB_USER"); v != "" {
		cfg.Store.Database.User = v
	}
	if v := os.Getenv("LIFTLOG_DB_PASSWORD"); v != "" {
		cfg.Store.Database.Password = v
	}
	if v := os.Getenv("LIFTLOG_DB_SSLMODE"); v != "" {
		cfg.Store.Database.SSLMode = v
	}
	if v := os.Getenv("LIFTLOG_SQLITE_PATH"); v != "" {
		cfg.Store.SQLite.Path = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required")
	}
	if len(c.Athletes) != 2 {
		return fmt.Errorf("exactly two athletes are required, got %d", len(c.Athletes))
	}
	for i, a := range c.Athletes {
		if a == "" {
			return fmt.Errorf("athletes[%d] must not be empty", i)
		}
	}

	switch c.Store.Backend {
	case "sheets":
		if c.Store.Sheets.SpreadsheetID == "" {
			return fmt.Errorf("store.sheets.spreadsheet_id is required")
		}
		if c.Store.Sheets.CredentialsFile == "" {
			return fmt.Errorf("store.sheets.credentials_file is required")
		}
	case "postgres":
		if c.Store.Database.Host == "" {
			return fmt.Errorf("store.database.host is required")
		}
		if c.Store.Database.Port == 0 {
			return fmt.Errorf("store.database.port is required")
		}
		if c.Store.Database.Name == "" {
			return fmt.Errorf("store.database.name is required")
		}
		if c.Store.Database.User == "" {
			return fmt.Errorf("store.database.user is required")
		}
	case "sqlite":
		if c.Store.SQLite.Path == "" {
			return fmt.Errorf("store.sqlite.path is required")
		}
	default:
		return fmt.Errorf("store.backend must be sheets, postgres or sqlite, got %q", c.Store.Backend)
	}
	return nil
}
