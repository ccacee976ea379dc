// Package config loads server configuration from an optional YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Media    MediaConfig    `yaml:"media"`
	Content  ContentConfig  `yaml:"content"`
	Admin    AdminConfig    `yaml:"admin"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// DatabaseConfig selects the content store. An empty URL runs the site from
// the in-memory store.
type DatabaseConfig struct {
	URL       string `yaml:"url"`
	AuthToken string `yaml:"auth_token"`
}

type MediaConfig struct {
	Dir string `yaml:"dir"`
}

// ContentConfig points at an optional YAML catalog file that replaces the
// built-in seed data for the in-memory store.
type ContentConfig struct {
	File  string `yaml:"file"`
	Watch bool   `yaml:"watch"`
}

type AdminConfig struct {
	Email      string        `yaml:"email"`
	Password   string        `yaml:"password"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file or overrides are
// present. The demo credential pair ships as the default so the admin panel
// works out of the box.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		Media:  MediaConfig{Dir: "data/media"},
		Admin: AdminConfig{
			Email:      "admin@university.edu",
			Password:   "admin123",
			SessionTTL: 12 * time.Hour,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the config file at path if it exists, then applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(&cfg)

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Server.Port)
	}
	if cfg.Admin.SessionTTL <= 0 {
		cfg.Admin.SessionTTL = 12 * time.Hour
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("VLSI_WEB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("VLSI_WEB_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("VLSI_WEB_AUTH_TOKEN"); v != "" {
		cfg.Database.AuthToken = v
	}
	if v := os.Getenv("VLSI_WEB_MEDIA_DIR"); v != "" {
		cfg.Media.Dir = v
	}
	if v := os.Getenv("VLSI_WEB_CONTENT_FILE"); v != "" {
		cfg.Content.File = v
	}
	if v := os.Getenv("VLSI_WEB_ADMIN_EMAIL"); v != "" {
		cfg.Admin.Email = v
	}
	if v := os.Getenv("VLSI_WEB_ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
}
