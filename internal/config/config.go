// Package config loads application configuration with layered sources:
// built-in defaults, an optional YAML file, then CORPSITE_* environment
// variables, highest last.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before mapping them onto
// config paths, e.g. CORPSITE_SERVER_ADDR -> server.addr.
const EnvPrefix = "CORPSITE_"

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CORPSITE_CONFIG"

// DefaultConfigPaths lists where a config file is searched, first hit wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/corpsite/config.yaml",
}

// Config holds all application settings.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Uploads  UploadsConfig  `koanf:"uploads"`
	Admin    AdminConfig    `koanf:"admin"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string `koanf:"addr"`
}

// DatabaseConfig selects and configures the storage backend.
// Driver is "sqlite" (Path) or "postgres" (DSN).
type DatabaseConfig struct {
	Driver string `koanf:"driver"`
	Path   string `koanf:"path"`
	DSN    string `koanf:"dsn"`
}

// UploadsConfig controls where uploaded files land and how they are addressed.
type UploadsConfig struct {
	Dir     string `koanf:"dir"`
	BaseURL string `koanf:"baseurl"`
}

// AdminConfig holds the admin login credential.
type AdminConfig struct {
	Password string `koanf:"password"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Pretty bool   `koanf:"pretty"`
}

func defaultConfig() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":8080"},
		Database: DatabaseConfig{Driver: "sqlite", Path: "corpsite.sqlite"},
		Uploads:  UploadsConfig{Dir: "uploads", BaseURL: "/uploads"},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment. The result is immutable afterwards and safe for concurrent
// reads.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envTransform maps CORPSITE_SERVER_ADDR to server.addr. Only the first
// underscore separates the section from the key, so keys like
// CORPSITE_UPLOADS_BASEURL stay intact.
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required for the sqlite driver")
		}
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	return nil
}
