package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PlaceholderEndpoint is substituted when the data service endpoint is
// missing or still carries the template value. Calls against it fail, but
// the application starts and renders empty views instead of terminating.
const PlaceholderEndpoint = "https://placeholder.invalid"

// Config represents the application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	DataService DataServiceConfig `yaml:"data_service"`
	Session     SessionConfig     `yaml:"session"`
	Log         LogConfig         `yaml:"log"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DataServiceConfig contains the hosted data/auth service settings.
// PublicKey authenticates normal row-level-security-scoped calls;
// ServiceKey authenticates the privileged admin interface and is optional.
type DataServiceConfig struct {
	Endpoint   string `yaml:"endpoint"`
	PublicKey  string `yaml:"public_key"`
	ServiceKey string `yaml:"service_key"`
}

// SessionConfig contains persisted-session settings
type SessionConfig struct {
	StorePath       string `yaml:"store_path"`
	RefreshSchedule string `yaml:"refresh_schedule"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("DATA_SERVICE_ENDPOINT"); val != "" {
		c.DataService.Endpoint = val
	}
	if val := os.Getenv("DATA_SERVICE_PUBLIC_KEY"); val != "" {
		c.DataService.PublicKey = val
	}
	if val := os.Getenv("DATA_SERVICE_SERVICE_KEY"); val != "" {
		c.DataService.ServiceKey = val
	}

	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	if val := os.Getenv("SESSION_STORE_PATH"); val != "" {
		c.Session.StorePath = val
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks the configuration. Invalid data service settings do not
// fail validation: they are replaced with a placeholder endpoint so the
// application degrades instead of refusing to start.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Session.StorePath == "" {
		c.Session.StorePath = ".saccoflow-session.json"
	}
	if c.Session.RefreshSchedule == "" {
		c.Session.RefreshSchedule = "@every 5m"
	}

	c.DataService.normalize()

	return nil
}

func (d *DataServiceConfig) normalize() {
	endpoint := strings.TrimSuffix(d.Endpoint, "/")
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	if endpoint == "" || d.PublicKey == "" || strings.Contains(endpoint, "your-project") {
		d.Endpoint = PlaceholderEndpoint
		return
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		d.Endpoint = PlaceholderEndpoint
		return
	}
	d.Endpoint = endpoint
}

// IsPlaceholder reports whether the endpoint was degraded during validation.
func (d *DataServiceConfig) IsPlaceholder() bool {
	return d.Endpoint == PlaceholderEndpoint
}

// HasServiceKey reports whether the privileged admin interface is configured.
func (d *DataServiceConfig) HasServiceKey() bool {
	return d.ServiceKey != ""
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
