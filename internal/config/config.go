package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Email   EmailConfig   `yaml:"email"`
	Probe   ProbeConfig   `yaml:"probe"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig contains backend REST settings
type APIConfig struct {
	// BaseURL is the backend root, e.g. "http://localhost:8080/api"
	BaseURL string `yaml:"base_url"`
	// AuthTimeoutSeconds applies to the login call only. The other flows
	// run without a client timeout; the call sites were configured
	// independently and stay that way.
	AuthTimeoutSeconds int `yaml:"auth_timeout_seconds"`
}

// AuthTimeout returns the login timeout as a duration
func (a APIConfig) AuthTimeout() time.Duration {
	return time.Duration(a.AuthTimeoutSeconds) * time.Second
}

// SessionConfig contains local session persistence settings
type SessionConfig struct {
	Path string `yaml:"path"`
}

// EmailConfig contains confirmation email settings
type EmailConfig struct {
	SendGridKey string `yaml:"sendgrid_key"`
	FromEmail   string `yaml:"from_email"`
	FromName    string `yaml:"from_name"`
}

// ProbeConfig contains the background connectivity probe schedule
type ProbeConfig struct {
	Schedule string `yaml:"schedule"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	// A .env next to the binary may supply overrides
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// Defaults only; the client is expected to run without a file
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("RENTX_API_BASE_URL"); val != "" {
		c.API.BaseURL = val
	}
	if val := os.Getenv("RENTX_AUTH_TIMEOUT_SECONDS"); val != "" {
		fmt.Sscanf(val, "%d", &c.API.AuthTimeoutSeconds)
	}
	if val := os.Getenv("RENTX_SESSION_PATH"); val != "" {
		c.Session.Path = val
	}
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.SendGridKey = val
	}
	if val := os.Getenv("RENTX_EMAIL_FROM"); val != "" {
		c.Email.FromEmail = val
	}
	if val := os.Getenv("RENTX_PROBE_SCHEDULE"); val != "" {
		c.Probe.Schedule = val
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:8080/api"
	}
	if c.API.AuthTimeoutSeconds < 0 {
		return fmt.Errorf("invalid auth timeout: %d", c.API.AuthTimeoutSeconds)
	}
	if c.API.AuthTimeoutSeconds == 0 {
		c.API.AuthTimeoutSeconds = 10
	}

	if c.Session.Path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine session path: %w", err)
		}
		c.Session.Path = filepath.Join(home, ".rentx", "session.json")
	}

	if c.Probe.Schedule == "" {
		c.Probe.Schedule = "@every 30s"
	}

	if c.Email.FromEmail == "" {
		c.Email.FromEmail = "noreply@rentx.example.com"
	}
	if c.Email.FromName == "" {
		c.Email.FromName = "RentX Team"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	return nil
}
