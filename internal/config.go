package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Host modes.
const (
	HostModeAPI  = "api"
	HostModeDemo = "demo"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Host    HostConfig        `yaml:"host"`
	SQLite  SQLiteConfig      `yaml:"sqlite"`
	Refresh RefreshConfig     `yaml:"refresh"`
	Exports ExportsConfig     `yaml:"exports"`
	Theme   ThemeConfig       `yaml:"theme"`
	Auth    AuthConfig        `yaml:"auth"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Host.Validate(); err != nil {
		return err
	}
	if err := c.SQLite.Validate(); err != nil {
		return err
	}
	if err := c.Refresh.Validate(); err != nil {
		return err
	}
	if err := c.Exports.Validate(); err != nil {
		return err
	}
	if err := c.Theme.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// HostConfig selects and configures the board host backend.
//
// Mode controls where item data comes from:
//   - "demo" (default): a built-in in-memory item, optionally replaced
//     by a JSON dataset file.
//   - "api": a live GraphQL host; APIURL, Token and ItemID must be set.
type HostConfig struct {
	Mode       string        `yaml:"mode"`
	APIURL     string        `yaml:"api_url"`
	Token      string        `yaml:"token"`
	APIVersion string        `yaml:"api_version"`
	ItemID     string        `yaml:"item_id"`
	Timeout    time.Duration `yaml:"timeout"`
	Dataset    string        `yaml:"dataset"`
}

// Validate validates the host configuration.
func (c *HostConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = HostModeDemo
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(HostModeAPI, HostModeDemo)),
	); err != nil {
		return err
	}
	if c.Mode == HostModeAPI {
		return validation.ValidateStruct(c,
			validation.Field(&c.APIURL, validation.Required),
			validation.Field(&c.Token, validation.Required),
			validation.Field(&c.ItemID, validation.Required),
		)
	}
	return nil
}

// SQLiteConfig holds SQLite database configuration.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the SQLite configuration.
func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// RefreshConfig controls the periodic background re-fetch.
type RefreshConfig struct {
	Auto     bool          `yaml:"auto"`
	Interval time.Duration `yaml:"interval"`
}

// Validate validates the refresh configuration.
func (c *RefreshConfig) Validate() error {
	if c.Auto && c.Interval < time.Second {
		return fmt.Errorf("refresh: interval %s is below 1s", c.Interval)
	}
	return nil
}

// ExportsConfig holds the directory exported files are persisted to.
type ExportsConfig struct {
	Dir string `yaml:"dir"`
}

// Validate validates the exports configuration.
func (c *ExportsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
	)
}

// ThemeConfig holds the default color theme.
type ThemeConfig struct {
	Default string `yaml:"default"`
}

// Validate validates the theme configuration.
func (c *ThemeConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Default, validation.Required, validation.In("light", "dark", "black")),
	)
}

// AuthConfig holds authentication configuration.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required, suitable for local dev.
//   - "token": Bearer token authentication; Token must be non-empty.
type AuthConfig struct {
	Mode  string `yaml:"mode"`
	Token string `yaml:"token"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	// Normalise empty mode to "disabled" for backward compatibility.
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Host: HostConfig{
			Mode:       HostModeDemo,
			APIVersion: "2023-10",
			Timeout:    10 * time.Second,
		},
		SQLite: SQLiteConfig{
			Path: ":memory:",
		},
		Refresh: RefreshConfig{
			Auto:     true,
			Interval: 30 * time.Second,
		},
		Exports: ExportsConfig{
			Dir: "./exports",
		},
		Theme: ThemeConfig{
			Default: "light",
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
	}
}
