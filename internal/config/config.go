// Package config handles the XDG configuration directory, stored token
// path, and API base URL resolution.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "taskcli"

	// TokenFile is the stored session token filename.
	TokenFile = "token.json"

	// EnvBaseURL is the environment variable overriding the API base URL.
	EnvBaseURL = "TASKCLI_API_URL"

	// DefaultBaseURL is used when no flag, environment variable, or .env
	// entry provides one.
	DefaultBaseURL = "http://localhost:8000/api"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BaseURL is the API base URL, trailing slash stripped.
	BaseURL string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config with the default or specified config directory and
// resolves the API base URL. baseURL comes from the --api flag; when empty,
// the TASKCLI_API_URL environment variable is consulted (a .env file in the
// working directory is loaded first, existing variables win), then the
// default.
func New(configDir, baseURL string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	if baseURL == "" {
		// Missing .env is the normal case, not an error.
		_ = godotenv.Load()
		baseURL = os.Getenv(EnvBaseURL)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Config{
		Dir:     dir,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// TokenPath returns the path to the stored session token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}
