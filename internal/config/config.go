package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment overrides, read after the config file
const (
	EnvAPIURL   = "HIKERHUNGER_API_URL"
	EnvLogLevel = "HIKERHUNGER_LOG_LEVEL"
)

const configDirName = ".hikerhunger"

// Config represents the application configuration
type Config struct {
	API     APIConfig     `json:"api"`
	Log     LogConfig     `json:"log"`
	Display DisplayConfig `json:"display"`
}

// APIConfig points the client at the calorie service
type APIConfig struct {
	BaseURL           string  `json:"base_url"`
	TimeoutSeconds    int     `json:"timeout_seconds"`
	RequestsPerSecond float64 `json:"requests_per_second"` // 0 means unlimited
	Burst             int     `json:"burst"`
}

// LogConfig holds logging settings. The TUI owns the terminal, so logs
// always go to a file.
type LogConfig struct {
	File  string `json:"file"`
	Level string `json:"level"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	StartScreen string `json:"start_screen"`
}

// Start screens
const (
	StartQuick    = "quick"
	StartAdvanced = "advanced"
)

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	logFile := "hikerhunger.log"
	if dir, err := GetConfigDir(); err == nil {
		logFile = filepath.Join(dir, logFile)
	}

	return Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8000",
			TimeoutSeconds: 15,
			Burst:          1,
		},
		Log: LogConfig{
			File:  logFile,
			Level: "info",
		},
		Display: DisplayConfig{
			StartScreen: StartQuick,
		},
	}
}

// Load reads the configuration from ~/.hikerhunger/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path, filling in defaults for
// anything left out
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	if c.API.TimeoutSeconds == 0 {
		c.API.TimeoutSeconds = defaults.API.TimeoutSeconds
	}
	if c.API.Burst == 0 {
		c.API.Burst = defaults.API.Burst
	}
	if c.Log.File == "" {
		c.Log.File = defaults.Log.File
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Display.StartScreen == "" {
		c.Display.StartScreen = defaults.Display.StartScreen
	}
}

// ApplyEnv loads .env from the working directory (if any) and lets the
// environment override the file settings
func (c *Config) ApplyEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env: %w", err)
	}

	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		c.API.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	return nil
}

// Timeout returns the request timeout as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// Save writes the configuration to ~/.hikerhunger/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes the configuration to path
func SaveFile(path string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return Save(&example)
}

// Validate checks the settings that would otherwise fail later
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL, got %q", c.API.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url must use http or https, got %q", u.Scheme)
	}

	if c.API.TimeoutSeconds < 0 {
		return fmt.Errorf("api.timeout_seconds must not be negative, got %d", c.API.TimeoutSeconds)
	}
	if c.API.RequestsPerSecond < 0 {
		return fmt.Errorf("api.requests_per_second must not be negative, got %v", c.API.RequestsPerSecond)
	}
	if c.API.RequestsPerSecond > 0 && c.API.Burst < 1 {
		return fmt.Errorf("api.burst must be at least 1 when throttling, got %d", c.API.Burst)
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	if c.Display.StartScreen != "" && c.Display.StartScreen != StartQuick && c.Display.StartScreen != StartAdvanced {
		return fmt.Errorf("display.start_screen must be %q or %q, got %q", StartQuick, StartAdvanced, c.Display.StartScreen)
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}
