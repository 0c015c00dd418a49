// Package config loads settings for the airport services app from a TOML file
// with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/currency"
)

const (
	EnvCurrency = "AIRPORT_SERVICES_CURRENCY"
	EnvLogLevel = "AIRPORT_SERVICES_LOG_LEVEL"
	EnvLogFile  = "AIRPORT_SERVICES_LOG_FILE"

	fileName = "config.toml"
	dirName  = ".airport-services"
)

// Config carries file- and environment-driven settings.
type Config struct {
	// Currency is the ISO 4217 code every catalog price is expressed in.
	Currency string `toml:"currency"`

	Log Log `toml:"log"`
	UI  UI  `toml:"ui"`
}

// Log configures the structured logger.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// File receives log records. Empty means stderr, except for the TUI which
	// falls back to a file in the OS temp directory.
	File string `toml:"file"`
}

// UI configures the terminal interface.
type UI struct {
	// ConfirmOrders shows a blocking acknowledgment after an order is placed.
	ConfirmOrders bool `toml:"confirm_orders"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Currency: "USD",
		Log: Log{
			Level: "info",
		},
		UI: UI{
			ConfirmOrders: true,
		},
	}
}

// DefaultPath returns ~/.airport-services/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("os.UserHomeDir: %w", err)
	}

	return filepath.Join(home, dirName, fileName), nil
}

// Load reads the file at path on top of Default, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// No config file yet - defaults apply
		case err != nil:
			return Config{}, fmt.Errorf("os.ReadFile: %w", err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("toml.Unmarshal[%s]: %w", path, err)
			}
		}
	}

	cfg.Currency = envDefault(EnvCurrency, cfg.Currency)
	cfg.Log.Level = envDefault(EnvLogLevel, cfg.Log.Level)
	cfg.Log.File = envDefault(EnvLogFile, cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values that cannot be represented by the TOML types alone.
func (c Config) Validate() error {
	if _, err := c.CurrencyUnit(); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level[%s] is not valid", c.Log.Level)
	}

	return nil
}

func (c Config) CurrencyUnit() (currency.Unit, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(c.Currency)))
	if err != nil {
		return currency.Unit{}, fmt.Errorf("currency[%s] is not valid: %w", c.Currency, err)
	}

	return unit, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
