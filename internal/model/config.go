package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DatabaseConfig locates the SQLite store.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// UserConfig identifies the user the CLI acts as.
type UserConfig struct {
	ID string `mapstructure:"id" yaml:"id"`
}

// DefaultsConfig holds values applied when a payload omits them.
type DefaultsConfig struct {
	Currency string `mapstructure:"currency" yaml:"currency"`
}

// ShareConfig tunes the public trip listing.
type ShareConfig struct {
	PublicLimit int `mapstructure:"public_limit" yaml:"public_limit"`
}

// DisplayConfig holds rendering preferences.
type DisplayConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	User     UserConfig     `mapstructure:"user" yaml:"user"`
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`
	Share    ShareConfig    `mapstructure:"share" yaml:"share"`
	Display  DisplayConfig  `mapstructure:"display" yaml:"display"`
}

// EnvPrefix prefixes environment overrides, e.g. GLOBETROTTER_DATABASE_PATH.
const EnvPrefix = "GLOBETROTTER"

// DefaultConfigPath returns ~/.config/globetrotter/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "globetrotter", "config.yaml")
}

// DefaultDatabasePath returns ~/.local/share/globetrotter/trips.db.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "trips.db")
	}
	return filepath.Join(home, ".local", "share", "globetrotter", "trips.db")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Database: DatabaseConfig{Path: DefaultDatabasePath()},
		Defaults: DefaultsConfig{Currency: "USD"},
		Share:    ShareConfig{PublicLimit: 20},
		Display:  DisplayConfig{Theme: "default"},
	}
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("database.path", DefaultDatabasePath())
	v.SetDefault("user.id", "")
	v.SetDefault("defaults.currency", "USD")
	v.SetDefault("share.public_limit", 20)
	v.SetDefault("display.theme", "default")
	return v
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// A missing file yields the defaults with environment overrides applied.
func LoadConfig(path string) (*AppConfig, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Share.PublicLimit <= 0 {
		cfg.Share.PublicLimit = 20
	}
	if strings.TrimSpace(cfg.Defaults.Currency) == "" {
		cfg.Defaults.Currency = "USD"
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database", cfg.Database)
	v.Set("user", cfg.User)
	v.Set("defaults", cfg.Defaults)
	v.Set("share", cfg.Share)
	v.Set("display", cfg.Display)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
