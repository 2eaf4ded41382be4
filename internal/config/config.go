// Package config loads MovieMatch configuration.
//
// Values are layered, later layers winning:
//
//  1. Built-in defaults
//  2. Optional YAML file (MOVIEMATCH_CONFIG, ./moviematch.yaml, ~/.moviematch/config.yaml)
//  3. Variables from a .env file (existing environment wins over the file)
//  4. MOVIEMATCH_* environment variables, e.g. MOVIEMATCH_CLASSIFIER_URL -> classifier.url
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MOVIEMATCH_"

// ConfigPathEnvVar names an explicit config file.
const ConfigPathEnvVar = EnvPrefix + "CONFIG"

// Config is the application configuration.
type Config struct {
	Catalog    CatalogConfig    `koanf:"catalog"`
	Classifier ClassifierConfig `koanf:"classifier"`
	UI         UIConfig         `koanf:"ui"`
	Log        LogConfig        `koanf:"log"`
}

// CatalogConfig selects where movies come from. The first non-empty of DB,
// URL and Path is used.
type CatalogConfig struct {
	Path    string        `koanf:"path"`
	URL     string        `koanf:"url" validate:"omitempty,url"`
	DB      string        `koanf:"db"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

// ClassifierConfig configures the external mood classifier.
type ClassifierConfig struct {
	Enabled          bool          `koanf:"enabled"`
	URL              string        `koanf:"url" validate:"omitempty,url"`
	Timeout          time.Duration `koanf:"timeout" validate:"gt=0"`
	MinInterval      time.Duration `koanf:"min_interval" validate:"gte=0"`
	FailureThreshold uint32        `koanf:"failure_threshold" validate:"min=1"`
	Cooldown         time.Duration `koanf:"cooldown" validate:"gt=0"`
	CacheTTL         time.Duration `koanf:"cache_ttl" validate:"gte=0"`
}

// UIConfig holds terminal UI preferences.
type UIConfig struct {
	GenresPerPage int `koanf:"genres_per_page" validate:"min=1,max=100"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	Dir        string `koanf:"dir"`
	Level      string `koanf:"level" validate:"oneof=debug info warn error"`
	MaxSizeMB  int    `koanf:"max_size_mb" validate:"min=1"`
	MaxBackups int    `koanf:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `koanf:"max_age_days" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:    "movies_combined.json",
			Timeout: 10 * time.Second,
		},
		Classifier: ClassifierConfig{
			Enabled:          true,
			URL:              "http://127.0.0.1:8000",
			Timeout:          8 * time.Second,
			MinInterval:      250 * time.Millisecond,
			FailureThreshold: 3,
			Cooldown:         30 * time.Second,
			CacheTTL:         10 * time.Minute,
		},
		UI: UIConfig{
			GenresPerPage: 20,
		},
		Log: LogConfig{
			Dir:        defaultLogDir(),
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
	}
}

// Options overrides where Load looks for its inputs.
type Options struct {
	// File is an explicit YAML file; it must exist when set.
	File string
	// DotEnv is the .env file to read. Missing files are ignored.
	DotEnv string
}

// Load builds the configuration from defaults, file and environment.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := loadDotEnv(opts.DotEnv); err != nil {
		return nil, err
	}

	path := opts.File
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func loadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	candidates := []string{"moviematch.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".moviematch", "config.yaml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envTransformFunc maps MOVIEMATCH_CLASSIFIER_CACHE_TTL to
// classifier.cache_ttl. Sections are single words, so only the first
// underscore separates section from key.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if key == "config" {
		return ""
	}
	section, rest, ok := strings.Cut(key, "_")
	if !ok {
		return ""
	}
	return section + "." + rest
}

func defaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "moviematch", "logs")
	}
	return filepath.Join(home, ".moviematch", "logs")
}
