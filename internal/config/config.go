// Package config loads image-quadtree settings from a TOML file and the
// environment.
//
// Settings are resolved in increasing order of precedence: built-in defaults,
// the config file, environment variables, and finally command-line flags
// (applied by the caller).
//
// # File Format
//
//	log_level = "info"
//
//	[compress]
//	tolerance = 8.0
//	scale = 1
//	metric = "lab"
//	blur = 0.0
//	outline = ""
//	jpeg_quality = 95
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/ironsheep/image-quadtree/internal/imaging"
	"github.com/ironsheep/image-quadtree/internal/pipeline"
)

const (
	appName = "image-quadtree"

	// EnvLogLevel overrides log_level from the config file.
	EnvLogLevel = "IMAGE_QUADTREE_LOG_LEVEL"

	// DefaultLogLevel is used when neither the file nor the environment sets one.
	DefaultLogLevel = "info"
)

// Config is the contents of the config file.
type Config struct {
	LogLevel string   `toml:"log_level"`
	Compress Compress `toml:"compress"`
}

// Compress holds the defaults for compress, stats and sample.
type Compress struct {
	Tolerance   float64 `toml:"tolerance"`
	Scale       int     `toml:"scale"`
	Metric      string  `toml:"metric"`
	Blur        float64 `toml:"blur"`
	Outline     string  `toml:"outline"`
	JPEGQuality int     `toml:"jpeg_quality"`
}

// Default returns the built-in settings.
func Default() Config {
	opts := pipeline.DefaultOptions()
	return Config{
		LogLevel: DefaultLogLevel,
		Compress: Compress{
			Tolerance:   opts.Tolerance,
			Scale:       opts.Scale,
			Metric:      opts.Metric,
			Blur:        opts.Blur,
			JPEGQuality: imaging.DefaultJPEGQuality,
		},
	}
}

// DefaultPath returns the config file location under the XDG config
// directory (~/.config/image-quadtree/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path and applies environment overrides.
//
// An empty path selects DefaultPath, and a missing default file is not an
// error. A path given explicitly must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return applyEnv(cfg), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		cfg, err = Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg = applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML on top of the defaults. Unknown keys are rejected so
// that typos do not go unnoticed.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

func applyEnv(cfg Config) Config {
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}
	return cfg
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Compress.JPEGQuality < 1 || c.Compress.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality must be between 1 and 100, got %d", c.Compress.JPEGQuality)
	}
	return c.Compress.Options().Validate()
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Options converts the compress section into pipeline options.
func (c Compress) Options() pipeline.Options {
	opts := pipeline.DefaultOptions()
	opts.Tolerance = c.Tolerance
	opts.Scale = c.Scale
	opts.Metric = c.Metric
	opts.Blur = c.Blur
	opts.Outline = c.Outline
	return opts
}
