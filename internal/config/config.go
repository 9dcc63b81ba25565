package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all client configuration.
type Config struct {
	// BaseURL is the analyzer backend root, e.g. "http://localhost:5000".
	BaseURL string `yaml:"base_url"`

	// RequestTimeout bounds a single backend request. Zero means no timeout.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// Locale is the speech recognition language. Default: "ar-SA".
	Locale string `yaml:"locale"`

	Sounds SoundsConfig `yaml:"sounds"`

	// PlayerCommand plays a sound file; the asset path is appended as the
	// last argument. Empty falls back to the terminal bell.
	PlayerCommand []string `yaml:"player_command"`

	// CaptureCommand records a short WAV clip to stdout. Voice input is
	// unavailable when empty.
	CaptureCommand []string `yaml:"capture_command"`

	// LockAfterAnswer rejects further option picks once a quiz question
	// has been answered.
	LockAfterAnswer bool `yaml:"lock_after_answer"`

	Log LogConfig `yaml:"log"`
}

// SoundsConfig points at the feedback cue assets.
type SoundsConfig struct {
	Correct string `yaml:"correct"`
	Wrong   string `yaml:"wrong"`
}

// LogConfig configures the operator log.
type LogConfig struct {
	File string `yaml:"file"` // Default: $XDG_STATE_HOME/irab/irab.log
	Mode string `yaml:"mode"` // "dev" or "prod"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:5000",
		Locale:  "ar-SA",
		Sounds: SoundsConfig{
			Correct: "static/sounds/correct.mp3",
			Wrong:   "static/sounds/wrong.mp3",
		},
		Log: LogConfig{
			Mode: "prod",
		},
	}
}

// LoadFile overlays the YAML file at path onto cfg. Keys missing from the
// file keep their current values.
func LoadFile(cfg Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays IRAB_* environment variables onto cfg. A value that
// does not parse is an error rather than a silent fallback.
func ApplyEnv(cfg Config) (Config, error) {
	if v := os.Getenv("IRAB_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("IRAB_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("IRAB_REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv("IRAB_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("IRAB_SOUND_CORRECT"); v != "" {
		cfg.Sounds.Correct = v
	}
	if v := os.Getenv("IRAB_SOUND_WRONG"); v != "" {
		cfg.Sounds.Wrong = v
	}
	if v := os.Getenv("IRAB_PLAYER_COMMAND"); v != "" {
		cfg.PlayerCommand = strings.Fields(v)
	}
	if v := os.Getenv("IRAB_CAPTURE_COMMAND"); v != "" {
		cfg.CaptureCommand = strings.Fields(v)
	}
	if v := os.Getenv("IRAB_LOCK_AFTER_ANSWER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("IRAB_LOCK_AFTER_ANSWER: %w", err)
		}
		cfg.LockAfterAnswer = b
	}
	if v := os.Getenv("IRAB_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("IRAB_LOG_MODE"); v != "" {
		cfg.Log.Mode = v
	}
	return cfg, nil
}

// Load builds a Config from defaults, the optional YAML file (path, or
// IRAB_CONFIG when path is empty) and the environment, in that order.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("IRAB_CONFIG")
	}
	if path != "" {
		var err error
		cfg, err = LoadFile(cfg, path)
		if err != nil {
			return cfg, err
		}
	}

	return ApplyEnv(cfg)
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base URL is required (set IRAB_BASE_URL or --base-url)")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base URL %q: scheme must be http or https", c.BaseURL)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %s", c.RequestTimeout)
	}
	if c.Locale == "" {
		return errors.New("locale is required")
	}
	return nil
}
