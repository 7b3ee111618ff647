// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for forecast.
//
// Configuration sources (in order of precedence):
//   - Environment variables (FORECAST_*), optionally from a .env file
//   - ~/.forecast/config.toml
//   - Built-in defaults
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/jeranaias/forecast-tui/internal/echo"
	"github.com/jeranaias/forecast-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete forecast configuration.
type Config struct {
	Reply ReplyConfig `toml:"reply" json:"reply"`
	UI    UIConfig    `toml:"ui" json:"ui"`
	Log   LogConfig   `toml:"log" json:"log"`
}

// ReplyConfig controls the placeholder responder.
type ReplyConfig struct {
	// Delay between a submission and its reply
	Delay Duration `toml:"delay" json:"delay" validate:"gt=0,lte=60000000000"`

	// Policy is "per-submission" or "single-inflight"
	Policy string `toml:"policy" json:"policy" validate:"oneof=per-submission single-inflight"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// Theme is "dark", "light" or "auto"
	Theme string `toml:"theme" json:"theme" validate:"oneof=dark light auto"`

	// ShowHelp shows key hints in the status bar
	ShowHelp bool `toml:"show_help" json:"show_help"`
}

// LogConfig controls the log file.
type LogConfig struct {
	// File is the log path. Empty means ~/.forecast/forecast.log.
	File string `toml:"file" json:"file"`

	// Debug enables verbose logging
	Debug bool `toml:"debug" json:"debug"`
}

// Duration is a time.Duration written as a string ("500ms") in config files.
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns a new Config with sensible defaults.
func Default() *Config {
	return &Config{
		Reply: ReplyConfig{
			Delay:  Duration(echo.DefaultDelay),
			Policy: string(echo.PolicyPerSubmission),
		},
		UI: UIConfig{
			Theme:    "auto",
			ShowHelp: true,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the forecast configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".forecast"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the configured log file, or the default under ConfigDir.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "forecast.log"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default path.
// A missing file is not an error: defaults are used.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from path, applies environment
// overrides and validates the result. A missing file yields defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg. Keys absent from the file keep
// their current values. Enum values are matched case-insensitively, as
// they are from flags and the environment.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		// The file may be reloaded while the TUI owns the terminal.
		log.Printf("CONFIG: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	cfg.normalize()
	return nil
}

// normalize lowercases the enum fields.
func (c *Config) normalize() {
	c.Reply.Policy = strings.ToLower(strings.TrimSpace(c.Reply.Policy))
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (default ".env")
// into the process environment. Missing files are ignored; variables
// already set are not overwritten.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes the configuration to path atomically with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# forecast configuration file\n")
	buf.WriteString("# Environment variables FORECAST_* override these values.\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// validatorInstance returns a validator that reports fields by their TOML key.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate validates the configuration and returns ValidateErrors on failure.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidateErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field:   strings.TrimPrefix(fe.Namespace(), "Config."),
			Message: describeFieldError(fe),
		})
	}
	return errs
}

// describeFieldError turns a validator tag failure into a readable message.
func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of: %s (got %q)", strings.ReplaceAll(fe.Param(), " ", ", "), fmt.Sprint(fe.Value()))
	case "gt":
		return "must be greater than zero"
	case "lte":
		if d, ok := fe.Value().(Duration); ok {
			return fmt.Sprintf("must be at most 1m (got %s)", d.Std())
		}
		return "must be at most " + fe.Param()
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// envOverrides lists the FORECAST_* variables. Zero values mean unset.
type envOverrides struct {
	ReplyPolicy string        `envconfig:"REPLY_POLICY"`
	ReplyDelay  time.Duration `envconfig:"REPLY_DELAY"`
	Theme       string        `envconfig:"THEME"`
	LogFile     string        `envconfig:"LOG_FILE"`
	Debug       string        `envconfig:"DEBUG"`
}

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - FORECAST_REPLY_POLICY: overrides reply.policy
//   - FORECAST_REPLY_DELAY: overrides reply.delay (e.g. "250ms")
//   - FORECAST_THEME: overrides ui.theme
//   - FORECAST_LOG_FILE: overrides log.file
//   - FORECAST_DEBUG: overrides log.debug ("1" or "true")
func (c *Config) ApplyEnvOverrides() error {
	var env envOverrides
	if err := envconfig.Process("FORECAST", &env); err != nil {
		return fmt.Errorf("invalid environment override: %w", err)
	}

	if env.ReplyPolicy != "" {
		c.Reply.Policy = strings.ToLower(env.ReplyPolicy)
	}
	if env.ReplyDelay != 0 {
		c.Reply.Delay = Duration(env.ReplyDelay)
	}
	if env.Theme != "" {
		c.UI.Theme = strings.ToLower(env.Theme)
	}
	if env.LogFile != "" {
		c.Log.File = env.LogFile
	}
	if env.Debug != "" {
		c.Log.Debug = env.Debug == "1" || strings.ToLower(env.Debug) == "true"
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

// String returns the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return buf.String()
}

// ReplyPolicy returns the parsed reply policy.
func (c *Config) ReplyPolicy() echo.Policy {
	p, err := echo.ParsePolicy(c.Reply.Policy)
	if err != nil {
		return echo.PolicyPerSubmission
	}
	return p
}
