package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/penwyp/go-earth-clock/internal/core/constants"
)

// Output formats accepted by the formatter factory
var OutputFormats = []string{"text", "table", "json", "csv", "summary"}

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	Timeline TimelineConfig `toml:"timeline"`
	Output   OutputConfig   `toml:"output"`
	Watch    WatchConfig    `toml:"watch"`
}

type TimelineConfig struct {
	TotalYears float64 `toml:"total_years"`
	ClockHours int     `toml:"clock_hours"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type WatchConfig struct {
	DebounceMS int `toml:"debounce_ms"`
}

type LoadResult struct {
	Config   Config
	Warnings []string
}

func DefaultConfig() Config {
	return Config{
		Timeline: TimelineConfig{
			TotalYears: constants.TotalYears,
			ClockHours: constants.ClockHours,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  ColorAuto,
		},
		Watch: WatchConfig{
			DebounceMS: 200,
		},
	}
}

// DefaultConfigPath returns ~/.go-earth-clock/config.toml
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".go-earth-clock", "config.toml")
}

// LoadFrom reads the config file at path. A missing file yields the defaults.
func LoadFrom(path string) (*LoadResult, error) {
	if path == "" {
		return LoadFromString("")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &LoadResult{Config: DefaultConfig()}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromString(string(data))
}

// LoadFromString decodes TOML over the defaults, so absent keys keep their default values.
// Values are not validated here; callers apply flag overrides first and then call Validate.
func LoadFromString(data string) (*LoadResult, error) {
	result := &LoadResult{Config: DefaultConfig()}

	if data == "" {
		return result, nil
	}

	md, err := toml.Decode(data, &result.Config)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	for _, key := range md.Undecoded() {
		result.Warnings = append(result.Warnings, fmt.Sprintf("unknown config key: %q", key.String()))
	}

	return result, nil
}

func Validate(cfg *Config) error {
	var errs []string

	if math.IsNaN(cfg.Timeline.TotalYears) || math.IsInf(cfg.Timeline.TotalYears, 0) || cfg.Timeline.TotalYears <= 0 {
		errs = append(errs, fmt.Sprintf("total_years must be positive and finite, got %g", cfg.Timeline.TotalYears))
	}
	if cfg.Timeline.ClockHours < 1 {
		errs = append(errs, fmt.Sprintf("clock_hours must be positive, got %d", cfg.Timeline.ClockHours))
	}
	if !IsValidFormat(cfg.Output.Format) {
		errs = append(errs, fmt.Sprintf("output format must be one of %s, got %q", strings.Join(OutputFormats, ", "), cfg.Output.Format))
	}
	switch cfg.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Sprintf("color must be auto, always or never, got %q", cfg.Output.Color))
	}
	if cfg.Watch.DebounceMS < 0 {
		errs = append(errs, fmt.Sprintf("debounce_ms must not be negative, got %d", cfg.Watch.DebounceMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation error: %s", strings.Join(errs, "; "))
	}
	return nil
}

func IsValidFormat(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}
