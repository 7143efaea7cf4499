package timeline

import (
	"github.com/penwyp/go-earth-clock/internal/core/constants"
)

// Config holds the span mapped onto the clock face.
// Zero values fall back to the defaults from the constants package.
type Config struct {
	TotalYears        float64 // Years covered by one full clock cycle
	ClockMilliseconds float64 // Length of the clock window in milliseconds
}

// DefaultConfig maps 4.6 billion years onto a 24-hour window
func DefaultConfig() Config {
	return Config{
		TotalYears:        constants.TotalYears,
		ClockMilliseconds: constants.ClockMilliseconds,
	}
}

// ConfigFromHours builds a Config from a span in years and a clock length in hours
func ConfigFromHours(totalYears float64, clockHours int) Config {
	return Config{
		TotalYears:        totalYears,
		ClockMilliseconds: float64(clockHours) * 60 * 60 * 1_000,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.TotalYears == 0 {
		c.TotalYears = defaults.TotalYears
	}
	if c.ClockMilliseconds == 0 {
		c.ClockMilliseconds = defaults.ClockMilliseconds
	}
	return c
}

// clockParts is a millisecond offset split into clock components
type clockParts struct {
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}
