package clock

import (
	"io"
	"os"
	"time"

	"github.com/penwyp/go-earth-clock/internal/core/constants"
)

// RunConfig contains configuration for a render run
type RunConfig struct {
	// Event file; empty renders the canonical events
	InputPath string

	// Clock span
	TotalYears float64
	ClockHours int

	// Output settings
	OutputFormat string
	Colored      bool
	MaxWidth     int
	Out          io.Writer

	// Watch settings
	Debounce    time.Duration
	ClearScreen bool
}

// Validate fills in defaults for unset fields
func (c *RunConfig) Validate() error {
	if c.TotalYears == 0 {
		c.TotalYears = constants.TotalYears
	}
	if c.ClockHours == 0 {
		c.ClockHours = constants.ClockHours
	}
	if c.OutputFormat == "" {
		c.OutputFormat = "text"
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}
	return nil
}
