package timeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/penwyp/go-earth-clock/internal/core/constants"
	"github.com/penwyp/go-earth-clock/internal/core/model"
)

// Formatter projects events onto a clock face whose full cycle spans
// the configured number of years.
type Formatter struct {
	config Config
}

// NewFormatter creates a formatter for the given span
func NewFormatter(config Config) *Formatter {
	return &Formatter{config: config.withDefaults()}
}

// Config returns the effective configuration
func (f *Formatter) Config() Config {
	return f.config
}

// Transform renders each event independently. The result has the same
// length and order as the input.
func (f *Formatter) Transform(events []model.EventInput) []model.EventDisplay {
	result := make([]model.EventDisplay, 0, len(events))
	for _, event := range events {
		result = append(result, f.Display(event))
	}
	return result
}

// Display renders a single event
func (f *Formatter) Display(event model.EventInput) model.EventDisplay {
	return model.EventDisplay{
		Name:          event.Name,
		ClockTime:     f.ClockTime(event.YearsAgo),
		YearsAgo:      FormatYearsAgo(event.YearsAgo),
		HumanReadable: HumanReadable(f.MillisOnClock(event.YearsAgo)),
	}
}

// MillisOnClock maps years ago to a millisecond offset within the clock window
func (f *Formatter) MillisOnClock(yearsAgo float64) float64 {
	return f.config.ClockMilliseconds * (yearsAgo / f.config.TotalYears)
}

// ClockTime returns the position on the clock face as HH:MM:SS.mmm.
// The hour counts back from 12 on a 12-hour face, while minutes and
// seconds come straight from the offset.
func (f *Formatter) ClockTime(yearsAgo float64) string {
	if yearsAgo == f.config.TotalYears {
		return constants.FullSpanClockTime
	}

	parts := splitMillis(f.MillisOnClock(yearsAgo))
	hours := floorModInt(12-parts.Hours, 12)

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, parts.Minutes, parts.Seconds, parts.Milliseconds)
}

// FormatYearsAgo scales the value to billions, millions or thousands
func FormatYearsAgo(yearsAgo float64) string {
	switch {
	case yearsAgo >= constants.Billion:
		return fmt.Sprintf("%.1f billion years ago", yearsAgo/constants.Billion)
	case yearsAgo >= constants.Million:
		return fmt.Sprintf("%.1f million years ago", yearsAgo/constants.Million)
	case yearsAgo >= constants.Thousand:
		return fmt.Sprintf("%.1f thousand years ago", yearsAgo/constants.Thousand)
	default:
		return strconv.FormatFloat(yearsAgo, 'f', -1, 64) + " years ago"
	}
}

// HumanReadable describes a millisecond offset, e.g. "1 hour and 12 minutes ago".
// Zero components are left out.
func HumanReadable(msOnClock float64) string {
	parts := splitMillis(msOnClock)

	var timeParts []string
	for _, c := range []struct {
		value int
		unit  string
	}{
		{parts.Hours, "hour"},
		{parts.Minutes, "minute"},
		{parts.Seconds, "second"},
		{parts.Milliseconds, "millisecond"},
	} {
		if c.value > 0 {
			timeParts = append(timeParts, fmt.Sprintf("%d %s", c.value, pluralize(c.unit, c.value)))
		}
	}

	if len(timeParts) == 0 {
		return constants.RightNow
	}
	return strings.Join(timeParts, " and ") + " ago"
}

func pluralize(unit string, n int) string {
	if n > 1 {
		return unit + "s"
	}
	return unit
}
