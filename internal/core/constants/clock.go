package constants

const (
	// Geological span mapped onto one clock cycle
	TotalYears = 4_600_000_000

	// Clock window
	ClockHours        = 24
	ClockSeconds      = ClockHours * 60 * 60
	ClockMilliseconds = ClockSeconds * 1_000

	// Emitted verbatim when an event sits exactly at the start of the span.
	// Uses a colon before the milliseconds, unlike the regular HH:MM:SS.mmm form.
	FullSpanClockTime = "24:00:00:000"

	// Human-readable duration when every component is zero
	RightNow = "Right now!"
)

// Magnitude thresholds for the years-ago label
const (
	Billion  = 1_000_000_000
	Million  = 1_000_000
	Thousand = 1_000
)
