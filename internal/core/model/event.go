package model

// EventInput is a named point in history measured in years before present.
type EventInput struct {
	Name     string  `json:"name" yaml:"name" toml:"name"`
	YearsAgo float64 `json:"years_ago" yaml:"years_ago" toml:"years_ago"`
}

// EventDisplay holds the rendered forms of an EventInput.
type EventDisplay struct {
	Name          string `json:"name"`
	ClockTime     string `json:"clock_time"`
	YearsAgo      string `json:"years_ago"`
	HumanReadable string `json:"human_readable"`
}
