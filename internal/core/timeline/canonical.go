package timeline

import "github.com/penwyp/go-earth-clock/internal/core/model"

// CanonicalEvents returns the built-in event list used when no input file is given
func CanonicalEvents() []model.EventInput {
	return []model.EventInput{
		{Name: "Earth's formation", YearsAgo: 4_600_000_000},
		{Name: "First life on Earth", YearsAgo: 3_700_000_000},
		{Name: "Dinosaurs appear", YearsAgo: 230_000_000},
		{Name: "First humans", YearsAgo: 300_000},
		{Name: "Modern civilization", YearsAgo: 10_000},
		{Name: "Now", YearsAgo: 0},
	}
}
