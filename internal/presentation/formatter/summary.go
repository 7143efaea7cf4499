package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-earth-clock/internal/core/model"
	"github.com/penwyp/go-earth-clock/internal/util"
)

// SummaryFormatter prints a report with a header, the first and last
// events, and one aligned line per event.
type SummaryFormatter struct {
	w         io.Writer
	spanLabel string
}

func NewSummaryFormatter(w io.Writer, spanLabel string) *SummaryFormatter {
	return &SummaryFormatter{w: w, spanLabel: spanLabel}
}

func (f *SummaryFormatter) Format(data []model.EventDisplay) error {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("Earth Clock Summary\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("\n")

	if f.spanLabel != "" {
		fmt.Fprintf(&b, "Span: %s\n", f.spanLabel)
	}
	fmt.Fprintf(&b, "Events: %d\n", len(data))
	b.WriteString("\n")

	if len(data) == 0 {
		b.WriteString("No events to summarize\n")
		b.WriteString("\n")
		b.WriteString(strings.Repeat("=", 60) + "\n")
		_, err := io.WriteString(f.w, b.String())
		return err
	}

	first, last := data[0], data[len(data)-1]
	fmt.Fprintf(&b, "First: %s (%s)\n", first.Name, first.YearsAgo)
	fmt.Fprintf(&b, "Last:  %s (%s)\n", last.Name, last.YearsAgo)
	b.WriteString("\n")

	b.WriteString("Timeline:\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")

	nameWidth := 0
	for _, e := range data {
		if w := util.GetDisplayWidth(e.Name); w > nameWidth {
			nameWidth = w
		}
	}
	for _, e := range data {
		fmt.Fprintf(&b, "  %-12s  %s  %s\n", e.ClockTime, util.PadString(e.Name, nameWidth, true), e.HumanReadable)
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")

	_, err := io.WriteString(f.w, b.String())
	return err
}
