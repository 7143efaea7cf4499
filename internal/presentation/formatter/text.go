package formatter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/penwyp/go-earth-clock/internal/core/model"
)

// TextFormatter prints one line per event:
//
//	Dinosaurs appear at 11:12:00.000 -> 230.0 million years ago (1 hour and 12 minutes ago)
type TextFormatter struct {
	w          io.Writer
	nameColor  *color.Color
	clockColor *color.Color
	yearsColor *color.Color
	humanColor *color.Color
}

func NewTextFormatter(w io.Writer, colored bool) *TextFormatter {
	f := &TextFormatter{
		w:          w,
		nameColor:  color.New(color.FgCyan, color.Bold),
		clockColor: color.New(color.FgGreen),
		yearsColor: color.New(color.FgYellow),
		humanColor: color.New(color.FgWhite),
	}
	for _, c := range []*color.Color{f.nameColor, f.clockColor, f.yearsColor, f.humanColor} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

func (f *TextFormatter) Format(data []model.EventDisplay) error {
	for _, e := range data {
		_, err := fmt.Fprintf(f.w, "%s at %s -> %s (%s)\n",
			f.nameColor.Sprint(e.Name),
			f.clockColor.Sprint(e.ClockTime),
			f.yearsColor.Sprint(e.YearsAgo),
			f.humanColor.Sprint(e.HumanReadable),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
