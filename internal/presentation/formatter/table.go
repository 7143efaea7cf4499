package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-earth-clock/internal/core/model"
	"github.com/penwyp/go-earth-clock/internal/util"
)

// minColumnWidth bounds how far a column shrinks to fit maxWidth
const minColumnWidth = 8

type TableFormatter struct {
	w        io.Writer
	headers  []string
	maxWidth int
}

// NewTableFormatter creates a table formatter. A positive maxWidth shrinks
// the Event and Time on Clock columns, truncating their cells, until the table fits.
func NewTableFormatter(w io.Writer, maxWidth int) *TableFormatter {
	return &TableFormatter{
		w:        w,
		headers:  []string{"Event", "Clock", "Years Ago", "Time on Clock"},
		maxWidth: maxWidth,
	}
}

func (f *TableFormatter) Format(data []model.EventDisplay) error {
	widths := f.fitToWidth(f.calculateColumnWidths(data))

	var b strings.Builder
	f.writeBorder(&b, widths, "top")
	f.writeRow(&b, f.headers, widths)
	f.writeBorder(&b, widths, "middle")
	for _, row := range data {
		f.writeRow(&b, rowValues(row), widths)
	}
	f.writeBorder(&b, widths, "bottom")

	_, err := io.WriteString(f.w, b.String())
	return err
}

func rowValues(row model.EventDisplay) []string {
	return []string{row.Name, row.ClockTime, row.YearsAgo, row.HumanReadable}
}

// calculateColumnWidths sizes each column to its widest cell
func (f *TableFormatter) calculateColumnWidths(data []model.EventDisplay) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}

	for _, row := range data {
		for i, value := range rowValues(row) {
			if w := util.GetDisplayWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths
}

// fitToWidth narrows the last column, then the first, while the table is wider than maxWidth
func (f *TableFormatter) fitToWidth(widths []int) []int {
	if f.maxWidth <= 0 {
		return widths
	}

	total := 1
	for _, w := range widths {
		total += w + 3
	}

	for _, col := range []int{len(widths) - 1, 0} {
		if total <= f.maxWidth {
			break
		}
		shrink := total - f.maxWidth
		if available := widths[col] - minColumnWidth; shrink > available {
			shrink = available
		}
		if shrink > 0 {
			widths[col] -= shrink
			total -= shrink
		}
	}

	return widths
}

func (f *TableFormatter) writeBorder(b *strings.Builder, widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	b.WriteString("\n")
}

// writeRow writes a left-aligned row; the clock column is right-aligned so the digits line up
func (f *TableFormatter) writeRow(b *strings.Builder, values []string, widths []int) {
	b.WriteString("│")
	for i, value := range values {
		if util.GetDisplayWidth(value) > widths[i] {
			value = util.Truncate(value, widths[i])
		}
		fmt.Fprintf(b, " %s │", util.PadString(value, widths[i], i != 1))
	}
	b.WriteString("\n")
}
