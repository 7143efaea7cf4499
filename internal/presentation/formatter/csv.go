package formatter

import (
	"encoding/csv"
	"io"

	"github.com/penwyp/go-earth-clock/internal/core/model"
)

type CSVFormatter struct {
	w io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: w}
}

func (f *CSVFormatter) Format(data []model.EventDisplay) error {
	w := csv.NewWriter(f.w)

	headers := []string{"Name", "Clock Time", "Years Ago", "Human Readable"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, row := range data {
		record := []string{row.Name, row.ClockTime, row.YearsAgo, row.HumanReadable}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
