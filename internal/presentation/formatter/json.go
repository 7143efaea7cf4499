package formatter

import (
	"io"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-earth-clock/internal/core/model"
)

type JSONFormatter struct {
	w io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

func (f *JSONFormatter) Format(data []model.EventDisplay) error {
	if data == nil {
		data = []model.EventDisplay{}
	}
	encoder := sonic.ConfigStd.NewEncoder(f.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
