package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bytedance/sonic"
	"github.com/penwyp/go-earth-clock/internal/core/model"
	"github.com/penwyp/go-earth-clock/internal/core/timeline"
	"github.com/penwyp/go-earth-clock/internal/util"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingName     = errors.New("event has no name")
	ErrMissingYearsAgo = errors.New("event has no years_ago")
	ErrInvalidYearsAgo = errors.New("years_ago is not a finite number")
	ErrUnsupportedType = errors.New("unsupported event file type")
)

// record mirrors model.EventInput with presence tracking on years_ago
type record struct {
	Name     string   `json:"name" yaml:"name" toml:"name"`
	YearsAgo *float64 `json:"years_ago" yaml:"years_ago" toml:"years_ago"`
}

type eventsDocument struct {
	Events []record `json:"events" yaml:"events" toml:"events"`
}

// Load reads events from path. An empty path returns the canonical events.
// A single malformed record fails the whole file.
func Load(path string) ([]model.EventInput, error) {
	if path == "" {
		util.LogDebug("No input file given, using canonical events")
		return timeline.CanonicalEvents(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read events file %s: %w", path, err)
	}

	events, err := Parse(data, Format(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load events from %s: %w", path, err)
	}

	util.LogDebugf("Loaded %d events from %s", len(events), path)
	return events, nil
}

// Format maps a file extension to a loader format name
func Format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	case ".csv":
		return "csv"
	default:
		return ""
	}
}

// Parse decodes events in the given format (json, yaml, toml, csv)
func Parse(data []byte, format string) ([]model.EventInput, error) {
	var (
		records []record
		err     error
	)

	switch format {
	case "json":
		records, err = parseJSON(data)
	case "yaml":
		records, err = parseYAML(data)
	case "toml":
		records, err = parseTOML(data)
	case "csv":
		records, err = parseCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, format)
	}
	if err != nil {
		return nil, err
	}

	return toEvents(records)
}

func parseJSON(data []byte) ([]record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var doc eventsDocument
		if err := sonic.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return doc.Events, nil
	}

	var records []record
	if err := sonic.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return records, nil
}

func parseYAML(data []byte) ([]record, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.MappingNode {
		var doc eventsDocument
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		return doc.Events, nil
	}

	var records []record
	if err := root.Decode(&records); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return records, nil
}

func parseTOML(data []byte) ([]record, error) {
	var doc eventsDocument
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return doc.Events, nil
}

func parseCSV(r io.Reader) ([]record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	nameCol, yearsCol := -1, -1
	for i, header := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "name":
			nameCol = i
		case "years_ago":
			yearsCol = i
		}
	}
	if nameCol < 0 || yearsCol < 0 {
		return nil, fmt.Errorf("invalid CSV: header must contain name and years_ago columns")
	}

	records := make([]record, 0, len(rows)-1)
	for line, row := range rows[1:] {
		rec := record{Name: strings.TrimSpace(row[nameCol])}
		if cell := strings.TrimSpace(row[yearsCol]); cell != "" {
			value, err := strconv.ParseFloat(strings.ReplaceAll(cell, "_", ""), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid CSV: row %d: years_ago %q: %w", line+2, cell, err)
			}
			rec.YearsAgo = &value
		}
		records = append(records, rec)
	}
	return records, nil
}

func toEvents(records []record) ([]model.EventInput, error) {
	events := make([]model.EventInput, 0, len(records))
	for i, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("event %d: %w", i+1, ErrMissingName)
		}
		if rec.YearsAgo == nil {
			return nil, fmt.Errorf("event %d (%s): %w", i+1, rec.Name, ErrMissingYearsAgo)
		}
		if math.IsNaN(*rec.YearsAgo) || math.IsInf(*rec.YearsAgo, 0) {
			return nil, fmt.Errorf("event %d (%s): %w", i+1, rec.Name, ErrInvalidYearsAgo)
		}
		events = append(events, model.EventInput{Name: rec.Name, YearsAgo: *rec.YearsAgo})
	}
	return events, nil
}
