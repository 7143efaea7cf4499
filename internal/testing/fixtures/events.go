package fixtures

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/bytedance/sonic"
	"github.com/penwyp/go-earth-clock/internal/core/model"
	"gopkg.in/yaml.v3"
)

// TestDataGenerator writes event files for tests
type TestDataGenerator struct {
	baseDir string
}

func NewTestDataGenerator(baseDir string) *TestDataGenerator {
	return &TestDataGenerator{
		baseDir: baseDir,
	}
}

// WriteEvents writes events to baseDir/name, encoded by the file extension,
// and returns the full path
func (g *TestDataGenerator) WriteEvents(name string, events []model.EventInput) (string, error) {
	var (
		data []byte
		err  error
	)

	switch filepath.Ext(name) {
	case ".json":
		data, err = sonic.ConfigStd.MarshalIndent(events, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(events)
	case ".toml":
		data, err = encodeTOML(events)
	case ".csv":
		data, err = encodeCSV(events)
	default:
		return "", fmt.Errorf("unsupported fixture extension: %s", name)
	}
	if err != nil {
		return "", err
	}

	path := filepath.Join(g.baseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func encodeTOML(events []model.EventInput) ([]byte, error) {
	var buf bytes.Buffer
	doc := struct {
		Events []model.EventInput `toml:"events"`
	}{Events: events}
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeCSV(events []model.EventInput) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"name", "years_ago"}); err != nil {
		return nil, err
	}
	for _, e := range events {
		if err := w.Write([]string{e.Name, strconv.FormatFloat(e.YearsAgo, 'f', -1, 64)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
