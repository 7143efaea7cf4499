package clock

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/penwyp/go-earth-clock/internal/data/loader"
	"github.com/penwyp/go-earth-clock/internal/data/watcher"
	"github.com/penwyp/go-earth-clock/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonicalOutput = `Earth's formation at 24:00:00:000 -> 4.6 billion years ago (24 hours ago)
First life on Earth at 05:18:15.652 -> 3.7 billion years ago (19 hours and 18 minutes and 15 seconds and 652 milliseconds ago)
Dinosaurs appear at 11:12:00.000 -> 230.0 million years ago (1 hour and 12 minutes ago)
First humans at 00:00:05.634 -> 300.0 thousand years ago (5 seconds and 634 milliseconds ago)
Modern civilization at 00:00:00.187 -> 10.0 thousand years ago (187 milliseconds ago)
Now at 00:00:00.000 -> 0 years ago (Right now!)
`

// syncBuffer is a bytes.Buffer safe for use from the watch goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type fakeMonitor struct {
	events chan watcher.FileEvent
	closed bool
}

func (m *fakeMonitor) Events() <-chan watcher.FileEvent {
	return m.events
}

func (m *fakeMonitor) Close() error {
	m.closed = true
	return nil
}

// errorRecorder is a log output that forwards error entries to a channel
type errorRecorder struct {
	errors chan util.LogEntry
}

func (r *errorRecorder) Write(entry util.LogEntry) error {
	if entry.Level == util.LevelError.String() {
		select {
		case r.errors <- entry:
		default:
		}
	}
	return nil
}

func (r *errorRecorder) Close() error {
	return nil
}

func recordErrors(t *testing.T) <-chan util.LogEntry {
	t.Helper()
	recorder := &errorRecorder{errors: make(chan util.LogEntry, 8)}
	logger := util.NewLogger("info", "", false)
	logger.AddOutput(recorder)
	util.SetLogger(logger)
	t.Cleanup(func() { util.SetLogger(nil) })
	return recorder.errors
}

func TestRunnerRunCanonicalEvents(t *testing.T) {
	var buf bytes.Buffer
	runner, err := NewRunner(&RunConfig{Out: &buf})
	require.NoError(t, err)

	require.NoError(t, runner.Run(context.Background()))
	assert.Equal(t, canonicalOutput, buf.String())
}

func TestRunnerRunFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: Dinosaurs appear\n  years_ago: 230000000\n"), 0644))

	var buf bytes.Buffer
	runner, err := NewRunner(&RunConfig{InputPath: path, OutputFormat: "csv", Out: &buf})
	require.NoError(t, err)

	require.NoError(t, runner.Run(context.Background()))
	assert.Equal(t, "Name,Clock Time,Years Ago,Human Readable\nDinosaurs appear,11:12:00.000,230.0 million years ago,1 hour and 12 minutes ago\n", buf.String())
}

func TestRunnerRunFailsWholeBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "ok", "years_ago": 1}, {"years_ago": 2}]`), 0644))

	var buf bytes.Buffer
	runner, err := NewRunner(&RunConfig{InputPath: path, Out: &buf})
	require.NoError(t, err)

	err = runner.Run(context.Background())
	assert.ErrorIs(t, err, loader.ErrMissingName)
	assert.Empty(t, buf.String())
}

func TestRunnerRunUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	runner, err := NewRunner(&RunConfig{OutputFormat: "xml", Out: &buf})
	require.NoError(t, err)

	assert.Error(t, runner.Run(context.Background()))
	assert.Empty(t, buf.String())
}

func TestRunnerRunCancelledContext(t *testing.T) {
	runner, err := NewRunner(&RunConfig{Out: &bytes.Buffer{}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, runner.Run(ctx), context.Canceled)
}

func TestRunnerAlternateSpan(t *testing.T) {
	runner, err := NewRunner(&RunConfig{TotalYears: 13_800_000_000, ClockHours: 12, Out: &bytes.Buffer{}})
	require.NoError(t, err)

	assert.Equal(t, "13.8 billion years on a 12-hour clock", runner.SpanLabel())
}

func TestRunnerSpanLabelDefault(t *testing.T) {
	runner, err := NewRunner(&RunConfig{Out: &bytes.Buffer{}})
	require.NoError(t, err)

	assert.Equal(t, "4.6 billion years on a 24-hour clock", runner.SpanLabel())
}

func TestRunnerWatchRequiresInput(t *testing.T) {
	runner, err := NewRunner(&RunConfig{Out: &bytes.Buffer{}})
	require.NoError(t, err)

	assert.ErrorIs(t, runner.Watch(context.Background()), ErrNoInput)
}

func TestRunnerWatchReRendersOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "Now", "years_ago": 0}]`), 0644))

	logged := recordErrors(t)

	out := &syncBuffer{}
	runner, err := NewRunner(&RunConfig{InputPath: path, Out: out, Debounce: 10 * time.Millisecond})
	require.NoError(t, err)

	monitor := &fakeMonitor{events: make(chan watcher.FileEvent, 1)}
	runner.SetMonitorFactory(func(string) (FileMonitor, error) { return monitor, nil })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runner.Watch(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Now at 00:00:00.000")
	}, 2*time.Second, 10*time.Millisecond)

	// A broken reload keeps the previous output
	require.NoError(t, os.WriteFile(path, []byte(`[{"years_ago": 1}]`), 0644))
	monitor.events <- watcher.FileEvent{Path: path, Operation: "WRITE"}
	select {
	case entry := <-logged:
		assert.Contains(t, entry.Message, "Failed to reload")
		assert.Contains(t, entry.Message, loader.ErrMissingName.Error())
	case <-time.After(2 * time.Second):
		t.Fatal("reload error was not logged")
	}
	assert.Equal(t, 1, strings.Count(out.String(), "Now at"))

	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "Dinosaurs appear", "years_ago": 230000000}]`), 0644))
	monitor.events <- watcher.FileEvent{Path: path, Operation: "WRITE"}

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Dinosaurs appear at 11:12:00.000")
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
	assert.True(t, monitor.closed)
}

func TestRunnerWatchClearsScreen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "Now", "years_ago": 0}]`), 0644))

	out := &syncBuffer{}
	runner, err := NewRunner(&RunConfig{InputPath: path, Out: out, ClearScreen: true})
	require.NoError(t, err)

	monitor := &fakeMonitor{events: make(chan watcher.FileEvent)}
	runner.SetMonitorFactory(func(string) (FileMonitor, error) { return monitor, nil })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runner.Watch(ctx) }()

	require.Eventually(t, func() bool {
		return strings.HasPrefix(out.String(), "\033[2J\033[H")
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestRunnerWatchInitialLoadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0644))

	runner, err := NewRunner(&RunConfig{InputPath: path, Out: &bytes.Buffer{}})
	require.NoError(t, err)
	monitor := &fakeMonitor{events: make(chan watcher.FileEvent)}
	runner.SetMonitorFactory(func(string) (FileMonitor, error) { return monitor, nil })

	assert.Error(t, runner.Watch(context.Background()))
	assert.True(t, monitor.closed)
}
