package clock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/penwyp/go-earth-clock/internal/core/model"
	"github.com/penwyp/go-earth-clock/internal/core/timeline"
	"github.com/penwyp/go-earth-clock/internal/data/loader"
	"github.com/penwyp/go-earth-clock/internal/presentation/formatter"
	"github.com/penwyp/go-earth-clock/internal/util"
)

var ErrNoInput = errors.New("watch mode requires an input file")

// Runner loads events, projects them onto the clock and writes them out
type Runner struct {
	config     *RunConfig
	timeline   *timeline.Formatter
	newMonitor MonitorFactory
}

func NewRunner(config *RunConfig) (*Runner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Runner{
		config:     config,
		timeline:   timeline.NewFormatter(timeline.ConfigFromHours(config.TotalYears, config.ClockHours)),
		newMonitor: newFileMonitor,
	}, nil
}

// SetMonitorFactory replaces the file monitor used by Watch
func (r *Runner) SetMonitorFactory(factory MonitorFactory) {
	r.newMonitor = factory
}

// Run renders the input once. Any load or write error aborts the whole batch.
func (r *Runner) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.render(r.config.Out)
}

// Watch renders the input, then renders again after every change to the
// input file until ctx is cancelled. Reload failures are logged and the
// previous output stays on screen.
func (r *Runner) Watch(ctx context.Context) error {
	if r.config.InputPath == "" {
		return ErrNoInput
	}

	monitor, err := r.newMonitor(r.config.InputPath)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", r.config.InputPath, err)
	}
	defer monitor.Close()

	if err := r.renderFrame(); err != nil {
		return err
	}
	util.LogInfof("Watching %s for changes", r.config.InputPath)

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Watch stopped")
			return nil

		case event, ok := <-monitor.Events():
			if !ok {
				return nil
			}
			util.LogDebug("Input file changed", util.F("path", event.Path), util.F("op", event.Operation))
			if timer == nil {
				timer = time.NewTimer(r.config.Debounce)
			} else {
				timer.Reset(r.config.Debounce)
			}
			timerCh = timer.C

		case <-timerCh:
			timerCh = nil
			if err := r.renderFrame(); err != nil {
				util.LogErrorf("Failed to reload %s: %v", r.config.InputPath, err)
			}
		}
	}
}

// renderFrame renders into a buffer first so a failed reload leaves the previous frame intact
func (r *Runner) renderFrame() error {
	var b strings.Builder
	if err := r.render(&b); err != nil {
		return err
	}

	if r.config.ClearScreen {
		if _, err := io.WriteString(r.config.Out, util.ClearScreen+util.MoveCursorHome); err != nil {
			return err
		}
	}
	_, err := io.WriteString(r.config.Out, b.String())
	return err
}

func (r *Runner) render(w io.Writer) error {
	events, err := loader.Load(r.config.InputPath)
	if err != nil {
		return err
	}

	displays := r.Transform(events)
	util.LogDebug("Transformed events", util.F("count", len(displays)))

	out, err := formatter.New(r.config.OutputFormat, formatter.Options{
		Writer:    w,
		Colored:   r.config.Colored,
		MaxWidth:  r.config.MaxWidth,
		SpanLabel: r.SpanLabel(),
	})
	if err != nil {
		return err
	}

	return out.Format(displays)
}

// Transform projects events onto the configured clock
func (r *Runner) Transform(events []model.EventInput) []model.EventDisplay {
	return r.timeline.Transform(events)
}

// SpanLabel describes the configured span, e.g. "4.6 billion years on a 24-hour clock"
func (r *Runner) SpanLabel() string {
	years := strings.TrimSuffix(timeline.FormatYearsAgo(r.config.TotalYears), " ago")
	return fmt.Sprintf("%s on a %d-hour clock", years, r.config.ClockHours)
}
