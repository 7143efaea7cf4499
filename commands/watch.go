package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/penwyp/go-earth-clock/internal/application/clock"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the clock whenever the event file changes",
	Long: `Renders the events from --input, then watches the file and renders again
after every change. A file that fails to load is reported in the log and the
previous output stays on screen. Press Ctrl+C to stop.`,
	SilenceUsage: true,
	RunE:         runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if inputPath == "" {
		return clock.ErrNoInput
	}

	runConfig, err := prepare(cmd)
	if err != nil {
		return err
	}

	runner, err := clock.NewRunner(runConfig)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd), os.Interrupt)
	defer stop()

	return runner.Watch(ctx)
}

func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
