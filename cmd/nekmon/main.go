// Package main implements the nekmon terminal monitor for Nek5000 runs.
//
// nekmon tails a simulation logfile, extracts the per-step summary fields,
// and renders five live charts plus the Update and Jam indicator lamps.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nek-tools/nekmon/internal/app"
)

func main() {
	var (
		logPath     string
		configPath  string
		prefsPath   string
		pollSeconds int
	)

	cmd := &cobra.Command{
		Use:   "nekmon [LOGFILE]",
		Short: "Watch a Nek5000 run with live charts in the terminal",
		Long: `Watch a Nek5000 run with live charts in the terminal.

nekmon polls the simulation logfile at a fixed cadence, re-parses the
per-step summary lines, and renders:

  • Solution Time vs Step, DT, CFL, and the wall-time charts
  • an Update lamp that flashes when the logfile advances
  • a Jam lamp that flashes when polling itself falls behind

Each chart's x-axis toggles between step number and solution time with
the 1-5 keys. A missing logfile is fine; nekmon waits for it to appear.`,
		Example: `  # Watch ./logfile in the current run directory
  nekmon

  # Watch a specific logfile, polling every 2 seconds
  nekmon ~/runs/turbChannel/logfile --poll 2

  # Equivalent flag form
  nekmon --log ~/runs/turbChannel/logfile`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			opts := app.Options{
				ConfigPath: configPath,
				PrefsPath:  prefsPath,
				LogPath:    logPath,
			}
			if len(args) > 0 {
				opts.LogPath = args[0]
			}
			if pollSeconds > 0 {
				opts.PollEvery = pollSeconds
			}

			return app.Run(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&logPath, "log", "", "logfile path (default ./logfile)")
	cmd.Flags().StringVar(&configPath, "config", "", "override config path (optional)")
	cmd.Flags().StringVar(&prefsPath, "prefs", "", "override preferences path (optional)")
	cmd.Flags().IntVar(&pollSeconds, "poll", 0, "refresh interval in seconds (optional)")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "nekmon: %v\n", err)
		os.Exit(1)
	}
}
