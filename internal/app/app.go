package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nek-tools/nekmon/internal/config"
	"github.com/nek-tools/nekmon/internal/logging"
	"github.com/nek-tools/nekmon/internal/prefs"
	"github.com/nek-tools/nekmon/internal/state"
	"github.com/nek-tools/nekmon/internal/ui"
)

// Options configure the nekmon application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/nekmon/prefs.toml
	LogPath    string // overrides the configured logfile path
	PollEvery  int    // seconds; zero uses the configured interval
}

// Run boots the nekmon TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if p := strings.TrimSpace(opts.LogPath); p != "" {
		cfg.LogPath = p
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = time.Duration(opts.PollEvery) * time.Second
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	logger, err := logging.New(diagLogPath())
	if err != nil {
		// The diagnostics file is best effort; run without it.
		logger, _ = logging.New("")
	}
	defer logger.Close()
	logger.Info("starting", "log_path", cfg.LogPath, "poll", cfg.PollInterval)

	store := &state.Store{}

	// Start background poller
	StartPoller(ctx, store, cfg, logger)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Config:    &cfg,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		PollTick:  cfg.PollInterval,
		Logger:    logger,
	}
	return ui.Run(uiOpts)
}

// diagLogPath returns where diagnostics go, or empty to discard them.
func diagLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "nekmon", "nekmon.log")
}
