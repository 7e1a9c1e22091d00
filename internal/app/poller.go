package app

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/nek-tools/nekmon/internal/config"
	"github.com/nek-tools/nekmon/internal/logging"
	"github.com/nek-tools/nekmon/internal/neklog"
	"github.com/nek-tools/nekmon/internal/state"
)

const defaultPollInterval = time.Second

// poller re-reads the logfile at a fixed cadence and publishes snapshots.
// It carries just enough memory between ticks to light the lamps: the
// previous mtime for Update and the previous tick time for Jam.
type poller struct {
	cfg    config.Config
	store  *state.Store
	logger *logging.Logger

	lastMod  time.Time
	lastTick time.Time
}

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, cfg config.Config, logger *logging.Logger) {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}

	p := &poller{cfg: cfg, store: store, logger: logger}
	// Seed the mtime so a logfile that predates the monitor does not flash
	// Update on the first tick.
	p.lastMod, _ = fileModTime(cfg.LogPath)
	go func() {
		ticker := time.NewTicker(cfg.PollInterval)
		defer ticker.Stop()

		for {
			p.poll(time.Now())
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// poll runs one tick: stat, flash bookkeeping, full re-parse, publish.
func (p *poller) poll(now time.Time) {
	mod, statErr := fileModTime(p.cfg.LogPath)
	updateUntil, jamUntil := p.observe(now, mod)

	if statErr != nil {
		p.store.Update(state.Snapshot{JamFlashUntil: jamUntil}, statErr)
		p.logger.Warn("stat logfile failed", "path", p.cfg.LogPath, "err", statErr)
		return
	}

	history, err := neklog.ReadFile(p.cfg.LogPath)
	if err != nil {
		p.store.Update(state.Snapshot{JamFlashUntil: jamUntil}, err)
		p.logger.Warn("parse logfile failed", "path", p.cfg.LogPath, "err", err)
		return
	}

	p.store.Update(state.Snapshot{
		History:          history,
		FileModTime:      mod,
		UpdateFlashUntil: updateUntil,
		JamFlashUntil:    jamUntil,
	}, nil)
}

// observe updates the poller's tick memory and returns the lamp deadlines
// for this tick. A lamp that is not re-triggered gets a zero deadline and
// goes dark with the published snapshot.
func (p *poller) observe(now, mod time.Time) (updateUntil, jamUntil time.Time) {
	flash := p.cfg.PollInterval
	if flash <= 0 {
		flash = defaultPollInterval
	}

	if !p.lastTick.IsZero() && now.Sub(p.lastTick) > p.cfg.JamThreshold() {
		jamUntil = now.Add(flash)
	}
	p.lastTick = now

	if mod.After(p.lastMod) {
		updateUntil = now.Add(flash)
		p.lastMod = mod
	}
	return updateUntil, jamUntil
}

// fileModTime returns the logfile's mtime, or zero when it does not exist.
func fileModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
