package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings nekmon needs to watch a run.
type Config struct {
	LogPath      string
	PollInterval time.Duration
	JamFactor    float64 // a tick later than PollInterval*JamFactor lights the Jam lamp
	ExportDir    string
	TailLines    int
}

const (
	defaultConfigPath   = "~/.config/nekmon/config.toml"
	defaultLogPath      = "./logfile"
	defaultPollInterval = time.Second
	defaultJamFactor    = 1.1
	defaultExportDir    = "."
	defaultTailLines    = 400
)

// Load locates and parses the nekmon config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		LogPath:      defaultLogPath,
		PollInterval: defaultPollInterval,
		JamFactor:    defaultJamFactor,
		ExportDir:    defaultExportDir,
		TailLines:    defaultTailLines,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogPath        string  `toml:"log_path"`
		PollIntervalMS int     `toml:"poll_interval_ms"`
		JamFactor      float64 `toml:"jam_factor"`
		ExportDir      string  `toml:"export_dir"`
		TailLines      int     `toml:"tail_lines"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if p := strings.TrimSpace(raw.LogPath); p != "" {
		cfg.LogPath = mustExpand(p)
	}
	if raw.PollIntervalMS > 0 {
		cfg.PollInterval = time.Duration(raw.PollIntervalMS) * time.Millisecond
	}
	if raw.JamFactor > 1 {
		cfg.JamFactor = raw.JamFactor
	}
	if d := strings.TrimSpace(raw.ExportDir); d != "" {
		cfg.ExportDir = mustExpand(d)
	}
	if raw.TailLines > 0 {
		cfg.TailLines = raw.TailLines
	}

	return cfg, nil
}

// JamThreshold returns the tick gap beyond which the poll counts as jammed.
func (c Config) JamThreshold() time.Duration {
	factor := c.JamFactor
	if factor <= 1 {
		factor = defaultJamFactor
	}
	interval := c.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return time.Duration(float64(interval) * factor)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
