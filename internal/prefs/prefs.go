// Package prefs handles nekmon user preferences persistence.
// Preferences are stored in ~/.config/nekmon/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// ChartCount is the number of charts whose axis mode is remembered.
const ChartCount = 5

// Prefs holds user preferences for nekmon.
type Prefs struct {
	Theme     string   `toml:"theme"`
	AxisModes []string `toml:"axis_modes"` // "step" or "time", one per chart
}

const (
	defaultPrefsPath = "~/.config/nekmon/prefs.toml"
	defaultTheme     = "Nightfox"

	// AxisStep plots against the step number, AxisTime against solution time.
	AxisStep = "step"
	AxisTime = "time"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

func defaultAxisModes() []string {
	modes := make([]string, ChartCount)
	for i := range modes {
		modes[i] = AxisStep
	}
	return modes
}

// Load reads preferences from the given path, falling back to defaults if missing.
func Load(path string) (Prefs, error) {
	fallback := Prefs{Theme: defaultTheme, AxisModes: defaultAxisModes()}

	resolved, err := resolvePath(path)
	if err != nil {
		return fallback, nil
	}

	prefs := Prefs{Theme: defaultTheme}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fallback, nil
		}
		return fallback, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fallback, nil // Graceful degradation
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return fallback, nil // Graceful degradation
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	prefs.AxisModes = normalizeAxisModes(prefs.AxisModes)

	return prefs, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	p.AxisModes = normalizeAxisModes(p.AxisModes)

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

// normalizeAxisModes pads, truncates, and sanitizes the stored modes so
// callers always see exactly ChartCount valid entries.
func normalizeAxisModes(modes []string) []string {
	out := defaultAxisModes()
	for i, m := range modes {
		if i >= ChartCount {
			break
		}
		if strings.TrimSpace(m) == AxisTime {
			out[i] = AxisTime
		}
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
