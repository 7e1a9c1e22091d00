package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogPath != defaultLogPath {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath, defaultLogPath)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("PollInterval = %v, want %v", cfg.PollInterval, defaultPollInterval)
	}
	if cfg.JamFactor != defaultJamFactor {
		t.Fatalf("JamFactor = %v, want %v", cfg.JamFactor, defaultJamFactor)
	}
	if cfg.TailLines != defaultTailLines {
		t.Fatalf("TailLines = %d, want %d", cfg.TailLines, defaultTailLines)
	}
}

func TestLoad_ParsesAndExpandsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
log_path = "  ~/runs/turbChannel/logfile  "
poll_interval_ms = 500
jam_factor = 1.5
export_dir = "~/snapshots"
tail_lines = 100
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !strings.HasPrefix(cfg.LogPath, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", cfg.LogPath, home)
	}
	if cfg.PollInterval != 500*time.Millisecond {
		t.Fatalf("PollInterval = %v, want 500ms", cfg.PollInterval)
	}
	if cfg.JamFactor != 1.5 {
		t.Fatalf("JamFactor = %v, want 1.5", cfg.JamFactor)
	}
	if !strings.HasPrefix(cfg.ExportDir, home) {
		t.Fatalf("ExportDir = %q, want it under HOME %q", cfg.ExportDir, home)
	}
	if cfg.TailLines != 100 {
		t.Fatalf("TailLines = %d, want 100", cfg.TailLines)
	}
}

func TestLoad_ZeroValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
log_path = "   "
poll_interval_ms = 0
jam_factor = 0.5
tail_lines = -3
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogPath != defaultLogPath {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath, defaultLogPath)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("PollInterval = %v, want %v", cfg.PollInterval, defaultPollInterval)
	}
	if cfg.JamFactor != defaultJamFactor {
		t.Fatalf("JamFactor = %v, want %v (sub-1 factors rejected)", cfg.JamFactor, defaultJamFactor)
	}
	if cfg.TailLines != defaultTailLines {
		t.Fatalf("TailLines = %d, want %d", cfg.TailLines, defaultTailLines)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`log_path = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestJamThreshold(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want time.Duration
	}{
		{
			name: "defaults",
			cfg:  Config{},
			want: time.Duration(float64(defaultPollInterval) * defaultJamFactor),
		},
		{
			name: "explicit values",
			cfg:  Config{PollInterval: 2 * time.Second, JamFactor: 1.5},
			want: 3 * time.Second,
		},
		{
			name: "factor below one rejected",
			cfg:  Config{PollInterval: time.Second, JamFactor: 0.5},
			want: time.Duration(float64(time.Second) * defaultJamFactor),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.JamThreshold(); got != tt.want {
				t.Errorf("JamThreshold() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
