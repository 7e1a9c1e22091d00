package ui

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nek-tools/nekmon/internal/prefs"
)

func testModel(t *testing.T) Model {
	t.Helper()
	return New(Options{
		Prefs:     prefs.Prefs{Theme: "Nightfox", AxisModes: []string{"step", "step", "step", "step", "step"}},
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
}

func TestNew_PadsShortAxisModes(t *testing.T) {
	m := New(Options{
		Prefs:     prefs.Prefs{AxisModes: []string{prefs.AxisTime}},
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})

	want := []string{prefs.AxisTime, prefs.AxisStep, prefs.AxisStep, prefs.AxisStep, prefs.AxisStep}
	if !reflect.DeepEqual(m.axisModes, want) {
		t.Fatalf("axisModes = %v, want %v", m.axisModes, want)
	}
}

func TestToggleAxis_FlipsAndPersists(t *testing.T) {
	m := testModel(t)

	m.toggleAxis(2)
	if m.axisModes[2] != prefs.AxisTime {
		t.Fatalf("axisModes[2] = %q after toggle, want %q", m.axisModes[2], prefs.AxisTime)
	}

	m.toggleAxis(2)
	if m.axisModes[2] != prefs.AxisStep {
		t.Fatalf("axisModes[2] = %q after second toggle, want %q", m.axisModes[2], prefs.AxisStep)
	}

	// The last toggle should have been written through to the prefs file.
	m.toggleAxis(4)
	saved, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.AxisModes[4] != prefs.AxisTime {
		t.Fatalf("persisted axisModes[4] = %q, want %q", saved.AxisModes[4], prefs.AxisTime)
	}
}

func TestToggleAxis_IgnoresOutOfRange(t *testing.T) {
	m := testModel(t)
	before := append([]string(nil), m.axisModes...)

	m.toggleAxis(-1)
	m.toggleAxis(5)

	if !reflect.DeepEqual(m.axisModes, before) {
		t.Fatalf("axisModes = %v after out-of-range toggles, want %v", m.axisModes, before)
	}
}

func TestNew_UnknownThemeFallsBack(t *testing.T) {
	m := New(Options{Prefs: prefs.Prefs{Theme: "bogus"}})
	if m.theme.Name != "Nightfox" {
		t.Fatalf("theme.Name = %q, want Nightfox", m.theme.Name)
	}
}
