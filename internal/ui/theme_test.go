package ui

import "testing"

func TestGetTheme_KnownAndFallback(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name); got.Name != name {
			t.Errorf("GetTheme(%q).Name = %q", name, got.Name)
		}
	}

	fallback := GetTheme("not-a-theme")
	if fallback.Name != "Nightfox" {
		t.Fatalf("GetTheme(unknown).Name = %q, want Nightfox", fallback.Name)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	names := ThemeNames()
	seen := map[string]bool{}

	current := names[0]
	for range names {
		seen[current] = true
		current = NextTheme(current)
	}

	if current != names[0] {
		t.Fatalf("NextTheme cycle ended at %q, want %q", current, names[0])
	}
	for _, name := range names {
		if !seen[name] {
			t.Errorf("NextTheme cycle never visited %q", name)
		}
	}
}

func TestNextTheme_UnknownResets(t *testing.T) {
	if got := NextTheme("bogus"); got != ThemeNames()[0] {
		t.Fatalf("NextTheme(bogus) = %q, want %q", got, ThemeNames()[0])
	}
}

func TestThemes_HaveChartColors(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		for i, c := range theme.ChartColors {
			if c == "" {
				t.Errorf("theme %q chart color %d is empty", name, i)
			}
		}
	}
}
