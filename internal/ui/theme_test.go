package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/motodash/internal/moto"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Nightfox", "Kanagawa", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
}

func TestNextTheme(t *testing.T) {
	cases := map[string]string{
		"Nightfox": "Kanagawa",
		"Kanagawa": "Slate",
		"Slate":    "Nightfox",
		"Unknown":  "Nightfox",
	}
	for current, want := range cases {
		if got := NextTheme(current); got != want {
			t.Fatalf("NextTheme(%s) = %q, want %q", current, got, want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", got)
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestThemesDefineDeviceStatuses(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, status := range []string{"online", "offline", "pending", "unknown"} {
			if th.StatusColors[status] == "" {
				t.Fatalf("%s: missing status color %q", name, status)
			}
		}
		if len(th.SliceColors) == 0 {
			t.Fatalf("%s: no slice colors", name)
		}
	}
}

func TestSliceColorCycles(t *testing.T) {
	th := GetTheme("Nightfox")
	n := len(th.SliceColors)
	if got := th.SliceColor(n); got != th.SliceColors[0] {
		t.Fatalf("SliceColor(%d) = %q, want %q", n, got, th.SliceColors[0])
	}
	if got := th.SliceColor(-1); got != th.SurfaceAlt {
		t.Fatalf("SliceColor(-1) = %q, want SurfaceAlt", got)
	}
	if got := (Theme{SurfaceAlt: "#000"}).SliceColor(2); got != "#000" {
		t.Fatalf("SliceColor without palette = %q, want SurfaceAlt", got)
	}
}

func TestHealthStyleMatchesStatusColors(t *testing.T) {
	styles := GetTheme("Slate").Styles()
	if got, want := styles.HealthStyle(moto.Online).GetBackground(), styles.StatusStyle("online").GetBackground(); got != want {
		t.Fatalf("online background = %v, want %v", got, want)
	}
	if got, want := styles.HealthStyle(moto.Offline).GetBackground(), styles.StatusStyle("offline").GetBackground(); got != want {
		t.Fatalf("offline background = %v, want %v", got, want)
	}
	if got, want := styles.StatusStyle("degraded").GetBackground(), lipgloss.Color("#94a3b8"); got != want {
		t.Fatalf("unknown status background = %v, want muted %v", got, want)
	}
}
