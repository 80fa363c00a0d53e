package destconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/navitone/themesync/internal/palette"
)

func testThemeConfig() ThemeConfig {
	return ThemeConfig{
		Name:   "omarchy-gruvbox",
		Source: "omarchy",
		Colors: palette.Palette{
			Accent:     "#458588",
			Primary:    "#689d6a",
			Secondary:  "#b16286",
			Success:    "#98971a",
			Warning:    "#d79921",
			Error:      "#cc241d",
			Background: "#282828",
			Foreground: "#ebdbb2",
		},
	}
}

func writeDest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write destination: %v", err)
	}
	return path
}

func readDest(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	return string(data)
}

func TestMergeReplacesThemeSections(t *testing.T) {
	dest := writeDest(t, `[server]
url = "https://music.example.com"

[theme]
name = "old"

[theme.colors]
accent = "#000000"

[playback]
volume = 80
`)

	if err := Merge(dest, testThemeConfig()); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	content := readDest(t, dest)
	if strings.Contains(content, `name = "old"`) || strings.Contains(content, `accent = "#000000"`) {
		t.Fatalf("old theme section must be removed:\n%s", content)
	}
	if !strings.Contains(content, "[server]\nurl = \"https://music.example.com\"\n") {
		t.Fatalf("unrelated section before theme must be preserved:\n%s", content)
	}
	if !strings.Contains(content, "[playback]\nvolume = 80\n") {
		t.Fatalf("unrelated section after theme must be preserved:\n%s", content)
	}
	if count := strings.Count(content, "[theme]\n"); count != 1 {
		t.Fatalf("expected exactly one [theme] section, got %d:\n%s", count, content)
	}
	if !strings.Contains(content, `name = "omarchy-gruvbox"`) {
		t.Fatalf("new theme name missing:\n%s", content)
	}
}

func TestMergeIdempotent(t *testing.T) {
	dest := writeDest(t, `[other]
x = 1
`)

	cfg := testThemeConfig()
	if err := Merge(dest, cfg); err != nil {
		t.Fatalf("first Merge: %v", err)
	}
	first := readDest(t, dest)

	if err := Merge(dest, cfg); err != nil {
		t.Fatalf("second Merge: %v", err)
	}
	second := readDest(t, dest)

	if first != second {
		t.Fatalf("merge is not idempotent:\nfirst:\n%q\nsecond:\n%q", first, second)
	}
}

func TestMergeThemeAtStartAndEOF(t *testing.T) {
	dest := writeDest(t, `[theme]
name = "old"

[other]
y = 2

[theme.colors]`)

	if err := Merge(dest, testThemeConfig()); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	content := readDest(t, dest)
	if strings.Contains(content, `name = "old"`) {
		t.Fatalf("leading theme section must be removed:\n%s", content)
	}
	if !strings.Contains(content, "[other]\ny = 2\n") {
		t.Fatalf("middle section must survive:\n%s", content)
	}
	if count := strings.Count(content, "[theme.colors]"); count != 1 {
		t.Fatalf("trailing header must be removed, got %d occurrences:\n%s", count, content)
	}
}

func TestMergeMissingDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	err := Merge(path, testThemeConfig())
	if !errors.Is(err, ErrDestinationMissing) {
		t.Fatalf("expected ErrDestinationMissing, got %v", err)
	}
}

func TestBlockOrder(t *testing.T) {
	block := testThemeConfig().Block()
	want := []string{
		"[theme]",
		`name = "omarchy-gruvbox"`,
		`source = "omarchy"`,
		"",
		"[theme.colors]",
		`accent = "#458588"`,
		`primary = "#689d6a"`,
		`secondary = "#b16286"`,
		`success = "#98971a"`,
		`warning = "#d79921"`,
		`error = "#cc241d"`,
		`background = "#282828"`,
		`foreground = "#ebdbb2"`,
		"",
	}

	if len(block) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(block), block)
	}
	for i, line := range want {
		if block[i] != line {
			t.Fatalf("line %d: expected %q, got %q", i, line, block[i])
		}
	}
}

func TestReadThemeRoundTrip(t *testing.T) {
	dest := writeDest(t, `[server]
url = "https://music.example.com"
`)

	cfg := testThemeConfig()
	if err := Merge(dest, cfg); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	theme, err := ReadTheme(dest)
	if err != nil {
		t.Fatalf("ReadTheme: %v", err)
	}

	if theme.Name != cfg.Name || theme.Source != cfg.Source {
		t.Fatalf("unexpected theme header: %+v", theme)
	}
	want := map[string]string{
		"accent":     cfg.Colors.Accent,
		"primary":    cfg.Colors.Primary,
		"secondary":  cfg.Colors.Secondary,
		"success":    cfg.Colors.Success,
		"warning":    cfg.Colors.Warning,
		"error":      cfg.Colors.Error,
		"background": cfg.Colors.Background,
		"foreground": cfg.Colors.Foreground,
	}
	for role, hex := range want {
		if got := theme.Colors[role]; got != hex {
			t.Fatalf("role %s: expected %q, got %q", role, hex, got)
		}
	}
}

func TestReadThemeNoSection(t *testing.T) {
	dest := writeDest(t, "[server]\nurl = \"x\"\n")
	_, err := ReadTheme(dest)
	if !errors.Is(err, ErrNoThemeSection) {
		t.Fatalf("expected ErrNoThemeSection, got %v", err)
	}
}
