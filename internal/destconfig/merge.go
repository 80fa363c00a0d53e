// Package destconfig rewrites the [theme] section of a destination TOML
// config while leaving every other line byte-identical.
package destconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/navitone/themesync/internal/palette"
)

// Merge errors.
var (
	ErrDestinationMissing = errors.New("destination config not found")
	ErrNoThemeSection     = errors.New("destination has no theme section")
)

// ThemeConfig is the block written into the destination config.
type ThemeConfig struct {
	Name   string          `json:"name"`
	Source string          `json:"source"`
	Colors palette.Palette `json:"colors"`
}

// Block renders the replacement theme section, one element per line.
func (c ThemeConfig) Block() []string {
	return []string{
		"[theme]",
		fmt.Sprintf("name = %q", c.Name),
		fmt.Sprintf("source = %q", c.Source),
		"",
		"[theme.colors]",
		fmt.Sprintf("accent = %q", c.Colors.Accent),
		fmt.Sprintf("primary = %q", c.Colors.Primary),
		fmt.Sprintf("secondary = %q", c.Colors.Secondary),
		fmt.Sprintf("success = %q", c.Colors.Success),
		fmt.Sprintf("warning = %q", c.Colors.Warning),
		fmt.Sprintf("error = %q", c.Colors.Error),
		fmt.Sprintf("background = %q", c.Colors.Background),
		fmt.Sprintf("foreground = %q", c.Colors.Foreground),
		"",
	}
}

// Merge replaces the destination's [theme] and [theme.*] sections with cfg's
// block. The destination must already exist; this tool never creates it.
func Merge(path string, cfg ThemeConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrDestinationMissing, path)
		}
		return fmt.Errorf("read destination config: %w", err)
	}

	merged := mergeText(string(data), cfg.Block())

	if err := os.WriteFile(path, []byte(merged), 0o644); err != nil {
		return fmt.Errorf("write destination config: %w", err)
	}
	return nil
}

// mergeText strips existing theme sections and appends the new block. The
// result is stable: merging the same block twice produces identical text.
func mergeText(text string, block []string) string {
	var builder strings.Builder
	for _, line := range strippedLines(text) {
		builder.WriteString(line)
	}

	out := builder.String()
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	// One blank line separates the block from preceding content. Skipped when
	// the kept text already ends blank, so repeated merges do not accumulate
	// empty lines.
	if out != "" && !strings.HasSuffix(out, "\n\n") {
		out += "\n"
	}

	for _, line := range block {
		out += line + "\n"
	}
	return out
}

// strippedLines returns the destination's lines (newline included) with all
// theme sections removed.
//
// The removal pass is a two-state machine: a [theme] or [theme.*] header
// enters the theme section and is dropped; any other [...] header leaves it
// and is kept. A header merely beginning with "[theme" (such as [themepark])
// does not leave the section.
func strippedLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	kept := make([]string, 0, len(lines))

	inTheme := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "[theme]" || strings.HasPrefix(trimmed, "[theme.") {
			inTheme = true
			continue
		}
		if inTheme && strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "[theme") {
			inTheme = false
		}
		if !inTheme {
			kept = append(kept, line)
		}
	}
	return kept
}
