// Package syncer orchestrates one theme synchronization pass: discover the
// current Omarchy theme, extract its colors, resolve the semantic palette,
// and merge the result into the destination config.
package syncer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/navitone/themesync/internal/destconfig"
	"github.com/navitone/themesync/internal/extract"
	"github.com/navitone/themesync/internal/logging"
	"github.com/navitone/themesync/internal/omarchy"
	"github.com/navitone/themesync/internal/palette"
)

// ErrNoThemeData means the current theme offered no usable color source.
var ErrNoThemeData = errors.New("could not extract colors from theme")

// Options configure a synchronization pass.
type Options struct {
	// OmarchyRoot is the Omarchy config root holding current/theme.
	OmarchyRoot string

	// Destination is the config file whose [theme] section is rewritten.
	Destination string
}

// Result describes a completed (or previewed) resolution.
type Result struct {
	Theme   string                 `json:"theme"`
	Source  string                 `json:"source"`
	Palette palette.Palette        `json:"palette"`
	Config  destconfig.ThemeConfig `json:"config"`
}

// source pairs one candidate theme file with the extractor and resolution
// profile for its format. Candidates are tried in priority order; the
// structured descriptor wins over the line-oriented file.
type source struct {
	name      string
	extractor extract.Extractor
	profile   palette.Profile
}

func candidateSources() []source {
	return []source{
		{name: "custom_theme.json", extractor: extract.Descriptor{}, profile: palette.DescriptorProfile},
		{name: "alacritty.toml", extractor: extract.Terminal{}, profile: palette.TerminalProfile},
	}
}

// Run performs a full pass and rewrites the destination config.
func Run(opts Options) (*Result, error) {
	logger := logging.Component("syncer")

	theme, err := omarchy.CurrentTheme(opts.OmarchyRoot)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("theme", theme.Name).Msg("current omarchy theme")

	result, err := Resolve(theme)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("source", result.Source).Msg("palette resolved")

	if err := destconfig.Merge(opts.Destination, result.Config); err != nil {
		return nil, err
	}
	logger.Info().Str("destination", opts.Destination).Str("name", result.Config.Name).Msg("theme applied")

	return result, nil
}

// Resolve extracts and resolves the palette for a theme without touching the
// destination. The first candidate source that exists is authoritative: if
// it cannot be parsed, lower-priority sources are not consulted.
func Resolve(theme omarchy.Theme) (*Result, error) {
	for _, src := range candidateSources() {
		path := filepath.Join(theme.Path, src.name)

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read theme source %s: %w", path, err)
		}

		ex, ok := src.extractor.Extract(data)
		if !ok {
			return nil, fmt.Errorf("%w: unparseable source %s", ErrNoThemeData, path)
		}

		pal := palette.Resolve(ex, data, src.profile)
		return &Result{
			Theme:   theme.Name,
			Source:  path,
			Palette: pal,
			Config: destconfig.ThemeConfig{
				Name:   "omarchy-" + theme.Name,
				Source: "omarchy",
				Colors: pal,
			},
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNoThemeData, theme.Path)
}
