package destconfig

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// DestTheme mirrors the [theme] tables of the destination config.
type DestTheme struct {
	Name   string            `toml:"name" json:"name"`
	Source string            `toml:"source" json:"source"`
	Colors map[string]string `toml:"colors" json:"colors"`
}

type destDocument struct {
	Theme *DestTheme `toml:"theme"`
}

// ReadTheme decodes the theme section currently written to the destination
// config. Unlike the merge path, this is a real TOML decode; it is only used
// for reporting, never for rewriting.
func ReadTheme(path string) (*DestTheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDestinationMissing, path)
		}
		return nil, fmt.Errorf("read destination config: %w", err)
	}

	var doc destDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse destination config: %w", err)
	}
	if doc.Theme == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoThemeSection, path)
	}
	return doc.Theme, nil
}
