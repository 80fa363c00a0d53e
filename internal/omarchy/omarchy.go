// Package omarchy locates the active Omarchy theme on disk.
package omarchy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Discovery errors.
var (
	ErrNoCurrentTheme = errors.New("no current omarchy theme")
)

// Theme is the directory holding the active theme's files.
type Theme struct {
	Name string
	Path string
}

// DefaultRoot returns the Omarchy config root, honoring XDG_CONFIG_HOME.
func DefaultRoot() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "omarchy")
}

// CurrentTheme resolves the current-theme symlink under root. Omarchy keeps
// the selection as a symlink at <root>/current/theme pointing at the theme
// directory; anything else means no theme is selected.
func CurrentTheme(root string) (Theme, error) {
	link := filepath.Join(root, "current", "theme")

	info, err := os.Lstat(link)
	if err != nil {
		return Theme{}, fmt.Errorf("%w: %s", ErrNoCurrentTheme, link)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return Theme{}, fmt.Errorf("%w: %s is not a symlink", ErrNoCurrentTheme, link)
	}

	target, err := os.Readlink(link)
	if err != nil {
		return Theme{}, fmt.Errorf("resolve current theme link: %w", err)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(link), target)
	}

	return Theme{Name: filepath.Base(target), Path: target}, nil
}
