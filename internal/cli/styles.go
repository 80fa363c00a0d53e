package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/navitone/themesync/internal/palette"
)

// renderSwatches converts a resolved palette into colored terminal swatches,
// one line per semantic role.
func renderSwatches(pal palette.Palette) string {
	entries := []struct {
		role string
		hex  string
	}{
		{"accent", pal.Accent},
		{"primary", pal.Primary},
		{"secondary", pal.Secondary},
		{"success", pal.Success},
		{"warning", pal.Warning},
		{"error", pal.Error},
		{"background", pal.Background},
		{"foreground", pal.Foreground},
	}

	label := lipgloss.NewStyle().Width(12)

	var builder strings.Builder
	for _, entry := range entries {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(entry.hex)).
			Render("      ")
		fmt.Fprintf(&builder, "%s %s %s\n", label.Render(entry.role), swatch, entry.hex)
	}
	return builder.String()
}
