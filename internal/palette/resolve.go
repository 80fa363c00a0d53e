package palette

import (
	"regexp"

	"github.com/navitone/themesync/internal/extract"
	"github.com/navitone/themesync/internal/logging"
)

var (
	backgroundPattern = regexp.MustCompile(`background\s*=\s*["']?(?:#|0x)([0-9a-fA-F]{6})["']?`)
	foregroundPattern = regexp.MustCompile(`foreground\s*=\s*["']?(?:#|0x)([0-9a-fA-F]{6})["']?`)
)

// Resolve maps an extraction onto the semantic roles. raw is the theme
// source's full text, used only for the terminal profile's regex scans.
// Resolution never fails; missing data degrades to the profile's defaults.
func Resolve(ex extract.Extraction, raw []byte, prof Profile) Palette {
	logger := logging.Component("palette")

	var pal Palette
	if len(ex.Colors) == 0 && prof.ScanRaw {
		foreground := MonochromeForeground
		if match := foregroundPattern.FindSubmatch(raw); match != nil {
			foreground = "#" + string(match[1])
		}
		// The discovered foreground is reported only; the gradient itself
		// is fixed.
		logger.Info().Str("foreground", foreground).Msg("theme has no color palette, using monochrome gradient")
		applyTable(&pal, Grayscale)
	} else {
		pal.Accent = pick(ex.Colors, "blue", prof.Fallback.Accent)
		pal.Primary = pick(ex.Colors, "cyan", prof.Fallback.Primary)
		pal.Secondary = pick(ex.Colors, "magenta", prof.Fallback.Secondary)
		pal.Success = pick(ex.Colors, "green", prof.Fallback.Success)
		pal.Warning = pick(ex.Colors, "yellow", prof.Fallback.Warning)
		pal.Error = pick(ex.Colors, "red", prof.Fallback.Error)
	}

	background, haveBackground := ex.Primary["background"]
	foreground, haveForeground := ex.Primary["foreground"]
	if haveBackground && haveForeground {
		pal.Background = background
		pal.Foreground = foreground
	} else {
		pal.Background = prof.DefaultBackground
		pal.Foreground = prof.DefaultForeground
		if prof.ScanRaw {
			if match := backgroundPattern.FindSubmatch(raw); match != nil {
				pal.Background = "#" + string(match[1])
			}
			if match := foregroundPattern.FindSubmatch(raw); match != nil {
				pal.Foreground = "#" + string(match[1])
			}
		}
	}

	return pal
}

func pick(colors map[string]string, name, fallback string) string {
	if hex, ok := colors[name]; ok {
		return hex
	}
	return fallback
}

func applyTable(pal *Palette, table RoleTable) {
	pal.Accent = table.Accent
	pal.Primary = table.Primary
	pal.Secondary = table.Secondary
	pal.Success = table.Success
	pal.Warning = table.Warning
	pal.Error = table.Error
}
