// Package extract pulls terminal color values out of Omarchy theme files.
//
// Two source formats are supported: the structured custom_theme.json
// descriptor and the line-oriented alacritty.toml color file. Both implement
// Extractor and return colors keyed by their terminal names (red, green,
// yellow, blue, magenta, cyan), normalized to "#rrggbb".
package extract

import "regexp"

// TerminalColorNames lists the six terminal colors the semantic roles are
// derived from.
var TerminalColorNames = []string{"red", "green", "yellow", "blue", "magenta", "cyan"}

// Extraction holds the raw colors found in one theme source.
type Extraction struct {
	// Colors maps terminal color names to normalized hex values.
	Colors map[string]string

	// Primary holds the background and foreground entries, if any.
	Primary map[string]string
}

// Extractor reads one theme source format. ok is false when the source
// cannot be parsed at all; a parseable source with no colors still reports
// ok so the resolver can degrade instead of failing.
type Extractor interface {
	Extract(data []byte) (Extraction, bool)
}

var hexValuePattern = regexp.MustCompile(`(?:#|0x)([0-9a-fA-F]{6})`)

// normalizeHex finds the first "#rrggbb" or "0xrrggbb" run in s and returns
// it in the canonical "#rrggbb" form.
func normalizeHex(s string) (string, bool) {
	match := hexValuePattern.FindStringSubmatch(s)
	if match == nil {
		return "", false
	}
	return "#" + match[1], true
}
