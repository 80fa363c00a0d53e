package extract

import "strings"

// Terminal extracts colors from a line-oriented alacritty.toml color file.
//
// This is deliberately not a full TOML parser: it tracks the current color
// section with a small state machine and pattern-matches hex values out of
// key = value lines, which tolerates the loose files real themes ship.
type Terminal struct{}

type section int

const (
	sectionNone section = iota
	sectionNormal
	sectionBright
	sectionPrimary
	sectionOther
)

// Extract implements Extractor. It never reports a parse failure: input with
// no recognizable color lines yields empty maps and the resolver degrades to
// the monochrome gradient.
func (Terminal) Extract(data []byte) (Extraction, bool) {
	normal := make(map[string]string)
	bright := make(map[string]string)
	primary := make(map[string]string)

	state := sectionNone
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, "[colors.normal]"):
			state = sectionNormal
			continue
		case strings.HasPrefix(line, "[colors.bright]"):
			state = sectionBright
			continue
		case strings.HasPrefix(line, "[colors.primary]"):
			state = sectionPrimary
			continue
		case strings.HasPrefix(line, "[") && !strings.Contains(line, "colors"):
			state = sectionNone
			continue
		case strings.HasPrefix(line, "[colors."):
			state = sectionOther
			continue
		}

		// Comment lines are skipped outright, which also drops bare
		// "#rrggbb" values that have no key.
		if strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.Contains(line, "=") {
			continue
		}
		if !strings.Contains(line, "0x") && !strings.Contains(line, "#") {
			continue
		}

		key, value, _ := strings.Cut(line, "=")
		key = strings.Trim(strings.TrimSpace(key), `"'`)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		// First hex run wins, so inline comments after the value are ignored.
		hex, ok := normalizeHex(value)
		if !ok {
			continue
		}

		name := key
		if idx := strings.LastIndex(key, "."); idx >= 0 {
			name = key[idx+1:]
		}

		switch state {
		case sectionNormal:
			normal[name] = hex
		case sectionBright:
			bright[name] = hex
		case sectionPrimary:
			primary[name] = hex
		}
	}

	return Extraction{
		Colors:  mergeNormalBright(normal, bright),
		Primary: primary,
	}, true
}

// mergeNormalBright prefers the normal palette and fills the six canonical
// colors from the bright palette only where normal has no entry.
func mergeNormalBright(normal, bright map[string]string) map[string]string {
	merged := make(map[string]string, len(normal))
	for name, hex := range normal {
		merged[name] = hex
	}
	for _, name := range TerminalColorNames {
		if _, ok := merged[name]; ok {
			continue
		}
		if hex, ok := bright[name]; ok {
			merged[name] = hex
		}
	}
	return merged
}
