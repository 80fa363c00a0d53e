package extract

import "encoding/json"

// Descriptor extracts colors from a custom_theme.json theme descriptor.
//
// The colors.terminal table is preferred; apps.alacritty.colors.normal is the
// fallback. A descriptor that has apps.alacritty but lacks the nested colors
// tables is treated as a parse failure rather than an empty palette. A valid
// descriptor with neither table yields an empty color map,
// which the resolver fills from the descriptor fallback table.
type Descriptor struct{}

// Extract implements Extractor.
func (Descriptor) Extract(data []byte) (Extraction, bool) {
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return Extraction{}, false
	}

	ex := Extraction{
		Colors:  make(map[string]string),
		Primary: make(map[string]string),
	}

	if terminal, ok := nestedMap(root, "colors", "terminal"); ok {
		copyColors(ex.Colors, terminal)
	} else if app, ok := nestedMap(root, "apps", "alacritty"); ok {
		normal, ok := nestedMap(app, "colors", "normal")
		if !ok {
			return Extraction{}, false
		}
		copyColors(ex.Colors, normal)
	}

	if primary, ok := nestedMap(root, "colors", "primary"); ok {
		copyPrimary(ex.Primary, primary)
	} else if app, ok := nestedMap(root, "apps", "alacritty"); ok {
		primary, ok := nestedMap(app, "colors", "primary")
		if !ok {
			return Extraction{}, false
		}
		copyPrimary(ex.Primary, primary)
	}

	return ex, true
}

// nestedMap walks a path of string keys through nested JSON objects.
func nestedMap(root map[string]any, path ...string) (map[string]any, bool) {
	current := root
	for _, key := range path {
		child, ok := current[key].(map[string]any)
		if !ok {
			return nil, false
		}
		current = child
	}
	return current, true
}

func copyColors(dst map[string]string, src map[string]any) {
	for _, name := range TerminalColorNames {
		value, ok := src[name].(string)
		if !ok {
			continue
		}
		if hex, ok := normalizeHex(value); ok {
			dst[name] = hex
		}
	}
}

func copyPrimary(dst map[string]string, src map[string]any) {
	for _, name := range []string{"background", "foreground"} {
		value, ok := src[name].(string)
		if !ok {
			continue
		}
		if hex, ok := normalizeHex(value); ok {
			dst[name] = hex
		}
	}
}
