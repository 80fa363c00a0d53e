// Package palette resolves raw terminal colors into the semantic color roles
// Navitone themes are built from.
package palette

// Palette is the full set of semantic theme colors. Every field is always
// populated: colors missing from the source degrade to documented defaults,
// never to empty strings.
type Palette struct {
	Accent     string `json:"accent"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Success    string `json:"success"`
	Warning    string `json:"warning"`
	Error      string `json:"error"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// RoleTable holds one hex color per required semantic role.
type RoleTable struct {
	Accent    string
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
}

// Profile controls how a source format degrades when color data is missing.
// Each theme source format supplies its own profile.
type Profile struct {
	// Fallback supplies per-role colors for roles absent from the source.
	Fallback RoleTable

	// DefaultBackground and DefaultForeground apply when the source's
	// primary colors are incomplete.
	DefaultBackground string
	DefaultForeground string

	// ScanRaw enables the raw-text regex scans and the monochrome gradient
	// degradation. Only the line-oriented terminal format uses them.
	ScanRaw bool
}
