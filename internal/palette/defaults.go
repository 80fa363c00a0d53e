package palette

// DescriptorFallback fills roles missing from a custom_theme.json descriptor.
var DescriptorFallback = RoleTable{
	Accent:    "#38d6fa",
	Primary:   "#048ba8",
	Secondary: "#d35f5f",
	Success:   "#a9fbd7",
	Warning:   "#9f87af",
	Error:     "#9c528b",
}

// TerminalFallback fills roles missing from an alacritty.toml color file.
var TerminalFallback = RoleTable{
	Accent:    "#6272a4",
	Primary:   "#8be9fd",
	Secondary: "#ff79c6",
	Success:   "#50fa7b",
	Warning:   "#f1fa8c",
	Error:     "#ff5555",
}

// Grayscale is the monochrome gradient used when a theme defines no color
// palette at all.
var Grayscale = RoleTable{
	Accent:    "#777777",
	Primary:   "#999999",
	Secondary: "#BBBBBB",
	Success:   "#AAAAAA",
	Warning:   "#888888",
	Error:     "#666666",
}

// MonochromeForeground is reported when a colorless theme does not even
// declare a foreground.
const MonochromeForeground = "#EFEFEF"

// DescriptorProfile resolves colors extracted from custom_theme.json.
var DescriptorProfile = Profile{
	Fallback:          DescriptorFallback,
	DefaultBackground: "#000000",
	DefaultForeground: "#ffffff",
}

// TerminalProfile resolves colors extracted from alacritty.toml.
var TerminalProfile = Profile{
	Fallback:          TerminalFallback,
	DefaultBackground: "#282a36",
	DefaultForeground: "#f8f8f2",
	ScanRaw:           true,
}
