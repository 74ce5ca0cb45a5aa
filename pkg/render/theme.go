package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the chrome used around token values in terminal output.
type Theme struct {
	Name    string
	Heading lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
	// Swatches enables background-colored color samples.
	Swatches bool
	Icons    ThemeIcons
}

// ThemeIcons defines the glyphs for a theme.
type ThemeIcons struct {
	Section string
	Bullet  string
	Swatch  string
	Invalid string
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:     "default",
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")), // blue
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Swatches: true,
		Icons: ThemeIcons{
			Section: "▍",
			Bullet:  "·",
			Swatch:  "    ",
			Invalid: "⚠",
		},
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:     "orca",
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")), // pale blue
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("179")), // muted gold
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("167")), // muted red
		Swatches: true,
		Icons: ThemeIcons{
			Section: "│",
			Bullet:  "·",
			Swatch:  "  ",
			Invalid: "!",
		},
	}
}

// MonoTheme returns a monochrome theme (no colors, no swatches).
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Heading: lipgloss.NewStyle().Bold(true),
		Key:     lipgloss.NewStyle(),
		Value:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Icons: ThemeIcons{
			Section: "#",
			Bullet:  "-",
			Swatch:  "",
			Invalid: "!",
		},
	}
}

// ThemeNames lists the built-in themes.
func ThemeNames() []string {
	return []string{"default", "orca", "mono"}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
