package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/phasebounce/internal/raster"
	"github.com/san-kum/phasebounce/internal/scene"
)

// Theme recolors the solid-particle view and the status line. Phase-space
// views derive their colors from particle state and ignore the palette.
type Theme struct {
	Name    string
	Palette scene.Palette
	Accent  lipgloss.Color
	Muted   lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:    "classic",
		Palette: scene.DefaultPalette,
		Accent:  lipgloss.Color("#00ffff"),
		Muted:   lipgloss.Color("#666666"),
	}

	ThemeRetroGreen = Theme{
		Name: "retro",
		Palette: scene.Palette{
			Clear:    raster.RGBA(0, 17, 0, 255),
			Arena:    raster.RGBA(0, 85, 0, 255),
			Particle: raster.RGBA(136, 255, 136, 255),
		},
		Accent: lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name: "ocean",
		Palette: scene.Palette{
			Clear:    raster.RGBA(0, 26, 51, 255),
			Arena:    raster.RGBA(0, 119, 190, 255),
			Particle: raster.RGBA(255, 215, 0, 255),
		},
		Accent: lipgloss.Color("#00a8cc"),
		Muted:  lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name: "sunset",
		Palette: scene.Palette{
			Clear:    raster.RGBA(45, 27, 46, 255),
			Arena:    raster.RGBA(255, 107, 107, 255),
			Particle: raster.RGBA(254, 202, 87, 255),
		},
		Accent: lipgloss.Color("#ff9ff3"),
		Muted:  lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, or the classic theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
