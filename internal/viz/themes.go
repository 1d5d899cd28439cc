package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour scheme behind every style in this package.
type Theme struct {
	Name     string
	Accent   lipgloss.Color
	Value    lipgloss.Color
	Label    lipgloss.Color
	Muted    lipgloss.Color
	Border   lipgloss.Color
	Equation lipgloss.Color
	Selected lipgloss.Color
	Warning  lipgloss.Color
	Error    lipgloss.Color
}

var (
	ThemeDefault = Theme{
		Name:     "default",
		Accent:   lipgloss.Color("#00cccc"),
		Value:    lipgloss.Color("#00ccff"),
		Label:    lipgloss.Color("#888899"),
		Muted:    lipgloss.Color("#555566"),
		Border:   lipgloss.Color("#444466"),
		Equation: lipgloss.Color("#ff88ff"),
		Selected: lipgloss.Color("#ffffff"),
		Warning:  lipgloss.Color("#ffaa00"),
		Error:    lipgloss.Color("#ff4444"),
	}

	// green phosphor
	ThemeRetro = Theme{
		Name:     "retro",
		Accent:   lipgloss.Color("#00ff00"),
		Value:    lipgloss.Color("#88ff88"),
		Label:    lipgloss.Color("#00aa00"),
		Muted:    lipgloss.Color("#005500"),
		Border:   lipgloss.Color("#007700"),
		Equation: lipgloss.Color("#ccffcc"),
		Selected: lipgloss.Color("#00ff00"),
		Warning:  lipgloss.Color("#ffff00"),
		Error:    lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Accent:   lipgloss.Color("#ffffff"),
		Value:    lipgloss.Color("#0088ff"),
		Label:    lipgloss.Color("#aaaaaa"),
		Muted:    lipgloss.Color("#666666"),
		Border:   lipgloss.Color("#888888"),
		Equation: lipgloss.Color("#cccccc"),
		Selected: lipgloss.Color("#ffffff"),
		Warning:  lipgloss.Color("#ffaa00"),
		Error:    lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:     "ocean",
		Accent:   lipgloss.Color("#00a8cc"),
		Value:    lipgloss.Color("#ffd700"),
		Label:    lipgloss.Color("#4488aa"),
		Muted:    lipgloss.Color("#335577"),
		Border:   lipgloss.Color("#0077be"),
		Equation: lipgloss.Color("#e0f0ff"),
		Selected: lipgloss.Color("#e0f0ff"),
		Warning:  lipgloss.Color("#ffcc00"),
		Error:    lipgloss.Color("#ff4444"),
	}

	Themes = []Theme{ThemeDefault, ThemeRetro, ThemeMinimal, ThemeOcean}

	CurrentTheme = ThemeDefault
)

// SetTheme switches every style to the named theme.
func SetTheme(name string) error {
	for _, t := range Themes {
		if t.Name == name {
			CurrentTheme = t
			applyTheme(t)
			return nil
		}
	}
	return fmt.Errorf("unknown theme: %s (available: %v)", name, ThemeNames())
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
