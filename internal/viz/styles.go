package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Rounded panel around a result
	Panel lipgloss.Style

	Title       lipgloss.Style
	Subtle      lipgloss.Style
	MetricValue lipgloss.Style
	MetricLabel lipgloss.Style

	// NaN and Inf results
	Warning lipgloss.Style

	ErrorText  lipgloss.Style
	Equation   lipgloss.Style
	Figure     lipgloss.Style
	KeyName    lipgloss.Style
	KeyHint    lipgloss.Style
	Cursor     lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
)

func init() {
	applyTheme(CurrentTheme)
}

func applyTheme(t Theme) {
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2)

	Title = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	MetricValue = lipgloss.NewStyle().Bold(true).Foreground(t.Value)
	MetricLabel = lipgloss.NewStyle().Foreground(t.Label)
	Warning = lipgloss.NewStyle().Bold(true).Foreground(t.Warning)
	ErrorText = lipgloss.NewStyle().Bold(true).Foreground(t.Error)
	Equation = lipgloss.NewStyle().Foreground(t.Equation)
	Figure = lipgloss.NewStyle().Foreground(t.Value)
	KeyName = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	KeyHint = lipgloss.NewStyle().Foreground(t.Muted)
	Cursor = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	Selected = lipgloss.NewStyle().Bold(true).Foreground(t.Selected)
	Unselected = lipgloss.NewStyle().Foreground(t.Muted)
}

// Separator draws a muted rule with a centre diamond.
func Separator(width int) string {
	if width < 8 {
		return Subtle.Render(strings.Repeat("─", width))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}

// Keys renders "key action" hint pairs.
func Keys(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(KeyName.Render(pairs[i]))
		b.WriteString(KeyHint.Render(" " + pairs[i+1]))
	}
	return b.String()
}
