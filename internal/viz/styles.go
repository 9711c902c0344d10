package viz

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().Italic(true)
)

func (t Theme) title(s string) string  { return titleStyle.Foreground(t.Accent).Render(s) }
func (t Theme) status(s string) string { return statusStyle.Foreground(t.Accent).Render(s) }
func (t Theme) help(s string) string   { return helpStyle.Foreground(t.Muted).Render(s) }
