package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the key binding overlay centered on screen.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Keys"))
	b.WriteString("\n")
	for i, group := range m.keys.FullHelp() {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, binding := range group {
			h := binding.Help()
			b.WriteString("\n")
			b.WriteString(styles.AccentText.Render(padRight(h.Key, 12)))
			b.WriteString(styles.Text.Render(h.Desc))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("themes "))
	for i, name := range ThemeNames() {
		if i > 0 {
			b.WriteString(styles.FaintText.Render(" "))
		}
		if name == m.theme.Name {
			b.WriteString(styles.AccentText.Bold(true).Render(name))
		} else {
			b.WriteString(styles.FaintText.Render(name))
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("esc to close"))

	box := styles.Panel.
		Inherit(styles.Surface).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
