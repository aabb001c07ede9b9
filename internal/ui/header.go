package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the logo, the view tabs and the resolution status.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	tabs := make([]string, 0, viewCount)
	for v := View(0); v < viewCount; v++ {
		label := string(rune('1'+int(v))) + " " + v.String()
		if v == m.view {
			tabs = append(tabs, styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, styles.Tab.Render(label))
		}
	}

	left := styles.Logo.Render("pikeru") + "  " + strings.Join(tabs, "")
	right := m.statusText(styles)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) statusText(styles Styles) string {
	snap := m.snapshot
	switch {
	case !snap.HasResult:
		return styles.WarningText.Render("resolving...")
	case snap.Degraded():
		return styles.DangerText.Render("degraded")
	default:
		return styles.SuccessText.Render("ok")
	}
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	hints := make([]string, 0, 4)
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, styles.AccentText.Render(h.Key)+" "+h.Desc)
	}
	left := strings.Join(hints, "  ")

	right := ""
	if snap := m.snapshot; snap.HasResult {
		right = "loaded " + snap.LastLoaded.Format("15:04:05")
	}
	if m.notice != "" {
		right = m.notice + "  " + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Footer.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}
