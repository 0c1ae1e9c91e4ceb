package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Screen rows above page content: header strip and command bar.
const contentTop = 2

// renderBox draws content inside a rounded border with a title in the top
// edge.
func (m Model) renderBox(title, content string, width, height int) string {
	styles := m.theme.Styles()
	border := lipgloss.RoundedBorder()
	color := lipgloss.Color(m.theme.Border)

	inner := max(width-2, 0)
	label := ""
	if title != "" {
		label = " " + truncate(title, max(inner-2, 0)) + " "
	}
	fill := max(inner-lipgloss.Width(label), 0)
	edge := lipgloss.NewStyle().Foreground(color)
	top := edge.Render(border.TopLeft) +
		styles.AccentText.Bold(true).Render(label) +
		edge.Render(strings.Repeat(border.Top, fill)+border.TopRight)

	body := lipgloss.NewStyle().
		Border(border, false, true, true, true).
		BorderForeground(color).
		Width(inner).
		Height(max(height-2, 0)).
		Render(content)

	return top + "\n" + body
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 0 {
		return ""
	}
	if n == 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// truncateMiddle keeps both ends of s, useful for file paths.
func truncateMiddle(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 5 {
		return truncate(s, n)
	}
	head := (n - 1) / 2
	tail := n - 1 - head
	return string(r[:head]) + "…" + string(r[len(r)-tail:])
}
