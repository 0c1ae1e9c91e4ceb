package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/motodash/internal/action"
	"github.com/five82/motodash/internal/moto"
)

// renderHeader renders the live connectivity strip.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < 90

	parts := []string{bg.Render("motodash", styles.Logo)}

	if m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, bg.Render("Connecting...", styles.WarningText.Bold(true)))
		return styles.Header.Width(m.width).MaxHeight(1).Render(bg.Join(parts, "  "))
	}

	if m.snapshot.IsOffline() {
		parts = append(parts, bg.Render("DEVICE OFFLINE", styles.DangerText.Bold(true)))
	}

	for _, sub := range moto.Subsystems {
		parts = append(parts, m.subsystemBadge(sub, styles, bg))
	}

	if m.snapshot.HasGPS && !compact {
		parts = append(parts, bg.Render(m.snapshot.GPS.String(), styles.MutedText))
	}

	if ts := m.formatTimestamp(); ts != "" {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	// The cause is logged by the poller; the strip only shows that the last
	// poll failed.
	if m.snapshot.LastError != nil && !m.snapshot.IsOffline() {
		parts = append(parts, bg.Render(action.StatusFailure, styles.DangerText.Bold(true)))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		MaxHeight(1).
		Render(bg.Join(parts, "  "))
}

// subsystemBadge renders "<title> ●" colored by the last polled status.
func (m Model) subsystemBadge(sub moto.Subsystem, styles Styles, bg BgStyle) string {
	dot := styles.FaintText
	if status, ok := m.snapshot.Subsystem(sub); ok {
		if status.Online() {
			dot = styles.SuccessText
		} else {
			dot = styles.DangerText
		}
	}
	return bg.Render(sub.Title(), styles.MutedText) + bg.Space() + bg.Render("●", dot)
}

// formatTimestamp formats the last update time with relative indicator.
func (m Model) formatTimestamp() string {
	if m.lastUpdated.IsZero() {
		return ""
	}

	timeSince := time.Since(m.lastUpdated)
	timeStr := m.lastUpdated.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	}

	return timeStr
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.page {
	case PageStatus, PageMotorcycle:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "Open"},
			{"esc", "Menu"},
			{"?", "More"},
		}
	case PageSettings:
		mouse := "Mouse on"
		if !m.mouse {
			mouse = "Mouse off"
		}
		commands = []cmd{
			{"T", m.theme.Name},
			{"M", mouse},
			{"r", "Reload log"},
			{"j/k", "Scroll"},
			{"esc", "Menu"},
			{"?", "More"},
		}
	default: // PageHome
		commands = []cmd{
			{"←/→", "Rotate"},
			{"enter", "Open"},
			{"s", "Status"},
			{"m", "Motorcycle"},
			{"c", "Settings"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	return styles.Footer.Width(m.width).MaxHeight(1).Render(bg.Join(segments, "  "))
}
