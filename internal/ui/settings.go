package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/motodash/internal/logtail"
	"github.com/five82/motodash/internal/prefs"
)

const logTailLines = 200

// settingsRows is the number of rows above the log box.
const settingsRows = 9

type logLinesMsg struct {
	lines []string
	err   error
}

func loadLogCmd(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := logtail.Read(path, logTailLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

func (m Model) logPath() string {
	if m.config == nil {
		return ""
	}
	return m.config.LogFile
}

// resizeLogViewport fits the log box below the settings rows.
func (m *Model) resizeLogViewport() {
	width := max(m.width-4, 10)
	height := max(m.height-contentTop-settingsRows-2, 3)
	if m.logViewport.Width == 0 {
		m.logViewport = viewport.New(width, height)
	}
	m.logViewport.Width = width
	m.logViewport.Height = height
	m.logViewport.SetContent(m.renderLogContent())
	m.logViewport.GotoBottom()
}

func (m *Model) handleLogLines(msg logLinesMsg) {
	if msg.err != nil {
		log.Printf("read log tail: %v", msg.err)
	}
	m.logLines = msg.lines
	m.logErr = msg.err
	m.resizeLogViewport()
}

func (m Model) renderLogContent() string {
	styles := m.theme.Styles()
	if m.logErr != nil {
		return styles.DangerText.Render(m.logErr.Error())
	}
	if len(m.logLines) == 0 {
		return styles.MutedText.Render("No log entries")
	}

	var b strings.Builder
	for i, line := range m.logLines {
		style := styles.Text
		switch logtail.Classify(line) {
		case logtail.Error:
			style = styles.DangerText
		case logtail.Warn:
			style = styles.WarningText
		}
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("%4d │ ", i+1)))
		b.WriteString(style.Render(truncate(line, max(m.logViewport.Width-7, 10))))
		if i < len(m.logLines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderSettings() string {
	styles := m.theme.Styles()
	label := styles.MutedText.Width(12)

	row := func(name, value string) string {
		return "  " + label.Render(name) + styles.Text.Render(value)
	}

	mouse := "on"
	if !m.mouse {
		mouse = "off"
	}

	lines := []string{m.renderPageTitle("Settings"), ""}
	if m.config != nil {
		lines = append(lines,
			row("Device", m.config.APIBind),
			row("Poll", m.config.PollEvery.String()),
			row("Stub", m.config.StubBind),
			row("Log file", truncateMiddle(m.config.LogFile, max(m.width-18, 10))),
		)
	}
	lines = append(lines,
		row("Theme", m.theme.Name+"  (T to cycle)"),
		row("Mouse", mouse+"  (M to toggle)"),
		"",
	)
	box := m.renderBox("Dashboard Log", m.logViewport.View(), m.width-2, m.logViewport.Height+2)
	return strings.Join(lines, "\n") + "\n" + box
}

// savePrefs persists the theme and mouse preference.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Mouse: m.mouse}); err != nil {
		log.Printf("save prefs: %v", err)
	}
}
