package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/motodash/internal/moto"
)

// Page is the active screen.
type Page int

const (
	PageHome Page = iota
	PageStatus
	PageMotorcycle
	PageSettings
)

// Cards start below the page title and a blank row.
const cardsTop = contentTop + 2

const cardWidth = 36

// statusCard opens one status read. gps marks the location card.
type statusCard struct {
	sub moto.Subsystem
	gps bool
}

func (c statusCard) title() string {
	if c.gps {
		return "GPS"
	}
	return c.sub.Title()
}

var statusCards = []statusCard{
	{sub: moto.HAL},
	{sub: moto.Network},
	{sub: moto.Motorcycle},
	{gps: true},
}

// gotoPage switches pages and resets the card cursor.
func (m Model) gotoPage(p Page) (Model, tea.Cmd) {
	m.page = p
	m.cardSel = 0
	if p == PageSettings {
		return m, loadLogCmd(m.logPath())
	}
	return m, nil
}

// cardCount returns the number of cards on the current page.
func (m Model) cardCount() int {
	switch m.page {
	case PageStatus:
		return len(statusCards)
	case PageMotorcycle:
		return len(moto.Actions)
	default:
		return 0
	}
}

// moveCard moves the card cursor by delta, wrapping around.
func (m *Model) moveCard(delta int) {
	n := m.cardCount()
	if n == 0 {
		return
	}
	m.cardSel = ((m.cardSel+delta)%n + n) % n
}

// cardAt maps a screen row to a card index.
func (m Model) cardAt(y int) (int, bool) {
	idx := y - cardsTop
	if idx < 0 || idx >= m.cardCount() {
		return 0, false
	}
	return idx, true
}

// openCard starts the flow for card idx on the current page. Every call
// builds a fresh controller.
func (m Model) openCard(idx int) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case PageStatus:
		if idx < 0 || idx >= len(statusCards) {
			return m, nil
		}
		card := statusCards[idx]
		if card.gps {
			m.modal, cmd = newGPSModal(m)
		} else {
			m.modal, cmd = newStatusModal(m, card.sub)
		}
	case PageMotorcycle:
		if idx < 0 || idx >= len(moto.Actions) {
			return m, nil
		}
		m.modal, cmd = newActionModal(m, moto.Actions[idx])
	}
	m.cardSel = max(idx, 0)
	return m, cmd
}

func (m Model) renderStatusPage() string {
	styles := m.theme.Styles()
	lines := []string{m.renderPageTitle("System Status"), ""}
	for i, card := range statusCards {
		lines = append(lines, m.renderCard(i, card.title(), m.cardSummary(card)))
	}
	lines = append(lines, "", styles.FaintText.Render("  Select a card to query its components."))
	return strings.Join(lines, "\n")
}

func (m Model) renderMotorcyclePage() string {
	styles := m.theme.Styles()
	lines := []string{m.renderPageTitle("Motorcycle Control"), ""}
	for i, a := range moto.Actions {
		lines = append(lines, m.renderCard(i, a.Title(), ""))
	}
	lines = append(lines, "", styles.FaintText.Render("  Commands are sent once; re-select to retry."))
	return strings.Join(lines, "\n")
}

func (m Model) renderPageTitle(title string) string {
	return m.theme.Styles().Text.Bold(true).Padding(0, 2).Render(title)
}

// renderCard draws one selectable row with an optional right-hand summary.
func (m Model) renderCard(i int, title, summary string) string {
	styles := m.theme.Styles()
	marker := "  "
	style := styles.SurfaceAlt.Width(cardWidth).Padding(0, 1)
	if i == m.cardSel {
		marker = styles.AccentText.Render("▸ ")
		style = styles.Selected.Width(cardWidth).Padding(0, 1).Bold(true)
	}
	gap := max(cardWidth-2-lipgloss.Width(title)-lipgloss.Width(summary), 1)
	return marker + style.Render(title+strings.Repeat(" ", gap)+summary)
}

// cardSummary shows the header poller's last reading for a card.
func (m Model) cardSummary(card statusCard) string {
	if card.gps {
		if !m.snapshot.HasGPS {
			return "—"
		}
		return fmt.Sprintf("%s, %s", m.snapshot.GPS.Lat, m.snapshot.GPS.Lng)
	}
	status, ok := m.snapshot.Subsystem(card.sub)
	switch {
	case !ok:
		return "—"
	case status.Online():
		return "ONLINE"
	default:
		return "OFFLINE"
	}
}
