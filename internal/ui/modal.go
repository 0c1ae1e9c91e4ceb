package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/motodash/internal/action"
	"github.com/five82/motodash/internal/moto"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

const modalWidth = 44

// requestModal shows one controller's state: a spinner while Pending, then
// the rendered result or the fixed failure message. Closing it resets the
// controller so a late completion is ignored.
type requestModal[T any] struct {
	title   string
	pending string
	ctl     *action.Controller[T]
	spinner spinner.Model
	render  func(T, Styles) string
}

func newRequestModal[T any](title, pending string, ctl *action.Controller[T], render func(T, Styles) string) *requestModal[T] {
	return &requestModal[T]{
		title:   title,
		pending: pending,
		ctl:     ctl,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		render:  render,
	}
}

// init returns the spinner's first tick.
func (m *requestModal[T]) init() tea.Cmd {
	return m.spinner.Tick
}

func (m *requestModal[T]) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case action.Done[T]:
		if !m.ctl.Apply(msg) {
			log.Printf("stale completion for %s discarded", msg.Label)
			return m, nil, false
		}
		st := m.ctl.State()
		if st.Phase == action.Failed {
			log.Printf("%s failed (%s): %v", msg.Label, moto.Kind(msg.Err), msg.Err)
		} else {
			log.Printf("%s succeeded", msg.Label)
		}
		return m, nil, false

	case spinner.TickMsg:
		if m.ctl.State().Phase != action.Pending {
			return m, nil, false
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd, false

	case tea.KeyMsg:
		if key.Matches(msg, keys.Back) || key.Matches(msg, keys.Confirm) {
			m.ctl.Reset()
			return m, nil, true
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			m.ctl.Reset()
			return m, nil, true
		}
	}
	return m, nil, false
}

// Phase reports the controller's current phase.
func (m *requestModal[T]) Phase() action.Phase {
	return m.ctl.State().Phase
}

func (m *requestModal[T]) body(styles Styles) string {
	st := m.ctl.State()
	switch st.Phase {
	case action.Pending:
		return m.spinner.View() + " " + styles.MutedText.Render(m.pending)
	case action.Succeeded:
		if st.Result == nil {
			return ""
		}
		return m.render(*st.Result, styles)
	case action.Failed:
		return styles.DangerText.Render(st.ErrorMessage)
	default:
		return ""
	}
}

func (m *requestModal[T]) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(m.title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", modalWidth-6)))
	b.WriteString("\n\n")
	b.WriteString(m.body(styles))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("esc/enter Close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(modalWidth).
		Render(b.String())

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

// newStatusModal starts a status read for sub and returns its modal.
func newStatusModal(m Model, sub moto.Subsystem) (Modal, tea.Cmd) {
	ctl := action.NewStatus()
	cmd := ctl.Start(m.ctx, sub.Title(), action.ReadStatus(m.api, sub))
	modal := newRequestModal(sub.Title()+" Components", "Loading...", ctl, renderStatusMap)
	return modal, tea.Batch(cmd, modal.init())
}

// newGPSModal starts a location read and returns its modal.
func newGPSModal(m Model) (Modal, tea.Cmd) {
	ctl := action.NewGPS()
	cmd := ctl.Start(m.ctx, "GPS", action.ReadGPS(m.api))
	modal := newRequestModal("GPS Location", "Loading...", ctl, func(fix moto.GPSFix, styles Styles) string {
		return styles.Text.Render(fix.String())
	})
	return modal, tea.Batch(cmd, modal.init())
}

// newActionModal triggers a and returns its modal.
func newActionModal(m Model, a moto.Action) (Modal, tea.Cmd) {
	ctl := action.NewAction()
	cmd := ctl.Start(m.ctx, a.Title(), action.Trigger(m.api, a))
	modal := newRequestModal(a.Title()+" Motorcycle", "Processing...", ctl, func(msg string, styles Styles) string {
		return styles.SuccessText.Render(msg)
	})
	return modal, tea.Batch(cmd, modal.init())
}

// renderStatusMap lists every component in server order with its status
// upper-cased and colored by health.
func renderStatusMap(m moto.StatusMap, styles Styles) string {
	if len(m) == 0 {
		return styles.MutedText.Render("No components reported")
	}
	width := 0
	for _, e := range m {
		width = max(width, lipgloss.Width(e.Device))
	}
	lines := make([]string, 0, len(m))
	for _, e := range m {
		badge := styles.HealthStyle(e.Health())
		name := fmt.Sprintf("%-*s", width, e.Device)
		lines = append(lines, styles.Text.Render(name)+"  "+badge.Render(strings.ToUpper(e.Status)))
	}
	return strings.Join(lines, "\n")
}
