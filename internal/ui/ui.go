package ui

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/motodash/internal/action"
	"github.com/five82/motodash/internal/config"
	"github.com/five82/motodash/internal/moto"
	"github.com/five82/motodash/internal/prefs"
	"github.com/five82/motodash/internal/radial"
	"github.com/five82/motodash/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	API       moto.API
	Store     *state.Store
	Config    *config.Config
	PollTick  time.Duration
	ThemeName string
	Mouse     bool
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	api       moto.API
	store     *state.Store
	config    *config.Config
	prefsPath string
	pollTick  time.Duration
	keys      keyMap

	// UI state
	theme  Theme
	mouse  bool
	page   Page
	width  int
	height int
	ready  bool

	// Header data from the poller
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Home menu
	menu    []radial.Slice
	menuSel int

	// Status and motorcycle pages
	cardSel int
	modal   Modal

	// Settings log tail
	logViewport viewport.Model
	logLines    []string
	logErr      error

	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:       ctx,
		api:       opts.API,
		store:     opts.Store,
		config:    opts.Config,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		mouse:     opts.Mouse,
		page:      PageHome,
		menu:      radial.Layout(homeMenu),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeLogViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = m.snapshot.LastUpdated
		return m, nil

	case logLinesMsg:
		m.handleLogLines(msg)
		return m, nil
	}

	// Completions and spinner ticks belong to the open modal.
	if m.modal != nil {
		return m.updateModal(msg)
	}
	switch msg := msg.(type) {
	case action.Done[moto.StatusMap]:
		log.Printf("completion for %s after close discarded", msg.Label)
	case action.Done[moto.GPSFix]:
		log.Printf("completion for %s after close discarded", msg.Label)
	case action.Done[string]:
		log.Printf("completion for %s after close discarded", msg.Label)
	}
	return m, nil
}

func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	modal, cmd, closed := m.modal.Update(msg, m.keys)
	if closed {
		m.modal = nil
	} else {
		m.modal = modal
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.renderHeader() + "\n" + m.modal.View(m.theme, m.width, max(m.height-1, 0))
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		return m.updateModal(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.resizeLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.page = PageHome
		return m, nil

	case key.Matches(msg, m.keys.ViewStatus):
		return m.gotoPage(PageStatus)

	case key.Matches(msg, m.keys.ViewMotorcycle):
		return m.gotoPage(PageMotorcycle)

	case key.Matches(msg, m.keys.ViewSettings):
		return m.gotoPage(PageSettings)
	}

	switch m.page {
	case PageHome:
		return m.handleHomeKey(msg)
	case PageStatus, PageMotorcycle:
		return m.handleCardKey(msg)
	case PageSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.rotateMenu(1)
	case key.Matches(msg, m.keys.Prev):
		m.rotateMenu(-1)
	case key.Matches(msg, m.keys.Confirm):
		if len(m.menu) > 0 {
			return m.activate(m.menu[m.menuSel].Item.Value)
		}
	}
	return m, nil
}

func (m Model) handleCardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.moveCard(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveCard(-1)
	case key.Matches(msg, m.keys.Confirm):
		return m.openCard(m.cardSel)
	}
	return m, nil
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleMouse):
		m.mouse = !m.mouse
		m.savePrefs()
		if m.mouse {
			return m, tea.EnableMouseCellMotion
		}
		return m, tea.DisableMouse
	case key.Matches(msg, m.keys.ReloadLog):
		return m, loadLogCmd(m.logPath())
	}
	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// handleMouse selects menu slices and cards on a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.mouse || m.showHelp {
		return m, nil
	}
	if m.modal != nil {
		return m.updateModal(msg)
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch m.page {
	case PageHome:
		if idx, ok := m.menuAt(msg.X, msg.Y); ok {
			m.menuSel = idx
			return m.activate(m.menu[idx].Item.Value)
		}
	case PageStatus, PageMotorcycle:
		if idx, ok := m.cardAt(msg.Y); ok {
			return m.openCard(idx)
		}
	}
	return m, nil
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}

	if m.page == PageSettings && m.modal == nil {
		if cmd := loadLogCmd(m.logPath()); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

// renderMain renders the header, the command bar and the active page.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())

	return b.String()
}

func (m Model) renderContent() string {
	switch m.page {
	case PageStatus:
		return m.renderStatusPage()
	case PageMotorcycle:
		return m.renderMotorcyclePage()
	case PageSettings:
		return m.renderSettings()
	default:
		return m.renderHome()
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the operator quits or
// the context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	if m.mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	_, err := tea.NewProgram(m, progOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
