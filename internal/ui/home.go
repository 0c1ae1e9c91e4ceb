package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/motodash/internal/moto"
	"github.com/five82/motodash/internal/radial"
)

// homeMenu is the radial menu on the landing page, clockwise from 12
// o'clock.
var homeMenu = []radial.Item{
	{Value: "status", Label: "Status"},
	{Value: "network", Label: "Network"},
	{Value: "moto", Label: "Moto", Icon: "/icons/moto.svg"},
	{Value: "settings", Label: "Settings"},
}

const (
	menuTop     = contentTop + 1 // one blank row above the pie
	menuMaxRows = 24
	menuMinRows = 5
)

// menuGrid rasterizes the menu for the current window and returns the
// screen position of its top-left cell.
func (m Model) menuGrid() (grid radial.Grid, originX, originY int) {
	rows := min(m.height-menuTop-2, menuMaxRows)
	rows = max(rows, menuMinRows)
	cols := rows * 2
	if cols > m.width && m.width > 0 {
		rows = max(m.width/2, 1)
		cols = rows * 2
	}
	originX = max((m.width-cols)/2, 0)
	return radial.DefaultGeometry.Rasterize(m.menu, cols, rows), originX, menuTop
}

// menuAt returns the slice index under a screen cell.
func (m Model) menuAt(x, y int) (int, bool) {
	grid, ox, oy := m.menuGrid()
	col, row := x-ox, y-oy
	if col < 0 || row < 0 || col >= grid.Cols || row >= grid.Rows {
		return 0, false
	}
	return radial.DefaultGeometry.HitTest(m.menu, grid.CellCenter(col, row))
}

// rotateMenu moves the highlighted slice by delta, wrapping around.
func (m *Model) rotateMenu(delta int) {
	n := len(m.menu)
	if n == 0 {
		return
	}
	m.menuSel = ((m.menuSel+delta)%n + n) % n
}

// activate performs the navigation bound to a menu value.
func (m Model) activate(value string) (Model, tea.Cmd) {
	switch value {
	case "status":
		return m.gotoPage(PageStatus)
	case "network":
		var cmd tea.Cmd
		m.modal, cmd = newStatusModal(m, moto.Network)
		return m, cmd
	case "moto":
		return m.gotoPage(PageMotorcycle)
	case "settings":
		return m.gotoPage(PageSettings)
	}
	return m, nil
}

func (m Model) renderHome() string {
	styles := m.theme.Styles()
	grid, originX, _ := m.menuGrid()

	// Character layer: labels centered on each slice's label point.
	chars := make([][]rune, grid.Rows)
	for row := range chars {
		chars[row] = []rune(strings.Repeat(" ", grid.Cols))
	}
	for _, s := range m.menu {
		text := []rune(s.Item.Text())
		if s.Index == m.menuSel {
			text = []rune("▸" + string(text))
		}
		col, row := grid.Cell(s.Label)
		start := max(col-len(text)/2, 0)
		for i, r := range text {
			if start+i < grid.Cols {
				chars[row][start+i] = r
			}
		}
	}

	pad := strings.Repeat(" ", originX)
	lines := make([]string, 0, grid.Rows+2)
	for row := 0; row < grid.Rows; row++ {
		var b strings.Builder
		b.WriteString(pad)
		// Render runs of cells that share a slice with one style.
		runStart := 0
		for col := 1; col <= grid.Cols; col++ {
			if col < grid.Cols && grid.At(col, row) == grid.At(runStart, row) {
				continue
			}
			b.WriteString(m.sliceStyle(grid.At(runStart, row)).Render(string(chars[row][runStart:col])))
			runStart = col
		}
		lines = append(lines, b.String())
	}

	caption := ""
	if len(m.menu) > 0 {
		sel := m.menu[m.menuSel].Item
		caption = styles.AccentText.Bold(true).Render(sel.Label) + "  " +
			styles.FaintText.Render("enter to open")
	}
	lines = append(lines, "", lipgloss.PlaceHorizontal(m.width, lipgloss.Center, caption))

	return "\n" + strings.Join(lines, "\n")
}

// sliceStyle returns the fill for a slice index; -1 is the empty margin.
func (m Model) sliceStyle(idx int) lipgloss.Style {
	switch {
	case idx < 0:
		return lipgloss.NewStyle()
	case idx == m.menuSel:
		return lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.SelectionBg)).
			Foreground(lipgloss.Color(m.theme.SelectionText)).
			Bold(true)
	default:
		return lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.SliceColor(idx))).
			Foreground(lipgloss.Color(m.theme.Text))
	}
}

// MenuItems returns a copy of the landing menu definition.
func MenuItems() []radial.Item {
	return append([]radial.Item(nil), homeMenu...)
}
