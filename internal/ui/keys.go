package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Back       key.Binding

	// Page switching
	ViewStatus     key.Binding
	ViewMotorcycle key.Binding
	ViewSettings   key.Binding

	// Navigation
	Next    key.Binding
	Prev    key.Binding
	Confirm key.Binding

	// Settings
	ToggleMouse key.Binding
	ReloadLog   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "Close / back to menu"),
		),

		// Page switching
		ViewStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Status page"),
		),
		ViewMotorcycle: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Motorcycle page"),
		),
		ViewSettings: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Settings"),
		),

		// Navigation. The menu rotates clockwise on right/down.
		Next: key.NewBinding(
			key.WithKeys("right", "down", "j", "l", "tab"),
			key.WithHelp("→/↓", "Next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "up", "k", "shift+tab"),
			key.WithHelp("←/↑", "Previous"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Open"),
		),

		// Settings
		ToggleMouse: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "Toggle mouse"),
		),
		ReloadLog: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload log"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ViewStatus, k.ViewMotorcycle, k.ViewSettings, k.Back},
		{k.Next, k.Prev, k.Confirm},
		{k.ToggleMouse, k.ReloadLog},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
