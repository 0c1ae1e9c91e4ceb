// Package ui provides the terminal dashboard for motodash.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds all state and is updated only
// from Update, so the async controllers it drives need no locking.
//
// # Package Structure
//
//   - ui.go: Model, Update/View, key and mouse dispatch, Run
//   - home.go: the radial landing menu, rasterized from internal/radial
//   - pages.go: status and motorcycle card pages
//   - modal.go: the request modal shared by every status read and command
//   - settings.go: configuration summary and the dashboard log tail
//   - header.go: live connectivity strip and command hints
//   - theme.go, style_helpers.go, layout.go: colors, styles, boxes
//   - keys.go, help.go: key bindings and the help overlay
//
// # Pages
//
//   - Home: pie menu with Status, Network, Moto and Settings slices. Arrow
//     keys rotate the highlight, enter or a click opens the slice.
//   - Status: I/O, Network, Motorcycle and GPS cards, each summarised from the
//     header poller. Opening a card performs a fresh read in a modal.
//   - Motorcycle: Reboot, Unlock and Start. Opening a card sends the command.
//   - Settings: device address, poll interval, theme, mouse, log tail.
//
// # Request Modals
//
// Every card or slice that talks to the device creates a new
// action.Controller, starts it, and shows a requestModal. The controller's
// Done message comes back through Update and is applied only if it belongs
// to the open modal's controller and current generation. Closing the modal
// resets the controller, so a response that arrives later changes nothing.
//
// While Pending the modal shows a spinner with "Loading..." (reads) or
// "Processing..." (commands). A failed read shows "Error fetching status"
// and a failed command shows "Something went wrong".
//
// # Header Strip
//
// The header is fed by the background poller in internal/app through a
// state.Store snapshot fetched on each tick. It is independent of the
// modals.
//
// # Keyboard Shortcuts
//
//	s / m / c    status, motorcycle, settings
//	←/→ ↑/↓      rotate menu or move between cards
//	enter        open
//	esc          close modal or return to the menu
//	T            cycle theme (saved to prefs)
//	M            toggle mouse (settings page)
//	?            help
//	q, ctrl+c    quit
package ui
