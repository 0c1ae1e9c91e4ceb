// Package app wires configuration, logging, the device client, the header
// poller and the UI together.
//
// Run loads the config, redirects the standard logger to the configured
// file (the TUI owns stdout), builds a moto.Client, starts the poller and
// hands everything to ui.Run, which blocks until the operator quits.
//
// The poller reads every subsystem status and the GPS fix at a fixed
// interval and merges whatever arrived into the state.Store. Failures are
// logged and counted; there is no backoff, the next tick simply tries again.
package app
