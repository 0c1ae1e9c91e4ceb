// Package config loads the dashboard's TOML configuration.
//
// Load reads ~/.config/motodash/config.toml unless a path is given. A
// missing file is not an error; every field falls back to its default:
//
//	api_bind     = "10.10.10.1:8080"                       # device API host:port or URL
//	poll_seconds = 2                                       # header poll interval
//	log_file     = "~/.local/state/motodash/motodash.log"  # TUI log destination
//	stub_bind    = "127.0.0.1:8080"                        # motodash stub listen address
//
// Strings are trimmed and blank values count as unset. Paths support ~.
// Malformed TOML is reported as "parse config: ...".
package config
