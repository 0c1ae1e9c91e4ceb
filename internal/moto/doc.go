// Package moto provides an HTTP client for the motorcycle controller API.
//
// # Endpoints
//
//   - GET  /v1/api/{hal,network,motorcycle}/status: flat device → status map
//   - GET  /v1/api/motorcycle/gps: {"lat", "lng"}
//   - POST /v1/api/motorcycle/{reboot,unlock,start}: {"message"?}
//
// Status maps decode into StatusMap, which keeps the server's key order for
// rendering. Classify applies the dashboard's binary rule: "online" is
// healthy, anything else is an alert.
//
// # Errors
//
// Every client error falls into one of three groups, distinguishable with
// Kind:
//
//   - transport: connection refused, DNS, timeout (wraps ErrTransport)
//   - response: non-2xx status (*StatusError)
//   - parse: malformed or mis-shaped body (wraps ErrParse)
//
// Callers presenting results to an operator are expected to collapse these
// into a single fixed message; the detail is for logs.
//
// # Requests
//
// Requests carry Accept: application/json, a motodash User-Agent and a fresh
// X-Request-ID, and time out after 5 seconds. There are no retries.
package moto
