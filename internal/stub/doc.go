// Package stub serves the device endpoints with canned data so the
// dashboard can run without the real hardware.
//
// Each subsystem sits behind a small service interface; the StubHAL,
// StubNetwork and StubMotorcycle types return fixed readings. NewRouter
// wires them onto a gorilla/mux router behind a permissive CORS middleware
// that answers preflight requests with 204.
package stub
