package moto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Subsystem names a device group that reports a status map.
type Subsystem string

const (
	HAL        Subsystem = "hal"
	Network    Subsystem = "network"
	Motorcycle Subsystem = "motorcycle"
)

// Subsystems lists every status endpoint in display order.
var Subsystems = []Subsystem{HAL, Network, Motorcycle}

// Path returns the status endpoint for the subsystem.
func (s Subsystem) Path() string {
	return "/v1/api/" + string(s) + "/status"
}

// Title is the human-facing card name.
func (s Subsystem) Title() string {
	switch s {
	case HAL:
		return "I/O"
	case Network:
		return "Network"
	case Motorcycle:
		return "Motorcycle"
	default:
		return string(s)
	}
}

// ParseSubsystem accepts a subsystem name, case-insensitively.
func ParseSubsystem(name string) (Subsystem, error) {
	want := Subsystem(strings.ToLower(strings.TrimSpace(name)))
	for _, s := range Subsystems {
		if s == want {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown subsystem %q", name)
}

// Action is a one-shot command the motorcycle accepts.
type Action string

const (
	Reboot Action = "reboot"
	Unlock Action = "unlock"
	Start  Action = "start"
)

// Actions lists the available commands in display order.
var Actions = []Action{Reboot, Unlock, Start}

// Path returns the POST endpoint for the action.
func (a Action) Path() string {
	return "/v1/api/motorcycle/" + string(a)
}

// Title is the human-facing action name.
func (a Action) Title() string {
	if a == "" {
		return ""
	}
	s := string(a)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseAction accepts an action name, case-insensitively.
func ParseAction(name string) (Action, error) {
	want := Action(strings.ToLower(strings.TrimSpace(name)))
	for _, a := range Actions {
		if a == want {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action %q", name)
}

// GPSPath is the location endpoint.
const GPSPath = "/v1/api/motorcycle/gps"

// Entry is one device line of a status map.
type Entry struct {
	Device string
	Status string
}

// Health is the binary classification used for rendering.
type Health int

const (
	Offline Health = iota
	Online
)

// Classify treats exactly "online" as healthy and everything else as an alert.
func Classify(status string) Health {
	if status == "online" {
		return Online
	}
	return Offline
}

// Health classifies the entry's status.
func (e Entry) Health() Health {
	return Classify(e.Status)
}

// String renders the entry as "device: status".
func (e Entry) String() string {
	return e.Device + ": " + e.Status
}

// StatusMap maps device names to status labels, keeping the order the
// server sent them in.
type StatusMap []Entry

// Get returns the status for device.
func (m StatusMap) Get(device string) (string, bool) {
	for _, e := range m {
		if e.Device == device {
			return e.Status, true
		}
	}
	return "", false
}

// HealthKey is the entry a subsystem uses to report its own health.
const HealthKey = "status"

// Online reports the subsystem's overall health. A HealthKey entry decides on
// its own, so readings such as temperatures do not count; otherwise every
// entry must be online. An empty map is not online.
func (m StatusMap) Online() bool {
	if len(m) == 0 {
		return false
	}
	if status, ok := m.Get(HealthKey); ok {
		return Classify(status) == Online
	}
	for _, e := range m {
		if e.Health() != Online {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (m StatusMap) Clone() StatusMap {
	if m == nil {
		return nil
	}
	dup := make(StatusMap, len(m))
	copy(dup, m)
	return dup
}

// UnmarshalJSON decodes a flat JSON object. Scalar values keep their JSON
// text (42, true); nested values and null are rejected. A repeated key
// keeps its first position and its last value.
func (m *StatusMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("status map must be a JSON object")
	}

	out := StatusMap{}
	index := map[string]int{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected key %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		value, err := scalarText(raw)
		if err != nil {
			return fmt.Errorf("device %q: %w", key, err)
		}
		if i, seen := index[key]; seen {
			out[i].Status = value
			continue
		}
		index[key] = len(out)
		out = append(out, Entry{Device: key, Status: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}

// MarshalJSON encodes the map as a JSON object in entry order.
func (m StatusMap) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(e.Device)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Status)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(value)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func scalarText(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", errors.New("empty value")
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", errors.New("nested values are not supported")
	case 'n':
		return "", errors.New("null value")
	default:
		// numbers and booleans, already validated by the decoder
		return string(trimmed), nil
	}
}

// GPSFix is the motorcycle's last reported position. Coordinates are kept as
// the text the device sent.
type GPSFix struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// String renders the fix as "location: <lat> <lng>".
func (f GPSFix) String() string {
	return "location: " + f.Lat + " " + f.Lng
}

// UnmarshalJSON accepts coordinates as JSON strings or numbers. Both are
// required.
func (f *GPSFix) UnmarshalJSON(data []byte) error {
	var raw struct {
		Lat json.RawMessage `json:"lat"`
		Lng json.RawMessage `json:"lng"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Lat == nil || raw.Lng == nil {
		return errors.New("gps fix requires lat and lng")
	}
	lat, err := scalarText(raw.Lat)
	if err != nil {
		return fmt.Errorf("lat: %w", err)
	}
	lng, err := scalarText(raw.Lng)
	if err != nil {
		return fmt.Errorf("lng: %w", err)
	}
	f.Lat, f.Lng = lat, lng
	return nil
}

// ActionResponse is the body returned by an action endpoint.
type ActionResponse struct {
	Message string `json:"message,omitempty"`
}
