package moto

import (
	"encoding/json"
	"testing"
)

func TestStatusMap_PreservesOrderAndStringifiesScalars(t *testing.T) {
	var m StatusMap
	if err := json.Unmarshal([]byte(`{"z":"online","a":true,"m":1.5,"z":"offline"}`), &m); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	want := StatusMap{{"z", "offline"}, {"a", "true"}, {"m", "1.5"}}
	if len(m) != len(want) {
		t.Fatalf("map = %#v, want %#v", m, want)
	}
	for i := range want {
		if m[i] != want[i] {
			t.Fatalf("entry %d = %#v, want %#v", i, m[i], want[i])
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(out) != `{"z":"offline","a":"true","m":"1.5"}` {
		t.Fatalf("Marshal = %s", out)
	}
}

func TestStatusMap_RejectsNonObjects(t *testing.T) {
	for _, body := range []string{`null`, `[]`, `"online"`, `{"a":null}`, `{"a":[1]}`, `{"a":{}}`} {
		var m StatusMap
		if err := json.Unmarshal([]byte(body), &m); err == nil {
			t.Fatalf("Unmarshal(%s) returned nil error", body)
		}
	}

	var empty StatusMap
	if err := json.Unmarshal([]byte(`{}`), &empty); err != nil {
		t.Fatalf("Unmarshal({}) returned error: %v", err)
	}
	if len(empty) != 0 || empty.Online() {
		t.Fatalf("empty map = %#v online=%v", empty, empty.Online())
	}
}

func TestClassify(t *testing.T) {
	cases := map[string]Health{
		"online":  Online,
		"offline": Offline,
		"ONLINE":  Offline,
		"":        Offline,
		"42":      Offline,
	}
	for in, want := range cases {
		if got := Classify(in); got != want {
			t.Fatalf("Classify(%q) = %v, want %v", in, got, want)
		}
	}

	m := StatusMap{{"gps", "online"}, {"can", "degraded"}}
	if m.Online() {
		t.Fatalf("Online() = true with a degraded entry")
	}
	if !(StatusMap{{"status", "online"}, {"temp", "42"}}).Online() {
		t.Fatalf("Online() = false with a healthy status entry and a reading")
	}
	if (StatusMap{{"status", "offline"}, {"wifi", "online"}}).Online() {
		t.Fatalf("Online() = true with an offline status entry")
	}
	if got, ok := m.Get("can"); !ok || got != "degraded" {
		t.Fatalf("Get(can) = %q, %v", got, ok)
	}
	if got := m[1].String(); got != "can: degraded" {
		t.Fatalf("String() = %q", got)
	}
}

func TestGPSFix_Unmarshal(t *testing.T) {
	var fix GPSFix
	if err := json.Unmarshal([]byte(`{"lat":-33.5,"lng":"151.2"}`), &fix); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if fix.String() != "location: -33.5 151.2" {
		t.Fatalf("String() = %q", fix.String())
	}
	if err := json.Unmarshal([]byte(`{"lat":"1"}`), &fix); err == nil {
		t.Fatalf("missing lng should fail")
	}
}

func TestParseNames(t *testing.T) {
	if s, err := ParseSubsystem(" Network "); err != nil || s != Network {
		t.Fatalf("ParseSubsystem = %q, %v", s, err)
	}
	if _, err := ParseSubsystem("gps"); err == nil {
		t.Fatalf("ParseSubsystem(gps) should fail")
	}
	if a, err := ParseAction("START"); err != nil || a != Start {
		t.Fatalf("ParseAction = %q, %v", a, err)
	}
	if Reboot.Title() != "Reboot" || Reboot.Path() != "/v1/api/motorcycle/reboot" {
		t.Fatalf("Reboot title/path = %q %q", Reboot.Title(), Reboot.Path())
	}
	if HAL.Title() != "I/O" || HAL.Path() != "/v1/api/hal/status" {
		t.Fatalf("HAL title/path = %q %q", HAL.Title(), HAL.Path())
	}
}
