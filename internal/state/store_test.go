package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/motodash/internal/moto"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	statuses := map[moto.Subsystem]moto.StatusMap{
		moto.HAL: {{Device: "relay", Status: "online"}},
	}
	before := time.Now()
	s.Update(statuses, &moto.GPSFix{Lat: "1", Lng: "2"}, nil)

	snap := s.Snapshot()
	hal, ok := snap.Subsystem(moto.HAL)
	if !ok || len(hal) != 1 || hal[0].Device != "relay" {
		t.Fatalf("snapshot HAL = %#v, want relay", hal)
	}
	if !snap.HasGPS || snap.GPS.Lat != "1" {
		t.Fatalf("snapshot GPS = %#v, want lat 1", snap.GPS)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	hal[0].Status = "offline"
	snap.Statuses[moto.Network] = nil
	snap2 := s.Snapshot()
	if got, _ := snap2.Subsystem(moto.HAL); got[0].Status != "online" {
		t.Fatalf("Snapshot should clone status maps; got %q", got[0].Status)
	}
	if _, ok := snap2.Subsystem(moto.Network); ok {
		t.Fatalf("Snapshot should clone the map of subsystems")
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update(map[moto.Subsystem]moto.StatusMap{
		moto.HAL:     {{Device: "relay", Status: "online"}},
		moto.Network: {{Device: "wifi", Status: "online"}},
	}, nil, nil)

	origErr := errors.New("boom")
	s.Update(map[moto.Subsystem]moto.StatusMap{
		moto.Network: {{Device: "wifi", Status: "offline"}},
	}, nil, origErr)

	snap := s.Snapshot()
	if hal, _ := snap.Subsystem(moto.HAL); len(hal) != 1 || hal[0].Status != "online" {
		t.Fatalf("HAL changed on error: %#v", hal)
	}
	if nw, _ := snap.Subsystem(moto.Network); nw[0].Status != "offline" {
		t.Fatalf("partial reading not merged: %#v", nw)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("zero store = %#v, want online with 0 failures", snap)
	}

	s.Update(nil, nil, errors.New("fail 1"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsOffline() {
		t.Fatalf("after 1 failure: %d offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update(nil, nil, errors.New("fail 2"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 2 || !snap.IsOffline() {
		t.Fatalf("after 2 failures: %d offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update(nil, nil, nil)
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("after success: %d offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}
}
