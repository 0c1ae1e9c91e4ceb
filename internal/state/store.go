package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/motodash/internal/moto"
)

// Snapshot is the latest polled view of the device, used by the header.
type Snapshot struct {
	Statuses            map[moto.Subsystem]moto.StatusMap
	GPS                 moto.GPSFix
	HasGPS              bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll cycles with an error
}

// IsOffline returns true when polling has failed repeatedly.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Subsystem returns the last status map seen for sub.
func (s Snapshot) Subsystem(sub moto.Subsystem) (moto.StatusMap, bool) {
	m, ok := s.Statuses[sub]
	return m, ok
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update merges the readings that arrived this cycle. When err is non-nil
// the failure is counted and recorded, and data that did not arrive keeps its
// previous value.
func (s *Store) Update(statuses map[moto.Subsystem]moto.StatusMap, gps *moto.GPSFix, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Statuses == nil {
		s.snapshot.Statuses = map[moto.Subsystem]moto.StatusMap{}
	}
	for sub, m := range statuses {
		s.snapshot.Statuses[sub] = m.Clone()
	}
	if gps != nil {
		s.snapshot.GPS = *gps
		s.snapshot.HasGPS = true
	}
	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.Statuses != nil {
		snap.Statuses = make(map[moto.Subsystem]moto.StatusMap, len(s.snapshot.Statuses))
		for sub, m := range s.snapshot.Statuses {
			snap.Statuses[sub] = m.Clone()
		}
	}
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
