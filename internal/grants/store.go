// Package grants holds the process-lifetime record of last-known grant state
// per capability. The store lives for the content-viewer screen's mounted
// lifetime and is reset by creating a fresh store on remount.
package grants

import (
	"sync"

	"github.com/bnema/kiosk/internal/domain/entity"
)

// Store maps each mediated capability to its last-known grant status.
// Both keys are always populated; the default is entity.GrantUnknown.
// It is mutated only by the bridge mediation use case after a resolver
// round-trip, and read by the shell's grant indicator.
type Store struct {
	mu       sync.RWMutex
	statuses map[entity.Capability]entity.GrantStatus
	tornDown bool
}

// NewStore creates a store with every capability at GrantUnknown.
func NewStore() *Store {
	statuses := make(map[entity.Capability]entity.GrantStatus, 2)
	for _, c := range entity.AllCapabilities() {
		statuses[c] = entity.GrantUnknown
	}
	return &Store{statuses: statuses}
}

// SetResult records the outcome of a resolver round-trip.
// Results for capabilities the resolver does not recognize are ignored, and
// writes after Teardown are no-ops so late resolver callbacks cannot touch an
// unmounted screen's state.
func (s *Store) SetResult(result entity.CapabilityResult) {
	if !result.Capability.IsKnown() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tornDown {
		return
	}
	s.statuses[result.Capability] = result.Status
}

// Status returns the last-known grant status for a capability.
func (s *Store) Status(c entity.Capability) entity.GrantStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status, ok := s.statuses[c]
	if !ok {
		return entity.GrantUnknown
	}
	return status
}

// Snapshot returns a copy of the current mapping. The indicator recomputes its
// visual state from this on every render; no derived state is cached here.
func (s *Store) Snapshot() map[entity.Capability]entity.GrantStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[entity.Capability]entity.GrantStatus, len(s.statuses))
	for c, status := range s.statuses {
		snapshot[c] = status
	}
	return snapshot
}

// AllGranted returns true if every capability is currently granted.
func (s *Store) AllGranted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, status := range s.statuses {
		if status != entity.GrantGranted {
			return false
		}
	}
	return true
}

// Teardown marks the store as dead. Called when the viewer screen unmounts;
// all subsequent writes are discarded.
func (s *Store) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tornDown = true
}
