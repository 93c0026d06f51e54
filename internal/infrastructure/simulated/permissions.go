// Package simulated provides an in-memory OS permission subsystem used by the
// terminal shell and by scenario tests. It follows the same state rules as a
// real platform: granted and blocked are sticky across requests, denied may
// prompt again, and fixing a block requires the settings surface.
package simulated

import (
	"context"
	"sync"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

// Compile-time interface check.
var _ port.SystemPermissions = (*Permissions)(nil)

// Permissions implements port.SystemPermissions in memory.
type Permissions struct {
	mu       sync.Mutex
	statuses map[port.PlatformPermissionID]entity.GrantStatus

	// promptResult is what a user prompt resolves to. Defaults to granted.
	promptResult entity.GrantStatus

	settingsOpened int
}

// New creates a simulated backend seeded from capability-name -> status pairs
// (e.g. {"camera": "blocked"}). Unknown names and statuses are ignored.
func New(initial map[string]string) *Permissions {
	p := &Permissions{
		statuses:     make(map[port.PlatformPermissionID]entity.GrantStatus, 2),
		promptResult: entity.GrantGranted,
	}
	for name, status := range initial {
		c := entity.Capability(name)
		if !c.IsKnown() {
			continue
		}
		switch s := entity.GrantStatus(status); s {
		case entity.GrantGranted, entity.GrantDenied, entity.GrantBlocked:
			p.statuses[port.PlatformPermissionID("devices/"+name)] = s
		}
	}
	return p
}

// SetPromptResult scripts the outcome of the next user prompts.
func (p *Permissions) SetPromptResult(status entity.GrantStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.promptResult = status
}

// Check reports the current state without prompting.
func (p *Permissions) Check(_ context.Context, id port.PlatformPermissionID) (entity.GrantStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	status, ok := p.statuses[id]
	if !ok {
		return entity.GrantUnknown, nil
	}
	return status, nil
}

// Request prompts unless the permission is already settled. Granted and
// blocked are idempotent; unknown and denied resolve to the scripted prompt
// outcome.
func (p *Permissions) Request(ctx context.Context, id port.PlatformPermissionID) (entity.GrantStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.statuses[id] {
	case entity.GrantGranted:
		return entity.GrantGranted, nil
	case entity.GrantBlocked:
		return entity.GrantBlocked, nil
	}

	logging.FromContext(ctx).Debug().
		Str("id", string(id)).
		Str("outcome", string(p.promptResult)).
		Msg("simulated permission prompt")

	p.statuses[id] = p.promptResult
	return p.promptResult, nil
}

// OpenSettings simulates the user resolving blocks in the OS settings:
// every blocked permission returns to granted.
func (p *Permissions) OpenSettings(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.settingsOpened++
	for id, status := range p.statuses {
		if status == entity.GrantBlocked {
			p.statuses[id] = entity.GrantGranted
		}
	}
	return nil
}

// SettingsOpened reports how many times the settings surface was invoked.
func (p *Permissions) SettingsOpened() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settingsOpened
}
