// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

// CapabilityResolver is the thin abstraction over the OS permission subsystem.
// It checks and requests one capability at a time, classifies the result, and
// keeps the last-known status so a transport failure never invents a status.
//
// The resolver never returns an error: an OS call failure is logged and the
// capability is reported at its last-known status (GrantUnknown if it was
// never resolved this process lifetime).
type CapabilityResolver struct {
	system port.SystemPermissions

	mu        sync.Mutex
	lastKnown map[entity.Capability]entity.GrantStatus
}

// NewCapabilityResolver creates a resolver backed by the given OS adapter.
func NewCapabilityResolver(system port.SystemPermissions) *CapabilityResolver {
	return &CapabilityResolver{
		system:    system,
		lastKnown: make(map[entity.Capability]entity.GrantStatus, 2),
	}
}

// platformID maps the logical capability onto the platform permission
// identifier. This is the single place the mapping exists; callers and
// protocol logic never see platform identifiers.
func platformID(c entity.Capability) port.PlatformPermissionID {
	switch c {
	case entity.CapabilityCamera:
		return "devices/camera"
	case entity.CapabilityMicrophone:
		return "devices/microphone"
	default:
		return ""
	}
}

// Check queries the current OS grant state without prompting the user.
func (r *CapabilityResolver) Check(ctx context.Context, c entity.Capability) entity.CapabilityResult {
	return r.resolve(ctx, c, false)
}

// Request queries and, if the permission is undecided, prompts the user via
// the OS. It may suspend pending user interaction. Already granted or
// permanently blocked capabilities do not re-prompt; the OS enforces that.
func (r *CapabilityResolver) Request(ctx context.Context, c entity.Capability) entity.CapabilityResult {
	return r.resolve(ctx, c, true)
}

// CheckAll checks both capabilities concurrently and aggregates.
func (r *CapabilityResolver) CheckAll(ctx context.Context) entity.AggregateResult {
	return r.resolveAll(ctx, false)
}

// RequestAll requests both capabilities concurrently and aggregates. The
// aggregate is settled only after both individual requests have resolved.
func (r *CapabilityResolver) RequestAll(ctx context.Context) entity.AggregateResult {
	return r.resolveAll(ctx, true)
}

// OpenSettings routes the user to the OS surface where a permanently blocked
// capability can be changed.
func (r *CapabilityResolver) OpenSettings(ctx context.Context) {
	log := logging.FromContext(ctx)
	if err := r.system.OpenSettings(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to open OS permission settings")
	}
}

func (r *CapabilityResolver) resolve(ctx context.Context, c entity.Capability, prompt bool) entity.CapabilityResult {
	log := logging.FromContext(ctx).With().
		Str("component", "resolver").
		Str("capability", string(c)).
		Bool("prompt", prompt).
		Logger()

	if !c.IsKnown() {
		log.Warn().Msg("resolve called with unknown capability")
		return entity.NewCapabilityResult(c, entity.GrantUnknown)
	}

	id := platformID(c)

	var status entity.GrantStatus
	var err error
	if prompt {
		status, err = r.system.Request(ctx, id)
	} else {
		status, err = r.system.Check(ctx, id)
	}
	if err != nil {
		// Transport/runtime failure, not a denial: keep the last-known status
		// and never propagate the error to the caller.
		last := r.last(c)
		log.Warn().Err(err).Str("last_known", string(last)).Msg("OS permission call failed")
		return entity.NewCapabilityResult(c, last)
	}

	r.remember(c, status)
	log.Debug().Str("status", string(status)).Msg("capability resolved")
	return entity.NewCapabilityResult(c, status)
}

func (r *CapabilityResolver) resolveAll(ctx context.Context, prompt bool) entity.AggregateResult {
	var camera, microphone entity.CapabilityResult

	// Both capabilities resolve concurrently; the aggregate is not settled
	// until both goroutines return. resolve never fails, so the group error
	// is always nil.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		camera = r.resolve(gctx, entity.CapabilityCamera, prompt)
		return nil
	})
	g.Go(func() error {
		microphone = r.resolve(gctx, entity.CapabilityMicrophone, prompt)
		return nil
	})
	_ = g.Wait()

	return entity.AggregateResult{
		Camera:     camera,
		Microphone: microphone,
		AllGranted: camera.Granted && microphone.Granted,
	}
}

func (r *CapabilityResolver) last(c entity.Capability) entity.GrantStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	status, ok := r.lastKnown[c]
	if !ok {
		return entity.GrantUnknown
	}
	return status
}

func (r *CapabilityResolver) remember(c entity.Capability, status entity.GrantStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastKnown[c] = status
}
