package usecase

import (
	"context"
	"sync"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/grants"
	"github.com/bnema/kiosk/internal/logging"
)

// MediateRequestUseCase drives one capability request cycle surfaced by the
// bridge: it resolves each named capability against the OS, records every
// outcome in the grant store, and decides whether to surface the
// blocked-permission remediation flow.
//
// The cycle is synchronous from the caller's perspective: HandleRequest
// returns only after every resolver round-trip has settled and the store has
// been updated. No request is dropped once it reaches this use case.
type MediateRequestUseCase struct {
	resolver *CapabilityResolver
	store    *grants.Store

	presenterMu sync.RWMutex
	presenter   port.RemediationPresenter
}

// NewMediateRequestUseCase creates the mediation use case. The presenter may
// be nil at construction and set later once the UI surface exists.
func NewMediateRequestUseCase(
	resolver *CapabilityResolver,
	store *grants.Store,
	presenter port.RemediationPresenter,
) *MediateRequestUseCase {
	return &MediateRequestUseCase{
		resolver:  resolver,
		store:     store,
		presenter: presenter,
	}
}

// SetPresenter sets the remediation presenter. This can be called after
// initialization when the UI surface is available.
func (uc *MediateRequestUseCase) SetPresenter(presenter port.RemediationPresenter) {
	uc.presenterMu.Lock()
	defer uc.presenterMu.Unlock()
	uc.presenter = presenter
}

func (uc *MediateRequestUseCase) getPresenter() port.RemediationPresenter {
	uc.presenterMu.RLock()
	defer uc.presenterMu.RUnlock()
	return uc.presenter
}

// HandleRequest processes one dispatched capability request. caps has already
// passed the wire-format dispatch: it names only recognized capabilities, with
// a fanned-out "all" arriving as both.
func (uc *MediateRequestUseCase) HandleRequest(ctx context.Context, caps []entity.Capability) {
	log := logging.FromContext(ctx).With().
		Str("component", "mediate").
		Strs("capabilities", entity.CapabilitiesToStrings(caps)).
		Logger()
	ctx = logging.WithContext(ctx, log)

	switch len(caps) {
	case 0:
		// Dispatch never produces an empty set; guard anyway.
		log.Warn().Msg("mediation invoked with no capabilities")
		return
	case 1:
		uc.handleSingle(ctx, caps[0])
	default:
		uc.handleAll(ctx)
	}
}

// handleSingle resolves one capability. Remediation surfaces only on a
// permanent block; a plain denial is a normal terminal outcome.
func (uc *MediateRequestUseCase) handleSingle(ctx context.Context, c entity.Capability) {
	result := uc.resolver.Request(ctx, c)
	uc.store.SetResult(result)

	if result.Status == entity.GrantBlocked {
		uc.remediate(ctx, []entity.CapabilityResult{result})
	}
}

// handleAll resolves both capabilities concurrently. Presentation waits for
// the aggregate: remediation surfaces at most once per cycle, when any
// capability is blocked or the aggregate is not all-granted.
func (uc *MediateRequestUseCase) handleAll(ctx context.Context) {
	aggregate := uc.resolver.RequestAll(ctx)
	for _, result := range aggregate.Results() {
		uc.store.SetResult(result)
	}

	if aggregate.AllGranted {
		return
	}

	notGranted := make([]entity.CapabilityResult, 0, 2)
	for _, result := range aggregate.Results() {
		if !result.Granted {
			notGranted = append(notGranted, result)
		}
	}
	uc.remediate(ctx, notGranted)
}

// remediate surfaces the dismiss-or-open-settings choice. It is a side effect
// only: the OS stays the sole source of truth for grant status, so nothing is
// written back to the store here.
func (uc *MediateRequestUseCase) remediate(ctx context.Context, results []entity.CapabilityResult) {
	log := logging.FromContext(ctx)

	presenter := uc.getPresenter()
	if presenter == nil {
		log.Warn().Msg("no remediation presenter available, skipping remediation")
		return
	}

	presenter.ShowRemediation(ctx, results, func(choice port.RemediationChoice) {
		if !choice.OpenSettings {
			log.Debug().Msg("remediation dismissed")
			return
		}
		log.Debug().Msg("remediation: opening OS settings")
		uc.resolver.OpenSettings(ctx)
	})
}
