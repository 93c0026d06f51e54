// Package coordinator binds the bridge, grant store, and navigation
// synchronizer to a mounted content-viewer screen.
package coordinator

import (
	"context"
	"fmt"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/bridge"
	"github.com/bnema/kiosk/internal/bridge/handlers"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/grants"
	"github.com/bnema/kiosk/internal/logging"
	"github.com/bnema/kiosk/internal/navigation"
	"github.com/bnema/kiosk/internal/shim"
)

// ViewerCoordinator owns one viewer screen's bridge wiring for its mounted
// lifetime. A remount builds a fresh coordinator and with it a fresh grant
// store; nothing survives unmount.
type ViewerCoordinator struct {
	content port.ContentView
	store   *grants.Store
	router  *bridge.Router
	sync    *navigation.Synchronizer
	mediate *usecase.MediateRequestUseCase
}

// NewViewerCoordinator wires a viewer screen against the given collaborators.
// presenter may be nil until the UI surface exists; set it via SetPresenter.
func NewViewerCoordinator(
	ctx context.Context,
	content port.ContentView,
	host port.HostNavigator,
	system port.SystemPermissions,
	presenter port.RemediationPresenter,
) (*ViewerCoordinator, error) {
	store := grants.NewStore()
	resolver := usecase.NewCapabilityResolver(system)
	mediate := usecase.NewMediateRequestUseCase(resolver, store, presenter)

	router := bridge.NewRouter(ctx)
	if err := handlers.RegisterPermissionHandlers(ctx, router, mediate); err != nil {
		return nil, fmt.Errorf("register permission handlers: %w", err)
	}

	return &ViewerCoordinator{
		content: content,
		store:   store,
		router:  router,
		sync:    navigation.NewSynchronizer(content, host),
		mediate: mediate,
	}, nil
}

// SetPresenter installs the remediation presenter once the UI is available.
func (c *ViewerCoordinator) SetPresenter(presenter port.RemediationPresenter) {
	c.mediate.SetPresenter(presenter)
}

// Mount injects the interception shim into the content context. The screen is
// functional without it (the OS prompt still gates native calls), so a failed
// injection is logged and not fatal.
func (c *ViewerCoordinator) Mount(ctx context.Context) {
	ctx = logging.WithComponent(ctx, "viewer")
	log := logging.FromContext(ctx)

	if err := shim.Validate(); err != nil {
		log.Error().Err(err).Msg("refusing to inject broken shim")
		return
	}
	if err := c.content.RunJavaScript(ctx, shim.Script()); err != nil {
		log.Warn().Err(err).Msg("shim injection failed")
		return
	}
	log.Debug().Msg("interception shim injected")
}

// Unmount tears the grant store down so in-flight resolver callbacks land on
// a dead store instead of a freed screen.
func (c *ViewerCoordinator) Unmount() {
	c.store.Teardown()
}

// ReceiveMessage feeds one raw content-channel payload into the bridge.
func (c *ViewerCoordinator) ReceiveMessage(raw []byte) {
	c.router.Receive(raw)
}

// OnNavigationChanged records the content context's latest history signal.
func (c *ViewerCoordinator) OnNavigationChanged(signal entity.NavigationSignal) {
	c.sync.Update(signal)
}

// HandleBack processes one hardware/gesture back action.
func (c *ViewerCoordinator) HandleBack(ctx context.Context) {
	c.sync.HandleBack(ctx)
}

// GrantSnapshot returns the current grant mapping for indicator rendering.
func (c *ViewerCoordinator) GrantSnapshot() map[entity.Capability]entity.GrantStatus {
	return c.store.Snapshot()
}

// AllGranted reports whether every mediated capability is currently granted.
func (c *ViewerCoordinator) AllGranted() bool {
	return c.store.AllGranted()
}
