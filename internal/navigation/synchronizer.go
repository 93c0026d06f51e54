// Package navigation keeps the host's back action mapped onto the content
// context's own history stack versus the host's screen stack.
package navigation

import (
	"context"
	"sync"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

// Synchronizer consumes content navigation signals and decides, per back
// action, whether to step the content history or exit the viewer screen.
// Content-internal history is exhausted before the host treats the action as
// "leave the viewer".
type Synchronizer struct {
	content port.ContentView
	host    port.HostNavigator

	mu     sync.Mutex
	signal entity.NavigationSignal
}

// NewSynchronizer creates a synchronizer for the given content view and host
// screen stack.
func NewSynchronizer(content port.ContentView, host port.HostNavigator) *Synchronizer {
	return &Synchronizer{
		content: content,
		host:    host,
	}
}

// Update records the content context's latest navigation signal. Called on
// every content navigation event.
func (s *Synchronizer) Update(signal entity.NavigationSignal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signal = signal
}

// CanGoBack reports the last-observed signal, read synchronously by callers
// that need it for presentation.
func (s *Synchronizer) CanGoBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signal.CanGoBack
}

// HandleBack processes one back-action trigger. If the content can go back,
// the action is consumed by stepping the content history; otherwise exactly
// one exit is propagated to the host screen stack.
func (s *Synchronizer) HandleBack(ctx context.Context) {
	log := logging.FromContext(ctx).With().Str("component", "nav-sync").Logger()

	if s.CanGoBack() {
		log.Debug().Msg("back action consumed by content history")
		if err := s.content.GoBack(ctx); err != nil {
			// The action stays consumed: a failed content step must not fall
			// through and pop the viewer unexpectedly.
			log.Warn().Err(err).Msg("content go-back failed")
		}
		return
	}

	log.Debug().Msg("back action exits the viewer")
	s.host.ExitViewer(ctx)
}
