package shell

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

// RemediationMsg asks the shell to render the dismiss-or-open-settings modal.
type RemediationMsg struct {
	Results  []entity.CapabilityResult
	Callback func(choice port.RemediationChoice)
}

// Compile-time interface check.
var _ port.RemediationPresenter = (*TeaPresenter)(nil)

// TeaPresenter implements port.RemediationPresenter by queueing the prompt
// into the bubbletea program. Safe to call from mediation goroutines.
type TeaPresenter struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

// SetSend installs the program's Send once the program exists.
func (p *TeaPresenter) SetSend(fn func(tea.Msg)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.send = fn
}

// ShowRemediation queues the modal. If the program is not running yet the
// prompt is dropped as a dismissal; grant state is already recorded either way.
func (p *TeaPresenter) ShowRemediation(
	ctx context.Context,
	results []entity.CapabilityResult,
	callback func(choice port.RemediationChoice),
) {
	p.mu.RLock()
	send := p.send
	p.mu.RUnlock()

	if send == nil {
		logging.FromContext(ctx).Warn().Msg("remediation prompt with no UI attached, dismissing")
		callback(port.RemediationChoice{})
		return
	}
	send(RemediationMsg{Results: results, Callback: callback})
}
