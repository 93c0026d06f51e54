package port

import (
	"context"

	"github.com/bnema/kiosk/internal/domain/entity"
)

// RemediationChoice is the user's response to the blocked-permission prompt.
type RemediationChoice struct {
	// OpenSettings is true if the user chose to open the OS settings surface.
	OpenSettings bool
}

// RemediationPresenter defines the interface for the user-facing choice between
// dismissing a blocked capability and opening OS settings. Implemented by the
// UI layer.
type RemediationPresenter interface {
	// ShowRemediation displays the remediation prompt for the given results.
	// The callback is invoked with the user's decision, or with a zero choice
	// if the prompt is dismissed.
	ShowRemediation(
		ctx context.Context,
		results []entity.CapabilityResult,
		callback func(choice RemediationChoice),
	)
}
