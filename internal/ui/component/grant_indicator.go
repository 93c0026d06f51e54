package component

import "github.com/bnema/kiosk/internal/domain/entity"

// GrantIndicatorState is the single visual state collapsed from the
// per-capability grant mapping.
type GrantIndicatorState string

const (
	// GrantIndicatorIdle means no capability has been resolved yet.
	GrantIndicatorIdle GrantIndicatorState = "idle"
	// GrantIndicatorGranted means at least one capability is granted and none
	// is denied or blocked.
	GrantIndicatorGranted GrantIndicatorState = "granted"
	// GrantIndicatorDenied means at least one capability is denied.
	GrantIndicatorDenied GrantIndicatorState = "denied"
	// GrantIndicatorBlocked means at least one capability is permanently blocked.
	GrantIndicatorBlocked GrantIndicatorState = "blocked"
)

// SummarizeGrantState collapses the grant mapping into one indicator state.
// Blocked outranks denied, denied outranks granted: the indicator surfaces the
// most actionable problem first.
func SummarizeGrantState(statuses map[entity.Capability]entity.GrantStatus) GrantIndicatorState {
	if len(statuses) == 0 {
		return GrantIndicatorIdle
	}

	hasGranted := false
	hasDenied := false

	for _, status := range statuses {
		switch status {
		case entity.GrantBlocked:
			return GrantIndicatorBlocked
		case entity.GrantDenied:
			hasDenied = true
		case entity.GrantGranted:
			hasGranted = true
		}
	}

	if hasDenied {
		return GrantIndicatorDenied
	}
	if hasGranted {
		return GrantIndicatorGranted
	}

	return GrantIndicatorIdle
}

// ShouldShowGrantIndicator reports whether any capability has left its initial
// unknown state this screen lifetime.
func ShouldShowGrantIndicator(statuses map[entity.Capability]entity.GrantStatus) bool {
	for _, status := range statuses {
		if status != entity.GrantUnknown {
			return true
		}
	}
	return false
}
