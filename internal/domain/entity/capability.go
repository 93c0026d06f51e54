package entity

// Capability represents a sensitive device feature gated by OS-level user consent.
type Capability string

const (
	// CapabilityCamera represents camera access.
	CapabilityCamera Capability = "camera"

	// CapabilityMicrophone represents microphone access.
	CapabilityMicrophone Capability = "microphone"
)

// AllCapabilities lists every capability the bridge mediates, in stable order.
func AllCapabilities() []Capability {
	return []Capability{CapabilityCamera, CapabilityMicrophone}
}

// IsKnown returns true if c is one of the mediated capabilities.
func (c Capability) IsKnown() bool {
	switch c {
	case CapabilityCamera, CapabilityMicrophone:
		return true
	default:
		return false
	}
}

// GrantStatus represents the lifecycle state of a capability's consent.
type GrantStatus string

const (
	// GrantUnknown means the capability was never checked this process lifetime.
	GrantUnknown GrantStatus = "unknown"

	// GrantGranted means the OS reports the capability as allowed.
	GrantGranted GrantStatus = "granted"

	// GrantDenied means the user declined, but a later request may prompt again.
	GrantDenied GrantStatus = "denied"

	// GrantBlocked means the denial is permanent: re-requesting will not prompt
	// and remediation must route through OS settings.
	GrantBlocked GrantStatus = "blocked"
)

// CapabilityResult is the outcome of a single check or request round-trip.
// Granted is derived from Status so the two can never diverge.
type CapabilityResult struct {
	Capability Capability
	Granted    bool
	Status     GrantStatus
}

// NewCapabilityResult builds a result whose Granted field is derived from status.
func NewCapabilityResult(c Capability, status GrantStatus) CapabilityResult {
	return CapabilityResult{
		Capability: c,
		Granted:    status == GrantGranted,
		Status:     status,
	}
}

// AggregateResult is the outcome of resolving both capabilities together.
type AggregateResult struct {
	Camera     CapabilityResult
	Microphone CapabilityResult
	AllGranted bool
}

// Results returns the per-capability results in stable order.
func (a AggregateResult) Results() []CapabilityResult {
	return []CapabilityResult{a.Camera, a.Microphone}
}

// AnyBlocked returns true if either capability is permanently blocked.
func (a AggregateResult) AnyBlocked() bool {
	return a.Camera.Status == GrantBlocked || a.Microphone.Status == GrantBlocked
}

// CapabilitiesToStrings converts capabilities to strings for logging.
func CapabilitiesToStrings(caps []Capability) []string {
	result := make([]string, len(caps))
	for i, c := range caps {
		result[i] = string(c)
	}
	return result
}
