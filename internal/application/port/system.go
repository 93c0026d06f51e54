// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (portal, TUI shell, etc.).
package port

import (
	"context"

	"github.com/bnema/kiosk/internal/domain/entity"
)

// PlatformPermissionID is the OS-specific identifier for a permission.
// It is produced by the resolver's capability mapping and never escapes
// past the system permissions port.
type PlatformPermissionID string

// SystemPermissions abstracts the host OS permission subsystem.
// Implementations map the platform's own status domain onto entity.GrantStatus.
type SystemPermissions interface {
	// Check queries the current grant state without prompting the user.
	// It must be side-effect-free.
	Check(ctx context.Context, id PlatformPermissionID) (entity.GrantStatus, error)

	// Request queries and, if the permission is undecided, prompts the user.
	// It may suspend pending user interaction. Already granted or permanently
	// blocked permissions must not re-prompt.
	Request(ctx context.Context, id PlatformPermissionID) (entity.GrantStatus, error)

	// OpenSettings opens the OS settings surface where a permanently blocked
	// permission can be changed.
	OpenSettings(ctx context.Context) error
}
