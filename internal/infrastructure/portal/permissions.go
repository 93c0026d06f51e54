// Package portal implements the OS permission subsystem port via the XDG
// Desktop Portal over D-Bus. This works on Wayland with any compositor
// (GNOME, KDE, sway, hyprland, etc.).
package portal

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

const (
	portalDest   = "org.freedesktop.portal.Desktop"
	portalPath   = "/org/freedesktop/portal/desktop"
	deviceIface  = "org.freedesktop.portal.Device"
	requestIface = "org.freedesktop.portal.Request"

	permStoreDest  = "org.freedesktop.impl.portal.PermissionStore"
	permStorePath  = "/org/freedesktop/impl/portal/PermissionStore"
	permStoreIface = "org.freedesktop.impl.portal.PermissionStore"
	permStoreTable = "devices"

	// Portal request response codes.
	responseSuccess   = 0
	responseCancelled = 1
	responseOther     = 2

	requestTimeout = 2 * time.Minute
)

// Compile-time interface check.
var _ port.SystemPermissions = (*Permissions)(nil)

// Permissions implements port.SystemPermissions using the Device portal for
// prompting and the portal permission store for side-effect-free checks.
// Degrades gracefully: when the session bus or portal is unavailable every
// call reports a transport error and the resolver keeps its last-known state.
type Permissions struct {
	conn  *dbus.Conn
	appID string

	// SettingsCommand is run by OpenSettings. Overridable from config so
	// desktops without gnome-control-center can route somewhere sensible.
	settingsCommand []string

	mu sync.Mutex
}

// New connects to the session bus and returns a portal-backed adapter.
// A nil-connection adapter is still returned on failure so callers can wire
// it unconditionally; its calls report transport errors.
func New(ctx context.Context, appID string, settingsCommand []string) *Permissions {
	log := logging.FromContext(ctx)

	p := &Permissions{
		appID:           appID,
		settingsCommand: settingsCommand,
	}
	if len(p.settingsCommand) == 0 {
		p.settingsCommand = []string{"xdg-open", "settings://privacy"}
	}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug().Err(err).Msg("portal permissions: cannot connect to D-Bus session bus")
		return p
	}
	p.conn = conn

	log.Debug().Str("app_id", appID).Msg("portal permissions: session bus connected")
	return p
}

// Check queries the portal permission store without prompting.
func (p *Permissions) Check(ctx context.Context, id port.PlatformPermissionID) (entity.GrantStatus, error) {
	if p.conn == nil {
		return entity.GrantUnknown, fmt.Errorf("session bus unavailable")
	}

	device, err := deviceName(id)
	if err != nil {
		return entity.GrantUnknown, err
	}

	obj := p.conn.Object(permStoreDest, permStorePath)
	var permissions map[string][]string
	var data dbus.Variant
	call := obj.CallWithContext(ctx, permStoreIface+".Lookup", 0, permStoreTable, device)
	if err := call.Store(&permissions, &data); err != nil {
		return entity.GrantUnknown, fmt.Errorf("permission store lookup for %q: %w", device, err)
	}

	entries, ok := permissions[p.appID]
	if !ok || len(entries) == 0 {
		return entity.GrantUnknown, nil
	}
	switch strings.ToLower(entries[0]) {
	case "yes", "true", "grant-permission":
		return entity.GrantGranted, nil
	case "no", "false":
		// The store records a sticky "no": re-requesting will not prompt.
		return entity.GrantBlocked, nil
	case "ask":
		return entity.GrantDenied, nil
	default:
		return entity.GrantUnknown, nil
	}
}

// Request asks the Device portal for access, prompting the user if the
// permission is undecided. Blocks until the portal's Response signal or ctx
// expiry.
func (p *Permissions) Request(ctx context.Context, id port.PlatformPermissionID) (entity.GrantStatus, error) {
	log := logging.FromContext(ctx)

	if p.conn == nil {
		return entity.GrantUnknown, fmt.Errorf("session bus unavailable")
	}

	device, err := deviceName(id)
	if err != nil {
		return entity.GrantUnknown, err
	}

	// One portal request at a time; the portal serializes prompts anyway and
	// interleaved signal subscriptions would cross-match responses.
	p.mu.Lock()
	defer p.mu.Unlock()

	signals := make(chan *dbus.Signal, 1)
	p.conn.Signal(signals)
	defer p.conn.RemoveSignal(signals)

	if err := p.conn.AddMatchSignal(
		dbus.WithMatchInterface(requestIface),
		dbus.WithMatchMember("Response"),
	); err != nil {
		return entity.GrantUnknown, fmt.Errorf("subscribe to portal responses: %w", err)
	}
	defer func() {
		_ = p.conn.RemoveMatchSignal(
			dbus.WithMatchInterface(requestIface),
			dbus.WithMatchMember("Response"),
		)
	}()

	obj := p.conn.Object(portalDest, portalPath)
	options := map[string]dbus.Variant{}
	var handle dbus.ObjectPath
	call := obj.CallWithContext(ctx, deviceIface+".AccessDevice", 0,
		uint32(os.Getpid()), []string{device}, options)
	if err := call.Store(&handle); err != nil {
		return entity.GrantUnknown, fmt.Errorf("AccessDevice(%q): %w", device, err)
	}

	log.Debug().Str("device", device).Str("handle", string(handle)).Msg("portal access request issued")

	timer := time.NewTimer(requestTimeout)
	defer timer.Stop()

	for {
		select {
		case sig := <-signals:
			if sig == nil || sig.Path != handle || len(sig.Body) == 0 {
				continue
			}
			code, ok := sig.Body[0].(uint32)
			if !ok {
				continue
			}
			return classifyResponse(code), nil
		case <-timer.C:
			return entity.GrantUnknown, fmt.Errorf("portal response for %q timed out", device)
		case <-ctx.Done():
			return entity.GrantUnknown, ctx.Err()
		}
	}
}

// OpenSettings launches the configured settings surface.
func (p *Permissions) OpenSettings(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, p.settingsCommand[0], p.settingsCommand[1:]...) // #nosec G204 -- operator-configured command
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open settings via %q: %w", p.settingsCommand[0], err)
	}
	// Detach: the settings app outlives the request.
	go func() { _ = cmd.Wait() }()
	return nil
}

// deviceName maps the resolver's platform identifier onto the portal device
// name ("devices/camera" -> "camera").
func deviceName(id port.PlatformPermissionID) (string, error) {
	device, ok := strings.CutPrefix(string(id), "devices/")
	if !ok || device == "" {
		return "", fmt.Errorf("unrecognized platform permission id %q", id)
	}
	return device, nil
}

// classifyResponse maps portal response codes onto the grant status domain.
// 1 is an explicit user cancel (may prompt again later); 2 means the portal
// could not or will not prompt, which is a permanent block from the app's
// point of view.
func classifyResponse(code uint32) entity.GrantStatus {
	switch code {
	case responseSuccess:
		return entity.GrantGranted
	case responseCancelled:
		return entity.GrantDenied
	case responseOther:
		return entity.GrantBlocked
	default:
		return entity.GrantUnknown
	}
}
