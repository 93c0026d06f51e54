// Package shell is the terminal host application: an address screen and a
// content-viewer screen with a simulated content context wired through the
// capability mediation bridge.
package shell

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/config"
	"github.com/bnema/kiosk/internal/infrastructure/portal"
	"github.com/bnema/kiosk/internal/infrastructure/simulated"
	"github.com/bnema/kiosk/internal/logging"
)

// Run starts the shell with the configured permission backend. startURL, when
// non-empty, skips the address screen.
func Run(ctx context.Context, cfg *config.Config, startURL string) error {
	log := logging.FromContext(ctx)

	system := newSystemPermissions(ctx, cfg)
	presenter := &TeaPresenter{}

	model := NewModel(ctx, cfg, system, presenter)
	program := tea.NewProgram(model, tea.WithContext(ctx))
	model.SetSend(program.Send)

	if startURL != "" {
		go program.Send(openURLMsg{URL: startURL})
	}

	log.Info().Str("backend", cfg.Permissions.Backend).Msg("starting kiosk shell")
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("shell exited: %w", err)
	}
	return nil
}

// openURLMsg asks the address screen to open a URL immediately.
type openURLMsg struct {
	URL string
}

func newSystemPermissions(ctx context.Context, cfg *config.Config) port.SystemPermissions {
	switch cfg.Permissions.Backend {
	case "portal":
		return portal.New(ctx, cfg.Permissions.AppID, cfg.Permissions.SettingsCommand)
	default:
		return simulated.New(cfg.Permissions.Simulated)
	}
}
