// Package cli provides the command-line interface for kiosk.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/kiosk/internal/config"
	"github.com/bnema/kiosk/internal/logging"
	"github.com/bnema/kiosk/internal/ui/shell"
)

// NewRootCmd creates the root command for kiosk.
func NewRootCmd(version string) *cobra.Command {
	var configPath string
	var backend string

	rootCmd := &cobra.Command{
		Use:     "kiosk [url]",
		Short:   "A locked-down shell for untrusted remote content",
		Long:    "kiosk hosts untrusted remote content and mediates its camera and microphone requests through the OS permission model.",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := config.NewManager(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg := manager.Get()
			if backend != "" {
				cfg.Permissions.Backend = backend
			}

			logCfg := logging.DefaultConfig()
			if level, ok := logging.ParseLevel(cfg.Logging.Level); ok {
				logCfg.Level = level
			}
			if cfg.Logging.Format == "json" || cfg.Logging.Format == "console" {
				logCfg.Format = cfg.Logging.Format
			}
			logger := logging.New(logCfg)
			ctx := logging.WithContext(context.Background(), logger)

			// Hot-reload: log level follows the config file while running.
			manager.OnChange(func(updated *config.Config) {
				if level, ok := logging.ParseLevel(updated.Logging.Level); ok {
					zerolog.SetGlobalLevel(level)
				}
			})
			manager.Watch()

			startURL := ""
			if len(args) > 0 {
				startURL = args[0]
			}
			return shell.Run(ctx, cfg, startURL)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&backend, "backend", "", "permission backend override (portal|simulated)")

	rootCmd.AddCommand(newSchemaCmd())

	return rootCmd
}
