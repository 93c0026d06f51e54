package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/kiosk/internal/bridge"
)

// newSchemaCmd prints the bridge wire-format schema for content authors and
// tooling.
func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the content-to-host bridge message schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := bridge.SchemaJSON()
			if err != nil {
				return fmt.Errorf("failed to render bridge schema: %w", err)
			}
			cmd.Println(string(data))
			return nil
		},
	}
}
