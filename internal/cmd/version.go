package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learnmod/cli/internal/cmdtypes"
	"github.com/learnmod/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show learnmod version information.

Displays:
  - learnmod version, commit, and build date
  - CUE SDK version (embedded in the CLI for schema checks)`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(c *cobra.Command, args []string) error {
			fmt.Fprintln(c.OutOrStdout(), version.GetInfo().String())
			return nil
		},
	}
}
