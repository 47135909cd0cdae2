// Package cli implements caloctl, the operator tool for the Calo backend.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the caloctl root command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "caloctl",
		Short:         "Herramientas de administración del sitio Calo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewGenHashCommand())
	cmd.AddCommand(NewSeedCommand())

	return cmd
}
