package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd(open Opener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "barberctl",
		Short:         "BarberPro admin tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		InitCmd(open),
		TenantsCmd(open),
		SummaryCmd(open),
		BackupCmd(open),
		ImportLegacyCmd(open),
	)
	return rootCmd
}
