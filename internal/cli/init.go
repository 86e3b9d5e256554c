package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// InitCmd abre a base; um arquivo ou banco vazio recebe as contas padrão.
func InitCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the store with the default accounts if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			tenants, err := app.Repo.Tenants(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "store ready (%s): %d tenants\n", app.Config.Store.Driver, len(tenants))
			return nil
		},
	}
}
