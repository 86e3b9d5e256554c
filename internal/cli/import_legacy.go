package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/barberpro/internal/legacy"
)

func ImportLegacyCmd(open Opener) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import-legacy <barberpro_db.json>",
		Short: "Import a document written by the previous BarberPro version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			doc, rep, err := legacy.Convert(raw)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tenants=%d clients=%d staff=%d appointments=%d ledger=%d services=%d\n",
				rep.Tenants, rep.Clients, rep.Staff, rep.Appointments, rep.Ledger, rep.Services)
			for _, s := range rep.Skipped {
				fmt.Fprintf(out, "skipped: %s\n", s)
			}

			if dryRun {
				return nil
			}

			app, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			if err := legacy.Write(cmd.Context(), app.Backend, doc); err != nil {
				return err
			}
			fmt.Fprintln(out, "import done")
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only convert and report")
	return cmd
}
