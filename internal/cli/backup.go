package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/barberpro/internal/backup"
)

func BackupCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Upload a full snapshot of the store to the blob store",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			key, err := backup.NewUploader(app.Backend, app.Blobs, app.Config.Backup.Prefix).Upload(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "backup written to %s\n", key)
			return nil
		},
	}
}
