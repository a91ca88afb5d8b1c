package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-csv-keeper/models"
)

const envNewAdminPassword = "CSVKEEPER_NEW_ADMIN_PASSWORD"

func (a *app) newRotateCmd() *cobra.Command {
	var (
		dir        string
		recordName string
		req        models.RotateGuardRequest
	)

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Re-guard a record with a new admin password",
		Long: `Opens the envelope with the current admin password and wraps the same
user password under the new one with a fresh salt and nonce. The content key
does not change, so documents protected earlier stay readable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.OldAdminPassword = passwordOrEnv(req.OldAdminPassword, envAdminPassword)
			req.NewAdminPassword = passwordOrEnv(req.NewAdminPassword, envNewAdminPassword)
			if err := a.validator.Validate(cmd.Context(), req); err != nil {
				return err
			}

			escrowService, _, err := a.newCrypto()
			if err != nil {
				return err
			}

			records := a.records(dir)
			record, err := records.LoadRecord(cmd.Context(), recordName)
			if err != nil {
				return err
			}

			rotated, err := escrowService.Rewrap(record, req.OldAdminPassword, req.NewAdminPassword)
			if err != nil {
				return fmt.Errorf("rewrap envelope: %w", err)
			}

			path, err := records.SaveRecord(cmd.Context(), recordName, rotated)
			if err != nil {
				return err
			}

			a.logger.Info().Str("path", path).Msg("record rotated")
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "record directory (default from configuration)")
	cmd.Flags().StringVarP(&recordName, "record", "r", defaultRecordName, "record file name")
	cmd.Flags().StringVar(&req.OldAdminPassword, "admin-password", "", "current admin password (env "+envAdminPassword+")")
	cmd.Flags().StringVar(&req.NewAdminPassword, "new-admin-password", "", "new admin password (env "+envNewAdminPassword+")")

	return cmd
}
