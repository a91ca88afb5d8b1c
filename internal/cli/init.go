package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-csv-keeper/internal/validators"
	"github.com/MKhiriev/go-csv-keeper/models"
)

const defaultRecordName = "csvkeeper.record.csv"

func (a *app) newInitCmd() *cobra.Command {
	var (
		dir           string
		recordName    string
		adminPassword string
		userPassword  string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new envelope record for a channel",
		Long: `Creates a one-row CSV envelope record. The user password is wrapped
under a key derived from the admin password, and a separate random salt is
drawn for the content key. An existing record is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.CreateChannelRequest{
				AdminPassword: passwordOrEnv(adminPassword, envAdminPassword),
				UserPassword:  passwordOrEnv(userPassword, envUserPassword),
			}
			// the name belongs to remote channels only
			if err := a.validator.Validate(cmd.Context(), req, validators.FieldAdminPassword, validators.FieldUserPassword); err != nil {
				return err
			}

			escrowService, _, err := a.newCrypto()
			if err != nil {
				return err
			}

			record, err := escrowService.NewRecord(req.UserPassword, req.AdminPassword)
			if err != nil {
				return fmt.Errorf("create record: %w", err)
			}

			path, err := a.records(dir).CreateRecord(cmd.Context(), recordName, record)
			if err != nil {
				return err
			}

			a.logger.Info().Str("path", path).Str("kdf", record.Envelope.KDF).Msg("record created")
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "record directory (default from configuration)")
	cmd.Flags().StringVarP(&recordName, "record", "r", defaultRecordName, "record file name")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "", "guarding admin password (env "+envAdminPassword+")")
	cmd.Flags().StringVar(&userPassword, "user-password", "", "per-user password (env "+envUserPassword+")")

	return cmd
}
