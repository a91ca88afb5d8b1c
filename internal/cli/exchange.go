package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-csv-keeper/models"
)

// exchangeFlags are shared by protect and reveal.
type exchangeFlags struct {
	dir        string
	recordName string
	in         string
	out        string
	creds      credentialFlags
}

func (f *exchangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dir, "dir", "", "record directory (default from configuration)")
	cmd.Flags().StringVarP(&f.recordName, "record", "r", defaultRecordName, "record file name")
	cmd.Flags().StringVarP(&f.in, "in", "i", stdStream, "input file, - for stdin")
	cmd.Flags().StringVarP(&f.out, "out", "o", stdStream, "output file, - for stdout")
	f.creds.register(cmd)
}

func (a *app) newProtectCmd() *cobra.Command {
	var flags exchangeFlags

	cmd := &cobra.Command{
		Use:   "protect",
		Short: "Encrypt a CSV document with the channel's content key",
		Example: `  csvkeeper protect -r payroll.record.csv --user-password "$PW" -i employees.csv -o employees.protected
  csvkeeper protect --admin-password "$ADMIN" < employees.csv > employees.protected`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := flags.creds.credentials()
			if err != nil {
				return err
			}

			plaintext, err := readInput(cmd, flags.in)
			if err != nil {
				return err
			}
			if err = a.validator.Validate(cmd.Context(), models.ExportRequest{Credentials: creds, CSV: plaintext}); err != nil {
				return err
			}

			escrowService, payload, err := a.newCrypto()
			if err != nil {
				return err
			}

			record, err := a.records(flags.dir).LoadRecord(cmd.Context(), flags.recordName)
			if err != nil {
				return err
			}

			key, err := escrowService.ContentKey(record, creds)
			if err != nil {
				return fmt.Errorf("unlock content key: %w", err)
			}

			protected, err := payload.Protect(plaintext, key)
			if err != nil {
				return fmt.Errorf("protect: %w", err)
			}

			a.logger.Debug().Str("unlocked_by", credentialsRole(creds)).Int("size", len(plaintext)).Msg("document protected")
			return writeOutput(cmd, flags.out, protected)
		},
	}
	flags.register(cmd)

	return cmd
}

func (a *app) newRevealCmd() *cobra.Command {
	var flags exchangeFlags

	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Decrypt a protected document back to CSV",
		Long: `Decrypts <base64 nonce>:<base64 ciphertext> text produced by protect.
A wrong password and a tampered file are reported the same way and exit
with code 3.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := flags.creds.credentials()
			if err != nil {
				return err
			}

			protected, err := readInput(cmd, flags.in)
			if err != nil {
				return err
			}
			if err = a.validator.Validate(cmd.Context(), models.ImportRequest{Credentials: creds, Protected: protected}); err != nil {
				return err
			}

			escrowService, payload, err := a.newCrypto()
			if err != nil {
				return err
			}

			record, err := a.records(flags.dir).LoadRecord(cmd.Context(), flags.recordName)
			if err != nil {
				return err
			}

			key, err := escrowService.ContentKey(record, creds)
			if err != nil {
				return fmt.Errorf("unlock content key: %w", err)
			}

			plaintext, err := payload.Reveal(protected, key)
			if err != nil {
				return fmt.Errorf("reveal: %w", err)
			}

			a.logger.Debug().Str("unlocked_by", credentialsRole(creds)).Int("size", len(plaintext)).Msg("document revealed")
			return writeOutput(cmd, flags.out, plaintext)
		},
	}
	flags.register(cmd)

	return cmd
}

func credentialsRole(creds models.Credentials) string {
	if creds.IsAdmin() {
		return "admin"
	}
	return "user"
}
