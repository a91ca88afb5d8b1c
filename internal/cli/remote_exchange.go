package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-csv-keeper/models"
)

// remoteExchangeFlags are shared by remote export and remote import.
type remoteExchangeFlags struct {
	in    string
	out   string
	creds credentialFlags
}

func (f *remoteExchangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.in, "in", "i", stdStream, "input file, - for stdin")
	cmd.Flags().StringVarP(&f.out, "out", "o", stdStream, "output file, - for stdout")
	f.creds.register(cmd)
}

func (a *app) newRemoteExportCmd(flags *remoteFlags) *cobra.Command {
	var exchange remoteExchangeFlags

	cmd := &cobra.Command{
		Use:   "export <channel-id>",
		Short: "Protect a CSV document on the server",
		Args:  a.channelIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := exchange.creds.credentials()
			if err != nil {
				return err
			}

			plaintext, err := readInput(cmd, exchange.in)
			if err != nil {
				return err
			}

			req := models.ExportRequest{Credentials: creds, CSV: plaintext}
			if err = a.validator.Validate(cmd.Context(), req); err != nil {
				return err
			}

			client, err := a.serverAdapter(flags)
			if err != nil {
				return err
			}

			protected, err := client.Export(cmd.Context(), args[0], req)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			return writeOutput(cmd, exchange.out, protected)
		},
	}
	exchange.register(cmd)

	return cmd
}

func (a *app) newRemoteImportCmd(flags *remoteFlags) *cobra.Command {
	var exchange remoteExchangeFlags

	cmd := &cobra.Command{
		Use:   "import <channel-id>",
		Short: "Reveal a protected document on the server",
		Args:  a.channelIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := exchange.creds.credentials()
			if err != nil {
				return err
			}

			protected, err := readInput(cmd, exchange.in)
			if err != nil {
				return err
			}

			req := models.ImportRequest{Credentials: creds, Protected: protected}
			if err = a.validator.Validate(cmd.Context(), req); err != nil {
				return err
			}

			client, err := a.serverAdapter(flags)
			if err != nil {
				return err
			}

			plaintext, err := client.Import(cmd.Context(), args[0], req)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			return writeOutput(cmd, exchange.out, plaintext)
		},
	}
	exchange.register(cmd)

	return cmd
}
