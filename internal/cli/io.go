package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-csv-keeper/internal/validators"
	"github.com/MKhiriev/go-csv-keeper/models"
)

// Environment variables consulted when no password flag is given.
const (
	envAdminPassword = "CSVKEEPER_ADMIN_PASSWORD"
	envUserPassword  = "CSVKEEPER_USER_PASSWORD"
)

// stdStream selects stdin or stdout for --in and --out.
const stdStream = "-"

// credentialFlags are the --admin-password / --user-password pair of the
// exchange commands.
type credentialFlags struct {
	admin string
	user  string
}

func (f *credentialFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.admin, "admin-password", "", "unlock with the admin password (env "+envAdminPassword+")")
	cmd.Flags().StringVar(&f.user, "user-password", "", "unlock with the user password (env "+envUserPassword+")")
}

// credentials returns the supplied pair. The environment is used only when
// neither flag is set, so a flag never combines with a variable.
func (f *credentialFlags) credentials() (models.Credentials, error) {
	creds := models.Credentials{AdminPassword: f.admin, UserPassword: f.user}
	if creds.AdminPassword == "" && creds.UserPassword == "" {
		creds.AdminPassword = os.Getenv(envAdminPassword)
		creds.UserPassword = os.Getenv(envUserPassword)
	}

	if !creds.IsValid() {
		return models.Credentials{}, validators.ErrAmbiguousCredentials
	}
	return creds, nil
}

// passwordOrEnv returns value, or the named variable when value is empty.
func passwordOrEnv(value, env string) string {
	if value != "" {
		return value
	}
	return os.Getenv(env)
}

// readInput reads the whole document named by path ("-" or "" is stdin).
func readInput(cmd *cobra.Command, path string) (string, error) {
	var r io.Reader
	if path == "" || path == stdStream {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	// one extra byte is enough to detect an oversized document
	data, err := io.ReadAll(io.LimitReader(r, validators.MaxPayloadSize*2+1))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if len(data) > validators.MaxPayloadSize*2 {
		return "", ErrInputTooLarge
	}

	return string(data), nil
}

// writeOutput writes text to path ("-" or "" is stdout). Files are created
// with 0600 permissions because revealed CSV is plaintext.
func writeOutput(cmd *cobra.Command, path, text string) error {
	if path == "" || path == stdStream {
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}

	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
