package config

import (
	"fmt"

	"github.com/MKhiriev/go-csv-keeper/internal/crypto"
)

// CLIConfig is the configuration view used by the csvkeeper command-line
// tool. Command-line flags are owned by the CLI itself, so only defaults,
// environment variables and the JSON file take part in the merge.
type CLIConfig struct {
	// KDF are the derivation parameters for records created by the CLI.
	KDF crypto.KDFParams
	// RecordDir is the default directory for record files.
	RecordDir string
	// Adapter is the server used by the remote commands.
	Adapter Adapter
}

// GetCLIConfig builds and validates the CLI view of the configuration.
// jsonFilePath, when non-empty, takes precedence over the CONFIG variable.
func GetCLIConfig(jsonFilePath string) (*CLIConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withConfig(&StructuredConfig{JSONFilePath: jsonFilePath}).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	cliCfg := &CLIConfig{
		KDF:       cfg.Crypto.KDFParams(),
		RecordDir: cfg.Storage.Files.RecordDir,
		Adapter: Adapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	return cliCfg, cliCfg.validate()
}
