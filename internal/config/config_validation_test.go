package config

import (
	"testing"

	"github.com/MKhiriev/go-csv-keeper/internal/crypto"
	"github.com/stretchr/testify/assert"
)

func TestCrypto_KDFParams(t *testing.T) {
	tests := []struct {
		name string
		cfg  Crypto
		want crypto.KDFParams
	}{
		{name: "empty is default", cfg: Crypto{}, want: crypto.DefaultKDFParams()},
		{
			name: "pbkdf2 iterations",
			cfg:  Crypto{KDF: crypto.KDFPBKDF2SHA256, Iterations: 600_000},
			want: crypto.KDFParams{Algorithm: crypto.KDFPBKDF2SHA256, Iterations: 600_000},
		},
		{
			name: "argon2id defaults",
			cfg:  Crypto{KDF: crypto.KDFArgon2id},
			want: crypto.KDFParams{Algorithm: crypto.KDFArgon2id, Iterations: 3, MemoryKiB: 64 * 1024, Parallelism: 4},
		},
		{
			name: "argon2id overrides",
			cfg:  Crypto{KDF: crypto.KDFArgon2id, Iterations: 2, MemoryKiB: 32 * 1024, Parallelism: 1},
			want: crypto.KDFParams{Algorithm: crypto.KDFArgon2id, Iterations: 2, MemoryKiB: 32 * 1024, Parallelism: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.KDFParams())
		})
	}
}

func TestStructuredConfig_ValidateServer(t *testing.T) {
	cfg := defaultConfig()
	assert.NoError(t, cfg.validate())
	assert.NoError(t, cfg.validateServer())

	noDSN := defaultConfig()
	noDSN.Storage.DB.DSN = ""
	assert.ErrorIs(t, noDSN.validateServer(), ErrInvalidStorageConfigs)

	noAddress := defaultConfig()
	noAddress.Server.HTTPAddress = ""
	assert.ErrorIs(t, noAddress.validateServer(), ErrInvalidServerConfigs)

	negative := defaultConfig()
	negative.Adapter.RequestTimeout = -1
	assert.ErrorIs(t, negative.validate(), ErrInvalidTimeoutConfigs)
}

func TestCLIConfig_Validate(t *testing.T) {
	valid := CLIConfig{RecordDir: ".", Adapter: Adapter{HTTPAddress: "localhost:8080", RequestTimeout: 1}}
	assert.NoError(t, valid.validate())

	noDir := valid
	noDir.RecordDir = ""
	assert.ErrorIs(t, noDir.validate(), ErrInvalidStorageConfigs)

	noAdapter := valid
	noAdapter.Adapter = Adapter{}
	assert.ErrorIs(t, noAdapter.validate(), ErrInvalidAdapterConfigs)
}
