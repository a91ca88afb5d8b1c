package cli

import (
	"errors"

	"github.com/MKhiriev/go-csv-keeper/internal/adapter"
	"github.com/MKhiriev/go-csv-keeper/internal/codec"
	"github.com/MKhiriev/go-csv-keeper/internal/crypto"
	"github.com/MKhiriev/go-csv-keeper/internal/validators"
)

var ErrInputTooLarge = errors.New("input is too large")

// Exit codes returned by [ExitCode].
const (
	ExitOK = iota
	ExitFailure
	ExitInvalidInput
	ExitDecryptionFailed
)

// ExitCode maps an error returned by the command tree to a process exit code.
// Scripts rely on [ExitDecryptionFailed] to tell a wrong password from other
// failures.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, crypto.ErrDecryption),
		errors.Is(err, adapter.ErrDecryptionFailed):
		return ExitDecryptionFailed
	case errors.Is(err, codec.ErrMalformedEnvelope),
		errors.Is(err, codec.ErrDecoding),
		errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, validators.ErrInvalidChannelID),
		errors.Is(err, validators.ErrAmbiguousCredentials),
		errors.Is(err, validators.ErrEmptyAdminPassword),
		errors.Is(err, validators.ErrEmptyUserPassword),
		errors.Is(err, validators.ErrSamePasswords),
		errors.Is(err, validators.ErrEmptyProtectedData),
		errors.Is(err, validators.ErrPayloadTooLarge),
		errors.Is(err, ErrInputTooLarge):
		return ExitInvalidInput
	default:
		return ExitFailure
	}
}
