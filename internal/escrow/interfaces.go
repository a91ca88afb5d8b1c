package escrow

import (
	"github.com/MKhiriev/go-csv-keeper/internal/crypto"
	"github.com/MKhiriev/go-csv-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/escrow_mock.go -package=mock

// Service implements the dual-key scheme: an administrator password guards a
// per-user password, which in turn derives the content key for CSV payloads.
//
// Схема работы:
//
//	guardKey   = KDF(adminPassword, envelope.salt)
//	envelope   = AEAD(guardKey, userPassword)
//	contentKey = KDF(userPassword, content.salt)
//
// The envelope salt and the content salt are always distinct random values.
type Service interface {
	// CreateEnvelope wraps secondaryPassword under a key derived from
	// guardingPassword with a fresh salt and nonce.
	CreateEnvelope(secondaryPassword, guardingPassword string) (models.Envelope, error)

	// OpenEnvelope recovers the secondary password. A wrong guarding password
	// and a corrupted ciphertext both yield [ErrDerivationFailure].
	OpenEnvelope(envelope models.Envelope, guardingPassword string) (string, error)

	// NewRecord creates an envelope for userPassword guarded by adminPassword
	// together with a fresh content-key context.
	NewRecord(userPassword, adminPassword string) (models.EnvelopeRecord, error)

	// ContentKey resolves the content key of record from either the admin
	// password (through the envelope) or the user password.
	ContentKey(record models.EnvelopeRecord, creds models.Credentials) (crypto.KeyHandle, error)

	// Rewrap replaces the envelope of record so that it is guarded by
	// newAdminPassword. The content-key context is kept unchanged, so data
	// protected before the rotation stays readable.
	Rewrap(record models.EnvelopeRecord, oldAdminPassword, newAdminPassword string) (models.EnvelopeRecord, error)
}
