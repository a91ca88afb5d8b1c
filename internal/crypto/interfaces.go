package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Provider is the host cryptographic engine the pipeline is built on.
// It exposes only fixed-shape primitives; everything above it (nonce
// handling, envelopes, payload encoding) is expressed in terms of these calls.
//
// Implementations must be safe for concurrent use and must not cache key
// material between calls.
type Provider interface {
	// RandomBytes returns n bytes from a cryptographically secure source.
	RandomBytes(n int) ([]byte, error)

	// DeriveKey turns a password and salt into a 256-bit key using the
	// slow, salted derivation described by params. A wrong password always
	// "succeeds" here; wrongness surfaces only when decryption fails.
	DeriveKey(password string, salt []byte, params KDFParams) (KeyHandle, error)

	// AEADEncrypt seals plaintext under key and nonce. The result is
	// ciphertext ‖ authentication tag.
	AEADEncrypt(key KeyHandle, nonce, plaintext []byte) ([]byte, error)

	// AEADDecrypt opens ciphertext ‖ tag. Any authentication failure is
	// reported as [ErrDecryption].
	AEADDecrypt(key KeyHandle, nonce, ciphertext []byte) ([]byte, error)

	// NonceSize returns the nonce length required by the AEAD (12 for GCM).
	NonceSize() int
}

// CipherService is the authenticated cipher used by the escrow envelope and
// the CSV payload codec. Unlike [Provider] it never lets callers choose a
// nonce: every Encrypt draws a fresh random one.
//
// Схема работы:
//
//	salt       = NewSalt()
//	key        = DeriveKey(password, salt, params)
//	nonce, ct  = Encrypt(plaintext, key)
//	plaintext  = Decrypt(ct, key, nonce)
type CipherService interface {
	// NewSalt returns a fresh random salt of [SaltSize] bytes.
	NewSalt() ([]byte, error)

	// DeriveKey delegates to [Provider.DeriveKey].
	DeriveKey(password string, salt []byte, params KDFParams) (KeyHandle, error)

	// Encrypt seals plaintext under key with a freshly generated nonce and
	// returns both. Two calls with identical inputs never share a nonce.
	Encrypt(plaintext []byte, key KeyHandle) (nonce, ciphertext []byte, err error)

	// Decrypt verifies and opens ciphertext. It returns [ErrDecryption] for a
	// wrong key or tampered input, without telling the two apart, and never
	// returns partial plaintext.
	Decrypt(ciphertext []byte, key KeyHandle, nonce []byte) ([]byte, error)

	// NonceSize returns the nonce length Encrypt produces and Decrypt expects.
	NonceSize() int
}
