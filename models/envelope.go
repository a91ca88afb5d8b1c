// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope is a key-escrow record: a secondary (per-user) password wrapped
// under a key derived from a guarding (administrator) password.
//
// All fields are standard base64 text, except KDF which holds the textual
// key-derivation parameters (e.g. "pbkdf2-sha256$i=100000"). The three
// base64 fields must always be stored and shipped together: losing any of
// them makes the secondary password unrecoverable.
type Envelope struct {
	// IV is the AEAD nonce used to wrap the secondary password.
	IV string `json:"iv"`
	// EncryptedKeyData is the wrapped secondary password (ciphertext ‖ tag).
	EncryptedKeyData string `json:"encryptedKeyData"`
	// Salt is the random salt the guard key was derived with.
	Salt string `json:"salt"`
	// KDF records how the guard key was derived. Empty means the legacy
	// default (PBKDF2-HMAC-SHA256, 100 000 iterations).
	KDF string `json:"kdf,omitempty"`
}

// ContentKeyContext holds everything needed to re-derive the content key from
// the per-user password, apart from the password itself.
type ContentKeyContext struct {
	// Salt is the dedicated random salt of the content-key derivation.
	Salt string `json:"salt"`
	// KDF records the content-key derivation parameters.
	KDF string `json:"kdf,omitempty"`
	// Check is a protected known value ("nonce:ciphertext") used to reject a
	// wrong per-user password before any data is encrypted under it.
	Check string `json:"check,omitempty"`
}

// EnvelopeRecord is the unit persisted per protected data channel: the
// escrow envelope plus the content-key context stored alongside it.
type EnvelopeRecord struct {
	Envelope Envelope          `json:"envelope"`
	Content  ContentKeyContext `json:"content"`
}
