// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryption is returned when AEAD authentication fails. It is the only
	// signal of a wrong key/password or of corrupted ciphertext; the two
	// causes are deliberately indistinguishable.
	ErrDecryption = errors.New("decryption failed: wrong password or corrupted data")

	// ErrInvalidArgument is returned for structurally invalid inputs such as an
	// empty salt, a non-positive iteration count or a key of the wrong size.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedKDF is returned when KDF parameters name an unknown
	// algorithm or cannot be parsed.
	ErrUnsupportedKDF = errors.New("unsupported key derivation function")

	// ErrWeakKDF is returned when parameters for a new record fall below the
	// minimum accepted strength.
	ErrWeakKDF = errors.New("key derivation parameters are below the minimum strength")
)
