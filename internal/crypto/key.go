// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "crypto/subtle"

// KeySize is the length of every derived key in bytes (AES-256).
const KeySize = 32

// KeyHandle wraps derived symmetric key material. It is never serialized;
// callers re-derive it from (password, salt) whenever they need it.
type KeyHandle struct {
	material []byte
}

// NewKeyHandle copies material into a new handle.
func NewKeyHandle(material []byte) KeyHandle {
	return KeyHandle{material: append([]byte(nil), material...)}
}

// Material returns a copy of the raw key bytes. It is meant for [Provider]
// implementations only.
func (k KeyHandle) Material() []byte {
	return append([]byte(nil), k.material...)
}

// Len returns the key length in bytes.
func (k KeyHandle) Len() int {
	return len(k.material)
}

// IsZero reports whether the handle holds no key.
func (k KeyHandle) IsZero() bool {
	return len(k.material) == 0
}

// Equal compares two keys in constant time.
func (k KeyHandle) Equal(other KeyHandle) bool {
	return subtle.ConstantTimeCompare(k.material, other.material) == 1
}
