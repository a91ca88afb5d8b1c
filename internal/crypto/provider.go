// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// gcmNonceSize is the standard AES-GCM nonce length.
const gcmNonceSize = 12

// stdProvider is the default [Provider] backed by the Go crypto libraries:
// PBKDF2/Argon2id from golang.org/x/crypto and AES-256-GCM from the standard
// library.
type stdProvider struct {
	random io.Reader
}

// NewProvider constructs the default [Provider] reading randomness from the
// OS CSPRNG.
func NewProvider() Provider {
	return &stdProvider{random: rand.Reader}
}

// RandomBytes implements [Provider].
func (p *stdProvider) RandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: random length must be positive", ErrInvalidArgument)
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(p.random, buf); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return buf, nil
}

// DeriveKey implements [Provider]. It always yields a [KeySize]-byte key.
func (p *stdProvider) DeriveKey(password string, salt []byte, params KDFParams) (KeyHandle, error) {
	if len(salt) == 0 {
		return KeyHandle{}, fmt.Errorf("%w: empty salt", ErrInvalidArgument)
	}
	if err := params.Validate(); err != nil {
		return KeyHandle{}, err
	}

	var material []byte
	switch params.Algorithm {
	case KDFPBKDF2SHA256:
		material = pbkdf2.Key([]byte(password), salt, params.Iterations, KeySize, sha256.New)
	case KDFArgon2id:
		material = argon2.IDKey(
			[]byte(password),
			salt,
			uint32(params.Iterations),
			params.MemoryKiB,
			params.Parallelism,
			KeySize,
		)
	}

	return KeyHandle{material: material}, nil
}

// AEADEncrypt implements [Provider] with AES-256-GCM.
func (p *stdProvider) AEADEncrypt(key KeyHandle, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// AEADDecrypt implements [Provider] with AES-256-GCM. The underlying
// authentication error is not wrapped: callers only ever see [ErrDecryption].
func (p *stdProvider) AEADDecrypt(key KeyHandle, nonce, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryption
	}
	return plaintext, nil
}

// NonceSize implements [Provider].
func (p *stdProvider) NonceSize() int {
	return gcmNonceSize
}

// newGCM builds an AES-256-GCM AEAD after checking key and nonce sizes;
// cipher.AEAD panics on a nonce of the wrong length.
func newGCM(key KeyHandle, nonce []byte) (cipher.AEAD, error) {
	if key.Len() != KeySize {
		return nil, fmt.Errorf("%w: invalid key length: %d", ErrInvalidArgument, key.Len())
	}
	if len(nonce) != gcmNonceSize {
		return nil, fmt.Errorf("%w: invalid nonce length: %d", ErrInvalidArgument, len(nonce))
	}

	block, err := aes.NewCipher(key.material)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
