// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

// cipherService is the private implementation of [CipherService].
type cipherService struct {
	provider Provider
}

// NewCipherService constructs a [CipherService] on top of provider.
func NewCipherService(provider Provider) CipherService {
	return &cipherService{provider: provider}
}

// NewSalt implements [CipherService].
func (c *cipherService) NewSalt() ([]byte, error) {
	salt, err := c.provider.RandomBytes(SaltSize)
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey implements [CipherService].
func (c *cipherService) DeriveKey(password string, salt []byte, params KDFParams) (KeyHandle, error) {
	return c.provider.DeriveKey(password, salt, params)
}

// Encrypt implements [CipherService]. The nonce comes from the provider's
// random source on every call, so (key, nonce) pairs are never reused.
func (c *cipherService) Encrypt(plaintext []byte, key KeyHandle) ([]byte, []byte, error) {
	nonce, err := c.provider.RandomBytes(c.provider.NonceSize())
	if err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext, err := c.provider.AEADEncrypt(key, nonce, plaintext)
	if err != nil {
		return nil, nil, fmt.Errorf("encrypt: %w", err)
	}

	return nonce, ciphertext, nil
}

// Decrypt implements [CipherService].
func (c *cipherService) Decrypt(ciphertext []byte, key KeyHandle, nonce []byte) ([]byte, error) {
	if len(nonce) != c.provider.NonceSize() {
		return nil, fmt.Errorf("%w: invalid nonce length: %d", ErrInvalidArgument, len(nonce))
	}

	return c.provider.AEADDecrypt(key, nonce, ciphertext)
}

// NonceSize implements [CipherService].
func (c *cipherService) NonceSize() int {
	return c.provider.NonceSize()
}
