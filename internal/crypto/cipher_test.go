// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKey(t *testing.T, svc CipherService, password string) KeyHandle {
	t.Helper()
	salt, err := svc.NewSalt()
	require.NoError(t, err)
	key, err := svc.DeriveKey(password, salt, DefaultKDFParams())
	require.NoError(t, err)
	return key
}

func TestNewSalt_LengthAndRandomness(t *testing.T) {
	svc := NewCipherService(NewProvider())

	s1, err := svc.NewSalt()
	require.NoError(t, err)
	s2, err := svc.NewSalt()
	require.NoError(t, err)

	assert.Len(t, s1, SaltSize)
	assert.False(t, bytes.Equal(s1, s2))
}

func TestCipher_RoundTrip(t *testing.T) {
	svc := NewCipherService(NewProvider())
	key := newTestKey(t, svc, "pw")

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	tests := []struct {
		name      string
		plaintext []byte
	}{
		{name: "empty", plaintext: []byte{}},
		{name: "text", plaintext: []byte("id,name\n1,Alice\n2,Bob")},
		{name: "all byte values", plaintext: all},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nonce, ct, err := svc.Encrypt(tt.plaintext, key)
			require.NoError(t, err)
			assert.Len(t, nonce, svc.NonceSize())

			pt, err := svc.Decrypt(ct, key, nonce)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tt.plaintext, pt), "round-trip mismatch")
		})
	}
}

func TestCipher_NonceUniqueness(t *testing.T) {
	svc := NewCipherService(NewProvider())
	key := newTestKey(t, svc, "pw")

	n1, c1, err := svc.Encrypt([]byte("same"), key)
	require.NoError(t, err)
	n2, c2, err := svc.Encrypt([]byte("same"), key)
	require.NoError(t, err)

	assert.False(t, bytes.Equal(n1, n2), "expected different nonces for two encryptions")
	assert.False(t, bytes.Equal(c1, c2), "expected different ciphertexts for two encryptions")
}

func TestCipher_WrongKeyRejected(t *testing.T) {
	svc := NewCipherService(NewProvider())
	key := newTestKey(t, svc, "right")
	wrong := newTestKey(t, svc, "wrong")

	nonce, ct, err := svc.Encrypt([]byte("secret"), key)
	require.NoError(t, err)

	pt, err := svc.Decrypt(ct, wrong, nonce)
	assert.ErrorIs(t, err, ErrDecryption)
	assert.Nil(t, pt)
}

func TestCipher_TamperDetection(t *testing.T) {
	svc := NewCipherService(NewProvider())
	key := newTestKey(t, svc, "pw")

	nonce, ct, err := svc.Encrypt([]byte("id,name\n1,Alice"), key)
	require.NoError(t, err)

	// каждый байт шифртекста (включая тег) и nonce
	for i := range ct {
		tampered := append([]byte(nil), ct...)
		tampered[i] ^= 0x01
		_, err := svc.Decrypt(tampered, key, nonce)
		require.ErrorIs(t, err, ErrDecryption, "ciphertext byte %d", i)
	}
	for i := range nonce {
		tampered := append([]byte(nil), nonce...)
		tampered[i] ^= 0x80
		_, err := svc.Decrypt(ct, key, tampered)
		require.ErrorIs(t, err, ErrDecryption, "nonce byte %d", i)
	}
}

func TestCipher_TruncatedCiphertext(t *testing.T) {
	svc := NewCipherService(NewProvider())
	key := newTestKey(t, svc, "pw")

	nonce, ct, err := svc.Encrypt([]byte("x"), key)
	require.NoError(t, err)

	_, err = svc.Decrypt(ct[:len(ct)-1], key, nonce)
	assert.ErrorIs(t, err, ErrDecryption)
	_, err = svc.Decrypt(nil, key, nonce)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestCipher_WrongNonceLength(t *testing.T) {
	svc := NewCipherService(NewProvider())
	key := newTestKey(t, svc, "pw")

	_, err := svc.Decrypt([]byte("ciphertext-with-tag"), key, []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
