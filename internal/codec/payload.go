// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-csv-keeper/internal/crypto"
)

// Separator joins the encoded nonce and the encoded ciphertext.
const Separator = ":"

// PayloadCodec protects a whole CSV document as one encrypted field.
type PayloadCodec interface {
	// Protect encrypts plaintextCSV under key and returns
	// "<base64 nonce>:<base64 ciphertext>". The result replaces the entire
	// content of the exported file.
	Protect(plaintextCSV string, key crypto.KeyHandle) (string, error)

	// Reveal reverses Protect. It returns [ErrMalformedEnvelope] when the
	// text is not exactly two non-empty base64 fields joined by one
	// [Separator], and [crypto.ErrDecryption] when authentication fails.
	Reveal(protected string, key crypto.KeyHandle) (string, error)
}

type payloadCodec struct {
	cipher crypto.CipherService
}

// NewPayloadCodec constructs a [PayloadCodec] over the given cipher.
func NewPayloadCodec(cipher crypto.CipherService) PayloadCodec {
	return &payloadCodec{cipher: cipher}
}

// Protect implements [PayloadCodec].
func (p *payloadCodec) Protect(plaintextCSV string, key crypto.KeyHandle) (string, error) {
	nonce, ciphertext, err := p.cipher.Encrypt([]byte(plaintextCSV), key)
	if err != nil {
		return "", fmt.Errorf("protect payload: %w", err)
	}

	return EncodeToString(nonce) + Separator + EncodeToString(ciphertext), nil
}

// Reveal implements [PayloadCodec]. One trailing line break is tolerated
// because editors append it when a protected file is saved by hand.
func (p *payloadCodec) Reveal(protected string, key crypto.KeyHandle) (string, error) {
	nonce, ciphertext, err := p.split(protected)
	if err != nil {
		return "", err
	}

	plaintext, err := p.cipher.Decrypt(ciphertext, key, nonce)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

func (p *payloadCodec) split(protected string) ([]byte, []byte, error) {
	text := protected
	if trimmed, ok := strings.CutSuffix(text, "\n"); ok {
		text = strings.TrimSuffix(trimmed, "\r")
	}

	if n := strings.Count(text, Separator); n != 1 {
		return nil, nil, fmt.Errorf("%w: expected exactly one %q separator, got %d", ErrMalformedEnvelope, Separator, n)
	}

	nonceText, ciphertextText, _ := strings.Cut(text, Separator)
	if nonceText == "" || ciphertextText == "" {
		return nil, nil, fmt.Errorf("%w: empty field", ErrMalformedEnvelope)
	}

	nonce, err := DecodeString(nonceText)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: nonce: %w", ErrMalformedEnvelope, err)
	}
	if len(nonce) != p.cipher.NonceSize() {
		return nil, nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrMalformedEnvelope, p.cipher.NonceSize(), len(nonce))
	}

	ciphertext, err := DecodeString(ciphertextText)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: ciphertext: %w", ErrMalformedEnvelope, err)
	}

	return nonce, ciphertext, nil
}
