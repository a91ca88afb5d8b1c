// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package escrow

import (
	"fmt"

	"github.com/MKhiriev/go-csv-keeper/internal/codec"
	"github.com/MKhiriev/go-csv-keeper/internal/crypto"
	"github.com/MKhiriev/go-csv-keeper/models"
)

// contentCheckValue is protected under every content key so that a wrong
// user password is rejected before anything is encrypted with it.
const contentCheckValue = "go-csv-keeper/content-key-check/v1"

// service is the private implementation of [Service].
type service struct {
	cipher  crypto.CipherService
	payload codec.PayloadCodec

	// kdf is used for every newly created envelope and content context.
	// Existing records are opened with the parameters they recorded.
	kdf crypto.KDFParams
}

// NewService constructs a [Service]. kdf must meet the minimum strength
// ([crypto.KDFParams.CheckStrength]) because it protects new records.
func NewService(cipher crypto.CipherService, kdf crypto.KDFParams) (Service, error) {
	if err := kdf.CheckStrength(); err != nil {
		return nil, fmt.Errorf("escrow kdf: %w", err)
	}

	return &service{
		cipher:  cipher,
		payload: codec.NewPayloadCodec(cipher),
		kdf:     kdf,
	}, nil
}

// CreateEnvelope implements [Service].
func (s *service) CreateEnvelope(secondaryPassword, guardingPassword string) (models.Envelope, error) {
	if secondaryPassword == "" || guardingPassword == "" {
		return models.Envelope{}, ErrEmptyPassword
	}

	salt, err := s.cipher.NewSalt()
	if err != nil {
		return models.Envelope{}, err
	}

	guardKey, err := s.cipher.DeriveKey(guardingPassword, salt, s.kdf)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("derive guard key: %w", err)
	}

	nonce, wrapped, err := s.cipher.Encrypt([]byte(secondaryPassword), guardKey)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("wrap secondary password: %w", err)
	}

	return models.Envelope{
		IV:               codec.EncodeToString(nonce),
		EncryptedKeyData: codec.EncodeToString(wrapped),
		Salt:             codec.EncodeToString(salt),
		KDF:              s.kdf.String(),
	}, nil
}

// OpenEnvelope implements [Service].
func (s *service) OpenEnvelope(envelope models.Envelope, guardingPassword string) (string, error) {
	fields, err := s.decodeEnvelope(envelope)
	if err != nil {
		return "", err
	}

	guardKey, err := s.cipher.DeriveKey(guardingPassword, fields.salt, fields.kdf)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}

	secondary, err := s.cipher.Decrypt(fields.wrapped, guardKey, fields.nonce)
	if err != nil {
		return "", ErrDerivationFailure
	}

	return string(secondary), nil
}

// NewRecord implements [Service].
func (s *service) NewRecord(userPassword, adminPassword string) (models.EnvelopeRecord, error) {
	envelope, err := s.CreateEnvelope(userPassword, adminPassword)
	if err != nil {
		return models.EnvelopeRecord{}, fmt.Errorf("create envelope: %w", err)
	}

	// the content salt is independent from the envelope salt
	contentSalt, err := s.cipher.NewSalt()
	if err != nil {
		return models.EnvelopeRecord{}, err
	}

	contentKey, err := s.cipher.DeriveKey(userPassword, contentSalt, s.kdf)
	if err != nil {
		return models.EnvelopeRecord{}, fmt.Errorf("derive content key: %w", err)
	}

	check, err := s.payload.Protect(contentCheckValue, contentKey)
	if err != nil {
		return models.EnvelopeRecord{}, fmt.Errorf("protect content check: %w", err)
	}

	return models.EnvelopeRecord{
		Envelope: envelope,
		Content: models.ContentKeyContext{
			Salt:  codec.EncodeToString(contentSalt),
			KDF:   s.kdf.String(),
			Check: check,
		},
	}, nil
}

// ContentKey implements [Service]. When the record carries a check value the
// derived key is verified against it, so a wrong user password fails here
// with [ErrDerivationFailure] instead of silently producing unreadable data.
func (s *service) ContentKey(record models.EnvelopeRecord, creds models.Credentials) (crypto.KeyHandle, error) {
	if !creds.IsValid() {
		return crypto.KeyHandle{}, ErrInvalidCredentials
	}

	if record.Content.Salt == "" {
		return crypto.KeyHandle{}, ErrNoContentContext
	}

	userPassword := creds.UserPassword
	if creds.IsAdmin() {
		recovered, err := s.OpenEnvelope(record.Envelope, creds.AdminPassword)
		if err != nil {
			return crypto.KeyHandle{}, err
		}
		userPassword = recovered
	}

	salt, err := codec.DecodeString(record.Content.Salt)
	if err != nil || len(salt) == 0 {
		return crypto.KeyHandle{}, fmt.Errorf("%w: content salt", ErrMalformedEnvelope)
	}
	params, err := crypto.ParseKDFParams(record.Content.KDF)
	if err != nil {
		return crypto.KeyHandle{}, fmt.Errorf("%w: content kdf: %w", ErrMalformedEnvelope, err)
	}

	contentKey, err := s.cipher.DeriveKey(userPassword, salt, params)
	if err != nil {
		return crypto.KeyHandle{}, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}

	if record.Content.Check != "" {
		value, err := s.payload.Reveal(record.Content.Check, contentKey)
		if err != nil {
			return crypto.KeyHandle{}, err
		}
		if value != contentCheckValue {
			return crypto.KeyHandle{}, ErrDerivationFailure
		}
	}

	return contentKey, nil
}

// Rewrap implements [Service].
func (s *service) Rewrap(record models.EnvelopeRecord, oldAdminPassword, newAdminPassword string) (models.EnvelopeRecord, error) {
	if newAdminPassword == "" {
		return models.EnvelopeRecord{}, ErrEmptyPassword
	}

	userPassword, err := s.OpenEnvelope(record.Envelope, oldAdminPassword)
	if err != nil {
		return models.EnvelopeRecord{}, err
	}

	envelope, err := s.CreateEnvelope(userPassword, newAdminPassword)
	if err != nil {
		return models.EnvelopeRecord{}, fmt.Errorf("create envelope: %w", err)
	}

	record.Envelope = envelope
	return record, nil
}

type envelopeFields struct {
	salt    []byte
	nonce   []byte
	wrapped []byte
	kdf     crypto.KDFParams
}

// decodeEnvelope validates the envelope shape before any key is derived.
func (s *service) decodeEnvelope(envelope models.Envelope) (envelopeFields, error) {
	if envelope.IV == "" || envelope.EncryptedKeyData == "" || envelope.Salt == "" {
		return envelopeFields{}, fmt.Errorf("%w: iv, encryptedKeyData and salt are required", ErrMalformedEnvelope)
	}

	var (
		fields envelopeFields
		err    error
	)

	if fields.salt, err = codec.DecodeString(envelope.Salt); err != nil {
		return envelopeFields{}, fmt.Errorf("%w: salt: %w", ErrMalformedEnvelope, err)
	}
	if fields.nonce, err = codec.DecodeString(envelope.IV); err != nil {
		return envelopeFields{}, fmt.Errorf("%w: iv: %w", ErrMalformedEnvelope, err)
	}
	if len(fields.nonce) != s.cipher.NonceSize() {
		return envelopeFields{}, fmt.Errorf("%w: iv must be %d bytes", ErrMalformedEnvelope, s.cipher.NonceSize())
	}
	if fields.wrapped, err = codec.DecodeString(envelope.EncryptedKeyData); err != nil {
		return envelopeFields{}, fmt.Errorf("%w: encryptedKeyData: %w", ErrMalformedEnvelope, err)
	}
	if fields.kdf, err = crypto.ParseKDFParams(envelope.KDF); err != nil {
		return envelopeFields{}, fmt.Errorf("%w: kdf: %w", ErrMalformedEnvelope, err)
	}

	return fields, nil
}
