// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package escrow

import (
	"errors"

	"github.com/MKhiriev/go-csv-keeper/internal/codec"
	"github.com/MKhiriev/go-csv-keeper/internal/crypto"
)

var (
	// ErrDerivationFailure is returned when an envelope or a content-key check
	// does not authenticate. It is the same sentinel as [crypto.ErrDecryption]
	// so callers can match either name.
	ErrDerivationFailure = crypto.ErrDecryption

	// ErrMalformedEnvelope is shared with the payload codec.
	ErrMalformedEnvelope = codec.ErrMalformedEnvelope

	// ErrEmptyPassword is returned when a password needed to create or rewrap
	// an envelope is empty.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrInvalidCredentials is returned when not exactly one of the admin and
	// user passwords is supplied.
	ErrInvalidCredentials = errors.New("exactly one of admin or user password must be provided")

	// ErrNoContentContext is returned for records (e.g. legacy three-column
	// envelopes) that carry no content-key salt.
	ErrNoContentContext = errors.New("record has no content key context")
)
