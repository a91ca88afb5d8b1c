// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "errors"

var (
	// ErrDecoding is returned when text is not valid standard padded base64.
	ErrDecoding = errors.New("malformed base64 text")

	// ErrMalformedEnvelope is returned when protected text or an escrow record
	// does not have the expected shape (wrong field count, empty or
	// undecodable field). It signals a corrupted or foreign file.
	ErrMalformedEnvelope = errors.New("malformed envelope")
)
