// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request decoding errors. Both are reported to the client as 4xx responses.
var (
	// ErrInvalidJSON is returned when a request body is not valid JSON for
	// the expected model.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRequestBodyTooLarge is returned when a request body exceeds the
	// handler limit after decompression.
	ErrRequestBodyTooLarge = errors.New("request body is too large")
)
