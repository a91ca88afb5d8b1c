// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// textEncoding rejects non-canonical padding bits so that decoding never
// silently maps two texts onto the same bytes.
var textEncoding = base64.StdEncoding.Strict()

// EncodeToString returns the standard padded base64 form of b. The alphabet
// contains no colon, comma or line break, so the result is safe inside a CSV
// cell and inside a colon-delimited compound field.
func EncodeToString(b []byte) string {
	return textEncoding.EncodeToString(b)
}

// DecodeString is the exact inverse of [EncodeToString]. Unlike
// base64.StdEncoding it does not skip CR/LF characters: any byte outside the
// alphabet, including line breaks, fails with [ErrDecoding].
func DecodeString(s string) ([]byte, error) {
	if strings.ContainsAny(s, "\r\n") {
		return nil, fmt.Errorf("%w: line breaks are not allowed", ErrDecoding)
	}

	b, err := textEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecoding, err)
	}
	return b, nil
}
