// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package escrow

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-csv-keeper/models"
)

// Column names of the one-row record file. The first three are the
// historical envelope layout and are the only required ones.
const (
	columnIV               = "iv"
	columnEncryptedKeyData = "encryptedKeyData"
	columnSalt             = "salt"
	columnKDF              = "kdf"
	columnContentSalt      = "contentSalt"
	columnContentKDF       = "contentKdf"
	columnContentCheck     = "contentCheck"
)

var recordHeader = []string{
	columnIV,
	columnEncryptedKeyData,
	columnSalt,
	columnKDF,
	columnContentSalt,
	columnContentKDF,
	columnContentCheck,
}

// MarshalRecord writes record as a header line plus exactly one data row.
func MarshalRecord(record models.EnvelopeRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	row := []string{
		record.Envelope.IV,
		record.Envelope.EncryptedKeyData,
		record.Envelope.Salt,
		record.Envelope.KDF,
		record.Content.Salt,
		record.Content.KDF,
		record.Content.Check,
	}

	if err := w.WriteAll([][]string{recordHeader, row}); err != nil {
		return nil, fmt.Errorf("write record csv: %w", err)
	}

	return buf.Bytes(), nil
}

// UnmarshalRecord parses a record written by [MarshalRecord]. Columns are
// looked up by header name; a legacy file with only iv, encryptedKeyData and
// salt parses into a record without a content-key context.
func UnmarshalRecord(data []byte) (models.EnvelopeRecord, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return models.EnvelopeRecord{}, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if len(rows) != 2 {
		return models.EnvelopeRecord{}, fmt.Errorf("%w: expected header and one row, got %d rows", ErrMalformedEnvelope, len(rows))
	}

	header, row := rows[0], rows[1]
	if len(header) != len(row) {
		return models.EnvelopeRecord{}, fmt.Errorf("%w: header has %d columns, row has %d", ErrMalformedEnvelope, len(header), len(row))
	}

	values := make(map[string]string, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := values[name]; dup {
			return models.EnvelopeRecord{}, fmt.Errorf("%w: duplicate column %q", ErrMalformedEnvelope, name)
		}
		values[name] = strings.TrimSpace(row[i])
	}

	for _, required := range []string{columnIV, columnEncryptedKeyData, columnSalt} {
		if values[required] == "" {
			return models.EnvelopeRecord{}, fmt.Errorf("%w: missing %q", ErrMalformedEnvelope, required)
		}
	}

	return models.EnvelopeRecord{
		Envelope: models.Envelope{
			IV:               values[columnIV],
			EncryptedKeyData: values[columnEncryptedKeyData],
			Salt:             values[columnSalt],
			KDF:              values[columnKDF],
		},
		Content: models.ContentKeyContext{
			Salt:  values[columnContentSalt],
			KDF:   values[columnContentKDF],
			Check: values[columnContentCheck],
		},
	}, nil
}
