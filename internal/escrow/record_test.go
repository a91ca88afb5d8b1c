// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package escrow

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-csv-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRecord = models.EnvelopeRecord{
	Envelope: models.Envelope{
		IV:               "AAECAwQFBgcICQoL",
		EncryptedKeyData: "c2VjcmV0LWRhdGEtd2l0aC10YWc=",
		Salt:             "AAAAAAAAAAAAAAAAAAAAAA==",
		KDF:              "pbkdf2-sha256$i=100000",
	},
	Content: models.ContentKeyContext{
		Salt:  "AQEBAQEBAQEBAQEBAQEBAQ==",
		KDF:   "pbkdf2-sha256$i=100000",
		Check: "AAECAwQFBgcICQoL:Y2hlY2s=",
	},
}

func TestRecord_RoundTrip(t *testing.T) {
	data, err := MarshalRecord(sampleRecord)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "iv,encryptedKeyData,salt,kdf,contentSalt,contentKdf,contentCheck", lines[0])

	got, err := UnmarshalRecord(data)
	require.NoError(t, err)
	assert.Equal(t, sampleRecord, got)
}

func TestUnmarshalRecord_LegacyThreeColumns(t *testing.T) {
	data := "iv,encryptedKeyData,salt\nAAECAwQFBgcICQoL,c2VjcmV0,AAAAAAAAAAAAAAAAAAAAAA==\n"

	got, err := UnmarshalRecord([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "AAECAwQFBgcICQoL", got.Envelope.IV)
	assert.Equal(t, "c2VjcmV0", got.Envelope.EncryptedKeyData)
	assert.Empty(t, got.Envelope.KDF)
	assert.Equal(t, models.ContentKeyContext{}, got.Content)
}

func TestUnmarshalRecord_ColumnOrderIndependent(t *testing.T) {
	data := "salt,iv,encryptedKeyData\nAAAAAAAAAAAAAAAAAAAAAA==,AAECAwQFBgcICQoL,c2VjcmV0\n"

	got, err := UnmarshalRecord([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, "AAAAAAAAAAAAAAAAAAAAAA==", got.Envelope.Salt)
	assert.Equal(t, "AAECAwQFBgcICQoL", got.Envelope.IV)
}

func TestUnmarshalRecord_Malformed(t *testing.T) {
	inputs := map[string]string{
		"empty":           "",
		"header only":     "iv,encryptedKeyData,salt\n",
		"two rows":        "iv,encryptedKeyData,salt\na,b,c\nd,e,f\n",
		"missing column":  "iv,salt\na,c\n",
		"empty field":     "iv,encryptedKeyData,salt\na,,c\n",
		"column mismatch": "iv,encryptedKeyData,salt\na,b\n",
		"duplicate":       "iv,iv,encryptedKeyData,salt\na,a,b,c\n",
		"bad quoting":     "iv,encryptedKeyData,salt\n\"a,b,c\n",
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := UnmarshalRecord([]byte(in))
			assert.ErrorIs(t, err, ErrMalformedEnvelope)
		})
	}
}
