// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/MKhiriev/go-csv-keeper/internal/codec"
	"github.com/MKhiriev/go-csv-keeper/internal/crypto"
	"github.com/MKhiriev/go-csv-keeper/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var protectedPattern = regexp.MustCompile(`^[A-Za-z0-9+/=]+:[A-Za-z0-9+/=]+$`)

func newRealCodec(t *testing.T) (codec.PayloadCodec, crypto.CipherService, crypto.KeyHandle) {
	t.Helper()
	cipher := crypto.NewCipherService(crypto.NewProvider())

	salt, err := cipher.NewSalt()
	require.NoError(t, err)
	key, err := cipher.DeriveKey("userSecret123", salt, crypto.DefaultKDFParams())
	require.NoError(t, err)

	return codec.NewPayloadCodec(cipher), cipher, key
}

func TestPayloadCodec_ProtectReveal_Scenario(t *testing.T) {
	c, _, key := newRealCodec(t)
	const plain = "id,name\n1,Alice\n2,Bob"

	protected, err := c.Protect(plain, key)
	require.NoError(t, err)
	assert.Regexp(t, protectedPattern, protected)
	assert.NotContains(t, protected, "Alice")

	got, err := c.Reveal(protected, key)
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

func TestPayloadCodec_RoundTrip(t *testing.T) {
	c, _, key := newRealCodec(t)

	inputs := map[string]string{
		"empty":         "",
		"header only":   "id,name",
		"quoted fields": "id,comment\n1,\"a, b: c\"\n",
		"unicode":       "имя,курс\nАлиса,Охрана труда",
		"crlf":          "a,b\r\n1,2\r\n",
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			protected, err := c.Protect(in, key)
			require.NoError(t, err)
			assert.Regexp(t, protectedPattern, protected)

			got, err := c.Reveal(protected, key)
			require.NoError(t, err)
			assert.Equal(t, in, got)
		})
	}
}

func TestPayloadCodec_TrailingNewlineTolerated(t *testing.T) {
	c, _, key := newRealCodec(t)

	protected, err := c.Protect("a,b", key)
	require.NoError(t, err)

	got, err := c.Reveal(protected+"\n", key)
	require.NoError(t, err)
	assert.Equal(t, "a,b", got)

	got, err = c.Reveal(protected+"\r\n", key)
	require.NoError(t, err)
	assert.Equal(t, "a,b", got)
}

func TestPayloadCodec_Reveal_Malformed(t *testing.T) {
	c, _, key := newRealCodec(t)

	protected, err := c.Protect("a,b", key)
	require.NoError(t, err)
	nonceText, ctText, _ := strings.Cut(protected, ":")

	inputs := map[string]string{
		"no separator":      "not-a-valid-format",
		"two separators":    protected + ":QUJD",
		"empty nonce":       ":" + ctText,
		"empty ciphertext":  nonceText + ":",
		"empty input":       "",
		"bad nonce base64":  "!!!!:" + ctText,
		"bad ct base64":     nonceText + ":***",
		"short nonce":       codec.EncodeToString([]byte{1, 2, 3}) + ":" + ctText,
		"embedded newline":  nonceText + ":" + ctText[:4] + "\n" + ctText[4:],
		"whitespace padded": " " + protected,
		"lone carriage ret": protected + "\r",
		"two line breaks":   protected + "\n\n",
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			got, err := c.Reveal(in, key)
			assert.ErrorIs(t, err, codec.ErrMalformedEnvelope)
			assert.False(t, errors.Is(err, crypto.ErrDecryption))
			assert.Empty(t, got)
		})
	}
}

func TestPayloadCodec_Reveal_WrongKey(t *testing.T) {
	c, cipher, key := newRealCodec(t)

	protected, err := c.Protect("id,name\n1,Alice", key)
	require.NoError(t, err)

	salt, err := cipher.NewSalt()
	require.NoError(t, err)
	otherKey, err := cipher.DeriveKey("someone else", salt, crypto.DefaultKDFParams())
	require.NoError(t, err)

	got, err := c.Reveal(protected, otherKey)
	assert.ErrorIs(t, err, crypto.ErrDecryption)
	assert.Empty(t, got)
}

func TestPayloadCodec_Reveal_TamperedCiphertext(t *testing.T) {
	c, _, key := newRealCodec(t)

	protected, err := c.Protect("id,name\n1,Alice", key)
	require.NoError(t, err)
	nonceText, ctText, _ := strings.Cut(protected, ":")

	ct, err := codec.DecodeString(ctText)
	require.NoError(t, err)
	ct[len(ct)-1] ^= 0x01

	_, err = c.Reveal(nonceText+":"+codec.EncodeToString(ct), key)
	assert.ErrorIs(t, err, crypto.ErrDecryption)
}

func TestPayloadCodec_Protect_CipherError(t *testing.T) {
	ctrl := gomock.NewController(t)
	cipher := mock.NewMockCipherService(ctrl)

	cipher.EXPECT().Encrypt([]byte("a,b"), gomock.Any()).Return(nil, nil, errors.New("entropy exhausted"))

	_, err := codec.NewPayloadCodec(cipher).Protect("a,b", crypto.KeyHandle{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "protect payload")
}

func TestPayloadCodec_Reveal_UsesCipherNonceSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	cipher := mock.NewMockCipherService(ctrl)

	nonce := []byte{1, 2, 3, 4}
	ct := []byte("ciphertext")
	key := crypto.NewKeyHandle([]byte("k"))

	cipher.EXPECT().NonceSize().Return(4).AnyTimes()
	cipher.EXPECT().Decrypt(ct, key, nonce).Return([]byte("plain"), nil)

	got, err := codec.NewPayloadCodec(cipher).Reveal(codec.EncodeToString(nonce)+":"+codec.EncodeToString(ct), key)
	require.NoError(t, err)
	assert.Equal(t, "plain", got)
}
