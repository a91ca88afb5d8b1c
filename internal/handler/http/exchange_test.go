package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-csv-keeper/internal/codec"
	"github.com/MKhiriev/go-csv-keeper/internal/crypto"
	"github.com/MKhiriev/go-csv-keeper/internal/escrow"
	"github.com/MKhiriev/go-csv-keeper/internal/service"
	"github.com/MKhiriev/go-csv-keeper/internal/validators"
	"github.com/MKhiriev/go-csv-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDecryptionForTest = crypto.ErrDecryption

// ─────────────────────────────────────────────
// POST /api/channels/{id}/export
// ─────────────────────────────────────────────

func TestExportCSV(t *testing.T) {
	var gotCreds models.Credentials
	var gotCSV, gotID string
	exchange := &mockExchangeService{
		exportFn: func(_ context.Context, id string, creds models.Credentials, csv string) (string, error) {
			gotID, gotCreds, gotCSV = id, creds, csv
			return "bm9uY2U=:Y2lwaGVy", nil
		},
	}

	rec := serve(newTestHandler(nil, exchange), http.MethodPost, "/api/channels/"+testChannelID+"/export",
		`{"user_password":"userSecret123","csv":"id,name\n1,Ada\n"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testChannelID, gotID)
	assert.Equal(t, models.Credentials{UserPassword: "userSecret123"}, gotCreds)
	assert.Equal(t, "id,name\n1,Ada\n", gotCSV)

	var resp models.ExportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bm9uY2U=:Y2lwaGVy", resp.Protected)
}

func TestExportCSV_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "ambiguous credentials",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrAmbiguousCredentials),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "document over the payload limit",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrPayloadTooLarge),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantError:  "invalid data provided: payload is too large",
		},
		{
			name:       "wrong password",
			err:        escrow.ErrDerivationFailure,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  DecryptionFailedMessage,
		},
		{
			name:       "legacy record without content context",
			err:        escrow.ErrNoContentContext,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  escrow.ErrNoContentContext.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exchange := &mockExchangeService{
				exportFn: func(context.Context, string, models.Credentials, string) (string, error) {
					return "", tt.err
				},
			}

			rec := serve(newTestHandler(nil, exchange), http.MethodPost, "/api/channels/"+testChannelID+"/export",
				`{"admin_password":"a","csv":"x"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec))
			}
		})
	}
}

// ─────────────────────────────────────────────
// POST /api/channels/{id}/import
// ─────────────────────────────────────────────

func TestImportCSV(t *testing.T) {
	exchange := &mockExchangeService{
		importFn: func(_ context.Context, _ string, creds models.Credentials, protected string) (string, error) {
			if creds.AdminPassword != "adminPass!" {
				return "", crypto.ErrDecryption
			}
			if protected == "garbage" {
				return "", fmt.Errorf("%w: expected exactly one separator", codec.ErrMalformedEnvelope)
			}
			return "id,name\n1,Ada\n", nil
		},
	}
	h := newTestHandler(nil, exchange)
	path := "/api/channels/" + testChannelID + "/import"

	rec := serve(h, http.MethodPost, path, `{"admin_password":"adminPass!","protected":"bm9uY2U=:Y2lwaGVy"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ImportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "id,name\n1,Ada\n", resp.CSV)

	rec = serve(h, http.MethodPost, path, `{"admin_password":"wrong","protected":"bm9uY2U=:Y2lwaGVy"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, DecryptionFailedMessage, decodeError(t, rec))

	rec = serve(h, http.MethodPost, path, `{"admin_password":"adminPass!","protected":"garbage"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec), "malformed envelope")

	rec = serve(h, http.MethodPost, path, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
