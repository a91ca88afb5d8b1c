package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-csv-keeper/internal/codec"
	"github.com/MKhiriev/go-csv-keeper/internal/crypto"
	"github.com/MKhiriev/go-csv-keeper/internal/escrow"
	"github.com/MKhiriev/go-csv-keeper/internal/logger"
	"github.com/MKhiriev/go-csv-keeper/internal/service"
	"github.com/MKhiriev/go-csv-keeper/internal/store"
	"github.com/MKhiriev/go-csv-keeper/internal/utils"
	"github.com/MKhiriev/go-csv-keeper/internal/validators"
	"github.com/MKhiriev/go-csv-keeper/models"
)

// DecryptionFailedMessage is the only text a client ever sees for a failed
// authentication, whatever the cause (wrong password or tampered data).
const DecryptionFailedMessage = "wrong password or corrupted file"

type errorResponse struct {
	target error
	status int
	// message is sent to the client. When empty the error text itself is
	// sent; that is only done for errors which cannot carry secrets.
	message string
}

// errorResponses is matched in order, first hit wins.
var errorResponses = []errorResponse{
	{target: ErrRequestBodyTooLarge, status: http.StatusRequestEntityTooLarge},
	{target: ErrInvalidJSON, status: http.StatusBadRequest, message: ErrInvalidJSON.Error()},
	{target: validators.ErrPayloadTooLarge, status: http.StatusRequestEntityTooLarge},
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest},
	{target: escrow.ErrInvalidCredentials, status: http.StatusBadRequest},

	{target: crypto.ErrDecryption, status: http.StatusUnprocessableEntity, message: DecryptionFailedMessage},
	{target: codec.ErrMalformedEnvelope, status: http.StatusBadRequest},
	{target: codec.ErrDecoding, status: http.StatusBadRequest},
	{target: escrow.ErrNoContentContext, status: http.StatusUnprocessableEntity, message: escrow.ErrNoContentContext.Error()},

	{target: store.ErrChannelNotFound, status: http.StatusNotFound, message: "channel not found"},
	{target: store.ErrChannelAlreadyExists, status: http.StatusConflict, message: "channel already exists"},
	{target: store.ErrStorageBusy, status: http.StatusServiceUnavailable, message: "storage is busy, retry later"},
}

func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			if resp.message == "" {
				return resp.status, err.Error()
			}
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err with the request logger and writes the mapped JSON
// error body.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status, message := responseFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	if _, werr := utils.WriteJSON(w, models.ErrorResponse{Error: message}, status); werr != nil {
		log.Err(werr).Str("func", funcName).Msg("failed to write error response")
	}
}
