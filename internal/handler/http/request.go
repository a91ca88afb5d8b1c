package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const channelIDParam = "channelID"

// decodeJSON reads at most h.maxBodySize bytes of r.Body into dst.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, h.maxBodySize)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("%w: limit is %d bytes", ErrRequestBodyTooLarge, maxBytesErr.Limit)
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return nil
}

func channelIDFromRequest(r *http.Request) string {
	return chi.URLParam(r, channelIDParam)
}
