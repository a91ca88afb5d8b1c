package http

import (
	"net/http"

	"github.com/MKhiriev/go-csv-keeper/models"
)

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	var req models.ExportRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.exportCSV", err)
		return
	}

	protected, err := h.services.ExchangeService.Export(r.Context(), channelIDFromRequest(r), req.Credentials, req.CSV)
	if err != nil {
		writeError(w, r, "*Handler.exportCSV", err)
		return
	}

	h.writeJSON(w, r, models.ExportResponse{Protected: protected}, http.StatusOK)
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	var req models.ImportRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.importCSV", err)
		return
	}

	plaintext, err := h.services.ExchangeService.Import(r.Context(), channelIDFromRequest(r), req.Credentials, req.Protected)
	if err != nil {
		writeError(w, r, "*Handler.importCSV", err)
		return
	}

	h.writeJSON(w, r, models.ImportResponse{CSV: plaintext}, http.StatusOK)
}
