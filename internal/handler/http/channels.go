package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-csv-keeper/internal/logger"
	"github.com/MKhiriev/go-csv-keeper/internal/utils"
	"github.com/MKhiriev/go-csv-keeper/models"
)

func (h *Handler) createChannel(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChannelRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.createChannel", err)
		return
	}

	channel, err := h.services.ChannelService.CreateChannel(r.Context(), req.Name, req.AdminPassword, req.UserPassword)
	if err != nil {
		writeError(w, r, "*Handler.createChannel", err)
		return
	}

	w.Header().Set("Location", "/api/channels/"+channel.ChannelID)
	h.writeJSON(w, r, channel, http.StatusCreated)
}

func (h *Handler) listChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.services.ChannelService.ListChannels(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listChannels", err)
		return
	}

	if channels == nil {
		channels = []models.Channel{}
	}
	h.writeJSON(w, r, channels, http.StatusOK)
}

func (h *Handler) getChannel(w http.ResponseWriter, r *http.Request) {
	channel, err := h.services.ChannelService.GetChannel(r.Context(), channelIDFromRequest(r))
	if err != nil {
		writeError(w, r, "*Handler.getChannel", err)
		return
	}

	h.writeJSON(w, r, channel, http.StatusOK)
}

func (h *Handler) deleteChannel(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ChannelService.DeleteChannel(r.Context(), channelIDFromRequest(r)); err != nil {
		writeError(w, r, "*Handler.deleteChannel", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getChannelRecord returns the one-row escrow record that has to be shipped
// together with files exported for the channel.
func (h *Handler) getChannelRecord(w http.ResponseWriter, r *http.Request) {
	channelID := channelIDFromRequest(r)

	record, err := h.services.ChannelService.ExportRecord(r.Context(), channelID)
	if err != nil {
		writeError(w, r, "*Handler.getChannelRecord", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", channelID+".record.csv"))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(record); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getChannelRecord").Msg("failed to write record")
	}
}

func (h *Handler) rotateGuard(w http.ResponseWriter, r *http.Request) {
	var req models.RotateGuardRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.rotateGuard", err)
		return
	}

	channel, err := h.services.ChannelService.RotateGuard(r.Context(), channelIDFromRequest(r), req.OldAdminPassword, req.NewAdminPassword)
	if err != nil {
		writeError(w, r, "*Handler.rotateGuard", err)
		return
	}

	h.writeJSON(w, r, channel, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}
