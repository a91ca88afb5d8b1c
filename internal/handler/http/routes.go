package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Post("/api/channels", h.createChannel)
		r.Get("/api/channels", h.listChannels)
		r.Get("/api/channels/{channelID}", h.getChannel)
		r.Delete("/api/channels/{channelID}", h.deleteChannel)
		r.Get("/api/channels/{channelID}/record", h.getChannelRecord)
		r.Put("/api/channels/{channelID}/guard", h.rotateGuard)
	})

	router.Group(func(r chi.Router) {
		r.Post("/api/channels/{channelID}/export", h.exportCSV)
		r.Post("/api/channels/{channelID}/import", h.importCSV)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
