package http

import (
	"github.com/MKhiriev/go-csv-keeper/internal/logger"
	"github.com/MKhiriev/go-csv-keeper/internal/service"
	"github.com/MKhiriev/go-csv-keeper/internal/validators"
)

// maxRequestBodySize leaves room for JSON escaping of a payload of
// validators.MaxPayloadSize bytes.
const maxRequestBodySize = 2*validators.MaxPayloadSize + 1<<20

type Handler struct {
	services *service.Services

	maxBodySize int64
	logger      *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		maxBodySize: maxRequestBodySize,
		logger:      logger,
	}
}
