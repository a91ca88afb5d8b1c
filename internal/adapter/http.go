package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-csv-keeper/internal/config"
	"github.com/MKhiriev/go-csv-keeper/internal/logger"
	"github.com/MKhiriev/go-csv-keeper/internal/utils"
	"github.com/MKhiriev/go-csv-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	busyRetryCount = 3
	busyRetryWait  = 200 * time.Millisecond
)

type httpChannelAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPChannelAdapter constructs the REST implementation of
// [ChannelAdapter]. cfg.HTTPAddress may be "host:port" or a full URL; a
// missing scheme defaults to http.
func NewHTTPChannelAdapter(cfg config.Adapter, logger *logger.Logger) (ChannelAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithBusyRetries(busyRetryCount, busyRetryWait, isRetryable)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpChannelAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// isRetryable allows repeating reads and the exchange calls. Creating,
// deleting and rotating are never repeated automatically.
func isRetryable(req *resty.Request) bool {
	if req.Method == http.MethodGet {
		return true
	}
	return req.Method == http.MethodPost &&
		(strings.HasSuffix(req.URL, "/export") || strings.HasSuffix(req.URL, "/import"))
}

func (h *httpChannelAdapter) CreateChannel(ctx context.Context, req models.CreateChannelRequest) (models.Channel, error) {
	var channel models.Channel

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&channel).
		Post("/api/channels")
	if err != nil {
		return models.Channel{}, fmt.Errorf("create channel request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Channel{}, err
	}

	return channel, nil
}

func (h *httpChannelAdapter) GetChannel(ctx context.Context, channelID string) (models.Channel, error) {
	var channel models.Channel

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("channelID", channelID).
		SetResult(&channel).
		Get("/api/channels/{channelID}")
	if err != nil {
		return models.Channel{}, fmt.Errorf("get channel request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Channel{}, err
	}

	return channel, nil
}

func (h *httpChannelAdapter) ListChannels(ctx context.Context) ([]models.Channel, error) {
	var channels []models.Channel

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&channels).
		Get("/api/channels")
	if err != nil {
		return nil, fmt.Errorf("list channels request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return channels, nil
}

func (h *httpChannelAdapter) DeleteChannel(ctx context.Context, channelID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("channelID", channelID).
		Delete("/api/channels/{channelID}")
	if err != nil {
		return fmt.Errorf("delete channel request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpChannelAdapter) DownloadRecord(ctx context.Context, channelID string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/csv").
		SetPathParam("channelID", channelID).
		Get("/api/channels/{channelID}/record")
	if err != nil {
		return nil, fmt.Errorf("download record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpChannelAdapter) RotateGuard(ctx context.Context, channelID string, req models.RotateGuardRequest) (models.Channel, error) {
	var channel models.Channel

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("channelID", channelID).
		SetBody(req).
		SetResult(&channel).
		Put("/api/channels/{channelID}/guard")
	if err != nil {
		return models.Channel{}, fmt.Errorf("rotate guard request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Channel{}, err
	}

	return channel, nil
}

func (h *httpChannelAdapter) Export(ctx context.Context, channelID string, req models.ExportRequest) (string, error) {
	var result models.ExportResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("channelID", channelID).
		SetBody(req).
		SetResult(&result).
		Post("/api/channels/{channelID}/export")
	if err != nil {
		return "", fmt.Errorf("export request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().Str("channel_id", channelID).Int("bytes", len(result.Protected)).Msg("csv exported remotely")
	return result.Protected, nil
}

func (h *httpChannelAdapter) Import(ctx context.Context, channelID string, req models.ImportRequest) (string, error) {
	var result models.ImportResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("channelID", channelID).
		SetBody(req).
		SetResult(&result).
		Post("/api/channels/{channelID}/import")
	if err != nil {
		return "", fmt.Errorf("import request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().Str("channel_id", channelID).Int("bytes", len(result.CSV)).Msg("csv imported remotely")
	return result.CSV, nil
}

func (h *httpChannelAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
