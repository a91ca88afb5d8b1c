// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the csv-keeper REST API.
//
// [ChannelAdapter] mirrors the server routes one to one. Error values defined
// in errors.go are mapped from HTTP status codes by mapHTTPError so callers
// can use [errors.Is] (e.g. [ErrDecryptionFailed] for 422, [ErrConflict] for
// 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-csv-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ChannelAdapter talks to a remote csv-keeper server.
type ChannelAdapter interface {
	CreateChannel(ctx context.Context, req models.CreateChannelRequest) (models.Channel, error)
	GetChannel(ctx context.Context, channelID string) (models.Channel, error)
	ListChannels(ctx context.Context) ([]models.Channel, error)
	DeleteChannel(ctx context.Context, channelID string) error

	// DownloadRecord fetches the one-row escrow record CSV of a channel.
	DownloadRecord(ctx context.Context, channelID string) ([]byte, error)

	RotateGuard(ctx context.Context, channelID string, req models.RotateGuardRequest) (models.Channel, error)

	// Export asks the server to protect req.CSV and returns the protected text.
	Export(ctx context.Context, channelID string, req models.ExportRequest) (string, error)

	// Import asks the server to reveal req.Protected and returns the CSV.
	Import(ctx context.Context, channelID string, req models.ImportRequest) (string, error)

	ServerVersion(ctx context.Context) (string, error)
}
