package service

import (
	"context"

	"github.com/MKhiriev/go-csv-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ChannelService manages the lifecycle of protected channels. Passwords
// passed in are used for key derivation only and are never stored.
type ChannelService interface {
	CreateChannel(ctx context.Context, name, adminPassword, userPassword string) (models.Channel, error)
	GetChannel(ctx context.Context, channelID string) (models.Channel, error)
	ListChannels(ctx context.Context) ([]models.Channel, error)
	DeleteChannel(ctx context.Context, channelID string) error

	// RotateGuard re-wraps the channel envelope under newAdminPassword.
	// Files exported before the rotation stay readable.
	RotateGuard(ctx context.Context, channelID, oldAdminPassword, newAdminPassword string) (models.Channel, error)

	// ExportRecord returns the channel record as the one-row CSV file that
	// must travel with data exported for the channel.
	ExportRecord(ctx context.Context, channelID string) ([]byte, error)
}

// ExchangeService protects and reveals whole CSV documents for a channel.
type ExchangeService interface {
	Export(ctx context.Context, channelID string, creds models.Credentials, plaintextCSV string) (string, error)
	Import(ctx context.Context, channelID string, creds models.Credentials, protected string) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces channel identifiers.
type IDGenerator interface {
	Generate() string
}

// ChannelServiceWrapper defines middleware composition for ChannelService.
// Implementations wrap an existing ChannelService to add behavior such as
// validation.
type ChannelServiceWrapper interface {
	Wrap(ChannelService) ChannelService
}

// ExchangeServiceWrapper is the [ChannelServiceWrapper] counterpart for
// [ExchangeService].
type ExchangeServiceWrapper interface {
	Wrap(ExchangeService) ExchangeService
}
