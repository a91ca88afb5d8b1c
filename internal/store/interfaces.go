package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-csv-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ChannelRepository persists protected channels together with their
// envelope records.
type ChannelRepository interface {
	CreateChannel(ctx context.Context, channel models.Channel) (models.Channel, error)
	GetChannel(ctx context.Context, channelID string) (models.Channel, error)
	ListChannels(ctx context.Context) ([]models.Channel, error)
	// UpdateEnvelope replaces only the envelope columns of a channel; the
	// content-key context is immutable once the channel exists.
	UpdateEnvelope(ctx context.Context, channelID string, envelope models.Envelope, rotatedAt time.Time) error
	DeleteChannel(ctx context.Context, channelID string) error
}

// RecordFileStorage keeps envelope records as one-row CSV files inside a
// single directory. Names are plain file names, never paths.
type RecordFileStorage interface {
	// CreateRecord writes a new record file and fails with
	// [ErrRecordFileExists] instead of overwriting one.
	CreateRecord(ctx context.Context, name string, record models.EnvelopeRecord) (string, error)
	// SaveRecord atomically replaces (or creates) a record file.
	SaveRecord(ctx context.Context, name string, record models.EnvelopeRecord) (string, error)
	LoadRecord(ctx context.Context, name string) (models.EnvelopeRecord, error)
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
