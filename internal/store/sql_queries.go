package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-csv-keeper/models"
)

const channelsTable = "channels"

// channelColumns is the column order shared by INSERT and SELECT so that
// [scanChannel] stays in sync with both.
var channelColumns = []string{
	"channel_id",
	"name",
	"envelope_iv",
	"envelope_key_data",
	"envelope_salt",
	"envelope_kdf",
	"content_salt",
	"content_kdf",
	"content_check",
	"created_at",
	"rotated_at",
}

func buildInsertChannelQuery(b sq.StatementBuilderType, channel models.Channel) (string, []any, error) {
	var rotatedAt any
	if channel.RotatedAt != nil {
		rotatedAt = channel.RotatedAt.UTC()
	}

	return b.Insert(channelsTable).
		Columns(channelColumns...).
		Values(
			channel.ChannelID,
			channel.Name,
			channel.Record.Envelope.IV,
			channel.Record.Envelope.EncryptedKeyData,
			channel.Record.Envelope.Salt,
			channel.Record.Envelope.KDF,
			channel.Record.Content.Salt,
			channel.Record.Content.KDF,
			channel.Record.Content.Check,
			channel.CreatedAt.UTC(),
			rotatedAt,
		).
		ToSql()
}

func buildSelectChannelQuery(b sq.StatementBuilderType, channelID string) (string, []any, error) {
	return b.Select(channelColumns...).
		From(channelsTable).
		Where(sq.Eq{"channel_id": channelID}).
		ToSql()
}

func buildSelectChannelsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(channelColumns...).
		From(channelsTable).
		OrderBy("created_at", "name").
		ToSql()
}

func buildUpdateEnvelopeQuery(b sq.StatementBuilderType, channelID string, envelope models.Envelope, rotatedAt time.Time) (string, []any, error) {
	return b.Update(channelsTable).
		Set("envelope_iv", envelope.IV).
		Set("envelope_key_data", envelope.EncryptedKeyData).
		Set("envelope_salt", envelope.Salt).
		Set("envelope_kdf", envelope.KDF).
		Set("rotated_at", rotatedAt.UTC()).
		Where(sq.Eq{"channel_id": channelID}).
		ToSql()
}

func buildDeleteChannelQuery(b sq.StatementBuilderType, channelID string) (string, []any, error) {
	return b.Delete(channelsTable).
		Where(sq.Eq{"channel_id": channelID}).
		ToSql()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanChannel(row rowScanner) (models.Channel, error) {
	var (
		channel   models.Channel
		rotatedAt sql.NullTime
	)

	err := row.Scan(
		&channel.ChannelID,
		&channel.Name,
		&channel.Record.Envelope.IV,
		&channel.Record.Envelope.EncryptedKeyData,
		&channel.Record.Envelope.Salt,
		&channel.Record.Envelope.KDF,
		&channel.Record.Content.Salt,
		&channel.Record.Content.KDF,
		&channel.Record.Content.Check,
		&channel.CreatedAt,
		&rotatedAt,
	)
	if err != nil {
		return models.Channel{}, err
	}

	channel.CreatedAt = channel.CreatedAt.UTC()
	if rotatedAt.Valid {
		t := rotatedAt.Time.UTC()
		channel.RotatedAt = &t
	}

	return channel, nil
}
