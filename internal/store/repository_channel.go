package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-csv-keeper/internal/logger"
	"github.com/MKhiriev/go-csv-keeper/models"
)

// channelRepository is the database/sql implementation of [ChannelRepository].
// Queries are built with squirrel using the placeholder format of the
// connection's dialect, so the same code runs against PostgreSQL and SQLite.
//
// Every method obtains a context-scoped logger via [logger.FromContext].
type channelRepository struct {
	*DB
	logger *logger.Logger
}

// NewChannelRepository constructs a [ChannelRepository] backed by db.
func NewChannelRepository(db *DB, logger *logger.Logger) ChannelRepository {
	logger.Debug().Msg("creating channel repository")
	return &channelRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateChannel inserts channel as given; ids and timestamps are assigned by
// the caller.
//
// Error handling:
//   - unique violation (PostgreSQL 23505, SQLite UNIQUE/PRIMARY KEY) → [ErrChannelAlreadyExists].
//   - transient driver errors → [ErrStorageBusy].
//   - anything else → wrapped [ErrExecutingStatement].
func (r *channelRepository) CreateChannel(ctx context.Context, channel models.Channel) (models.Channel, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertChannelQuery(r.builder, channel)
	if err != nil {
		log.Err(err).Str("func", "*channelRepository.CreateChannel").Msg("failed to create query")
		return models.Channel{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*channelRepository.CreateChannel").
			Str("channel_id", channel.ChannelID).
			Msg("failed to insert channel")
		return models.Channel{}, r.mapError(err, ErrExecutingStatement)
	}

	return channel, nil
}

// GetChannel returns the channel with channelID or [ErrChannelNotFound].
func (r *channelRepository) GetChannel(ctx context.Context, channelID string) (models.Channel, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectChannelQuery(r.builder, channelID)
	if err != nil {
		log.Err(err).Str("func", "*channelRepository.GetChannel").Msg("failed to create query")
		return models.Channel{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	channel, err := scanChannel(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Channel{}, ErrChannelNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*channelRepository.GetChannel").
			Str("channel_id", channelID).
			Msg("failed to get channel")
		return models.Channel{}, r.mapError(err, ErrScanningRow)
	}

	return channel, nil
}

// ListChannels returns every stored channel ordered by creation time.
// An empty table yields an empty, non-nil slice.
func (r *channelRepository) ListChannels(ctx context.Context) ([]models.Channel, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectChannelsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "*channelRepository.ListChannels").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*channelRepository.ListChannels").Msg("failed to execute query")
		return nil, r.mapError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	channels := make([]models.Channel, 0, 16)
	for rows.Next() {
		channel, scanErr := scanChannel(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*channelRepository.ListChannels").Msg("failed to scan channel row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		channels = append(channels, channel)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*channelRepository.ListChannels").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return channels, nil
}

func (r *channelRepository) UpdateEnvelope(ctx context.Context, channelID string, envelope models.Envelope, rotatedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEnvelopeQuery(r.builder, channelID, envelope, rotatedAt)
	if err != nil {
		log.Err(err).Str("func", "*channelRepository.UpdateEnvelope").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*channelRepository.UpdateEnvelope").
			Str("channel_id", channelID).
			Msg("failed to update envelope")
		return r.mapError(err, ErrExecutingStatement)
	}

	return requireAffected(result)
}

func (r *channelRepository) DeleteChannel(ctx context.Context, channelID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteChannelQuery(r.builder, channelID)
	if err != nil {
		log.Err(err).Str("func", "*channelRepository.DeleteChannel").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*channelRepository.DeleteChannel").
			Str("channel_id", channelID).
			Msg("failed to delete channel")
		return r.mapError(err, ErrExecutingStatement)
	}

	return requireAffected(result)
}

// mapError turns a driver error into a store sentinel, falling back to
// fallback when the classifier does not recognise it.
func (r *channelRepository) mapError(err, fallback error) error {
	switch r.classify(err) {
	case Conflict:
		return ErrChannelAlreadyExists
	case Retryable:
		return fmt.Errorf("%w: %w", ErrStorageBusy, err)
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrChannelNotFound
	}
	return nil
}
