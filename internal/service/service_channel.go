package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-csv-keeper/internal/escrow"
	"github.com/MKhiriev/go-csv-keeper/internal/logger"
	"github.com/MKhiriev/go-csv-keeper/internal/store"
	"github.com/MKhiriev/go-csv-keeper/models"
)

type channelService struct {
	repo   store.ChannelRepository
	escrow escrow.Service
	ids    IDGenerator
	now    func() time.Time

	logger *logger.Logger
}

func NewChannelService(repo store.ChannelRepository, escrowService escrow.Service, ids IDGenerator, logger *logger.Logger) ChannelService {
	return &channelService{
		repo:   repo,
		escrow: escrowService,
		ids:    ids,
		now:    time.Now,
		logger: logger,
	}
}

func (s *channelService) CreateChannel(ctx context.Context, name, adminPassword, userPassword string) (models.Channel, error) {
	log := logger.FromContext(ctx)

	record, err := s.escrow.NewRecord(userPassword, adminPassword)
	if err != nil {
		log.Err(err).Str("func", "*channelService.CreateChannel").Msg("failed to create envelope record")
		return models.Channel{}, fmt.Errorf("create envelope record: %w", err)
	}

	channel := models.Channel{
		ChannelID: s.ids.Generate(),
		Name:      name,
		Record:    record,
		CreatedAt: s.now().UTC(),
	}

	created, err := s.repo.CreateChannel(ctx, channel)
	if err != nil {
		return models.Channel{}, err
	}

	log.Info().Str("channel_id", created.ChannelID).Str("name", created.Name).Msg("channel created")
	return created, nil
}

func (s *channelService) GetChannel(ctx context.Context, channelID string) (models.Channel, error) {
	return s.repo.GetChannel(ctx, channelID)
}

func (s *channelService) ListChannels(ctx context.Context) ([]models.Channel, error) {
	return s.repo.ListChannels(ctx)
}

func (s *channelService) DeleteChannel(ctx context.Context, channelID string) error {
	if err := s.repo.DeleteChannel(ctx, channelID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("channel_id", channelID).Msg("channel deleted")
	return nil
}

// RotateGuard implements [ChannelService]. Concurrent rotations of the same
// channel are last-writer-wins; every stored envelope still wraps the same
// user password.
func (s *channelService) RotateGuard(ctx context.Context, channelID, oldAdminPassword, newAdminPassword string) (models.Channel, error) {
	log := logger.FromContext(ctx)

	channel, err := s.repo.GetChannel(ctx, channelID)
	if err != nil {
		return models.Channel{}, err
	}

	rotated, err := s.escrow.Rewrap(channel.Record, oldAdminPassword, newAdminPassword)
	if err != nil {
		log.Warn().Err(err).Str("channel_id", channelID).Msg("guard rotation rejected")
		return models.Channel{}, err
	}

	rotatedAt := s.now().UTC()
	if err = s.repo.UpdateEnvelope(ctx, channelID, rotated.Envelope, rotatedAt); err != nil {
		return models.Channel{}, err
	}

	channel.Record = rotated
	channel.RotatedAt = &rotatedAt

	log.Info().Str("channel_id", channelID).Msg("guard password rotated")
	return channel, nil
}

func (s *channelService) ExportRecord(ctx context.Context, channelID string) ([]byte, error) {
	channel, err := s.repo.GetChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}

	return escrow.MarshalRecord(channel.Record)
}
