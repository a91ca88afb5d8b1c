package service

import (
	"context"

	"github.com/MKhiriev/go-csv-keeper/internal/codec"
	"github.com/MKhiriev/go-csv-keeper/internal/escrow"
	"github.com/MKhiriev/go-csv-keeper/internal/logger"
	"github.com/MKhiriev/go-csv-keeper/internal/store"
	"github.com/MKhiriev/go-csv-keeper/models"
)

// exchangeService resolves the content key of a channel for every call and
// forgets it afterwards; keys are never cached between requests.
type exchangeService struct {
	repo    store.ChannelRepository
	escrow  escrow.Service
	payload codec.PayloadCodec

	logger *logger.Logger
}

func NewExchangeService(repo store.ChannelRepository, escrowService escrow.Service, payload codec.PayloadCodec, logger *logger.Logger) ExchangeService {
	return &exchangeService{
		repo:    repo,
		escrow:  escrowService,
		payload: payload,
		logger:  logger,
	}
}

func (s *exchangeService) Export(ctx context.Context, channelID string, creds models.Credentials, plaintextCSV string) (string, error) {
	log := logger.FromContext(ctx)

	channel, err := s.repo.GetChannel(ctx, channelID)
	if err != nil {
		return "", err
	}

	key, err := s.escrow.ContentKey(channel.Record, creds)
	if err != nil {
		log.Warn().Err(err).Str("channel_id", channelID).Str("as", credentialsRole(creds)).Msg("export rejected")
		return "", err
	}

	protected, err := s.payload.Protect(plaintextCSV, key)
	if err != nil {
		log.Err(err).Str("func", "*exchangeService.Export").Str("channel_id", channelID).Msg("failed to protect payload")
		return "", err
	}

	log.Info().Str("channel_id", channelID).Str("as", credentialsRole(creds)).Int("bytes", len(plaintextCSV)).Msg("csv exported")
	return protected, nil
}

func (s *exchangeService) Import(ctx context.Context, channelID string, creds models.Credentials, protected string) (string, error) {
	log := logger.FromContext(ctx)

	channel, err := s.repo.GetChannel(ctx, channelID)
	if err != nil {
		return "", err
	}

	key, err := s.escrow.ContentKey(channel.Record, creds)
	if err != nil {
		log.Warn().Err(err).Str("channel_id", channelID).Str("as", credentialsRole(creds)).Msg("import rejected")
		return "", err
	}

	plaintext, err := s.payload.Reveal(protected, key)
	if err != nil {
		log.Warn().Err(err).Str("channel_id", channelID).Msg("failed to reveal payload")
		return "", err
	}

	log.Info().Str("channel_id", channelID).Str("as", credentialsRole(creds)).Int("bytes", len(plaintext)).Msg("csv imported")
	return plaintext, nil
}

func credentialsRole(creds models.Credentials) string {
	if creds.IsAdmin() {
		return "admin"
	}
	return "user"
}
