package service

import (
	"fmt"

	"github.com/MKhiriev/go-csv-keeper/internal/codec"
	"github.com/MKhiriev/go-csv-keeper/internal/config"
	"github.com/MKhiriev/go-csv-keeper/internal/crypto"
	"github.com/MKhiriev/go-csv-keeper/internal/escrow"
	"github.com/MKhiriev/go-csv-keeper/internal/logger"
	"github.com/MKhiriev/go-csv-keeper/internal/store"
	"github.com/MKhiriev/go-csv-keeper/internal/utils"
)

type Services struct {
	ChannelService  ChannelService
	ExchangeService ExchangeService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	cipher := crypto.NewCipherService(crypto.NewProvider())

	escrowService, err := escrow.NewService(cipher, cfg.Crypto.KDFParams())
	if err != nil {
		return nil, fmt.Errorf("error creating escrow service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	channelService := NewChannelValidationService().Wrap(
		NewChannelService(storages.ChannelRepository, escrowService, utils.NewUUIDGenerator(), logger),
	)
	exchangeService := NewExchangeValidationService().Wrap(
		NewExchangeService(storages.ChannelRepository, escrowService, codec.NewPayloadCodec(cipher), logger),
	)

	return &Services{
		ChannelService:  channelService,
		ExchangeService: exchangeService,
		AppInfoService:  appInfoService,
	}, nil
}
