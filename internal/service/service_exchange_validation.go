package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-csv-keeper/internal/validators"
	"github.com/MKhiriev/go-csv-keeper/models"
)

type ExchangeValidationService struct {
	inner     ExchangeService
	validator validators.Validator
}

func NewExchangeValidationService() ExchangeServiceWrapper {
	return &ExchangeValidationService{
		validator: validators.NewChannelValidator(),
	}
}

func (v *ExchangeValidationService) Export(ctx context.Context, channelID string, creds models.Credentials, plaintextCSV string) (string, error) {
	if err := v.validator.Validate(ctx, validators.ChannelID(channelID)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, models.ExportRequest{Credentials: creds, CSV: plaintextCSV}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Export(ctx, channelID, creds, plaintextCSV)
}

func (v *ExchangeValidationService) Import(ctx context.Context, channelID string, creds models.Credentials, protected string) (string, error) {
	if err := v.validator.Validate(ctx, validators.ChannelID(channelID)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, models.ImportRequest{Credentials: creds, Protected: protected}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Import(ctx, channelID, creds, protected)
}

func (v *ExchangeValidationService) Wrap(wrapper ExchangeService) ExchangeService {
	v.inner = wrapper
	return v
}
