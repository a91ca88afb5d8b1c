package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-csv-keeper/internal/validators"
	"github.com/MKhiriev/go-csv-keeper/models"
)

// ChannelValidationService rejects malformed channel requests before they
// reach the wrapped [ChannelService]. Every rejection wraps
// [ErrInvalidDataProvided].
type ChannelValidationService struct {
	inner     ChannelService
	validator validators.Validator
}

func NewChannelValidationService() ChannelServiceWrapper {
	return &ChannelValidationService{
		validator: validators.NewChannelValidator(),
	}
}

func (v *ChannelValidationService) CreateChannel(ctx context.Context, name, adminPassword, userPassword string) (models.Channel, error) {
	req := models.CreateChannelRequest{Name: name, AdminPassword: adminPassword, UserPassword: userPassword}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Channel{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateChannel(ctx, name, adminPassword, userPassword)
}

func (v *ChannelValidationService) GetChannel(ctx context.Context, channelID string) (models.Channel, error) {
	if err := v.validateID(ctx, channelID); err != nil {
		return models.Channel{}, err
	}

	return v.inner.GetChannel(ctx, channelID)
}

func (v *ChannelValidationService) ListChannels(ctx context.Context) ([]models.Channel, error) {
	return v.inner.ListChannels(ctx)
}

func (v *ChannelValidationService) DeleteChannel(ctx context.Context, channelID string) error {
	if err := v.validateID(ctx, channelID); err != nil {
		return err
	}

	return v.inner.DeleteChannel(ctx, channelID)
}

func (v *ChannelValidationService) RotateGuard(ctx context.Context, channelID, oldAdminPassword, newAdminPassword string) (models.Channel, error) {
	if err := v.validateID(ctx, channelID); err != nil {
		return models.Channel{}, err
	}

	req := models.RotateGuardRequest{OldAdminPassword: oldAdminPassword, NewAdminPassword: newAdminPassword}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Channel{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RotateGuard(ctx, channelID, oldAdminPassword, newAdminPassword)
}

func (v *ChannelValidationService) ExportRecord(ctx context.Context, channelID string) ([]byte, error) {
	if err := v.validateID(ctx, channelID); err != nil {
		return nil, err
	}

	return v.inner.ExportRecord(ctx, channelID)
}

func (v *ChannelValidationService) Wrap(wrapper ChannelService) ChannelService {
	v.inner = wrapper
	return v
}

func (v *ChannelValidationService) validateID(ctx context.Context, channelID string) error {
	if err := v.validator.Validate(ctx, validators.ChannelID(channelID)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
