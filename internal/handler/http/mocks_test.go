package http

import (
	"context"

	"github.com/MKhiriev/go-csv-keeper/internal/logger"
	"github.com/MKhiriev/go-csv-keeper/internal/service"
	"github.com/MKhiriev/go-csv-keeper/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockChannelService struct {
	createFn       func(ctx context.Context, name, admin, user string) (models.Channel, error)
	getFn          func(ctx context.Context, id string) (models.Channel, error)
	listFn         func(ctx context.Context) ([]models.Channel, error)
	deleteFn       func(ctx context.Context, id string) error
	rotateFn       func(ctx context.Context, id, oldAdmin, newAdmin string) (models.Channel, error)
	exportRecordFn func(ctx context.Context, id string) ([]byte, error)
}

func (m *mockChannelService) CreateChannel(ctx context.Context, name, admin, user string) (models.Channel, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name, admin, user)
	}
	return models.Channel{}, nil
}

func (m *mockChannelService) GetChannel(ctx context.Context, id string) (models.Channel, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Channel{}, nil
}

func (m *mockChannelService) ListChannels(ctx context.Context) ([]models.Channel, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockChannelService) DeleteChannel(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockChannelService) RotateGuard(ctx context.Context, id, oldAdmin, newAdmin string) (models.Channel, error) {
	if m.rotateFn != nil {
		return m.rotateFn(ctx, id, oldAdmin, newAdmin)
	}
	return models.Channel{}, nil
}

func (m *mockChannelService) ExportRecord(ctx context.Context, id string) ([]byte, error) {
	if m.exportRecordFn != nil {
		return m.exportRecordFn(ctx, id)
	}
	return nil, nil
}

type mockExchangeService struct {
	exportFn func(ctx context.Context, id string, creds models.Credentials, csv string) (string, error)
	importFn func(ctx context.Context, id string, creds models.Credentials, protected string) (string, error)
}

func (m *mockExchangeService) Export(ctx context.Context, id string, creds models.Credentials, csv string) (string, error) {
	if m.exportFn != nil {
		return m.exportFn(ctx, id, creds, csv)
	}
	return "", nil
}

func (m *mockExchangeService) Import(ctx context.Context, id string, creds models.Credentials, protected string) (string, error) {
	if m.importFn != nil {
		return m.importFn(ctx, id, creds, protected)
	}
	return "", nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// newTestHandler builds a Handler over the given mocks. Nil mocks are
// replaced with zero-value ones.
func newTestHandler(channels *mockChannelService, exchange *mockExchangeService) *Handler {
	if channels == nil {
		channels = &mockChannelService{}
	}
	if exchange == nil {
		exchange = &mockExchangeService{}
	}

	return NewHandler(&service.Services{
		ChannelService:  channels,
		ExchangeService: exchange,
		AppInfoService:  &mockAppInfoService{version: "test-version"},
	}, logger.Nop())
}
