package store

import (
	"context"
	"path/filepath"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-csv-keeper/internal/config"
	"github.com/MKhiriev/go-csv-keeper/internal/logger"
)

func TestNewDB_PlaceholderPerDialect(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{dialect: DialectPostgres, want: "SELECT name FROM channels WHERE channel_id = $1"},
		{dialect: DialectSQLite, want: "SELECT name FROM channels WHERE channel_id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			db := newDB(nil, tt.dialect, nil, logger.Nop())

			query, args, err := db.builder.Select("name").From("channels").Where(sq.Eq{"channel_id": "id"}).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"id"}, args)
			assert.Equal(t, tt.dialect, db.Dialect())
		})
	}
}

func TestNewStorages_SQLite(t *testing.T) {
	cfg := config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "csvkeeper.db")}}

	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	require.NotNil(t, storages.ChannelRepository)
	channels, err := storages.ChannelRepository.ListChannels(context.Background())
	require.NoError(t, err)
	assert.Empty(t, channels)
}

func TestStorages_CloseWithoutConnection(t *testing.T) {
	assert.NoError(t, (&Storages{}).Close())
}
