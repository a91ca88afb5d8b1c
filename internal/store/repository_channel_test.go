// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-csv-keeper/internal/config"
	"github.com/MKhiriev/go-csv-keeper/internal/logger"
	"github.com/MKhiriev/go-csv-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChannelRepo(t *testing.T) (*channelRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &channelRepository{
		DB:     newDB(db, DialectPostgres, NewPostgresErrorClassifier(), l),
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var testCreatedAt = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func testChannel() models.Channel {
	return models.Channel{
		ChannelID: "0195a1b2-0000-7000-8000-000000000001",
		Name:      "payroll",
		Record: models.EnvelopeRecord{
			Envelope: models.Envelope{
				IV:               "iv",
				EncryptedKeyData: "data",
				Salt:             "salt",
				KDF:              "pbkdf2-sha256$i=100000",
			},
			Content: models.ContentKeyContext{
				Salt:  "csalt",
				KDF:   "pbkdf2-sha256$i=100000",
				Check: "n:c",
			},
		},
		CreatedAt: testCreatedAt,
	}
}

func channelRows() *sqlmock.Rows {
	return sqlmock.NewRows(channelColumns)
}

func addChannelRow(rows *sqlmock.Rows, c models.Channel) *sqlmock.Rows {
	var rotatedAt any
	if c.RotatedAt != nil {
		rotatedAt = *c.RotatedAt
	}
	return rows.AddRow(
		c.ChannelID, c.Name,
		c.Record.Envelope.IV, c.Record.Envelope.EncryptedKeyData, c.Record.Envelope.Salt, c.Record.Envelope.KDF,
		c.Record.Content.Salt, c.Record.Content.KDF, c.Record.Content.Check,
		c.CreatedAt, rotatedAt,
	)
}

// ─────────────────────────────────────────────
// CreateChannel
// ─────────────────────────────────────────────

func TestCreateChannel_Success(t *testing.T) {
	repo, mock, db := newTestChannelRepo(t)
	defer db.Close()

	channel := testChannel()

	mock.ExpectExec("INSERT INTO channels").
		WithArgs(
			channel.ChannelID, channel.Name,
			"iv", "data", "salt", "pbkdf2-sha256$i=100000",
			"csalt", "pbkdf2-sha256$i=100000", "n:c",
			testCreatedAt, nil,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateChannel(context.Background(), channel)
	require.NoError(t, err)
	assert.Equal(t, channel, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateChannel_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestChannelRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO channels").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateChannel(context.Background(), testChannel())
	assert.ErrorIs(t, err, ErrChannelAlreadyExists)
}

func TestCreateChannel_Retryable(t *testing.T) {
	repo, mock, db := newTestChannelRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO channels").
		WillReturnError(pgError(pgerrcode.SerializationFailure))

	_, err := repo.CreateChannel(context.Background(), testChannel())
	assert.ErrorIs(t, err, ErrStorageBusy)
}

func TestCreateChannel_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestChannelRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO channels").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateChannel(context.Background(), testChannel())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrChannelAlreadyExists)
}

// ─────────────────────────────────────────────
// GetChannel
// ─────────────────────────────────────────────

func TestGetChannel_Success(t *testing.T) {
	repo, mock, db := newTestChannelRepo(t)
	defer db.Close()

	channel := testChannel()
	rotated := testCreatedAt.Add(time.Hour)
	channel.RotatedAt = &rotated

	mock.ExpectQuery(`SELECT (.+) FROM channels WHERE channel_id = \$1`).
		WithArgs(channel.ChannelID).
		WillReturnRows(addChannelRow(channelRows(), channel))

	got, err := repo.GetChannel(context.Background(), channel.ChannelID)
	require.NoError(t, err)
	assert.Equal(t, channel, got)
}

func TestGetChannel_NotFound(t *testing.T) {
	repo, mock, db := newTestChannelRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM channels`).
		WithArgs("missing").
		WillReturnRows(channelRows())

	_, err := repo.GetChannel(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrChannelNotFound)
}

func TestGetChannel_QueryError(t *testing.T) {
	repo, mock, db := newTestChannelRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM channels`).
		WillReturnError(errors.New("boom"))

	_, err := repo.GetChannel(context.Background(), "id")
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ─────────────────────────────────────────────
// ListChannels
// ─────────────────────────────────────────────

func TestListChannels_Success(t *testing.T) {
	repo, mock, db := newTestChannelRepo(t)
	defer db.Close()

	first := testChannel()
	second := testChannel()
	second.ChannelID = "0195a1b2-0000-7000-8000-000000000002"
	second.Name = "courses"

	rows := addChannelRow(addChannelRow(channelRows(), first), second)
	mock.ExpectQuery(`SELECT (.+) FROM channels ORDER BY created_at, name`).
		WillReturnRows(rows)

	got, err := repo.ListChannels(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "payroll", got[0].Name)
	assert.Equal(t, "courses", got[1].Name)
}

func TestListChannels_Empty(t *testing.T) {
	repo, mock, db := newTestChannelRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM channels`).WillReturnRows(channelRows())

	got, err := repo.ListChannels(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListChannels_QueryError(t *testing.T) {
	repo, mock, db := newTestChannelRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM channels`).WillReturnError(errors.New("boom"))

	_, err := repo.ListChannels(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListChannels_RowError(t *testing.T) {
	repo, mock, db := newTestChannelRepo(t)
	defer db.Close()

	rows := addChannelRow(channelRows(), testChannel()).RowError(0, errors.New("row broke"))
	mock.ExpectQuery(`SELECT (.+) FROM channels`).WillReturnRows(rows)

	_, err := repo.ListChannels(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ─────────────────────────────────────────────
// UpdateEnvelope / DeleteChannel
// ─────────────────────────────────────────────

func TestUpdateEnvelope_Success(t *testing.T) {
	repo, mock, db := newTestChannelRepo(t)
	defer db.Close()

	env := models.Envelope{IV: "iv2", EncryptedKeyData: "data2", Salt: "salt2", KDF: "pbkdf2-sha256$i=100000"}
	rotated := testCreatedAt.Add(24 * time.Hour)

	mock.ExpectExec(`UPDATE channels SET envelope_iv = \$1`).
		WithArgs("iv2", "data2", "salt2", "pbkdf2-sha256$i=100000", rotated, "id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateEnvelope(context.Background(), "id", env, rotated))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEnvelope_NotFound(t *testing.T) {
	repo, mock, db := newTestChannelRepo(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE channels`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateEnvelope(context.Background(), "id", models.Envelope{}, testCreatedAt)
	assert.ErrorIs(t, err, ErrChannelNotFound)
}

func TestDeleteChannel(t *testing.T) {
	tests := []struct {
		name    string
		result  sqlmockResult
		wantErr error
	}{
		{name: "deleted", result: sqlmockResult{affected: 1}},
		{name: "not found", result: sqlmockResult{affected: 0}, wantErr: ErrChannelNotFound},
		{name: "exec error", result: sqlmockResult{err: errors.New("boom")}, wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestChannelRepo(t)
			defer db.Close()

			exp := mock.ExpectExec(`DELETE FROM channels WHERE channel_id = \$1`).WithArgs("id")
			if tt.result.err != nil {
				exp.WillReturnError(tt.result.err)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.result.affected))
			}

			err := repo.DeleteChannel(context.Background(), "id")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

type sqlmockResult struct {
	affected int64
	err      error
}

// ─────────────────────────────────────────────
// SQLite end to end
// ─────────────────────────────────────────────

func TestChannelRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := NewConnect(ctx, config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, DialectSQLite, db.Dialect())

	repo := NewChannelRepository(db, logger.Nop())

	channel := testChannel()
	_, err = repo.CreateChannel(ctx, channel)
	require.NoError(t, err)

	duplicate := testChannel()
	duplicate.ChannelID = "another-id"
	_, err = repo.CreateChannel(ctx, duplicate)
	assert.ErrorIs(t, err, ErrChannelAlreadyExists, "names are unique")

	got, err := repo.GetChannel(ctx, channel.ChannelID)
	require.NoError(t, err)
	assert.Equal(t, channel.Record, got.Record)
	assert.True(t, channel.CreatedAt.Equal(got.CreatedAt))
	assert.Nil(t, got.RotatedAt)

	rotated := testCreatedAt.Add(time.Hour)
	newEnvelope := models.Envelope{IV: "iv2", EncryptedKeyData: "data2", Salt: "salt2", KDF: "k"}
	require.NoError(t, repo.UpdateEnvelope(ctx, channel.ChannelID, newEnvelope, rotated))

	got, err = repo.GetChannel(ctx, channel.ChannelID)
	require.NoError(t, err)
	assert.Equal(t, newEnvelope, got.Record.Envelope)
	assert.Equal(t, channel.Record.Content, got.Record.Content)
	require.NotNil(t, got.RotatedAt)
	assert.True(t, rotated.Equal(*got.RotatedAt))

	list, err := repo.ListChannels(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.DeleteChannel(ctx, channel.ChannelID))
	_, err = repo.GetChannel(ctx, channel.ChannelID)
	assert.ErrorIs(t, err, ErrChannelNotFound)
	assert.ErrorIs(t, repo.DeleteChannel(ctx, channel.ChannelID), ErrChannelNotFound)
}
