package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-csv-keeper/internal/escrow"
	"github.com/MKhiriev/go-csv-keeper/internal/logger"
	"github.com/MKhiriev/go-csv-keeper/models"
)

// recordFileStorage is the directory-backed implementation of
// [RecordFileStorage]. Files are written with 0600 permissions; a record is
// not secret on its own but it is what makes protected exports readable.
type recordFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewRecordFileStorage constructs a [RecordFileStorage] rooted at dir.
// The directory is created lazily on the first write.
func NewRecordFileStorage(dir string, logger *logger.Logger) RecordFileStorage {
	if dir == "" {
		dir = "."
	}
	return &recordFileStorage{
		dir:    dir,
		logger: logger,
	}
}

func (s *recordFileStorage) CreateRecord(ctx context.Context, name string, record models.EnvelopeRecord) (string, error) {
	path, data, err := s.prepare(ctx, name, record)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return "", fmt.Errorf("%w: %s", ErrRecordFileExists, path)
	}
	if err != nil {
		return "", fmt.Errorf("create record file: %w", err)
	}

	if _, err = f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write record file: %w", err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("close record file: %w", err)
	}

	s.logger.Debug().Str("func", "*recordFileStorage.CreateRecord").Str("path", path).Msg("record file created")
	return path, nil
}

// SaveRecord writes to a temporary file in the same directory and renames it
// over the target, so a crash never leaves a half-written record behind.
func (s *recordFileStorage) SaveRecord(ctx context.Context, name string, record models.EnvelopeRecord) (string, error) {
	path, data, err := s.prepare(ctx, name, record)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temporary record file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("write record file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("close record file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("replace record file: %w", err)
	}

	s.logger.Debug().Str("func", "*recordFileStorage.SaveRecord").Str("path", path).Msg("record file saved")
	return path, nil
}

func (s *recordFileStorage) LoadRecord(ctx context.Context, name string) (models.EnvelopeRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.EnvelopeRecord{}, err
	}

	path, err := s.path(name)
	if err != nil {
		return models.EnvelopeRecord{}, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.EnvelopeRecord{}, fmt.Errorf("%w: %s", ErrRecordFileNotFound, path)
	}
	if err != nil {
		return models.EnvelopeRecord{}, fmt.Errorf("read record file: %w", err)
	}

	return escrow.UnmarshalRecord(data)
}

func (s *recordFileStorage) prepare(ctx context.Context, name string, record models.EnvelopeRecord) (string, []byte, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	path, err := s.path(name)
	if err != nil {
		return "", nil, err
	}

	data, err := escrow.MarshalRecord(record)
	if err != nil {
		return "", nil, err
	}

	if err = os.MkdirAll(s.dir, 0o700); err != nil {
		return "", nil, fmt.Errorf("create record directory: %w", err)
	}

	return path, data, nil
}

func (s *recordFileStorage) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidRecordName, name)
	}
	return filepath.Join(s.dir, name), nil
}
