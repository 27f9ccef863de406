package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// LocalStore keeps records as files in a directory
type LocalStore struct {
	dir      string
	logger   *zap.Logger
	nameFunc func(originalName string) string
}

// NewLocalStore creates a store rooted at dir. The directory is created on first save.
func NewLocalStore(dir string, logger *zap.Logger) *LocalStore {
	return &LocalStore{
		dir:      dir,
		logger:   logger,
		nameFunc: RecordName,
	}
}

// Dir returns the upload directory
func (s *LocalStore) Dir() string {
	return s.dir
}

// Backend implements RecordStore
func (s *LocalStore) Backend() string {
	return "local"
}

// Save implements RecordStore
func (s *LocalStore) Save(ctx context.Context, originalName, contentType string, r io.Reader, size int64) (*Record, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	for attempt := 0; attempt < MaxNameAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := s.nameFunc(originalName)
		path := filepath.Join(s.dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			s.logger.Warn("record name collision, regenerating", zap.String("name", name))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create record file: %w", err)
		}

		written, err := io.Copy(f, r)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(path)
			return nil, fmt.Errorf("failed to write record file: %w", err)
		}

		s.logger.Debug("record saved",
			zap.String("name", name),
			zap.String("original_name", originalName),
			zap.Int64("size", written),
		)
		return &Record{Name: name, MimeType: contentType, Size: written}, nil
	}

	return nil, ErrNameExhausted
}

// Open implements RecordStore
func (s *LocalStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open record: %w", err)
	}
	return f, nil
}

// Remove implements RecordStore
func (s *LocalStore) Remove(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove record: %w", err)
	}
	return nil
}
