// Package storage keeps uploaded call recordings between the upload and the
// transcription request.
package storage

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrRecordNotFound is returned when a record name does not exist in the store
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidName is returned for names that are not a plain generated file name
	ErrInvalidName = errors.New("invalid record name")
	// ErrNameExhausted is returned when every generated name collided with an existing record
	ErrNameExhausted = errors.New("could not allocate a unique record name")
)

// Record describes a stored recording
type Record struct {
	Name     string `json:"file_name"`
	MimeType string `json:"mimetype"`
	Size     int64  `json:"size"`
}

// RecordStore persists uploaded recordings under generated names
type RecordStore interface {
	// Save stores r under a freshly generated name that keeps the extension of originalName.
	// size may be -1 when unknown.
	Save(ctx context.Context, originalName, contentType string, r io.Reader, size int64) (*Record, error)

	// Open returns the content of a stored record, or ErrRecordNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Remove deletes a record. Removing a missing record is not an error.
	Remove(ctx context.Context, name string) error

	// Backend names the implementation, for logs and metrics
	Backend() string
}
