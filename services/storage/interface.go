package storage

import (
	"context"
	"io"
)

// StorageService defines the interface for reference-image upload operations.
type StorageService interface {
	// UploadFile stores the blob and returns a publicly shareable link.
	UploadFile(ctx context.Context, name, mimeType string, r io.Reader) (string, error)
}
