package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage implements StorageService using Cloudinary. It is the
// alternative backend for studios without a Drive folder.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStorage(cloudinaryURL, folder string) (*CloudinaryStorage, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("storage: cloudinary URL not set in configuration")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld, folder: folder}, nil
}

// UploadFile uploads the blob and returns its secure delivery URL.
// Cloudinary assets are publicly readable by default, so no separate
// permission step is needed.
func (c *CloudinaryStorage) UploadFile(ctx context.Context, name, mimeType string, r io.Reader) (string, error) {
	publicID := strings.TrimSuffix(name, ".jpg")
	result, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:   c.folder,
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("storage: cloudinary upload failed: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("storage: cloudinary returned no URL")
	}
	return result.SecureURL, nil
}
