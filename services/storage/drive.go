package storage

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/oauth2"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// DriveStorage implements StorageService using a Google Drive folder.
type DriveStorage struct {
	svc      *gdrive.Service
	folderID string
}

func NewDriveStorage(ctx context.Context, ts oauth2.TokenSource, folderID string) (*DriveStorage, error) {
	svc, err := gdrive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("storage: failed to build drive service: %w", err)
	}
	return &DriveStorage{svc: svc, folderID: folderID}, nil
}

// UploadFile creates the file under the configured folder, grants public
// read access and returns the web view link.
func (d *DriveStorage) UploadFile(ctx context.Context, name, mimeType string, r io.Reader) (string, error) {
	meta := &gdrive.File{
		Name:    name,
		Parents: []string{d.folderID},
	}
	created, err := d.svc.Files.Create(meta).
		Media(r, googleapi.ContentType(mimeType)).
		Fields("id, webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("storage: drive upload failed: %w", err)
	}

	perm := &gdrive.Permission{Type: "anyone", Role: "reader"}
	if _, err := d.svc.Permissions.Create(created.Id, perm).Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("storage: failed to set public permission: %w", err)
	}
	return created.WebViewLink, nil
}
