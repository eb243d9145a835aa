package service

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"inmobiliaria-premium/config"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	folderMimeType    = "application/vnd.google-apps.folder"
	googleDocMimeType = "application/vnd.google-apps.document"
)

// DriveService handles Google Drive API operations
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService instance. Listings in a
// publicly shared folder only need an API key; a Service Account
// credentials file is used instead when configured.
func NewDriveService(ctx context.Context, cfg *config.Config) (*DriveService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	} else {
		opts = append(opts, option.WithAPIKey(cfg.DriveAPIKey))
	}

	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client: driveService,
	}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// ListPropertyFolders lists the child folders of the root folder. Each
// child folder holds one property listing.
func (ds *DriveService) ListPropertyFolders(ctx context.Context, rootFolderID string) ([]DriveFile, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType='%s' and trashed=false", rootFolderID, folderMimeType)
	return ds.listFiles(ctx, query)
}

// ListFolderFiles lists every non-trashed file inside a property folder.
func (ds *DriveService) ListFolderFiles(ctx context.Context, folderID string) ([]DriveFile, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", folderID)
	return ds.listFiles(ctx, query)
}

func (ds *DriveService) listFiles(ctx context.Context, query string) ([]DriveFile, error) {
	allFiles := []DriveFile{}
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)").
			Context(ctx)

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		for _, file := range r.Files {
			allFiles = append(allFiles, DriveFile{
				ID:       file.Id,
				Name:     file.Name,
				MimeType: file.MimeType,
			})
		}
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	return allFiles, nil
}

// FetchInfoText downloads the content of an info file as plain text.
// Google Docs go through the export endpoint; regular text files are
// downloaded directly.
func (ds *DriveService) FetchInfoText(ctx context.Context, file DriveFile) (string, error) {
	var resp *http.Response
	var err error

	if file.MimeType == googleDocMimeType {
		resp, err = ds.client.Files.Export(file.ID, "text/plain").Context(ctx).Download()
	} else {
		resp, err = ds.client.Files.Get(file.ID).Context(ctx).Download()
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch info file %s: %w", file.ID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read info file %s: %w", file.ID, err)
	}

	return string(data), nil
}
