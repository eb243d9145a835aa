package service

import "context"

// DriveFile is the minimal file metadata the catalog needs from Drive.
type DriveFile struct {
	ID       string
	Name     string
	MimeType string
}

// DriveServiceInterface abstracts Google Drive operations for testing
type DriveServiceInterface interface {
	ListPropertyFolders(ctx context.Context, rootFolderID string) ([]DriveFile, error)
	ListFolderFiles(ctx context.Context, folderID string) ([]DriveFile, error)
	FetchInfoText(ctx context.Context, file DriveFile) (string, error)
}
