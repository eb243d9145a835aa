package service

import (
	"context"
	"log"

	"inmobiliaria-premium/cache"
	"inmobiliaria-premium/models"
	"inmobiliaria-premium/utils"
)

// RefreshError means the top-level folder listing failed and the
// catalog could not be refreshed. Individual folder failures are
// absorbed during ingestion and never produce a RefreshError.
type RefreshError struct {
	Err error
}

func (e *RefreshError) Error() string {
	return "failed to refresh property catalog: " + e.Err.Error()
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}

// CatalogService assembles the property catalog from Google Drive and
// keeps the latest snapshot in a TTL cache.
type CatalogService struct {
	driveService   DriveServiceInterface
	cache          *cache.Catalog
	rootFolderID   string
	maxConcurrency int
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	driveService DriveServiceInterface,
	catalogCache *cache.Catalog,
	rootFolderID string,
	maxConcurrency int,
) *CatalogService {
	return &CatalogService{
		driveService:   driveService,
		cache:          catalogCache,
		rootFolderID:   rootFolderID,
		maxConcurrency: maxConcurrency,
	}
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// GetProperties returns the published catalog. A fresh cached snapshot
// is served without any network calls unless forceRefresh is set;
// otherwise the folders are re-ingested and the cache replaced.
func (s *CatalogService) GetProperties(ctx context.Context, forceRefresh bool) ([]models.Property, error) {
	if !forceRefresh {
		if snapshot, ok := s.cache.Get(); ok {
			log.Printf("📦 Serving %d properties from cache", len(snapshot))
			return snapshot, nil
		}
	}

	log.Printf("🔄 Loading properties from Google Drive...")

	folders, err := s.driveService.ListPropertyFolders(ctx, s.rootFolderID)
	if err != nil {
		return nil, &RefreshError{Err: err}
	}

	if len(folders) == 0 {
		log.Printf("⚠️  No property folders found")
		empty := []models.Property{}
		s.cache.Put(empty)
		return empty, nil
	}

	log.Printf("📁 Found %d property folders", len(folders))

	// The concurrency cap keeps us under the Drive API rate limit.
	results, _ := utils.MapParallel(ctx, s.maxConcurrency, folders,
		func(ctx context.Context, _ int, folder DriveFile) (*models.Property, error) {
			return s.IngestFolder(ctx, folder), nil
		})

	// Folders that failed ingestion or yielded no usable title are
	// dropped here on purpose: they were already logged and must not
	// surface as errors to the caller.
	properties := make([]models.Property, 0, len(results))
	for _, p := range results {
		if p == nil || p.Title == "" {
			continue
		}
		properties = append(properties, *p)
	}

	s.cache.Put(properties)
	log.Printf("✅ %d properties loaded and cached", len(properties))

	return properties, nil
}

// FindProperty looks up one listing by its folder id, serving from the
// cache when fresh. The bool is false when the id is unknown.
func (s *CatalogService) FindProperty(ctx context.Context, id string) (models.Property, bool, error) {
	properties, err := s.GetProperties(ctx, false)
	if err != nil {
		return models.Property{}, false, err
	}
	for _, p := range properties {
		if p.ID == id {
			return p, true, nil
		}
	}
	return models.Property{}, false, nil
}

// InvalidateCache clears the cached snapshot so the next read refreshes.
func (s *CatalogService) InvalidateCache() {
	s.cache.Invalidate()
}
