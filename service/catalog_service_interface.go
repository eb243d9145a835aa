package service

import (
	"context"

	"inmobiliaria-premium/models"
)

// CatalogServiceInterface abstracts the catalog service for controllers
// and the refresh scheduler
type CatalogServiceInterface interface {
	GetProperties(ctx context.Context, forceRefresh bool) ([]models.Property, error)
	FindProperty(ctx context.Context, id string) (models.Property, bool, error)
	InvalidateCache()
}
