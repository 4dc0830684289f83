package service

import (
	"context"
	"log/slog"

	"github.com/JoseSC30/superburguer-miniapp/internal/cache"
	"github.com/JoseSC30/superburguer-miniapp/internal/clients"
	"github.com/JoseSC30/superburguer-miniapp/internal/models"
)

// CatalogService serves the product catalog, caching upstream responses
// when a cache is configured.
type CatalogService struct {
	client clients.CatalogClient
	cache  cache.CatalogCache
	logger *slog.Logger
}

// NewCatalogService creates a catalog service. cache may be nil when
// caching is disabled.
func NewCatalogService(client clients.CatalogClient, catalogCache cache.CatalogCache, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		client: client,
		cache:  catalogCache,
		logger: logger,
	}
}

// GetProducts returns the catalog, preferring the cache. Cache errors fall
// through to the upstream service.
func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		if products, err := s.cache.Get(ctx); err == nil && products != nil {
			return products, nil
		}
	}

	products, err := s.client.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, products); err != nil {
			// Log but don't fail; the upstream answer is already in hand.
			s.logger.Error("failed to cache catalog", "error", err)
		}
	}

	return products, nil
}
