package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/pedeaqui/pedeaqui-backend/pkg/config"
	"github.com/pedeaqui/pedeaqui-backend/pkg/db/models"
	"github.com/pedeaqui/pedeaqui-backend/pkg/errors"
	"github.com/pedeaqui/pedeaqui-backend/pkg/logger"
)

// ViewCache is the slice of the redis client the catalog service needs.
type ViewCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CatalogKey(parts ...string) string
}

// Service answers catalog reads. Product views are cached because every
// customization quote and every cart mutation re-reads the full group tree.
type Service struct {
	repo  *Repository
	cache ViewCache
	ttl   time.Duration
	logg  *logger.Logger
}

// NewService constructs the catalog service. cache may be nil; all reads then
// go straight to the database.
func NewService(repo *Repository, cache ViewCache, cfg config.CatalogConfig, logg *logger.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		ttl:   cfg.ViewCacheTTL,
		logg:  logg,
	}
}

// ProductView returns the engine-facing snapshot of a product, cache-aside.
// Any cache failure counts as a miss; the database stays the source of truth.
func (s *Service) ProductView(ctx context.Context, productID uuid.UUID) (ProductView, error) {
	key := ""
	if s.cache != nil {
		key = s.cache.CatalogKey("product", productID.String())
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var view ProductView
			if err := json.Unmarshal([]byte(cached), &view); err == nil {
				return view, nil
			}
			s.logg.Warn(ctx, "discarding undecodable cached product view")
		}
	}

	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return ProductView{}, err
	}
	view := BuildProductView(product)

	if s.cache != nil {
		if encoded, err := json.Marshal(view); err == nil {
			if err := s.cache.Set(ctx, key, string(encoded), s.ttl); err != nil {
				s.logg.Warn(ctx, "caching product view failed")
			}
		}
	}
	return view, nil
}

// ActiveProductView is ProductView restricted to purchasable products.
func (s *Service) ActiveProductView(ctx context.Context, productID uuid.UUID) (ProductView, error) {
	view, err := s.ProductView(ctx, productID)
	if err != nil {
		return ProductView{}, err
	}
	if !view.Active {
		return ProductView{}, errors.New(errors.CodeNotFound, "product not available")
	}
	return view, nil
}

// InvalidateProduct drops the cached view after a catalog edit.
func (s *Service) InvalidateProduct(ctx context.Context, productID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, s.cache.CatalogKey("product", productID.String())); err != nil {
		s.logg.Warn(ctx, "invalidating product view failed")
	}
}

// StoresByCity lists open stores serving a city.
func (s *Service) StoresByCity(ctx context.Context, city string) ([]models.Store, error) {
	if city == "" {
		return nil, errors.New(errors.CodeValidation, "city is required")
	}
	return s.repo.ListStoresByCity(ctx, city)
}

// Store returns one store.
func (s *Service) Store(ctx context.Context, storeID uuid.UUID) (models.Store, error) {
	return s.repo.GetStore(ctx, storeID)
}

// StoreProducts lists the active listings of a store.
func (s *Service) StoreProducts(ctx context.Context, storeID uuid.UUID) ([]models.Product, error) {
	if _, err := s.repo.GetStore(ctx, storeID); err != nil {
		return nil, err
	}
	return s.repo.ListProductsByStore(ctx, storeID)
}
