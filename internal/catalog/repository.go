package catalog

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pedeaqui/pedeaqui-backend/internal/repo"
	"github.com/pedeaqui/pedeaqui-backend/pkg/db/models"
	"github.com/pedeaqui/pedeaqui-backend/pkg/errors"
)

// Repository provides read access to stores and products.
type Repository struct {
	repo.Base
}

// NewRepository constructs a catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// GetProduct loads a product with its full option-group tree. Groups come
// back ordered by position and options by position within each group; the
// customization engine depends on that order for parent-index resolution.
func (r *Repository) GetProduct(ctx context.Context, productID uuid.UUID) (models.Product, error) {
	var product models.Product
	err := r.DB(ctx).
		Preload("Groups", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_groups.position ASC")
		}).
		Preload("Groups.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("group_options.position ASC")
		}).
		First(&product, "id = ?", productID).Error
	if stdErrors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, errors.New(errors.CodeNotFound, "product not found")
	}
	if err != nil {
		return models.Product{}, errors.Wrap(errors.CodeInternal, err, "loading product")
	}
	return product, nil
}

// GetStore loads one store by ID.
func (r *Repository) GetStore(ctx context.Context, storeID uuid.UUID) (models.Store, error) {
	var store models.Store
	err := r.DB(ctx).First(&store, "id = ?", storeID).Error
	if stdErrors.Is(err, gorm.ErrRecordNotFound) {
		return models.Store{}, errors.New(errors.CodeNotFound, "store not found")
	}
	if err != nil {
		return models.Store{}, errors.Wrap(errors.CodeInternal, err, "loading store")
	}
	return store, nil
}

// ListStoresByCity returns open stores based in the city or delivering to it.
func (r *Repository) ListStoresByCity(ctx context.Context, city string) ([]models.Store, error) {
	var stores []models.Store
	err := r.DB(ctx).
		Where("is_open = ?", true).
		Where("city = ? OR ? = ANY(delivery_cities)", city, city).
		Order("name ASC").
		Find(&stores).Error
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "listing stores by city")
	}
	return stores, nil
}

// ListProductsByStore returns the active products of a store without their
// group trees; listings only need name and base price.
func (r *Repository) ListProductsByStore(ctx context.Context, storeID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := r.DB(ctx).
		Where("store_id = ? AND is_active = ?", storeID, true).
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "listing store products")
	}
	return products, nil
}
