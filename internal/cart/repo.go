// Package cart implements the active-cart domain: one open cart per customer,
// lines keyed by (product, customization hash) so identical customizations
// merge into a single line, and fulfillment settings validated against the
// store.
package cart

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pedeaqui/pedeaqui-backend/internal/repo"
	"github.com/pedeaqui/pedeaqui-backend/pkg/db/models"
	"github.com/pedeaqui/pedeaqui-backend/pkg/enums"
	"github.com/pedeaqui/pedeaqui-backend/pkg/errors"
)

// Repository persists carts and their lines.
type Repository struct {
	repo.Base
}

// NewRepository constructs a cart repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Transaction runs fn inside a database transaction, handing it a repository
// bound to the transactional connection.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	return r.DB(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

// FindActiveByCustomer returns the customer's open cart with its lines.
func (r *Repository) FindActiveByCustomer(ctx context.Context, customerID uuid.UUID) (models.CartRecord, error) {
	var cart models.CartRecord
	err := r.DB(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Where("customer_id = ? AND status = ?", customerID, enums.CartStatusActive).
		First(&cart).Error
	if stdErrors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartRecord{}, errors.New(errors.CodeNotFound, "no active cart")
	}
	if err != nil {
		return models.CartRecord{}, errors.Wrap(errors.CodeInternal, err, "loading active cart")
	}
	return cart, nil
}

// Create opens a new active cart.
func (r *Repository) Create(ctx context.Context, cart *models.CartRecord) error {
	if err := r.DB(ctx).Create(cart).Error; err != nil {
		return errors.Wrap(errors.CodeInternal, err, "creating cart")
	}
	return nil
}

// FindItemByHash returns the cart line matching the identity key, if any.
func (r *Repository) FindItemByHash(ctx context.Context, cartID, productID uuid.UUID, hash string) (models.CartItem, bool, error) {
	var item models.CartItem
	err := r.DB(ctx).
		Where("cart_id = ? AND product_id = ? AND customization_hash = ?", cartID, productID, hash).
		First(&item).Error
	if stdErrors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartItem{}, false, nil
	}
	if err != nil {
		return models.CartItem{}, false, errors.Wrap(errors.CodeInternal, err, "looking up cart line")
	}
	return item, true, nil
}

// FindItem returns one cart line by ID, scoped to its cart.
func (r *Repository) FindItem(ctx context.Context, cartID, itemID uuid.UUID) (models.CartItem, error) {
	var item models.CartItem
	err := r.DB(ctx).
		Where("cart_id = ? AND id = ?", cartID, itemID).
		First(&item).Error
	if stdErrors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartItem{}, errors.New(errors.CodeNotFound, "cart item not found")
	}
	if err != nil {
		return models.CartItem{}, errors.Wrap(errors.CodeInternal, err, "loading cart line")
	}
	return item, nil
}

// CreateItem inserts a new cart line.
func (r *Repository) CreateItem(ctx context.Context, item *models.CartItem) error {
	if err := r.DB(ctx).Create(item).Error; err != nil {
		return errors.Wrap(errors.CodeInternal, err, "creating cart line")
	}
	return nil
}

// SaveItem persists changes to an existing cart line.
func (r *Repository) SaveItem(ctx context.Context, item *models.CartItem) error {
	if err := r.DB(ctx).Save(item).Error; err != nil {
		return errors.Wrap(errors.CodeInternal, err, "saving cart line")
	}
	return nil
}

// DeleteItem removes a cart line.
func (r *Repository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if err := r.DB(ctx).Delete(&models.CartItem{}, "id = ?", itemID).Error; err != nil {
		return errors.Wrap(errors.CodeInternal, err, "deleting cart line")
	}
	return nil
}

// SaveCart persists cart-level changes (totals, fulfillment, status).
func (r *Repository) SaveCart(ctx context.Context, cart *models.CartRecord) error {
	if err := r.DB(ctx).Save(cart).Error; err != nil {
		return errors.Wrap(errors.CodeInternal, err, "saving cart")
	}
	return nil
}

// DeleteCart removes a cart and, via the FK cascade, its lines.
func (r *Repository) DeleteCart(ctx context.Context, cartID uuid.UUID) error {
	if err := r.DB(ctx).Delete(&models.CartRecord{}, "id = ?", cartID).Error; err != nil {
		return errors.Wrap(errors.CodeInternal, err, "deleting cart")
	}
	return nil
}
