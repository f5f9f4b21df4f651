package cart

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pedeaqui/pedeaqui-backend/internal/catalog"
	"github.com/pedeaqui/pedeaqui-backend/internal/customize"
	"github.com/pedeaqui/pedeaqui-backend/pkg/db/models"
	"github.com/pedeaqui/pedeaqui-backend/pkg/enums"
	"github.com/pedeaqui/pedeaqui-backend/pkg/errors"
	"github.com/pedeaqui/pedeaqui-backend/pkg/logger"
	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

// CatalogReader is the slice of the catalog service the cart depends on.
type CatalogReader interface {
	ActiveProductView(ctx context.Context, productID uuid.UUID) (catalog.ProductView, error)
	Store(ctx context.Context, storeID uuid.UUID) (models.Store, error)
}

// Service owns cart mutations. Every mutation recomputes the cart totals so
// stored amounts never drift from the lines.
type Service struct {
	repo    *Repository
	catalog CatalogReader
	logg    *logger.Logger
}

// NewService constructs the cart service.
func NewService(repo *Repository, catalogReader CatalogReader, logg *logger.Logger) *Service {
	return &Service{repo: repo, catalog: catalogReader, logg: logg}
}

// AddItemInput is the payload of an add-to-cart request.
type AddItemInput struct {
	ProductID    uuid.UUID
	Quantity     int
	Selections   customize.RawSelections
	Observations string
}

// UpdateItemInput is the payload of a cart-line edit. A nil Selections keeps
// the stored customization; setting Quantity to zero removes the line.
type UpdateItemInput struct {
	Quantity     int
	Selections   customize.RawSelections
	Observations *string
}

// FulfillmentInput sets how the cart will be delivered and paid.
type FulfillmentInput struct {
	DeliveryMethod enums.DeliveryMethod
	PaymentMethod  enums.PaymentMethod
}

// GetActiveCart returns the customer's open cart.
func (s *Service) GetActiveCart(ctx context.Context, customerID uuid.UUID) (models.CartRecord, error) {
	return s.repo.FindActiveByCustomer(ctx, customerID)
}

// AddItem prices a customization and adds it to the customer's cart. A line
// with the same product and customization hash already in the cart gets its
// quantity bumped instead of a duplicate row.
func (s *Service) AddItem(ctx context.Context, customerID uuid.UUID, input AddItemInput) (models.CartRecord, error) {
	if input.Quantity < 1 {
		return models.CartRecord{}, errors.New(errors.CodeValidation, "quantity must be at least 1")
	}

	view, err := s.catalog.ActiveProductView(ctx, input.ProductID)
	if err != nil {
		return models.CartRecord{}, err
	}

	selections := input.Selections.Coerce(view.Product)
	if violations := customize.Validate(view.Product, selections); len(violations) > 0 {
		return models.CartRecord{}, errors.
			New(errors.CodeValidation, "customization is incomplete").
			WithDetails(customize.Messages(violations))
	}

	customization := customize.BuildCustomization(view.Product, selections, input.Observations)
	hash := customize.Hash(customization)
	unitPrice := customize.UnitPrice(view.Product, selections)

	var cartID uuid.UUID
	err = s.repo.Transaction(ctx, func(tx *Repository) error {
		cart, err := tx.FindActiveByCustomer(ctx, customerID)
		if typed := errors.As(err); typed != nil && typed.Code() == errors.CodeNotFound {
			cart = models.CartRecord{
				CustomerID: customerID,
				StoreID:    view.StoreID,
				Status:     enums.CartStatusActive,
				Subtotal:   decimal.Zero,
				Total:      decimal.Zero,
			}
			if err := tx.Create(ctx, &cart); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		if cart.StoreID != view.StoreID {
			return errors.New(errors.CodeConflict, "cart holds items from another store")
		}
		cartID = cart.ID

		existing, found, err := tx.FindItemByHash(ctx, cart.ID, view.Product.ID, hash)
		if err != nil {
			return err
		}
		if found {
			existing.Quantity += input.Quantity
			existing.LineTotal = existing.UnitPrice.Mul(decimal.NewFromInt(int64(existing.Quantity)))
			if err := tx.SaveItem(ctx, &existing); err != nil {
				return err
			}
		} else {
			item := models.CartItem{
				CartID:            cart.ID,
				ProductID:         view.Product.ID,
				ProductName:       view.Product.Name,
				Quantity:          input.Quantity,
				UnitPrice:         unitPrice,
				CustomizationHash: hash,
				LineTotal:         unitPrice.Mul(decimal.NewFromInt(int64(input.Quantity))),
			}
			if !customization.IsEmpty() || customization.Observations != "" {
				item.Customization = &customization
			}
			if err := tx.CreateItem(ctx, &item); err != nil {
				return err
			}
		}
		return recomputeTotals(ctx, tx, cart.ID)
	})
	if err != nil {
		return models.CartRecord{}, err
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"cart_id":    cartID,
		"product_id": input.ProductID,
	}), "cart line added")

	return s.repo.FindActiveByCustomer(ctx, customerID)
}

// UpdateItem edits a cart line. Re-customizing a line so that its hash
// collides with another line of the cart merges the two.
func (s *Service) UpdateItem(ctx context.Context, customerID, itemID uuid.UUID, input UpdateItemInput) (models.CartRecord, error) {
	if input.Quantity < 0 {
		return models.CartRecord{}, errors.New(errors.CodeValidation, "quantity must not be negative")
	}

	cart, err := s.repo.FindActiveByCustomer(ctx, customerID)
	if err != nil {
		return models.CartRecord{}, err
	}

	err = s.repo.Transaction(ctx, func(tx *Repository) error {
		item, err := tx.FindItem(ctx, cart.ID, itemID)
		if err != nil {
			return err
		}

		if input.Quantity == 0 {
			if err := tx.DeleteItem(ctx, item.ID); err != nil {
				return err
			}
			return recomputeTotals(ctx, tx, cart.ID)
		}

		if input.Selections != nil {
			view, err := s.catalog.ActiveProductView(ctx, item.ProductID)
			if err != nil {
				return err
			}
			selections := input.Selections.Coerce(view.Product)
			if violations := customize.Validate(view.Product, selections); len(violations) > 0 {
				return errors.
					New(errors.CodeValidation, "customization is incomplete").
					WithDetails(customize.Messages(violations))
			}

			observations := observationsOf(item)
			if input.Observations != nil {
				observations = *input.Observations
			}
			customization := customize.BuildCustomization(view.Product, selections, observations)
			item.CustomizationHash = customize.Hash(customization)
			item.UnitPrice = customize.UnitPrice(view.Product, selections)
			item.Customization = nil
			if !customization.IsEmpty() || customization.Observations != "" {
				item.Customization = &customization
			}
		} else if input.Observations != nil {
			// observations live outside the hash; editing them never splits
			// or merges lines
			if item.Customization != nil {
				item.Customization.Observations = *input.Observations
				if item.Customization.IsEmpty() && item.Customization.Observations == "" {
					item.Customization = nil
				}
			} else if *input.Observations != "" {
				item.Customization = &types.Customization{Observations: *input.Observations}
			}
		}

		twin, found, err := tx.FindItemByHash(ctx, cart.ID, item.ProductID, item.CustomizationHash)
		if err != nil {
			return err
		}
		if found && twin.ID != item.ID {
			twin.Quantity += input.Quantity
			twin.LineTotal = twin.UnitPrice.Mul(decimal.NewFromInt(int64(twin.Quantity)))
			if err := tx.SaveItem(ctx, &twin); err != nil {
				return err
			}
			if err := tx.DeleteItem(ctx, item.ID); err != nil {
				return err
			}
		} else {
			item.Quantity = input.Quantity
			item.LineTotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
			if err := tx.SaveItem(ctx, &item); err != nil {
				return err
			}
		}
		return recomputeTotals(ctx, tx, cart.ID)
	})
	if err != nil {
		return models.CartRecord{}, err
	}

	return s.repo.FindActiveByCustomer(ctx, customerID)
}

// RemoveItem deletes one line from the customer's cart.
func (s *Service) RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) (models.CartRecord, error) {
	cart, err := s.repo.FindActiveByCustomer(ctx, customerID)
	if err != nil {
		return models.CartRecord{}, err
	}

	err = s.repo.Transaction(ctx, func(tx *Repository) error {
		item, err := tx.FindItem(ctx, cart.ID, itemID)
		if err != nil {
			return err
		}
		if err := tx.DeleteItem(ctx, item.ID); err != nil {
			return err
		}
		return recomputeTotals(ctx, tx, cart.ID)
	})
	if err != nil {
		return models.CartRecord{}, err
	}

	return s.repo.FindActiveByCustomer(ctx, customerID)
}

// SetFulfillment records delivery and payment choices after checking the
// store actually supports them.
func (s *Service) SetFulfillment(ctx context.Context, customerID uuid.UUID, input FulfillmentInput) (models.CartRecord, error) {
	if !input.DeliveryMethod.IsValid() {
		return models.CartRecord{}, errors.New(errors.CodeValidation, "invalid delivery method")
	}
	if !input.PaymentMethod.IsValid() {
		return models.CartRecord{}, errors.New(errors.CodeValidation, "invalid payment method")
	}

	cart, err := s.repo.FindActiveByCustomer(ctx, customerID)
	if err != nil {
		return models.CartRecord{}, err
	}
	store, err := s.catalog.Store(ctx, cart.StoreID)
	if err != nil {
		return models.CartRecord{}, err
	}

	if !supportsPayment(store, input.PaymentMethod) {
		return models.CartRecord{}, errors.New(errors.CodeValidation, "store does not accept this payment method")
	}
	if input.DeliveryMethod == enums.DeliveryMethodDelivery && len(store.DeliveryCities) == 0 {
		return models.CartRecord{}, errors.New(errors.CodeValidation, "store does not deliver")
	}

	cart.DeliveryMethod = &input.DeliveryMethod
	cart.PaymentMethod = &input.PaymentMethod
	if err := s.repo.SaveCart(ctx, &cart); err != nil {
		return models.CartRecord{}, err
	}
	return s.repo.FindActiveByCustomer(ctx, customerID)
}

func supportsPayment(store models.Store, method enums.PaymentMethod) bool {
	for _, accepted := range store.PaymentMethods {
		if accepted == method.String() {
			return true
		}
	}
	return false
}

func observationsOf(item models.CartItem) string {
	if item.Customization == nil {
		return ""
	}
	return item.Customization.Observations
}

// recomputeTotals re-derives the cart amounts from its lines.
func recomputeTotals(ctx context.Context, tx *Repository, cartID uuid.UUID) error {
	var items []models.CartItem
	if err := tx.DB(ctx).Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return errors.Wrap(errors.CodeInternal, err, "loading cart lines for totals")
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal)
	}

	err := tx.DB(ctx).
		Model(&models.CartRecord{}).
		Where("id = ?", cartID).
		Updates(map[string]any{"subtotal": subtotal, "total": subtotal}).Error
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "saving cart totals")
	}
	return nil
}
