package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

// CartItem is one priced line of a cart. Lines are identified by
// (cart_id, product_id, customization_hash); adding the same customization
// twice bumps the quantity instead of creating a duplicate row.
type CartItem struct {
	ID                uuid.UUID            `gorm:"column:id;type:uuid;primaryKey"`
	CartID            uuid.UUID            `gorm:"column:cart_id;type:uuid;not null;uniqueIndex:idx_cart_items_identity"`
	ProductID         uuid.UUID            `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_cart_items_identity"`
	ProductName       string               `gorm:"column:product_name;not null"`
	Quantity          int                  `gorm:"column:quantity;not null;default:1"`
	UnitPrice         decimal.Decimal      `gorm:"column:unit_price;type:numeric(10,2);not null"`
	Customization     *types.Customization `gorm:"column:customization;type:jsonb;serializer:json"`
	CustomizationHash string               `gorm:"column:customization_hash;not null;default:'';uniqueIndex:idx_cart_items_identity"`
	LineTotal         decimal.Decimal      `gorm:"column:line_total;type:numeric(10,2);not null"`
	CreatedAt         time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
